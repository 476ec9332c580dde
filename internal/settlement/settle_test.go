package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdubuke98/gostop/internal/domain"
)

func sellerRef(id int64) *int64 {
	return &id
}

func fourPlayerSubmission() *domain.GameSubmission {
	return &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  1,
		WinPoints: 10,
		Seller:    &domain.SellerInput{ID: 3, Points: 3},
		Participants: []domain.ParticipantInput{
			{ID: 1},
			{ID: 2, Multiplier: 2},
			{ID: 3},
			{ID: 4, Multiplier: 1},
		},
	}
}

func TestComputeFourPlayerGame(t *testing.T) {
	// A (dealer) wins 10, C sells for 3, B has multiplier 2, D multiplier 1.
	result, err := Compute(fourPlayerSubmission(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(16), result.Deltas[1])
	assert.Equal(t, int64(-2), result.Deltas[2])
	assert.Equal(t, int64(-3), result.Deltas[3])
	assert.Equal(t, int64(-1), result.Deltas[4])

	assert.Equal(t, domain.RoleDealer, result.Roles[1])
	assert.Equal(t, domain.RolePlainPlayer, result.Roles[2])
	assert.Equal(t, domain.RoleSeller, result.Roles[3])
	assert.Equal(t, domain.RolePlainPlayer, result.Roles[4])
}

func TestComputeThreePlayerGameWithoutSeller(t *testing.T) {
	sub := &domain.GameSubmission{
		WinnerID:  2,
		DealerID:  1,
		WinPoints: 7,
		Participants: []domain.ParticipantInput{
			{ID: 1, Multiplier: 3},
			{ID: 2},
			{ID: 3},
		},
	}

	result, err := Compute(sub, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(7+3+1), result.Deltas[2])
	assert.Equal(t, int64(-3), result.Deltas[1])
	assert.Equal(t, int64(-1), result.Deltas[3])
}

func TestComputeBaseUnitScalesLosses(t *testing.T) {
	sub := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  1,
		WinPoints: 4,
		Participants: []domain.ParticipantInput{
			{ID: 1},
			{ID: 2, Multiplier: 2},
		},
	}

	result, err := Compute(sub, Config{BaseUnit: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(4+10), result.Deltas[1])
	assert.Equal(t, int64(-10), result.Deltas[2])
}

func TestComputeFirstRoundLock(t *testing.T) {
	sub := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  2,
		WinPoints: 6,
		Participants: []domain.ParticipantInput{
			{ID: 1},
			{ID: 2, Multiplier: 1, FirstRoundLock: true},
			{ID: 3, Multiplier: 1},
		},
	}

	result, err := Compute(sub, DefaultConfig())
	require.NoError(t, err)

	// The locked player pays the 5-point penalty on top of their loss.
	assert.Equal(t, int64(6+1+1+5), result.Deltas[1])
	assert.Equal(t, int64(-6), result.Deltas[2])
	assert.Equal(t, int64(-1), result.Deltas[3])
}

func TestComputeWinnerLockIsNeutral(t *testing.T) {
	sub := &domain.GameSubmission{
		WinnerID:  1,
		DealerID:  1,
		WinPoints: 3,
		Participants: []domain.ParticipantInput{
			{ID: 1, FirstRoundLock: true},
			{ID: 2},
		},
	}

	result, err := Compute(sub, DefaultConfig())
	require.NoError(t, err)

	// The winner pays the lock penalty to themselves.
	assert.Equal(t, int64(3+1), result.Deltas[1])
	assert.Equal(t, int64(-1), result.Deltas[2])
}

func TestComputeLossSideSymmetry(t *testing.T) {
	subs := []*domain.GameSubmission{
		fourPlayerSubmission(),
		{
			WinnerID:  2,
			DealerID:  1,
			WinPoints: 25,
			Participants: []domain.ParticipantInput{
				{ID: 1, Multiplier: 4, FirstRoundLock: true},
				{ID: 2},
				{ID: 3, Multiplier: 2},
				{ID: 4, FirstRoundLock: true},
			},
		},
	}

	for _, sub := range subs {
		result, err := Compute(sub, DefaultConfig())
		require.NoError(t, err)

		var losses int64
		for id, delta := range result.Deltas {
			if id != sub.WinnerID {
				losses -= delta
			}
		}
		assert.Equal(t, result.Deltas[sub.WinnerID]-sub.WinPoints, losses)
	}
}

func TestAssignRolesValidation(t *testing.T) {
	tests := []struct {
		name         string
		participants []int64
		dealerID     int64
		sellerID     *int64
		winnerID     int64
	}{
		{
			name:         "TooFewParticipants",
			participants: []int64{1},
			dealerID:     1,
			winnerID:     1,
		},
		{
			name:         "TooManyParticipants",
			participants: []int64{1, 2, 3, 4, 5},
			dealerID:     1,
			winnerID:     2,
		},
		{
			name:         "WinnerNotParticipant",
			participants: []int64{1, 2, 3},
			dealerID:     1,
			winnerID:     9,
		},
		{
			name:         "DealerNotParticipant",
			participants: []int64{1, 2, 3},
			dealerID:     9,
			winnerID:     1,
		},
		{
			name:         "SellerNotParticipant",
			participants: []int64{1, 2, 3, 4},
			dealerID:     1,
			sellerID:     sellerRef(9),
			winnerID:     1,
		},
		{
			name:         "SellerIsDealer",
			participants: []int64{1, 2, 3, 4},
			dealerID:     1,
			sellerID:     sellerRef(1),
			winnerID:     2,
		},
		{
			name:         "SellerIsWinner",
			participants: []int64{1, 2, 3, 4},
			dealerID:     1,
			sellerID:     sellerRef(2),
			winnerID:     2,
		},
		{
			name:         "DuplicateParticipant",
			participants: []int64{1, 2, 2},
			dealerID:     1,
			winnerID:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AssignRoles(tt.participants, tt.dealerID, tt.sellerID, tt.winnerID)
			require.Error(t, err)

			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, domain.ErrCodeInvalidRoleAssignment, appErr.Code)
		})
	}
}

func TestBuildEventsValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(sub *domain.GameSubmission)
		cfg      Config
		wantCode string
	}{
		{
			name:     "NonPositiveWinPoints",
			mutate:   func(sub *domain.GameSubmission) { sub.WinPoints = 0 },
			cfg:      DefaultConfig(),
			wantCode: domain.ErrCodeInvalidPoints,
		},
		{
			name:     "NegativeSellPoints",
			mutate:   func(sub *domain.GameSubmission) { sub.Seller.Points = -1 },
			cfg:      DefaultConfig(),
			wantCode: domain.ErrCodeInvalidPoints,
		},
		{
			name:     "NegativeMultiplier",
			mutate:   func(sub *domain.GameSubmission) { sub.Participants[1].Multiplier = -2 },
			cfg:      DefaultConfig(),
			wantCode: domain.ErrCodeInvalidPoints,
		},
		{
			name:     "SellerLock",
			mutate:   func(sub *domain.GameSubmission) { sub.Participants[2].FirstRoundLock = true },
			cfg:      DefaultConfig(),
			wantCode: domain.ErrCodeInvalidLockTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := fourPlayerSubmission()
			tt.mutate(sub)

			_, err := Compute(sub, tt.cfg)
			require.Error(t, err)

			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestSellerLockAllowedByConfig(t *testing.T) {
	sub := fourPlayerSubmission()
	sub.Participants[2].FirstRoundLock = true

	result, err := Compute(sub, Config{BaseUnit: 1, AllowSellerLock: true})
	require.NoError(t, err)

	// Seller pays the sell points and the lock penalty.
	assert.Equal(t, int64(-3-5), result.Deltas[3])
	assert.Equal(t, int64(10+3+2+1+5), result.Deltas[1])
}

func TestComputeIsDeterministic(t *testing.T) {
	first, err := Compute(fourPlayerSubmission(), DefaultConfig())
	require.NoError(t, err)

	second, err := Compute(fourPlayerSubmission(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first.Deltas, second.Deltas)
	assert.Equal(t, first.Events, second.Events)
}

func TestZeroSellPointsYieldsNoSellEvent(t *testing.T) {
	sub := fourPlayerSubmission()
	sub.Seller.Points = 0

	result, err := Compute(sub, DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, result.Events[3])
	assert.Equal(t, int64(0), result.Deltas[3])
	assert.Equal(t, int64(10+2+1), result.Deltas[1])
}
