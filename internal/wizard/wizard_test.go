package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdubuke98/gostop/internal/domain"
)

func advanceToScoring(t *testing.T, flow *Flow, players []int64, dealerID int64) {
	t.Helper()
	require.NoError(t, flow.SelectPlayers(players))
	require.NoError(t, flow.Next())
	require.NoError(t, flow.ChooseDealer(dealerID))
	require.NoError(t, flow.Next())
	if flow.State() == StateChooseSeller {
		require.NoError(t, flow.Next())
	}
	require.Equal(t, StateScoreResults, flow.State())
}

func TestFourPlayerFlowVisitsSellerStep(t *testing.T) {
	flow := NewFlow()

	require.NoError(t, flow.SelectPlayers([]int64{1, 2, 3, 4}))
	require.NoError(t, flow.Next())
	assert.Equal(t, StateChooseDealer, flow.State())

	require.NoError(t, flow.ChooseDealer(1))
	require.NoError(t, flow.Next())
	assert.Equal(t, StateChooseSeller, flow.State())

	seller := int64(3)
	require.NoError(t, flow.ChooseSeller(&seller, 3))
	require.NoError(t, flow.Next())
	assert.Equal(t, StateScoreResults, flow.State())

	require.NoError(t, flow.ScoreResults(1, 10, []ParticipantEntry{
		{PlayerID: 2, Multiplier: 2},
		{PlayerID: 4, Multiplier: 1},
	}))
	require.NoError(t, flow.Next())
	assert.Equal(t, StateConfirm, flow.State())

	sub, err := flow.Submission()
	require.NoError(t, err)
	assert.Equal(t, int64(1), sub.WinnerID)
	assert.Equal(t, int64(1), sub.DealerID)
	assert.Equal(t, int64(10), sub.WinPoints)
	require.NotNil(t, sub.Seller)
	assert.Equal(t, int64(3), sub.Seller.ID)
	assert.Equal(t, int64(3), sub.Seller.Points)
	assert.Len(t, sub.Participants, 4)
}

func TestThreePlayerFlowSkipsSellerStep(t *testing.T) {
	flow := NewFlow()

	require.NoError(t, flow.SelectPlayers([]int64{1, 2, 3}))
	require.NoError(t, flow.Next())
	require.NoError(t, flow.ChooseDealer(2))
	require.NoError(t, flow.Next())

	assert.Equal(t, StateScoreResults, flow.State())

	require.NoError(t, flow.ScoreResults(3, 5, nil))
	require.NoError(t, flow.Next())

	sub, err := flow.Submission()
	require.NoError(t, err)
	assert.Nil(t, sub.Seller)
	assert.Len(t, sub.Participants, 3)
}

func TestBackSkipsSellerStepForSmallGames(t *testing.T) {
	flow := NewFlow()
	advanceToScoring(t, flow, []int64{1, 2}, 1)

	require.NoError(t, flow.Back())
	assert.Equal(t, StateChooseDealer, flow.State())
}

func TestBackFromInitialStepFails(t *testing.T) {
	flow := NewFlow()
	err := flow.Back()
	require.Error(t, err)
}

func TestForwardRequiresCompleteness(t *testing.T) {
	flow := NewFlow()

	// No players selected yet.
	require.Error(t, flow.Next())

	require.NoError(t, flow.SelectPlayers([]int64{1}))
	require.Error(t, flow.Next())

	require.NoError(t, flow.SelectPlayers([]int64{1, 2, 3, 4, 5}))
	require.Error(t, flow.Next())

	require.NoError(t, flow.SelectPlayers([]int64{1, 2}))
	require.NoError(t, flow.Next())

	// No dealer chosen yet.
	require.Error(t, flow.Next())
}

func TestSellerValidation(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.SelectPlayers([]int64{1, 2, 3, 4}))
	require.NoError(t, flow.Next())
	require.NoError(t, flow.ChooseDealer(1))
	require.NoError(t, flow.Next())

	dealer := int64(1)
	require.Error(t, flow.ChooseSeller(&dealer, 3))

	outsider := int64(9)
	require.Error(t, flow.ChooseSeller(&outsider, 3))

	// Selling is optional.
	require.NoError(t, flow.ChooseSeller(nil, 0))
	require.NoError(t, flow.Next())
}

func TestCancelDiscardsAllInput(t *testing.T) {
	flow := NewFlow()
	advanceToScoring(t, flow, []int64{1, 2, 3}, 1)

	flow.Cancel()
	assert.Equal(t, StateSelectPlayers, flow.State())

	_, err := flow.Submission()
	require.Error(t, err)
}

func TestConfirmIsTerminal(t *testing.T) {
	flow := NewFlow()
	advanceToScoring(t, flow, []int64{1, 2}, 1)
	require.NoError(t, flow.ScoreResults(2, 5, nil))
	require.NoError(t, flow.Next())

	require.Equal(t, StateConfirm, flow.State())
	require.Error(t, flow.Next())
}

func TestStepOperationsRejectedOutOfOrder(t *testing.T) {
	flow := NewFlow()

	err := flow.ChooseDealer(1)
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	require.Error(t, flow.ScoreResults(1, 5, nil))
	seller := int64(2)
	require.Error(t, flow.ChooseSeller(&seller, 1))
}
