package settlement

import (
	"fmt"

	"github.com/tdubuke98/gostop/internal/domain"
)

const (
	minParticipants = 2
	maxParticipants = 4
)

// AssignRoles maps every participant to exactly one role. The winner is not a
// role; it is validated for membership here and carried on the game record.
// Fails with INVALID_ROLE_ASSIGNMENT when the participant count is outside
// [2,4], when the winner or dealer is not a participant, or when a seller is
// declared that is missing, the dealer, or the winner.
func AssignRoles(participantIDs []int64, dealerID int64, sellerID *int64, winnerID int64) (map[int64]domain.Role, error) {
	if len(participantIDs) < minParticipants || len(participantIDs) > maxParticipants {
		return nil, domain.NewInvalidRoleAssignmentError(
			fmt.Sprintf("participant count must be between %d and %d, got %d", minParticipants, maxParticipants, len(participantIDs)))
	}

	members := make(map[int64]bool, len(participantIDs))
	for _, id := range participantIDs {
		if members[id] {
			return nil, domain.NewInvalidRoleAssignmentError(fmt.Sprintf("player %d listed more than once", id))
		}
		members[id] = true
	}

	if !members[winnerID] {
		return nil, domain.NewInvalidRoleAssignmentError(fmt.Sprintf("winner %d is not a participant", winnerID))
	}
	if !members[dealerID] {
		return nil, domain.NewInvalidRoleAssignmentError(fmt.Sprintf("dealer %d is not a participant", dealerID))
	}

	if sellerID != nil {
		if !members[*sellerID] {
			return nil, domain.NewInvalidRoleAssignmentError(fmt.Sprintf("seller %d is not a participant", *sellerID))
		}
		if *sellerID == dealerID {
			return nil, domain.NewInvalidRoleAssignmentError("seller cannot be the dealer")
		}
		if *sellerID == winnerID {
			return nil, domain.NewInvalidRoleAssignmentError("seller cannot be the winner")
		}
	}

	roles := make(map[int64]domain.Role, len(participantIDs))
	for _, id := range participantIDs {
		switch {
		case id == dealerID:
			roles[id] = domain.RoleDealer
		case sellerID != nil && id == *sellerID:
			roles[id] = domain.RoleSeller
		default:
			roles[id] = domain.RolePlainPlayer
		}
	}

	return roles, nil
}
