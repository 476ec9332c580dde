package settlement

import (
	"fmt"

	"github.com/tdubuke98/gostop/internal/domain"
)

// BuildEvents converts the wizard inputs into the per-participant event
// lists. This is a pure function of its inputs.
//
// Rules:
//   - the winner gets one WIN event carrying WinPoints (must be > 0)
//   - the seller, when present with positive points, gets one SELL event
//   - every non-winner, non-seller participant gets one LOSS_MULTIPLIER
//     event carrying its multiplier (default 1, must be >= 1)
//   - any participant flagged first-round-lock additionally gets a
//     FIRST_ROUND_LOCK event of 5 points; locking the seller is rejected
//     unless the configuration allows it
func BuildEvents(sub *domain.GameSubmission, roles map[int64]domain.Role, cfg Config) (map[int64][]domain.PointEvent, error) {
	if sub.WinPoints <= 0 {
		return nil, domain.NewInvalidPointsError(fmt.Sprintf("win points must be positive, got %d", sub.WinPoints))
	}
	if sub.Seller != nil && sub.Seller.Points < 0 {
		return nil, domain.NewInvalidPointsError(fmt.Sprintf("sell points must not be negative, got %d", sub.Seller.Points))
	}

	events := make(map[int64][]domain.PointEvent, len(sub.Participants))
	for _, p := range sub.Participants {
		role := roles[p.ID]

		switch {
		case p.ID == sub.WinnerID:
			events[p.ID] = append(events[p.ID], domain.PointEvent{Type: domain.EventTypeWin, Points: sub.WinPoints})
		case role == domain.RoleSeller:
			if sub.Seller.Points > 0 {
				events[p.ID] = append(events[p.ID], domain.PointEvent{Type: domain.EventTypeSell, Points: sub.Seller.Points})
			}
		default:
			multiplier := p.Multiplier
			if multiplier == 0 {
				multiplier = 1
			}
			if multiplier < 1 {
				return nil, domain.NewInvalidPointsError(fmt.Sprintf("multiplier for player %d must be at least 1, got %d", p.ID, p.Multiplier))
			}
			events[p.ID] = append(events[p.ID], domain.PointEvent{Type: domain.EventTypeLossMultiplier, Points: multiplier})
		}

		if p.FirstRoundLock {
			if role == domain.RoleSeller && !cfg.AllowSellerLock {
				return nil, domain.NewInvalidLockTargetError(fmt.Sprintf("seller %d cannot hold a first-round lock", p.ID))
			}
			events[p.ID] = append(events[p.ID], domain.PointEvent{Type: domain.EventTypeFirstRoundLock, Points: domain.FirstRoundLockPoints})
		}
	}

	return events, nil
}
