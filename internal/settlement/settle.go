// Package settlement implements the scoring engine for the ledger: role
// assignment, point event construction, and the conversion of one game's
// events into signed point deltas. Everything in this package is pure; state
// lives with the callers.
package settlement

import (
	"fmt"

	"github.com/tdubuke98/gostop/internal/domain"
)

// Config carries the externally configured settlement constants. BaseUnit is
// the point value of one loss-multiplier unit and is not configurable per
// game.
type Config struct {
	BaseUnit        int64
	AllowSellerLock bool
}

// DefaultConfig returns the settlement defaults used when no configuration
// is supplied.
func DefaultConfig() Config {
	return Config{BaseUnit: 1, AllowSellerLock: false}
}

// Settlement is the full result of settling one game submission
type Settlement struct {
	Roles  map[int64]domain.Role
	Events map[int64][]domain.PointEvent
	Deltas map[int64]int64
}

// Compute runs the whole settlement pipeline for one submission: role
// assignment, event construction, and delta accumulation. No state is
// mutated; callers persist the result.
func Compute(sub *domain.GameSubmission, cfg Config) (*Settlement, error) {
	participantIDs := make([]int64, 0, len(sub.Participants))
	for _, p := range sub.Participants {
		participantIDs = append(participantIDs, p.ID)
	}

	var sellerID *int64
	if sub.Seller != nil {
		sellerID = &sub.Seller.ID
	}

	roles, err := AssignRoles(participantIDs, sub.DealerID, sellerID, sub.WinnerID)
	if err != nil {
		return nil, err
	}

	events, err := BuildEvents(sub, roles, cfg)
	if err != nil {
		return nil, err
	}

	deltas, err := settle(events, sub.WinnerID, sub.WinPoints, cfg)
	if err != nil {
		return nil, err
	}

	return &Settlement{Roles: roles, Events: events, Deltas: deltas}, nil
}

// settle accumulates the signed deltas for every participant. Deltas are
// accumulated, never overwritten: a participation may carry both a role
// event and a lock event.
//
// The winner's gain is WIN points plus everything collected from the other
// players. The consistency check therefore validates only the loss-side
// symmetry: collected == sum of the other players' losses. The WIN component
// is awarded on top and is intentionally outside the check.
func settle(events map[int64][]domain.PointEvent, winnerID int64, winPoints int64, cfg Config) (map[int64]int64, error) {
	deltas := make(map[int64]int64, len(events))
	for id := range events {
		deltas[id] = 0
	}

	for playerID, list := range events {
		for _, ev := range list {
			switch ev.Type {
			case domain.EventTypeWin:
				deltas[playerID] += ev.Points
			case domain.EventTypeSell:
				deltas[playerID] -= ev.Points
				deltas[winnerID] += ev.Points
			case domain.EventTypeLossMultiplier:
				loss := cfg.BaseUnit * ev.Points
				deltas[playerID] -= loss
				deltas[winnerID] += loss
			case domain.EventTypeFirstRoundLock:
				deltas[playerID] -= ev.Points
				deltas[winnerID] += ev.Points
			default:
				return nil, domain.NewInvalidPointsError(fmt.Sprintf("unknown event type %q", ev.Type))
			}
		}
	}

	collected := deltas[winnerID] - winPoints
	var losses int64
	for playerID, delta := range deltas {
		if playerID == winnerID {
			continue
		}
		losses -= delta
	}
	if collected != losses {
		return nil, domain.NewUnbalancedSettlementError(
			fmt.Sprintf("winner collected %d but other players lost %d", collected, losses))
	}

	return deltas, nil
}
