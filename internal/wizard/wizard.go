// Package wizard implements the data-collection flow that produces a game
// submission. The flow is a strictly ordered finite state machine; the
// CHOOSE_SELLER step only exists for four-player games.
package wizard

import (
	"fmt"

	"github.com/tdubuke98/gostop/internal/domain"
)

// State represents one step of the new-game flow
type State string

const (
	StateSelectPlayers State = "SELECT_PLAYERS"
	StateChooseDealer  State = "CHOOSE_DEALER"
	StateChooseSeller  State = "CHOOSE_SELLER"
	StateScoreResults  State = "SCORE_RESULTS"
	StateConfirm       State = "CONFIRM"
)

// sellerThreshold is the participant count at which the seller step applies.
const sellerThreshold = 4

// forwardOrder is the full step sequence; transitions skip CHOOSE_SELLER for
// games below the seller threshold.
var forwardOrder = []State{
	StateSelectPlayers,
	StateChooseDealer,
	StateChooseSeller,
	StateScoreResults,
	StateConfirm,
}

// ParticipantEntry holds the per-player inputs collected during the flow
type ParticipantEntry struct {
	PlayerID       int64
	Multiplier     int64
	FirstRoundLock bool
}

// Flow collects a game submission step by step. It is not safe for
// concurrent use; each flow belongs to a single caller.
type Flow struct {
	state State

	players    []int64
	dealerID   *int64
	sellerID   *int64
	sellPoints int64
	winnerID   *int64
	winPoints  int64
	entries    map[int64]*ParticipantEntry
}

// NewFlow creates a flow positioned at the initial step
func NewFlow() *Flow {
	return &Flow{
		state:   StateSelectPlayers,
		entries: make(map[int64]*ParticipantEntry),
	}
}

// State returns the current step
func (f *Flow) State() State {
	return f.state
}

// SelectPlayers records the participating players. Only legal in the
// SELECT_PLAYERS step.
func (f *Flow) SelectPlayers(playerIDs []int64) error {
	if f.state != StateSelectPlayers {
		return f.wrongState(StateSelectPlayers)
	}
	seen := make(map[int64]bool, len(playerIDs))
	for _, id := range playerIDs {
		if seen[id] {
			return domain.NewValidationError("players", fmt.Sprintf("player %d selected more than once", id))
		}
		seen[id] = true
	}
	f.players = playerIDs
	f.entries = make(map[int64]*ParticipantEntry, len(playerIDs))
	for _, id := range playerIDs {
		f.entries[id] = &ParticipantEntry{PlayerID: id, Multiplier: 1}
	}
	f.dealerID = nil
	f.sellerID = nil
	f.winnerID = nil
	return nil
}

// ChooseDealer records the dealer. Only legal in the CHOOSE_DEALER step.
func (f *Flow) ChooseDealer(playerID int64) error {
	if f.state != StateChooseDealer {
		return f.wrongState(StateChooseDealer)
	}
	if !f.isParticipant(playerID) {
		return domain.NewValidationError("dealer", fmt.Sprintf("player %d is not selected", playerID))
	}
	f.dealerID = &playerID
	return nil
}

// ChooseSeller records the seller and their payment. Only legal in the
// CHOOSE_SELLER step; passing a nil seller skips the role.
func (f *Flow) ChooseSeller(playerID *int64, points int64) error {
	if f.state != StateChooseSeller {
		return f.wrongState(StateChooseSeller)
	}
	if playerID == nil {
		f.sellerID = nil
		f.sellPoints = 0
		return nil
	}
	if !f.isParticipant(*playerID) {
		return domain.NewValidationError("seller", fmt.Sprintf("player %d is not selected", *playerID))
	}
	if f.dealerID != nil && *playerID == *f.dealerID {
		return domain.NewValidationError("seller", "seller cannot be the dealer")
	}
	f.sellerID = playerID
	f.sellPoints = points
	return nil
}

// ScoreResults records the winner, win points, and per-player multipliers and
// lock flags. Only legal in the SCORE_RESULTS step.
func (f *Flow) ScoreResults(winnerID int64, winPoints int64, entries []ParticipantEntry) error {
	if f.state != StateScoreResults {
		return f.wrongState(StateScoreResults)
	}
	if !f.isParticipant(winnerID) {
		return domain.NewValidationError("winner", fmt.Sprintf("player %d is not selected", winnerID))
	}
	f.winnerID = &winnerID
	f.winPoints = winPoints
	for _, e := range entries {
		if entry, ok := f.entries[e.PlayerID]; ok {
			entry.Multiplier = e.Multiplier
			entry.FirstRoundLock = e.FirstRoundLock
		}
	}
	return nil
}

// Next advances to the following step once the current step's completeness
// predicate holds. CONFIRM is terminal.
func (f *Flow) Next() error {
	if f.state == StateConfirm {
		return domain.NewValidationError("state", "flow is already at the confirmation step")
	}
	if err := f.completeness(); err != nil {
		return err
	}
	f.state = f.follow(f.state, +1)
	return nil
}

// Back returns to the previous step. Always allowed except from the initial
// step; collected input is retained.
func (f *Flow) Back() error {
	if f.state == StateSelectPlayers {
		return domain.NewValidationError("state", "cannot go back from the initial step")
	}
	f.state = f.follow(f.state, -1)
	return nil
}

// Cancel discards all in-progress input and resets the flow
func (f *Flow) Cancel() {
	*f = *NewFlow()
}

// Submission builds the structured submission for the settlement pipeline.
// Only legal in the terminal CONFIRM step.
func (f *Flow) Submission() (*domain.GameSubmission, error) {
	if f.state != StateConfirm {
		return nil, f.wrongState(StateConfirm)
	}

	sub := &domain.GameSubmission{
		WinnerID:  *f.winnerID,
		DealerID:  *f.dealerID,
		WinPoints: f.winPoints,
	}
	if f.sellerID != nil {
		sub.Seller = &domain.SellerInput{ID: *f.sellerID, Points: f.sellPoints}
	}
	for _, id := range f.players {
		entry := f.entries[id]
		sub.Participants = append(sub.Participants, domain.ParticipantInput{
			ID:             id,
			Multiplier:     entry.Multiplier,
			FirstRoundLock: entry.FirstRoundLock,
		})
	}
	return sub, nil
}

// follow walks the step sequence in the given direction, skipping the seller
// step for games below the seller threshold.
func (f *Flow) follow(from State, direction int) State {
	idx := 0
	for i, s := range forwardOrder {
		if s == from {
			idx = i
			break
		}
	}
	next := forwardOrder[idx+direction]
	if next == StateChooseSeller && len(f.players) < sellerThreshold {
		next = forwardOrder[idx+2*direction]
	}
	return next
}

// completeness is the per-step predicate gating forward transitions
func (f *Flow) completeness() error {
	switch f.state {
	case StateSelectPlayers:
		if len(f.players) < 2 {
			return domain.NewValidationError("players", "at least 2 players must be selected")
		}
		if len(f.players) > 4 {
			return domain.NewValidationError("players", "at most 4 players may be selected")
		}
	case StateChooseDealer:
		if f.dealerID == nil {
			return domain.NewValidationError("dealer", "a dealer must be chosen")
		}
	case StateChooseSeller:
		// Selling is optional; the step is complete with or without one.
	case StateScoreResults:
		if f.winnerID == nil {
			return domain.NewValidationError("winner", "a winner must be chosen")
		}
	}
	return nil
}

func (f *Flow) isParticipant(playerID int64) bool {
	_, ok := f.entries[playerID]
	return ok
}

func (f *Flow) wrongState(expected State) error {
	return domain.NewValidationError("state", fmt.Sprintf("operation requires step %s, flow is at %s", expected, f.state))
}
