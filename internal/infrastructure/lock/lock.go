package lock

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

const acquireTimeout = 5 * time.Second

// PlayerLockManager serializes settlement transactions per player. A
// settlement touches every participant of a game, so the aggregator locks
// the full player set for the duration of validate-then-apply.
type PlayerLockManager struct {
	locks  sync.Map // map[int64]*sync.Mutex
	logger *zap.Logger
}

func NewPlayerLockManager() *PlayerLockManager {
	logger, _ := zap.NewProduction()
	return &PlayerLockManager{
		logger: logger,
	}
}

// Lock acquires a lock for the given playerID with timeout
func (m *PlayerLockManager) Lock(ctx context.Context, playerID int64) error {
	mu := m.getOrCreateMutex(playerID)

	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		m.logger.Debug("Lock acquired", zap.Int64("playerID", playerID))
		return nil
	case <-ctx.Done():
		m.logger.Error("Failed to acquire lock: context cancelled", zap.Int64("playerID", playerID), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for player %d: %w", playerID, ctx.Err())
	case <-time.After(acquireTimeout):
		m.logger.Error("Failed to acquire lock: timeout", zap.Int64("playerID", playerID), zap.Duration("timeout", acquireTimeout))
		return fmt.Errorf("failed to acquire lock for player %d: timeout", playerID)
	}
}

// Unlock releases the lock for the given playerID
func (m *PlayerLockManager) Unlock(playerID int64) {
	muInterface, ok := m.locks.Load(playerID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.Int64("playerID", playerID))
		return
	}
	mu := muInterface.(*sync.Mutex)
	mu.Unlock()
}

// LockPlayers acquires the locks for a set of players. Locks are always
// taken in ascending id order so two settlements over overlapping player
// sets cannot deadlock. On failure every lock acquired so far is released.
func (m *PlayerLockManager) LockPlayers(ctx context.Context, playerIDs []int64) error {
	ordered := dedupeSorted(playerIDs)

	for i, id := range ordered {
		if err := m.Lock(ctx, id); err != nil {
			for j := i - 1; j >= 0; j-- {
				m.Unlock(ordered[j])
			}
			return err
		}
	}
	return nil
}

// UnlockPlayers releases the locks for a set of players
func (m *PlayerLockManager) UnlockPlayers(playerIDs []int64) {
	ordered := dedupeSorted(playerIDs)
	for i := len(ordered) - 1; i >= 0; i-- {
		m.Unlock(ordered[i])
	}
}

// TryLock attempts to acquire a lock without blocking
func (m *PlayerLockManager) TryLock(playerID int64) bool {
	mu := m.getOrCreateMutex(playerID)
	return mu.TryLock()
}

func (m *PlayerLockManager) getOrCreateMutex(playerID int64) *sync.Mutex {
	mu, ok := m.locks.Load(playerID)
	if ok {
		return mu.(*sync.Mutex)
	}

	newMu := &sync.Mutex{}
	actual, _ := m.locks.LoadOrStore(playerID, newMu)
	return actual.(*sync.Mutex)
}

func dedupeSorted(playerIDs []int64) []int64 {
	seen := make(map[int64]bool, len(playerIDs))
	ordered := make([]int64, 0, len(playerIDs))
	for _, id := range playerIDs {
		if !seen[id] {
			seen[id] = true
			ordered = append(ordered, id)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	return ordered
}
