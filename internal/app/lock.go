package app

import "github.com/tdubuke98/gostop/internal/infrastructure/lock"

func (a *application) InitPlayerLockManager() *lock.PlayerLockManager {
	return lock.NewPlayerLockManager()
}
