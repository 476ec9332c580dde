package seeder

import (
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/tdubuke98/gostop/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	playerRepo domain.PlayerRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(playerRepo domain.PlayerRepository) *Seeder {
	return &Seeder{
		playerRepo: playerRepo,
	}
}

// SeedPlayers seeds the database with an initial admin and a starter table
// of players. Existing usernames are left untouched.
func (s *Seeder) SeedPlayers() error {
	log.Printf("Seeding players...")

	hash := sha256.Sum256([]byte("password123"))
	passwordHash := hex.EncodeToString(hash[:])

	players := []struct {
		name     string
		username string
		isAdmin  bool
	}{
		{"Admin", "admin", true},
		{"Minji", "minji", false},
		{"Hoon", "hoon", false},
		{"Sora", "sora", false},
		{"Jae", "jae", false},
	}

	for _, p := range players {
		existing, err := s.playerRepo.GetByUsername(p.username)
		if err != nil {
			log.Printf("Error checking existing player, skipping.")
			continue
		}

		if existing != nil {
			log.Printf("Player already exists, skipping.")
			continue
		}

		player := &domain.Player{
			Name:     p.name,
			Username: p.username,
			Password: passwordHash,
			IsAdmin:  p.isAdmin,
		}

		if err := s.playerRepo.Create(player); err != nil {
			log.Printf("Error creating player.")
			return err
		}
		log.Printf("Successfully created player.")
	}

	log.Printf("Player seeding completed successfully")
	return nil
}
