package config

import (
	"log"

	"kampus-admin/internal/adapters/persistence/models"
	"kampus-admin/internal/core/domain"
	"kampus-admin/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedFounderAccounts(); err != nil {
		log.Printf("⚠️ Founder seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedFounderAccounts creates the two protected accounts with full
// capability flags on first boot. Passwords come from the environment;
// the defaults are placeholders for development only.
func (s *Seeder) seedFounderAccounts() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	founders := []struct {
		email    string
		password string
	}{
		{domain.ProtectedEmails[0], s.cfg.Seed.OwnerPassword},
		{domain.ProtectedEmails[1], s.cfg.Seed.PartnerPassword},
	}

	for _, f := range founders {
		hashed, err := password.Hash(f.password)
		if err != nil {
			return err
		}

		user := &models.User{
			Email:                       f.email,
			Password:                    hashed,
			CanManageCustomers:          true,
			CanManageFinancial:          true,
			CanManageCollaborationCodes: true,
			CanViewCollaborationStats:   true,
			CanManageAccess:             true,
			CanDeleteUsers:              true,
		}

		if err := s.db.Create(user).Error; err != nil {
			return err
		}

		log.Printf("✅ Founder account created: %s", user.Email)
	}

	return nil
}
