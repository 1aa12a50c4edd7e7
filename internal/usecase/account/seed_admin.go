package account

import (
	"context"
	"strings"

	"github.com/workhub/workhub-api/internal/audit"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/models"
	"github.com/workhub/workhub-api/internal/passwords"
	"github.com/workhub/workhub-api/internal/validators"
)

type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

type SeedAdmin struct {
	repo   domain.Repository
	hasher *passwords.Hasher
	audit  *audit.Logger
}

func NewSeedAdmin(
	repo domain.Repository,
	hasher *passwords.Hasher,
	audit *audit.Logger,
) *SeedAdmin {
	return &SeedAdmin{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

// Execute creates the bootstrap admin unless an admin already exists and
// reports whether a row was written.
func (uc *SeedAdmin) Execute(
	ctx context.Context,
	in AdminSeed,
) (bool, error) {

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return false, err
	}

	admin := &models.User{
		Role:         string(domain.RoleAdmin),
		Name:         strings.TrimSpace(in.Name),
		Email:        validators.NormalizeEmail(in.Email),
		PasswordHash: hash,
	}

	created := false
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		exists, err := tx.HasUserWithRole(ctx, domain.RoleAdmin)
		if err != nil || exists {
			return err
		}
		if err := tx.CreateUser(ctx, admin); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if created {
		uc.audit.Log(ctx, audit.Event{
			Action:   "admin_seeded",
			Entity:   "user",
			EntityID: &admin.ID,
		})
	}

	return created, nil
}
