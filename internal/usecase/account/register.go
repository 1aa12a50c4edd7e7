package account

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/workhub/workhub-api/internal/audit"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/models"
	"github.com/workhub/workhub-api/internal/passwords"
	"github.com/workhub/workhub-api/internal/validators"
)

const MinPasswordLength = 4

type RegisterInput struct {
	Role     string
	Name     string
	Email    string
	Phone    string
	Password string
}

type Register struct {
	repo        domain.Repository
	hasher      *passwords.Hasher
	audit       *audit.Logger
	domainCheck func(email string) bool
}

// NewRegister builds the registration use case. When checkEmailDomain is
// set the email domain must resolve before anything is written.
func NewRegister(
	repo domain.Repository,
	hasher *passwords.Hasher,
	audit *audit.Logger,
	checkEmailDomain bool,
) *Register {
	uc := &Register{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
	if checkEmailDomain {
		uc.domainCheck = validators.IsEmailDomainValid
	}
	return uc
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*dto.UserSummary, error) {

	role := domain.ParseRole(in.Role)
	if !role.SelfRegistrable() {
		return nil, httperr.New(httperr.CodeInvalidRole, "Role must be owner or worker")
	}

	name := strings.TrimSpace(in.Name)
	email := validators.NormalizeEmail(in.Email)
	if name == "" || email == "" || utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return nil, httperr.New(httperr.CodeMissingFields, "Name, email and password (min 4 chars) required")
	}

	if uc.domainCheck != nil && !uc.domainCheck(email) {
		return nil, httperr.New(httperr.CodeInvalidEmailDomain, "Email domain cannot receive mail")
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Role:         string(role),
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		Email:        email,
		PasswordHash: hash,
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}
		if role != domain.RoleWorker {
			return nil
		}
		return tx.CreateWorkerProfile(ctx, &models.WorkerProfile{
			UserID: user.ID,
			Status: string(domain.InitialStatus()),
		})
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, httperr.New(httperr.CodeEmailTaken, "Email already exists")
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		ActorID:  &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	return summarize(user), nil
}

func summarize(u *models.User) *dto.UserSummary {
	return &dto.UserSummary{
		ID:    u.ID,
		Role:  u.Role,
		Name:  u.Name,
		Email: u.Email,
	}
}
