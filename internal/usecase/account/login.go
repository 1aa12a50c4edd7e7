package account

import (
	"context"
	"errors"

	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/passwords"
	"github.com/workhub/workhub-api/internal/validators"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	repo   domain.Repository
	hasher *passwords.Hasher
}

func NewLogin(
	repo domain.Repository,
	hasher *passwords.Hasher,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
	}
}

// Execute returns the same error for an unknown email and a wrong password.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*dto.UserSummary, error) {

	invalid := httperr.New(httperr.CodeInvalidCredentials, "Invalid email/password")

	email := validators.NormalizeEmail(in.Email)
	if email == "" {
		return nil, invalid
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}

	if !uc.hasher.Matches(user.PasswordHash, in.Password) {
		return nil, invalid
	}

	return summarize(user), nil
}
