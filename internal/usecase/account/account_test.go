package account

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/workhub/workhub-api/internal/audit"
	"github.com/workhub/workhub-api/internal/db/dbtest"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/infra/repository"
	"github.com/workhub/workhub-api/internal/models"
	"github.com/workhub/workhub-api/internal/passwords"
)

func setup(t *testing.T) (*gorm.DB, *Register, *Login, *test.Hook) {
	t.Helper()

	db := dbtest.NewSQLite(t)
	repo := repository.NewMarketplaceGormRepository(db)
	hasher := passwords.NewHasher(bcrypt.MinCost)
	log, hook := test.NewNullLogger()

	return db,
		NewRegister(repo, hasher, audit.New(log), false),
		NewLogin(repo, hasher),
		hook
}

func TestRegisterWorkerCreatesPendingProfile(t *testing.T) {
	db, register, _, hook := setup(t)

	user, err := register.Execute(context.Background(), RegisterInput{
		Role:     " Worker ",
		Name:     " Bob ",
		Email:    "Bob@X.com",
		Password: "pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "worker", user.Role)
	assert.Equal(t, "Bob", user.Name)
	assert.Equal(t, "bob@x.com", user.Email)

	var profile models.WorkerProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "pending", profile.Status)
	assert.Equal(t, 0, profile.ExperienceYears)
	assert.Equal(t, "", profile.Skills)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "user_registered", hook.LastEntry().Message)
}

func TestRegisterOwnerHasNoProfile(t *testing.T) {
	db, register, _, _ := setup(t)

	user, err := register.Execute(context.Background(), RegisterInput{
		Role: "owner", Name: "Alice", Email: "alice@x.com", Password: "pass",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.WorkerProfile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterValidation(t *testing.T) {
	_, register, _, _ := setup(t)

	cases := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{"admin role", RegisterInput{Role: "admin", Name: "A", Email: "a@x.com", Password: "pass"}, httperr.CodeInvalidRole},
		{"unknown role", RegisterInput{Role: "boss", Name: "A", Email: "a@x.com", Password: "pass"}, httperr.CodeInvalidRole},
		{"blank name", RegisterInput{Role: "owner", Name: "  ", Email: "a@x.com", Password: "pass"}, httperr.CodeMissingFields},
		{"blank email", RegisterInput{Role: "owner", Name: "A", Email: "", Password: "pass"}, httperr.CodeMissingFields},
		{"short password", RegisterInput{Role: "owner", Name: "A", Email: "a@x.com", Password: "abc"}, httperr.CodeMissingFields},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := register.Execute(context.Background(), tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	db, register, _, _ := setup(t)
	ctx := context.Background()

	_, err := register.Execute(ctx, RegisterInput{Role: "worker", Name: "Bob", Email: "bob@x.com", Password: "pass"})
	require.NoError(t, err)

	_, err = register.Execute(ctx, RegisterInput{Role: "worker", Name: "Bob 2", Email: " BOB@x.com", Password: "pass"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeEmailTaken))

	var users, profiles int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.WorkerProfile{}).Count(&profiles)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), profiles)
}

func TestRegisterRejectsUnresolvableDomain(t *testing.T) {
	_, register, _, _ := setup(t)
	register.domainCheck = func(string) bool { return false }

	_, err := register.Execute(context.Background(), RegisterInput{
		Role: "owner", Name: "A", Email: "a@nowhere.invalid", Password: "pass",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidEmailDomain))
}

func TestLogin(t *testing.T) {
	_, register, login, _ := setup(t)
	ctx := context.Background()

	created, err := register.Execute(ctx, RegisterInput{Role: "owner", Name: "Alice", Email: "alice@x.com", Password: "secret"})
	require.NoError(t, err)

	user, err := login.Execute(ctx, LoginInput{Email: " ALICE@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, created, user)

	_, err = login.Execute(ctx, LoginInput{Email: "alice@x.com", Password: "wrong"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))

	_, errUnknown := login.Execute(ctx, LoginInput{Email: "nobody@x.com", Password: "secret"})
	assert.Equal(t, err, errUnknown)
}

func TestSeedAdminOnlyOnce(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := repository.NewMarketplaceGormRepository(db)
	seed := NewSeedAdmin(repo, passwords.NewHasher(bcrypt.MinCost), nil)
	ctx := context.Background()

	in := AdminSeed{Name: "Admin", Email: "Admin@Workhub.local", Password: "admin123"}

	created, err := seed.Execute(ctx, in)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = seed.Execute(ctx, AdminSeed{Name: "Other", Email: "other@workhub.local", Password: "admin123"})
	require.NoError(t, err)
	assert.False(t, created)

	var admins []models.User
	require.NoError(t, db.Where("role = ?", "admin").Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@workhub.local", admins[0].Email)
}
