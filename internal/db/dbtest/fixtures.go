package dbtest

import (
	"testing"

	"gorm.io/gorm"

	"github.com/workhub/workhub-api/internal/models"
)

// CreateUser inserts a user directly, bypassing registration. Workers get
// their profile in the same call.
func CreateUser(t testing.TB, db *gorm.DB, role, name, email string) *models.User {
	t.Helper()

	user := &models.User{
		Role:         role,
		Name:         name,
		Email:        email,
		PasswordHash: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}

	if role == "worker" {
		profile := &models.WorkerProfile{UserID: user.ID, Status: "pending"}
		if err := db.Create(profile).Error; err != nil {
			t.Fatalf("create profile %s: %v", email, err)
		}
	}

	return user
}

func CreateBusiness(t testing.TB, db *gorm.DB, ownerID uint, name string) *models.Business {
	t.Helper()

	business := &models.Business{OwnerID: ownerID, Name: name}
	if err := db.Create(business).Error; err != nil {
		t.Fatalf("create business %s: %v", name, err)
	}
	return business
}

// Link inserts a business worker link with the given approval state.
func Link(t testing.TB, db *gorm.DB, businessID, workerID uint, approved bool) *models.BusinessWorker {
	t.Helper()

	link := &models.BusinessWorker{BusinessID: businessID, WorkerUserID: workerID}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("create link: %v", err)
	}
	if approved {
		if err := db.Model(link).Update("approved", true).Error; err != nil {
			t.Fatalf("approve link: %v", err)
		}
	}
	return link
}

func Rate(t testing.TB, db *gorm.DB, workerID uint, stars ...int) {
	t.Helper()

	for _, s := range stars {
		if err := db.Create(&models.Rating{WorkerUserID: workerID, Stars: s}).Error; err != nil {
			t.Fatalf("create rating: %v", err)
		}
	}
}
