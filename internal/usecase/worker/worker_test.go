package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/workhub/workhub-api/internal/db/dbtest"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/infra/repository"
)

func setup(t *testing.T) (*gorm.DB, domain.Repository) {
	t.Helper()
	db := dbtest.NewSQLite(t)
	return db, repository.NewMarketplaceGormRepository(db)
}

func TestUpdateProfileReplacesFields(t *testing.T) {
	db, repo := setup(t)
	uc := NewUpdateProfile(repo, nil)
	ctx := context.Background()
	bob := dbtest.CreateUser(t, db, "worker", "Bob", "bob@x.com")

	profile, err := uc.Execute(ctx, ProfileInput{UserID: bob.ID, Skills: " barista ", ExperienceYears: 3, Location: "Oslo"})
	require.NoError(t, err)
	assert.Equal(t, "barista", profile.Skills)
	assert.Equal(t, 3, profile.ExperienceYears)
	assert.Equal(t, "Oslo", profile.Location)
	assert.Equal(t, "pending", profile.Status)

	profile, err = uc.Execute(ctx, ProfileInput{UserID: bob.ID, Skills: "cook"})
	require.NoError(t, err)
	assert.Equal(t, "cook", profile.Skills)
	assert.Equal(t, 0, profile.ExperienceYears)
	assert.Equal(t, "", profile.Location)
}

func TestUpdateProfileRejections(t *testing.T) {
	db, repo := setup(t)
	uc := NewUpdateProfile(repo, nil)
	ctx := context.Background()
	alice := dbtest.CreateUser(t, db, "owner", "Alice", "alice@x.com")
	bob := dbtest.CreateUser(t, db, "worker", "Bob", "bob@x.com")

	_, err := uc.Execute(ctx, ProfileInput{})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeMissingFields))

	_, err = uc.Execute(ctx, ProfileInput{UserID: bob.ID, ExperienceYears: -1})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidExperience))

	_, err = uc.Execute(ctx, ProfileInput{UserID: alice.ID})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotWorker))

	_, err = uc.Execute(ctx, ProfileInput{UserID: 999})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotWorker))
}

func TestSetStatusAnyOrder(t *testing.T) {
	db, repo := setup(t)
	uc := NewSetStatus(repo, nil)
	ctx := context.Background()
	bob := dbtest.CreateUser(t, db, "worker", "Bob", "bob@x.com")

	for _, s := range []string{"busy", "pending", "READY", "busy"} {
		res, err := uc.Execute(ctx, StatusInput{UserID: bob.ID, Status: s})
		require.NoError(t, err)
		assert.Equal(t, &dto.WorkerStatus{UserID: bob.ID, Status: string(domain.ParseStatus(s))}, res)
	}
}

func TestSetStatusRejections(t *testing.T) {
	_, repo := setup(t)
	uc := NewSetStatus(repo, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, StatusInput{UserID: 1, Status: "asleep"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))

	_, err = uc.Execute(ctx, StatusInput{Status: "ready"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeMissingFields))

	_, err = uc.Execute(ctx, StatusInput{UserID: 42, Status: "ready"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeWorkerNotFound))
}

func TestApplyToBusiness(t *testing.T) {
	db, repo := setup(t)
	uc := NewApplyToBusiness(repo, nil)
	ctx := context.Background()

	alice := dbtest.CreateUser(t, db, "owner", "Alice", "alice@x.com")
	bob := dbtest.CreateUser(t, db, "worker", "Bob", "bob@x.com")
	cafe := dbtest.CreateBusiness(t, db, alice.ID, "Cafe")

	_, err := uc.Execute(ctx, ApplyInput{WorkerUserID: bob.ID})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeMissingFields))

	_, err = uc.Execute(ctx, ApplyInput{WorkerUserID: alice.ID, BusinessID: cafe.ID})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotWorker))

	_, err = uc.Execute(ctx, ApplyInput{WorkerUserID: bob.ID, BusinessID: 999})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBusinessNotFound))

	link, err := uc.Execute(ctx, ApplyInput{WorkerUserID: bob.ID, BusinessID: cafe.ID})
	require.NoError(t, err)
	assert.False(t, link.Approved)
	assert.Equal(t, cafe.ID, link.BusinessID)

	_, err = uc.Execute(ctx, ApplyInput{WorkerUserID: bob.ID, BusinessID: cafe.ID})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyRequested))
}

func TestApplyConcurrentDuplicatesYieldOneSuccess(t *testing.T) {
	db, repo := setup(t)
	uc := NewApplyToBusiness(repo, nil)

	alice := dbtest.CreateUser(t, db, "owner", "Alice", "alice@x.com")
	bob := dbtest.CreateUser(t, db, "worker", "Bob", "bob@x.com")
	cafe := dbtest.CreateBusiness(t, db, alice.ID, "Cafe")

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), ApplyInput{WorkerUserID: bob.ID, BusinessID: cafe.ID})
		}(i)
	}
	wg.Wait()

	ok, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case httperr.IsBusiness(err, httperr.CodeAlreadyRequested):
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)
}

func TestListWorkersRatingAndOrder(t *testing.T) {
	db, repo := setup(t)
	uc := NewListWorkers(repo)
	ctx := context.Background()

	bob := dbtest.CreateUser(t, db, "worker", "Bob", "bob@x.com")
	carl := dbtest.CreateUser(t, db, "worker", "Carl", "carl@x.com")
	dana := dbtest.CreateUser(t, db, "worker", "Dana", "dana@x.com")
	eli := dbtest.CreateUser(t, db, "worker", "Eli", "eli@x.com")

	dbtest.Rate(t, db, bob.ID, 5, 3, 4)
	dbtest.Rate(t, db, carl.ID, 5, 4)
	dbtest.Rate(t, db, dana.ID, 4, 4, 4)

	items, err := uc.Execute(ctx, ListInput{})
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, carl.ID, items[0].UserID)
	assert.Equal(t, 4.5, items[0].AvgRating)

	// Bob and Dana tie on 4.0; the higher id comes first.
	assert.Equal(t, dana.ID, items[1].UserID)
	assert.Equal(t, bob.ID, items[2].UserID)
	assert.Equal(t, 4.0, items[2].AvgRating)
	assert.Equal(t, int64(3), items[2].RatingCount)

	assert.Equal(t, eli.ID, items[3].UserID)
	assert.Equal(t, 0.0, items[3].AvgRating)
	assert.Equal(t, int64(0), items[3].RatingCount)
}

func TestListWorkersFilters(t *testing.T) {
	db, repo := setup(t)
	uc := NewListWorkers(repo)
	ctx := context.Background()

	alice := dbtest.CreateUser(t, db, "owner", "Alice", "alice@x.com")
	bob := dbtest.CreateUser(t, db, "worker", "Bob", "bob@x.com")
	carl := dbtest.CreateUser(t, db, "worker", "Carl", "carl@x.com")
	cafe := dbtest.CreateBusiness(t, db, alice.ID, "Cafe")
	dbtest.Link(t, db, cafe.ID, bob.ID, true)
	dbtest.Link(t, db, cafe.ID, carl.ID, false)

	_, err := NewSetStatus(repo, nil).Execute(ctx, StatusInput{UserID: bob.ID, Status: "ready"})
	require.NoError(t, err)

	items, err := uc.Execute(ctx, ListInput{Status: "ready"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, bob.ID, items[0].UserID)
	assert.Equal(t, "ready", items[0].Status)

	items, err = uc.Execute(ctx, ListInput{Status: "busy"})
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = uc.Execute(ctx, ListInput{Status: "nonsense"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = uc.Execute(ctx, ListInput{BusinessID: cafe.ID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, bob.ID, items[0].UserID)

	items, err = uc.Execute(ctx, ListInput{BusinessID: cafe.ID, Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListRequestsShowsApproval(t *testing.T) {
	db, repo := setup(t)
	uc := NewListRequests(repo)
	ctx := context.Background()

	alice := dbtest.CreateUser(t, db, "owner", "Alice", "alice@x.com")
	bob := dbtest.CreateUser(t, db, "worker", "Bob", "bob@x.com")
	cafe := dbtest.CreateBusiness(t, db, alice.ID, "Cafe")

	items, err := uc.Execute(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	link, err := NewApplyToBusiness(repo, nil).Execute(ctx, ApplyInput{WorkerUserID: bob.ID, BusinessID: cafe.ID})
	require.NoError(t, err)

	items, err = uc.Execute(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, link.ID, items[0].RequestID)
	assert.Equal(t, "Cafe", items[0].BusinessName)
	assert.False(t, items[0].Approved)

	_, err = repo.ApproveBusinessWorker(ctx, link.ID)
	require.NoError(t, err)

	items, err = uc.Execute(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Approved)
}

func TestListRequestsRejections(t *testing.T) {
	db, repo := setup(t)
	uc := NewListRequests(repo)
	ctx := context.Background()
	alice := dbtest.CreateUser(t, db, "owner", "Alice", "alice@x.com")

	_, err := uc.Execute(ctx, 0)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeMissingFields))

	_, err = uc.Execute(ctx, alice.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotWorker))

	_, err = uc.Execute(ctx, 999)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotWorker))
}
