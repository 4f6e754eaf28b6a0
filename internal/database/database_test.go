package database

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobsta-backend/internal/model"
)

var testDB *DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var midTeardown func(context.Context) error
	midTeardown, testDB, err = GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	code := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestSeededAccounts(t *testing.T) {
	assert.NotEqual(t, "", TestWorker1.ID.String())
	assert.Equal(t, model.RoleWorker, TestWorker1.Role)
	assert.Equal(t, model.RoleEmployer, TestEmployer1.Role)
	assert.NotZero(t, TestJob1.ID)
	assert.Equal(t, TestEmployer1.ID, TestJob1.EmployerID)
}

func TestGroupNameUniqueConstraint(t *testing.T) {
	// The composite unique index on (job_id, name) is the correctness
	// mechanism for group name uniqueness; two inserts racing past the
	// application-level pre-check must still end with one success.
	g1 := model.Group{JobID: TestJob3.ID, Name: "constraint-check", LeaderID: TestWorker1.ID}
	g2 := model.Group{JobID: TestJob3.ID, Name: "constraint-check", LeaderID: TestWorker2.ID}

	assert.NoError(t, testDB.Create(&g1).Error)
	assert.Error(t, testDB.Create(&g2).Error)

	// Same name on a different job is fine.
	g3 := model.Group{JobID: TestJob2.ID, Name: "constraint-check", LeaderID: TestWorker2.ID}
	assert.NoError(t, testDB.Create(&g3).Error)
}

func TestIndividualApplicationUniqueConstraint(t *testing.T) {
	uid := TestWorker2.ID
	a1 := model.Application{JobID: TestJob3.ID, UserID: &uid, Status: model.ApplicationStatusSubmitted}
	a2 := model.Application{JobID: TestJob3.ID, UserID: &uid, Status: model.ApplicationStatusSubmitted}

	assert.NoError(t, testDB.Create(&a1).Error)
	assert.Error(t, testDB.Create(&a2).Error, "partial unique index must reject the duplicate row")

	var count int64
	testDB.Model(&model.Application{}).
		Where("job_id = ? AND user_id = ? AND group_id IS NULL", TestJob3.ID, uid).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGroupApplicationUniqueConstraint(t *testing.T) {
	g := model.Group{JobID: TestJob2.ID, Name: "one-shot", LeaderID: TestWorker1.ID}
	assert.NoError(t, testDB.Create(&g).Error)

	a1 := model.Application{JobID: TestJob2.ID, GroupID: &g.ID, Status: model.ApplicationStatusSubmitted}
	a2 := model.Application{JobID: TestJob2.ID, GroupID: &g.ID, Status: model.ApplicationStatusSubmitted}

	assert.NoError(t, testDB.Create(&a1).Error)
	assert.Error(t, testDB.Create(&a2).Error)
}
