package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "jobsta-backend/internal/model"
	"jobsta-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context) error

// Exported seeded accounts and jobs for use across test packages
var (
	TestAdminUser m.User
	TestWorker1   m.User
	TestWorker2   m.User
	TestWorker3   m.User
	TestEmployer1 m.User
	TestEmployer2 m.User

	// TestSeedPassword is the plain password shared by all seeded accounts
	TestSeedPassword = "SeedPass123!"

	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample worker and employer accounts plus jobs if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	userSpecs := []struct {
		username    string
		displayName string
		email       string
		role        string
	}{
		{"worker_1", "Aoi Tanaka", "worker1@example.com", m.RoleWorker},
		{"worker_2", "Haruto Sato", "worker2@example.com", m.RoleWorker},
		{"worker_3", "Yui Kobayashi", "worker3@example.com", m.RoleWorker},
		{"employer_1", "Sakura Cafe", "employer1@example.com", m.RoleEmployer},
		{"employer_2", "Hoshino Logistics", "employer2@example.com", m.RoleEmployer},
		{"admin_user", "Admin", "admin@example.com", m.RoleAdmin},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		email := s.email
		users = append(users, m.User{
			ID:          uuid.New(),
			Username:    s.username,
			DisplayName: s.displayName,
			Email:       &email,
			Role:        s.role,
			Password:    hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	for _, u := range users {
		switch u.Username {
		case "worker_1":
			TestWorker1 = u
		case "worker_2":
			TestWorker2 = u
		case "worker_3":
			TestWorker3 = u
		case "employer_1":
			TestEmployer1 = u
		case "employer_2":
			TestEmployer2 = u
		case "admin_user":
			TestAdminUser = u
		}
	}

	// Seed jobs (only if none exist yet)
	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount == 0 {
		date1 := time.Now().AddDate(0, 1, 0)
		date2 := time.Now().AddDate(0, 2, 0)

		jobs := []m.Job{
			{
				EmployerID: TestEmployer1.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:       "Weekend Barista",
					Description: "Serve coffee and handle the register on weekends.",
					WageAmount:  1200,
					WageType:    m.WageTypeHourly,
					JobDate:     &date1,
					Location:    "Shibuya",
					MaxMembers:  3,
					Tags:        []string{"cafe", "weekend"},
				},
			},
			{
				EmployerID: TestEmployer1.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:       "Event Staff",
					Description: "Help set up and run a one-day pop-up event.",
					WageAmount:  10000,
					WageType:    m.WageTypeFixed,
					JobDate:     &date2,
					Location:    "Harajuku",
					MaxMembers:  5,
					Tags:        []string{"event", "oneday"},
				},
			},
			{
				EmployerID: TestEmployer2.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:       "Warehouse Picker",
					Description: "Pick and pack parcels, weekday mornings.",
					WageAmount:  1100,
					WageType:    m.WageTypeHourly,
					Location:    "Kawasaki",
					MaxMembers:  4,
					Tags:        []string{"logistics"},
				},
			},
		}

		if err := db.Create(&jobs).Error; err != nil {
			return err
		}
		TestJob1 = jobs[0]
		TestJob2 = jobs[1]
		TestJob3 = jobs[2]
	}

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{
		"worker_1", "worker_2", "worker_3", "employer_1", "employer_2", "admin_user",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Username {
		case "worker_1":
			TestWorker1 = u
		case "worker_2":
			TestWorker2 = u
		case "worker_3":
			TestWorker3 = u
		case "employer_1":
			TestEmployer1 = u
		case "employer_2":
			TestEmployer2 = u
		case "admin_user":
			TestAdminUser = u
		}
	}

	// Load first three jobs deterministically
	var jobs []m.Job
	if err := db.Order("id ASC").Limit(3).Find(&jobs).Error; err == nil {
		if len(jobs) > 0 {
			TestJob1 = jobs[0]
		}
		if len(jobs) > 1 {
			TestJob2 = jobs[1]
		}
		if len(jobs) > 2 {
			TestJob3 = jobs[2]
		}
	}

	return nil
}
