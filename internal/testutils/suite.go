package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"campus-placement-backend/internal/config"
	"campus-placement-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "placement"
	pgPassword = "placement"
	pgDatabase = "placement_test"
)

// One Postgres container serves every integration suite in the process.
var (
	containerOnce sync.Once
	containerErr  error
	container     struct {
		pool     *dockertest.Pool
		resource *dockertest.Resource
		db       *gorm.DB
		config   *config.Config
		tables   []string
	}
)

// BaseTestSuite gives integration suites a migrated database and a matching config
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and returns a suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("failed to start postgres test container: %v", containerErr)
	}
	return &BaseTestSuite{DB: container.db, Config: container.config}
}

// CleanupSharedContainer closes the shared connection and purges the container.
// TestMain calls it once the package's tests are done.
func CleanupSharedContainer() {
	if container.db != nil {
		if sqlDB, err := container.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		container.db = nil
	}
	if container.pool == nil || container.resource == nil {
		return
	}
	name := container.resource.Container.Name
	if err := container.pool.Purge(container.resource); err != nil {
		logrus.WithError(err).WithField("container", name).Warn("could not purge postgres test container")
		return
	}
	logrus.WithField("container", name).Info("purged postgres test container")
	container.resource = nil
	container.pool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the container running for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every migrated table
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(container.tables) == 0 {
		return
	}
	quoted := make([]string, len(container.tables))
	for i, table := range container.tables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		logrus.WithError(err).Warn("failed to truncate test tables")
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	container.pool = pool
	container.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error { return pingPostgres(dsn) }); err != nil {
		return fmt.Errorf("postgres never accepted connections: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("failed to migrate test database: %w", err)
	}
	container.db = db

	tables, err := migratedTables(db)
	if err != nil {
		return err
	}
	container.tables = tables

	container.config = &config.Config{
		DatabaseURL:              dsn,
		Port:                     "8080",
		LogLevel:                 "debug",
		Environment:              "test",
		JWTSecret:                "test-secret",
		RelationshipStatusPolicy: config.StatusPolicyMonotonic,
		SyncMaxAttempts:          3,
		SyncRetryInitialMS:       1,
	}

	logrus.WithFields(logrus.Fields{
		"port":   resource.GetPort("5432/tcp"),
		"tables": tables,
	}).Info("postgres test container ready")
	return nil
}

func pingPostgres(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// migratedTables resolves the table name of every migrated model
func migratedTables(db *gorm.DB) ([]string, error) {
	models := database.Models()
	tables := make([]string, 0, len(models))
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to resolve table for %T: %w", model, err)
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return tables, nil
}
