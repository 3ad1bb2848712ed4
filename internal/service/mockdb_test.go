package service_test

import (
	"testing"
	"time"

	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/database/models"
	"campus-placement-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fastRetry keeps retry tests quick
var fastRetry = service.RetryPolicy{MaxAttempts: 3, InitialInterval: time.Millisecond}

// newMockDB opens gorm on top of sqlmock so transaction boundaries can be asserted
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func callerOf(kind models.AccountKind) *auth.Caller {
	return &auth.Caller{AccountID: uuid.New(), Kind: kind}
}
