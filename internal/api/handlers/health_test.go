package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"campus-placement-backend/internal/api/handlers"
	"campus-placement-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHealthRouter(t *testing.T) (*testutils.HTTPTestSuite, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	handler := handlers.NewHealthHandler(db)
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)
	return httpSuite, mock
}

func TestHealth(t *testing.T) {
	httpSuite, mock := newHealthRouter(t)
	mock.ExpectPing()

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "healthy", response.Services["database"])
	assert.Equal(t, handlers.Version, response.Version)
}

func TestHealthDatabaseDown(t *testing.T) {
	httpSuite, mock := newHealthRouter(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Contains(t, response.Services["database"], "connection refused")
}

func TestReadyDatabaseDown(t *testing.T) {
	httpSuite, mock := newHealthRouter(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, false, response["ready"])
}

func TestLive(t *testing.T) {
	httpSuite, _ := newHealthRouter(t)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, true, response["alive"])
}
