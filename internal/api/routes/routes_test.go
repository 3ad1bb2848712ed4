package routes_test

import (
	"net/http"
	"strings"
	"testing"

	"campus-placement-backend/internal/api/routes"
	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/config"
	"campus-placement-backend/internal/database/models"
	"campus-placement-backend/internal/mocks"
	"campus-placement-backend/internal/service"
	"campus-placement-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "routes-test-secret"

type routerFixture struct {
	http          *testutils.HTTPTestSuite
	relationships *mocks.MockRelationshipServiceInterface
	contacts      *mocks.MockContactServiceInterface
	rebuild       *mocks.MockRebuildServiceInterface
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		relationships: mocks.NewMockRelationshipServiceInterface(ctrl),
		contacts:      mocks.NewMockContactServiceInterface(ctrl),
		rebuild:       mocks.NewMockRebuildServiceInterface(ctrl),
	}

	authService, err := auth.NewAuthService(testSecret)
	require.NoError(t, err)

	cfg := &config.Config{AllowedOrigins: []string{"*"}}
	services := &routes.Services{
		Accounts:      mocks.NewMockAccountServiceInterface(ctrl),
		Relationships: f.relationships,
		Contacts:      f.contacts,
		Rebuild:       f.rebuild,
	}

	f.http = testutils.SetupHTTPTest()
	f.http.Router = routes.NewRouter(nil, cfg, services, auth.NewAuthMiddleware(authService))
	return f
}

func (f *routerFixture) token(t *testing.T, id uuid.UUID, kind models.AccountKind) map[string]string {
	return testutils.BearerHeader(testutils.SignToken(t, testSecret, id.String(), string(kind)))
}

func TestAPIRequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	recorder := f.http.MakeRequest(http.MethodGet, "/api/v1/relationships", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Authorization header is required")
}

func TestAPIRestrictsAccountKinds(t *testing.T) {
	f := newRouterFixture(t)
	student := f.token(t, uuid.New(), models.AccountKindStudent)
	teacher := f.token(t, uuid.New(), models.AccountKindTeacher)

	tests := []struct {
		name    string
		method  string
		path    string
		headers map[string]string
	}{
		{"student cannot read the pool", http.MethodGet, "/api/v1/relationships", student},
		{"student cannot bookmark", http.MethodPost, "/api/v1/bookmarks", student},
		{"teacher cannot apply", http.MethodPost, "/api/v1/applications", teacher},
		{"teacher cannot rebuild the ledger", http.MethodPost, "/api/v1/admin/ledger/rebuild", teacher},
		{"student cannot provision accounts", http.MethodPost, "/api/v1/accounts/enterprise", student},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := f.http.MakeRequestWithHeaders(tt.method, tt.path, map[string]string{}, tt.headers)
			testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Account kind not allowed")
		})
	}
}

func TestAPIRoutesAuthenticatedCaller(t *testing.T) {
	f := newRouterFixture(t)
	teacherID := uuid.New()

	f.relationships.EXPECT().
		ListPool(gomock.Any(), &auth.Caller{AccountID: teacherID, Kind: models.AccountKindTeacher}, service.PoolFilter{}, 1, 20).
		Return(&service.PoolResponse{Relationships: []service.RelationshipResponse{}, Page: 1, PageSize: 20}, nil)

	recorder := f.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/relationships", nil, f.token(t, teacherID, models.AccountKindTeacher))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestAdminRebuildRoute(t *testing.T) {
	f := newRouterFixture(t)
	f.rebuild.EXPECT().Rebuild(gomock.Any()).Return(&service.RebuildResult{}, nil)

	recorder := f.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/admin/ledger/rebuild", nil, f.token(t, uuid.New(), models.AccountKindAdmin))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	// generate one observed request first
	f.http.MakeRequest(http.MethodGet, "/api/v1/relationships", nil)

	recorder := f.http.MakeRequest(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), "placement_http_requests_total"))
}
