package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	accountmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/account"
	divisionmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/division"
	seasonmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/season"
	weekmock "github.com/riskibarqy/street-hockey-league/internal/mocks/domain/week"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	router   http.Handler
	verifier *stubVerifier
	seasons  *seasonmock.Repository
	weeks    *weekmock.Repository
	sessions *accountmock.SessionRepository
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()

	seasons := seasonmock.NewRepository(t)
	divisions := divisionmock.NewRepository(t)
	weeks := weekmock.NewRepository(t)
	sessions := accountmock.NewSessionRepository(t)
	logger := logging.NewNop()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	clock := usecase.NewFixedClock(time.Date(2025, time.June, 1, 12, 0, 0, 0, loc), loc)

	handler := NewHandler(
		usecase.NewLeagueService(seasons, divisions),
		nil,
		nil,
		nil,
		usecase.NewCancellationService(weeks, divisions, clock, logger),
		nil,
		nil,
		nil,
		usecase.NewStaffService(nil, nil, sessions, nil, time.Hour, logger),
		nil,
		nil,
		nil,
		logger,
	)
	verifier := newStubVerifier()

	return routerFixture{
		router:   NewRouter(handler, verifier, logger, []string{"https://dcstreethockey.com"}, "job-secret"),
		verifier: verifier,
		seasons:  seasons,
		weeks:    weeks,
		sessions: sessions,
	}
}

func (f routerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ListSeasons(t *testing.T) {
	f := newRouterFixture(t)
	current := true
	f.seasons.On("List", mock.Anything).Return([]season.Season{
		{ID: 9, Year: 2025, Type: season.TypeSpring, IsCurrent: &current},
		{ID: 8, Year: 2024, Type: season.TypeFall},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/v1/seasons", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []seasonDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "2025 Spring", body.Data[0].Label)
	assert.Nil(t, body.Data[1].IsCurrent)
}

func TestRouter_CurrentSeasonNotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.seasons.On("Current", mock.Anything).Return(season.Season{}, false, nil).Once()

	rec := f.do(http.MethodGet, "/v1/seasons/current", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_QuickCancelRequiresPermission(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/v1/admin/quick-cancel/weeks/7/toggle", "", "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/v1/admin/quick-cancel/weeks/7/toggle", "goalies", "").Code)
}

func TestRouter_QuickCancelGetRedirectsWithoutChanges(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/v1/admin/quick-cancel/weeks/7/toggle", "/v1/admin/quick-cancel/dates/2025-06-08"} {
		rec := f.do(http.MethodGet, path, "operator", "")
		require.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, quickCancelWidgetPath, rec.Header().Get("Location"))
	}
	f.weeks.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
	f.weeks.AssertNotCalled(t, "SetCancelledOnDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_QuickCancelPostTogglesWeek(t *testing.T) {
	f := newRouterFixture(t)
	date := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)
	f.weeks.On("GetByID", mock.Anything, int64(7)).Return(week.Week{ID: 7, DivisionID: 1, SeasonID: 9, Date: date}, true, nil).Once()
	f.weeks.On("Toggle", mock.Anything, int64(7)).Return(week.Week{ID: 7, DivisionID: 1, SeasonID: 9, Date: date, IsCancelled: true}, nil).Once()

	rec := f.do(http.MethodPost, "/v1/admin/quick-cancel/weeks/7/toggle", "operator", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data weekDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.IsCancelled)
	assert.Equal(t, "2025-06-08", body.Data.Date)
}

func TestRouter_SetDateCancelledValidatesInput(t *testing.T) {
	f := newRouterFixture(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "bad date", path: "/v1/admin/quick-cancel/dates/June-8", body: `{"cancelled":true}`},
		{name: "missing flag", path: "/v1/admin/quick-cancel/dates/2025-06-08", body: `{}`},
		{name: "unknown field", path: "/v1/admin/quick-cancel/dates/2025-06-08", body: `{"cancelled":true,"all":1}`},
		{name: "empty body", path: "/v1/admin/quick-cancel/dates/2025-06-08", body: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodPost, tt.path, "operator", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRouter_LogoutForgetsCachedPrincipal(t *testing.T) {
	f := newRouterFixture(t)
	f.sessions.On("Delete", mock.Anything, account.HashToken("operator")).Return(nil).Once()

	rec := f.do(http.MethodDelete, "/v1/admin/sessions", "operator", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"operator"}, f.verifier.forgotten)
}

func TestRouter_InternalJobsRequireToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/v1/internal/jobs/recalculate-team-stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_InternalJobWithoutTeamStatService(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/recalculate-team-stats", strings.NewReader(`{"dispatch_id":"d-1"}`))
	req.Header.Set(internalJobTokenHeader, "job-secret")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
