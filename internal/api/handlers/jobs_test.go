package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marketping/marketping/internal/api/handlers"
	storeMocks "github.com/marketping/marketping/internal/store/mocks"
	domain "github.com/marketping/marketping/pkg/types"
)

func newJobContext(target, jobName string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("job_name")
	c.SetParamValues(jobName)

	return c, rec
}

func TestJobsHandler_History(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "returns runs with default limit",
			target: "/api/v1/jobs/reconcile",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListJobRuns(mock.Anything, "reconcile", 20).
					Return([]domain.JobRun{
						{ID: "r1", JobName: "reconcile", StartedAt: time.Now(), Status: "succeeded"},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"succeeded"`,
		},
		{
			name:   "custom limit",
			target: "/api/v1/jobs/reconcile?limit=5",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListJobRuns(mock.Anything, "reconcile", 5).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "invalid limit",
			target:     "/api/v1/jobs/reconcile?limit=-1",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `limit must be a positive integer`,
		},
		{
			name:   "store error",
			target: "/api/v1/jobs/reconcile",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListJobRuns(mock.Anything, "reconcile", 20).
					Return(nil, errors.New("db down")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `fetching job history`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewJobsHandler(ms)

			c, rec := newJobContext(tt.target, "reconcile")

			require.NoError(t, h.History(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
