package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPinger mocks a garden store health check
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   []string
	}{
		{
			name:           "store reachable",
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"status":"ok"`},
		},
		{
			name:           "store failure",
			pingErr:        assert.AnError,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   []string{`"status":"unavailable"`, `"message":"garden store unavailable"`},
		},
		{
			name:           "store timeout",
			pingErr:        context.DeadlineExceeded,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   []string{`"status":"unavailable"`},
		},
		{
			name:           "connection refused",
			pingErr:        errors.New("connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   []string{`"status":"unavailable"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockPinger{}
			store.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
				_, ok := ctx.Deadline()
				return ok
			})).Return(tt.pingErr)

			req := httptest.NewRequest("GET", "/readyz", nil)
			w := httptest.NewRecorder()
			HandleReadyz(store).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, s := range tt.expectedBody {
				assert.Contains(t, w.Body.String(), s)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "")

	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"dev"`)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)
}

func TestBuildInfo_LinkedValuesWin(t *testing.T) {
	prevCommit, prevTime := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = prevCommit, prevTime })
	GitCommit, BuildTime = "abc1234", "2024-05-01T12:00:00Z"

	info := buildInfo()
	assert.Equal(t, "abc1234", info.GitCommit)
	assert.Equal(t, "2024-05-01T12:00:00Z", info.BuildTime)
}

func TestGetVersion_Env(t *testing.T) {
	t.Setenv("VERSION", "1.4.0")
	assert.Equal(t, "1.4.0", GetVersion())
}
