package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DhavalSuthar-24/flagstats/internal/assert"
	"github.com/DhavalSuthar-24/flagstats/pkg/token"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.POST("/plays", func(c *gin.Context) {
		c.String(http.StatusOK, ScorekeeperFromContext(c))
	})
	return r
}

func TestScorekeeperAuth(t *testing.T) {
	const secret = "s3cret"
	scorekeeper, err := token.GenerateJWT("mesa-2", token.RoleScorekeeper, secret, 5)
	assert.NilError(t, err)
	viewer, err := token.GenerateJWT("fan", "viewer", secret, 5)
	assert.NilError(t, err)

	tests := []struct {
		name   string
		secret string
		header string
		status int
		body   string
	}{
		{name: "Disabled Without Secret", secret: "", status: http.StatusOK},
		{name: "Missing Header", secret: secret, status: http.StatusUnauthorized},
		{name: "Malformed Header", secret: secret, header: "Token abc", status: http.StatusUnauthorized},
		{name: "Read Only Role", secret: secret, header: "Bearer " + viewer, status: http.StatusForbidden},
		{name: "Scorekeeper", secret: secret, header: "Bearer " + scorekeeper, status: http.StatusOK, body: "mesa-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(ScorekeeperAuth(tt.secret))
			req := httptest.NewRequest(http.MethodPost, "/plays", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, rec.Code, tt.status)
			if tt.body != "" {
				assert.Equal(t, rec.Body.String(), tt.body)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	r := newEngine(NewRateLimiter(1, 2).Middleware())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/plays", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.SliceEqual(t, codes, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests})
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())
	sent := uuid.NewString()

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "Generated", header: ""},
		{name: "Invalid Replaced", header: "not-a-uuid"},
		{name: "Valid Reused", header: sent, reuse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/plays", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(got)
			assert.NilError(t, err)
			if tt.reuse {
				assert.Equal(t, got, sent)
			}
		})
	}
}

func TestRateLimiterSweepDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	start := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	now := start
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("10.0.0.1"), "first request allowed")
	now = start.Add(2 * time.Minute)
	assert.True(t, rl.allow("10.0.0.2"), "first request allowed")
	assert.Equal(t, len(rl.clients), 2)

	now = start.Add(4 * time.Minute)
	rl.Sweep()

	_, idle := rl.clients["10.0.0.1"]
	_, recent := rl.clients["10.0.0.2"]
	assert.True(t, !idle, "idle client dropped")
	assert.True(t, recent, "recent client kept")
}
