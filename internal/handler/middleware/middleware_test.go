//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/handler/middleware"
	"stay-booking/internal/pkg/config"
	usecasemock "stay-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type throttleCounter struct {
	mu      sync.Mutex
	reasons []string
}

func (c *throttleCounter) RecordThrottle(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reasons = append(c.reasons, reason)
}

type observation struct {
	method string
	route  string
	status int
}

type httpRecorder struct {
	seen []observation
}

func (r *httpRecorder) ObserveHTTP(method, route string, status int, _ time.Duration) {
	r.seen = append(r.seen, observation{method: method, route: route, status: status})
}

func serve(router *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		recorder := &throttleCounter{}
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 2}, recorder)

		router := gin.New()
		router.Use(limiter.Middleware())
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		assert.Equal(t, http.StatusNoContent, serve(router, http.MethodGet, "/ping", "").Code)
		assert.Equal(t, http.StatusNoContent, serve(router, http.MethodGet, "/ping", "").Code)

		w := serve(router, http.MethodGet, "/ping", "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Rate limit exceeded")
		assert.Equal(t, []string{"client_ip"}, recorder.reasons)
	})

	t.Run("disabled when rps is not positive", func(t *testing.T) {
		recorder := &throttleCounter{}
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0, Burst: 0}, recorder)

		router := gin.New()
		router.Use(limiter.Middleware())
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		for i := 0; i < 10; i++ {
			require.Equal(t, http.StatusNoContent, serve(router, http.MethodGet, "/ping", "").Code)
		}
		assert.Empty(t, recorder.reasons)
	})
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *usecasemock.MockTokenValidator)
		roles      []user.Role
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			setupMock:  func(m *usecasemock.MockTokenValidator) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Access token required",
		},
		{
			name:       "non bearer scheme",
			header:     "Basic abc",
			setupMock:  func(m *usecasemock.MockTokenValidator) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Access token required",
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("broken").Return(uuid.Nil, user.Role(""), errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid or expired token",
		},
		{
			name:   "valid token stores principal",
			header: "Bearer good",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(userID, user.RoleGuest, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String() + ":guest",
		},
		{
			name:   "role allowed",
			header: "Bearer good",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(userID, user.RoleHost, nil)
			},
			roles:      []user.Role{user.RoleHost, user.RoleAdmin},
			wantStatus: http.StatusOK,
			wantBody:   userID.String() + ":host",
		},
		{
			name:   "role not allowed",
			header: "Bearer good",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(userID, user.RoleGuest, nil)
			},
			roles:      []user.Role{user.RoleAdmin},
			wantStatus: http.StatusForbidden,
			wantBody:   "Insufficient permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tt.setupMock(validator)

			auth := middleware.NewAuthMiddleware(validator)
			handlers := []gin.HandlerFunc{auth.RequireAuth()}
			if len(tt.roles) > 0 {
				handlers = append(handlers, auth.RequireRole(tt.roles...))
			}
			handlers = append(handlers, func(c *gin.Context) {
				id, role, ok := middleware.MustPrincipal(c)
				if !ok {
					return
				}
				c.String(http.StatusOK, id.String()+":"+role.String())
			})

			router := gin.New()
			router.GET("/me", handlers...)

			w := serve(router, http.MethodGet, "/me", tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}

	t.Run("role check without authentication is a server error", func(t *testing.T) {
		auth := middleware.NewAuthMiddleware(usecasemock.NewMockTokenValidator(gomock.NewController(t)))

		router := gin.New()
		router.GET("/admin", auth.RequireRole(user.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(router, http.MethodGet, "/admin", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	recorder := &httpRecorder{}

	router := gin.New()
	router.Use(middleware.MetricsMiddleware(recorder))
	router.GET("/reservations/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	serve(router, http.MethodGet, "/reservations/"+uuid.NewString(), "")
	serve(router, http.MethodGet, "/nowhere", "")

	require.Len(t, recorder.seen, 2)
	assert.Equal(t, observation{method: http.MethodGet, route: "/reservations/:id", status: http.StatusAccepted}, recorder.seen[0])
	assert.Equal(t, observation{method: http.MethodGet, route: "", status: http.StatusNotFound}, recorder.seen[1])
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	router.GET("/silent", func(c *gin.Context) { _ = c.Error(errors.New("lost")) })
	router.GET("/deferred", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "Dates already booked"
		_ = c.Error(&gin.Error{Err: errors.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	router.GET("/status-only", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(router, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())

	w = serve(router, http.MethodGet, "/silent", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())

	w = serve(router, http.MethodGet, "/deferred", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Dates already booked"}}`, w.Body.String())

	w = serve(router, http.MethodGet, "/status-only", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
