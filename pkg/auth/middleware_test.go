package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	userToken, err := jwtService.GenerateJWT(42, false, time.Now().Add(time.Hour))
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT(1, true, time.Now().Add(time.Hour))
	require.NoError(t, err)

	var seenUser int
	var seenAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = UserID(r.Context())
		seenAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		header     string
		handler    http.Handler
		wantStatus int
		wantUser   int
		wantAdmin  bool
	}{
		{name: "no header", header: "", handler: Middleware(jwtService)(next), wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", handler: Middleware(jwtService)(next), wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", handler: Middleware(jwtService)(next), wantStatus: http.StatusUnauthorized},
		{name: "user token", header: "Bearer " + userToken, handler: Middleware(jwtService)(next), wantStatus: http.StatusOK, wantUser: 42},
		{name: "admin route as user", header: "Bearer " + userToken, handler: Middleware(jwtService)(AdminOnly(next)), wantStatus: http.StatusForbidden},
		{name: "admin route as admin", header: "Bearer " + adminToken, handler: Middleware(jwtService)(AdminOnly(next)), wantStatus: http.StatusOK, wantUser: 1, wantAdmin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUser, seenAdmin = 0, false
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			tt.handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantUser, seenUser)
			assert.Equal(t, tt.wantAdmin, seenAdmin)
		})
	}
}
