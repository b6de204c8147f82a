package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isdelr/inkwell-be/internal/models"
	"github.com/stretchr/testify/require"
)

type stubAccountService struct{}

func (stubAccountService) Register(fullname, email, password string) (models.SessionPayload, error) {
	return models.SessionPayload{AccessToken: "tok", Username: "ann", Fullname: fullname}, nil
}

func (stubAccountService) Authenticate(email, password string) (models.SessionPayload, error) {
	return models.SessionPayload{AccessToken: "tok", Username: "ann"}, nil
}

func TestRouterRoutes(t *testing.T) {
	router := NewRouter(stubAccountService{}, "http://localhost:5173")

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodPost, "/signup", http.StatusOK},
		{http.MethodPost, "/signin", http.StatusOK},
		{http.MethodGet, "/signup", http.StatusMethodNotAllowed},
		{http.MethodPost, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(`{"fullname":"Ann Lee","email":"ann@x.com","password":"Abcde1"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, tt.want, rr.Code, "%s %s", tt.method, tt.path)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := NewRouter(stubAccountService{}, "http://localhost:5173")

	req := httptest.NewRequest(http.MethodOptions, "/signup", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterCORSRejectsOtherOrigin(t *testing.T) {
	router := NewRouter(stubAccountService{}, "http://localhost:5173")

	req := httptest.NewRequest(http.MethodOptions, "/signup", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
