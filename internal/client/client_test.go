package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/models/dto"
)

func TestClient_Login_StoresToken(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.AuthResponse{
			Message: "Login successful",
			User:    &models.User{ID: 7, Email: "lineo@luct.ac.ls", Role: models.RoleStudent},
			Token:   "signed.jwt.token",
		})
	})
	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.User{ID: 7, Email: "lineo@luct.ac.ls"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), dto.LoginRequest{Email: "lineo@luct.ac.ls", Password: "secret12"})
	assert.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", resp.Token)

	user, err := c.Me(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Bearer signed.jwt.token", gotAuth)
}

func TestClient_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Message: "User already exists"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Register(context.Background(), dto.RegisterRequest{
		Name: "X", Email: "taken@luct.ac.ls", Password: "secret12", Role: "student",
	})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "User already exists", apiErr.Message)
}

func TestClient_APIError_UnparsableBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/reports", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListReports(context.Background())

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestClient_ListModulesByStream_EscapesPath(t *testing.T) {
	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode([]models.Module{{Code: "IS301"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	modules, err := c.ListModulesByStream(context.Background(), "information systems")

	assert.NoError(t, err)
	assert.Len(t, modules, 1)
	assert.Equal(t, "/api/v1/modules/information%20systems", gotPath)
}
