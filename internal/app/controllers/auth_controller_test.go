package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/middleware"
	"github.com/campushub/portal/internal/pkg/auth"
	"github.com/campushub/portal/internal/store"
)

type testApp struct {
	router     *gin.Engine
	jwtService *auth.JWTService
}

// A helper function to stand up the auth and complaint endpoints over a
// throwaway store, wired the same way bootstrap does it.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(t.TempDir(), store.DefaultTables(), zerolog.Nop())
	require.NoError(t, st.Initialize())
	repos := repositories.NewRepositories(st)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	authController := NewAuthController(services.NewAuthService(repos.Users, jwtService, zerolog.Nop()))
	complaintController := NewComplaintController(services.NewComplaintService(repos.Complaints))

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	authenticated.GET("/complaints", complaintController.List)
	authenticated.POST("/complaints",
		authMiddleware.RoleRequired(models.RoleStudent), complaintController.Create)

	return &testApp{router: router, jwtService: jwtService}
}

func (app *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"institution": "campus",
		"username":    "nobody",
		"password":    "wrong",
		"role":        "Student",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_001")
}

func TestRegisterThenLogin(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"institution": "campus",
		"username":    "alice",
		"password":    "secret",
		"role":        "Student",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"institution": "campus",
		"username":    "alice",
		"password":    "secret",
		"role":        "Student",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data.Token)
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodGet, "/api/v1/complaints", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/complaints", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestComplaintLifecycleOverHTTP(t *testing.T) {
	app := setupTestApp(t)

	studentToken, _, err := app.jwtService.GenerateToken(models.Session{
		Institution: "campus", Username: "alice", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	w := app.do(t, http.MethodPost, "/api/v1/complaints", studentToken, gin.H{
		"target":      "Warden",
		"category":    "Mess",
		"description": "cold food",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/complaints", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []models.Complaint `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, "Pending", response.Data[0].Status)
	assert.Equal(t, "Waiting...", response.Data[0].AdminMessage)
}

func TestComplaintCreate_ForbiddenForWarden(t *testing.T) {
	app := setupTestApp(t)

	wardenToken, _, err := app.jwtService.GenerateToken(models.Session{
		Institution: "campus", Username: "warden", Role: models.RoleWarden,
	})
	require.NoError(t, err)

	w := app.do(t, http.MethodPost, "/api/v1/complaints", wardenToken, gin.H{
		"target":      "Warden",
		"category":    "Mess",
		"description": "self report",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}
