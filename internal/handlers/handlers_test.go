package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crickhub-dev/crickhub/db"
	"github.com/crickhub-dev/crickhub/internal/config"
	"github.com/crickhub-dev/crickhub/internal/models"
	"github.com/crickhub-dev/crickhub/internal/router"
	"github.com/crickhub-dev/crickhub/internal/session"
	"github.com/crickhub-dev/crickhub/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testAPI wires the real router against an in-memory database.
type testAPI struct {
	engine   *gin.Engine
	sessions *session.Store
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()

	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	db.DB = gdb
	require.NoError(t, db.MigrateDatabase())

	cfg := &config.Config{
		AllowedOrigins: []string{"*"},
	}

	sessions := session.NewStore()

	return &testAPI{
		engine:   router.NewRouter(cfg, sessions),
		sessions: sessions,
	}
}

// adminToken issues a session for an admin without going through login.
func (a *testAPI) adminToken() string {
	return a.sessions.Create(types.SessionUser{
		ID:    "admin-id",
		Email: "admin@crickhub.test",
		Role:  types.RoleAdmin,
	})
}

func (a *testAPI) viewerToken() string {
	return a.sessions.Create(types.SessionUser{
		ID:    "viewer-id",
		Email: "viewer@crickhub.test",
		Role:  types.RoleViewer,
	})
}

func (a *testAPI) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.AddCookie(&http.Cookie{Name: types.SessionCookieName, Value: token})
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	data, ok := decodeBody(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())

	return data
}

func listOf(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	data, ok := decodeBody(t, w)["data"].([]interface{})
	require.True(t, ok, "response has no data array: %s", w.Body.String())

	return data
}

func createUser(t *testing.T, email, password, role string, active bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	}

	require.NoError(t, db.DB.Create(&user).Error)

	return user
}

func createTeam(t *testing.T, name string) models.Team {
	t.Helper()

	team := models.Team{Name: name}
	require.NoError(t, db.DB.Create(&team).Error)

	return team
}
