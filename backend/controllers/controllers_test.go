package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Akshaya719/LanguageLearningHub/backend/ai"
	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/routes"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubGenerator satisfies ai.Generator without a network round trip.
type stubGenerator struct {
	tasks       []ai.GeneratedTask
	err         error
	suggestions []string
}

func (s *stubGenerator) GenerateTasksFromTopic(_ context.Context, _ string) ([]ai.GeneratedTask, error) {
	return s.tasks, s.err
}

func (s *stubGenerator) GenerateTaskSuggestions(_ context.Context, _ []string) []string {
	return s.suggestions
}

type testEnv struct {
	app   *fiber.App
	store storage.Storage
	gen   *stubGenerator
	cfg   *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, utils.MigrateDB(db))

	cfg := &config.Config{JWTSecret: "testsecret"}
	store := storage.NewDatabaseStorage(db)
	gen := &stubGenerator{}

	app := fiber.New()
	routes.SetupRoutes(app, store, gen, cfg)

	return &testEnv{app: app, store: store, gen: gen, cfg: cfg}
}

// doJSON performs one request against the app and decodes the JSON reply.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	status, raw := e.do(t, method, path, token, body)
	var result map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &result))
	}
	return status, result
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// registerUser creates an account through the API and returns its token.
func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()

	status, result := e.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":       email,
		"password":    "password123",
		"displayName": "Test User",
	})
	require.Equal(t, fiber.StatusOK, status)
	token, ok := result["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}
