package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassAndSessionEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "classops@example.com")

	status, created := env.doJSON(t, http.MethodPost, "/api/classes", token, map[string]interface{}{
		"title":       "Italian for Travelers",
		"language":    "Italian",
		"level":       "beginner",
		"type":        "workshop",
		"price":       3000,
		"duration":    60,
		"maxStudents": 6,
	})
	require.Equal(t, fiber.StatusCreated, status)
	classID := int(created["ID"].(float64))
	assert.Equal(t, true, created["isActive"])

	status, got := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/classes/%d", classID), token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Italian for Travelers", got["title"])

	status, _ = env.doJSON(t, http.MethodGet, "/api/classes/424242", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	// A session without explicit spots inherits the class capacity.
	start := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	status, session := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/classes/%d/sessions", classID), token, map[string]interface{}{
		"startTime": start,
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.EqualValues(t, 6, session["availableSpots"])
	assert.Equal(t, "scheduled", session["status"])

	status, _ = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/classes/%d/sessions", classID), token, map[string]interface{}{})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, raw := env.do(t, http.MethodGet, fmt.Sprintf("/api/classes/%d/sessions", classID), token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var sessions []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &sessions))
	assert.Len(t, sessions, 1)
}

func TestClassValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "classval@example.com")

	status, _ := env.doJSON(t, http.MethodPost, "/api/classes", token, map[string]interface{}{
		"language": "Italian",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = env.doJSON(t, http.MethodPost, "/api/classes", token, map[string]interface{}{
		"title":    "Bad level",
		"language": "Italian",
		"level":    "fluent",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = env.doJSON(t, http.MethodGet, "/api/classes?level=fluent", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpcomingSessionsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "upcoming@example.com")
	_, session := seedClassWithSession(t, env, 4)

	status, raw := env.do(t, http.MethodGet, "/api/sessions/upcoming?language=Spanish", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var sessions []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &sessions))
	require.Len(t, sessions, 1)
	assert.EqualValues(t, session.ID, sessions[0]["ID"])
	assert.Equal(t, "Spanish Conversation", sessions[0]["class"].(map[string]interface{})["title"])

	// A window that ends before the session starts excludes it.
	end := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	status, raw = env.do(t, http.MethodGet, "/api/sessions/upcoming?endDate="+end, token, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &sessions))
	assert.Empty(t, sessions)

	status, _ = env.doJSON(t, http.MethodGet, "/api/sessions/upcoming?startDate=notadate", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
