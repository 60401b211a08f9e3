package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClassWithSession(t *testing.T, env *testEnv, spots int) (*models.LanguageClass, *models.ClassSession) {
	t.Helper()
	ctx := context.Background()

	class := &models.LanguageClass{
		Title:       "Spanish Conversation",
		Language:    "Spanish",
		Level:       models.LevelBeginner,
		Type:        models.TypeConversation,
		Price:       2500,
		Duration:    60,
		MaxStudents: 8,
		IsActive:    true,
	}
	require.NoError(t, env.store.CreateLanguageClass(ctx, class))

	session := &models.ClassSession{
		ClassID:        class.ID,
		StartTime:      time.Now().Add(24 * time.Hour),
		EndTime:        time.Now().Add(25 * time.Hour),
		AvailableSpots: spots,
		Status:         models.SessionScheduled,
	}
	require.NoError(t, env.store.CreateClassSession(ctx, session))
	return class, session
}

func TestClassListWithNextSession(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "classes@example.com")
	_, session := seedClassWithSession(t, env, 5)

	status, raw := env.do(t, http.MethodGet, "/api/classes?language=Spanish", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var classes []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &classes))
	require.Len(t, classes, 1)
	assert.Equal(t, "Spanish Conversation", classes[0]["title"])
	assert.EqualValues(t, 5, classes[0]["availableSpots"])

	next := classes[0]["nextSession"].(map[string]interface{})
	assert.EqualValues(t, session.ID, next["ID"])
}

func TestBookingFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "bookflow@example.com")
	_, session := seedClassWithSession(t, env, 2)

	status, created := env.doJSON(t, http.MethodPost, "/api/bookings", token, map[string]interface{}{
		"sessionId": session.ID,
		"notes":     "first visit",
	})
	require.Equal(t, fiber.StatusCreated, status)
	bookingID := int(created["ID"].(float64))
	assert.Equal(t, "booked", created["status"])

	status, raw := env.do(t, http.MethodGet, "/api/bookings", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var bookings []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "Spanish Conversation", bookings[0]["class"].(map[string]interface{})["title"])

	status, _ = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/bookings/%d/cancel", bookingID), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	// The cancelled spot is available again.
	updated, err := env.store.GetClassSessions(context.Background(), session.ClassID)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, 2, updated[0].AvailableSpots)
}

func TestBookingFullSessionConflict(t *testing.T) {
	env := newTestEnv(t)
	firstToken := env.registerUser(t, "full1@example.com")
	secondToken := env.registerUser(t, "full2@example.com")
	_, session := seedClassWithSession(t, env, 1)

	status, _ := env.doJSON(t, http.MethodPost, "/api/bookings", firstToken, map[string]interface{}{
		"sessionId": session.ID,
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, result := env.doJSON(t, http.MethodPost, "/api/bookings", secondToken, map[string]interface{}{
		"sessionId": session.ID,
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "No available spots for this session", result["error"])
}

func TestBookingUnknownSessionHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "nosess@example.com")

	status, _ := env.doJSON(t, http.MethodPost, "/api/bookings", token, map[string]interface{}{
		"sessionId": 424242,
	})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = env.doJSON(t, http.MethodPost, "/api/bookings", token, map[string]interface{}{})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCancelForeignBooking(t *testing.T) {
	env := newTestEnv(t)
	ownerToken := env.registerUser(t, "bown@example.com")
	intruderToken := env.registerUser(t, "bint@example.com")
	_, session := seedClassWithSession(t, env, 3)

	status, created := env.doJSON(t, http.MethodPost, "/api/bookings", ownerToken, map[string]interface{}{
		"sessionId": session.ID,
	})
	require.Equal(t, fiber.StatusCreated, status)
	bookingID := int(created["ID"].(float64))

	status, _ = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/bookings/%d/cancel", bookingID), intruderToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRemindersAndPreferencesEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "remprefs@example.com")

	status, prefs := env.doJSON(t, http.MethodPut, "/api/preferences", token, map[string]interface{}{
		"preferredLanguages": "Spanish",
		"reminderEnabled":    true,
		"reminderTime":       "08:00",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Spanish", prefs["preferredLanguages"])
	assert.Equal(t, "08:00", prefs["reminderTime"])

	status, got := env.doJSON(t, http.MethodGet, "/api/preferences", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Spanish", got["preferredLanguages"])

	// Reminders start empty, then reflect created rows.
	status, raw := env.do(t, http.MethodGet, "/api/reminders", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var reminders []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &reminders))
	assert.Empty(t, reminders)

	user, err := env.store.GetUserByEmail(context.Background(), "remprefs@example.com")
	require.NoError(t, err)
	require.NoError(t, env.store.CreateReminder(context.Background(), user.ID, &models.UserReminder{
		Type:  "task_due",
		Title: "Task due soon",
	}))

	status, raw = env.do(t, http.MethodGet, "/api/reminders?unread=true", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &reminders))
	require.Len(t, reminders, 1)
	reminderID := int(reminders[0]["ID"].(float64))

	status, _ = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/reminders/%d/read", reminderID), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, raw = env.do(t, http.MethodGet, "/api/reminders?unread=true", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &reminders))
	assert.Empty(t, reminders)
}
