package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubBackend returns a client pointed at a fake Gemini endpoint that
// replies with the given candidate text (already JSON-encoded).
func newStubBackend(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewGeminiClient("test-key", "gemini-2.5-flash", nil)
	client.baseURL = server.URL
	return client
}

func candidateResponse(t *testing.T, payload interface{}) []byte {
	t.Helper()
	text, err := json.Marshal(payload)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": string(text)}},
			}},
		},
	})
	require.NoError(t, err)
	return body
}

func fiveTasks() []GeneratedTask {
	return []GeneratedTask{
		{Title: "Learn greetings", Description: "Practice hello and goodbye", Category: models.CategoryLearning, Priority: models.PriorityMedium, EstimatedMinutes: 30},
		{Title: "Study numbers", Description: "Count 1-100", Category: models.CategoryLearning, Priority: models.PriorityLow, EstimatedMinutes: 20},
		{Title: "Watch a show", Description: "One episode with subtitles", Category: models.CategoryPersonal, Priority: models.PriorityLow, EstimatedMinutes: 45},
		{Title: "Flashcard drill", Description: "50 vocabulary cards", Category: models.CategoryLearning, Priority: models.PriorityHigh, EstimatedMinutes: 25},
		{Title: "Book a class", Description: "Find a conversation group", Category: models.CategoryPersonal, Priority: models.PriorityMedium, EstimatedMinutes: 15},
	}
}

func TestGenerateTasksFromTopic(t *testing.T) {
	var gotPath string
	client := newStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, `"Spanish"`)
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)

		w.Write(candidateResponse(t, fiveTasks()))
	})

	tasks, err := client.GenerateTasksFromTopic(context.Background(), "Spanish")
	require.NoError(t, err)
	require.Len(t, tasks, 5)
	assert.Equal(t, "Learn greetings", tasks[0].Title)
	assert.Equal(t, models.CategoryLearning, tasks[0].Category)
	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
}

func TestGenerateTasksWrongCount(t *testing.T) {
	client := newStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateResponse(t, fiveTasks()[:4]))
	})

	_, err := client.GenerateTasksFromTopic(context.Background(), "Spanish")
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateTasksMalformedJSON(t *testing.T) {
	client := newStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "not json at all"}},
				}},
			},
		})
		require.NoError(t, err)
		w.Write(body)
	})

	_, err := client.GenerateTasksFromTopic(context.Background(), "Spanish")
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateTasksEmptyResponse(t *testing.T) {
	client := newStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.GenerateTasksFromTopic(context.Background(), "Spanish")
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateTasksAPIError(t *testing.T) {
	client := newStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := client.GenerateTasksFromTopic(context.Background(), "Spanish")
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateTasksNormalizesBadEnums(t *testing.T) {
	tasks := fiveTasks()
	tasks[2].Category = "nonsense"
	tasks[2].Priority = "whenever"
	tasks[2].EstimatedMinutes = 0

	client := newStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateResponse(t, tasks))
	})

	got, err := client.GenerateTasksFromTopic(context.Background(), "Spanish")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryGeneral, got[2].Category)
	assert.Equal(t, models.PriorityMedium, got[2].Priority)
	assert.Equal(t, 30, got[2].EstimatedMinutes)
}

func TestGenerateTasksMissingAPIKey(t *testing.T) {
	client := NewGeminiClient("", "", nil)

	_, err := client.GenerateTasksFromTopic(context.Background(), "Spanish")
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateTaskSuggestions(t *testing.T) {
	client := newStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Learn greetings")

		w.Write(candidateResponse(t, []string{"Spanish verbs", "Travel phrases", "Food vocabulary"}))
	})

	suggestions := client.GenerateTaskSuggestions(context.Background(), []string{"Learn greetings", "Study numbers"})
	assert.Equal(t, []string{"Spanish verbs", "Travel phrases", "Food vocabulary"}, suggestions)
}

func TestGenerateTaskSuggestionsTruncates(t *testing.T) {
	client := newStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateResponse(t, []string{"a", "b", "c", "d", "e"}))
	})

	suggestions := client.GenerateTaskSuggestions(context.Background(), []string{"x"})
	assert.Len(t, suggestions, 3)
}

func TestGenerateTaskSuggestionsDegradesToEmpty(t *testing.T) {
	client := newStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	suggestions := client.GenerateTaskSuggestions(context.Background(), []string{"anything"})
	assert.Empty(t, suggestions)
	assert.NotNil(t, suggestions)
}
