package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel  = "gemini-2.5-flash"

	maxSuggestionInput = 10
	maxSuggestions     = 3
	generatedTaskCount = 5
)

// ErrGeneration marks a failed task-generation round trip. The provider
// detail is logged server-side and never surfaces to clients.
var ErrGeneration = errors.New("task generation failed")

// GeneratedTask is a task-shaped object produced by the model; it is not
// persisted until the user explicitly saves it.
type GeneratedTask struct {
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Category         models.TaskCategory `json:"category"`
	Priority         models.TaskPriority `json:"priority"`
	EstimatedMinutes int                 `json:"estimatedMinutes"`
}

// Generator produces tasks and follow-up topic suggestions from the model.
type Generator interface {
	GenerateTasksFromTopic(ctx context.Context, topic string) ([]GeneratedTask, error)
	GenerateTaskSuggestions(ctx context.Context, completedTitles []string) []string
}

// GeminiClient calls the Gemini generateContent API over plain HTTP.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string      `json:"responseMimeType"`
	ResponseSchema   interface{} `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func NewGeminiClient(apiKey, model string, logger *log.Logger) *GeminiClient {
	if model == "" {
		model = defaultModel
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

var _ Generator = (*GeminiClient)(nil)

// GenerateTasksFromTopic asks the model for exactly five actionable tasks on
// the topic. Any parse failure, empty response or count mismatch fails the
// call; there is no retry and no partial acceptance.
func (g *GeminiClient) GenerateTasksFromTopic(ctx context.Context, topic string) ([]GeneratedTask, error) {
	prompt := fmt.Sprintf(`Generate 5 concise, actionable tasks for learning about "%s".

For each task, provide:
- A clear, specific title (max 60 characters)
- A brief description explaining what to do (max 150 characters)
- A category from: general, work, learning, personal, health, finance
- A priority level: low, medium, high, urgent
- Estimated time in minutes (15-120 minutes)

Return ONLY a JSON array with this exact format:
[
  {
    "title": "Task title here",
    "description": "Brief description of what to do",
    "category": "learning",
    "priority": "medium",
    "estimatedMinutes": 30
  }
]

Make tasks practical and actionable. Avoid generic advice.`, topic)

	schema := map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"title":       map[string]interface{}{"type": "string"},
				"description": map[string]interface{}{"type": "string"},
				"category": map[string]interface{}{
					"type": "string",
					"enum": []string{"general", "work", "learning", "personal", "health", "finance"},
				},
				"priority": map[string]interface{}{
					"type": "string",
					"enum": []string{"low", "medium", "high", "urgent"},
				},
				"estimatedMinutes": map[string]interface{}{"type": "number"},
			},
			"required": []string{"title", "description", "category", "priority", "estimatedMinutes"},
		},
	}

	raw, err := g.generateContent(ctx, prompt, schema)
	if err != nil {
		g.logf("task generation: %v", err)
		return nil, ErrGeneration
	}

	var tasks []GeneratedTask
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		g.logf("task generation: malformed JSON: %v", err)
		return nil, ErrGeneration
	}
	if len(tasks) != generatedTaskCount {
		g.logf("task generation: expected %d tasks, got %d", generatedTaskCount, len(tasks))
		return nil, ErrGeneration
	}
	for i := range tasks {
		if !tasks[i].Category.Valid() {
			tasks[i].Category = models.CategoryGeneral
		}
		if !tasks[i].Priority.Valid() {
			tasks[i].Priority = models.PriorityMedium
		}
		if tasks[i].EstimatedMinutes <= 0 {
			tasks[i].EstimatedMinutes = 30
		}
	}
	return tasks, nil
}

// GenerateTaskSuggestions proposes up to three follow-up topics from recently
// completed task titles. Suggestions are best-effort: every failure degrades
// to an empty list instead of an error.
func (g *GeminiClient) GenerateTaskSuggestions(ctx context.Context, completedTitles []string) []string {
	if len(completedTitles) > maxSuggestionInput {
		completedTitles = completedTitles[:maxSuggestionInput]
	}

	prompt := fmt.Sprintf(`Based on these completed tasks: %s

Suggest 3 related topics that would be good to learn next. Each suggestion should be a short phrase (2-4 words).

Return ONLY a JSON array of strings:
["Topic 1", "Topic 2", "Topic 3"]`, strings.Join(completedTitles, ", "))

	schema := map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	}

	raw, err := g.generateContent(ctx, prompt, schema)
	if err != nil {
		g.logf("suggestions: %v", err)
		return []string{}
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		g.logf("suggestions: malformed JSON: %v", err)
		return []string{}
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// generateContent performs one generateContent round trip and returns the
// text of the first candidate.
func (g *GeminiClient) generateContent(ctx context.Context, prompt string, schema interface{}) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("API error %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response text")
	}
	return text, nil
}

func (g *GeminiClient) logf(format string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Printf("gemini: "+format, args...)
	}
}
