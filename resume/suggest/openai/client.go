// Package openai implements suggest.Provider over the OpenAI Chat
// Completions API. Selected with AI_PROVIDER=openai.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"resumeai-backend/resume/suggest"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Client calls OpenAI Chat Completions for suggestion generation.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("AI_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

const systemPrompt = "You are a resume writing assistant. Respond with the requested text only, no preamble."

func (c *Client) complete(ctx context.Context, userPrompt string) (string, error) {
	temperature := float32(0.7)
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: &temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai error (%s): %s", parsed.Error.Type, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// GenerateSummary asks the model for a short professional summary.
func (c *Client) GenerateSummary(ctx context.Context, input suggest.SummaryInput) (string, error) {
	prompt := fmt.Sprintf(
		"Write a 2-3 sentence professional resume summary for a %s with %d years of experience. Key skills: %s.",
		fallback(input.JobTitle, "professional"), input.YearsExperience, strings.Join(input.Skills, ", "),
	)
	return c.complete(ctx, prompt)
}

// OptimizeDescription asks the model to rewrite a description as bullet
// points with a quantified achievement.
func (c *Client) OptimizeDescription(ctx context.Context, description, jobTitle string) (string, error) {
	prompt := fmt.Sprintf(
		"Rewrite this %s work description as concise bullet points, one per line prefixed with \"• \", ending with one quantified achievement:\n%s",
		fallback(jobTitle, "professional"), description,
	)
	return c.complete(ctx, prompt)
}

// SuggestSkills asks the model for skills relevant to the title that the
// user does not already list.
func (c *Client) SuggestSkills(ctx context.Context, jobTitle string, existing []string) ([]string, error) {
	prompt := fmt.Sprintf(
		"List up to 8 resume skills for a %s, one per line, plain text. Exclude these: %s.",
		fallback(jobTitle, "professional"), strings.Join(existing, ", "),
	)
	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var skills []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "•-* \t"))
		if line != "" {
			skills = append(skills, line)
		}
	}
	return skills, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
