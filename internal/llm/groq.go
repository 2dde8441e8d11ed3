package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"
const defaultModel = "llama-3.3-70b-versatile"

type GroqClient struct {
	apiKey string
	model  string
	http   *http.Client
}

func NewGroqClient() *GroqClient {
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &GroqClient{
		apiKey: os.Getenv("GROQ_API_KEY"),
		model:  model,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete sends one user prompt and returns the raw completion text.
func (g *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GROQ_API_KEY")
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	payload := map[string]any{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": 0.7,
		"max_tokens":  200,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		groqEndpoint,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq api error: %s", string(raw))
	}

	// OpenAI-compatible response shape
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", errors.New("empty groq response")
	}

	return result.Choices[0].Message.Content, nil
}
