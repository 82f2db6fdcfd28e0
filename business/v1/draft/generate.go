package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

const systemInstruction = `You are a professional, creative blog writer and journalist.
Your task is to write engaging, well-structured blog posts based on a topic or rough notes.
Use Markdown formatting for the content (headers, bold, lists).
Keep the tone thoughtful and personal, suitable for a daily journal or tech blog.`

const promptTemplate = `Write a blog post draft.

Topic/Title Idea: %s
Context/Notes: %s

Return a JSON object with:
1. A catchy 'title' (if the provided one is simple, improve it).
2. The 'content' in Markdown format.`

// Assistant wraps the remote text-generation service. Its state is idle or
// pending: a Generate while one is already pending fails with ErrInFlight
// instead of racing.
type Assistant struct {
	client   *http.Client
	endpoint string
	model    string
	apiKey   string
	inFlight int32
}

func New(endpoint, model, apiKey string, timeout time.Duration) *Assistant {
	return &Assistant{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
	}
}

// Generate expands title and notes into a full draft. Any failure (network,
// non-200, unparsable output) comes back as a single error; the caller's
// editing state is never touched.
func (a *Assistant) Generate(ctx context.Context, title, notes string) (Draft, error) {
	if !atomic.CompareAndSwapInt32(&a.inFlight, 0, 1) {
		return Draft{}, ErrInFlight
	}
	defer atomic.StoreInt32(&a.inFlight, 0)

	payload := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, title, notes)}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"title":   map[string]any{"type": "STRING"},
					"content": map[string]any{"type": "STRING"},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Draft{}, fmt.Errorf("failed to serialize generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", a.endpoint, a.model, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Draft{}, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := a.client.Do(req)
	if err != nil {
		return Draft{}, fmt.Errorf("generation request failed: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		return Draft{}, fmt.Errorf("generation request failed with status %d", res.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(res.Body).Decode(&gr); err != nil {
		return Draft{}, fmt.Errorf("failed to parse generation response: %w", err)
	}

	text := gr.text()
	if text == "" {
		return Draft{}, errors.New("no response generated")
	}

	var d Draft
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return Draft{}, fmt.Errorf("failed to parse generated draft: %w", err)
	}
	return d, nil
}

// Append joins generated content onto existing draft text, separated by a
// blank line when there is existing text.
func Append(existing, generated string) string {
	if existing == "" {
		return generated
	}
	return existing + "\n\n" + generated
}
