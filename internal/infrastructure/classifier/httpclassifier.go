package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/shared/config"
)

const defaultTimeout = 10 * time.Second

// HTTPClassifier calls the external NLP service that assigns a category to
// free-form ticket text. Callers treat failures as soft: a ticket is still
// created when the classifier is down or slow.
type HTTPClassifier struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClassifier(cfg *config.ClassifierConfig) *HTTPClassifier {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &HTTPClassifier{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClassifier) Classify(ctx context.Context, text string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("classifier base URL is not configured")
	}

	payload := struct {
		Text string `json:"text"`
	}{Text: text}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("classify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var result struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode classify response: %w", err)
	}

	if strings.TrimSpace(result.Category) == "" {
		return "", fmt.Errorf("classifier returned empty category")
	}

	return result.Category, nil
}
