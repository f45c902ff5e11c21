package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/shared/config"
)

func newTestClassifier(baseURL string) *HTTPClassifier {
	return NewHTTPClassifier(&config.ClassifierConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 2,
	})
}

func TestHTTPClassifier_Classify(t *testing.T) {
	t.Run("returns category from service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/classify", r.URL.Path)

			var req struct {
				Text string `json:"text"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Printer broken. The office printer jams on every job", req.Text)

			json.NewEncoder(w).Encode(map[string]string{"category": "hardware"})
		}))
		defer server.Close()

		c := newTestClassifier(server.URL)
		category, err := c.Classify(context.Background(), "Printer broken. The office printer jams on every job")
		assert.NoError(t, err)
		assert.Equal(t, "hardware", category)
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := newTestClassifier(server.URL)
		category, err := c.Classify(context.Background(), "anything")
		assert.Error(t, err)
		assert.Empty(t, category)
	})

	t.Run("empty category is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"category": "  "})
		}))
		defer server.Close()

		c := newTestClassifier(server.URL)
		_, err := c.Classify(context.Background(), "anything")
		assert.Error(t, err)
	})

	t.Run("slow service times out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			json.NewEncoder(w).Encode(map[string]string{"category": "late"})
		}))
		defer server.Close()

		c := newTestClassifier(server.URL)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := c.Classify(ctx, "anything")
		assert.Error(t, err)
	})

	t.Run("missing base URL is an error", func(t *testing.T) {
		c := newTestClassifier("")
		_, err := c.Classify(context.Background(), "anything")
		assert.Error(t, err)
	})
}
