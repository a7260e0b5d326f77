package relay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bb-schoonmaak-backend/config"
	"bb-schoonmaak-backend/internal/domain"
	"bb-schoonmaak-backend/internal/relay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string, timeoutMS int) *relay.Client {
	return relay.NewClient(&config.Config{
		RelayBaseURL:   baseURL,
		RelayClientID:  "bb_schoonmaak",
		RelayTimeoutMS: timeoutMS,
	})
}

func TestClientSend(t *testing.T) {
	t.Run("posts envelope to submit endpoint", func(t *testing.T) {
		var got domain.SubmissionEnvelope
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/submit", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, 5000)
		err := client.Send(context.Background(), "Contactformulier", map[string]any{"Naam": "Jan"})

		require.NoError(t, err)
		assert.Equal(t, "bb_schoonmaak", got.ClientID)
		assert.Equal(t, "Contactformulier", got.FormType)
		assert.Equal(t, "Jan", got.Data["Naam"])
	})

	t.Run("non-2xx status is a failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "relay exploded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, 5000)
		err := client.Send(context.Background(), "Contactformulier", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "relay error (500)")
	})

	t.Run("malformed body is a failure even on 200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, 5000)
		err := client.Send(context.Background(), "Contactformulier", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed response")
	})

	t.Run("timeout aborts the in-flight request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, 50)

		start := time.Now()
		err := client.Send(context.Background(), "Contactformulier", nil)

		require.Error(t, err)
		assert.Less(t, time.Since(start), 400*time.Millisecond)
	})

	t.Run("unconfigured relay yields the configuration sentinel", func(t *testing.T) {
		client := newTestClient("", 5000)
		require.False(t, client.IsConfigured())

		err := client.Send(context.Background(), "Contactformulier", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), relay.ConfigurationErrorMarker)
	})
}
