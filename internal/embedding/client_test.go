package embedding

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{Endpoint: srv.URL, Model: "test-model"})
	require.NoError(t, err)
	return client
}

func TestEmbed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req embedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, "my laptop will not boot", req.Prompt)

		io.WriteString(w, `{"embedding": [0.1, 0.2, 0.3]}`)
	})

	vector, err := client.Embed(context.Background(), "my laptop will not boot")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vector)
}

func TestEmbed_ServiceError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Embed(context.Background(), "q")
	assert.ErrorIs(t, err, ErrNoEmbedding)
}

func TestEmbed_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewClient(Config{Endpoint: srv.URL, Model: "test-model"})
	require.NoError(t, err)

	_, err = client.Embed(context.Background(), "q")
	assert.ErrorIs(t, err, ErrNoEmbedding)
}

func TestEmbed_MissingEmbeddingField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"model": "test-model"}`)
	})

	_, err := client.Embed(context.Background(), "q")
	assert.ErrorIs(t, err, ErrNoEmbedding)
}

func TestEmbed_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"embedding": `)
	})

	_, err := client.Embed(context.Background(), "q")
	assert.ErrorIs(t, err, ErrNoEmbedding)
}

func TestEmbed_DimensionMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"embedding": [0.1, 0.2]}`)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{Endpoint: srv.URL, Model: "test-model", Dimensions: 3})
	require.NoError(t, err)

	_, err = client.Embed(context.Background(), "q")
	assert.ErrorIs(t, err, ErrNoEmbedding)
	assert.Contains(t, err.Error(), "dimensions")
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, client.cfg.Endpoint)
	assert.Equal(t, DefaultModel, client.cfg.Model)
}
