package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyClient_Post(t *testing.T) {
	var gotBody, gotContentType, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Signal received and published"))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	resp, err := client.Post(context.Background(), "/signal",
		[]byte(`{"symbol":"AAPL","action":"buy"}`),
		map[string]string{"Content-Type": "application/json"},
	)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Signal received and published", string(resp.Body))
	assert.Equal(t, "/signal", gotPath)
	assert.Equal(t, `{"symbol":"AAPL","action":"buy"}`, gotBody)
	assert.Equal(t, "application/json", gotContentType)
}

func TestRestyClient_PostUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(url, 500*time.Millisecond)
	_, err := client.Post(context.Background(), "/signal", []byte(`{}`), nil)
	assert.Error(t, err)
}
