package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL_ExtractsJobDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<nav>Home | Jobs | About</nav>
			<div class="job-description">Backend Engineer. Requirements: Python, Django.</div>
			<footer>Copyright</footer>
		</body></html>`))
	}))
	defer server.Close()

	text, err := IngestFromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Python")
	assert.NotContains(t, text, "Copyright")
}

func TestIngestFromURL_FallsBackToBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Looking for a Go developer.</p></body></html>`))
	}))
	defer server.Close()

	text, err := IngestFromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Go developer")
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := IngestFromURL(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "404")
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	_, err := IngestFromURL(context.Background(), "not a url", nil)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestIngestFromURL_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><body>Job posting</body></html>`))
	}))
	defer server.Close()

	_, err := IngestFromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `<html><body>
		<script>var x = 1;</script>
		<main>Senior Data Engineer role.</main>
	</body></html>`

	text, err := ExtractMainText(html, []string{"main"})
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Data Engineer")
	assert.NotContains(t, text, "var x")
}
