package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>Job posting</body></html>"))
	}))
	defer srv.Close()

	got, err := Page(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, got.StatusCode)
	assert.Contains(t, got.HTML, "Job posting")
	assert.Contains(t, got.ContentType, "text/html")
}

func TestPage_NonOKStatusReturnsResultAndError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("gone"))
	}))
	defer srv.Close()

	got, err := Page(context.Background(), srv.URL, nil)

	require.Error(t, err)
	require.NotNil(t, got)
	assert.Equal(t, http.StatusNotFound, got.StatusCode)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, srv.URL, fetchErr.URL)
}

func TestPage_InvalidURL(t *testing.T) {
	_, err := Page(context.Background(), "not-a-url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestPage_CustomHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "en", r.Header.Get("Accept-Language"))
	}))
	defer srv.Close()

	opts := &Options{
		Timeout:   DefaultTimeout,
		UserAgent: "custom-agent",
		Headers:   map[string]string{"Accept-Language": "en"},
	}
	_, err := Page(context.Background(), srv.URL, opts)

	require.NoError(t, err)
}
