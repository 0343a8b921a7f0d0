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

func TestFromURL_ExtractsAndCleans(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<nav>menu</nav>
			<div class="job-description">
				<h2>Python Engineer</h2>
				<p>Requires 5    years of   experience.</p>
			</div>
		</body></html>`))
	}))
	defer srv.Close()

	got, err := FromURL(context.Background(), srv.URL, URLOptions{})

	require.NoError(t, err)
	assert.Contains(t, got, "Python Engineer")
	assert.Contains(t, got, "Requires 5 years of experience.")
	assert.NotContains(t, got, "menu")
}

func TestFromURL_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL, URLOptions{})

	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestFromURL_EmptyPosting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="job-description">   </div></body></html>`))
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL, URLOptions{})

	assert.True(t, errors.Is(err, ErrEmptyPosting))
}

func TestFromURL_InvalidURL(t *testing.T) {
	_, err := FromURL(context.Background(), "not a url", URLOptions{})

	assert.True(t, errors.Is(err, ErrFetchFailed))
}
