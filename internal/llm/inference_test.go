package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastClient(endpoint string, opts ...InferenceOption) *InferenceClient {
	base := []InferenceOption{WithBackoffStep(time.Millisecond)}
	return NewInferenceClient(endpoint, "", append(base, opts...)...)
}

func TestClassify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"resume text"}, req.Texts)
		assert.Equal(t, []string{"highly relevant to job", "not relevant to job"}, req.CandidateLabels)

		json.NewEncoder(w).Encode(Classification{
			Labels: []string{"highly relevant to job", "not relevant to job"},
			Scores: []float64{0.91, 0.09},
		})
	}))
	defer srv.Close()

	c := fastClient(srv.URL)
	got, err := c.Classify(context.Background(), []string{"resume text"}, []string{"highly relevant to job", "not relevant to job"})

	require.NoError(t, err)
	assert.Equal(t, "highly relevant to job", got.TopLabel())
	assert.Equal(t, []float64{0.91, 0.09}, got.Scores)
}

func TestClassify_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(Classification{})
	}))
	defer srv.Close()

	c := NewInferenceClient(srv.URL, "secret", WithBackoffStep(time.Millisecond))
	_, err := c.Classify(context.Background(), []string{"x"}, []string{"y"})

	require.NoError(t, err)
}

func TestClassify_RetriesOn503ThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(Classification{Labels: []string{"ok"}, Scores: []float64{1}})
	}))
	defer srv.Close()

	c := fastClient(srv.URL)
	got, err := c.Classify(context.Background(), []string{"x"}, []string{"y"})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "ok", got.TopLabel())
}

func TestClassify_ExhaustsRetriesOnPersistent503(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := fastClient(srv.URL)
	_, err := c.Classify(context.Background(), []string{"x"}, []string{"y"})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, IsRemoteServiceError(err))

	var rse *RemoteServiceError
	require.ErrorAs(t, err, &rse)
	assert.Equal(t, http.StatusServiceUnavailable, rse.StatusCode)
}

func TestClassify_DoesNotRetryOtherStatuses(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := fastClient(srv.URL)
	_, err := c.Classify(context.Background(), []string{"x"}, []string{"y"})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, IsRemoteServiceError(err))
}

func TestClassify_MalformedBodyIsHardFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := fastClient(srv.URL)
	_, err := c.Classify(context.Background(), []string{"x"}, []string{"y"})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, IsRemoteServiceError(err))
}

func TestClassify_MismatchedLabelScoreLengths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Classification{Labels: []string{"a", "b"}, Scores: []float64{0.5}})
	}))
	defer srv.Close()

	c := fastClient(srv.URL)
	_, err := c.Classify(context.Background(), []string{"x"}, []string{"y"})

	require.Error(t, err)
	assert.True(t, IsRemoteServiceError(err))
}

func TestClassify_CanceledContextStopsRetrying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewInferenceClient(srv.URL, "", WithBackoffStep(time.Minute))
	_, err := c.Classify(ctx, []string{"x"}, []string{"y"})

	require.Error(t, err)
	assert.True(t, IsRemoteServiceError(err))
}

func TestTopLabel_Empty(t *testing.T) {
	assert.Equal(t, "", Classification{}.TopLabel())
}
