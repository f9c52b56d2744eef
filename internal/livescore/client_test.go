package livescore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientEnforcesFetchBudget(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Stages":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "example.com", 1)
	c.http.SetBaseURL(srv.URL)

	resp, err := c.MatchesByDate(context.Background(), "20260825")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, 1, c.RequestsUsed())

	// Budget exhausted: no data, and no further upstream call.
	resp, err = c.MatchesByDate(context.Background(), "20260825")
	assert.ErrorIs(t, err, ErrBudgetExhausted)
	assert.Nil(t, resp)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, 1, c.RequestsUsed())
}

func TestClientParsesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "soccer", r.URL.Query().Get("Category"))
		assert.Equal(t, "20260825", r.URL.Query().Get("Date"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Stages":[{"Snm":"Premier League","Cnm":"England","Events":[
			{"Eid":"1","T1":[{"Nm":"Arsenal","Rnk":2}],"T2":[{"Nm":"Chelsea","Rnk":6}],
			 "Eps":"NS","Esd":20260825190000}
		]}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "example.com", 1)
	c.http.SetBaseURL(srv.URL)

	resp, err := c.MatchesByDate(context.Background(), "20260825")
	require.NoError(t, err)
	require.Len(t, resp.Stages, 1)
	require.Len(t, resp.Stages[0].Events, 1)
	assert.Equal(t, "Arsenal", resp.Stages[0].Events[0].HomeTeams[0].Name)
	assert.Equal(t, "20260825190000", resp.Stages[0].Events[0].StartTime.String())
}

func TestClientBudgetSharedAcrossEndpoints(t *testing.T) {
	var calls atomic.Int64
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Stages":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "example.com", 1)
	c.http.SetBaseURL(srv.URL)

	_, err := c.LiveMatches(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"/matches/v2/list-live"}, paths)

	// Same counter guards both endpoints.
	_, err = c.MatchesByDate(context.Background(), "20260825")
	assert.ErrorIs(t, err, ErrBudgetExhausted)
	assert.Equal(t, int64(1), calls.Load())
}

func TestClientBudgetCountsFailedAttempts(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key", "example.com", 1)
	c.http.SetBaseURL(srv.URL)
	c.http.SetRetryCount(0)

	_, err := c.MatchesByDate(context.Background(), "20260825")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBudgetExhausted)

	// The failed attempt consumed the slot; no further upstream call.
	_, err = c.MatchesByDate(context.Background(), "20260825")
	assert.ErrorIs(t, err, ErrBudgetExhausted)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, 1, c.RequestsUsed())
}

func TestClientNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("bad-key", "example.com", 3)
	c.http.SetBaseURL(srv.URL)
	c.http.SetRetryCount(0)

	_, err := c.MatchesByDate(context.Background(), "20260825")
	assert.Error(t, err)
}
