package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPFetcherSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte("payload"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5*time.Second, 1024)
	data, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data)
}

func TestHTTPFetcherRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("eventually"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(10*time.Second, 1024)
	data, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, []byte("eventually"), data)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestHTTPFetcherDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5*time.Second, 1024)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHTTPFetcherGivesUpAfterRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(10*time.Second, 1024)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	require.Equal(t, int32(fetchAttempts), atomic.LoadInt32(&calls))
}

func TestHTTPFetcherTruncatesOversizedBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, 2048))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5*time.Second, 100)
	data, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, data, 100)
}

func TestHTTPFetcherHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewHTTPFetcher(5*time.Second, 1024)
	_, err := fetcher.Fetch(ctx, server.URL)
	require.Error(t, err)
}

func TestHTTPFetcherInvalidURL(t *testing.T) {
	fetcher := NewHTTPFetcher(time.Second, 1024)
	_, err := fetcher.Fetch(context.Background(), "http://\x00bad")
	require.Error(t, err)
}
