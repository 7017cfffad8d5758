package payscale

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"payscales/internal/components/telemetry"
	"payscales/lib/restyutil"

	"github.com/stretchr/testify/require"
)

func noWait(int) time.Duration {
	return 0
}

func newTestClient(t testing.TB, options ClientOptions, tel telemetry.API) *Client {
	options.Backoff = noWait
	options.DisableCloudflareBypass = true
	client, err := NewClient(options, tel)
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestFetchSendsBrowserHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<table></table>"))
	}))
	defer server.Close()

	client := newTestClient(t, ClientOptions{}, &telemetry.Recorder{})
	body, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "<table></table>", body)

	require.Equal(t, DefaultUserAgent, got.Get("User-Agent"))
	require.Equal(t, DefaultAcceptLanguage, got.Get("Accept-Language"))
	require.Contains(t, got.Get("Accept"), "text/html")
}

func TestFetchRetriesUntilSuccess(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	rec := &telemetry.Recorder{}
	client := newTestClient(t, ClientOptions{Retries: 3}, rec)
	body, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "ok", body)
	require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	require.Empty(t, rec.Reports(telemetry.KindBroken))
}

func TestFetchExhausted(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	rec := &telemetry.Recorder{}
	client := newTestClient(t, ClientOptions{Retries: 3}, rec)
	_, err := client.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	require.Equal(t, int32(3), atomic.LoadInt32(&calls))

	var exhausted *FetchExhaustedError
	require.True(t, errors.As(err, &exhausted))
	require.Equal(t, 3, exhausted.Attempts)
	require.Equal(t, server.URL, exhausted.URL)

	var status *StatusError
	require.True(t, errors.As(err, &status))
	require.Equal(t, http.StatusForbidden, status.Code)

	require.NotEmpty(t, rec.Reports(telemetry.KindBroken))
}

func TestFetchSingleAttempt(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, ClientOptions{Retries: 1}, &telemetry.Recorder{})
	_, err := client.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(t, ClientOptions{Retries: 2}, &telemetry.Recorder{})
	_, err := client.Fetch(context.Background(), url)

	var exhausted *FetchExhaustedError
	require.True(t, errors.As(err, &exhausted))
	require.Equal(t, 2, exhausted.Attempts)
	require.Contains(t, err.Error(), "failed to fetch "+url)
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := newTestClient(t, ClientOptions{Retries: 1, Timeout: 50 * time.Millisecond}, &telemetry.Recorder{})
	_, err := client.Fetch(context.Background(), server.URL)
	require.Error(t, err)
}

func TestFetchDecodesCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "Zürich" in latin-1
		w.Write([]byte{'Z', 0xfc, 'r', 'i', 'c', 'h'})
	}))
	defer server.Close()

	client := newTestClient(t, ClientOptions{}, &telemetry.Recorder{})
	body, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "Zürich", body)
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(ClientOptions{Retries: -1}, &telemetry.Recorder{})
	require.Error(t, err)

	_, err = NewClient(ClientOptions{Timeout: -time.Second}, &telemetry.Recorder{})
	require.Error(t, err)

	client, err := NewClient(ClientOptions{DisableCloudflareBypass: true}, &telemetry.Recorder{})
	require.NoError(t, err)
	require.Equal(t, DefaultRetries, client.options.Retries)
	require.Equal(t, DefaultTimeout, client.options.Timeout)
}

func TestFetchDumpsHttp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<table><tr><td>Local</td></tr></table>"))
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "http")
	output, err := restyutil.NewFilesystemOutput(dir)
	require.NoError(t, err)

	client := newTestClient(t, ClientOptions{HttpDump: output}, &telemetry.Recorder{})
	body, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Contains(t, body, "Local")

	dump, err := os.ReadFile(filepath.Join(dir, "1.http"))
	require.NoError(t, err)
	require.Contains(t, string(dump), "GET "+server.URL)
	require.Contains(t, string(dump), "User-Agent: "+DefaultUserAgent)
	require.Contains(t, string(dump), "<table><tr><td>Local</td></tr></table>")
}
