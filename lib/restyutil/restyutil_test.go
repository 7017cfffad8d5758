package restyutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestInstrumentClientDumpsExchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<table></table>"))
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "dump")
	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	client := resty.New()
	InstrumentClient(client, nil, output)

	_, err = client.R().
		SetHeader("Accept-Language", "en-US").
		Get(server.URL + "/trades")
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(dir, "1.http"))
	require.NoError(t, err)
	dump := string(contents)
	require.Contains(t, dump, "GET "+server.URL+"/trades")
	require.Contains(t, dump, "Accept-Language: en-US")
	require.Contains(t, dump, "200 ")
	require.Contains(t, dump, "<table></table>")
}

func TestInstrumentClientWithoutOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := resty.New()
	InstrumentClient(client, nil, nil)

	res, err := client.R().Get(server.URL)
	require.NoError(t, err)
	require.Equal(t, "ok", res.String())
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Add("B", "2")
	headers.Add("A", "1")
	headers.Add("A", "3")
	require.Equal(t, "A: 1\nA: 3\nB: 2", formatHeaders(headers))
	require.Equal(t, "", formatHeaders(nil))
}

func TestFormatRequestBody(t *testing.T) {
	require.Equal(t, "", formatRequestBody(nil))

	get, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)
	get.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "", formatRequestBody(get))

	post, err := http.NewRequest(http.MethodPost, "http://example.com", strings.NewReader("local=46"))
	require.NoError(t, err)
	require.Equal(t, "local=46", formatRequestBody(post))
}
