package snapshot

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavrajebhosale/swing-digest/pkg/config"
	"github.com/vaibhavrajebhosale/swing-digest/pkg/logger"
)

func testClient(serverURL string) *Client {
	cfg := config.SnapshotConfig{
		BaseURL:        serverURL,
		Branch:         "Strategy_4_1",
		UserAgent:      "us-swing-trade-bot/1.0",
		TimeoutSeconds: 5,
	}
	return NewClient(cfg, logger.NewNop())
}

func TestTableURL(t *testing.T) {
	c := testClient("https://cdn.example/gh/owner/repo")

	month := time.Now().UTC().Format("2006-01")
	want := fmt.Sprintf("https://cdn.example/gh/owner/repo/snapshots/%s/Strategy_4_1/latest/EntryWatchlist.json", month)
	assert.Equal(t, want, c.TableURL("EntryWatchlist"))

	want = fmt.Sprintf("https://cdn.example/gh/owner/repo/snapshots/%s/Strategy_4_1/latest/manifest.json", month)
	assert.Equal(t, want, c.ManifestURL())
}

func TestTableURL_TrimsTrailingSlash(t *testing.T) {
	c := testClient("https://cdn.example/base/")
	assert.NotContains(t, c.TableURL("RiskMonitor"), "base//")
}

func TestFetchTable(t *testing.T) {
	var gotPath string
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeaders = r.Header.Clone()
		fmt.Fprint(w, `{"columns":["Ticker"],"rows":[{"Ticker":"AAA"}]}`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	obj := c.FetchTable(context.Background(), "EntryWatchlist")

	require.NotNil(t, obj)
	rows, ok := obj["rows"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 1)

	month := time.Now().UTC().Format("2006-01")
	assert.Equal(t, fmt.Sprintf("/snapshots/%s/Strategy_4_1/latest/EntryWatchlist.json", month), gotPath)
	assert.Equal(t, "application/json", gotHeaders.Get("Accept"))
	assert.Equal(t, "us-swing-trade-bot/1.0", gotHeaders.Get("User-Agent"))
	assert.Equal(t, "no-cache", gotHeaders.Get("Cache-Control"))
}

func TestFetchTable_NonOKStatusIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Couldn't find the requested file", http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	assert.Nil(t, c.FetchTable(context.Background(), "EntryWatchlist"))
}

func TestFetchTable_MalformedJSONIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rows": [truncated`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	assert.Nil(t, c.FetchTable(context.Background(), "EntryWatchlist"))
}

func TestFetchTable_ArrayPayloadIsAbsent(t *testing.T) {
	// A bare array is not the expected object shape; the normalizer
	// downstream would find no rows either way.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"Ticker":"AAA"}]`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	assert.Nil(t, c.FetchTable(context.Background(), "EntryWatchlist"))
}

func TestFetchTable_ServerDownIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := testClient(srv.URL)
	assert.Nil(t, c.FetchTable(context.Background(), "EntryWatchlist"))
}
