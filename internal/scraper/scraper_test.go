package scraper

import (
	"compress/gzip"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nordquant/internal/registry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchStoresNetfondsHistoryCompressed(t *testing.T) {
	const history = "quote_date;paper;exch;open;high;low;close;volume;value\n" +
		"20170102;STL;OSE;158.00;159.00;157.50;158.80;2900000;158.30\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, history)
	}))
	defer srv.Close()

	s := New(Options{DataDir: t.TempDir(), RequestsPerSecond: 100}, discardLogger())
	inst := &registry.Instrument{
		Symbol:       "STL",
		DownloadURL:  srv.URL,
		SourceFormat: registry.FormatSDV,
	}

	path, err := s.Fetch(context.Background(), inst)
	require.NoError(t, err)
	assert.Equal(t, s.FileName(inst), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	stored, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, history, string(stored))
}

func TestFetchRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	s := New(Options{DataDir: t.TempDir(), RequestsPerSecond: 100}, discardLogger())
	_, err := s.Fetch(context.Background(), &registry.Instrument{
		Symbol:       "STL",
		DownloadURL:  srv.URL,
		SourceFormat: registry.FormatSDV,
	})
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestFetchAllContinuesPastFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		io.WriteString(w, "header\n20170102;X;OSE;1;1;1;1;1;1\n")
	}))
	defer srv.Close()

	s := New(Options{DataDir: t.TempDir(), RequestsPerSecond: 100, Concurrency: 2}, discardLogger())
	instruments := []*registry.Instrument{
		{Symbol: "GOOD", DownloadURL: srv.URL + "/good", SourceFormat: registry.FormatSDV},
		{Symbol: "BAD", DownloadURL: srv.URL + "/bad", SourceFormat: registry.FormatSDV},
	}

	results, err := s.FetchAll(context.Background(), instruments)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.NoError(t, results[0].Err)
	assert.FileExists(t, results[0].Path)
	assert.Error(t, results[1].Err)
}

func TestFetchAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(Options{DataDir: t.TempDir(), RequestsPerSecond: 0.001}, discardLogger())
	_, err := s.FetchAll(ctx, []*registry.Instrument{
		{Symbol: "STL", DownloadURL: "http://127.0.0.1:1", SourceFormat: registry.FormatSDV},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestXLSXStoredVerbatim(t *testing.T) {
	payload := []byte{0x50, 0x4b, 0x03, 0x04, 0x01, 0x02}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	s := New(Options{DataDir: t.TempDir(), RequestsPerSecond: 100}, discardLogger())
	path, err := s.Fetch(context.Background(), &registry.Instrument{
		Symbol:       "OMXS30",
		DownloadURL:  srv.URL,
		SourceFormat: registry.FormatXLSX,
	})
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", path[len(path)-5:])

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, stored)
}
