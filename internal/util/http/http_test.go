package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/palettecraft/internal/api"
	"github.com/jmylchreest/palettecraft/internal/store"
	"github.com/jmylchreest/palettecraft/internal/version"
)

func TestFetchSetsHeaders(t *testing.T) {
	var gotUA, gotCustom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotCustom = r.Header.Get("X-Test")
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	data, err := Fetch(context.Background(), srv.URL, FetchOptions{Headers: map[string]string{"X-Test": "yes"}})
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, version.UserAgent(), gotUA)
	assert.Equal(t, "yes", gotCustom)
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid palette data"}`))
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL, FetchOptions{})
	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusBadRequest, serr.StatusCode)
	assert.Equal(t, "Invalid palette data", serr.Message)
	assert.EqualError(t, err, "HTTP 400: Invalid palette data")
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", MaxResponseBytes+1)))
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL, FetchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size limit exceeded")
}

func TestFetchHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Fetch(ctx, srv.URL, FetchOptions{})
	require.Error(t, err)
}

func newShareServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(store.NewMemoryStore(), hclog.NewNullLogger(), 0)))
	t.Cleanup(srv.Close)
	return srv
}

func TestShareClientRoundTrip(t *testing.T) {
	srv := newShareServer(t)

	client, err := NewShareClient(srv.URL+"/", time.Second)
	require.NoError(t, err)

	shared, err := client.Share(context.Background(), "Ocean", []string{"#0077BE", "#00A8CC"})
	require.NoError(t, err)
	require.Len(t, shared.ShareID, store.ShareIDLength)

	got, err := client.Get(context.Background(), shared.ShareID)
	require.NoError(t, err)
	assert.Equal(t, "Ocean", got.Name)
	assert.Equal(t, []string{"#0077BE", "#00A8CC"}, got.Colors)
	assert.Equal(t, srv.URL+"/palette/"+shared.ShareID, client.ShareURL(shared.ShareID))
}

func TestShareClientErrors(t *testing.T) {
	srv := newShareServer(t)
	client, err := NewShareClient(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = client.Share(context.Background(), "bad", []string{"blue"})
	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusBadRequest, serr.StatusCode)

	_, err = client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.Get(context.Background(), "../etc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewShareClientValidatesURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{url: "http://localhost:8080", wantErr: false},
		{url: "https://palettes.example.com", wantErr: false},
		{url: "ftp://example.com", wantErr: true},
		{url: "", wantErr: true},
		{url: "http://example.com?x=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			_, err := NewShareClient(tt.url, 0)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewShareClient(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
