package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmylchreest/palettecraft/internal/api"
	"github.com/jmylchreest/palettecraft/internal/security"
	"github.com/jmylchreest/palettecraft/internal/store"
)

// ErrNotFound is returned by ShareClient.Get for an unknown share id.
var ErrNotFound = errors.New("shared palette not found")

// ShareClient talks to a palettecraft share server.
type ShareClient struct {
	baseURL string
	opts    FetchOptions
}

// NewShareClient creates a client for the server at baseURL.
func NewShareClient(baseURL string, timeout time.Duration) (*ShareClient, error) {
	if err := security.ValidateServerURL(baseURL); err != nil {
		return nil, err
	}
	return &ShareClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		opts:    FetchOptions{Timeout: timeout},
	}, nil
}

// Share stores a palette on the server and returns the response.
func (c *ShareClient) Share(ctx context.Context, name string, colors []string) (api.ShareResponse, error) {
	var resp api.ShareResponse
	req := api.ShareRequest{Name: name, Colors: colors}
	if err := PostJSON(ctx, c.baseURL+"/api/palettes/share", req, &resp, c.opts); err != nil {
		return api.ShareResponse{}, fmt.Errorf("failed to share palette: %w", err)
	}
	return resp, nil
}

// ShareURL returns the link at which the server shows a shared palette.
func (c *ShareClient) ShareURL(shareID string) string {
	return c.baseURL + "/palette/" + shareID
}

// Get fetches a shared palette by share id.
func (c *ShareClient) Get(ctx context.Context, shareID string) (store.StoredPalette, error) {
	if err := security.ValidateShareID(shareID); err != nil {
		return store.StoredPalette{}, err
	}

	var p store.StoredPalette
	if err := GetJSON(ctx, c.baseURL+"/api/palettes/share/"+shareID, &p, c.opts); err != nil {
		var serr *StatusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return store.StoredPalette{}, fmt.Errorf("%w: %s", ErrNotFound, shareID)
		}
		return store.StoredPalette{}, fmt.Errorf("failed to fetch palette: %w", err)
	}
	return p, nil
}
