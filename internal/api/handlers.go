package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jmylchreest/palettecraft/internal/mood"
	"github.com/jmylchreest/palettecraft/internal/store"
)

// Error bodies returned by the API.
const (
	errInvalidPalette   = "Invalid palette data"
	errPaletteNotFound  = "Palette not found"
	errRetrievePalette  = "Failed to retrieve palette"
	errRetrievePalettes = "Failed to retrieve palettes"
	errInvalidID        = "Invalid palette id"
	errDeletePalette    = "Failed to delete palette"
)

// ShareRequest is the body of POST /api/palettes/share.
type ShareRequest struct {
	Name   string   `json:"name" validate:"required"`
	Colors []string `json:"colors" validate:"required,min=1,dive,palettehex"`
}

// ShareResponse is returned after a palette is shared.
type ShareResponse struct {
	ShareID string              `json:"shareId"`
	Palette store.StoredPalette `json:"palette"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{Error: msg})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// SharePalette stores a palette under a new share id.
func (h *Handler) SharePalette(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody)).Decode(&req); err != nil {
		h.logger.Debug("rejected share request", "error", err)
		h.writeError(w, http.StatusBadRequest, errInvalidPalette)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Debug("rejected share request", "error", err)
		h.writeError(w, http.StatusBadRequest, errInvalidPalette)
		return
	}

	shareID, err := store.NewShareID()
	if err != nil {
		h.logger.Error("failed to generate share id", "error", err)
		h.writeError(w, http.StatusBadRequest, errInvalidPalette)
		return
	}

	p, err := h.store.Create(r.Context(), store.NewPalette{
		Name:    req.Name,
		Colors:  req.Colors,
		ShareID: shareID,
	})
	if err != nil {
		h.logger.Error("failed to store palette", "error", err)
		h.writeError(w, http.StatusBadRequest, errInvalidPalette)
		return
	}

	h.logger.Info("palette shared", "id", p.ID, "share_id", shareID, "colors", len(p.Colors))
	h.writeJSON(w, http.StatusOK, ShareResponse{ShareID: shareID, Palette: p})
}

// GetSharedPalette returns the palette for a share id.
func (h *Handler) GetSharedPalette(w http.ResponseWriter, r *http.Request) {
	shareID := chi.URLParam(r, "shareId")

	p, err := h.store.GetByShareID(r.Context(), shareID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, errPaletteNotFound)
			return
		}
		h.logger.Error("failed to load palette", "share_id", shareID, "error", err)
		h.writeError(w, http.StatusInternalServerError, errRetrievePalette)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// ListPalettes returns every stored palette, newest first.
func (h *Handler) ListPalettes(w http.ResponseWriter, r *http.Request) {
	palettes, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list palettes", "error", err)
		h.writeError(w, http.StatusInternalServerError, errRetrievePalettes)
		return
	}
	if palettes == nil {
		palettes = []store.StoredPalette{}
	}
	h.writeJSON(w, http.StatusOK, palettes)
}

// DeletePalette removes a palette by numeric id.
func (h *Handler) DeletePalette(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, http.StatusBadRequest, errInvalidID)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to delete palette", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, errDeletePalette)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMoods returns the mood catalog, filtered by the q query parameter.
func (h *Handler) ListMoods(w http.ResponseWriter, r *http.Request) {
	moods := mood.Search(r.URL.Query().Get("q"))
	if moods == nil {
		moods = []mood.Entry{}
	}
	h.writeJSON(w, http.StatusOK, moods)
}

// ResolveMood resolves the q query parameter to a palette.
func (h *Handler) ResolveMood(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, mood.Resolve(r.URL.Query().Get("q")))
}
