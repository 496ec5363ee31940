package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/game"
	"svw.info/woodoku/internal/shape"
	"svw.info/woodoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/state", h.handleState)
	mux.HandleFunc("/api/place", h.handlePlace)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/shapes", h.handleShapes)
	mux.HandleFunc("/api/end", h.handleEnd)
}

// statusFor maps usecase and game errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidSlot), errors.Is(err, game.ErrSlotUsed), errors.Is(err, game.ErrCannotPlace):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ---- New ----

type newReq struct {
	Seed int64 `json:"seed,omitempty"`
}

type stateResp struct {
	Game  *domain.GameState `json:"game,omitempty"`
	Error string            `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	st, err := h.UC.NewGame(r.Context(), req.Seed)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(stateResp{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(stateResp{Game: &st})
}

// ---- State ----

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "missing id"})
		return
	}
	st, err := h.UC.State(r.Context(), id)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(stateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(stateResp{Game: &st})
}

// ---- Place ----

type placeReq struct {
	ID   string `json:"id"`
	Slot int    `json:"slot"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}
type placeResp struct {
	Outcome *domain.Outcome   `json:"outcome,omitempty"`
	Game    *domain.GameState `json:"game,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func (h *Handler) handlePlace(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req placeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(placeResp{Error: "invalid JSON or missing id"})
		return
	}
	m := domain.Move{Slot: req.Slot, Origin: domain.CellCoord{Row: req.Row, Col: req.Col}}
	out, st, err := h.UC.Place(r.Context(), req.ID, m)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(placeResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(placeResp{Outcome: &out, Game: &st})
}

// ---- Hint ----

type hintReq struct {
	ID      string `json:"id"`
	MaxTier string `json:"maxTier,omitempty"`
}
type hintResp struct {
	Found bool         `json:"found"`
	Hint  *domain.Hint `json:"hint,omitempty"`
	Error string       `json:"error,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy":
		return domain.StrategyGreedy
	default:
		return domain.StrategyLookahead
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON or missing id"})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.ID, parseTier(req.MaxTier))
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	resp := hintResp{Found: ok}
	if ok {
		resp.Hint = &hh
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Shapes ----

type shapeDTO struct {
	Family int                `json:"family"` // shared by all rotations of one prototype
	Cells  []domain.CellCoord `json:"cells"`
	Render string             `json:"render"`
}
type shapesResp struct {
	Shapes []shapeDTO `json:"shapes"`
	Error  string     `json:"error,omitempty"`
}

func (h *Handler) handleShapes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	shapes, err := h.UC.Shapes(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(shapesResp{Error: err.Error()})
		return
	}
	idx := shape.NewIndex(shapes)
	out := make([]shapeDTO, len(shapes))
	for i, s := range shapes {
		family, _ := idx.Family(s)
		out[i] = shapeDTO{Family: family, Cells: s.Coords(), Render: s.String()}
	}
	_ = json.NewEncoder(w).Encode(shapesResp{Shapes: out})
}

// ---- End ----

type endReq struct {
	ID string `json:"id"`
}

func (h *Handler) handleEnd(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req endReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "invalid JSON or missing id"})
		return
	}
	st, err := h.UC.Delete(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(stateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(stateResp{Game: &st})
}
