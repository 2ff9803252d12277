package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"svw.info/sudoku-board/internal/domain"
	"svw.info/sudoku-board/internal/session"
	"svw.info/sudoku-board/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/session", h.handleNewSession)
	mux.HandleFunc("/api/state", h.handleState)
	mux.HandleFunc("/api/edit", h.handleEdit)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/reset", h.handleReset)
	mux.HandleFunc("/api/check", h.handleCheck)
}

// stateResp is the board state payload shared by most endpoints.
type stateResp struct {
	SessionID     string             `json:"sessionId,omitempty"`
	Board         [9][9]uint8        `json:"board"`
	Fixed         [9][9]bool         `json:"fixed"`
	Valid         bool               `json:"valid"`
	Conflicts     []domain.CellCoord `json:"conflicts,omitempty"`
	Complete      bool               `json:"complete"`
	ShowConflicts bool               `json:"showConflicts"`
	Status        domain.Status      `json:"status"`
	Error         string             `json:"error,omitempty"`
}

func stateOf(id string, v session.View) stateResp {
	return stateResp{
		SessionID:     id,
		Board:         v.Board.Values,
		Fixed:         v.Board.Fixed,
		Valid:         v.Verdict.Valid,
		Conflicts:     v.Verdict.Conflicts,
		Complete:      v.Verdict.Complete,
		ShowConflicts: v.ShowConflicts,
		Status:        v.Status,
	}
}

func writeState(w http.ResponseWriter, id string, v session.View) {
	_ = json.NewEncoder(w).Encode(stateOf(id, v))
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(stateResp{Error: msg})
}

func errCode(err error) int {
	if errors.Is(err, usecase.ErrNoSession) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// ---- Session lifecycle ----

func (h *Handler) handleNewSession(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	id, v, err := h.UC.NewSession(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeState(w, id, v)
}

type sessionReq struct {
	SessionID string `json:"sessionId"`
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req sessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeErr(w, http.StatusBadRequest, "invalid JSON or missing sessionId")
		return
	}
	v, err := h.UC.View(r.Context(), req.SessionID)
	if err != nil {
		writeErr(w, errCode(err), err.Error())
		return
	}
	writeState(w, req.SessionID, v)
}

// ---- Edit ----

type editReq struct {
	SessionID string `json:"sessionId"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Value     string `json:"value"`
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req editReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeErr(w, http.StatusBadRequest, "invalid JSON or missing sessionId")
		return
	}
	coord := domain.CellCoord{Row: req.Row, Col: req.Col}
	v, err := h.UC.EditCell(r.Context(), req.SessionID, coord, req.Value)
	if err != nil {
		writeErr(w, errCode(err), err.Error())
		return
	}
	writeState(w, req.SessionID, v)
}

// ---- Validate / Reset ----

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req sessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeErr(w, http.StatusBadRequest, "invalid JSON or missing sessionId")
		return
	}
	v, err := h.UC.Validate(r.Context(), req.SessionID)
	if err != nil {
		writeErr(w, errCode(err), err.Error())
		return
	}
	writeState(w, req.SessionID, v)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req sessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeErr(w, http.StatusBadRequest, "invalid JSON or missing sessionId")
		return
	}
	v, err := h.UC.Reset(r.Context(), req.SessionID)
	if err != nil {
		writeErr(w, errCode(err), err.Error())
		return
	}
	writeState(w, req.SessionID, v)
}

// ---- Stateless check ----

type checkReq struct {
	Board [9][9]uint8 `json:"board"`
}

type checkResp struct {
	Valid     bool               `json:"valid"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Complete  bool               `json:"complete"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(checkResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	verdict, err := h.UC.Check(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(checkResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(checkResp{
		Valid:     verdict.Valid,
		Conflicts: verdict.Conflicts,
		Complete:  verdict.Complete,
	})
}
