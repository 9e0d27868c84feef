package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"camp-portal/internal/app"
	"camp-portal/internal/domain"
	"camp-portal/internal/offline"
)

// sessionHeader carries the portal session id on REST requests.
const sessionHeader = "X-Portal-Session"

// Handler exposes the portal's REST surface.
type Handler struct {
	service *app.PortalService
	assets  *offline.Cache // nil when the offline bundle is not configured
}

func NewHandler(service *app.PortalService, assets *offline.Cache) *Handler {
	return &Handler{service: service, assets: assets}
}

// Register installs all REST routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /register", h.register)
	mux.HandleFunc("POST /leave", h.leave)
	mux.HandleFunc("GET /quests", h.listQuests)
	mux.HandleFunc("POST /quests", h.addQuest)
	mux.HandleFunc("POST /quests/{index}/toggle", h.toggleQuest)
	mux.HandleFunc("DELETE /quests/{index}", h.deleteQuest)
	mux.HandleFunc("POST /iris", h.iris)
	mux.HandleFunc("POST /oracle", h.oracle)
	mux.HandleFunc("POST /map/report", h.mapReport)
	mux.HandleFunc("GET /assets", h.asset)
	mux.HandleFunc("GET /healthz", h.healthz)
}

type registerRequest struct {
	Email string `json:"email"`
}

type registerResponse struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID, message, err := h.service.Register(r.Context(), req.Email)
	if errors.Is(err, domain.ErrInvalidEmail) {
		writeJSON(w, http.StatusBadRequest, registerResponse{Message: message})
		return
	}
	if err != nil {
		serveErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registerResponse{SessionID: sessionID, Message: message})
}

func (h *Handler) leave(w http.ResponseWriter, r *http.Request) {
	h.service.Leave(r.Context(), r.Header.Get(sessionHeader))
	w.WriteHeader(http.StatusNoContent)
}

type questBoard struct {
	Quests []domain.Quest `json:"quests"`
}

func (h *Handler) listQuests(w http.ResponseWriter, r *http.Request) {
	quests, err := h.service.Quests(r.Context(), r.Header.Get(sessionHeader))
	if err != nil {
		serveErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questBoard{Quests: quests})
}

type addQuestRequest struct {
	Text string `json:"text"`
}

func (h *Handler) addQuest(w http.ResponseWriter, r *http.Request) {
	var req addQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	quests, err := h.service.AddQuest(r.Context(), r.Header.Get(sessionHeader), req.Text)
	if err != nil {
		serveErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questBoard{Quests: quests})
}

func (h *Handler) toggleQuest(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quest index")
		return
	}
	quests, err := h.service.ToggleQuest(r.Context(), r.Header.Get(sessionHeader), index)
	if err != nil {
		serveErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questBoard{Quests: quests})
}

func (h *Handler) deleteQuest(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quest index")
		return
	}
	quests, err := h.service.DeleteQuest(r.Context(), r.Header.Get(sessionHeader), index)
	if err != nil {
		serveErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questBoard{Quests: quests})
}

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

func (h *Handler) iris(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Reply: h.service.IrisReply(req.Message)})
}

func (h *Handler) oracle(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Reply: h.service.AskOracle(r.Context(), req.Message)})
}

type mapRequest struct {
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	ErrorCode *int     `json:"errorCode"`
}

type mapFailureResponse struct {
	Message string `json:"message"`
}

func (h *Handler) mapReport(w http.ResponseWriter, r *http.Request) {
	var req mapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// a browser geolocation failure arrives as an error code instead of coordinates
	if req.ErrorCode != nil {
		writeJSON(w, http.StatusOK, mapFailureResponse{Message: h.service.MapFailure(*req.ErrorCode)})
		return
	}
	if req.Lat == nil || req.Lon == nil {
		writeError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	report, err := h.service.MapReport(r.Context(), domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon})
	if err != nil {
		serveErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) asset(w http.ResponseWriter, r *http.Request) {
	if h.assets == nil {
		writeError(w, http.StatusNotFound, "offline assets not configured")
		return
	}
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	asset, err := h.assets.Fetch(r.Context(), url)
	if err != nil {
		log.Printf("asset fetch %s: %v", url, err)
		writeError(w, http.StatusBadGateway, "asset unavailable")
		return
	}
	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	_, _ = w.Write(asset.Body)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// serveErr maps domain errors to HTTP statuses.
func serveErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrContentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidIndex),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrOutOfSequence),
		errors.Is(err, domain.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
