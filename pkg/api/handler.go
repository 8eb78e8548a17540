package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kasagi/gomical/pkg/kit"
	"github.com/kasagi/gomical/pkg/locale"
	"github.com/kasagi/gomical/pkg/schedule"
)

// NewRouter returns an http.Handler with all API routes.
func NewRouter(svc *Service) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		search:          searchEndpoint(svc),
		suggest:         suggestEndpoint(svc),
		popular:         popularEndpoint(svc),
		listAreas:       listAreasEndpoint(svc),
		collectionOn:    collectionOnEndpoint(svc),
		collectionToday: collectionTodayEndpoint(svc),
		collectionNext:  collectionNextEndpoint(svc),
		reschedule:      rescheduleEndpoint(svc),
		svc:             svc,
	}

	mux.HandleFunc("GET /v1/search/{query}", h.handleSearch)
	mux.HandleFunc("GET /v1/suggest/{query}", h.handleSuggest)
	mux.HandleFunc("GET /v1/popular", h.handlePopular)
	mux.HandleFunc("GET /v1/areas", h.handleAreas)
	mux.HandleFunc("GET /v1/collection/{area}/today", h.handleCollectionToday)
	mux.HandleFunc("GET /v1/collection/{area}/next", h.handleCollectionNext)
	mux.HandleFunc("GET /v1/collection/{area}/on/{date}", h.handleCollectionOn)
	mux.HandleFunc("GET /v1/notifications/reschedule", methodNotAllowed)
	mux.HandleFunc("POST /v1/notifications/reschedule", h.handleReschedule)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	search          kit.Endpoint
	suggest         kit.Endpoint
	popular         kit.Endpoint
	listAreas       kit.Endpoint
	collectionOn    kit.Endpoint
	collectionToday kit.Endpoint
	collectionNext  kit.Endpoint
	reschedule      kit.Endpoint
	svc             *Service
}

// --- search ---

func (h *handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	resp, err := h.search(r.Context(), &searchReq{
		Query:  r.PathValue("query"),
		Locale: queryLocale(r),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- suggestions ---

func (h *handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	resp, err := h.suggest(r.Context(), &suggestReq{
		Query:  r.PathValue("query"),
		Locale: queryLocale(r),
		Limit:  queryLimit(r, 5),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handlePopular(w http.ResponseWriter, r *http.Request) {
	resp, err := h.popular(r.Context(), &popularReq{
		Locale: queryLocale(r),
		Limit:  queryLimit(r, 10),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- areas ---

func (h *handler) handleAreas(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listAreas(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- collection queries ---

func (h *handler) handleCollectionToday(w http.ResponseWriter, r *http.Request) {
	h.handleCollection(w, r, h.collectionToday, schedule.Date{})
}

func (h *handler) handleCollectionNext(w http.ResponseWriter, r *http.Request) {
	h.handleCollection(w, r, h.collectionNext, schedule.Date{})
}

func (h *handler) handleCollectionOn(w http.ResponseWriter, r *http.Request) {
	d, err := schedule.ParseDate(r.PathValue("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.handleCollection(w, r, h.collectionOn, d)
}

func (h *handler) handleCollection(w http.ResponseWriter, r *http.Request, ep kit.Endpoint, d schedule.Date) {
	resp, err := ep(r.Context(), &collectionReq{
		AreaID: r.PathValue("area"),
		Date:   d,
		Locale: queryLocale(r),
	})
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- notifications ---

type httpRescheduleRequest struct {
	Area   string `json:"area"`
	Locale string `json:"locale,omitempty"`
}

func (h *handler) handleReschedule(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4*1024)
	var req httpRescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Area == "" {
		writeError(w, http.StatusBadRequest, "missing area")
		return
	}

	resp, err := h.reschedule(r.Context(), &rescheduleReq{
		AreaID: req.Area,
		Locale: locale.Parse(req.Locale),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status     string `json:"status"`
	Items      int    `json:"items"`
	Areas      int    `json:"areas"`
	Exceptions int    `json:"exceptions"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	d := h.svc.Data()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Items:      d.Catalog.Len(),
		Areas:      len(d.Areas.All()),
		Exceptions: d.Calendar.Len(),
	})
}

// --- helpers ---

func queryLocale(r *http.Request) locale.Locale {
	return locale.Parse(r.URL.Query().Get("locale"))
}

func queryLimit(r *http.Request, def int) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
