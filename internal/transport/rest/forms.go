package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/dojo-forms/internal/domain"
	formsvc "github.com/heartmarshall/dojo-forms/internal/service/form"
)

// maxBodyBytes caps request bodies; a form is a few hundred bytes.
const maxBodyBytes = 64 << 10

// formService defines the minimal interface needed by FormHandler.
type formService interface {
	ListForms(ctx context.Context, input formsvc.ListFormsInput) ([]domain.Form, error)
	ListTrash(ctx context.Context) ([]domain.Form, error)
	GetForm(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	FormHistory(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error)
	NewFormPage(ctx context.Context) (*formsvc.NewFormPage, error)
	ChartData(ctx context.Context) (domain.ChartData, error)
	CreateForm(ctx context.Context, input formsvc.CreateFormInput) (*domain.Form, error)
	UpdateForm(ctx context.Context, input formsvc.UpdateFormInput) (*domain.Form, error)
	DeleteForm(ctx context.Context, input formsvc.DeleteFormInput) error
	RestoreForm(ctx context.Context, id uuid.UUID) (*domain.Form, error)
}

// FormHandler serves the /forms REST endpoints.
type FormHandler struct {
	svc          formService
	log          *slog.Logger
	historyLimit int
}

// NewFormHandler creates a FormHandler. historyLimit is both the default and
// the maximum number of audit records returned by the history endpoint.
func NewFormHandler(svc formService, logger *slog.Logger, historyLimit int) *FormHandler {
	return &FormHandler{svc: svc, log: logger.With("handler", "forms"), historyLimit: historyLimit}
}

// Register mounts the form routes on api. Mutating routes are wrapped in
// write, which enforces instructor auth and write rate limits.
// Static segments are registered before {id} so they win the match.
func (h *FormHandler) Register(api *mux.Router, write func(http.Handler) http.Handler) {
	if write == nil {
		write = func(next http.Handler) http.Handler { return next }
	}

	api.HandleFunc("/forms", h.List).Methods(http.MethodGet)
	api.HandleFunc("/forms/new", h.NewPage).Methods(http.MethodGet)
	api.HandleFunc("/forms/trash", h.Trash).Methods(http.MethodGet)
	api.HandleFunc("/forms/chart", h.Chart).Methods(http.MethodGet)
	api.HandleFunc("/forms/{id}", h.Get).Methods(http.MethodGet)
	api.HandleFunc("/forms/{id}/history", h.History).Methods(http.MethodGet)

	api.Handle("/forms", write(http.HandlerFunc(h.Create))).Methods(http.MethodPost)
	api.Handle("/forms/{id}", write(http.HandlerFunc(h.Update))).Methods(http.MethodPut)
	api.Handle("/forms/{id}", write(http.HandlerFunc(h.Delete))).Methods(http.MethodDelete)
	api.Handle("/forms/{id}/restore", write(http.HandlerFunc(h.Restore))).Methods(http.MethodPost)
}

// List handles GET /forms?rankType=&category=&learned=&q=.
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	learned, ok := parseOptionalBool(q.Get("learned"))
	if !ok {
		respondError(w, r, h.log, domain.NewValidationError("learned", "must be true or false"))
		return
	}

	forms, err := h.svc.ListForms(r.Context(), formsvc.ListFormsInput{
		RankType: q.Get("rankType"),
		Category: q.Get("category"),
		Learned:  learned,
		Search:   q.Get("q"),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFormList(forms))
}

// NewPage handles GET /forms/new.
func (h *FormHandler) NewPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.NewFormPage(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNewFormPageResponse(page))
}

// Trash handles GET /forms/trash.
func (h *FormHandler) Trash(w http.ResponseWriter, r *http.Request) {
	forms, err := h.svc.ListTrash(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFormList(forms))
}

// Chart handles GET /forms/chart.
func (h *FormHandler) Chart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.svc.ChartData(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChartResponse(chart))
}

// Get handles GET /forms/{id}.
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	form, err := h.svc.GetForm(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFormResponse(form))
}

// History handles GET /forms/{id}/history?limit=.
func (h *FormHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	limit := h.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, r, h.log, domain.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = min(n, h.historyLimit)
	}

	records, err := h.svc.FormHistory(r.Context(), id, limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuditList(records))
}

// Create handles POST /forms.
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req formRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	form, err := h.svc.CreateForm(r.Context(), req.createInput())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/forms/"+form.ID.String())
	writeJSON(w, http.StatusCreated, toFormResponse(form))
}

// Update handles PUT /forms/{id}.
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	var req formRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	form, err := h.svc.UpdateForm(r.Context(), req.updateInput(id))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFormResponse(form))
}

// Delete handles DELETE /forms/{id}. Permanent removal is requested with
// ?hard=1 or a {"hard": ...} body; otherwise the form moves to the trash.
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	var req deleteRequest
	if !decodeBody(w, r, &req, true) {
		return
	}
	hard := parseFlag(r.URL.Query().Get("hard")) || bool(req.Hard)

	if err := h.svc.DeleteForm(r.Context(), formsvc.DeleteFormInput{ID: id, Hard: hard}); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /forms/{id}/restore.
func (h *FormHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	form, err := h.svc.RestoreForm(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFormResponse(form))
}

// formID parses the {id} path segment. A malformed id can never name a
// form, so it is reported as not found rather than as a bad request.
func formID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil || id == uuid.Nil {
		writeError(w, http.StatusNotFound, domain.KindNotFound, msgNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody reads a JSON body into v. With optional set an empty body is
// accepted and leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, domain.KindValidation, msgBadBody)
		return false
	}
	return true
}
