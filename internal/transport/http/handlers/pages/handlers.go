package pageshandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hris/internal/dashboard"
	"hris/internal/render"
	"hris/internal/requestctx"
	"hris/internal/table"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

// Observer is told about table emissions and session lifecycle.
type Observer interface {
	PageEmitted(slug string)
	SessionMounted()
	SessionsClosed(n int, expired bool)
}

type Handler struct {
	Registry    *dashboard.Registry
	Loader      dashboard.Loader
	Sessions    *dashboard.Sessions
	Observer    Observer
	Breakpoint  int
	LoadTimeout time.Duration
}

func NewHandler(registry *dashboard.Registry, loader dashboard.Loader, sessions *dashboard.Sessions, observer Observer, breakpoint int, loadTimeout time.Duration) *Handler {
	return &Handler{
		Registry:    registry,
		Loader:      loader,
		Sessions:    sessions,
		Observer:    observer,
		Breakpoint:  breakpoint,
		LoadTimeout: loadTimeout,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/pages", h.handleListPages)
	r.Get("/pages/{slug}", h.handleViewPage)
	r.Post("/pages/{slug}/sessions", h.handleCreateSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", h.handleGetSession)
		r.Patch("/", h.handleUpdateSession)
		r.Delete("/", h.handleDeleteSession)
		r.Post("/rows/{rowKey}/{field}", h.handleEditRow)
	})
}

type sessionResponse struct {
	ID       string             `json:"id"`
	Snapshot dashboard.Snapshot `json:"snapshot"`
}

type editPayload struct {
	Value string `json:"value"`
}

func (h *Handler) handleListPages(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Registry.Summaries(), middleware.GetRequestID(r.Context()))
}

// handleViewPage mounts a throwaway screen, applies the query as one
// command and returns the resulting view.
func (h *Handler) handleViewPage(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	def, err := h.Registry.Get(chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	requestctx.Annotate(r.Context(), "page", def.Slug)

	v := shared.NewValidator()
	viewport := shared.ParseViewport(r, v)
	cmd := commandFromQuery(r.URL.Query(), def, v)
	if v.Reject(w, requestID) {
		return
	}

	screen := h.mount(def)
	defer screen.Close()
	if err := h.start(r.Context(), screen); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := screen.Apply(r.Context(), cmd); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, screen, viewport, http.StatusOK, "")
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	def, err := h.Registry.Get(chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v := shared.NewValidator()
	viewport := shared.ParseViewport(r, v)
	wait := r.URL.Query().Get("wait") != "false"
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	screen := h.mount(def)
	if wait {
		if err := h.start(r.Context(), screen); err != nil {
			screen.Close()
			h.fail(w, r, err)
			return
		}
	} else {
		screen.Start(context.WithoutCancel(r.Context()))
	}
	id := h.Sessions.Add(screen)
	if h.Observer != nil {
		h.Observer.SessionMounted()
	}
	requestctx.Annotate(r.Context(), "page", def.Slug)
	requestctx.Annotate(r.Context(), "session", id)
	slog.Debug("session mounted", "page", def.Slug, "session", id)
	h.respond(w, r, screen, viewport, http.StatusCreated, id)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, screen, ok := h.session(w, r)
	if !ok {
		return
	}
	v := shared.NewValidator()
	viewport := shared.ParseViewport(r, v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	h.respond(w, r, screen, viewport, http.StatusOK, id)
}

func (h *Handler) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	id, screen, ok := h.session(w, r)
	if !ok {
		return
	}
	requestID := middleware.GetRequestID(r.Context())
	var cmd dashboard.Command
	if err := shared.DecodeJSON(r, &cmd); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	viewport := shared.ParseViewport(r, v)
	if cmd.Page < 0 {
		v.Add("page", "must be a positive page number")
	}
	if v.Reject(w, requestID) {
		return
	}
	// Reloads outlive the request that asked for them.
	if err := screen.Apply(context.WithoutCancel(r.Context()), cmd); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, screen, viewport, http.StatusOK, id)
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	requestctx.Annotate(r.Context(), "session", id)
	if err := h.Sessions.Remove(id); err != nil {
		h.fail(w, r, err)
		return
	}
	if h.Observer != nil {
		h.Observer.SessionsClosed(1, false)
	}
	api.Success(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEditRow(w http.ResponseWriter, r *http.Request) {
	id, screen, ok := h.session(w, r)
	if !ok {
		return
	}
	requestID := middleware.GetRequestID(r.Context())
	rowKey, err := url.PathUnescape(chi.URLParam(r, "rowKey"))
	if err != nil {
		rowKey = chi.URLParam(r, "rowKey")
	}
	field := chi.URLParam(r, "field")

	var payload editPayload
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	viewport := shared.ParseViewport(r, v)
	v.Required("rowKey", rowKey, "is required")
	if v.Reject(w, requestID) {
		return
	}

	if err := screen.Edit(rowKey, field, payload.Value); err != nil {
		if isEditRejection(err) {
			api.Fail(w, http.StatusUnprocessableEntity, "edit_rejected", err.Error(), requestID)
			return
		}
		h.fail(w, r, err)
		return
	}
	requestctx.Annotate(r.Context(), "edit", field)
	h.respond(w, r, screen, viewport, http.StatusOK, id)
}

func (h *Handler) mount(def *dashboard.Definition) *dashboard.Screen {
	opts := dashboard.MountOptions{}
	if h.Observer != nil {
		opts.OnEmit = h.Observer.PageEmitted
	}
	return dashboard.Mount(def, h.Loader, opts)
}

// start loads the screen and waits for the data, bounded by LoadTimeout.
func (h *Handler) start(ctx context.Context, screen *dashboard.Screen) error {
	screen.Start(context.WithoutCancel(ctx))
	if h.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.LoadTimeout)
		defer cancel()
	}
	return screen.Wait(ctx)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, *dashboard.Screen, bool) {
	id := chi.URLParam(r, "sessionID")
	requestctx.Annotate(r.Context(), "session", id)
	screen, err := h.Sessions.Get(id)
	if err != nil {
		h.fail(w, r, err)
		return "", nil, false
	}
	requestctx.Annotate(r.Context(), "page", screen.Definition().Slug)
	return id, screen, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, screen *dashboard.Screen, viewport shared.Viewport, status int, id string) {
	requestID := middleware.GetRequestID(r.Context())
	snap := screen.Snapshot(viewport.Width, h.Breakpoint)
	if viewport.Format == shared.FormatText {
		renderer := render.New(viewport.Width)
		tables := snap.Tables()
		parts := make([]string, 0, len(tables))
		for _, t := range tables {
			parts = append(parts, renderer.Render(t.View))
		}
		api.WriteText(w, status, strings.Join(parts, "\n"), requestID)
		return
	}
	if id == "" {
		api.WriteJSON(w, status, api.Envelope{Success: true, Data: snap, RequestID: requestID})
		return
	}
	api.WriteJSON(w, status, api.Envelope{Success: true, Data: sessionResponse{ID: id, Snapshot: snap}, RequestID: requestID})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	if field := commandField(err); field != "" {
		shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: field, Reason: err.Error()}})
		return
	}
	switch {
	case errors.Is(err, dashboard.ErrPageNotFound):
		api.Fail(w, http.StatusNotFound, "page_not_found", "page not found", requestID)
	case errors.Is(err, dashboard.ErrSessionNotFound):
		api.Fail(w, http.StatusNotFound, "session_not_found", "session not found", requestID)
	case errors.Is(err, dashboard.ErrRowNotFound):
		api.Fail(w, http.StatusNotFound, "row_not_found", "row not found", requestID)
	case errors.Is(err, dashboard.ErrUnknownEdit):
		api.Fail(w, http.StatusNotFound, "edit_not_found", "this page has no such row edit", requestID)
	case errors.Is(err, dashboard.ErrStillLoading):
		api.Fail(w, http.StatusConflict, "still_loading", "page data is still loading", requestID)
	case errors.Is(err, context.DeadlineExceeded):
		api.Fail(w, http.StatusGatewayTimeout, "load_timeout", "page data did not load in time", requestID)
	case errors.Is(err, context.Canceled):
		api.Fail(w, http.StatusServiceUnavailable, "request_canceled", "request canceled", requestID)
	default:
		slog.Error("page request failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal error", requestID)
	}
}

func commandField(err error) string {
	switch {
	case errors.Is(err, dashboard.ErrUnknownFilter), errors.Is(err, dashboard.ErrInvalidFilterValue):
		return "filters"
	case errors.Is(err, table.ErrInvalidPageSize):
		return "perPage"
	case errors.Is(err, table.ErrPageOutOfRange):
		return "page"
	case errors.Is(err, dashboard.ErrUnknownAction):
		return "action"
	case errors.Is(err, dashboard.ErrUnknownPanel):
		return "panel"
	}
	return ""
}

// isEditRejection reports errors raised by a page edit itself, as opposed
// to lookup or state errors of the screen.
func isEditRejection(err error) bool {
	for _, known := range []error{
		dashboard.ErrRowNotFound,
		dashboard.ErrUnknownEdit,
		dashboard.ErrStillLoading,
	} {
		if errors.Is(err, known) {
			return false
		}
	}
	return true
}

func commandFromQuery(query url.Values, def *dashboard.Definition, v *shared.Validator) dashboard.Command {
	cmd := dashboard.Command{
		Panel:   strings.TrimSpace(query.Get("panel")),
		PerPage: strings.TrimSpace(query.Get("perPage")),
		Page:    v.Int("page", query.Get("page"), 1, 0),
	}
	if query.Has("search") {
		search := query.Get("search")
		cmd.Search = &search
	}
	target, err := def.Table(cmd.Panel)
	if err != nil {
		v.Add("panel", "is not a table of this page")
		return cmd
	}
	for _, f := range target.Filters {
		if query.Has(f.Name) {
			if cmd.Filters == nil {
				cmd.Filters = map[string]string{}
			}
			cmd.Filters[f.Name] = query.Get(f.Name)
		}
	}
	return cmd
}
