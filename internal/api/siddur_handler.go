package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/luachapp/luach-api/internal/api/shared"
	"github.com/luachapp/luach-api/internal/domain/siddur"
	"github.com/luachapp/luach-api/internal/service/luach"
)

// SiddurHandler serves the evaluated day context and the navigation tree.
type SiddurHandler struct {
	builder *luach.ContextBuilder
	catalog *siddur.Catalog
	logger  *slog.Logger
	now     func() time.Time
}

// NewSiddurHandler creates a siddur handler around the shared context
// builder and the loaded catalog.
func NewSiddurHandler(
	builder *luach.ContextBuilder,
	catalog *siddur.Catalog,
	logger *slog.Logger,
) *SiddurHandler {
	if builder == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("builder cannot be nil for SiddurHandler")
	}
	if catalog == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalog cannot be nil for SiddurHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SiddurHandler")
	}
	return &SiddurHandler{
		builder: builder,
		catalog: catalog,
		logger:  logger.With(slog.String("component", "siddur_handler")),
		now:     time.Now,
	}
}

// Context handles GET /api/siddur/context.
func (h *SiddurHandler) Context(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.now)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	locale, err := localeParam(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	fc := h.builder.Build(r.Context(), date, locale,
		boolParam(r, "minyan"), boolParam(r, "mourner"))

	shared.RespondWithJSON(w, r, http.StatusOK, fc)
}

// Navigation handles GET /api/siddur/navigation.
func (h *SiddurHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.now)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	locale, err := localeParam(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	nusach, err := nusachParam(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	mode, err := modeParam(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	fc := h.builder.Build(r.Context(), date, locale,
		boolParam(r, "minyan"), boolParam(r, "mourner"))
	tree := siddur.BuildNavigation(h.catalog, nusach, mode,
		boolParam(r, "applicable_only"), fc)

	shared.RespondWithJSON(w, r, http.StatusOK, tree)
}
