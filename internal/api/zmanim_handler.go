package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/luachapp/luach-api/internal/api/shared"
	"github.com/luachapp/luach-api/internal/domain/zmanim"
)

// ZmanimHandler serves the halachic-times computation.
type ZmanimHandler struct {
	logger     *slog.Logger
	defaults   zmanim.Options
	defaultLoc zmanim.Location
	now        func() time.Time
}

// NewZmanimHandler creates a zmanim handler. The defaults parameterize
// requests that carry no tuning query parameters; defaultLoc, when
// configured, stands in for requests that name no location at all.
func NewZmanimHandler(defaults zmanim.Options, defaultLoc zmanim.Location, logger *slog.Logger) *ZmanimHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ZmanimHandler")
	}
	return &ZmanimHandler{
		logger:     logger.With(slog.String("component", "zmanim_handler")),
		defaults:   defaults,
		defaultLoc: defaultLoc,
		now:        time.Now,
	}
}

// Zmanim handles GET /api/zmanim. A request without coordinates is a 400;
// the server never substitutes a guessed location.
func (h *ZmanimHandler) Zmanim(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.now)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	loc, err := locationParams(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	if loc.Latitude == nil && loc.Longitude == nil && loc.Zone == nil &&
		h.defaultLoc.Latitude != nil {
		// The configured server location stands in only when the request
		// names no location at all; partial input stays an error.
		loc = h.defaultLoc
	}
	if loc.Zone != nil {
		// Anchor the requested civil date in the observer's zone so the
		// computation covers the day the caller named.
		date = time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, loc.Zone)
	}

	opts, err := optionsParams(r)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}
	if r.URL.Query().Get("candle_min") == "" {
		opts.CandleOffset = h.defaults.CandleOffset
	}
	if r.URL.Query().Get("day_bounds") == "" {
		opts.DayBounds = h.defaults.DayBounds
	}

	result, err := zmanim.Compute(date, loc, opts)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewZmanimResponse(date, result))
}
