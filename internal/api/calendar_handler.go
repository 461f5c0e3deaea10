package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/luachapp/luach-api/internal/api/shared"
	"github.com/luachapp/luach-api/internal/domain/hebcal"
)

// CalendarHandler serves the Hebrew-date and parasha conversions. Both are
// pure functions of the requested date.
type CalendarHandler struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewCalendarHandler creates a calendar handler.
func NewCalendarHandler(logger *slog.Logger) *CalendarHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CalendarHandler")
	}
	return &CalendarHandler{
		logger: logger.With(slog.String("component", "calendar_handler")),
		now:    time.Now,
	}
}

// HebrewDate handles GET /api/calendar/hebrew-date.
func (h *CalendarHandler) HebrewDate(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.now)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HebrewDateResponse{
		Date:   date.Format("2006-01-02"),
		Hebrew: hebcal.FromGregorian(date),
	})
}

// Parasha handles GET /api/calendar/parasha.
func (h *CalendarHandler) Parasha(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.now)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ParashaResponse{
		Date:    date.Format("2006-01-02"),
		Parasha: hebcal.WeekdayParasha(date),
	})
}
