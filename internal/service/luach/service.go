package luach

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/luachapp/luach-api/internal/domain/hebcal"
	"github.com/luachapp/luach-api/internal/domain/siddur"
	"github.com/luachapp/luach-api/internal/domain/zmanim"
)

// Service produces the combined "today" view. It holds no mutable state;
// every query recomputes from its inputs.
type Service struct {
	builder *ContextBuilder
	catalog *siddur.Catalog
	logger  *slog.Logger
}

// NewService creates a Service around the given context builder and catalog.
func NewService(builder *ContextBuilder, catalog *siddur.Catalog, logger *slog.Logger) *Service {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Service")
	}
	return &Service{
		builder: builder,
		catalog: catalog,
		logger:  logger.With(slog.String("component", "luach_service")),
	}
}

// TodayRequest carries the explicit inputs for one today computation.
// No field is read from ambient state.
type TodayRequest struct {
	Date     time.Time
	Location zmanim.Location
	Options  zmanim.Options

	Locale         siddur.Locale
	Nusach         siddur.Nusach
	Mode           siddur.Mode
	ApplicableOnly bool
	HasMinyan      bool
	IsMourner      bool
}

// Today is the assembled dashboard state for one date.
type Today struct {
	Date       time.Time             `json:"date"`
	HebrewDate hebcal.HebrewDate     `json:"hebrew_date"`
	Parasha    string                `json:"parasha"`
	Zmanim     *zmanim.Result        `json:"zmanim,omitempty"`
	Context    *siddur.FilterContext `json:"context"`
	Navigation *siddur.Tree          `json:"navigation"`
}

// Today computes the full dashboard state. A missing location yields a nil
// Zmanim field (the caller renders a configure-location prompt); any other
// invalid location input is an error. Event-source trouble never surfaces
// here, per the context builder's contract.
func (s *Service) Today(ctx context.Context, req TodayRequest) (*Today, error) {
	fc := s.builder.Build(ctx, req.Date, req.Locale, req.HasMinyan, req.IsMourner)

	today := &Today{
		Date:       req.Date,
		HebrewDate: hebcal.FromGregorian(req.Date),
		Parasha:    hebcal.WeekdayParasha(req.Date),
		Context:    fc,
		Navigation: siddur.BuildNavigation(s.catalog, req.Nusach, req.Mode, req.ApplicableOnly, fc),
	}

	result, err := zmanim.Compute(req.Date, req.Location, req.Options)
	switch {
	case err == nil:
		today.Zmanim = &result
	case errors.Is(err, zmanim.ErrNoLocation), errors.Is(err, zmanim.ErrNoTimeZone):
		s.logger.Debug("no location configured, skipping zmanim")
	default:
		return nil, err
	}

	return today, nil
}
