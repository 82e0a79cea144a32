package metrics

import (
	"context"
	"errors"

	"github.com/Flarenzy/netzone/internal/domain"
)

type instrumentedZoneService struct {
	domain.ZoneService
	metrics *Metrics
}

// InstrumentZoneService counts ResolveZone outcomes; every other method is
// passed through.
func InstrumentZoneService(m *Metrics, next domain.ZoneService) domain.ZoneService {
	if m == nil || next == nil {
		return next
	}
	return &instrumentedZoneService{ZoneService: next, metrics: m}
}

func (s *instrumentedZoneService) ResolveZone(ctx context.Context, ip string) (domain.ZoneResult, error) {
	result, err := s.ZoneService.ResolveZone(ctx, ip)
	s.metrics.LookupsTotal.WithLabelValues(lookupOutcome(result, err)).Inc()
	return result, err
}

func lookupOutcome(result domain.ZoneResult, err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domain.ErrViewUnavailable):
		return "unavailable"
	case err != nil:
		return "error"
	case result.Matched():
		return "matched"
	default:
		return "unknown"
	}
}
