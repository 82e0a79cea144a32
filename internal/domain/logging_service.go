package domain

import (
	"context"
	"log/slog"
)

type loggingZoneService struct {
	logger *slog.Logger
	next   ZoneService
}

func NewLoggingZoneService(logger *slog.Logger, next ZoneService) ZoneService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingZoneService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingZoneService) ResolveZone(ctx context.Context, ip string) (ZoneResult, error) {
	result, err := s.next.ResolveZone(ctx, ip)
	if err != nil {
		s.logger.ErrorContext(ctx, "resolve zone failed", "ip", ip, "err", err.Error())
		return result, err
	}

	if result.Matched() {
		s.logger.DebugContext(ctx, "zone resolved", "ip", result.IP, "subnet", result.Subnet, "cidr", result.CIDR)
	} else {
		s.logger.DebugContext(ctx, "no matching subnet", "ip", result.IP)
	}
	return result, nil
}

func (s *loggingZoneService) IsContained(ctx context.Context, input ContainsInput) (bool, error) {
	contained, err := s.next.IsContained(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "containment check failed", "ip", input.IP, "subnet", input.Subnet, "cidr", input.CIDR, "err", err.Error())
	}
	return contained, err
}

func (s *loggingZoneService) ListAll(ctx context.Context) ([]SubnetRecord, error) {
	records, err := s.next.ListAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list subnets failed", "err", err.Error())
	}
	return records, err
}

func (s *loggingZoneService) Lookup(ctx context.Context, subnet string) (SubnetRecord, error) {
	rec, err := s.next.Lookup(ctx, subnet)
	if err != nil {
		s.logger.ErrorContext(ctx, "lookup subnet failed", "subnet", subnet, "err", err.Error())
	}
	return rec, err
}

func (s *loggingZoneService) RegisterException(ctx context.Context, input RegisterExceptionInput) (Exception, error) {
	exc, err := s.next.RegisterException(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "register exception failed", "subnet", input.Subnet, "cidr", input.CIDR, "err", err.Error())
		return Exception{}, err
	}

	s.logger.InfoContext(ctx, "exception registered",
		"id", string(exc.ID),
		"subnet", exc.Record.Subnet,
		"cidr", exc.Record.CIDR,
		"old_zone", exc.Record.OldZone,
		"new_zone", exc.Record.NewZone,
	)
	return exc, nil
}
