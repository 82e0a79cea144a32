package domain

import (
	"context"
	"fmt"
	"sort"
	"strconv"
)

var errInvalidCIDR = fmt.Errorf("%w: cidr must be an integer between 0 and 32", ErrInvalidInput)

type zoneService struct {
	views     *Views
	store     ZoneStore
	matcher   Matcher
	validator *IPValidator
}

func NewZoneService(views *Views, store ZoneStore, matcher Matcher, validator *IPValidator) ZoneService {
	return &zoneService{
		views:     views,
		store:     store,
		matcher:   matcher,
		validator: validator,
	}
}

func (s *zoneService) ResolveZone(ctx context.Context, raw string) (ZoneResult, error) {
	ip, err := s.validator.Validate(raw)
	if err != nil {
		return ZoneResult{}, err
	}

	table, err := s.views.Aggregate(ctx)
	if err != nil {
		return ZoneResult{}, err
	}

	if rec, ok := table[ip]; ok {
		rec.Subnet = ip
		return resultFor(ip, rec), nil
	}
	if rec, ok := s.matcher.Match(ip, table); ok {
		return resultFor(ip, rec), nil
	}
	return unknownResult(ip), nil
}

func (s *zoneService) IsContained(_ context.Context, input ContainsInput) (bool, error) {
	if !s.validator.Matches(input.IP) {
		return false, fmt.Errorf("%w: invalid ip", ErrInvalidInput)
	}
	if !s.validator.Matches(input.Subnet) {
		return false, fmt.Errorf("%w: invalid subnet", ErrInvalidInput)
	}
	if !validCIDR(input.CIDR) {
		return false, errInvalidCIDR
	}
	if input.IP == input.Subnet {
		return true, nil
	}

	candidate := Table{
		input.Subnet: {
			Subnet:  input.Subnet,
			CIDR:    input.CIDR,
			Service: "SERVICE",
			OldZone: "OLD ZONE",
			NewZone: "NEW ZONE",
		},
	}
	_, ok := s.matcher.Match(input.IP, candidate)
	return ok, nil
}

func (s *zoneService) ListAll(ctx context.Context) ([]SubnetRecord, error) {
	table, err := s.views.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SubnetRecord, 0, len(table))
	for _, rec := range table {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subnet < out[j].Subnet })
	return out, nil
}

func (s *zoneService) Lookup(ctx context.Context, subnet string) (SubnetRecord, error) {
	table, err := s.views.Aggregate(ctx)
	if err != nil {
		return SubnetRecord{}, err
	}
	rec, ok := table[subnet]
	if !ok {
		return SubnetRecord{}, ErrNotFound
	}
	return rec, nil
}

// RegisterException stores a new exception. The views are not touched; the
// exception becomes visible once the exception view next refreshes.
func (s *zoneService) RegisterException(ctx context.Context, input RegisterExceptionInput) (Exception, error) {
	if !s.validator.Matches(input.Subnet) {
		return Exception{}, fmt.Errorf("%w: invalid subnet", ErrInvalidInput)
	}
	if !validCIDR(input.CIDR) {
		return Exception{}, errInvalidCIDR
	}

	exc, err := s.store.InsertException(ctx, SubnetRecord{
		Subnet:  input.Subnet,
		CIDR:    input.CIDR,
		Service: ExceptionService,
		OldZone: input.OldZone,
		NewZone: input.NewZone,
	})
	if err != nil {
		return Exception{}, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return exc, nil
}

func validCIDR(s string) bool {
	cidr, err := strconv.Atoi(s)
	return err == nil && cidr >= 0 && cidr <= 32
}
