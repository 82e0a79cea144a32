package domain

import "context"

type ZoneService interface {
	ResolveZone(ctx context.Context, ip string) (ZoneResult, error)
	IsContained(ctx context.Context, input ContainsInput) (bool, error)
	ListAll(ctx context.Context) ([]SubnetRecord, error)
	Lookup(ctx context.Context, subnet string) (SubnetRecord, error)
	RegisterException(ctx context.Context, input RegisterExceptionInput) (Exception, error)
}

// Matcher finds the most specific record in candidates whose subnet owns ip.
// ip must already be validated.
type Matcher interface {
	Match(ip string, candidates Table) (SubnetRecord, bool)
}
