package domain

import "context"

// ZoneStore is the authoritative store behind the zone views.
type ZoneStore interface {
	FetchSubnetsByCategory(ctx context.Context, category Category) ([]SubnetRecord, error)
	FetchExceptions(ctx context.Context) ([]SubnetRecord, error)
	InsertException(ctx context.Context, record SubnetRecord) (Exception, error)
}
