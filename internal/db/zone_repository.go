package db

import (
	"context"
	"fmt"

	"github.com/Flarenzy/netzone/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectByOldZone = `SELECT subnet, cidr, service, old_zone, new_zone
		FROM zone_mapping WHERE old_zone = $1 ORDER BY subnet`
	selectByService = `SELECT subnet, cidr, service, old_zone, new_zone
		FROM exception_ips WHERE service = $1 ORDER BY created_at, id`
	insertException = `INSERT INTO exception_ips (id, subnet, cidr, service, old_zone, new_zone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`
)

// ZoneRepository reads zone mappings and exceptions from PostgreSQL.
type ZoneRepository struct {
	pool *pgxpool.Pool
}

func NewZoneRepository(pool *pgxpool.Pool) *ZoneRepository {
	return &ZoneRepository{pool: pool}
}

func (r *ZoneRepository) FetchSubnetsByCategory(ctx context.Context, category domain.Category) ([]domain.SubnetRecord, error) {
	return r.queryRecords(ctx, selectByOldZone, string(category))
}

// FetchExceptions returns exceptions in insertion order so that a later
// exception for the same subnet replaces an earlier one.
func (r *ZoneRepository) FetchExceptions(ctx context.Context) ([]domain.SubnetRecord, error) {
	return r.queryRecords(ctx, selectByService, domain.ExceptionService)
}

func (r *ZoneRepository) InsertException(ctx context.Context, record domain.SubnetRecord) (domain.Exception, error) {
	id := uuid.New()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Exception{}, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var createdAt pgtype.Timestamptz
	err = tx.QueryRow(ctx, insertException,
		toPgUUID(id),
		record.Subnet,
		record.CIDR,
		record.Service,
		record.OldZone,
		record.NewZone,
	).Scan(&createdAt)
	if err != nil {
		return domain.Exception{}, fmt.Errorf("insert exception: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Exception{}, fmt.Errorf("commit: %w", err)
	}

	return domain.Exception{
		ID:        domain.ExceptionID(id.String()),
		Record:    record,
		CreatedAt: createdAt.Time,
	}, nil
}

// Ping reports whether the database is reachable.
func (r *ZoneRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *ZoneRepository) queryRecords(ctx context.Context, query string, arg string) ([]domain.SubnetRecord, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SubnetRecord, error) {
		var rec domain.SubnetRecord
		err := row.Scan(&rec.Subnet, &rec.CIDR, &rec.Service, &rec.OldZone, &rec.NewZone)
		return rec, err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func toPgUUID(id uuid.UUID) pgtype.UUID {
	var out pgtype.UUID
	copy(out.Bytes[:], id[:])
	out.Valid = true
	return out
}
