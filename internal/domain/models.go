package domain

import "time"

// Unknown fills every field of a ZoneResult that has no owning subnet.
const Unknown = "UNKNOWN"

// ExceptionService is the service tag stored on every exception record.
const ExceptionService = "EXCEPTION"

// Category is a zone colour under which base subnet records are stored.
type Category string

const (
	CategoryBlue        Category = "BLUE"
	CategoryRed         Category = "RED"
	CategoryGreen       Category = "GREEN"
	CategoryBlack       Category = "BLACK"
	CategoryWhite       Category = "WHITE"
	CategoryUnspecified Category = "N/A"
)

// Categories lists every category the base view loads, in fetch order.
func Categories() []Category {
	return []Category{
		CategoryBlue,
		CategoryRed,
		CategoryGreen,
		CategoryBlack,
		CategoryWhite,
		CategoryUnspecified,
	}
}

// SubnetRecord is the zone metadata owned by one subnet key. CIDR is kept
// textual the way it is stored.
type SubnetRecord struct {
	Subnet  string
	CIDR    string
	Service string
	OldZone string
	NewZone string
}

// Table maps a subnet key to its record. A Table handed out by a view is
// shared between readers and must not be modified.
type Table map[string]SubnetRecord

// NewTable keys records by subnet; a later duplicate replaces an earlier one.
func NewTable(records []SubnetRecord) Table {
	t := make(Table, len(records))
	for _, r := range records {
		t[r.Subnet] = r
	}
	return t
}

type ExceptionID string

type Exception struct {
	ID        ExceptionID
	Record    SubnetRecord
	CreatedAt time.Time
}

// ZoneResult is the answer to a zone lookup for IP.
type ZoneResult struct {
	IP      string
	Subnet  string
	CIDR    string
	Service string
	OldZone string
	NewZone string
}

// Matched reports whether the lookup found an owning subnet.
func (r ZoneResult) Matched() bool {
	return r.Subnet != Unknown
}

func resultFor(ip string, rec SubnetRecord) ZoneResult {
	return ZoneResult{
		IP:      ip,
		Subnet:  rec.Subnet,
		CIDR:    rec.CIDR,
		Service: rec.Service,
		OldZone: rec.OldZone,
		NewZone: rec.NewZone,
	}
}

func unknownResult(ip string) ZoneResult {
	return ZoneResult{
		IP:      ip,
		Subnet:  Unknown,
		CIDR:    Unknown,
		Service: Unknown,
		OldZone: Unknown,
		NewZone: Unknown,
	}
}
