package http

import (
	"time"

	"github.com/Flarenzy/netzone/internal/domain"
)

// ZoneResultResponse is the zone owning a looked up address. Every field
// except ip is UNKNOWN when no subnet owns it.
type ZoneResultResponse struct {
	IP      string `json:"ip" example:"10.1.2.3"`
	Subnet  string `json:"subnet" example:"10.1.0.0"`
	CIDR    string `json:"cidr" example:"16"`
	Service string `json:"service" example:"billing"`
	OldZone string `json:"old_zone" example:"BLUE"`
	NewZone string `json:"new_zone" example:"GREEN"`
}

// ContainsResponse reports whether ip falls inside subnet/cidr.
type ContainsResponse struct {
	IP        string `json:"ip" example:"192.168.5.10"`
	Subnet    string `json:"subnet" example:"192.168.5.0"`
	CIDR      string `json:"cidr" example:"24"`
	Contained bool   `json:"contained" example:"true"`
}

// SubnetResponse is one record of the merged zone table.
type SubnetResponse struct {
	Subnet  string `json:"subnet" example:"10.1.0.0"`
	CIDR    string `json:"cidr" example:"16"`
	Service string `json:"service" example:"billing"`
	OldZone string `json:"old_zone" example:"BLUE"`
	NewZone string `json:"new_zone" example:"GREEN"`
}

// RegisterExceptionRequest is the payload accepted when adding an exception.
type RegisterExceptionRequest struct {
	Subnet  string `json:"subnet" example:"10.1.2.0" validate:"required"`
	CIDR    string `json:"cidr" example:"24" validate:"required"`
	OldZone string `json:"old_zone" example:"BLUE"`
	NewZone string `json:"new_zone" example:"RED"`
}

// ExceptionResponse is a stored exception.
type ExceptionResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Subnet    string    `json:"subnet" example:"10.1.2.0"`
	CIDR      string    `json:"cidr" example:"24"`
	Service   string    `json:"service" example:"EXCEPTION"`
	OldZone   string    `json:"old_zone" example:"BLUE"`
	NewZone   string    `json:"new_zone" example:"RED"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"subnet not found"`
}

func zoneResultToResponse(r domain.ZoneResult) ZoneResultResponse {
	return ZoneResultResponse{
		IP:      r.IP,
		Subnet:  r.Subnet,
		CIDR:    r.CIDR,
		Service: r.Service,
		OldZone: r.OldZone,
		NewZone: r.NewZone,
	}
}

func subnetToResponse(rec domain.SubnetRecord) SubnetResponse {
	return SubnetResponse{
		Subnet:  rec.Subnet,
		CIDR:    rec.CIDR,
		Service: rec.Service,
		OldZone: rec.OldZone,
		NewZone: rec.NewZone,
	}
}

func subnetsToResponse(records []domain.SubnetRecord) []SubnetResponse {
	out := make([]SubnetResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, subnetToResponse(rec))
	}
	return out
}

func exceptionToResponse(e domain.Exception) ExceptionResponse {
	return ExceptionResponse{
		ID:        string(e.ID),
		Subnet:    e.Record.Subnet,
		CIDR:      e.Record.CIDR,
		Service:   e.Record.Service,
		OldZone:   e.Record.OldZone,
		NewZone:   e.Record.NewZone,
		CreatedAt: e.CreatedAt,
	}
}

func (r RegisterExceptionRequest) toInput() domain.RegisterExceptionInput {
	return domain.RegisterExceptionInput{
		Subnet:  r.Subnet,
		CIDR:    r.CIDR,
		OldZone: r.OldZone,
		NewZone: r.NewZone,
	}
}

func containsInput(params []string) domain.ContainsInput {
	return domain.ContainsInput{IP: params[0], Subnet: params[1], CIDR: params[2]}
}
