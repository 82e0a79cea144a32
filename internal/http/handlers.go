package http

import (
	"net/http"

	"github.com/Flarenzy/netzone/internal/auth"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.Health.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "db ping failed", "err", err.Error())
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Resolve the zone of an IPv4 address
// @Tags zones
// @Produce json
// @Param ip query string true "IPv4 address"
// @Success 200 {object} ZoneResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/zones/lookup [get]
func (a *API) handleLookupZone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params, err := requiredQuery(r.URL.Query(), "ip")
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	result, err := a.Service.ResolveZone(ctx, params[0])
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := encode(w, r, http.StatusOK, zoneResultToResponse(result)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client with zone", "err", err.Error())
	}
}

// @Summary Check whether an address lies in a subnet
// @Tags zones
// @Produce json
// @Param ip query string true "IPv4 address"
// @Param subnet query string true "Subnet address"
// @Param cidr query string true "Prefix length"
// @Success 200 {object} ContainsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/zones/contains [get]
func (a *API) handleContains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params, err := requiredQuery(r.URL.Query(), "ip", "subnet", "cidr")
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	contained, err := a.Service.IsContained(ctx, containsInput(params))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	resp := ContainsResponse{IP: params[0], Subnet: params[1], CIDR: params[2], Contained: contained}
	if err := encode(w, r, http.StatusOK, resp); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary List every subnet of the merged zone table
// @Tags subnets
// @Produce json
// @Success 200 {array} SubnetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/subnets [get]
func (a *API) handleListSubnets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	records, err := a.Service.ListAll(ctx)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := encode(w, r, http.StatusOK, subnetsToResponse(records)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client with subnet list", "err", err.Error())
	}
}

// @Summary Get one subnet record
// @Tags subnets
// @Produce json
// @Param subnet path string true "Subnet key"
// @Success 200 {object} SubnetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/subnets/{subnet} [get]
func (a *API) handleGetSubnet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rec, err := a.Service.Lookup(ctx, r.PathValue("subnet"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := encode(w, r, http.StatusOK, subnetToResponse(rec)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Register a zone exception
// @Description The exception is visible to lookups after the next exception refresh.
// @Tags exceptions
// @Accept json
// @Produce json
// @Param exception body RegisterExceptionRequest true "Exception payload"
// @Success 201 {object} ExceptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/exceptions [post]
func (a *API) handleRegisterException(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[RegisterExceptionRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling exception from request", "err", err.Error())
		if encErr := encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"}); encErr != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", encErr.Error())
		}
		return
	}
	if err := req.validate(); err != nil {
		a.writeError(w, r, err)
		return
	}

	exc, err := a.Service.RegisterException(ctx, req.toInput())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.Logger.InfoContext(ctx, "exception submitted", "id", string(exc.ID), "by", auth.SubjectFromContext(ctx))
	if err := encode(w, r, http.StatusCreated, exceptionToResponse(exc)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}
