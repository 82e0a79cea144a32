package http

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Flarenzy/netzone/internal/domain"
)

func (r RegisterExceptionRequest) validate() error {
	if strings.TrimSpace(r.Subnet) == "" {
		return fmt.Errorf("%w: subnet is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(r.CIDR) == "" {
		return fmt.Errorf("%w: cidr is required", domain.ErrInvalidInput)
	}
	return nil
}

// requiredQuery returns the named query parameters, failing on the first
// one that is missing.
func requiredQuery(q url.Values, names ...string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		v := q.Get(name)
		if v == "" {
			return nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
		}
		out = append(out, v)
	}
	return out, nil
}
