package auth

import "context"

type principalContextKey struct{}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok
}

// SubjectFromContext returns the authenticated subject, or "anonymous" when
// the request carried no principal.
func SubjectFromContext(ctx context.Context) string {
	if principal, ok := PrincipalFromContext(ctx); ok && principal.Subject != "" {
		return principal.Subject
	}
	return "anonymous"
}
