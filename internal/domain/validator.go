package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultIPPattern accepts a dotted quad with every octet in 0-255.
const DefaultIPPattern = `^((25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`

// IPValidator sanitizes raw input and checks it against the configured
// dotted-quad pattern.
type IPValidator struct {
	pattern *regexp.Regexp
}

func NewIPValidator(pattern string) (*IPValidator, error) {
	if pattern == "" {
		pattern = DefaultIPPattern
	}
	// The whole candidate must match, not a substring of it.
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compile ip pattern: %w", err)
	}
	return &IPValidator{pattern: re}, nil
}

// Normalize keeps only digits and dots. Input without exactly three dots
// yields "".
func Normalize(raw string) string {
	if strings.Count(raw, ".") != 3 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if c == '.' || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Validate normalizes raw and then requires the pattern to match the
// normalized form.
func (v *IPValidator) Validate(raw string) (string, error) {
	ip := Normalize(raw)
	if ip == "" {
		return "", fmt.Errorf("%w: empty ip", ErrInvalidInput)
	}
	if !v.pattern.MatchString(ip) {
		return "", fmt.Errorf("%w: invalid ip", ErrInvalidInput)
	}
	return ip, nil
}

// Matches applies only the pattern, without sanitizing.
func (v *IPValidator) Matches(raw string) bool {
	return v.pattern.MatchString(raw)
}
