// Package match finds the subnet record that owns an IPv4 address.
package match

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Flarenzy/netzone/internal/domain"
)

// Textual is the dotted-string longest-prefix matcher zone data has always
// been resolved with. Candidates are narrowed by literal string prefix, then
// only the octet holding the CIDR boundary is compared bitwise. It is looser
// than true CIDR containment and must stay that way: stored subnets are keyed
// for this behaviour.
type Textual struct{}

func NewTextual() Textual {
	return Textual{}
}

// Match tries three, two and then one leading segments of ip.
func (Textual) Match(ip string, candidates domain.Table) (domain.SubnetRecord, bool) {
	for segments := 3; segments >= 1; segments-- {
		if rec, ok := MatchAt(ip, candidates, segments); ok {
			return rec, true
		}
	}
	return domain.SubnetRecord{}, false
}

// MatchAt considers the candidates whose key starts with the first segments
// of ip and returns the matching one with the largest CIDR. Among equal CIDRs
// the smallest key wins.
func MatchAt(ip string, candidates domain.Table, segments int) (domain.SubnetRecord, bool) {
	prefix := leadingSegments(ip, segments)

	keys := make([]string, 0)
	for subnet := range candidates {
		if strings.HasPrefix(subnet, prefix) {
			keys = append(keys, subnet)
		}
	}
	sort.Strings(keys)

	var (
		best     domain.SubnetRecord
		bestCIDR = -1
	)
	for _, subnet := range keys {
		rec := candidates[subnet]
		cidr, err := strconv.Atoi(rec.CIDR)
		if err != nil || cidr < 0 || cidr > 32 {
			continue
		}
		if !boundaryOctetMatches(ip, subnet, cidr) {
			continue
		}
		if cidr > bestCIDR {
			best = rec
			best.Subnet = subnet
			best.CIDR = strconv.Itoa(cidr)
			bestCIDR = cidr
		}
	}
	return best, bestCIDR >= 0
}

// boundaryOctetMatches checks the octet the CIDR boundary falls in. The
// octets before it must be textually identical; within it the leading
// cidr%8 bits of the ip octet (all eight on a byte boundary) must equal the
// subnet octet.
func boundaryOctetMatches(ip, subnet string, cidr int) bool {
	octet := boundaryOctet(cidr)
	if leadingSegments(ip, octet) != leadingSegments(subnet, octet) {
		return false
	}

	ipOctet, ok := segmentValue(ip, octet)
	if !ok {
		return false
	}
	subnetOctet, ok := segmentValue(subnet, octet)
	if !ok {
		return false
	}

	bits := cidr % 8
	if bits == 0 {
		bits = 8
	}
	mask := (0xff << (8 - bits)) & 0xff
	return ipOctet&mask == subnetOctet
}

func boundaryOctet(cidr int) int {
	switch {
	case cidr <= 8:
		return 0
	case cidr <= 16:
		return 1
	case cidr <= 24:
		return 2
	default:
		return 3
	}
}

// leadingSegments returns the first n dot-separated segments of s, each
// followed by a dot. When s has fewer than n dots it stops at the last
// complete segment, so "10.1" with n=3 yields "10.".
func leadingSegments(s string, n int) string {
	end := 0
	for i := 0; i < n; i++ {
		dot := strings.IndexByte(s[end:], '.')
		if dot < 0 {
			return s[:end]
		}
		end += dot + 1
	}
	return s[:end]
}

func segmentValue(s string, index int) (int, bool) {
	parts := strings.Split(s, ".")
	if index >= len(parts) {
		return 0, false
	}
	v, err := strconv.Atoi(parts[index])
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return v, true
}
