package match

import (
	"net/netip"
	"sort"
	"strconv"

	"github.com/Flarenzy/netzone/internal/domain"
	"go4.org/netipx"
)

// Bitwise matches by true CIDR containment over the 32-bit address. It is
// stricter than Textual and resolves some addresses differently, so it is
// only used when explicitly selected.
type Bitwise struct{}

func NewBitwise() Bitwise {
	return Bitwise{}
}

func (Bitwise) Match(ip string, candidates domain.Table) (domain.SubnetRecord, bool) {
	addr, err := netip.ParseAddr(ip)
	if err != nil || !addr.Is4() {
		return domain.SubnetRecord{}, false
	}

	keys := make([]string, 0, len(candidates))
	for subnet := range candidates {
		keys = append(keys, subnet)
	}
	sort.Strings(keys)

	var (
		best     domain.SubnetRecord
		bestBits = -1
	)
	for _, subnet := range keys {
		rec := candidates[subnet]
		prefix, ok := parsePrefix(subnet, rec.CIDR)
		if !ok {
			continue
		}
		if !netipx.RangeOfPrefix(prefix).Contains(addr) {
			continue
		}
		if prefix.Bits() > bestBits {
			best = rec
			best.Subnet = subnet
			bestBits = prefix.Bits()
		}
	}
	return best, bestBits >= 0
}

func parsePrefix(subnet, cidr string) (netip.Prefix, bool) {
	addr, err := netip.ParseAddr(subnet)
	if err != nil || !addr.Is4() {
		return netip.Prefix{}, false
	}
	bits, err := strconv.Atoi(cidr)
	if err != nil {
		return netip.Prefix{}, false
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		return netip.Prefix{}, false
	}
	return prefix, true
}

// ByName returns the matcher registered under name.
func ByName(name string) (domain.Matcher, bool) {
	switch name {
	case "", "textual":
		return NewTextual(), true
	case "bitwise":
		return NewBitwise(), true
	default:
		return nil, false
	}
}
