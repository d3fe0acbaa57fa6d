package validation

import (
	"net"
	"net/netip"
	"strings"
)

// reservedPrefixes are ranges netip has no predicate for.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),   // carrier-grade NAT
	netip.MustParsePrefix("192.0.0.0/24"),    // IETF protocol assignments
	netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
	netip.MustParsePrefix("198.18.0.0/15"),   // benchmarking
	netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
	netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
	netip.MustParsePrefix("240.0.0.0/4"),     // reserved
}

// HostGuard rejects hosts that point back into private address space. Links
// are fetched by the suggestion and url-check paths, so an internal address
// would let callers probe the network the service runs in. The fetchers run
// every redirect hop through Check as well. Only literals and localhost names
// are checked; there is no DNS resolution.
type HostGuard struct{}

func NewHostGuard() *HostGuard {
	return &HostGuard{}
}

// Check accepts a URL host, with or without port.
func (g *HostGuard) Check(host string) error {
	name := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		name = h
	}
	name = strings.TrimSuffix(strings.TrimPrefix(name, "["), "]")
	name = strings.TrimSuffix(strings.ToLower(name), ".")

	if name == "localhost" || strings.HasSuffix(name, ".localhost") {
		return ErrPrivateIPNotAllowed
	}

	addr, err := netip.ParseAddr(name)
	if err != nil {
		return nil
	}
	return checkAddr(addr.Unmap())
}

func checkAddr(addr netip.Addr) error {
	switch {
	case addr.IsPrivate(),
		addr.IsLoopback(),
		addr.IsLinkLocalUnicast(),
		addr.IsLinkLocalMulticast(),
		addr.IsInterfaceLocalMulticast(),
		addr.IsMulticast(),
		addr.IsUnspecified():
		return ErrPrivateIPNotAllowed
	}

	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return ErrPrivateIPNotAllowed
		}
	}
	return nil
}
