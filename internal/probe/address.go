// If you are AI: This file resolves which IP addresses a probe run targets.

package probe

import (
	"net"
)

// fallbackAddress is probed when no private address can be found.
const fallbackAddress = "127.0.0.1"

// interfaceAddrs lists local interface addresses.
// Extracted for testability.
var interfaceAddrs = net.InterfaceAddrs

// Addresses returns the configured addresses, or auto-detected private IPv4
// addresses when none are configured. The result is never empty.
func Addresses(t *Targets) []string {
	if len(t.IPAddresses) > 0 {
		return dedupe(t.IPAddresses)
	}

	detected := privateIPv4s()
	if len(detected) == 0 {
		return []string{fallbackAddress}
	}
	return detected
}

// privateIPv4s returns non-loopback private IPv4 addresses of local interfaces.
func privateIPv4s() []string {
	addrs, err := interfaceAddrs()
	if err != nil {
		return nil
	}

	var ips []string
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		default:
			continue
		}

		ip4 := ip.To4()
		if ip4 == nil || ip4.IsLoopback() || !ip4.IsPrivate() {
			continue
		}
		ips = append(ips, ip4.String())
	}
	return dedupe(ips)
}

// dedupe removes repeated entries while preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
