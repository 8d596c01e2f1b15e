package utils

import (
	"net"
)

// IsAllowedIP reports whether the IP address falls inside one of the allowed
// CIDR subnetworks. Invalid CIDR entries are skipped.
func IsAllowedIP(ip string, allowedCIDRs []string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}

	for _, cidr := range allowedCIDRs {
		_, netblock, err := net.ParseCIDR(cidr)
		if err != nil {
			continue
		}
		if netblock.Contains(parsed) {
			return true
		}
	}
	return false
}
