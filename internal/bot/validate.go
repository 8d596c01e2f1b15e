package bot

import (
	"strings"
)

// validateAddress does the caller-side sanity check on a payout destination.
// The ledger stores whatever passes here; the payout processor does the
// authoritative validation.
func validateAddress(method, address string) bool {
	address = strings.TrimSpace(address)
	if address == "" {
		return false
	}

	switch method {
	case "telegram_stars":
		return strings.HasPrefix(address, "@") && len(address) >= 2 && len(address) <= 64
	case "crypto_bot":
		return len(address) >= 5 && len(address) <= 128
	default:
		// Crypto addresses: base58/hex-ish strings in a plausible range.
		if len(address) < 20 || len(address) > 128 {
			return false
		}
		for _, r := range address {
			if !isAddressRune(r) {
				return false
			}
		}
		return true
	}
}

func isAddressRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == ':' || r == '-' || r == '_':
		return true
	}
	return false
}

// validateContestLink enforces an http(s) scheme before the submission is
// handed to the ledger.
func validateContestLink(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}
