package smtp

import (
	"fmt"
	"strings"
)

// TLSMode determines how the SMTP client negotiates TLS.
type TLSMode string

const (
	// TLSModeAuto uses port-based defaults (implicit TLS on 465, STARTTLS otherwise).
	TLSModeAuto TLSMode = "auto"
	// TLSModeDisabled forces cleartext SMTP.
	TLSModeDisabled TLSMode = "disabled"
	// TLSModeStartTLS requires STARTTLS on the SMTP connection.
	TLSModeStartTLS TLSMode = "starttls"
	// TLSModeImplicit uses implicit TLS (SMTPS), typically on port 465.
	TLSModeImplicit TLSMode = "implicit"
)

// ParseTLSMode normalizes a configured mode. Empty means auto.
func ParseTLSMode(mode string) (TLSMode, error) {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "auto":
		return TLSModeAuto, nil
	case "disabled", "off", "none":
		return TLSModeDisabled, nil
	case "starttls", "start_tls":
		return TLSModeStartTLS, nil
	case "implicit", "smtps", "ssl":
		return TLSModeImplicit, nil
	default:
		return "", fmt.Errorf("%w: tls mode %q (expected auto, disabled, starttls or implicit)", ErrInvalidConfig, mode)
	}
}

// resolve turns auto into a concrete mode for the given port.
func (m TLSMode) resolve(port int) TLSMode {
	if m != TLSModeAuto {
		return m
	}
	if port == 465 {
		return TLSModeImplicit
	}
	return TLSModeStartTLS
}
