package card

import (
	"strings"

	"loyalty-wallet/internal/pkg/errs"
)

// Wallet serial numbers and scanner QR codes use different prefixes. Issued
// passes depend on both, so they are kept apart.
const (
	SerialPrefix  = "COFFEE"
	ScannerPrefix = "USER"
)

func SerialNumber(userID string) string {
	return SerialPrefix + userID
}

func UserIDFromSerial(serial string) (string, bool) {
	id, ok := strings.CutPrefix(serial, SerialPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func ScannerCode(userID string) string {
	return ScannerPrefix + userID
}

// ParseScannerCode resolves a scanned value to a user id. Scanner QR codes
// and wallet barcodes (raw user id) are accepted, as well as serial numbers
// typed in by staff.
func ParseScannerCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errs.ErrInvalidScannerCode
	}
	if id, ok := strings.CutPrefix(code, ScannerPrefix); ok {
		if id == "" {
			return "", errs.ErrInvalidScannerCode
		}
		return id, nil
	}
	if id, ok := UserIDFromSerial(code); ok {
		return id, nil
	}
	return code, nil
}
