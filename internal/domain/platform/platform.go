package platform

import (
	"regexp"
	"strings"

	"loyalty-wallet/internal/pkg/errs"
)

type Platform string

const (
	IOS     Platform = "ios"
	Android Platform = "android"
	PWA     Platform = "pwa"
	Unknown Platform = "unknown"
)

func (p Platform) String() string {
	return string(p)
}

var (
	iosPattern     = regexp.MustCompile(`iPhone|iPad|iPod`)
	androidPattern = regexp.MustCompile(`Android`)
)

// Detect classifies a User-Agent header by substring match.
func Detect(userAgent string) Platform {
	switch {
	case iosPattern.MatchString(userAgent):
		return IOS
	case androidPattern.MatchString(userAgent):
		return Android
	default:
		return Unknown
	}
}

// ShouldUsePWAFallback decides whether the web card replaces a native wallet
// pass. Apple Wallet is treated as always available.
func ShouldUsePWAFallback(p Platform, googleWalletEnabled bool) bool {
	switch p {
	case IOS:
		return false
	case Android:
		return !googleWalletEnabled
	default:
		return true
	}
}

// Parse reads an explicit platform hint. An empty hint yields Unknown so the
// caller falls back to user-agent detection.
func Parse(hint string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(hint))); p {
	case "":
		return Unknown, nil
	case IOS, Android, PWA:
		return p, nil
	default:
		return Unknown, errs.ErrUnsupportedPlatform
	}
}

// Resolve prefers an explicit hint over user-agent detection.
func Resolve(hint Platform, userAgent string) Platform {
	if hint != "" && hint != Unknown {
		return hint
	}
	return Detect(userAgent)
}
