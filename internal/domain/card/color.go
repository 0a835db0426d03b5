package card

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultBackground = "rgb(60,65,76)"
	DefaultForeground = "rgb(255,255,255)"
)

var rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// ToRGB normalizes "rgb(r,g,b)", "#rrggbb" or "#rgb" into the rgb() form
// Wallet expects. Anything unparseable yields def.
func ToRGB(v, def string) string {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return def
	}

	if m := rgbPattern.FindStringSubmatch(v); m != nil {
		parts := make([]int, 3)
		for i := range parts {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return def
			}
			parts[i] = n
		}
		return formatRGB(parts[0], parts[1], parts[2])
	}

	hex := strings.TrimPrefix(v, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return def
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return def
	}
	return formatRGB(int(n>>16&0xff), int(n>>8&0xff), int(n&0xff))
}

// ToHex converts an rgb() string into #rrggbb for Google Wallet.
func ToHex(rgb string) string {
	m := rgbPattern.FindStringSubmatch(ToRGB(rgb, DefaultBackground))
	r, _ := strconv.Atoi(m[1])
	g, _ := strconv.Atoi(m[2])
	b, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func formatRGB(r, g, b int) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}
