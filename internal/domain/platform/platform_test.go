//go:build unit

package platform_test

import (
	"testing"

	"loyalty-wallet/internal/domain/platform"
	"loyalty-wallet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	testCases := []struct {
		name      string
		userAgent string
		expected  platform.Platform
	}{
		{name: "iPhone", userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X)", expected: platform.IOS},
		{name: "iPad", userAgent: "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", expected: platform.IOS},
		{name: "iPod", userAgent: "Mozilla/5.0 (iPod touch; CPU iPhone OS 12_0 like Mac OS X)", expected: platform.IOS},
		{name: "Android", userAgent: "Mozilla/5.0 (Linux; Android 10)", expected: platform.Android},
		{name: "Windows", userAgent: "Mozilla/5.0 (Windows NT 10.0)", expected: platform.Unknown},
		{name: "empty", userAgent: "", expected: platform.Unknown},
		{name: "lowercase android is not matched", userAgent: "android", expected: platform.Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, platform.Detect(tc.userAgent))
		})
	}
}

func TestShouldUsePWAFallback(t *testing.T) {
	testCases := []struct {
		platform platform.Platform
		enabled  bool
		expected bool
	}{
		{platform: platform.Unknown, enabled: true, expected: true},
		{platform: platform.Unknown, enabled: false, expected: true},
		{platform: platform.IOS, enabled: false, expected: false},
		{platform: platform.IOS, enabled: true, expected: false},
		{platform: platform.Android, enabled: false, expected: true},
		{platform: platform.Android, enabled: true, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.platform.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, platform.ShouldUsePWAFallback(tc.platform, tc.enabled))
		})
	}
}

func TestParseAndResolve(t *testing.T) {
	p, err := platform.Parse(" IOS ")
	require.NoError(t, err)
	assert.Equal(t, platform.IOS, p)

	p, err = platform.Parse("")
	require.NoError(t, err)
	assert.Equal(t, platform.Unknown, p)

	_, err = platform.Parse("windows")
	assert.ErrorIs(t, err, errs.ErrUnsupportedPlatform)

	assert.Equal(t, platform.Android, platform.Resolve(platform.Android, "Mozilla/5.0 (iPhone)"))
	assert.Equal(t, platform.IOS, platform.Resolve(platform.Unknown, "Mozilla/5.0 (iPhone)"))
}
