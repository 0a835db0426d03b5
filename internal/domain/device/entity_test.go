//go:build unit

package device_test

import (
	"strings"
	"testing"
	"time"

	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePushToken(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected string
		errIs    error
	}{
		{name: "plain text", body: "abc123", expected: "abc123"},
		{name: "plain text with newline", body: "abc123\n", expected: "abc123"},
		{name: "apple json body", body: `{"pushToken":"def456"}`, expected: "def456"},
		{name: "empty body", body: "", errIs: errs.ErrEmptyPushToken},
		{name: "whitespace body", body: "   ", errIs: errs.ErrEmptyPushToken},
		{name: "json with empty token", body: `{"pushToken":""}`, errIs: errs.ErrEmptyPushToken},
		{name: "too long", body: strings.Repeat("a", 513), errIs: errs.ErrPushTokenTooLong},
		{name: "json with too long token", body: `{"pushToken":"` + strings.Repeat("a", 513) + `"}`, errIs: errs.ErrPushTokenTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := device.ParsePushToken([]byte(tc.body))
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, token.String())
		})
	}
}

func TestUpdateTag(t *testing.T) {
	at := time.Date(2026, time.October, 16, 10, 30, 0, 123_456_789, time.UTC)
	tag := device.NewUpdateTag(at)

	parsed, err := device.ParseUpdateTag(tag.String())
	require.NoError(t, err)
	assert.True(t, parsed.Time().Equal(at.Truncate(time.Millisecond)))

	parsed, err = device.ParseUpdateTag("2026-10-16T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Time().Year())

	empty, err := device.ParseUpdateTag("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = device.ParseUpdateTag("yesterday")
	assert.ErrorIs(t, err, errs.ErrInvalidUpdateTag)
}

func TestNewRegistration(t *testing.T) {
	token, err := device.ParsePushToken([]byte("tok"))
	require.NoError(t, err)
	now := time.Now()

	reg, err := device.NewRegistration(uuid.New(), " device-1 ", token, now)
	require.NoError(t, err)
	assert.Equal(t, "device-1", reg.DeviceLibraryID())
	assert.Equal(t, device.PlatformApple, reg.Platform())
	assert.Equal(t, reg.CreatedAt(), reg.UpdatedAt())

	_, err = device.NewRegistration(uuid.New(), "", token, now)
	assert.ErrorIs(t, err, device.ErrInvalidDeviceID)

	_, err = device.NewRegistration(uuid.New(), "device-1", device.PushToken{}, now)
	assert.ErrorIs(t, err, errs.ErrEmptyPushToken)
}
