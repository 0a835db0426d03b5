package device

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"loyalty-wallet/internal/pkg/errs"
)

const maxPushTokenLength = 512

type PushToken struct {
	value string
}

// ParsePushToken accepts the registration body either as Apple's JSON
// document {"pushToken": "..."} or as the bare token.
func ParsePushToken(body []byte) (PushToken, error) {
	raw := strings.TrimSpace(string(body))
	if strings.HasPrefix(raw, "{") {
		var doc struct {
			PushToken string `json:"pushToken"`
		}
		if err := json.Unmarshal([]byte(raw), &doc); err == nil {
			raw = strings.TrimSpace(doc.PushToken)
		}
	}
	if raw == "" {
		return PushToken{}, errs.ErrEmptyPushToken
	}
	if len(raw) > maxPushTokenLength {
		return PushToken{}, errs.ErrPushTokenTooLong
	}
	return PushToken{value: raw}, nil
}

func (t PushToken) String() string { return t.value }

// UpdateTag is the opaque passesUpdatedSince value handed to devices. It
// encodes unix milliseconds so updates within the same second stay distinct.
type UpdateTag struct {
	at time.Time
}

func NewUpdateTag(t time.Time) UpdateTag {
	return UpdateTag{at: t.UTC().Truncate(time.Millisecond)}
}

// ParseUpdateTag accepts the millisecond form this service issues and RFC 3339
// timestamps. An empty value yields the zero tag, which matches every update.
func ParseUpdateTag(s string) (UpdateTag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UpdateTag{}, nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return UpdateTag{at: time.UnixMilli(ms).UTC()}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewUpdateTag(t), nil
	}
	return UpdateTag{}, errs.ErrInvalidUpdateTag
}

func (t UpdateTag) Time() time.Time { return t.at }

func (t UpdateTag) IsZero() bool { return t.at.IsZero() }

func (t UpdateTag) String() string {
	return strconv.FormatInt(t.at.UnixMilli(), 10)
}
