package card

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultStampThreshold = 10

type Assets struct {
	Icon  string `json:"icon,omitempty"`
	Logo  string `json:"logo,omitempty"`
	Strip string `json:"strip,omitempty"`
}

// Snapshot is the flat, persisted form of a loyalty card. It is what callers
// submit and what the passes table stores; NewState projects it into the
// per-type variant used by the wallet builders.
type Snapshot struct {
	CardType            string          `json:"cardType"`
	StampCount          int             `json:"stampCount"`
	StampThreshold      int             `json:"stampThreshold"`
	RewardsCollected    int             `json:"rewardsCollected"`
	PointsBalance       int             `json:"pointsBalance"`
	PointsRate          int             `json:"pointsRate"`
	DiscountPercentage  float64         `json:"discountPercentage"`
	CashbackPercentage  float64         `json:"cashbackPercentage"`
	CashbackEarned      decimal.Decimal `json:"cashbackEarned"`
	Balance             decimal.Decimal `json:"balance"`
	ExpirationDate      *time.Time      `json:"expirationDate,omitempty"`
	BusinessName        string          `json:"businessName"`
	CardTitle           string          `json:"cardTitle"`
	Description         string          `json:"description"`
	BackgroundColor     string          `json:"backgroundColor"`
	TextColor           string          `json:"textColor"`
	AccentColor         string          `json:"accentColor"`
	Assets              Assets          `json:"assets"`
	GoogleWalletEnabled *bool           `json:"googleWalletEnabled,omitempty"`
}

func (s Snapshot) Threshold() int {
	if s.StampThreshold <= 0 {
		return DefaultStampThreshold
	}
	return s.StampThreshold
}

// WithStamps returns a copy with count stamps added.
func (s Snapshot) WithStamps(count int) Snapshot {
	s.StampCount += count
	return s
}

// Redeemed returns a copy with one reward consumed. ok is false when the
// threshold has not been reached yet.
func (s Snapshot) Redeemed() (Snapshot, bool) {
	threshold := s.Threshold()
	if s.StampCount < threshold {
		return s, false
	}
	s.StampCount -= threshold
	s.RewardsCollected++
	return s, true
}

func (s Snapshot) WalletEnabled() bool {
	return s.GoogleWalletEnabled == nil || *s.GoogleWalletEnabled
}

// WithCountersFrom returns the design in s carrying the scanner-owned
// counters of stored. Counters only change through stamps and redemptions.
func (s Snapshot) WithCountersFrom(stored Snapshot) Snapshot {
	s.StampCount = stored.StampCount
	s.RewardsCollected = stored.RewardsCollected
	return s
}

// Equal compares decimals by value, so "10" and "10.00" match.
func (s Snapshot) Equal(o Snapshot) bool {
	if !s.CashbackEarned.Equal(o.CashbackEarned) || !s.Balance.Equal(o.Balance) {
		return false
	}
	if !equalTime(s.ExpirationDate, o.ExpirationDate) || !equalBool(s.GoogleWalletEnabled, o.GoogleWalletEnabled) {
		return false
	}
	s.CashbackEarned, o.CashbackEarned = decimal.Zero, decimal.Zero
	s.Balance, o.Balance = decimal.Zero, decimal.Zero
	s.ExpirationDate, o.ExpirationDate = nil, nil
	s.GoogleWalletEnabled, o.GoogleWalletEnabled = nil, nil
	return s == o
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalBool(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
