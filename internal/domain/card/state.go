package card

import (
	"time"

	"github.com/shopspring/decimal"
)

// Program is the per-type part of a card. The set of implementations is
// closed; consumers type-switch over it.
type Program interface {
	Type() Type
	program()
}

type Stamp struct {
	Count            int
	Threshold        int
	RewardsCollected int
}

type Points struct {
	Balance int
	Rate    int
}

type Discount struct {
	Percentage float64
}

type Cashback struct {
	Percentage float64
	Earned     decimal.Decimal
}

type Membership struct {
	ExpiresAt *time.Time
}

type Coupon struct {
	Percentage float64
}

type Reward struct {
	Points    int
	Threshold int
}

type Gift struct {
	Balance decimal.Decimal
}

type Multipass struct {
	Used  int
	Total int
}

func (Stamp) Type() Type      { return TypeStamp }
func (Points) Type() Type     { return TypePoints }
func (Discount) Type() Type   { return TypeDiscount }
func (Cashback) Type() Type   { return TypeCashback }
func (Membership) Type() Type { return TypeMembership }
func (Coupon) Type() Type     { return TypeCoupon }
func (Reward) Type() Type     { return TypeReward }
func (Gift) Type() Type       { return TypeGift }
func (Multipass) Type() Type  { return TypeMultipass }

func (Stamp) program()      {}
func (Points) program()     {}
func (Discount) program()   {}
func (Cashback) program()   {}
func (Membership) program() {}
func (Coupon) program()     {}
func (Reward) program()     {}
func (Gift) program()       {}
func (Multipass) program()  {}

// Ready reports whether a free reward can be claimed.
func (s Stamp) Ready() bool { return s.Count >= s.Threshold }

func (s Stamp) Remaining() int { return max(s.Threshold-s.Count, 0) }

func (m Multipass) Remaining() int { return max(m.Total-m.Used, 0) }

func (r Reward) Remaining() int { return max(r.Threshold-r.Points, 0) }

type Colors struct {
	Background string
	Foreground string
	Label      string
}

type Details struct {
	BusinessName        string
	Title               string
	Description         string
	Colors              Colors
	Assets              Assets
	ExpiresAt           *time.Time
	GoogleWalletEnabled bool
}

// State is the read-only input of a generation call.
type State struct {
	Details Details
	Program Program
}

func (s State) Type() Type { return s.Program.Type() }

const (
	defaultBusinessName = "Coffee Shop"
	defaultTitle        = "Loyalty Card"
)

// NewState projects a snapshot into its typed variant.
func NewState(snap Snapshot) State {
	details := Details{
		BusinessName: orDefault(snap.BusinessName, defaultBusinessName),
		Title:        orDefault(snap.CardTitle, defaultTitle),
		Description:  snap.Description,
		Colors: Colors{
			Background: ToRGB(snap.BackgroundColor, DefaultBackground),
			Foreground: ToRGB(snap.TextColor, DefaultForeground),
			Label:      ToRGB(orDefault(snap.AccentColor, snap.TextColor), DefaultForeground),
		},
		Assets:              snap.Assets,
		ExpiresAt:           snap.ExpirationDate,
		GoogleWalletEnabled: snap.WalletEnabled(),
	}
	if details.Description == "" {
		details.Description = details.BusinessName + " " + details.Title
	}

	return State{Details: details, Program: newProgram(snap)}
}

func newProgram(snap Snapshot) Program {
	switch ParseType(snap.CardType) {
	case TypePoints:
		return Points{Balance: snap.PointsBalance, Rate: snap.PointsRate}
	case TypeDiscount:
		return Discount{Percentage: snap.DiscountPercentage}
	case TypeCashback:
		return Cashback{Percentage: snap.CashbackPercentage, Earned: snap.CashbackEarned}
	case TypeMembership:
		return Membership{ExpiresAt: snap.ExpirationDate}
	case TypeCoupon:
		return Coupon{Percentage: snap.DiscountPercentage}
	case TypeReward:
		return Reward{Points: snap.PointsBalance, Threshold: snap.Threshold()}
	case TypeGift:
		return Gift{Balance: snap.Balance}
	case TypeMultipass:
		return Multipass{Used: snap.StampCount, Total: snap.Threshold()}
	default:
		return Stamp{Count: snap.StampCount, Threshold: snap.Threshold(), RewardsCollected: snap.RewardsCollected}
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
