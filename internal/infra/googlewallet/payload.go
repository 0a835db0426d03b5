package googlewallet

import (
	"strconv"
	"strings"
	"time"

	"loyalty-wallet/internal/domain/card"

	"github.com/shopspring/decimal"
	"google.golang.org/api/walletobjects/v1"
)

const defaultCurrency = "USD"

// ClassID is shared by every card of one type.
func ClassID(issuerID, suffix string, t card.Type) string {
	return issuerID + "." + suffix + "_" + string(t)
}

// ObjectID is stable per user so regeneration reuses the same object.
func ObjectID(issuerID, userID string) string {
	return issuerID + "." + sanitizeID(card.SerialNumber(userID))
}

// sanitizeID keeps the characters object ids allow.
func sanitizeID(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}

func newClass(id string, state card.State, logoURL string) *walletobjects.LoyaltyClass {
	d := state.Details
	c := &walletobjects.LoyaltyClass{
		Id:                 id,
		IssuerName:         d.BusinessName,
		ProgramName:        d.Title,
		HexBackgroundColor: card.ToHex(d.Colors.Background),
		ReviewStatus:       "UNDER_REVIEW",
	}
	if strings.HasPrefix(logoURL, "https://") {
		c.ProgramLogo = &walletobjects.Image{SourceUri: &walletobjects.ImageUri{Uri: logoURL}}
	}
	return c
}

func newObject(id, classID, userID string, stampCount int, state card.State) *walletobjects.LoyaltyObject {
	o := &walletobjects.LoyaltyObject{
		Id:          id,
		ClassId:     classID,
		State:       "ACTIVE",
		AccountId:   userID,
		AccountName: userID,
		Barcode: &walletobjects.Barcode{
			Type:          "QR_CODE",
			Value:         userID,
			AlternateText: userID,
		},
		LoyaltyPoints:   loyaltyPoints(state.Program, stampCount),
		TextModulesData: []*walletobjects.TextModuleData{textModule(state)},
	}
	if exp := state.Details.ExpiresAt; exp != nil {
		o.ValidTimeInterval = &walletobjects.TimeInterval{
			End: &walletobjects.DateTime{Date: exp.UTC().Format(time.RFC3339)},
		}
	}
	return o
}

// loyaltyPoints projects the program onto the balance Google displays.
// Types without a running balance show none. A gift balance is money, which
// loyalty objects carry in loyaltyPoints.balance.money.
func loyaltyPoints(p card.Program, stampCount int) *walletobjects.LoyaltyPoints {
	intBalance := func(label string, n int) *walletobjects.LoyaltyPoints {
		return &walletobjects.LoyaltyPoints{
			Label: label,
			// zero stamps is still a balance to show
			Balance: &walletobjects.LoyaltyPointsBalance{Int: int64(n), ForceSendFields: []string{"Int"}},
		}
	}

	switch v := p.(type) {
	case card.Stamp:
		return intBalance("Stamps", stampCount)
	case card.Multipass:
		return intBalance("Uses", stampCount)
	case card.Points:
		return intBalance("Points", v.Balance)
	case card.Reward:
		return intBalance("Points", v.Points)
	case card.Gift:
		return &walletobjects.LoyaltyPoints{
			Label: "Balance",
			Balance: &walletobjects.LoyaltyPointsBalance{Money: &walletobjects.Money{
				Micros:          Micros(v.Balance),
				CurrencyCode:    defaultCurrency,
				ForceSendFields: []string{"Micros"},
			}},
		}
	default:
		return nil
	}
}

// Micros converts a currency amount to millionths, rounded half away from
// zero.
func Micros(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(1_000_000)).Round(0).IntPart()
}

func textModule(state card.State) *walletobjects.TextModuleData {
	tm := &walletobjects.TextModuleData{Id: "status", Header: state.Details.Title}

	switch p := state.Program.(type) {
	case card.Stamp:
		if p.Ready() {
			tm.Body = card.RewardReadyText + " Show this card to claim your reward."
		} else {
			tm.Body = card.RewardProgressText + " " + strconv.Itoa(p.Remaining()) + " more stamps until your free reward."
		}
	case card.Points:
		tm.Body = "Earn " + strconv.Itoa(p.Rate) + " points for every $1 spent."
	case card.Discount:
		tm.Body = "Enjoy " + card.Percent(p.Percentage) + " off every purchase."
	case card.Cashback:
		tm.Body = "Earn " + card.Percent(p.Percentage) + " back. Earned so far: " + card.Currency(p.Earned) + "."
	case card.Membership:
		tm.Body = "Active Member. Show this card to access member benefits."
	case card.Coupon:
		tm.Body = "Redeem for " + card.Percent(p.Percentage) + " off your next purchase."
	case card.Reward:
		tm.Body = strconv.Itoa(p.Remaining()) + " points until your next reward."
	case card.Gift:
		tm.Body = "Remaining balance: " + card.Currency(p.Balance) + "."
	case card.Multipass:
		tm.Body = strconv.Itoa(p.Remaining()) + " uses left on this pass."
	}
	return tm
}
