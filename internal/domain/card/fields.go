package card

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type TextAlignment string

const (
	AlignLeft    TextAlignment = "PKTextAlignmentLeft"
	AlignCenter  TextAlignment = "PKTextAlignmentCenter"
	AlignRight   TextAlignment = "PKTextAlignmentRight"
	AlignNatural TextAlignment = "PKTextAlignmentNatural"
)

// User-facing copy baked into issued passes. Changing it makes already
// issued passes render inconsistently after their next update.
const (
	RewardReadyText     = "FREE REWARD!"
	RewardProgressText  = "Keep collecting!"
	StatusReadyText     = "Ready to redeem"
	StatusCollectingTxt = "Collecting"
)

type Field struct {
	Key           string        `json:"key"`
	Label         string        `json:"label,omitempty"`
	Value         string        `json:"value"`
	TextAlignment TextAlignment `json:"textAlignment,omitempty"`
}

type StoreCardFields struct {
	HeaderFields    []Field `json:"headerFields"`
	PrimaryFields   []Field `json:"primaryFields"`
	SecondaryFields []Field `json:"secondaryFields,omitempty"`
	AuxiliaryFields []Field `json:"auxiliaryFields,omitempty"`
	BackFields      []Field `json:"backFields"`
}

const dateLayout = "Jan 2, 2006"

// MapFields projects a card state into the Wallet store-card layout.
func MapFields(s State) StoreCardFields {
	var f StoreCardFields
	d := s.Details

	switch p := s.Program.(type) {
	case Points:
		f.HeaderFields = []Field{{Key: "points", Label: "POINTS", Value: strconv.Itoa(p.Balance), TextAlignment: AlignRight}}
		f.PrimaryFields = []Field{{Key: "balance", Label: "BALANCE", Value: strconv.Itoa(p.Balance)}}
		f.SecondaryFields = []Field{{Key: "rate", Label: "EARN RATE", Value: strconv.Itoa(p.Rate) + " pts per $1"}}
		f.AuxiliaryFields = expiryFields(d.ExpiresAt)
		f.BackFields = backFields(d, "Points are earned on every purchase and have no cash value.")

	case Discount:
		f.HeaderFields = []Field{{Key: "discount", Label: "DISCOUNT", Value: Percent(p.Percentage), TextAlignment: AlignRight}}
		f.PrimaryFields = []Field{{Key: "offer", Label: "MEMBER DISCOUNT", Value: Percent(p.Percentage) + " OFF"}}
		f.AuxiliaryFields = expiryFields(d.ExpiresAt)
		f.BackFields = backFields(d, "Show this card at checkout to apply your discount.")

	case Cashback:
		f.HeaderFields = []Field{{Key: "cashback", Label: "CASHBACK", Value: Percent(p.Percentage), TextAlignment: AlignRight}}
		f.PrimaryFields = []Field{{Key: "earned", Label: "EARNED", Value: Currency(p.Earned)}}
		f.SecondaryFields = []Field{{Key: "rate", Label: "RATE", Value: Percent(p.Percentage) + " back"}}
		f.BackFields = backFields(d, "Cashback is credited after each qualifying purchase.")

	case Membership:
		f.HeaderFields = []Field{{Key: "member", Label: "STATUS", Value: "MEMBER", TextAlignment: AlignRight}}
		f.PrimaryFields = []Field{{Key: "status", Label: "MEMBERSHIP", Value: "Active Member"}}
		if p.ExpiresAt != nil {
			f.SecondaryFields = []Field{{Key: "since", Label: "VALID UNTIL", Value: p.ExpiresAt.Format(dateLayout)}}
		}
		f.BackFields = backFields(d, "Membership benefits apply while your membership is active.")

	case Coupon:
		f.HeaderFields = []Field{{Key: "coupon", Label: "TYPE", Value: "COUPON", TextAlignment: AlignRight}}
		f.PrimaryFields = []Field{{Key: "offer", Label: "OFFER", Value: Percent(p.Percentage) + " OFF"}}
		f.AuxiliaryFields = expiryFields(d.ExpiresAt)
		f.BackFields = backFields(d, "Single use. Cannot be combined with other offers.")

	case Reward:
		f.HeaderFields = []Field{{Key: "points", Label: "POINTS", Value: strconv.Itoa(p.Points), TextAlignment: AlignRight}}
		f.PrimaryFields = []Field{{Key: "reward", Label: "REWARD PROGRESS", Value: strconv.Itoa(p.Points) + " pts"}}
		f.SecondaryFields = []Field{{Key: "next", Label: "NEXT REWARD IN", Value: strconv.Itoa(p.Remaining()) + " pts"}}
		f.BackFields = backFields(d, "Rewards are unlocked automatically when you reach the threshold.")

	case Gift:
		f.HeaderFields = []Field{{Key: "balance", Label: "BALANCE", Value: Currency(p.Balance), TextAlignment: AlignRight}}
		f.PrimaryFields = []Field{{Key: "balance", Label: "GIFT CARD BALANCE", Value: Currency(p.Balance)}}
		f.AuxiliaryFields = expiryFields(d.ExpiresAt)
		f.BackFields = backFields(d, "Gift card balance is not redeemable for cash.")

	case Multipass:
		f.HeaderFields = []Field{{Key: "uses", Label: "USES", Value: strconv.Itoa(p.Used) + "/" + strconv.Itoa(p.Total), TextAlignment: AlignRight}}
		f.PrimaryFields = []Field{{Key: "remaining", Label: "REMAINING", Value: strconv.Itoa(p.Remaining()) + " uses left"}}
		f.SecondaryFields = []Field{{Key: "used", Label: "USED", Value: strconv.Itoa(p.Used)}}
		f.BackFields = backFields(d, "Each visit uses one entry of this pass.")

	case Stamp:
		f = stampFields(d, p)

	default:
		f = stampFields(d, Stamp{Threshold: DefaultStampThreshold})
	}

	return f
}

func stampFields(d Details, p Stamp) StoreCardFields {
	reward, status := RewardProgressText, StatusCollectingTxt
	if p.Ready() {
		reward, status = RewardReadyText, StatusReadyText
	}
	return StoreCardFields{
		HeaderFields:    []Field{{Key: "stamps", Label: "STAMPS", Value: strconv.Itoa(p.Count) + "/" + strconv.Itoa(p.Threshold), TextAlignment: AlignRight}},
		PrimaryFields:   []Field{{Key: "reward", Label: d.Title, Value: reward}},
		SecondaryFields: []Field{{Key: "remaining", Label: "REMAINING", Value: strconv.Itoa(p.Remaining()) + " more"}},
		AuxiliaryFields: []Field{
			{Key: "rewards", Label: "REWARDS COLLECTED", Value: strconv.Itoa(p.RewardsCollected)},
			{Key: "status", Label: "STATUS", Value: status, TextAlignment: AlignRight},
		},
		BackFields: backFields(d, "Collect "+strconv.Itoa(p.Threshold)+" stamps to earn a free reward."),
	}
}

func expiryFields(expiresAt *time.Time) []Field {
	if expiresAt == nil {
		return nil
	}
	return []Field{{Key: "expires", Label: "EXPIRES", Value: expiresAt.Format(dateLayout)}}
}

func backFields(d Details, terms string) []Field {
	return []Field{
		{Key: "description", Label: "About", Value: d.Description},
		{Key: "business", Label: "Issued by", Value: d.BusinessName},
		{Key: "terms", Label: "Terms", Value: terms},
	}
}

// Currency renders an amount with two decimals, e.g. "$12.50".
func Currency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Percent renders 12.5 as "12.5%" and 10 as "10%".
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
