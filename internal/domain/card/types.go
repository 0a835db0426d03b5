package card

import "strings"

type Type string

const (
	TypeStamp      Type = "stamp"
	TypePoints     Type = "points"
	TypeDiscount   Type = "discount"
	TypeCashback   Type = "cashback"
	TypeMembership Type = "membership"
	TypeCoupon     Type = "coupon"
	TypeReward     Type = "reward"
	TypeGift       Type = "gift"
	TypeMultipass  Type = "multipass"
)

var allTypes = []Type{
	TypeStamp, TypePoints, TypeDiscount, TypeCashback, TypeMembership,
	TypeCoupon, TypeReward, TypeGift, TypeMultipass,
}

// AllTypes returns every supported card type in declaration order.
func AllTypes() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	for _, v := range allTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ParseType never fails: unrecognized or empty values become TypeStamp.
// This is the only place in the codebase that applies the stamp fallback.
func ParseType(s string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return TypeStamp
	}
	return t
}
