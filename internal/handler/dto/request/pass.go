package request

import (
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/domain/platform"
	"loyalty-wallet/internal/usecase"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// CardDataRequest mirrors the persisted card snapshot. Every field is optional.
type CardDataRequest struct {
	CardType            string           `json:"cardType" binding:"omitempty,max=32"`
	StampThreshold      int              `json:"stampThreshold" binding:"omitempty,min=1,max=100"`
	RewardsCollected    int              `json:"rewardsCollected" binding:"omitempty,min=0"`
	PointsBalance       int              `json:"pointsBalance" binding:"omitempty,min=0"`
	PointsRate          int              `json:"pointsRate" binding:"omitempty,min=0"`
	DiscountPercentage  float64          `json:"discountPercentage" binding:"omitempty,min=0,max=100"`
	CashbackPercentage  float64          `json:"cashbackPercentage" binding:"omitempty,min=0,max=100"`
	CashbackEarned      decimal.Decimal  `json:"cashbackEarned"`
	Balance             decimal.Decimal  `json:"balance"`
	ExpirationDate      *time.Time       `json:"expirationDate"`
	BusinessName        string           `json:"businessName" binding:"omitempty,max=128"`
	CardTitle           string           `json:"cardTitle" binding:"omitempty,max=128"`
	Description         string           `json:"description" binding:"omitempty,max=512"`
	BackgroundColor     string           `json:"backgroundColor" binding:"omitempty,max=32"`
	TextColor           string           `json:"textColor" binding:"omitempty,max=32"`
	AccentColor         string           `json:"accentColor" binding:"omitempty,max=32"`
	Assets              CardAssetRequest `json:"assets"`
	GoogleWalletEnabled *bool            `json:"googleWalletEnabled"`
}

type CardAssetRequest struct {
	Icon  string `json:"icon" binding:"omitempty,max=2048"`
	Logo  string `json:"logo" binding:"omitempty,max=2048"`
	Strip string `json:"strip" binding:"omitempty,max=2048"`
}

type CreatePassRequest struct {
	UserID     string           `json:"userId" binding:"required,max=128"`
	StampCount int              `json:"stampCount" binding:"min=0,max=10000"`
	CardType   string           `json:"cardType" binding:"omitempty,max=32"`
	CardData   *CardDataRequest `json:"cardData"`
	Platform   string           `json:"platform" binding:"omitempty,oneof=ios android pwa"`
	Template   string           `json:"template" binding:"omitempty,max=128"`
}

// DownloadPassQuery is the query string of the direct .pkpass download.
type DownloadPassQuery struct {
	StampCount int    `form:"stampCount" binding:"min=0,max=10000"`
	CardType   string `form:"cardType" binding:"omitempty,max=32"`
}

func (r *CreatePassRequest) ToUseCase(userAgent string) (usecase.PassRequest, error) {
	p, err := platform.Parse(r.Platform)
	if err != nil {
		return usecase.PassRequest{}, err
	}
	snap, err := r.CardData.ToSnapshot()
	if err != nil {
		return usecase.PassRequest{}, err
	}
	return usecase.PassRequest{
		UserID:     r.UserID,
		StampCount: r.StampCount,
		CardType:   r.CardType,
		CardData:   snap,
		Platform:   p,
		UserAgent:  userAgent,
		TemplateID: r.Template,
	}, nil
}

// ToSnapshot returns nil for a nil request so the builders apply defaults.
func (r *CardDataRequest) ToSnapshot() (*card.Snapshot, error) {
	if r == nil {
		return nil, nil
	}
	var snap card.Snapshot
	if err := copier.Copy(&snap, r); err != nil {
		return nil, err
	}
	return &snap, nil
}
