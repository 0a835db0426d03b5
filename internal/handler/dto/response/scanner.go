package response

import (
	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/usecase/queries"
)

type CardResponse struct {
	UserID           string               `json:"userId"`
	SerialNumber     string               `json:"serialNumber"`
	CardType         string               `json:"cardType"`
	BusinessName     string               `json:"businessName"`
	StampCount       int                  `json:"stampCount"`
	StampThreshold   int                  `json:"stampThreshold"`
	RewardsCollected int                  `json:"rewardsCollected"`
	RewardReady      bool                 `json:"rewardReady"`
	Fields           card.StoreCardFields `json:"fields"`
	LastModified     int64                `json:"lastModified"`
}

func FromCardView(v *queries.CardView) *CardResponse {
	return &CardResponse{
		UserID:           v.UserID,
		SerialNumber:     v.SerialNumber,
		CardType:         v.CardType,
		BusinessName:     v.BusinessName,
		StampCount:       v.StampCount,
		StampThreshold:   v.StampThreshold,
		RewardsCollected: v.RewardsCollected,
		RewardReady:      v.RewardReady,
		Fields:           v.Fields,
		LastModified:     v.LastModified.Unix(),
	}
}
