package queries

import (
	"time"

	"loyalty-wallet/internal/domain/card"

	"github.com/google/uuid"
)

// PassView represents read-optimized pass data with its last modification
type PassView struct {
	ID           uuid.UUID     `json:"id"`
	SerialNumber string        `json:"serialNumber"`
	PassTypeID   string        `json:"passTypeIdentifier"`
	UserID       string        `json:"userId"`
	Snapshot     card.Snapshot `json:"snapshot"`
	LastModified time.Time     `json:"lastModified"`
}

// SerialUpdate is one pass with an update newer than the requested tag
type SerialUpdate struct {
	SerialNumber string
	UpdatedAt    time.Time
}

// UpdatedPassesView is the PassKit "list updatable passes" document
type UpdatedPassesView struct {
	LastUpdated   string   `json:"lastUpdated"`
	SerialNumbers []string `json:"serialNumbers"`
}

// CardView is what the scanner shows after a lookup
type CardView struct {
	UserID           string               `json:"userId"`
	SerialNumber     string               `json:"serialNumber"`
	CardType         string               `json:"cardType"`
	BusinessName     string               `json:"businessName"`
	StampCount       int                  `json:"stampCount"`
	StampThreshold   int                  `json:"stampThreshold"`
	RewardsCollected int                  `json:"rewardsCollected"`
	RewardReady      bool                 `json:"rewardReady"`
	Fields           card.StoreCardFields `json:"fields"`
	LastModified     time.Time            `json:"lastModified"`
}
