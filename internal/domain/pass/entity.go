package pass

import (
	"strings"
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/pkg/errs"

	"github.com/google/uuid"
)

// Pass is an issued wallet pass. Its serial number is derived from the user
// id and identifies it across the device protocol.
type Pass struct {
	id         uuid.UUID
	serial     string
	passTypeID string
	userID     string
	snapshot   card.Snapshot
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPass(userID, passTypeID string, snap card.Snapshot, now time.Time) (*Pass, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	snap.CardType = card.ParseType(snap.CardType).String()

	return &Pass{
		id:         uuid.New(),
		serial:     card.SerialNumber(userID),
		passTypeID: passTypeID,
		userID:     userID,
		snapshot:   snap,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPass(id uuid.UUID, serial, passTypeID, userID string, snap card.Snapshot, createdAt, updatedAt time.Time) *Pass {
	return &Pass{
		id:         id,
		serial:     serial,
		passTypeID: passTypeID,
		userID:     userID,
		snapshot:   snap,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (p *Pass) ID() uuid.UUID           { return p.id }
func (p *Pass) SerialNumber() string    { return p.serial }
func (p *Pass) PassTypeID() string      { return p.passTypeID }
func (p *Pass) UserID() string          { return p.userID }
func (p *Pass) Snapshot() card.Snapshot { return p.snapshot }
func (p *Pass) CardType() card.Type     { return card.ParseType(p.snapshot.CardType) }
func (p *Pass) CreatedAt() time.Time    { return p.createdAt }
func (p *Pass) UpdatedAt() time.Time    { return p.updatedAt }

// WithSnapshot returns a copy carrying the new card state.
func (p *Pass) WithSnapshot(snap card.Snapshot, now time.Time) *Pass {
	next := *p
	next.snapshot = snap
	next.updatedAt = now
	return &next
}

// Reissue applies a newly submitted design to the stored card. Stamp and
// reward counters are kept. changed is false when the stored state already
// matches, in which case p is returned as is.
func (p *Pass) Reissue(design card.Snapshot, now time.Time) (next *Pass, changed bool) {
	design.CardType = card.ParseType(design.CardType).String()
	merged := design.WithCountersFrom(p.snapshot)
	if merged.Equal(p.snapshot) {
		return p, false
	}
	return p.WithSnapshot(merged, now), true
}
