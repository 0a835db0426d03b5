package device

import (
	"strings"
	"time"

	"loyalty-wallet/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDeviceID = errs.New("invalid device library identifier")

const PlatformApple = "apple"

// Registration ties one device to one pass. (passID, deviceLibraryID) is unique.
type Registration struct {
	id              uuid.UUID
	passID          uuid.UUID
	deviceLibraryID string
	pushToken       PushToken
	platform        string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRegistration(passID uuid.UUID, deviceLibraryID string, token PushToken, now time.Time) (*Registration, error) {
	deviceLibraryID = strings.TrimSpace(deviceLibraryID)
	if deviceLibraryID == "" {
		return nil, ErrInvalidDeviceID
	}
	if token.String() == "" {
		return nil, errs.ErrEmptyPushToken
	}

	return &Registration{
		id:              uuid.New(),
		passID:          passID,
		deviceLibraryID: deviceLibraryID,
		pushToken:       token,
		platform:        PlatformApple,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructRegistration(id, passID uuid.UUID, deviceLibraryID, pushToken, platform string, createdAt, updatedAt time.Time) *Registration {
	return &Registration{
		id:              id,
		passID:          passID,
		deviceLibraryID: deviceLibraryID,
		pushToken:       PushToken{value: pushToken},
		platform:        platform,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Registration) ID() uuid.UUID           { return r.id }
func (r *Registration) PassID() uuid.UUID       { return r.passID }
func (r *Registration) DeviceLibraryID() string { return r.deviceLibraryID }
func (r *Registration) PushToken() PushToken    { return r.pushToken }
func (r *Registration) Platform() string        { return r.platform }
func (r *Registration) CreatedAt() time.Time    { return r.createdAt }
func (r *Registration) UpdatedAt() time.Time    { return r.updatedAt }

// PassUpdate is an append-only record of a pass state change.
type PassUpdate struct {
	ID        uuid.UUID
	PassID    uuid.UUID
	Metadata  map[string]any
	CreatedAt time.Time
}

func NewPassUpdate(passID uuid.UUID, metadata map[string]any, now time.Time) PassUpdate {
	return PassUpdate{
		ID:        uuid.New(),
		PassID:    passID,
		Metadata:  metadata,
		CreatedAt: now,
	}
}
