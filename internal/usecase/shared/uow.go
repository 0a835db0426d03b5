package shared

import (
	"context"

	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/domain/pass"
	"loyalty-wallet/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Passes() PassRepository
	Registrations() RegistrationRepository
	Updates() PassUpdateRepository
	DB() db.DBTX
}

type PassRepository interface {
	FindBySerial(ctx context.Context, serial string) (*pass.Pass, error)
	// FindBySerialForUpdate locks the row until the transaction ends.
	FindBySerialForUpdate(ctx context.Context, serial string) (*pass.Pass, error)
	// Create returns the stored row, locked and untouched, with created false
	// when the serial is already issued.
	Create(ctx context.Context, p *pass.Pass) (*pass.Pass, bool, error)
	UpdateSnapshot(ctx context.Context, p *pass.Pass) error
}

type RegistrationRepository interface {
	// Upsert reports true when a new row was inserted.
	Upsert(ctx context.Context, r *device.Registration) (bool, error)
	// Delete reports false when no registration matched.
	Delete(ctx context.Context, passID uuid.UUID, deviceLibraryID string) (bool, error)
	PushTokens(ctx context.Context, passID uuid.UUID) ([]string, error)
}

type PassUpdateRepository interface {
	Append(ctx context.Context, u device.PassUpdate) error
}
