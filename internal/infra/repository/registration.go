package repository

import (
	"context"

	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/infra/db"

	"github.com/google/uuid"
)

type RegistrationRepository struct {
	db db.DBTX
}

func NewRegistrationRepository(db db.DBTX) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Upsert relies on the (pass_id, device_library_identifier) constraint so
// concurrent registrations from one device collapse into a single row.
// xmax is 0 only for freshly inserted tuples.
func (r *RegistrationRepository) Upsert(ctx context.Context, reg *device.Registration) (bool, error) {
	var inserted bool
	err := r.db.QueryRow(ctx, `
		INSERT INTO device_registrations (id, pass_id, device_library_identifier, push_token, platform, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (pass_id, device_library_identifier) DO UPDATE
		SET push_token = EXCLUDED.push_token,
		    updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0)`,
		reg.ID(), reg.PassID(), reg.DeviceLibraryID(), reg.PushToken().String(), reg.Platform(), reg.CreatedAt(), reg.UpdatedAt(),
	).Scan(&inserted)
	if err != nil {
		return false, infra.WrapRepoErr("failed to upsert device registration", err)
	}
	return inserted, nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, passID uuid.UUID, deviceLibraryID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM device_registrations WHERE pass_id = $1 AND device_library_identifier = $2`,
		passID, deviceLibraryID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete device registration", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RegistrationRepository) PushTokens(ctx context.Context, passID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT push_token FROM device_registrations WHERE pass_id = $1 AND platform = $2`,
		passID, device.PlatformApple,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list push tokens", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, infra.WrapRepoErr("failed to scan push token", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate push tokens", err)
	}
	return tokens, nil
}
