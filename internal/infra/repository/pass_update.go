package repository

import (
	"context"
	"encoding/json"

	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/infra/db"
)

type PassUpdateRepository struct {
	db db.DBTX
}

func NewPassUpdateRepository(db db.DBTX) *PassUpdateRepository {
	return &PassUpdateRepository{db: db}
}

func (r *PassUpdateRepository) Append(ctx context.Context, u device.PassUpdate) error {
	metadata := u.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return infra.WrapRepoErr("failed to encode update metadata", err, infra.KindDBFailure)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO pass_updates (id, pass_id, metadata, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.PassID, raw, u.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append pass update", err)
	}
	return nil
}
