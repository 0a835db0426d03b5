package repository

import (
	"context"
	"encoding/json"
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/domain/pass"
	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const passColumns = `id, serial_number, pass_type_identifier, user_id, snapshot, created_at, updated_at`

type PassRepository struct {
	db db.DBTX
}

func NewPassRepository(db db.DBTX) *PassRepository {
	return &PassRepository{db: db}
}

func (r *PassRepository) FindBySerial(ctx context.Context, serial string) (*pass.Pass, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passColumns+` FROM passes WHERE serial_number = $1`, serial)
	p, err := scanPass(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pass by serial", err)
	}
	return p, nil
}

func (r *PassRepository) FindBySerialForUpdate(ctx context.Context, serial string) (*pass.Pass, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passColumns+` FROM passes WHERE serial_number = $1 FOR UPDATE`, serial)
	p, err := scanPass(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pass by serial", err)
	}
	return p, nil
}

// Create inserts p. When the serial is already issued the stored row is
// returned untouched, locked until the transaction ends, and created is false.
func (r *PassRepository) Create(ctx context.Context, p *pass.Pass) (*pass.Pass, bool, error) {
	snapshot, err := json.Marshal(p.Snapshot())
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to encode pass snapshot", err, infra.KindDBFailure)
	}

	// the no-op update takes the row lock; xmax = 0 only on a fresh insert
	row := r.db.QueryRow(ctx, `
		INSERT INTO passes (id, serial_number, pass_type_identifier, user_id, card_type, snapshot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (serial_number) DO UPDATE
		SET serial_number = passes.serial_number
		RETURNING `+passColumns+`, (xmax = 0) AS inserted`,
		p.ID(), p.SerialNumber(), p.PassTypeID(), p.UserID(), p.CardType().String(), snapshot, p.CreatedAt(), p.UpdatedAt(),
	)
	var created bool
	stored, err := scanPass(row, &created)
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to create pass", err)
	}
	return stored, created, nil
}

func (r *PassRepository) UpdateSnapshot(ctx context.Context, p *pass.Pass) error {
	snapshot, err := json.Marshal(p.Snapshot())
	if err != nil {
		return infra.WrapRepoErr("failed to encode pass snapshot", err, infra.KindDBFailure)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE passes SET card_type = $2, snapshot = $3, updated_at = $4 WHERE id = $1`,
		p.ID(), p.CardType().String(), snapshot, p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pass snapshot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pass not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanPass(row pgx.Row, extra ...any) (*pass.Pass, error) {
	var (
		id                         uuid.UUID
		serial, passTypeID, userID string
		raw                        []byte
		createdAt, updatedAt       time.Time
	)
	dest := append([]any{&id, &serial, &passTypeID, &userID, &raw, &createdAt, &updatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	var snap card.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return pass.ReconstructPass(id, serial, passTypeID, userID, snap, createdAt, updatedAt), nil
}
