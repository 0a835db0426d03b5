package readstore

import (
	"context"
	"encoding/json"
	"time"

	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/infra/db"
	"loyalty-wallet/internal/usecase/queries"
)

type PassReadStore struct {
	db db.DBTX
}

func NewPassReadStore(db db.DBTX) *PassReadStore {
	return &PassReadStore{db: db}
}

// FindBySerial returns the pass with the time of its latest update record,
// or of the pass row itself when it was never updated.
func (r *PassReadStore) FindBySerial(ctx context.Context, serial string) (*queries.PassView, error) {
	var (
		view queries.PassView
		raw  []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT p.id, p.serial_number, p.pass_type_identifier, p.user_id, p.snapshot,
		       GREATEST(p.updated_at, COALESCE(MAX(u.created_at), p.updated_at))
		FROM passes p
		LEFT JOIN pass_updates u ON u.pass_id = p.id
		WHERE p.serial_number = $1
		GROUP BY p.id`,
		serial,
	).Scan(&view.ID, &view.SerialNumber, &view.PassTypeID, &view.UserID, &raw, &view.LastModified)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pass view by serial", err)
	}
	if err := json.Unmarshal(raw, &view.Snapshot); err != nil {
		return nil, infra.WrapRepoErr("failed to decode pass snapshot", err, infra.KindDBFailure)
	}
	return &view, nil
}

// UpdatedSerials lists each pass registered on the device with an update
// after since. Timestamps compare at millisecond precision, the precision of
// the tag handed to devices.
func (r *PassReadStore) UpdatedSerials(ctx context.Context, deviceLibraryID, passTypeID string, since time.Time) ([]queries.SerialUpdate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.serial_number, MAX(u.created_at)
		FROM device_registrations r
		JOIN passes p ON p.id = r.pass_id
		JOIN pass_updates u ON u.pass_id = p.id
		WHERE r.device_library_identifier = $1
		  AND p.pass_type_identifier = $2
		  AND date_trunc('milliseconds', u.created_at) > $3
		GROUP BY p.serial_number
		ORDER BY p.serial_number`,
		deviceLibraryID, passTypeID, since,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list updated serials", err)
	}
	defer rows.Close()

	var updates []queries.SerialUpdate
	for rows.Next() {
		var u queries.SerialUpdate
		if err := rows.Scan(&u.SerialNumber, &u.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan updated serial", err)
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate updated serials", err)
	}
	return updates, nil
}
