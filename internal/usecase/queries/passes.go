package queries

import (
	"context"
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/pkg/errs"
)

type PassQueries interface {
	// UpdatedSerials returns nil when no registered pass changed after tag.
	UpdatedSerials(ctx context.Context, deviceLibraryID, passTypeID, tag string) (*UpdatedPassesView, error)
	PassBySerial(ctx context.Context, passTypeID, serial string) (*PassView, error)
	CardByCode(ctx context.Context, code string) (*CardView, error)
}

type PassReadStore interface {
	FindBySerial(ctx context.Context, serial string) (*PassView, error)
	UpdatedSerials(ctx context.Context, deviceLibraryID, passTypeID string, since time.Time) ([]SerialUpdate, error)
}

type passQueriesImpl struct {
	readStore PassReadStore
}

func NewPassQueries(readStore PassReadStore) PassQueries {
	return &passQueriesImpl{
		readStore: readStore,
	}
}

func (q *passQueriesImpl) UpdatedSerials(ctx context.Context, deviceLibraryID, passTypeID, tag string) (*UpdatedPassesView, error) {
	since, err := device.ParseUpdateTag(tag)
	if err != nil {
		return nil, err
	}

	updates, err := q.readStore.UpdatedSerials(ctx, deviceLibraryID, passTypeID, since.Time())
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, nil
	}

	view := &UpdatedPassesView{SerialNumbers: make([]string, 0, len(updates))}
	var latest time.Time
	for _, u := range updates {
		view.SerialNumbers = append(view.SerialNumbers, u.SerialNumber)
		if u.UpdatedAt.After(latest) {
			latest = u.UpdatedAt
		}
	}
	view.LastUpdated = device.NewUpdateTag(latest).String()
	return view, nil
}

func (q *passQueriesImpl) PassBySerial(ctx context.Context, passTypeID, serial string) (*PassView, error) {
	view, err := q.findBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if view.PassTypeID != passTypeID {
		return nil, errs.Mark(errs.Wrapf(errs.ErrPassNotFound, "pass type %q", passTypeID), errs.ErrUnknownPassType)
	}
	return view, nil
}

func (q *passQueriesImpl) CardByCode(ctx context.Context, code string) (*CardView, error) {
	userID, err := card.ParseScannerCode(code)
	if err != nil {
		return nil, err
	}
	view, err := q.findBySerial(ctx, card.SerialNumber(userID))
	if err != nil {
		return nil, err
	}
	return NewCardView(view.UserID, view.SerialNumber, view.Snapshot, view.LastModified), nil
}

func (q *passQueriesImpl) findBySerial(ctx context.Context, serial string) (*PassView, error) {
	view, err := q.readStore.FindBySerial(ctx, serial)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPassNotFound
		}
		return nil, err
	}
	return view, nil
}

func NewCardView(userID, serial string, snap card.Snapshot, lastModified time.Time) *CardView {
	state := card.NewState(snap)
	view := &CardView{
		UserID:           userID,
		SerialNumber:     serial,
		CardType:         state.Type().String(),
		BusinessName:     state.Details.BusinessName,
		StampCount:       snap.StampCount,
		StampThreshold:   snap.Threshold(),
		RewardsCollected: snap.RewardsCollected,
		Fields:           card.MapFields(state),
		LastModified:     lastModified,
	}
	if s, ok := state.Program.(card.Stamp); ok {
		view.RewardReady = s.Ready()
	}
	return view
}
