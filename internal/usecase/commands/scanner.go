package commands

import (
	"context"
	"log/slog"
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/domain/pass"
	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/pkg/clock"
	"loyalty-wallet/internal/pkg/errs"
	"loyalty-wallet/internal/pkg/metrics"
	"loyalty-wallet/internal/usecase/queries"
	"loyalty-wallet/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	ActionStamp  = "stamp"
	ActionRedeem = "redeem"

	notifyTimeout = 10 * time.Second
)

type ScannerCommands interface {
	AddStamps(ctx context.Context, code string, count int, staffID uuid.UUID) (*queries.CardView, error)
	Redeem(ctx context.Context, code string, staffID uuid.UUID) (*queries.CardView, error)
}

type scannerUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier DeviceNotifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewScannerUseCase(uow shared.UnitOfWork, notifier DeviceNotifier, clk clock.Clock, logger *slog.Logger) ScannerCommands {
	return &scannerUseCaseImpl{uow: uow, notifier: notifier, clock: clk, logger: logger}
}

func (uc *scannerUseCaseImpl) AddStamps(ctx context.Context, code string, count int, staffID uuid.UUID) (*queries.CardView, error) {
	return uc.mutate(ctx, code, staffID, ActionStamp, func(snap card.Snapshot) (card.Snapshot, map[string]any, error) {
		if count < 1 || count > snap.Threshold() {
			return snap, nil, errs.ErrInvalidStampCount
		}
		next := snap.WithStamps(count)
		return next, map[string]any{"added": count, "stampCount": next.StampCount}, nil
	})
}

func (uc *scannerUseCaseImpl) Redeem(ctx context.Context, code string, staffID uuid.UUID) (*queries.CardView, error) {
	return uc.mutate(ctx, code, staffID, ActionRedeem, func(snap card.Snapshot) (card.Snapshot, map[string]any, error) {
		next, ok := snap.Redeemed()
		if !ok {
			return snap, nil, errs.ErrRewardNotReady
		}
		return next, map[string]any{"stampCount": next.StampCount, "rewardsCollected": next.RewardsCollected}, nil
	})
}

type snapshotChange func(card.Snapshot) (card.Snapshot, map[string]any, error)

// mutate applies change to the locked pass, appends the update record and
// then notifies registered devices outside the transaction.
func (uc *scannerUseCaseImpl) mutate(ctx context.Context, code string, staffID uuid.UUID, action string, change snapshotChange) (*queries.CardView, error) {
	userID, err := card.ParseScannerCode(code)
	if err != nil {
		return nil, err
	}
	serial := card.SerialNumber(userID)

	var updated *pass.Pass
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := tx.Passes().FindBySerialForUpdate(ctx, serial)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrPassNotFound
			}
			return derr
		}

		snap, metadata, derr := change(p.Snapshot())
		if derr != nil {
			return derr
		}
		now := uc.clock.Now()
		metadata["action"] = action
		metadata["staffId"] = staffID.String()

		updated = p.WithSnapshot(snap, now)
		if derr = tx.Passes().UpdateSnapshot(ctx, updated); derr != nil {
			return derr
		}
		return tx.Updates().Append(ctx, device.NewPassUpdate(p.ID(), metadata, now))
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "card updated by scanner",
		slog.String("action", action),
		slog.String("serialNumber", serial),
		slog.Int("stampCount", updated.Snapshot().StampCount))

	uc.notifyDevices(ctx, updated)
	return queries.NewCardView(updated.UserID(), updated.SerialNumber(), updated.Snapshot(), updated.UpdatedAt()), nil
}

// notifyDevices is best effort: failures are logged and never returned.
func (uc *scannerUseCaseImpl) notifyDevices(ctx context.Context, p *pass.Pass) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	var tokens []string
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		tokens, derr = tx.Registrations().PushTokens(ctx, p.ID())
		return derr
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "failed to load push tokens",
			slog.String("serialNumber", p.SerialNumber()),
			slog.String("error", err.Error()))
		return
	}
	if len(tokens) == 0 {
		return
	}

	result, err := uc.notifier.Notify(ctx, tokens)
	if err != nil {
		uc.logger.WarnContext(ctx, "failed to notify devices",
			slog.String("serialNumber", p.SerialNumber()),
			slog.String("error", err.Error()))
		metrics.RecordNotifications(0, len(tokens))
		return
	}
	metrics.RecordNotifications(result.Sent, result.Failed)
}
