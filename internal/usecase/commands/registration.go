package commands

import (
	"context"
	"log/slog"

	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/domain/pass"
	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/pkg/clock"
	"loyalty-wallet/internal/pkg/errs"
	"loyalty-wallet/internal/pkg/metrics"
	"loyalty-wallet/internal/usecase/shared"
)

const maxDeviceLogLines = 100

type RegisterDeviceRequest struct {
	DeviceLibraryID string
	PassTypeID      string
	SerialNumber    string
	Body            []byte
}

type RegistrationCommands interface {
	// RegisterDevice reports true when the device was not registered before.
	RegisterDevice(ctx context.Context, req RegisterDeviceRequest) (bool, error)
	UnregisterDevice(ctx context.Context, deviceLibraryID, passTypeID, serial string) error
	RecordDeviceLogs(ctx context.Context, lines []string)
}

type registrationUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewRegistrationUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) RegistrationCommands {
	return &registrationUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *registrationUseCaseImpl) RegisterDevice(ctx context.Context, req RegisterDeviceRequest) (bool, error) {
	token, err := device.ParsePushToken(req.Body)
	if err != nil {
		return false, err
	}

	var inserted bool
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := findPass(ctx, tx, req.PassTypeID, req.SerialNumber)
		if derr != nil {
			return derr
		}
		reg, derr := device.NewRegistration(p.ID(), req.DeviceLibraryID, token, uc.clock.Now())
		if derr != nil {
			return derr
		}
		inserted, derr = tx.Registrations().Upsert(ctx, reg)
		return derr
	})
	if err != nil {
		return false, err
	}

	action := "updated"
	if inserted {
		action = "registered"
	}
	metrics.RecordRegistration(action)
	uc.logger.InfoContext(ctx, "device "+action,
		slog.String("deviceLibraryId", req.DeviceLibraryID),
		slog.String("serialNumber", req.SerialNumber))
	return inserted, nil
}

func (uc *registrationUseCaseImpl) UnregisterDevice(ctx context.Context, deviceLibraryID, passTypeID, serial string) error {
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := findPass(ctx, tx, passTypeID, serial)
		if derr != nil {
			return derr
		}
		deleted, derr := tx.Registrations().Delete(ctx, p.ID(), deviceLibraryID)
		if derr != nil {
			return derr
		}
		if !deleted {
			return errs.ErrRegistrationMissing
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.RecordRegistration("unregistered")
	uc.logger.InfoContext(ctx, "device unregistered",
		slog.String("deviceLibraryId", deviceLibraryID),
		slog.String("serialNumber", serial))
	return nil
}

func (uc *registrationUseCaseImpl) RecordDeviceLogs(ctx context.Context, lines []string) {
	if len(lines) > maxDeviceLogLines {
		uc.logger.WarnContext(ctx, "device log truncated", slog.Int("lines", len(lines)))
		lines = lines[:maxDeviceLogLines]
	}
	for _, line := range lines {
		uc.logger.InfoContext(ctx, "passkit device log", slog.String("message", line))
	}
}

// findPass resolves a serial within the given pass type. Unknown serials and
// pass type mismatches are both ErrPassNotFound; a mismatch is also marked
// ErrUnknownPassType.
func findPass(ctx context.Context, tx shared.Tx, passTypeID, serial string) (*pass.Pass, error) {
	p, err := tx.Passes().FindBySerial(ctx, serial)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPassNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if p.PassTypeID() != passTypeID {
		return nil, errs.Mark(errs.Wrapf(errs.ErrPassNotFound, "pass type %q", passTypeID), errs.ErrUnknownPassType)
	}
	return p, nil
}
