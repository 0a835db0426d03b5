package commands

import (
	"context"

	"loyalty-wallet/internal/infra/apns"
)

// DeviceNotifier tells registered devices that a pass changed
type DeviceNotifier interface {
	Notify(ctx context.Context, pushTokens []string) (apns.Result, error)
}
