package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Pass errors
	ErrPassNotFound        = errors.New("pass not found")
	ErrUnknownPassType     = errors.New("unknown pass type identifier")
	ErrInvalidScannerCode  = errors.New("invalid scanner code")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrGoogleWalletOff     = errors.New("google wallet is not configured")
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// Device protocol errors
	ErrEmptyPushToken      = errors.New("empty push token")
	ErrPushTokenTooLong    = errors.New("push token exceeds 512 characters")
	ErrRegistrationMissing = errors.New("registration not found")
	ErrInvalidUpdateTag    = errors.New("invalid passesUpdatedSince tag")

	// Scanner errors
	ErrInvalidStampCount = errors.New("invalid stamp count")
	ErrRewardNotReady    = errors.New("reward threshold not reached")

	// Generation stages
	ErrPassGeneration = errors.New("pass generation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
