package api

import (
	"net/http"

	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/handler/httperr"
	"loyalty-wallet/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errStaffMissing = errs.New("staff identity missing from context")

// abortWithError maps domain errors to status codes. Anything unknown is a
// 500 with a generic message.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrPassNotFound), errs.Is(err, errs.ErrRegistrationMissing):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.MsgNotFound, nil)
	case errs.Is(err, errs.ErrInvalidUserID),
		errs.Is(err, errs.ErrEmptyPushToken),
		errs.Is(err, errs.ErrPushTokenTooLong),
		errs.Is(err, errs.ErrInvalidUpdateTag),
		errs.Is(err, errs.ErrInvalidScannerCode),
		errs.Is(err, errs.ErrInvalidStampCount),
		errs.Is(err, errs.ErrUnsupportedPlatform),
		errs.Is(err, device.ErrInvalidDeviceID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrRewardNotReady):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.Is(err, errs.ErrGoogleWalletOff):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, err.Error(), nil)
	case errs.Is(err, errs.ErrPassGeneration):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Pass generation failed: "+err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
	}
}
