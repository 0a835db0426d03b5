package assets

import (
	"bytes"
	"fmt"

	"loyalty-wallet/internal/pkg/errs"
)

var (
	ErrInvalidImage  = errs.New("invalid image format")
	ErrEmptyAsset    = errs.New("empty asset body")
	ErrFetchStatus   = errs.New("unexpected fetch status")
	ErrAssetTooLarge = errs.New("asset too large")
)

var (
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
)

// ValidateImage rejects buffers that are not PNG or JPEG. The usual culprit
// is an HTML error page served by an expired CDN link.
func ValidateImage(name string, buf []byte) error {
	if len(buf) == 0 {
		return errs.Mark(errs.Newf("asset %s: empty body", name), ErrEmptyAsset)
	}
	if bytes.HasPrefix(buf, pngSignature) || bytes.HasPrefix(buf, jpegSignature) {
		return nil
	}
	return errs.Mark(
		errs.Newf("asset %s: invalid image format, expected PNG or JPEG (first bytes: %s)", name, HexPrefix(buf, 8)),
		ErrInvalidImage,
	)
}

// HexPrefix renders up to n leading bytes as space separated hex.
func HexPrefix(buf []byte, n int) string {
	if len(buf) < n {
		n = len(buf)
	}
	return fmt.Sprintf("% x", buf[:n])
}
