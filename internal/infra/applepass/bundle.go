package applepass

import (
	"archive/zip"
	"bytes"
	"crypto/sha1" //nolint:gosec // manifest.json digests are SHA-1 by format
	"encoding/hex"
	"encoding/json"
	"slices"

	"loyalty-wallet/internal/infra/assets"
	"loyalty-wallet/internal/pkg/errs"
)

var ErrInvalidArchive = errs.New("invalid pkpass archive")

var zipSignature = []byte{0x50, 0x4B}

// imageVariants lists the bundle files produced from each source image.
var imageVariants = map[string][]string{
	"icon":  {"icon.png", "icon@2x.png", "thumbnail.png", "thumbnail@2x.png"},
	"logo":  {"logo.png", "logo@2x.png"},
	"strip": {"strip.png", "strip@2x.png", "strip@3x.png"},
}

// bundleFiles returns pass.json plus every image file keyed by archive name.
func bundleFiles(passJSON []byte, images assets.Bundle) (map[string][]byte, error) {
	if len(images["icon"]) == 0 {
		return nil, errs.New("icon image is required")
	}
	files := map[string][]byte{"pass.json": passJSON}
	for source, names := range imageVariants {
		buf, ok := images[source]
		if !ok {
			continue
		}
		for _, name := range names {
			files[name] = buf
		}
	}
	return files, nil
}

func buildManifest(files map[string][]byte) ([]byte, error) {
	manifest := make(map[string]string, len(files))
	for name, buf := range files {
		sum := sha1.Sum(buf) //nolint:gosec
		manifest[name] = hex.EncodeToString(sum[:])
	}
	return json.Marshal(manifest)
}

// archive zips files in name order so identical input yields identical
// entries.
func archive(files map[string][]byte) ([]byte, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return nil, errs.Wrapf(err, "create %s", name)
		}
		if _, err := w.Write(files[name]); err != nil {
			return nil, errs.Wrapf(err, "write %s", name)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errs.Wrap(err, "close archive")
	}
	return buf.Bytes(), nil
}

// CheckArchive fails unless buf looks like a ZIP file.
func CheckArchive(buf []byte) error {
	if len(buf) == 0 {
		return errs.Mark(errs.New("pkpass is empty"), ErrInvalidArchive)
	}
	if !bytes.HasPrefix(buf, zipSignature) {
		return errs.Mark(
			errs.Newf("pkpass does not start with a ZIP signature (first bytes: %s)", assets.HexPrefix(buf, 4)),
			ErrInvalidArchive,
		)
	}
	return nil
}
