package applepass

import (
	"context"
	"encoding/json"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/infra/assets"
	"loyalty-wallet/internal/pkg/errs"
)

// Stages reported on failure.
const (
	StageFetchMaterial = "fetch signing material"
	StageFetchAssets   = "fetch assets"
	StageValidate      = "validate"
	StageSign          = "sign"
	StagePackage       = "package"
)

type Builder struct {
	identity Identity
}

func NewBuilder(identity Identity) *Builder {
	return &Builder{identity: identity}
}

// Build assembles, signs and zips a pass. Nothing is returned unless the
// archive passed its integrity check.
func (b *Builder) Build(ctx context.Context, userID string, state card.State, material Material, images assets.Bundle) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pass := NewPass(b.identity, userID, state)
	if err := pass.Validate(); err != nil {
		return nil, errs.Stage(err, StageValidate)
	}
	passJSON, err := json.Marshal(pass)
	if err != nil {
		return nil, errs.Stage(errs.Wrap(err, "marshal pass.json"), StageValidate)
	}
	files, err := bundleFiles(passJSON, images)
	if err != nil {
		return nil, errs.Stage(err, StageValidate)
	}

	manifest, err := buildManifest(files)
	if err != nil {
		return nil, errs.Stage(errs.Wrap(err, "marshal manifest.json"), StageSign)
	}
	s, err := parseMaterial(material)
	if err != nil {
		return nil, errs.Stage(err, StageSign)
	}
	signature, err := s.sign(manifest)
	if err != nil {
		return nil, errs.Stage(err, StageSign)
	}
	files["manifest.json"] = manifest
	files["signature"] = signature

	buf, err := archive(files)
	if err != nil {
		return nil, errs.Stage(err, StagePackage)
	}
	if err := CheckArchive(buf); err != nil {
		return nil, errs.Stage(err, StagePackage)
	}
	return buf, nil
}
