package applepass

import (
	"bytes"
	"context"
	"crypto/tls"
	"log/slog"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/infra/assets"
	"loyalty-wallet/internal/pkg/config"
	"loyalty-wallet/internal/pkg/errs"

	"github.com/sideshow/apns2/certificate"
	"golang.org/x/sync/errgroup"
)

// Fetcher is the asset loader the service depends on.
type Fetcher interface {
	FetchAll(ctx context.Context, reqs []assets.Request) (assets.Bundle, error)
}

// Service fetches signing material and images per call and builds the pass.
type Service struct {
	builder *Builder
	fetcher Fetcher
	apple   config.AppleConfig
	images  config.AssetsConfig
	logger  *slog.Logger
}

func NewService(cfg config.Config, fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{
		builder: NewBuilder(Identity{
			PassTypeIdentifier: cfg.Apple.PassTypeIdentifier,
			TeamIdentifier:     cfg.Apple.TeamIdentifier,
			OrganizationName:   cfg.Apple.OrganizationName,
			WebServiceURL:      cfg.Apple.WebServiceURL,
			AuthToken:          cfg.PassKit.AuthToken,
		}),
		fetcher: fetcher,
		apple:   cfg.Apple,
		images:  cfg.Assets,
		logger:  logger,
	}
}

// Generate returns the .pkpass bytes for userID. cardData may be nil, in
// which case a default card of cardType is issued.
func (s *Service) Generate(ctx context.Context, userID string, stampCount int, cardType string, cardData *card.Snapshot) ([]byte, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	var snap card.Snapshot
	if cardData != nil {
		snap = *cardData
	}
	snap.StampCount = stampCount
	if cardType != "" {
		snap.CardType = cardType
	}
	state := card.NewState(snap)

	var (
		material Material
		images   assets.Bundle
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle, err := s.fetcher.FetchAll(gctx, s.materialRequests())
		if err != nil {
			return errs.Stage(err, StageFetchMaterial)
		}
		material = Material{
			WWDR:       bundle["wwdr"],
			SignerCert: bundle["signerCert"],
			SignerKey:  bundle["signerKey"],
			Passphrase: s.apple.SignerKeyPassphrase,
		}
		return nil
	})
	g.Go(func() error {
		bundle, err := s.fetcher.FetchAll(gctx, s.imageRequests(state.Details.Assets))
		if err != nil {
			return errs.Stage(err, StageFetchAssets)
		}
		images = bundle
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	buf, err := s.builder.Build(ctx, userID, state, material, images)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "apple pass generated",
		slog.String("serial", card.SerialNumber(userID)),
		slog.String("cardType", string(state.Type())),
		slog.Int("bytes", len(buf)))
	return buf, nil
}

func (s *Service) materialRequests() []assets.Request {
	reqs := []assets.Request{
		{Name: "wwdr", URL: s.apple.WWDRCertificateURL, Kind: assets.KindBinary},
		{Name: "signerCert", URL: s.apple.SignerCertURL, Kind: assets.KindBinary},
	}
	if s.apple.SignerKeyURL != "" {
		reqs = append(reqs, assets.Request{Name: "signerKey", URL: s.apple.SignerKeyURL, Kind: assets.KindBinary})
	}
	return reqs
}

// imageRequests prefers per-card images over the configured defaults.
func (s *Service) imageRequests(a card.Assets) []assets.Request {
	reqs := []assets.Request{
		{Name: "icon", URL: orElse(a.Icon, s.images.IconURL), Kind: assets.KindImage},
		{Name: "logo", URL: orElse(a.Logo, s.images.LogoURL), Kind: assets.KindImage},
	}
	if strip := orElse(a.Strip, s.images.StripURL); strip != "" {
		reqs = append(reqs, assets.Request{Name: "strip", URL: strip, Kind: assets.KindImage})
	}
	return reqs
}

// ClientCertificate returns the pass signer as a TLS client certificate,
// which is what APNs accepts for pass update pushes. PEM material keeps any
// intermediates that follow the signer certificate.
func (s *Service) ClientCertificate(ctx context.Context) (tls.Certificate, error) {
	bundle, err := s.fetcher.FetchAll(ctx, s.materialRequests())
	if err != nil {
		return tls.Certificate{}, err
	}
	signerCert, signerKey := bundle["signerCert"], bundle["signerKey"]

	if isPEM(signerCert) {
		pemBundle := append(append(bytes.Clone(signerCert), '\n'), signerKey...)
		cert, err := certificate.FromPemBytes(pemBundle, s.apple.SignerKeyPassphrase)
		if err != nil {
			return tls.Certificate{}, errs.Wrap(err, "apns client certificate")
		}
		return cert, nil
	}

	cert, key, err := parseSigner(Material{
		SignerCert: signerCert,
		SignerKey:  signerKey,
		Passphrase: s.apple.SignerKeyPassphrase,
	})
	if err != nil {
		return tls.Certificate{}, err
	}
	return tls.Certificate{
		Certificate: [][]byte{cert.Raw},
		PrivateKey:  key,
		Leaf:        cert,
	}, nil
}
