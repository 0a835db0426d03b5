package usecase

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/domain/device"
	"loyalty-wallet/internal/domain/pass"
	"loyalty-wallet/internal/domain/platform"
	"loyalty-wallet/internal/infra"
	"loyalty-wallet/internal/pkg/clock"
	"loyalty-wallet/internal/pkg/config"
	"loyalty-wallet/internal/pkg/errs"
	"loyalty-wallet/internal/pkg/metrics"
	"loyalty-wallet/internal/usecase/shared"
)

const (
	PKPassMimeType  = "application/vnd.apple.pkpass"
	SaveURLMimeType = "text/uri-list"
	ResultTypePWA   = "pwa"

	// ActionReissue tags update records written when a re-issued card
	// changes design.
	ActionReissue = "reissue"
)

type AppleGenerator interface {
	Generate(ctx context.Context, userID string, stampCount int, cardType string, cardData *card.Snapshot) ([]byte, error)
}

type GoogleGenerator interface {
	Enabled() bool
	Generate(ctx context.Context, userID string, stampCount int, cardType string, cardData *card.Snapshot) (string, error)
}

type PassRequest struct {
	UserID     string
	StampCount int
	CardType   string
	CardData   *card.Snapshot
	Platform   platform.Platform
	UserAgent  string
	TemplateID string
}

// PassResult is the artifact for one platform. Data holds base64 pkpass bytes
// for ios and the save URL for android; URL is set for the pwa fallback.
type PassResult struct {
	Platform platform.Platform
	Type     string
	Data     string
	MimeType string
	FileName string
	URL      string
}

type PassGenerator interface {
	GeneratePassForPlatform(ctx context.Context, req PassRequest) (*PassResult, error)
	// ApplePass returns raw .pkpass bytes and the serial number they carry.
	ApplePass(ctx context.Context, req PassRequest) ([]byte, string, error)
	// RenderStoredPass rebuilds the .pkpass of an already issued card without
	// touching its stored record.
	RenderStoredPass(ctx context.Context, userID string, snap card.Snapshot) ([]byte, error)
}

type passGeneratorImpl struct {
	apple      AppleGenerator
	google     GoogleGenerator
	uow        shared.UnitOfWork
	clock      clock.Clock
	passTypeID string
	pwaBaseURL string
	logger     *slog.Logger
}

func NewPassGenerator(
	apple AppleGenerator,
	google GoogleGenerator,
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) PassGenerator {
	return &passGeneratorImpl{
		apple:      apple,
		google:     google,
		uow:        uow,
		clock:      clk,
		passTypeID: cfg.Apple.PassTypeIdentifier,
		pwaBaseURL: strings.TrimRight(cfg.PWA.BaseURL, "/"),
		logger:     logger,
	}
}

func (g *passGeneratorImpl) GeneratePassForPlatform(ctx context.Context, req PassRequest) (*PassResult, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		return nil, errs.ErrInvalidUserID
	}

	target := platform.Resolve(req.Platform, req.UserAgent)
	googleEnabled := g.google.Enabled() && (req.CardData == nil || req.CardData.WalletEnabled())

	if target == platform.PWA || platform.ShouldUsePWAFallback(target, googleEnabled) {
		g.logger.InfoContext(ctx, "serving pwa fallback",
			slog.String("userId", req.UserID),
			slog.String("detected", target.String()))
		return g.pwaResult(req), nil
	}

	switch target {
	case platform.IOS:
		buf, serial, err := g.ApplePass(ctx, req)
		if err != nil {
			return nil, err
		}
		return &PassResult{
			Platform: platform.IOS,
			Data:     base64.StdEncoding.EncodeToString(buf),
			MimeType: PKPassMimeType,
			FileName: serial + ".pkpass",
		}, nil
	default:
		req, err := g.resolve(ctx, req)
		if err != nil {
			return nil, err
		}
		start := g.clock.Now()
		saveURL, err := g.google.Generate(ctx, req.UserID, req.StampCount, req.CardType, req.CardData)
		g.observe(platform.Android, start, err)
		if err != nil {
			return nil, err
		}
		if err := g.record(ctx, req); err != nil {
			return nil, err
		}
		return &PassResult{
			Platform: platform.Android,
			Data:     saveURL,
			MimeType: SaveURLMimeType,
		}, nil
	}
}

func (g *passGeneratorImpl) ApplePass(ctx context.Context, req PassRequest) ([]byte, string, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		return nil, "", errs.ErrInvalidUserID
	}
	req, err := g.resolve(ctx, req)
	if err != nil {
		return nil, "", err
	}

	start := g.clock.Now()
	buf, err := g.apple.Generate(ctx, req.UserID, req.StampCount, req.CardType, req.CardData)
	g.observe(platform.IOS, start, err)
	if err != nil {
		return nil, "", err
	}
	if err := g.record(ctx, req); err != nil {
		return nil, "", err
	}
	return buf, card.SerialNumber(req.UserID), nil
}

func (g *passGeneratorImpl) RenderStoredPass(ctx context.Context, userID string, snap card.Snapshot) ([]byte, error) {
	start := g.clock.Now()
	buf, err := g.apple.Generate(ctx, userID, snap.StampCount, card.ParseType(snap.CardType).String(), &snap)
	g.observe(platform.IOS, start, err)
	return buf, err
}

// resolve fills req with the state the artifact must show. A card that was
// issued before keeps its stamp and reward counters, and keeps its stored
// design unless the request submits one.
func (g *passGeneratorImpl) resolve(ctx context.Context, req PassRequest) (PassRequest, error) {
	var stored *pass.Pass
	err := g.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Passes().FindBySerial(ctx, card.SerialNumber(req.UserID))
		stored = p
		return err
	})
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return req, errs.Mark(errs.Wrap(err, "load issued pass"), errs.ErrDatabaseOperationFailed)
	}

	if stored == nil {
		req.CardType = card.ParseType(req.CardType).String()
		return req, nil
	}
	snap := submittedDesign(req, stored.Snapshot()).WithCountersFrom(stored.Snapshot())
	snap.CardType = card.ParseType(snap.CardType).String()
	req.CardData = &snap
	req.CardType = snap.CardType
	req.StampCount = snap.StampCount
	return req, nil
}

// submittedDesign is the design a request asks for on top of stored.
func submittedDesign(req PassRequest, stored card.Snapshot) card.Snapshot {
	design := stored
	if req.CardData != nil {
		design = *req.CardData
		if design.CardType == "" {
			design.CardType = stored.CardType
		}
	}
	if req.CardType != "" {
		design.CardType = req.CardType
	}
	return design
}

// record stores the issued card so the device protocol can serve it later.
// Re-issuing an existing card only refreshes its design; when that changes
// the stored state an update record is appended for registered devices.
func (g *passGeneratorImpl) record(ctx context.Context, req PassRequest) error {
	var snap card.Snapshot
	if req.CardData != nil {
		snap = *req.CardData
	}
	snap.StampCount = req.StampCount
	snap.CardType = req.CardType

	now := g.clock.Now()
	p, err := pass.NewPass(req.UserID, g.passTypeID, snap, now)
	if err != nil {
		return err
	}

	var reissued bool
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, created, err := tx.Passes().Create(ctx, p)
		if err != nil || created {
			return err
		}
		next, changed := stored.Reissue(snap, now)
		if !changed {
			return nil
		}
		if err := tx.Passes().UpdateSnapshot(ctx, next); err != nil {
			return err
		}
		reissued = true
		return tx.Updates().Append(ctx, device.NewPassUpdate(stored.ID(), map[string]any{
			"action":   ActionReissue,
			"cardType": next.Snapshot().CardType,
		}, now))
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "record issued pass"), errs.ErrDatabaseOperationFailed)
	}
	if reissued {
		g.logger.InfoContext(ctx, "card design updated on reissue",
			slog.String("serialNumber", p.SerialNumber()))
	}
	return nil
}

func (g *passGeneratorImpl) pwaResult(req PassRequest) *PassResult {
	var b strings.Builder
	b.WriteString(g.pwaBaseURL + "/cards/" + url.PathEscape(req.UserID))
	b.WriteString("?userId=" + url.QueryEscape(req.UserID))
	b.WriteString("&cardType=" + url.QueryEscape(card.ParseType(req.CardType).String()))
	if req.TemplateID != "" {
		b.WriteString("&template=" + url.QueryEscape(req.TemplateID))
	}
	return &PassResult{
		Platform: platform.PWA,
		Type:     ResultTypePWA,
		URL:      b.String(),
	}
}

func (g *passGeneratorImpl) observe(p platform.Platform, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.RecordPassGeneration(p.String(), status, g.clock.Now().Sub(start).Seconds())
}
