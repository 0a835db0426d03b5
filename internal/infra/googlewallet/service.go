package googlewallet

import (
	"context"
	"log/slog"
	"net/http"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/infra/assets"
	"loyalty-wallet/internal/pkg/clock"
	"loyalty-wallet/internal/pkg/config"
	"loyalty-wallet/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/walletobjects/v1"
)

const (
	SaveURLPrefix = "https://pay.google.com/gp/v/save/"
	walletScope   = "https://www.googleapis.com/auth/wallet_object.issuer"
)

// Stages reported on failure.
const (
	StageFetchCredentials = "fetch credentials"
	StageEnsureClass      = "ensure class"
	StageEnsureObject     = "ensure object"
	StageSign             = "sign"
)

type Fetcher interface {
	FetchAll(ctx context.Context, reqs []assets.Request) (assets.Bundle, error)
}

// Service issues save-to-wallet links. Credentials and the authorized client
// are built per call; nothing is shared between calls.
type Service struct {
	cfg     config.GoogleConfig
	logoURL string
	fetcher Fetcher
	base    *http.Client
	clock   clock.Clock
	logger  *slog.Logger
}

type Option func(*Service)

// WithHTTPClient sets the client used for token exchange and API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.base = c }
}

func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func NewService(cfg config.Config, fetcher Fetcher, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		cfg:     cfg.Google,
		logoURL: cfg.Assets.LogoURL,
		fetcher: fetcher,
		base:    http.DefaultClient,
		clock:   &clock.RealClock{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Enabled() bool {
	return s.cfg.Configured()
}

// Generate ensures the class and object exist and returns the save URL.
func (s *Service) Generate(ctx context.Context, userID string, stampCount int, cardType string, cardData *card.Snapshot) (string, error) {
	if !s.cfg.Configured() {
		return "", errs.ErrGoogleWalletOff
	}
	if userID == "" {
		return "", errs.ErrInvalidUserID
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

	raw, err := s.credentials(ctx)
	if err != nil {
		return "", errs.Stage(err, StageFetchCredentials)
	}
	conf, err := google.JWTConfigFromJSON(raw, walletScope)
	if err != nil {
		return "", errs.Stage(errs.Wrap(err, "parse service account"), StageFetchCredentials)
	}

	wallet, err := walletobjects.NewService(ctx,
		option.WithHTTPClient(conf.Client(context.WithValue(ctx, oauth2.HTTPClient, s.base))),
		option.WithEndpoint(s.cfg.APIEndpoint),
	)
	if err != nil {
		return "", errs.Stage(errs.Wrap(err, "wallet objects client"), StageFetchCredentials)
	}
	api := &walletAPI{svc: wallet, logger: s.logger}

	classID := ClassID(s.cfg.IssuerID, s.cfg.ClassSuffix, state.Type())
	class := newClass(classID, state, orElse(state.Details.Assets.Logo, s.logoURL))
	if err := api.ensureClass(ctx, class); err != nil {
		return "", errs.Stage(err, StageEnsureClass)
	}

	object := newObject(ObjectID(s.cfg.IssuerID, userID), classID, userID, stampCount, state)
	if err := api.ensureObject(ctx, object); err != nil {
		return "", errs.Stage(err, StageEnsureObject)
	}

	token, err := s.sign(conf, class, object)
	if err != nil {
		return "", errs.Stage(err, StageSign)
	}

	s.logger.InfoContext(ctx, "google wallet pass generated",
		slog.String("objectId", object.Id),
		slog.String("classId", classID))
	return SaveURLPrefix + token, nil
}

func (s *Service) credentials(ctx context.Context) ([]byte, error) {
	if s.cfg.CredentialsJSON != "" {
		return []byte(s.cfg.CredentialsJSON), nil
	}
	bundle, err := s.fetcher.FetchAll(ctx, []assets.Request{
		{Name: "googleCredentials", URL: s.cfg.CredentialsURL, Kind: assets.KindBinary},
	})
	if err != nil {
		return nil, err
	}
	return bundle["googleCredentials"], nil
}

func (s *Service) sign(conf *oauthjwt.Config, class *walletobjects.LoyaltyClass, object *walletobjects.LoyaltyObject) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(conf.PrivateKey)
	if err != nil {
		return "", errs.Wrap(err, "parse service account key")
	}

	origins := s.cfg.Origins
	if origins == nil {
		origins = []string{}
	}
	claims := jwt.MapClaims{
		"iss":     conf.Email,
		"aud":     "google",
		"typ":     "savetowallet",
		"iat":     s.clock.Now().Unix(),
		"origins": origins,
		"payload": map[string]any{
			"loyaltyClasses": []*walletobjects.LoyaltyClass{class},
			"loyaltyObjects": []*walletobjects.LoyaltyObject{object},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if conf.PrivateKeyID != "" {
		token.Header["kid"] = conf.PrivateKeyID
	}
	signed, err := token.SignedString(key)
	if err != nil {
		return "", errs.Wrap(err, "sign save jwt")
	}
	return signed, nil
}

func orElse(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
