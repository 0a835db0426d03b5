package apns

import (
	"context"
	"crypto/tls"
	"log/slog"
	"sync/atomic"

	"loyalty-wallet/internal/pkg/errs"

	"github.com/sideshow/apns2"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentPushes = 8

// Wallet refetches the pass on any push; the payload carries nothing.
var emptyPayload = []byte("{}")

// CertificateSource yields the client certificate for one push batch.
type CertificateSource interface {
	ClientCertificate(ctx context.Context) (tls.Certificate, error)
}

type Result struct {
	Sent   int
	Failed int
}

// Notifier sends the empty pass-update push Wallet expects. The pass type
// identifier is the topic and the pass signer certificate authenticates.
type Notifier struct {
	host      string
	topic     string
	certs     CertificateSource
	newClient func(tls.Certificate) *apns2.Client
	logger    *slog.Logger
}

type Option func(*Notifier)

// WithClientFactory replaces the apns2 client construction. The notifier
// still points the client at its configured host.
func WithClientFactory(f func(tls.Certificate) *apns2.Client) Option {
	return func(n *Notifier) { n.newClient = f }
}

func NewNotifier(host, topic string, certs CertificateSource, logger *slog.Logger, opts ...Option) *Notifier {
	n := &Notifier{
		host:      host,
		topic:     topic,
		certs:     certs,
		newClient: apns2.NewClient,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify pushes to every token. Per-token failures are logged and counted;
// only a missing certificate fails the batch.
func (n *Notifier) Notify(ctx context.Context, pushTokens []string) (Result, error) {
	if len(pushTokens) == 0 {
		return Result{}, nil
	}
	cert, err := n.certs.ClientCertificate(ctx)
	if err != nil {
		return Result{}, errs.Wrap(err, "load apns certificate")
	}
	client := n.newClient(cert)
	client.Host = n.host
	defer client.HTTPClient.CloseIdleConnections()

	var sent, failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPushes)
	for _, token := range pushTokens {
		g.Go(func() error {
			if err := n.push(gctx, client, token); err != nil {
				failed.Add(1)
				n.logger.WarnContext(gctx, "apns push failed",
					slog.String("token", redact(token)),
					slog.String("error", err.Error()))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Sent: int(sent.Load()), Failed: int(failed.Load())}
	n.logger.InfoContext(ctx, "apns batch sent",
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed))
	return res, nil
}

func (n *Notifier) push(ctx context.Context, client *apns2.Client, token string) error {
	res, err := client.PushWithContext(ctx, &apns2.Notification{
		DeviceToken: token,
		Topic:       n.topic,
		Payload:     emptyPayload,
	})
	if err != nil {
		return errs.Wrap(err, "push")
	}
	if !res.Sent() {
		return errs.Newf("status %d: %s", res.StatusCode, res.Reason)
	}
	return nil
}

func redact(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}
