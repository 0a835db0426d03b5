package googlewallet

import (
	"context"
	"log/slog"
	"net/http"

	"loyalty-wallet/internal/pkg/errs"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/walletobjects/v1"
)

var ErrWalletAPI = errs.New("google wallet api error")

const (
	collectionClass  = "loyaltyClass"
	collectionObject = "loyaltyObject"
)

type walletAPI struct {
	svc    *walletobjects.Service
	logger *slog.Logger
}

func (a *walletAPI) ensureClass(ctx context.Context, class *walletobjects.LoyaltyClass) error {
	return a.ensure(ctx, collectionClass, class.Id,
		func() error {
			_, err := a.svc.Loyaltyclass.Get(class.Id).Context(ctx).Do()
			return err
		},
		func() error {
			_, err := a.svc.Loyaltyclass.Insert(class).Context(ctx).Do()
			return err
		},
	)
}

func (a *walletAPI) ensureObject(ctx context.Context, object *walletobjects.LoyaltyObject) error {
	return a.ensure(ctx, collectionObject, object.Id,
		func() error {
			_, err := a.svc.Loyaltyobject.Get(object.Id).Context(ctx).Do()
			return err
		},
		func() error {
			_, err := a.svc.Loyaltyobject.Insert(object).Context(ctx).Do()
			return err
		},
	)
}

// ensure makes sure resource id exists in collection, inserting it on 404.
// Auth and request errors are fatal. Throttling, server errors and transport
// failures are logged and treated as "exists" because the save JWT embeds
// the full definition anyway.
func (a *walletAPI) ensure(ctx context.Context, collection, id string, get, insert func() error) error {
	err := get()
	switch status := statusOf(err); {
	case err == nil:
		return nil
	case isCredentialError(err):
		return errs.Wrapf(err, "%s get %s", collection, id)
	case status == http.StatusNotFound:
		return a.insert(ctx, collection, id, insert)
	case isFatal(status):
		return apiError(collection, id, "get", err)
	default:
		a.lenient(ctx, collection, id, "get", status, err)
		return nil
	}
}

func (a *walletAPI) insert(ctx context.Context, collection, id string, insert func() error) error {
	err := insert()
	switch status := statusOf(err); {
	case err == nil:
		a.logger.InfoContext(ctx, "google wallet resource created",
			slog.String("collection", collection), slog.String("id", id))
		return nil
	case isCredentialError(err):
		return errs.Wrapf(err, "%s insert %s", collection, id)
	case status == http.StatusConflict:
		// Created concurrently by another request.
		return nil
	case status >= 400 && status < 500 && status != http.StatusTooManyRequests:
		return apiError(collection, id, "insert", err)
	default:
		a.lenient(ctx, collection, id, "insert", status, err)
		return nil
	}
}

func (a *walletAPI) lenient(ctx context.Context, collection, id, op string, status int, err error) {
	attrs := []any{
		slog.String("collection", collection),
		slog.String("id", id),
		slog.String("op", op),
		slog.String("error", err.Error()),
	}
	if status != 0 {
		attrs = append(attrs, slog.Int("status", status))
	}
	a.logger.WarnContext(ctx, "google wallet api call failed, assuming resource exists", attrs...)
}

// statusOf is the HTTP status of an API reply, or 0 when no reply arrived.
func statusOf(err error) int {
	var apiErr *googleapi.Error
	if errs.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

// isCredentialError reports a rejected token exchange.
func isCredentialError(err error) bool {
	var retrieve *oauth2.RetrieveError
	return errs.As(err, &retrieve)
}

func isFatal(status int) bool {
	return status == http.StatusBadRequest || status == http.StatusUnauthorized || status == http.StatusForbidden
}

func apiError(collection, id, op string, err error) error {
	return errs.Mark(errs.Wrapf(err, "%s %s %s", collection, op, id), ErrWalletAPI)
}
