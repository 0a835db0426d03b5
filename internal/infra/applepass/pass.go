package applepass

import (
	"time"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/pkg/errs"
)

const (
	BarcodeFormatQR = "PKBarcodeFormatQR"
	BarcodeEncoding = "iso-8859-1"
)

var ErrInvalidPass = errs.New("invalid pass")

// Identity holds the issuer-level values shared by every pass.
type Identity struct {
	PassTypeIdentifier string
	TeamIdentifier     string
	OrganizationName   string
	WebServiceURL      string
	AuthToken          string
}

type Barcode struct {
	Message         string `json:"message"`
	Format          string `json:"format"`
	MessageEncoding string `json:"messageEncoding"`
	AltText         string `json:"altText,omitempty"`
}

// Pass is the pass.json document.
type Pass struct {
	FormatVersion       int                   `json:"formatVersion"`
	PassTypeIdentifier  string                `json:"passTypeIdentifier"`
	SerialNumber        string                `json:"serialNumber"`
	TeamIdentifier      string                `json:"teamIdentifier"`
	OrganizationName    string                `json:"organizationName"`
	Description         string                `json:"description"`
	LogoText            string                `json:"logoText,omitempty"`
	BackgroundColor     string                `json:"backgroundColor"`
	ForegroundColor     string                `json:"foregroundColor"`
	LabelColor          string                `json:"labelColor"`
	WebServiceURL       string                `json:"webServiceURL,omitempty"`
	AuthenticationToken string                `json:"authenticationToken,omitempty"`
	ExpirationDate      *time.Time            `json:"expirationDate,omitempty"`
	Barcode             *Barcode              `json:"barcode,omitempty"`
	Barcodes            []Barcode             `json:"barcodes,omitempty"`
	StoreCard           *card.StoreCardFields `json:"storeCard,omitempty"`
}

// NewPass lays out pass.json for userID. The barcode carries the raw user
// id, which the scanner resolves without a prefix.
func NewPass(id Identity, userID string, state card.State) Pass {
	d := state.Details
	fields := card.MapFields(state)
	barcode := Barcode{
		Message:         userID,
		Format:          BarcodeFormatQR,
		MessageEncoding: BarcodeEncoding,
		AltText:         userID,
	}

	p := Pass{
		FormatVersion:      1,
		PassTypeIdentifier: id.PassTypeIdentifier,
		SerialNumber:       card.SerialNumber(userID),
		TeamIdentifier:     id.TeamIdentifier,
		OrganizationName:   orElse(id.OrganizationName, d.BusinessName),
		Description:        d.Description,
		LogoText:           d.BusinessName,
		BackgroundColor:    d.Colors.Background,
		ForegroundColor:    d.Colors.Foreground,
		LabelColor:         d.Colors.Label,
		ExpirationDate:     d.ExpiresAt,
		Barcode:            &barcode,
		Barcodes:           []Barcode{barcode},
		StoreCard:          &fields,
	}
	if id.WebServiceURL != "" && id.AuthToken != "" {
		p.WebServiceURL = id.WebServiceURL
		p.AuthenticationToken = id.AuthToken
	}
	return p
}

// Validate rejects a pass missing any field Wallet needs to accept it.
func (p Pass) Validate() error {
	missing := func(field string) error {
		return errs.Mark(errs.Newf("pass.json: missing %s", field), ErrInvalidPass)
	}
	switch {
	case p.SerialNumber == "":
		return missing("serialNumber")
	case p.PassTypeIdentifier == "":
		return missing("passTypeIdentifier")
	case p.TeamIdentifier == "":
		return missing("teamIdentifier")
	case p.StoreCard == nil:
		return missing("storeCard")
	case p.Barcode == nil || p.Barcode.Message == "":
		return missing("barcode.message")
	case p.Barcode.Format == "":
		return missing("barcode.format")
	}
	return nil
}

func orElse(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
