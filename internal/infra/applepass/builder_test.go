//go:build unit

package applepass_test

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"

	"loyalty-wallet/internal/domain/card"
	"loyalty-wallet/internal/infra/applepass"
	"loyalty-wallet/internal/infra/assets"
	"loyalty-wallet/internal/pkg/config"
	"loyalty-wallet/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mozilla.org/pkcs7"
)

var (
	iconPNG  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 'i'}
	logoPNG  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 'l'}
	stripJPG = []byte{0xFF, 0xD8, 0xFF, 's'}
)

func testIdentity() applepass.Identity {
	return applepass.Identity{
		PassTypeIdentifier: "pass.com.example.loyalty",
		TeamIdentifier:     "ABCDE12345",
		OrganizationName:   "Loyalty Wallet",
		WebServiceURL:      "https://wallet.example.com",
		AuthToken:          "test-passkit-token-0123456789",
	}
}

func testImages() assets.Bundle {
	return assets.Bundle{"icon": iconPNG, "logo": logoPNG, "strip": stripJPG}
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return raw
}

func unzip(t *testing.T, buf []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	require.NoError(t, err)
	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = body
	}
	return files
}

func TestBuilder_Build(t *testing.T) {
	p := loadPKI(t)
	state := card.NewState(card.Snapshot{CardType: "stamp", StampCount: 5, BusinessName: "Bean There"})
	material := applepass.Material{WWDR: p.wwdrPEM, SignerCert: p.certPEM, SignerKey: p.keyPEM}

	buf, err := applepass.NewBuilder(testIdentity()).Build(context.Background(), "u1", state, material, testImages())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(buf), 2)
	assert.Equal(t, []byte{0x50, 0x4B}, buf[:2])

	files := unzip(t, buf)
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	want := []string{
		"icon.png", "icon@2x.png", "logo.png", "logo@2x.png", "manifest.json", "pass.json", "signature",
		"strip.png", "strip@2x.png", "strip@3x.png", "thumbnail.png", "thumbnail@2x.png",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("archive entries mismatch (-want +got):\n%s", diff)
	}

	t.Run("manifest hashes every file", func(t *testing.T) {
		var manifest map[string]string
		require.NoError(t, json.Unmarshal(files["manifest.json"], &manifest))
		assert.Len(t, manifest, len(files)-2)
		for name, digest := range manifest {
			sum := sha1.Sum(files[name]) //nolint:gosec
			assert.Equal(t, hex.EncodeToString(sum[:]), digest, name)
		}
	})

	t.Run("pass.json carries identity and raw user id barcode", func(t *testing.T) {
		var pass applepass.Pass
		require.NoError(t, json.Unmarshal(files["pass.json"], &pass))
		assert.Equal(t, "COFFEEu1", pass.SerialNumber)
		assert.Equal(t, "pass.com.example.loyalty", pass.PassTypeIdentifier)
		assert.Equal(t, "ABCDE12345", pass.TeamIdentifier)
		require.NotNil(t, pass.Barcode)
		assert.Equal(t, "u1", pass.Barcode.Message)
		assert.Equal(t, applepass.BarcodeFormatQR, pass.Barcode.Format)
		assert.Equal(t, "iso-8859-1", pass.Barcode.MessageEncoding)
		require.NotNil(t, pass.StoreCard)
		assert.Equal(t, card.RewardProgressText, pass.StoreCard.PrimaryFields[0].Value)
		assert.Equal(t, "rgb(60,65,76)", pass.BackgroundColor)
		assert.Equal(t, "https://wallet.example.com", pass.WebServiceURL)
	})

	t.Run("signature is a detached PKCS#7 over manifest.json", func(t *testing.T) {
		p7, err := pkcs7.Parse(files["signature"])
		require.NoError(t, err)
		assert.Empty(t, p7.Content)
		assert.Len(t, p7.Certificates, 2)
		p7.Content = files["manifest.json"]
		assert.NoError(t, p7.Verify())
	})
}

func TestBuilder_Build_SigningMaterial(t *testing.T) {
	p := loadPKI(t)
	state := card.NewState(card.Snapshot{CardType: "points", PointsBalance: 120})
	builder := applepass.NewBuilder(testIdentity())

	testCases := []struct {
		name      string
		material  applepass.Material
		errString string
	}{
		{
			name:     "success: DER WWDR certificate",
			material: applepass.Material{WWDR: p.wwdrDER, SignerCert: p.certPEM, SignerKey: p.keyPEM},
		},
		{
			name:     "success: key bundled with certificate",
			material: applepass.Material{WWDR: p.wwdrPEM, SignerCert: append(append([]byte{}, p.certPEM...), p.keyPEM...)},
		},
		{
			name:     "success: encrypted key with passphrase",
			material: applepass.Material{WWDR: p.wwdrPEM, SignerCert: p.certPEM, SignerKey: encryptedKeyPEM(t, p.key, "s3cret"), Passphrase: "s3cret"},
		},
		{
			name:      "error: wrong passphrase",
			material:  applepass.Material{WWDR: p.wwdrPEM, SignerCert: p.certPEM, SignerKey: encryptedKeyPEM(t, p.key, "s3cret"), Passphrase: "nope"},
			errString: "sign: signer key",
		},
		{
			name:      "error: encrypted key without passphrase",
			material:  applepass.Material{WWDR: p.wwdrPEM, SignerCert: p.certPEM, SignerKey: encryptedKeyPEM(t, p.key, "s3cret")},
			errString: "no passphrase configured",
		},
		{
			name:      "error: key does not match certificate",
			material:  applepass.Material{WWDR: p.wwdrPEM, SignerCert: p.certPEM, SignerKey: p.otherKey},
			errString: "signer key does not match signer certificate",
		},
		{
			name:      "error: garbage WWDR",
			material:  applepass.Material{WWDR: []byte("not a cert"), SignerCert: p.certPEM, SignerKey: p.keyPEM},
			errString: "sign: wwdr certificate",
		},
		{
			name:     "success: PKCS#12 bundle",
			material: applepass.Material{WWDR: p.wwdrPEM, SignerCert: readFixture(t, "signer.p12"), Passphrase: "s3cret"},
		},
		{
			name:      "error: PKCS#12 bundle with wrong passphrase",
			material:  applepass.Material{WWDR: p.wwdrPEM, SignerCert: readFixture(t, "signer.p12"), Passphrase: "nope"},
			errString: "sign: signer pkcs12: pkcs12: decryption password incorrect",
		},
		{
			name:     "success: PKCS#12 bundle carrying its chain",
			material: applepass.Material{WWDR: p.wwdrPEM, SignerCert: readFixture(t, "chain.p12"), Passphrase: "s3cret"},
		},
		{
			name:      "error: chained bundle with wrong passphrase",
			material:  applepass.Material{WWDR: p.wwdrPEM, SignerCert: readFixture(t, "chain.p12"), Passphrase: "nope"},
			errString: "decryption password incorrect",
		},
		{
			name:      "error: neither PKCS#12 nor DER",
			material:  applepass.Material{WWDR: p.wwdrPEM, SignerCert: []byte{0x30, 0x01, 0x00}, Passphrase: "x"},
			errString: "sign: signer pkcs12",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := builder.Build(context.Background(), "u1", state, tc.material, testImages())
			if tc.errString == "" {
				require.NoError(t, err)
				assert.Equal(t, byte(0x50), buf[0])
				return
			}
			require.Error(t, err)
			assert.Nil(t, buf)
			assert.True(t, errs.Is(err, errs.ErrPassGeneration))
			assert.Contains(t, err.Error(), tc.errString)
		})
	}
}

func TestBuilder_Build_MissingIcon(t *testing.T) {
	p := loadPKI(t)
	material := applepass.Material{WWDR: p.wwdrPEM, SignerCert: p.certPEM, SignerKey: p.keyPEM}

	_, err := applepass.NewBuilder(testIdentity()).Build(context.Background(), "u1", card.NewState(card.Snapshot{}), material, assets.Bundle{"logo": logoPNG})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate: icon image is required")
}

func TestPass_Validate(t *testing.T) {
	valid := applepass.NewPass(testIdentity(), "u1", card.NewState(card.Snapshot{}))
	require.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(p *applepass.Pass)
		field  string
	}{
		{"serial", func(p *applepass.Pass) { p.SerialNumber = "" }, "serialNumber"},
		{"pass type", func(p *applepass.Pass) { p.PassTypeIdentifier = "" }, "passTypeIdentifier"},
		{"team", func(p *applepass.Pass) { p.TeamIdentifier = "" }, "teamIdentifier"},
		{"store card", func(p *applepass.Pass) { p.StoreCard = nil }, "storeCard"},
		{"barcode", func(p *applepass.Pass) { p.Barcode = nil }, "barcode.message"},
		{"barcode message", func(p *applepass.Pass) { p.Barcode = &applepass.Barcode{Format: applepass.BarcodeFormatQR} }, "barcode.message"},
		{"barcode format", func(p *applepass.Pass) { p.Barcode = &applepass.Barcode{Message: "u1"} }, "barcode.format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errs.Is(err, applepass.ErrInvalidPass))
			assert.Contains(t, err.Error(), "missing "+tc.field)
		})
	}
}

func TestNewPass_OmitsWebServiceWithoutToken(t *testing.T) {
	id := testIdentity()
	id.AuthToken = ""
	p := applepass.NewPass(id, "u1", card.NewState(card.Snapshot{}))
	assert.Empty(t, p.WebServiceURL)
	assert.Empty(t, p.AuthenticationToken)
}

func TestCheckArchive(t *testing.T) {
	assert.NoError(t, applepass.CheckArchive([]byte{0x50, 0x4B, 0x03, 0x04}))

	err := applepass.CheckArchive(nil)
	assert.True(t, errs.Is(err, applepass.ErrInvalidArchive))

	err = applepass.CheckArchive([]byte("<html>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first bytes: 3c 68 74 6d")
}

type fakeFetcher struct {
	objects map[string][]byte
	calls   atomic.Int32
}

func (f *fakeFetcher) FetchAll(_ context.Context, reqs []assets.Request) (assets.Bundle, error) {
	f.calls.Add(1)
	bundle := assets.Bundle{}
	for _, r := range reqs {
		body, ok := f.objects[r.URL]
		if !ok {
			return nil, errs.Newf("asset %s: status 404", r.Name)
		}
		if r.Kind == assets.KindImage {
			if err := assets.ValidateImage(r.Name, body); err != nil {
				return nil, err
			}
		}
		bundle[r.Name] = body
	}
	return bundle, nil
}

func TestService_Generate(t *testing.T) {
	p := loadPKI(t)
	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	objects := func() map[string][]byte {
		return map[string][]byte{
			cfg.Apple.WWDRCertificateURL: p.wwdrPEM,
			cfg.Apple.SignerCertURL:      p.certPEM,
			cfg.Apple.SignerKeyURL:       p.keyPEM,
			cfg.Assets.IconURL:           iconPNG,
			cfg.Assets.LogoURL:           logoPNG,
			cfg.Assets.StripURL:          stripJPG,
		}
	}

	t.Run("success", func(t *testing.T) {
		fetcher := &fakeFetcher{objects: objects()}
		svc := applepass.NewService(cfg, fetcher, logger)

		buf, err := svc.Generate(context.Background(), "u1", 10, "", nil)
		require.NoError(t, err)
		assert.Equal(t, int32(2), fetcher.calls.Load())

		var pass applepass.Pass
		require.NoError(t, json.Unmarshal(unzip(t, buf)["pass.json"], &pass))
		assert.Equal(t, card.RewardReadyText, pass.StoreCard.PrimaryFields[0].Value)
		assert.Equal(t, "stamps", pass.StoreCard.HeaderFields[0].Key)
	})

	t.Run("success: per-card images override defaults", func(t *testing.T) {
		objs := objects()
		objs["https://cdn.example.com/custom-logo.png"] = iconPNG
		fetcher := &fakeFetcher{objects: objs}
		svc := applepass.NewService(cfg, fetcher, logger)

		data := &card.Snapshot{Assets: card.Assets{Logo: "https://cdn.example.com/custom-logo.png"}}
		buf, err := svc.Generate(context.Background(), "u1", 0, "gift", data)
		require.NoError(t, err)
		assert.Equal(t, iconPNG, unzip(t, buf)["logo.png"])
	})

	t.Run("error: html posing as image names the stage and asset", func(t *testing.T) {
		objs := objects()
		objs[cfg.Assets.StripURL] = []byte("<html><body>expired</body></html>")
		svc := applepass.NewService(cfg, &fakeFetcher{objects: objs}, logger)

		_, err := svc.Generate(context.Background(), "u1", 1, "stamp", nil)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPassGeneration))
		assert.Contains(t, err.Error(), "fetch assets: asset strip: invalid image format")
	})

	t.Run("error: missing certificate", func(t *testing.T) {
		objs := objects()
		delete(objs, cfg.Apple.WWDRCertificateURL)
		svc := applepass.NewService(cfg, &fakeFetcher{objects: objs}, logger)

		_, err := svc.Generate(context.Background(), "u1", 1, "stamp", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch signing material: asset wwdr")
	})

	t.Run("error: empty user id", func(t *testing.T) {
		svc := applepass.NewService(cfg, &fakeFetcher{objects: objects()}, logger)
		_, err := svc.Generate(context.Background(), "", 1, "stamp", nil)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestService_ClientCertificate(t *testing.T) {
	p := loadPKI(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		signerCert []byte
		signerKey  []byte
		passphrase string
		chainLen   int
		wantErr    string
	}{
		{name: "success: pem pair", signerCert: p.certPEM, signerKey: p.keyPEM, chainLen: 1},
		{name: "success: pem with intermediate", signerCert: append(bytes.Clone(p.certPEM), p.wwdrPEM...), signerKey: p.keyPEM, chainLen: 2},
		{name: "success: encrypted pem key", signerCert: p.certPEM, signerKey: encryptedKeyPEM(t, p.key, "s3cret"), passphrase: "s3cret", chainLen: 1},
		{name: "success: pkcs12 bundle", signerCert: readFixture(t, "signer.p12"), passphrase: "s3cret", chainLen: 1},
		{name: "error: pem without key", signerCert: p.certPEM, wantErr: "apns client certificate"},
		{name: "error: pkcs12 wrong passphrase", signerCert: readFixture(t, "signer.p12"), passphrase: "nope", wantErr: "decryption password incorrect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			cfg.Apple.SignerKeyPassphrase = tt.passphrase
			objects := map[string][]byte{
				cfg.Apple.WWDRCertificateURL: p.wwdrPEM,
				cfg.Apple.SignerCertURL:      tt.signerCert,
			}
			if tt.signerKey != nil {
				objects[cfg.Apple.SignerKeyURL] = tt.signerKey
			} else {
				cfg.Apple.SignerKeyURL = ""
			}
			svc := applepass.NewService(cfg, &fakeFetcher{objects: objects}, logger)

			cert, err := svc.ClientCertificate(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cert.Leaf)
			assert.Len(t, cert.Certificate, tt.chainLen)
			assert.NotNil(t, cert.PrivateKey)
			if tt.signerKey != nil {
				assert.Equal(t, "Pass Type ID: pass.com.example.loyalty", cert.Leaf.Subject.CommonName)
				assert.True(t, p.key.Equal(cert.PrivateKey))
			}
		})
	}
}
