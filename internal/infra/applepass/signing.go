package applepass

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"loyalty-wallet/internal/pkg/errs"

	"go.mozilla.org/pkcs7"
	"golang.org/x/crypto/pkcs12"
)

// Material is the Apple signing material of one generation call.
// SignerCert is PEM, DER or PKCS#12. SignerKey may be empty when the key is
// bundled with the certificate, and may be an encrypted PEM block.
type Material struct {
	WWDR       []byte
	SignerCert []byte
	SignerKey  []byte
	Passphrase string
}

type signer struct {
	cert *x509.Certificate
	key  crypto.PrivateKey
	wwdr *x509.Certificate
}

func parseMaterial(m Material) (*signer, error) {
	wwdr, err := parseCertificate(m.WWDR)
	if err != nil {
		return nil, errs.Wrap(err, "wwdr certificate")
	}

	cert, key, err := parseSigner(m)
	if err != nil {
		return nil, err
	}
	if !keyMatches(cert, key) {
		return nil, errs.New("signer key does not match signer certificate")
	}
	return &signer{cert: cert, key: key, wwdr: wwdr}, nil
}

func parseSigner(m Material) (*x509.Certificate, crypto.PrivateKey, error) {
	if !isPEM(m.SignerCert) {
		cert, key, p12Err := decodeBundle(m.SignerCert, m.Passphrase)
		if p12Err == nil {
			return cert, key, nil
		}
		// neither a bundle nor a bare DER certificate: the bundle error is the useful one
		if _, derErr := x509.ParseCertificate(m.SignerCert); derErr != nil {
			return nil, nil, errs.Wrap(p12Err, "signer pkcs12")
		}
	}

	cert, err := parseCertificate(m.SignerCert)
	if err != nil {
		return nil, nil, errs.Wrap(err, "signer certificate")
	}

	keyPEM := m.SignerKey
	if len(keyPEM) == 0 {
		keyPEM = m.SignerCert
	}
	key, err := parsePrivateKey(keyPEM, m.Passphrase)
	if err != nil {
		return nil, nil, errs.Wrap(err, "signer key")
	}
	return cert, key, nil
}

// decodeBundle reads a PKCS#12 signer bundle. Bundles exported with their
// chain hold more than one certificate; the leaf is the one matching the key.
func decodeBundle(raw []byte, passphrase string) (*x509.Certificate, crypto.PrivateKey, error) {
	key, cert, err := pkcs12.Decode(raw, passphrase)
	if err == nil {
		return cert, key, nil
	}
	if errs.Is(err, pkcs12.ErrIncorrectPassword) {
		return nil, nil, err
	}

	blocks, pemErr := pkcs12.ToPEM(raw, passphrase)
	if pemErr != nil {
		return nil, nil, err
	}
	var certs []*x509.Certificate
	for _, block := range blocks {
		switch block.Type {
		case "CERTIFICATE":
			c, cerr := x509.ParseCertificate(block.Bytes)
			if cerr != nil {
				return nil, nil, errs.Wrap(cerr, "bundled certificate")
			}
			certs = append(certs, c)
		case "PRIVATE KEY":
			if key, err = parseBundledKey(block.Bytes); err != nil {
				return nil, nil, err
			}
		}
	}
	if key == nil {
		return nil, nil, errs.New("bundle holds no private key")
	}
	for _, c := range certs {
		if keyMatches(c, key) {
			return c, key, nil
		}
	}
	return nil, nil, errs.New("bundle holds no certificate matching its key")
}

// parseBundledKey reads a key block from pkcs12.ToPEM, which labels PKCS#1
// and SEC 1 encodings alike as "PRIVATE KEY".
func parseBundledKey(der []byte) (crypto.PrivateKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, errs.Wrap(err, "bundled key")
	}
	return key, nil
}

func parseCertificate(raw []byte) (*x509.Certificate, error) {
	if len(raw) == 0 {
		return nil, errs.New("empty certificate")
	}
	if !isPEM(raw) {
		cert, err := x509.ParseCertificate(raw)
		if err != nil {
			return nil, errs.Wrap(err, "parse DER certificate")
		}
		return cert, nil
	}

	rest := raw
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, errs.New("no CERTIFICATE block found")
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, errs.Wrap(err, "parse PEM certificate")
		}
		return cert, nil
	}
}

func parsePrivateKey(raw []byte, passphrase string) (crypto.PrivateKey, error) {
	rest := raw
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, errs.New("no private key block found")
		}

		der := block.Bytes
		//nolint:staticcheck // legacy OpenSSL "Proc-Type: 4,ENCRYPTED" keys
		if x509.IsEncryptedPEMBlock(block) {
			if passphrase == "" {
				return nil, errs.New("key is encrypted but no passphrase configured")
			}
			var err error
			//nolint:staticcheck
			der, err = x509.DecryptPEMBlock(block, []byte(passphrase))
			if err != nil {
				return nil, errs.Wrap(err, "decrypt key")
			}
		}

		switch block.Type {
		case "RSA PRIVATE KEY":
			return x509.ParsePKCS1PrivateKey(der)
		case "EC PRIVATE KEY":
			return x509.ParseECPrivateKey(der)
		case "PRIVATE KEY":
			return x509.ParsePKCS8PrivateKey(der)
		case "ENCRYPTED PRIVATE KEY":
			return nil, errs.New("encrypted PKCS#8 keys are not supported, export the key as PKCS#12 or legacy PEM")
		}
	}
}

func keyMatches(cert *x509.Certificate, key crypto.PrivateKey) bool {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		return k.PublicKey.Equal(cert.PublicKey)
	case *ecdsa.PrivateKey:
		return k.PublicKey.Equal(cert.PublicKey)
	default:
		return false
	}
}

// sign produces the detached PKCS#7 signature of manifest with a SHA-256
// digest. The WWDR intermediate is embedded after the signer certificate.
func (s *signer) sign(manifest []byte) ([]byte, error) {
	sd, err := pkcs7.NewSignedData(manifest)
	if err != nil {
		return nil, errs.Wrap(err, "init signed data")
	}
	sd.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)
	if err := sd.AddSignerChain(s.cert, s.key, []*x509.Certificate{s.wwdr}, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, errs.Wrap(err, "add signer")
	}
	sd.Detach()

	sig, err := sd.Finish()
	if err != nil {
		return nil, errs.Wrap(err, "finish signature")
	}
	return sig, nil
}

func isPEM(raw []byte) bool {
	return bytes.Contains(raw, []byte("-----BEGIN "))
}
