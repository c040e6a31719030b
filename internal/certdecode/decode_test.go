// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package certdecode

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/atc0005/pathval/model"
)

func selfSignedRSA(t *testing.T, tmpl *x509.Certificate) (*x509.Certificate, []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating RSA key: %v", err)
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("creating certificate: %v", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parsing certificate: %v", err)
	}

	return cert, der
}

func baseTemplate(serial int64) *x509.Certificate {
	return &x509.Certificate{
		SerialNumber: big.NewInt(serial),
		Subject:      pkix.Name{CommonName: "root"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		IsCA:         true,
		BasicConstraintsValid: true,
		KeyUsage:     x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
	}
}

func TestFromX509BasicConstraints(t *testing.T) {
	tmpl := baseTemplate(1)
	tmpl.MaxPathLen = 2
	tmpl.MaxPathLenZero = false

	cert, _ := selfSignedRSA(t, tmpl)

	decoded, err := FromX509(cert)
	if err != nil {
		t.Fatalf("FromX509: %v", err)
	}

	bc, ok := decoded.Extensions.BasicConstraints()
	if !ok {
		t.Fatal("expected BasicConstraints extension")
	}
	if !bc.IsCA {
		t.Fatal("expected IsCA true")
	}
	if bc.PathLen == nil || *bc.PathLen != 2 {
		t.Fatalf("expected pathlen 2, got %v", bc.PathLen)
	}
}

func TestFromX509KeyUsage(t *testing.T) {
	tmpl := baseTemplate(2)

	cert, _ := selfSignedRSA(t, tmpl)
	decoded, err := FromX509(cert)
	if err != nil {
		t.Fatalf("FromX509: %v", err)
	}

	ku, ok := decoded.Extensions.KeyUsage()
	if !ok {
		t.Fatal("expected KeyUsage extension")
	}
	if !ku.Has(model.KeyUsageKeyCertSign) {
		t.Fatal("expected keyCertSign bit set")
	}
	if !ku.Has(model.KeyUsageCRLSign) {
		t.Fatal("expected cRLSign bit set")
	}
	if ku.Has(model.KeyUsageDigitalSignature) {
		t.Fatal("digitalSignature bit should not be set")
	}
}

func TestFromX509PublicKeyRSA(t *testing.T) {
	cert, _ := selfSignedRSA(t, baseTemplate(3))
	decoded, err := FromX509(cert)
	if err != nil {
		t.Fatalf("FromX509: %v", err)
	}

	rsaKey, ok := decoded.PublicKey.(model.RSAPublicKey)
	if !ok {
		t.Fatalf("expected RSAPublicKey, got %T", decoded.PublicKey)
	}
	if rsaKey.ModulusBits != 2048 {
		t.Fatalf("expected 2048-bit modulus, got %d", rsaKey.ModulusBits)
	}
}

func TestFromX509PublicKeyECDSA(t *testing.T) {
	tmpl := baseTemplate(4)

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generating EC key: %v", err)
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("creating certificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parsing certificate: %v", err)
	}

	decoded, err := FromX509(cert)
	if err != nil {
		t.Fatalf("FromX509: %v", err)
	}

	ecKey, ok := decoded.PublicKey.(model.ECPublicKey)
	if !ok {
		t.Fatalf("expected ECPublicKey, got %T", decoded.PublicKey)
	}
	if ecKey.Curve != model.P256 {
		t.Fatalf("expected P-256, got %s", ecKey.Curve)
	}
}

func TestFromPEM(t *testing.T) {
	_, der := selfSignedRSA(t, baseTemplate(5))
	block := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	certs, err := FromPEM(block)
	if err != nil {
		t.Fatalf("FromPEM: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("expected 1 certificate, got %d", len(certs))
	}
}

func TestFromPEMEmpty(t *testing.T) {
	if _, err := FromPEM([]byte("not pem data")); err == nil {
		t.Fatal("expected error decoding non-PEM data")
	}
}

func TestVerifySignatureRSA(t *testing.T) {
	leafTmpl := &x509.Certificate{
		SerialNumber: big.NewInt(7),
		Subject:      pkix.Name{CommonName: "leaf"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	leafKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating leaf key: %v", err)
	}

	caKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating CA key: %v", err)
	}
	caTmpl := baseTemplate(8)
	caDER, err := x509.CreateCertificate(rand.Reader, caTmpl, caTmpl, &caKey.PublicKey, caKey)
	if err != nil {
		t.Fatalf("creating CA certificate: %v", err)
	}
	caCert, err := x509.ParseCertificate(caDER)
	if err != nil {
		t.Fatalf("parsing CA certificate: %v", err)
	}

	leafDER, err := x509.CreateCertificate(rand.Reader, leafTmpl, caCert, &leafKey.PublicKey, caKey)
	if err != nil {
		t.Fatalf("creating leaf certificate: %v", err)
	}
	leafCert, err := x509.ParseCertificate(leafDER)
	if err != nil {
		t.Fatalf("parsing leaf certificate: %v", err)
	}

	decodedLeaf, err := FromX509(leafCert)
	if err != nil {
		t.Fatalf("FromX509 leaf: %v", err)
	}
	decodedCA, err := FromX509(caCert)
	if err != nil {
		t.Fatalf("FromX509 CA: %v", err)
	}

	if err := VerifySignature(decodedLeaf.RawTBSCertificate, decodedLeaf.Signature, decodedLeaf.SignatureAlgorithm, decodedCA.PublicKeyMaterial); err != nil {
		t.Fatalf("expected signature to verify, got %v", err)
	}

	if err := VerifySignature(decodedLeaf.RawTBSCertificate, decodedLeaf.Signature, decodedLeaf.SignatureAlgorithm, decodedLeaf.PublicKeyMaterial); err == nil {
		t.Fatal("expected verification against the wrong key to fail")
	}
}

