// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package testca builds small throwaway certificate hierarchies for
// tests, in the spirit of a disposable CA: every Workspace call signs
// with a freshly generated key and returns stdlib *x509.Certificate
// values ready to decode with certdecode.
package testca

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"net"
	"testing"
	"time"
)

// CA is an issued certificate-authority certificate together with the
// private key needed to sign things under it.
type CA struct {
	Cert *x509.Certificate
	Key  any
}

// Workspace issues certificates for a single test, with a monotonically
// increasing serial counter so certificates within one test never
// collide.
type Workspace struct {
	t      *testing.T
	serial int64
}

// New returns a Workspace scoped to t.
func New(t *testing.T) *Workspace {
	return &Workspace{t: t}
}

func (w *Workspace) nextSerial() *big.Int {
	w.serial++
	return big.NewInt(w.serial)
}

// Options configures a single issued certificate. Only the fields
// relevant to the certificate being issued need to be set; zero values
// mean "don't add this".
type Options struct {
	CommonName string
	NotBefore  time.Time
	NotAfter   time.Time

	// PathLen sets the BasicConstraints path-length limit when HasPathLen
	// is true; only meaningful for IssueRoot and IssueCA, ignored by
	// IssueLeaf.
	PathLen    int
	HasPathLen bool

	DNSNames []string
	IPs      []net.IP

	KeyUsage    x509.KeyUsage
	NoKeyUsage  bool // when true, KeyUsage is omitted from the template entirely
	ExtKeyUsage []x509.ExtKeyUsage
	AnyEKU      bool

	PermittedDNSDomains []string
	ExcludedDNSDomains  []string
	PermittedIPRanges   []*net.IPNet
	ExcludedIPRanges    []*net.IPNet

	// UnsupportedCurve issues an EC certificate on P-224, a curve outside
	// this engine's allowlist, instead of RSA.
	UnsupportedCurve bool

	// UnknownCriticalExtension appends an extra critical extension this
	// engine doesn't decode, to exercise CriticalExtensions rejection.
	UnknownCriticalExtension bool
}

func withDefaults(o Options) Options {
	if o.NotBefore.IsZero() {
		o.NotBefore = time.Now().Add(-time.Hour)
	}
	if o.NotAfter.IsZero() {
		o.NotAfter = time.Now().Add(24 * time.Hour)
	}
	return o
}

// IssueRoot issues a self-signed CA certificate.
func (w *Workspace) IssueRoot(opts Options) CA {
	return w.issueCA(opts, nil)
}

// IssueCA issues a CA certificate signed by parent.
func (w *Workspace) IssueCA(parent CA, opts Options) CA {
	return w.issueCA(opts, &parent)
}

func (w *Workspace) issueCA(opts Options, parent *CA) CA {
	w.t.Helper()
	opts = withDefaults(opts)

	tmpl := &x509.Certificate{
		SerialNumber:          w.nextSerial(),
		Subject:               pkix.Name{CommonName: opts.CommonName},
		NotBefore:             opts.NotBefore,
		NotAfter:              opts.NotAfter,
		IsCA:                  true,
		BasicConstraintsValid: true,
		MaxPathLen:            -1,
	}
	if opts.HasPathLen {
		tmpl.MaxPathLen = opts.PathLen
		if opts.PathLen == 0 {
			tmpl.MaxPathLenZero = true
		}
	}
	if !opts.NoKeyUsage {
		ku := opts.KeyUsage
		if ku == 0 {
			ku = x509.KeyUsageCertSign | x509.KeyUsageCRLSign
		}
		tmpl.KeyUsage = ku
	}
	tmpl.PermittedDNSDomains = opts.PermittedDNSDomains
	tmpl.ExcludedDNSDomains = opts.ExcludedDNSDomains
	tmpl.PermittedIPRanges = opts.PermittedIPRanges
	tmpl.ExcludedIPRanges = opts.ExcludedIPRanges
	if len(opts.PermittedDNSDomains) > 0 || len(opts.ExcludedDNSDomains) > 0 ||
		len(opts.PermittedIPRanges) > 0 || len(opts.ExcludedIPRanges) > 0 {
		tmpl.PermittedDNSDomainsCritical = true
	}
	applyCriticalExtension(tmpl, opts)

	key, pub := w.generateKey(opts)

	parentCert, parentKey := tmpl, key
	if parent != nil {
		parentCert, parentKey = parent.Cert, parent.Key
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, parentCert, pub, parentKey)
	if err != nil {
		w.t.Fatalf("issuing CA certificate %q: %v", opts.CommonName, err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		w.t.Fatalf("parsing CA certificate %q: %v", opts.CommonName, err)
	}
	return CA{Cert: cert, Key: key}
}

// IssueLeaf issues an end-entity certificate signed by parent.
func (w *Workspace) IssueLeaf(parent CA, opts Options) *x509.Certificate {
	w.t.Helper()
	opts = withDefaults(opts)

	tmpl := &x509.Certificate{
		SerialNumber: w.nextSerial(),
		Subject:      pkix.Name{CommonName: opts.CommonName},
		NotBefore:    opts.NotBefore,
		NotAfter:     opts.NotAfter,
		DNSNames:     opts.DNSNames,
		IPAddresses:  opts.IPs,
	}
	if !opts.NoKeyUsage {
		ku := opts.KeyUsage
		if ku == 0 {
			ku = x509.KeyUsageDigitalSignature
		}
		tmpl.KeyUsage = ku
	}
	if len(opts.ExtKeyUsage) > 0 {
		tmpl.ExtKeyUsage = opts.ExtKeyUsage
	}
	if opts.AnyEKU {
		tmpl.ExtKeyUsage = append(tmpl.ExtKeyUsage, x509.ExtKeyUsageAny)
	}
	applyCriticalExtension(tmpl, opts)

	_, pub := w.generateKey(opts)

	der, err := x509.CreateCertificate(rand.Reader, tmpl, parent.Cert, pub, parent.Key)
	if err != nil {
		w.t.Fatalf("issuing leaf certificate %q: %v", opts.CommonName, err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		w.t.Fatalf("parsing leaf certificate %q: %v", opts.CommonName, err)
	}
	return cert
}

func (w *Workspace) generateKey(opts Options) (any, any) {
	w.t.Helper()

	if opts.UnsupportedCurve {
		key, err := ecdsa.GenerateKey(elliptic.P224(), rand.Reader)
		if err != nil {
			w.t.Fatalf("generating P-224 key: %v", err)
		}
		return key, &key.PublicKey
	}

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		w.t.Fatalf("generating RSA key: %v", err)
	}
	return key, &key.PublicKey
}

// WeakRSALeaf issues a leaf certificate carrying a deliberately undersized
// RSA key (1024 bits) for WeakKey test scenarios.
func (w *Workspace) WeakRSALeaf(parent CA, opts Options) *x509.Certificate {
	w.t.Helper()
	opts = withDefaults(opts)

	tmpl := &x509.Certificate{
		SerialNumber: w.nextSerial(),
		Subject:      pkix.Name{CommonName: opts.CommonName},
		NotBefore:    opts.NotBefore,
		NotAfter:     opts.NotAfter,
		DNSNames:     opts.DNSNames,
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}

	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		w.t.Fatalf("generating weak RSA key: %v", err)
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, parent.Cert, &key.PublicKey, parent.Key)
	if err != nil {
		w.t.Fatalf("issuing weak-key leaf certificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		w.t.Fatalf("parsing weak-key leaf certificate: %v", err)
	}
	return cert
}

var unknownCriticalExtensionOID = asn1.ObjectIdentifier{2, 5, 29, 99}

func applyCriticalExtension(tmpl *x509.Certificate, opts Options) {
	if !opts.UnknownCriticalExtension {
		return
	}
	tmpl.ExtraExtensions = append(tmpl.ExtraExtensions, pkix.Extension{
		Id:       unknownCriticalExtensionOID,
		Critical: true,
		Value:    []byte{0x05, 0x00}, // ASN.1 NULL
	})
}
