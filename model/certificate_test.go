// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

import (
	"crypto/sha256"
	"testing"
	"time"
)

func testCert(raw []byte, subject, issuer []byte, notBefore, notAfter time.Time) Certificate {
	return Certificate{
		Raw:        raw,
		RawSubject: subject,
		RawIssuer:  issuer,
		NotBefore:  notBefore,
		NotAfter:   notAfter,
	}
}

func TestCertificateIDIsStableForEqualBytes(t *testing.T) {
	raw := []byte("certificate-bytes")
	a := testCert(raw, nil, nil, time.Time{}, time.Time{})
	b := testCert(append([]byte(nil), raw...), nil, nil, time.Time{}, time.Time{})

	if a.ID() != b.ID() {
		t.Fatal("expected identical DER bytes to produce the same identity")
	}
	if !a.Equal(b) {
		t.Fatal("expected Equal to report true for identical DER bytes")
	}

	want := sha256.Sum256(raw)
	if a.ID() != Identity(want) {
		t.Fatal("expected ID to be the sha256 of Raw")
	}
}

func TestCertificateEqualDistinguishesDifferentBytes(t *testing.T) {
	a := testCert([]byte("one"), nil, nil, time.Time{}, time.Time{})
	b := testCert([]byte("two"), nil, nil, time.Time{}, time.Time{})

	if a.Equal(b) {
		t.Fatal("expected different DER bytes to produce different identities")
	}
}

func TestIsSelfIssuedComparesRawNames(t *testing.T) {
	subject := []byte("CN=root")
	selfIssued := testCert(nil, subject, subject, time.Time{}, time.Time{})
	if !selfIssued.IsSelfIssued() {
		t.Fatal("expected matching raw subject/issuer to be self-issued")
	}

	notSelfIssued := testCert(nil, subject, []byte("CN=other"), time.Time{}, time.Time{})
	if notSelfIssued.IsSelfIssued() {
		t.Fatal("expected differing raw subject/issuer to not be self-issued")
	}
}

func TestIssuedByMatchesChildIssuerAgainstParentSubject(t *testing.T) {
	parentSubject := []byte("CN=intermediate")
	child := testCert(nil, []byte("CN=leaf"), parentSubject, time.Time{}, time.Time{})
	parent := testCert(nil, parentSubject, []byte("CN=root"), time.Time{}, time.Time{})

	if !child.IssuedBy(parent) {
		t.Fatal("expected child to be issued by parent")
	}
	if child.IssuedBy(child) {
		t.Fatal("did not expect child to be issued by itself")
	}
}

func TestValidAtIsInclusiveOfBothEndpoints(t *testing.T) {
	notBefore := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	notAfter := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	cert := testCert(nil, nil, nil, notBefore, notAfter)

	if !cert.ValidAt(notBefore) {
		t.Fatal("expected NotBefore instant to be valid")
	}
	if !cert.ValidAt(notAfter) {
		t.Fatal("expected NotAfter instant to be valid")
	}
	if cert.ValidAt(notBefore.Add(-time.Second)) {
		t.Fatal("expected instant before NotBefore to be invalid")
	}
	if cert.ValidAt(notAfter.Add(time.Second)) {
		t.Fatal("expected instant after NotAfter to be invalid")
	}
}
