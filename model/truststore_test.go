// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

import "testing"

func TestNewTrustStoreContainsGivenCertificates(t *testing.T) {
	root := Certificate{Raw: []byte("root")}
	other := Certificate{Raw: []byte("other")}

	ts := NewTrustStore(root)

	if !ts.Contains(root) {
		t.Fatal("expected trust store to contain the certificate it was built with")
	}
	if ts.Contains(other) {
		t.Fatal("did not expect trust store to contain an unrelated certificate")
	}
	if got := ts.Len(); got != 1 {
		t.Fatalf("expected length 1, got %d", got)
	}
}

func TestTrustStoreAddIsIdempotentForSameCertificate(t *testing.T) {
	var ts TrustStore
	root := Certificate{Raw: []byte("root")}

	ts.Add(root)
	ts.Add(root)

	if got := ts.Len(); got != 1 {
		t.Fatalf("expected adding the same certificate twice to not grow the store, got len %d", got)
	}
}

func TestTrustStoreCandidatesForMatchesByRawNames(t *testing.T) {
	rootSubject := []byte("CN=root")
	root := Certificate{Raw: []byte("root"), RawSubject: rootSubject, RawIssuer: rootSubject}
	unrelated := Certificate{Raw: []byte("unrelated"), RawSubject: []byte("CN=other"), RawIssuer: []byte("CN=other")}

	ts := NewTrustStore(root, unrelated)

	leaf := Certificate{Raw: []byte("leaf"), RawIssuer: rootSubject}
	candidates := ts.CandidatesFor(leaf)

	if len(candidates) != 1 || !candidates[0].Equal(root) {
		t.Fatalf("expected exactly root as a candidate issuer, got %v", candidates)
	}
}

func TestTrustStoreAllReturnsEveryAnchor(t *testing.T) {
	a := Certificate{Raw: []byte("a")}
	b := Certificate{Raw: []byte("b")}
	ts := NewTrustStore(a, b)

	all := ts.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 anchors, got %d", len(all))
	}
}
