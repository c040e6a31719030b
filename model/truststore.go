// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

// TrustStore is an unordered set of certificates treated as trust anchors.
// A certificate is a trust anchor iff it is an element of this set,
// determined by DER identity. TrustStore is mutated only by explicit Add
// calls performed before validation; a *Validator built from one shares it
// read-only from then on.
type TrustStore struct {
	anchors map[Identity]Certificate
}

// NewTrustStore builds a TrustStore containing the given certificates.
func NewTrustStore(certs ...Certificate) TrustStore {
	ts := TrustStore{anchors: make(map[Identity]Certificate, len(certs))}
	for _, c := range certs {
		ts.Add(c)
	}
	return ts
}

// Add inserts a certificate into the trust store.
func (ts *TrustStore) Add(cert Certificate) {
	if ts.anchors == nil {
		ts.anchors = make(map[Identity]Certificate)
	}
	ts.anchors[cert.ID()] = cert
}

// Contains reports whether cert, by DER identity, is an element of this
// trust store.
func (ts TrustStore) Contains(cert Certificate) bool {
	_, ok := ts.anchors[cert.ID()]
	return ok
}

// Len reports the number of trust anchors in the store.
func (ts TrustStore) Len() int {
	return len(ts.anchors)
}

// CandidatesFor returns every trust anchor whose subject matches the issuer
// name of issued (compared as raw DER bytes).
func (ts TrustStore) CandidatesFor(issued Certificate) []Certificate {
	var out []Certificate
	for _, anchor := range ts.anchors {
		if issued.IssuedBy(anchor) {
			out = append(out, anchor)
		}
	}
	return out
}

// All returns every trust anchor in the store. Order is unspecified.
func (ts TrustStore) All() []Certificate {
	out := make([]Certificate, 0, len(ts.anchors))
	for _, c := range ts.anchors {
		out = append(out, c)
	}
	return out
}
