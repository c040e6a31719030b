// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

import (
	"bytes"
	"crypto"
	"crypto/sha256"
	"crypto/x509/pkix"
	"math/big"
	"time"
)

// Identity is an opaque DER-identity token for a certificate, used for
// trust-store membership and DFS cycle detection. Per the "Graph search
// without cycles" design note, identity is never based on subject-name
// equality: two distinct CAs may share a subject in principle.
type Identity [sha256.Size]byte

// Certificate is an immutable, value-typed representation of a decoded
// X.509 certificate. It is produced by the certdecode package (the
// external decoder collaborator) and never mutated afterward.
type Certificate struct {
	SerialNumber *big.Int
	Subject      pkix.Name
	Issuer       pkix.Name

	// RawSubject and RawIssuer are the raw ASN.1 DER encodings of the
	// Subject and Issuer distinguished names. Candidate-issuer matching
	// (child.issuer = parent.subject) and self-issued detection both
	// compare these byte strings directly rather than the parsed pkix.Name
	// values, which would otherwise be sensitive to RDN re-ordering.
	RawSubject []byte
	RawIssuer  []byte

	NotBefore time.Time
	NotAfter  time.Time

	// PublicKey is the abstracted, closed-sum-type rendering of the
	// subject public key that policy predicates reason about.
	PublicKey PublicKey

	// PublicKeyMaterial is the actual crypto.PublicKey (an *rsa.PublicKey
	// or *ecdsa.PublicKey in practice) needed to verify a signature this
	// certificate produced as an issuer. Policy code never inspects it
	// directly; only the certdecode crypto-provider collaborator does.
	PublicKeyMaterial crypto.PublicKey

	SignatureAlgorithm SignatureAlgorithm
	Signature          []byte

	// RawTBSCertificate is the raw ASN.1 DER of the to-be-signed portion of
	// the certificate, the exact bytes a signature is computed over.
	RawTBSCertificate []byte

	// Raw is the full DER encoding of the certificate, used to derive
	// Identity.
	Raw []byte

	Extensions ExtensionSet
}

// ID returns this certificate's DER-identity token.
func (c Certificate) ID() Identity {
	return sha256.Sum256(c.Raw)
}

// Equal reports whether two certificates share the same DER identity.
func (c Certificate) Equal(other Certificate) bool {
	return c.ID() == other.ID()
}

// IsSelfIssued reports whether the certificate's issuer and subject
// distinguished names are identical, byte for byte. This is a necessary
// but not sufficient condition for being self-signed (the signature is not
// checked here); the chain builder uses it only to decide whether a CA
// counts against a path-length budget (self-issued certificates do not).
func (c Certificate) IsSelfIssued() bool {
	return bytes.Equal(c.RawSubject, c.RawIssuer)
}

// IssuedBy reports whether candidate's subject matches this certificate's
// issuer, the sole criterion for candidate-parent selection per spec.
func (c Certificate) IssuedBy(candidate Certificate) bool {
	return bytes.Equal(c.RawIssuer, candidate.RawSubject)
}

// ValidAt reports whether the given instant falls within this
// certificate's validity window, inclusive of both endpoints.
func (c Certificate) ValidAt(at time.Time) bool {
	return !at.Before(c.NotBefore) && !at.After(c.NotAfter)
}
