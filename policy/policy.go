// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package policy holds the pure, side-effect-free predicates that judge a
// single decoded certificate against the role it is being asked to play in
// a chain (leaf, intermediate CA, or trust anchor). The chainbuild package
// calls these predicates once per candidate link; none of them inspect
// neighboring certificates or mutate state.
package policy

import (
	"time"

	"github.com/atc0005/pathval/model"
)

// Role identifies the position a certificate occupies in an attempted
// chain, since the same certificate type can be asked to satisfy different
// rules depending on where it sits.
type Role int

const (
	// RoleLeaf is the end-entity certificate being validated.
	RoleLeaf Role = iota

	// RoleIntermediate is any CA certificate strictly between the leaf and
	// the trust anchor.
	RoleIntermediate

	// RoleAnchor is the trust anchor itself.
	RoleAnchor
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleLeaf:
		return "leaf"
	case RoleIntermediate:
		return "intermediate"
	case RoleAnchor:
		return "anchor"
	default:
		return "unknown"
	}
}

// Context carries the caller-supplied inputs a predicate needs but that
// aren't derivable from the certificate under test alone: the validation
// time and the set of allowances the caller configured.
type Context struct {
	// Now is the instant validity windows are checked against. The pathval
	// facade fills it from its Context's clock; tests set it directly. A
	// zero value is used as-is.
	Now time.Time

	// RequestedEKU is the extended key usage the leaf must support, e.g.
	// x509.ExtKeyUsageServerAuth's OID. Empty means no EKU is required.
	RequestedEKU string

	// RequestedName is the server identity (DNS name or IP) the leaf's SAN
	// set must cover. Nil means no identity check is performed, e.g. a
	// pure chain-building use case.
	RequestedName model.GeneralName

	// AllowedCriticalExtensions is the set of critical extension OIDs this
	// engine understands beyond the ones the data model itself decodes
	// (BasicConstraints, KeyUsage, ExtendedKeyUsage, SubjectAltName,
	// NameConstraints are always allowed).
	AllowedCriticalExtensions map[string]struct{}

	// MinRSAModulusBits is the smallest RSA modulus size accepted. Zero
	// selects the package default (2048).
	MinRSAModulusBits int
}

func (c Context) minRSAModulusBits() int {
	if c.MinRSAModulusBits > 0 {
		return c.MinRSAModulusBits
	}
	return 2048
}

// Predicate is the signature every policy check satisfies so that
// chainbuild can run them uniformly.
type Predicate func(cert model.Certificate, role Role, ctx Context) error
