// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathval

import (
	"time"

	"github.com/atc0005/pathval/model"
	"github.com/atc0005/pathval/policy"
)

// Clock returns the instant Validate checks certificate validity windows
// against. It exists so tests can pin time without sleeping or touching
// the system clock; production callers use RealClock.
type Clock func() time.Time

// RealClock is the default Clock, backed by time.Now.
func RealClock() time.Time {
	return time.Now()
}

// Context carries the per-call inputs Validate needs beyond the leaf
// certificate and trust store: the identity being verified, the extended
// key usage it must support, and any caller-specific policy allowances.
type Context struct {
	// RequestedName is the server identity (DNS name or IP) the leaf's SAN
	// set must cover. Leave nil to skip identity verification, e.g. when
	// only chain-building (not hostname matching) is wanted.
	RequestedName model.GeneralName

	// RequestedEKU is the extended key usage OID the leaf must support.
	// Leave empty to fall back to model.OIDServerAuthEKU, the default per
	// spec; certificates that omit an ExtendedKeyUsage extension entirely
	// remain unconstrained regardless of this value.
	RequestedEKU string

	// ExtraCerts supplements the trust store as a pool of candidate
	// intermediates, e.g. the non-leaf certificates a TLS server sent
	// alongside its leaf.
	ExtraCerts []model.Certificate

	// AllowedCriticalExtensions allowlists critical extension OIDs beyond
	// the ones this engine decodes natively.
	AllowedCriticalExtensions map[string]struct{}

	// MinRSAModulusBits overrides the default RSA key-strength floor
	// (2048) when non-zero.
	MinRSAModulusBits int

	// Clock overrides the validation-time clock; nil selects RealClock.
	Clock Clock
}

func (c Context) now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}
	return RealClock()
}

func (c Context) requestedEKU() string {
	if c.RequestedEKU == "" {
		return model.OIDServerAuthEKU
	}
	return c.RequestedEKU
}

func (c Context) toPolicy() policy.Context {
	return policy.Context{
		Now:                       c.now(),
		RequestedEKU:              c.requestedEKU(),
		RequestedName:             c.RequestedName,
		AllowedCriticalExtensions: c.AllowedCriticalExtensions,
		MinRSAModulusBits:         c.MinRSAModulusBits,
	}
}
