// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathval

import (
	"github.com/atc0005/pathval/chainbuild"
	"github.com/atc0005/pathval/model"
)

// Validator is the facade the rest of this module (and its consumers)
// build chains through. It holds nothing but the trust anchors it was
// constructed with; every Validate call is independent and safe to run
// concurrently from multiple goroutines, since chainbuild performs no
// shared mutation.
type Validator struct {
	roots model.TrustStore
}

// New builds a Validator against a fixed set of trust anchors.
func New(roots model.TrustStore) *Validator {
	return &Validator{roots: roots}
}

// Validate builds and returns a chain from leaf to one of the Validator's
// trust anchors, applying every policy predicate, signature check, and
// name-constraint rule along the way. A non-nil error is always a
// *ValidationError.
func (v *Validator) Validate(leaf model.Certificate, ctx Context) (model.Chain, error) {
	return chainbuild.Build(leaf, v.roots, chainbuild.Options{
		Policy:     ctx.toPolicy(),
		ExtraCerts: ctx.ExtraCerts,
	})
}
