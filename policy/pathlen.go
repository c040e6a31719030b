// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package policy

import (
	"fmt"

	"github.com/atc0005/pathval/model"
)

// PathLengthBudget tracks the tightest remaining path-length allowance
// seen so far while walking from the trust anchor toward the leaf. Per the
// original test suite's test_conflicting_pathlen case, when two CAs on the
// same path declare different pathlen values the *strictest* bound (the
// smallest remaining budget) governs every subsequent certificate, not
// just the CA that declared it.
type PathLengthBudget struct {
	// remaining is the number of intermediate CAs still allowed below the
	// current point, or -1 if no CA on the path so far has constrained it.
	remaining int
}

// NewPathLengthBudget returns an unconstrained budget, suitable as the
// starting value at the trust anchor.
func NewPathLengthBudget() PathLengthBudget {
	return PathLengthBudget{remaining: -1}
}

// Descend applies one CA certificate's own BasicConstraints.PathLen (if
// present) and returns the budget in effect for the CA immediately below
// it, along with an error if the CA itself is already over budget.
//
// A CA's pathlen field bounds the number of additional non-self-issued CA
// certificates (not counting itself or the leaf) that may follow it. Each
// descent past a non-self-issued CA decrements the inherited budget by one
// CA consumed and then takes the minimum against a freshly declared
// pathlen, so a laxer value from a lower CA can never loosen a tighter
// bound set higher up the chain. A self-issued CA (IsSelfIssued) never
// consumes the budget, per the GLOSSARY's "non-self-issued intermediate
// CAs" definition of path length, though it may still tighten the budget
// via its own declared pathlen.
func (b PathLengthBudget) Descend(cert model.Certificate) (PathLengthBudget, error) {
	selfIssued := cert.IsSelfIssued()

	if !selfIssued && b.remaining == 0 {
		return b, model.NewValidationError(model.PathLengthExceeded, cert,
			"path length constraint exceeded before this CA")
	}

	next := b.remaining
	if !selfIssued && next > 0 {
		next--
	}

	if bc, ok := cert.Extensions.BasicConstraints(); ok && bc.PathLen != nil {
		declared := *bc.PathLen
		if next < 0 || declared < next {
			next = declared
		}
	}

	if next < -1 {
		next = -1
	}

	return PathLengthBudget{remaining: next}, nil
}

func (b PathLengthBudget) String() string {
	if b.remaining < 0 {
		return "unconstrained"
	}
	return fmt.Sprintf("%d", b.remaining)
}
