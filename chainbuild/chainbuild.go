// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package chainbuild searches for a path from a leaf certificate to a
// trust anchor, trying candidate issuers depth-first and backing out of
// any branch that fails a policy check, a signature check, the
// path-length budget, or the accumulated name constraints. It never
// consults crypto/x509's own chain builder; candidate selection is driven
// entirely by model.Certificate's raw issuer/subject byte comparison.
package chainbuild

import (
	"fmt"

	"github.com/atc0005/pathval/internal/certdecode"
	"github.com/atc0005/pathval/model"
	"github.com/atc0005/pathval/nametree"
	"github.com/atc0005/pathval/policy"
)

// Options configures a single Build call.
type Options struct {
	Policy policy.Context

	// ExtraCerts supplements the trust store as a pool of candidate
	// intermediates, e.g. certificates a server presented alongside its
	// leaf. They are never treated as trust anchors themselves.
	ExtraCerts []model.Certificate
}

// deepestFailure tracks the most-progressed failed attempt seen across the
// whole search, per spec.md §7: when every branch fails, the error
// surfaced to the caller is the one that got furthest before failing,
// since it is almost always the most actionable diagnostic.
type deepestFailure struct {
	depth int
	err   *model.ValidationError
}

func (d *deepestFailure) consider(depth int, err *model.ValidationError) {
	if err == nil {
		return
	}
	if d.err == nil || depth > d.depth {
		d.depth = depth
		d.err = err
	}
}

// Build searches for a chain from leaf to a trust anchor in trust,
// returning the first one found along the left-most (trust-store-first)
// candidate ordering that satisfies every per-link policy predicate, every
// signature check, the path-length budget, and the accumulated name
// constraints.
//
// Candidate issuers are chased in leaf-to-anchor order (each certificate's
// own role, validity, algorithm, and critical-extension checks are
// direction-independent), but path-length and name-constraint extensions
// constrain certificates *below* the CA that declares them. Those two
// checks are therefore evaluated in a second, anchor-to-leaf pass over
// each complete candidate path, exactly mirroring RFC 5280's own
// processing order; a path that fails this pass is discarded and the
// search backtracks to try the next candidate.
func Build(leaf model.Certificate, trust model.TrustStore, opts Options) (model.Chain, error) {
	if err := runLeafPredicates(leaf, opts.Policy); err != nil {
		return nil, err
	}

	pool := candidatePool(trust, opts.ExtraCerts)
	df := &deepestFailure{}

	chain, ok := search([]model.Certificate{leaf}, 0, trust, pool, opts.Policy, df)
	if ok {
		return chain, nil
	}

	if df.err != nil {
		return nil, df.err
	}
	return nil, model.NewValidationError(model.UntrustedRoot, leaf, "no path to a trust anchor was found")
}

func runLeafPredicates(leaf model.Certificate, ctx policy.Context) error {
	predicates := []policy.Predicate{
		policy.LeafRole,
		policy.ValidityWindow,
		policy.SignatureAlgorithm,
		policy.KeyStrength,
		policy.CriticalExtensions,
		policy.ExtendedKeyUsage,
		policy.RequestedIdentity,
	}
	for _, p := range predicates {
		if err := p(leaf, policy.RoleLeaf, ctx); err != nil {
			return err
		}
	}
	return nil
}

// candidatePool returns every certificate that could possibly serve as an
// issuer: the full trust store plus any extra certificates the caller
// supplied, trust-store members first so that a path ending at a directly
// trusted anchor is always preferred over one built entirely out of
// caller-supplied extras when both exist.
func candidatePool(trust model.TrustStore, extra []model.Certificate) []model.Certificate {
	pool := append([]model.Certificate(nil), trust.All()...)
	pool = append(pool, extra...)
	return pool
}

// search extends path (which always ends with the certificate whose
// issuer is being searched for) by one link at a time. depth counts CAs
// accepted into path so far, excluding the leaf.
func search(
	path []model.Certificate,
	depth int,
	trust model.TrustStore,
	pool []model.Certificate,
	ctx policy.Context,
	df *deepestFailure,
) (model.Chain, bool) {
	if depth >= model.MaxChainDepth {
		err := model.NewValidationError(model.MaxChainDepthExceeded, path[len(path)-1],
			fmt.Sprintf("chain exceeded maximum depth of %d", model.MaxChainDepth))
		err.Depth = depth
		df.consider(depth+1, err)
		return nil, false
	}

	cur := path[len(path)-1]

	for _, candidate := range orderedIssuers(cur, trust, pool) {
		inPath := false
		for _, prior := range path {
			if candidate.Equal(prior) {
				inPath = true
				break
			}
		}
		if inPath {
			continue
		}

		role := policy.RoleIntermediate
		isAnchor := trust.Contains(candidate)
		if isAnchor {
			role = policy.RoleAnchor
		}

		if err := verifyLink(cur, candidate, role, ctx); err != nil {
			err.Depth = depth
			df.consider(depth+1, err)
			continue
		}

		nextPath := append(append([]model.Certificate(nil), path...), candidate)

		if isAnchor {
			chain := model.Chain(nextPath)
			if err := validatePath(chain); err != nil {
				err.Depth = depth + 1
				df.consider(depth+1, err)
				continue
			}
			return chain, true
		}

		if chain, ok := search(nextPath, depth+1, trust, pool, ctx, df); ok {
			return chain, true
		}
	}

	return nil, false
}

// orderedIssuers returns the members of pool that issued cert, with trust
// anchors sorted before non-anchor extras so the search tries the
// shortest, most directly trusted path first.
func orderedIssuers(cert model.Certificate, trust model.TrustStore, pool []model.Certificate) []model.Certificate {
	var anchors, rest []model.Certificate
	for _, candidate := range pool {
		if !cert.IssuedBy(candidate) {
			continue
		}
		if trust.Contains(candidate) {
			anchors = append(anchors, candidate)
		} else {
			rest = append(rest, candidate)
		}
	}
	return append(anchors, rest...)
}

// verifyLink runs the direction-independent checks for one candidate
// issuer link: the cryptographic signature, and the issuer's own role,
// validity, algorithm, key-strength, critical-extension, and EKU
// predicates.
func verifyLink(child, issuer model.Certificate, role policy.Role, ctx policy.Context) *model.ValidationError {
	if err := certdecode.VerifySignature(child.RawTBSCertificate, child.Signature, child.SignatureAlgorithm, issuer.PublicKeyMaterial); err != nil {
		return model.Wrap(model.SignatureFailure, child, "", err)
	}

	predicates := []policy.Predicate{
		policy.ValidityWindow,
		policy.CARole,
		policy.SignatureAlgorithm,
		policy.KeyStrength,
		policy.CriticalExtensions,
		policy.ExtendedKeyUsage,
	}
	for _, p := range predicates {
		if err := p(issuer, role, ctx); err != nil {
			return err.(*model.ValidationError)
		}
	}

	return nil
}

// validatePath runs the two direction-dependent checks over a complete
// candidate chain, walking from the trust anchor down to the leaf exactly
// as RFC 5280's own algorithm does: path-length budgets and name
// constraints are declared by a CA to bind everything *below* it, so they
// can only be evaluated once the full anchor-to-leaf path is known.
func validatePath(chain model.Chain) *model.ValidationError {
	budget := policy.NewPathLengthBudget()
	constraints := nametree.Constraints{}

	for i := len(chain) - 1; i >= 1; i-- {
		ca := chain[i]

		next, err := budget.Descend(ca)
		if err != nil {
			return err.(*model.ValidationError)
		}
		budget = next

		if nc, ok := ca.Extensions.NameConstraints(); ok {
			constraints = constraints.Merge(nc)
		}
	}

	leaf := chain[0]
	san, ok := leaf.Extensions.SubjectAlternativeName()
	if !ok {
		return nil
	}
	for _, name := range san.Names {
		if !constraints.Satisfies(name) {
			return model.NewValidationError(model.NameConstraintViolation, leaf,
				fmt.Sprintf("%s violates an accumulated name constraint", name))
		}
	}

	return nil
}
