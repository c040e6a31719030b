// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

// MaxChainDepth is the maximum number of certificates in a chain excluding
// the leaf (i.e. the maximum number of intermediate-plus-anchor links). A
// chain of 17 CAs below the anchor exceeds this.
const MaxChainDepth = 16

// Chain is an ordered sequence [leaf, i1, ..., ik, anchor] produced fresh
// by a single Validate call. It borrows from both the trust store and the
// extra-cert pool that produced it and outlives only that call.
type Chain []Certificate

// Leaf returns the end-entity certificate, the first element of the chain.
func (c Chain) Leaf() Certificate {
	return c[0]
}

// Anchor returns the trust anchor, the last element of the chain.
func (c Chain) Anchor() Certificate {
	return c[len(c)-1]
}

// Intermediates returns every certificate strictly between the leaf and
// the anchor, in leaf-to-anchor order.
func (c Chain) Intermediates() []Certificate {
	if len(c) <= 2 {
		return nil
	}
	return c[1 : len(c)-1]
}

// Depth is the number of certificates in the chain excluding the leaf
// (intermediates plus the anchor). spec.md requires Depth() <= 16.
func (c Chain) Depth() int {
	return len(c) - 1
}
