// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package nametree

import (
	"strings"

	"github.com/atc0005/pathval/model"
)

// permittedLayer records one CA's own permitted-subtree declaration for a
// single name type. Constraints keeps one layer per constraining CA
// (rather than flattening them into a union) so that Satisfies can require
// a SAN entry to match at least one entry from *every* CA that constrained
// that type — a descendant CA can never silently widen what an ancestor
// restricted.
type permittedLayer struct {
	nameType model.NameType
	entries  []model.GeneralName
}

// Constraints is an immutable accumulated value built by folding each CA's
// NameConstraints extension, from the trust anchor down toward the leaf,
// via Merge. Per the "Accumulated name constraints" design note, each
// recursion step produces a new Constraints value without mutating the
// parent's.
type Constraints struct {
	permitted []permittedLayer
	excluded  map[model.NameType][]model.GeneralName
}

// Merge folds a CA's own NameConstraints extension into the accumulated
// constraints inherited from certificates closer to the trust anchor,
// returning a new value. Excluded subtrees accumulate via union across the
// whole path; permitted subtrees are kept as a per-CA layer (see
// permittedLayer).
func (c Constraints) Merge(nc model.NameConstraints) Constraints {
	next := Constraints{
		permitted: append([]permittedLayer(nil), c.permitted...),
		excluded:  make(map[model.NameType][]model.GeneralName, len(c.excluded)),
	}
	for t, entries := range c.excluded {
		next.excluded[t] = append([]model.GeneralName(nil), entries...)
	}

	if len(nc.PermittedSubtrees) > 0 {
		for t, entries := range groupByType(nc.PermittedSubtrees) {
			next.permitted = append(next.permitted, permittedLayer{t, entries})
		}
	}

	for t, entries := range groupByType(nc.ExcludedSubtrees) {
		next.excluded[t] = append(next.excluded[t], entries...)
	}

	return next
}

// groupByType keys constraints by the SAN name type they constrain, so an
// IPNetwork constraint is filed under IPAddressType.
func groupByType(names []model.GeneralName) map[model.NameType][]model.GeneralName {
	out := make(map[model.NameType][]model.GeneralName)
	for _, n := range names {
		t := n.Type()
		if t == model.IPNetworkType {
			t = model.IPAddressType
		}
		out[t] = append(out[t], n)
	}
	return out
}

// Satisfies reports whether a single SAN entry satisfies the accumulated
// constraints: it must match at least one permitted entry of its name type
// in every layer that constrained that type, and it must not match any
// excluded entry of its name type. Name types never mentioned in any
// permitted subtree are unconstrained.
func (c Constraints) Satisfies(name model.GeneralName) bool {
	t := name.Type()

	for _, layer := range c.permitted {
		if layer.nameType != t {
			continue
		}
		if !matchesAnyConstraint(name, layer.entries) {
			return false
		}
	}

	if excluded, ok := c.excluded[t]; ok {
		if matchesAnyConstraint(name, excluded) {
			return false
		}
	}

	return true
}

func matchesAnyConstraint(name model.GeneralName, constraints []model.GeneralName) bool {
	for _, c := range constraints {
		if matchesConstraint(name, c) {
			return true
		}
	}
	return false
}

// matchesConstraint implements the name-constraint match rules of
// spec.md §4.1, distinct from SAN-to-SAN matching: DNS constraints match
// by suffix (not wildcard), and IP constraints are CIDR networks.
func matchesConstraint(name, constraint model.GeneralName) bool {
	switch c := constraint.(type) {
	case model.DNSName:
		n, ok := name.(model.DNSName)
		if !ok {
			return false
		}
		return matchesDNSSuffix(string(n), string(c))

	case model.IPNetwork:
		n, ok := name.(model.IPAddress)
		if !ok {
			return false
		}
		return c.Net.Contains(n.Addr)

	default:
		return false
	}
}

// matchesDNSSuffix implements the DNSName constraint rule: a constraint
// with a leading dot matches only proper subdomains, never the bare
// domain itself; a constraint without one also matches the bare domain
// exactly.
func matchesDNSSuffix(name, constraint string) bool {
	subdomainOnly := strings.HasPrefix(constraint, ".")
	c := normalizeDNS(strings.TrimPrefix(constraint, "."))
	n := normalizeDNS(name)

	if subdomainOnly {
		return strings.HasSuffix(n, "."+c)
	}
	return n == c || strings.HasSuffix(n, "."+c)
}
