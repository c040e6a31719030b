// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package nametree decides whether a requested server identity (DNS name
// or IP) is covered by a certificate's Subject Alternative Name set, and
// whether a certificate's SAN entries satisfy an accumulated set of
// name-constraint subtrees. DNS matching is label-wise ASCII; IDN handling
// is out of scope.
package nametree

import "strings"

// normalizeDNS lower-cases (ASCII only) and strips one trailing dot, so
// that "Example.com." and "example.com" compare equal.
func normalizeDNS(s string) string {
	s = strings.TrimSuffix(s, ".")
	return strings.ToLower(s)
}

// MatchDNS reports whether requested matches a SAN dNSName entry san, per
// spec.md's wildcard rule: a leading "*." matches exactly one label, and
// "*.example.com" matches "sub.example.com" but neither "example.com" nor
// "sub.sub.example.com".
func MatchDNS(requested, san string) bool {
	r := normalizeDNS(requested)
	s := normalizeDNS(san)

	suffix, isWildcard := strings.CutPrefix(s, "*.")
	if !isWildcard {
		return r == s
	}

	label, rest, found := strings.Cut(r, ".")
	if !found {
		return false
	}

	return label != "" && !strings.Contains(label, ".") && rest == suffix
}
