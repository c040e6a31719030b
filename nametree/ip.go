// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package nametree

import "net"

// MatchIP reports whether requested equals the SAN IPAddress entry san
// exactly. Unlike DNS matching there is no wildcard or subnet allowance
// here: CIDR semantics apply only inside name-constraint subtrees.
func MatchIP(requested, san net.IP) bool {
	return requested.Equal(san)
}
