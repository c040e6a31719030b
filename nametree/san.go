// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package nametree

import "github.com/atc0005/pathval/model"

// MatchesSAN reports whether requested (a DNSName or IPAddress GeneralName)
// is covered by any entry of sans, applying DNS wildcard rules or exact IP
// equality as appropriate. Type-mismatched pairs never match.
func MatchesSAN(requested model.GeneralName, sans []model.GeneralName) bool {
	for _, entry := range sans {
		if matchGeneralName(requested, entry) {
			return true
		}
	}
	return false
}

func matchGeneralName(requested, entry model.GeneralName) bool {
	switch want := requested.(type) {
	case model.DNSName:
		have, ok := entry.(model.DNSName)
		if !ok {
			return false
		}
		return MatchDNS(string(want), string(have))

	case model.IPAddress:
		have, ok := entry.(model.IPAddress)
		if !ok {
			return false
		}
		return MatchIP(want.Addr, have.Addr)

	default:
		// Opaque/network requests are never positively matchable.
		return false
	}
}
