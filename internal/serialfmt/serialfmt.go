// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package serialfmt renders certificate serial numbers the way openssl
// does: upper-case hex octets separated by colons, rather than Go's default
// base-10 big.Int rendering.
package serialfmt

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/atc0005/pathval/internal/textutils"
)

// Format converts sn into a colon-delimited hex string, e.g.
// "FD:6F:3E:24:98:C2:5B:1D".
func Format(sn *big.Int) string {
	if sn == nil {
		return ""
	}

	// Sprintf hex formatting retains a leading zero byte that sn.Text(16)
	// would otherwise drop.
	hex := fmt.Sprintf("%X", sn.Bytes())

	negative := sn.Sign() == -1
	hex = strings.TrimPrefix(hex, "-")

	formatted := strings.ToUpper(textutils.InsertDelimiter(hex, ":", 2))

	if negative {
		return "-" + formatted
	}
	return formatted
}
