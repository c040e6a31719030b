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
	"github.com/atc0005/pathval/nametree"
)

// RequestedIdentity rejects a leaf certificate whose SAN set doesn't cover
// ctx.RequestedName. It is only meaningful for RoleLeaf; CAs have no
// identity of their own to check against a requested hostname.
func RequestedIdentity(cert model.Certificate, role Role, ctx Context) error {
	if role != RoleLeaf || ctx.RequestedName == nil {
		return nil
	}

	san, ok := cert.Extensions.SubjectAlternativeName()
	if !ok {
		return model.NewValidationError(model.NameMismatch, cert, "certificate has no subject alternative names")
	}

	if !nametree.MatchesSAN(ctx.RequestedName, san.Names) {
		return model.NewValidationError(model.NameMismatch, cert,
			fmt.Sprintf("%s not covered by certificate SANs", ctx.RequestedName))
	}

	return nil
}
