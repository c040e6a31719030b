// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package policy

import (
	"github.com/atc0005/pathval/model"
)

// CARole requires that any certificate asked to play RoleIntermediate or
// RoleAnchor asserts CA status via BasicConstraints and carries a KeyUsage
// extension that asserts keyCertSign. Per the original test suite's
// test_key_usage_ca case, a CA certificate is rejected whether KeyUsage is
// missing entirely or present without keyCertSign.
func CARole(cert model.Certificate, _ Role, _ Context) error {
	bc, ok := cert.Extensions.BasicConstraints()
	if !ok || !bc.IsCA {
		return model.NewValidationError(model.NotACA, cert, "missing CA basic constraints")
	}

	ku, ok := cert.Extensions.KeyUsage()
	if !ok {
		return model.NewValidationError(model.NotACA, cert, "missing key usage extension")
	}
	if !ku.Has(model.KeyUsageKeyCertSign) {
		return model.NewValidationError(model.NotACA, cert, "key usage does not assert keyCertSign")
	}

	return nil
}

// LeafRole rejects a certificate that asserts CA status from playing the
// leaf role; a CA certificate presented as an end-entity is a
// misconfiguration this engine refuses to paper over.
func LeafRole(cert model.Certificate, _ Role, _ Context) error {
	if bc, ok := cert.Extensions.BasicConstraints(); ok && bc.IsCA {
		return model.NewValidationError(model.NotACA, cert, "leaf certificate asserts CA basic constraints")
	}
	return nil
}
