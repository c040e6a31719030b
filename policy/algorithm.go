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

// weakHashAlgorithms are signature hash algorithms this engine refuses to
// trust for a fresh validation, mirroring the algorithms the teacher's
// verifySignatureMD5WithRSA/verifySignatureSHA1WithRSA/
// verifySignatureECDSAWithSHA1 helpers recognize-but-flag rather than
// silently accept.
var weakHashAlgorithms = map[model.HashAlgorithm]struct{}{
	model.MD5:  {},
	model.SHA1: {},
}

// SignatureAlgorithm rejects certificates signed with a hash algorithm this
// engine considers broken (MD5, SHA-1), regardless of whether the
// underlying signature cryptographically verifies.
func SignatureAlgorithm(cert model.Certificate, _ Role, _ Context) error {
	if _, weak := weakHashAlgorithms[cert.SignatureAlgorithm.Hash]; weak {
		return model.NewValidationError(model.UnsupportedAlgorithm, cert,
			fmt.Sprintf("signature hash %s is not trusted", cert.SignatureAlgorithm.Hash))
	}
	if cert.SignatureAlgorithm.Key == model.UnknownKeyAlgorithm {
		return model.NewValidationError(model.UnsupportedAlgorithm, cert,
			fmt.Sprintf("unsupported signature algorithm %q", cert.SignatureAlgorithm.Name))
	}
	return nil
}

// KeyStrength enforces a floor on the certificate's own public key:
// RSA keys must be at least ctx.minRSAModulusBits() wide, and EC keys must
// use one of the curves the data model recognizes (P-256, P-384).
// Unsupported key types are rejected here rather than left for the signer
// to discover, since a candidate certificate can be the issuer of another
// link and a weak issuer key undermines every signature it produced.
func KeyStrength(cert model.Certificate, _ Role, ctx Context) error {
	switch pk := cert.PublicKey.(type) {
	case model.RSAPublicKey:
		if pk.ModulusBits < ctx.minRSAModulusBits() {
			return model.NewValidationError(model.WeakKey, cert,
				fmt.Sprintf("RSA modulus %d bits below floor of %d", pk.ModulusBits, ctx.minRSAModulusBits()))
		}
		return nil

	case model.ECPublicKey:
		if pk.Curve == model.UnsupportedCurve {
			return model.NewValidationError(model.UnsupportedAlgorithm, cert, "unsupported elliptic curve")
		}
		return nil

	default:
		return model.NewValidationError(model.UnsupportedAlgorithm, cert, "unsupported public key type")
	}
}
