// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package certdecode

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/md5" //nolint:gosec // needed to verify legacy MD5WithRSA signatures
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // needed to verify legacy SHA1-based signatures
	_ "crypto/sha256" // registers crypto.SHA256 for crypto.Hash.New()
	_ "crypto/sha512" // registers crypto.SHA384 and crypto.SHA512
	"errors"
	"fmt"

	"github.com/atc0005/pathval/model"
)

// ErrSignatureVerificationFailed wraps every signature-verification
// failure this package reports, regardless of the algorithm attempted.
var ErrSignatureVerificationFailed = errors.New("signature verification failed")

// VerifySignature checks that sig is a valid signature over tbs (a
// certificate's raw to-be-signed bytes) produced by the private key
// matching issuerKey, under the algorithm alg describes.
//
// crypto/x509's own CheckSignature refuses to even attempt MD5WithRSA,
// SHA1WithRSA, and ECDSAWithSHA1 as of Go's insecure-algorithm policy.
// Those hashes are still recognized here (verified directly against the
// issuer's public key) so that policy.SignatureAlgorithm, not a library
// panic, is what rejects them; this mirrors how a sysadmin-facing
// diagnostic tool needs to tell "this signature is cryptographically
// broken" apart from "this signature doesn't verify at all".
func VerifySignature(tbs, sig []byte, alg model.SignatureAlgorithm, issuerKey crypto.PublicKey) error {
	if alg.Hash == model.MD5 {
		return verifyRSA(tbs, sig, crypto.MD5, issuerKey)
	}
	if alg.Hash == model.SHA1 && alg.Key == model.ECDSAKeyAlgorithm {
		return verifyECDSA(tbs, sig, crypto.SHA1, issuerKey)
	}
	if alg.Hash == model.SHA1 {
		return verifyRSA(tbs, sig, crypto.SHA1, issuerKey)
	}

	h, ok := cryptoHash(alg.Hash)
	if !ok {
		return fmt.Errorf("%w: unsupported hash %s", ErrSignatureVerificationFailed, alg.Hash)
	}

	switch alg.Key {
	case model.RSAKeyAlgorithm:
		return verifyRSA(tbs, sig, h, issuerKey)
	case model.ECDSAKeyAlgorithm:
		return verifyECDSA(tbs, sig, h, issuerKey)
	default:
		return fmt.Errorf("%w: unsupported signature algorithm %s", ErrSignatureVerificationFailed, alg)
	}
}

func cryptoHash(h model.HashAlgorithm) (crypto.Hash, bool) {
	switch h {
	case model.SHA256:
		return crypto.SHA256, true
	case model.SHA384:
		return crypto.SHA384, true
	case model.SHA512:
		return crypto.SHA512, true
	default:
		return 0, false
	}
}

func verifyRSA(tbs, sig []byte, h crypto.Hash, issuerKey crypto.PublicKey) error {
	pub, ok := issuerKey.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("%w: issuer public key is not RSA", ErrSignatureVerificationFailed)
	}

	digest := newDigest(h, tbs)

	if err := rsa.VerifyPKCS1v15(pub, h, digest, sig); err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureVerificationFailed, err)
	}
	return nil
}

func verifyECDSA(tbs, sig []byte, h crypto.Hash, issuerKey crypto.PublicKey) error {
	pub, ok := issuerKey.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("%w: issuer public key is not ECDSA", ErrSignatureVerificationFailed)
	}

	digest := newDigest(h, tbs)

	if !ecdsa.VerifyASN1(pub, digest, sig) {
		return fmt.Errorf("%w: ECDSA signature not valid", ErrSignatureVerificationFailed)
	}
	return nil
}

// newDigest hashes tbs with h. crypto.MD5 and crypto.SHA1 are used here
// even though their package-level New funcs aren't registered by an
// import of "crypto" alone, so they're reached directly rather than via
// crypto.Hash.New().
func newDigest(h crypto.Hash, tbs []byte) []byte {
	switch h {
	case crypto.MD5:
		sum := md5.Sum(tbs) //nolint:gosec
		return sum[:]
	case crypto.SHA1:
		sum := sha1.Sum(tbs) //nolint:gosec
		return sum[:]
	default:
		hasher := h.New()
		hasher.Write(tbs)
		return hasher.Sum(nil)
	}
}
