// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

import "fmt"

// ErrorKind identifies the diagnostic category of a ValidationError, drawn
// from the fixed set spec.md §7 names.
type ErrorKind string

const (
	// UntrustedRoot indicates the chain builder's search exhausted the
	// candidate space without reaching a trust anchor.
	UntrustedRoot ErrorKind = "UntrustedRoot"

	// SignatureFailure indicates a cryptographic check failed at a
	// specific link in the chain.
	SignatureFailure ErrorKind = "SignatureFailure"

	// Expired indicates a validity-window violation in the future
	// direction (now is after NotAfter).
	Expired ErrorKind = "Expired"

	// NotYetValid indicates a validity-window violation in the past
	// direction (now is before NotBefore).
	NotYetValid ErrorKind = "NotYetValid"

	// NotACA indicates an intermediate or anchor certificate lacks CA
	// basic constraints or the key-cert-sign key usage bit.
	NotACA ErrorKind = "NotACA"

	// PathLengthExceeded indicates a CA's declared path-length budget was
	// exceeded by the number of CAs below it.
	PathLengthExceeded ErrorKind = "PathLengthExceeded"

	// MaxChainDepthExceeded indicates the chain exceeded the maximum
	// permitted depth (16, excluding the leaf).
	MaxChainDepthExceeded ErrorKind = "MaxChainDepthExceeded"

	// UnsupportedAlgorithm indicates a signature hash or public-key
	// algorithm outside the allowlist.
	UnsupportedAlgorithm ErrorKind = "UnsupportedAlgorithm"

	// WeakKey indicates a public key below the configured strength floor.
	WeakKey ErrorKind = "WeakKey"

	// UnknownCriticalExtension indicates a critical extension this
	// package does not recognize.
	UnknownCriticalExtension ErrorKind = "UnknownCriticalExtension"

	// NameMismatch indicates the requested name isn't covered by the
	// leaf's SAN set.
	NameMismatch ErrorKind = "NameMismatch"

	// NameConstraintViolation indicates a SAN entry fails the accumulated
	// name-constraint subtrees along the chain.
	NameConstraintViolation ErrorKind = "NameConstraintViolation"

	// ExtendedKeyUsageMismatch indicates the requested (or inherited) EKU
	// isn't permitted by a CA's ExtendedKeyUsage extension.
	ExtendedKeyUsageMismatch ErrorKind = "ExtendedKeyUsageMismatch"
)

// ValidationError is the single error category this package returns from
// Validate. Cert identifies which certificate in the attempted chain
// triggered the failure; for UntrustedRoot it is the leaf.
type ValidationError struct {
	Kind   ErrorKind
	Cert   Certificate
	Detail string
	Err    error

	// Depth records how many links of the attempted chain had already
	// verified before this failure occurred. The chain builder sets it on
	// the errors of its search; leaf-level failures leave it at 0.
	Depth int
}

// Error implements error.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s", e.Kind)
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError constructs a ValidationError of the given kind for
// the given certificate.
func NewValidationError(kind ErrorKind, cert Certificate, detail string) *ValidationError {
	return &ValidationError{Kind: kind, Cert: cert, Detail: detail}
}

// Wrap constructs a ValidationError of the given kind wrapping an
// underlying error (typically from the crypto provider).
func Wrap(kind ErrorKind, cert Certificate, detail string, err error) *ValidationError {
	return &ValidationError{Kind: kind, Cert: cert, Detail: detail, Err: err}
}
