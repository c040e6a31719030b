// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathval

import "github.com/atc0005/pathval/model"

// ValidationError and ErrorKind are defined in package model (rather than
// here) so that the policy and chainbuild packages, which sit below this
// root package in the import graph, can construct and return them without
// creating an import cycle back up to pathval. The aliases below let
// callers of this package spell them as pathval.ValidationError and
// pathval.ErrorKind, matching how every other exported name in this
// engine is addressed.
type (
	ValidationError = model.ValidationError
	ErrorKind       = model.ErrorKind
)

// The ErrorKind values every Validate call can return.
const (
	UntrustedRoot            = model.UntrustedRoot
	SignatureFailure         = model.SignatureFailure
	Expired                  = model.Expired
	NotYetValid              = model.NotYetValid
	NotACA                   = model.NotACA
	PathLengthExceeded       = model.PathLengthExceeded
	MaxChainDepthExceeded    = model.MaxChainDepthExceeded
	UnsupportedAlgorithm     = model.UnsupportedAlgorithm
	WeakKey                  = model.WeakKey
	UnknownCriticalExtension = model.UnknownCriticalExtension
	NameMismatch             = model.NameMismatch
	NameConstraintViolation  = model.NameConstraintViolation
	ExtendedKeyUsageMismatch = model.ExtendedKeyUsageMismatch
)
