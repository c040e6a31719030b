// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package policy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atc0005/pathval/model"
)

// CriticalExtensions rejects a certificate carrying a critical extension
// this engine does not decode into one of the recognized ExtensionVariant
// kinds, unless the caller explicitly allowlisted its OID via
// ctx.AllowedCriticalExtensions. RFC 5280 requires exactly this: a relying
// party that doesn't understand a critical extension must refuse the
// certificate.
func CriticalExtensions(cert model.Certificate, _ Role, ctx Context) error {
	unrecognized := cert.Extensions.UnrecognizedCritical()
	if len(unrecognized) == 0 {
		return nil
	}

	var remaining []string
	for _, oid := range unrecognized {
		if _, allowed := ctx.AllowedCriticalExtensions[oid]; allowed {
			continue
		}
		remaining = append(remaining, oid)
	}
	if len(remaining) == 0 {
		return nil
	}

	sort.Strings(remaining)
	return model.NewValidationError(model.UnknownCriticalExtension, cert,
		fmt.Sprintf("unrecognized critical extension(s): %s", strings.Join(remaining, ", ")))
}

// ExtendedKeyUsage enforces that, when a certificate declares an
// ExtendedKeyUsage extension, it permits ctx.RequestedEKU. A certificate
// without the extension at all is unconstrained (per RFC 5280, the
// extension's absence means no EKU restriction), and a requested EKU of ""
// means the caller isn't asking for any particular purpose. Per the
// original test suite's test_extended_key_usage_any case, a leaf (or any
// certificate) that asserts the anyExtendedKeyUsage OID satisfies every
// request.
func ExtendedKeyUsage(cert model.Certificate, _ Role, ctx Context) error {
	if ctx.RequestedEKU == "" {
		return nil
	}

	eku, ok := cert.Extensions.ExtendedKeyUsage()
	if !ok {
		return nil
	}

	if !eku.Permits(ctx.RequestedEKU) {
		return model.NewValidationError(model.ExtendedKeyUsageMismatch, cert,
			fmt.Sprintf("extended key usage does not permit %s", ctx.RequestedEKU))
	}
	return nil
}
