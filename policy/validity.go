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

// ValidityWindow rejects a certificate that is not valid at ctx.Now,
// distinguishing "not yet valid" from "expired" since callers often want
// to react to the two differently (e.g. a clock-skew retry versus a hard
// failure).
func ValidityWindow(cert model.Certificate, _ Role, ctx Context) error {
	switch {
	case ctx.Now.Before(cert.NotBefore):
		return model.NewValidationError(model.NotYetValid, cert,
			fmt.Sprintf("not valid until %s", cert.NotBefore.Format("2006-01-02T15:04:05Z07:00")))

	case ctx.Now.After(cert.NotAfter):
		return model.NewValidationError(model.Expired, cert,
			fmt.Sprintf("expired %s", cert.NotAfter.Format("2006-01-02T15:04:05Z07:00")))

	default:
		return nil
	}
}
