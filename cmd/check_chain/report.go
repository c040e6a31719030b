// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atc0005/go-nagios"

	"github.com/atc0005/pathval"
	"github.com/atc0005/pathval/internal/serialfmt"
	"github.com/atc0005/pathval/model"
)

// reportFor builds the long service output detailing the leaf certificate
// under test and, if validation failed, the specific certificate and
// reason behind the failure.
func reportFor(leaf model.Certificate, valErr error) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Leaf subject: %s%s", leaf.Subject.String(), nagios.CheckOutputEOL)
	fmt.Fprintf(&b, "Leaf issuer: %s%s", leaf.Issuer.String(), nagios.CheckOutputEOL)
	fmt.Fprintf(&b, "Leaf serial: %s%s", serialfmt.Format(leaf.SerialNumber), nagios.CheckOutputEOL)
	fmt.Fprintf(&b, "Leaf validity: %s - %s%s", leaf.NotBefore.Format("2006-01-02"), leaf.NotAfter.Format("2006-01-02"), nagios.CheckOutputEOL)

	if valErr == nil {
		fmt.Fprintf(&b, "%sResult: chain validated to a trusted anchor.%s", nagios.CheckOutputEOL, nagios.CheckOutputEOL)
		return b.String()
	}

	var vErr *pathval.ValidationError
	errors.As(valErr, &vErr)

	fmt.Fprintf(&b, "%sResult: %s%s", nagios.CheckOutputEOL, vErr.Kind, nagios.CheckOutputEOL)
	if vErr.Detail != "" {
		fmt.Fprintf(&b, "Detail: %s%s", vErr.Detail, nagios.CheckOutputEOL)
	}
	if vErr.Cert.Raw != nil {
		fmt.Fprintf(&b, "Offending certificate subject: %s%s", vErr.Cert.Subject.String(), nagios.CheckOutputEOL)
	}
	fmt.Fprintf(&b, "Chain links verified before failure: %d%s", vErr.Depth, nagios.CheckOutputEOL)

	return b.String()
}
