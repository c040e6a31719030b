// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package chainctx translates parsed command-line configuration into the
// pathval.Context the validation engine expects, shared by cmd/check_chain
// and cmd/lschain so the two binaries interpret -dns-name, -ip-address,
// -eku and -allow-critical-extension identically.
package chainctx

import (
	"fmt"
	"net"

	"github.com/atc0005/pathval"
	"github.com/atc0005/pathval/internal/config"
	"github.com/atc0005/pathval/model"
)

// Build converts cfg into a pathval.Context. ExtraCerts is left unset; the
// caller attaches it after loading any -intermediates bundle.
func Build(cfg *config.Config) (pathval.Context, error) {
	ctx := pathval.Context{
		RequestedEKU:      cfg.EKU,
		MinRSAModulusBits: cfg.MinRSAModulusBits,
	}

	switch {
	case cfg.DNSName != "":
		ctx.RequestedName = model.DNSName(cfg.DNSName)

	case cfg.IPAddress != "":
		addr := net.ParseIP(cfg.IPAddress)
		if addr == nil {
			return ctx, fmt.Errorf("%q is not a valid IP Address", cfg.IPAddress)
		}
		ctx.RequestedName = model.IPAddress{Addr: addr}
	}

	if len(cfg.AllowedCriticalExtensionOIDs) > 0 {
		allowed := make(map[string]struct{}, len(cfg.AllowedCriticalExtensionOIDs))
		for _, oid := range cfg.AllowedCriticalExtensionOIDs {
			if oid == "" {
				continue
			}
			allowed[oid] = struct{}{}
		}
		ctx.AllowedCriticalExtensions = allowed
	}

	return ctx, nil
}
