// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"fmt"
	"strings"
)

// validate verifies all Config struct fields have been provided acceptable
// values.
func (c Config) validate(appType AppType) error {
	switch {
	case appType.Plugin, appType.Inspector:
		if c.LeafFile == "" {
			return fmt.Errorf("%q flag not provided", LeafFlagLong)
		}
	}

	if c.DNSName != "" && c.IPAddress != "" {
		return fmt.Errorf(
			"only one of %q or %q flags may be specified",
			DNSNameFlagLong, IPAddressFlagLong,
		)
	}

	if c.MinRSAModulusBits < 0 {
		return fmt.Errorf("invalid minimum RSA modulus size: %d", c.MinRSAModulusBits)
	}

	requestedLoggingLevel := strings.ToLower(c.LoggingLevel)
	if _, ok := loggingLevels[requestedLoggingLevel]; !ok {
		return fmt.Errorf("invalid logging level %q", c.LoggingLevel)
	}

	return nil
}
