// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/atc0005/pathval/internal/logging"
)

// loggingLevels re-exports the shared flag-value-to-zerolog.Level map so
// that validate.go can check a requested level without this package
// keeping its own copy.
var loggingLevels = logging.LoggingLevels

// setupLogging is responsible for configuring logging settings for this
// application.
func (c *Config) setupLogging(appType AppType) error {
	appTypeLabel := appTypePathValidator
	switch {
	case appType.Plugin:
		appTypeLabel = appTypePlugin
	case appType.Inspector:
		appTypeLabel = appTypeInspector
	}

	// Plugin logging goes to stderr to avoid mixing with the Nagios
	// status line on stdout; every other app type logs to stdout.
	out := os.Stdout
	if appType.Plugin {
		out = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{Out: out}
	c.Log = zerolog.New(consoleWriter).With().Timestamp().Caller().
		Str("version", Version()).
		Str("logging_level", c.LoggingLevel).
		Str("app_type", appTypeLabel).
		Str("leaf_file", c.LeafFile).
		Str("trust_bundle_file", c.TrustBundleFile).
		Str("dns_name", c.DNSName).
		Str("ip_address", c.IPAddress).
		Logger()

	if err := logging.SetLoggingLevel(c.LoggingLevel); err != nil {
		return err
	}

	return nil
}
