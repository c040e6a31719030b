// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Updated via Makefile builds. Setting placeholder value here so that
// something resembling a version string will be provided for non-Makefile
// builds.
var version string = "x.y.z"

// ErrVersionRequested indicates that the user requested application version
// information.
var ErrVersionRequested = errors.New("version information requested")

// AppType represents the type of application being configured/initialized.
// Not all application types accept the same flags; unless noted otherwise
// each type is incompatible with the others, though some flags (logging
// level, branding) are common to all.
type AppType struct {
	// Plugin represents an application used as a Nagios plugin
	// (cmd/check_chain).
	Plugin bool

	// Inspector represents an application used for one-off, informational
	// inspection of a certificate chain (cmd/lschain).
	Inspector bool

	// PathValidator marks that this AppType value configures the chain
	// validation engine's own flags (trust bundle, requested identity, EKU,
	// key-strength floor), shared by every binary that invokes
	// pathval.Validate regardless of whether it's a Plugin or an Inspector.
	PathValidator bool
}

// multiValueStringFlag is a custom type that satisfies the flag.Value
// interface in order to accept multiple string values for some of our
// flags.
type multiValueStringFlag []string

// String returns a comma separated string consisting of all slice elements.
func (mvs *multiValueStringFlag) String() string {
	// From the `flag` package docs:
	// "The flag package may call the String method with a zero-valued
	// receiver, such as a nil pointer."
	if mvs == nil {
		return ""
	}
	return strings.Join(*mvs, ", ")
}

// Set is called once by the flag package, in command line order, for each
// flag present.
func (mvs *multiValueStringFlag) Set(value string) error {
	items := strings.Split(value, ",")
	for index, item := range items {
		items[index] = strings.TrimSpace(item)
	}
	*mvs = append(*mvs, items...)
	return nil
}

// Config represents the application configuration as specified via
// command-line flags.
type Config struct {
	// LeafFile is the fully-qualified path to a PEM file containing the
	// leaf certificate to validate.
	LeafFile string

	// TrustBundleFile is the fully-qualified path to a PEM file containing
	// one or more trust anchor certificates. The system trust pool is not
	// supported: chainio.LoadTrustStore rejects an empty value.
	TrustBundleFile string

	// IntermediatesFile is the fully-qualified path to a PEM file
	// supplementing the candidate pool with intermediates the server (or
	// operator) supplied alongside the leaf.
	IntermediatesFile string

	// DNSName is the DNS name the leaf certificate's SAN list must cover.
	DNSName string

	// IPAddress is the IP Address the leaf certificate's SAN list must
	// cover.
	IPAddress string

	// EKU is the Extended Key Usage OID (dotted form) the leaf certificate
	// must support.
	EKU string

	// MinRSAModulusBits is the smallest RSA modulus size, in bits, this
	// validation run accepts.
	MinRSAModulusBits int

	// AllowedCriticalExtensionOIDs lists critical extension OIDs to permit
	// even though this engine doesn't decode them into a recognized
	// variant.
	AllowedCriticalExtensionOIDs multiValueStringFlag

	// LoggingLevel is the supported logging level for this application.
	LoggingLevel string

	// EmitBranding controls whether "generated by" text is included at the
	// bottom of application output.
	EmitBranding bool

	// ShowVersion is a flag indicating whether the user opted to display
	// only the version string and then immediately exit the application.
	ShowVersion bool

	// Log is an embedded zerolog Logger initialized via config.New().
	Log zerolog.Logger
}

// Usage is a custom override for the default Help text provided by the
// flag package. Here we prepend some additional metadata to the existing
// output.
var Usage = func() {
	fmt.Fprintln(flag.CommandLine.Output(), "\n"+Version()+"\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	flag.PrintDefaults()
}

// Version emits application name, version and repo location.
func Version() string {
	return fmt.Sprintf("%s %s (%s)", myAppName, version, myAppURL)
}

// Branding accepts a message and returns a function that concatenates that
// message with version information. This function is intended to be called
// as a final step before application exit after any other output has
// already been emitted.
func Branding(msg string) func() string {
	return func() string {
		return strings.Join([]string{msg, Version()}, "")
	}
}

// New is a factory function that produces a new Config object based on
// user provided flag values. It is responsible for validating user
// provided values and initializing the logging settings used by this
// application.
func New(appType AppType) (*Config, error) {
	var config Config

	config.handleFlagsConfig(appType)

	if config.ShowVersion {
		return nil, ErrVersionRequested
	}

	if err := config.validate(appType); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := config.setupLogging(appType); err != nil {
		return nil, fmt.Errorf("failed to set logging configuration: %w", err)
	}

	return &config, nil
}
