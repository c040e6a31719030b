// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

const myAppName string = "pathval"
const myAppURL string = "https://github.com/atc0005/pathval"

// ExitCodeCatchall indicates a general or miscellaneous error has occurred.
// This exit code is not directly used by monitoring plugins in this
// project. See https://tldp.org/LDP/abs/html/exitcodes.html for additional
// details.
const ExitCodeCatchall int = 1

const (
	versionFlagHelp        string = "Whether to display application version and then immediately exit application."
	leafFlagHelp           string = "Fully-qualified path to a PEM formatted file containing the leaf certificate to validate."
	trustBundleFlagHelp    string = "Fully-qualified path to a PEM formatted file containing one or more trust anchor certificates. Required: the host's system trust pool is not supported."
	intermediatesFlagHelp  string = "Fully-qualified path to a PEM formatted file containing zero or more intermediate certificates to supplement the trust store's candidate pool."
	dnsNameFlagHelp        string = "The DNS name the leaf certificate's Subject Alternative Name list must cover. Mutually exclusive with " + IPAddressFlagLong + "."
	ipAddressFlagHelp      string = "The IP Address the leaf certificate's Subject Alternative Name list must cover. Mutually exclusive with " + DNSNameFlagLong + "."
	ekuFlagHelp            string = "The Extended Key Usage OID (dotted form) the leaf certificate must support. Defaults to serverAuth (1.3.6.1.5.5.7.3.1)."
	minRSAModulusFlagHelp  string = "The smallest RSA modulus size, in bits, this validation run will accept for any certificate in the chain."
	logLevelFlagHelp       string = "Sets log level."
	brandingFlagHelp       string = "Toggles emission of branding details with plugin status details. This output is disabled by default."
	allowedCriticalOIDHelp string = "One or many critical extension OIDs (dotted form, comma-separated) to allow even though this engine does not decode them into a recognized extension variant."
)

// Flag names for consistent references. Exported so that they're available
// from tests.
const (
	VersionFlagLong   string = "version"
	VersionFlagShort  string = "v"
	BrandingFlag      string = "branding"
	LeafFlagLong      string = "leaf"
	TrustBundleFlag   string = "trust-bundle"
	IntermediatesFlag string = "intermediates"
	DNSNameFlagLong   string = "dns-name"
	IPAddressFlagLong string = "ip-address"
	EKUFlagLong       string = "eku"
	MinRSAModulusFlag string = "min-rsa-modulus-bits"
	LogLevelFlagLong   string = "log-level"
	LogLevelFlagShort  string = "ll"
	AllowedCriticalOID string = "allow-critical-extension"
)

// Default flag settings if not overridden by user input.
const (
	defaultLogLevel             string = "info"
	defaultLeafFile              string = ""
	defaultTrustBundleFile       string = ""
	defaultIntermediatesFile     string = ""
	defaultDNSName               string = ""
	defaultIPAddress             string = ""
	defaultEKU                   string = "1.3.6.1.5.5.7.3.1" // id-kp-serverAuth
	defaultMinRSAModulusBits     int    = 2048
	defaultBranding              bool   = false
	defaultDisplayVersionAndExit bool   = false
)

const (
	appTypePlugin        string = "plugin"
	appTypeInspector     string = "inspector"
	appTypePathValidator string = "path-validator"
)
