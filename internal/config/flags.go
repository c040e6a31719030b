// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import "flag"

// handleFlagsConfig handles toggling the exposure of specific configuration
// flags to the user based on the application type initially set by each
// cmd.
func (c *Config) handleFlagsConfig(appType AppType) {
	switch {
	case appType.Plugin:
		flag.BoolVar(&c.EmitBranding, BrandingFlag, defaultBranding, brandingFlagHelp)
	case appType.Inspector:
		// No branding output for one-off inspection runs.
	}

	flag.StringVar(&c.LeafFile, LeafFlagLong, defaultLeafFile, leafFlagHelp)
	flag.StringVar(&c.TrustBundleFile, TrustBundleFlag, defaultTrustBundleFile, trustBundleFlagHelp)
	flag.StringVar(&c.IntermediatesFile, IntermediatesFlag, defaultIntermediatesFile, intermediatesFlagHelp)

	flag.StringVar(&c.DNSName, DNSNameFlagLong, defaultDNSName, dnsNameFlagHelp)
	flag.StringVar(&c.IPAddress, IPAddressFlagLong, defaultIPAddress, ipAddressFlagHelp)
	flag.StringVar(&c.EKU, EKUFlagLong, defaultEKU, ekuFlagHelp)

	flag.IntVar(&c.MinRSAModulusBits, MinRSAModulusFlag, defaultMinRSAModulusBits, minRSAModulusFlagHelp)

	flag.Var(&c.AllowedCriticalExtensionOIDs, AllowedCriticalOID, allowedCriticalOIDHelp)

	flag.StringVar(&c.LoggingLevel, LogLevelFlagShort, defaultLogLevel, logLevelFlagHelp)
	flag.StringVar(&c.LoggingLevel, LogLevelFlagLong, defaultLogLevel, logLevelFlagHelp)

	flag.BoolVar(&c.ShowVersion, VersionFlagShort, defaultDisplayVersionAndExit, versionFlagHelp)
	flag.BoolVar(&c.ShowVersion, VersionFlagLong, defaultDisplayVersionAndExit, versionFlagHelp)

	flag.Usage = Usage
	flag.Parse()
}
