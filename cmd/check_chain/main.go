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
	"os"

	"github.com/rs/zerolog"

	"github.com/atc0005/go-nagios"

	"github.com/atc0005/pathval"
	"github.com/atc0005/pathval/internal/chainctx"
	"github.com/atc0005/pathval/internal/chainio"
	"github.com/atc0005/pathval/internal/config"
)

func main() {

	plugin := nagios.NewPlugin()

	plugin.SetErrorsLabel("VALIDATION ERRORS")
	plugin.SetDetailedInfoLabel("CHAIN VALIDATION REPORT")

	defer plugin.ReturnCheckResults()

	cfg, cfgErr := config.New(config.AppType{Plugin: true, PathValidator: true})
	switch {
	case errors.Is(cfgErr, config.ErrVersionRequested):
		fmt.Println(config.Version())
		return

	case cfgErr != nil:
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
		logger := zerolog.New(consoleWriter).With().Timestamp().Caller().Logger()
		logger.Err(cfgErr).Msg("Error initializing application")

		plugin.ServiceOutput = fmt.Sprintf(
			"%s: Error initializing application",
			nagios.StateUNKNOWNLabel,
		)
		plugin.AddError(cfgErr)
		plugin.ExitStatusCode = nagios.StateUNKNOWNExitCode

		return
	}

	defer func(plugin *nagios.Plugin, logger zerolog.Logger) {
		plugin.Errors = annotateError(logger, plugin.Errors...)
	}(plugin, cfg.Log)

	if cfg.EmitBranding {
		plugin.BrandingCallback = config.Branding("Notification generated by ")
	}

	log := cfg.Log.With().
		Str("leaf_file", cfg.LeafFile).
		Str("trust_bundle_file", cfg.TrustBundleFile).
		Logger()

	leaf, err := chainio.LoadLeaf(cfg.LeafFile)
	if err != nil {
		log.Error().Err(err).Msg("Error loading leaf certificate")

		plugin.AddError(err)
		plugin.ServiceOutput = fmt.Sprintf(
			"%s: Error loading leaf certificate %q",
			nagios.StateCRITICALLabel,
			cfg.LeafFile,
		)
		plugin.ExitStatusCode = nagios.StateCRITICALExitCode

		return
	}

	roots, err := chainio.LoadTrustStore(cfg.TrustBundleFile)
	if err != nil {
		log.Error().Err(err).Msg("Error loading trust bundle")

		plugin.AddError(err)
		plugin.ServiceOutput = fmt.Sprintf(
			"%s: Error loading trust bundle %q",
			nagios.StateCRITICALLabel,
			cfg.TrustBundleFile,
		)
		plugin.ExitStatusCode = nagios.StateCRITICALExitCode

		return
	}

	ctx, err := chainctx.Build(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Error building validation request")

		plugin.AddError(err)
		plugin.ServiceOutput = fmt.Sprintf(
			"%s: Error building validation request",
			nagios.StateCRITICALLabel,
		)
		plugin.ExitStatusCode = nagios.StateCRITICALExitCode

		return
	}

	if cfg.IntermediatesFile != "" {
		intermediates, intErr := chainio.LoadBundle(cfg.IntermediatesFile)
		if intErr != nil {
			log.Error().Err(intErr).Msg("Error loading intermediates bundle")

			plugin.AddError(intErr)
			plugin.ServiceOutput = fmt.Sprintf(
				"%s: Error loading intermediates bundle %q",
				nagios.StateCRITICALLabel,
				cfg.IntermediatesFile,
			)
			plugin.ExitStatusCode = nagios.StateCRITICALExitCode

			return
		}
		ctx.ExtraCerts = intermediates
	}

	validator := pathval.New(roots)

	chain, valErr := validator.Validate(leaf, ctx)

	if valErr != nil {
		var vErr *pathval.ValidationError
		errors.As(valErr, &vErr)

		if err := plugin.AddPerfData(false, getPerfData(nil, leaf)...); err != nil {
			log.Error().Err(err).Msg("failed to add performance data")
		}

		log.Error().
			Err(valErr).
			Str("error_kind", string(vErr.Kind)).
			Int("depth_reached", vErr.Depth).
			Msg("certificate chain failed validation")

		plugin.AddError(valErr)
		plugin.ServiceOutput = fmt.Sprintf(
			"%s: %s",
			nagios.StateCRITICALLabel,
			vErr.Error(),
		)
		plugin.LongServiceOutput = reportFor(leaf, valErr)
		plugin.ExitStatusCode = nagios.StateCRITICALExitCode

		return
	}

	if err := plugin.AddPerfData(false, getPerfData(chain, leaf)...); err != nil {
		log.Error().Err(err).Msg("failed to add performance data")

		plugin.AddError(err)
		plugin.ExitStatusCode = nagios.StateUNKNOWNExitCode
		plugin.ServiceOutput = fmt.Sprintf(
			"%s: Failed to process performance data metrics",
			nagios.StateUNKNOWNLabel,
		)

		return
	}

	plugin.ServiceOutput = fmt.Sprintf(
		"%s: chain of %d certificate(s) validated to a trusted anchor",
		nagios.StateOKLabel,
		len(chain),
	)
	plugin.LongServiceOutput = reportFor(leaf, nil)
	plugin.ExitStatusCode = nagios.StateOKExitCode

	log.Debug().
		Int("chain_length", len(chain)).
		Int("chain_depth", chain.Depth()).
		Msg("certificate chain validated")
}
