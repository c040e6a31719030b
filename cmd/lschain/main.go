// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/grantae/certinfo"

	"github.com/atc0005/pathval"
	"github.com/atc0005/pathval/internal/chainctx"
	"github.com/atc0005/pathval/internal/chainio"
	"github.com/atc0005/pathval/internal/config"
	"github.com/atc0005/pathval/internal/textutils"
	"github.com/atc0005/pathval/model"
)

// Lead-in markers for listed summary items, so that status reads at a
// glance.
const (
	PrefixStateOK    string = "✅"
	PrefixStateError string = "❌"
)

func main() {
	cfg, cfgErr := config.New(config.AppType{Inspector: true, PathValidator: true})
	switch {
	case errors.Is(cfgErr, config.ErrVersionRequested):
		fmt.Println(config.Version())
		return

	case cfgErr != nil:
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
		logger := zerolog.New(consoleWriter).With().Timestamp().Caller().Logger()
		logger.Err(cfgErr).Msg("Error initializing application")
		os.Exit(config.ExitCodeCatchall)
	}

	log := cfg.Log.With().Logger()

	leaf, err := chainio.LoadLeaf(cfg.LeafFile)
	if err != nil {
		log.Error().Err(err).Msg("Error loading leaf certificate")
		os.Exit(config.ExitCodeCatchall)
	}

	roots, err := chainio.LoadTrustStore(cfg.TrustBundleFile)
	if err != nil {
		log.Error().Err(err).Msg("Error loading trust bundle")
		os.Exit(config.ExitCodeCatchall)
	}

	ctx, err := chainctx.Build(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Error building validation request")
		os.Exit(config.ExitCodeCatchall)
	}

	if cfg.IntermediatesFile != "" {
		intermediates, intErr := chainio.LoadBundle(cfg.IntermediatesFile)
		if intErr != nil {
			log.Error().Err(intErr).Msg("Error loading intermediates bundle")
			os.Exit(config.ExitCodeCatchall)
		}
		ctx.ExtraCerts = intermediates
	}

	textutils.PrintHeader("CERTIFICATE CHAIN | SUMMARY")

	fmt.Printf("\nLeaf file: %s\n", cfg.LeafFile)
	fmt.Printf("Subject: %s\n", leaf.Subject.String())
	fmt.Printf("Issuer: %s\n", leaf.Issuer.String())

	validator := pathval.New(roots)
	chain, valErr := validator.Validate(leaf, ctx)

	switch {
	case valErr != nil:
		var vErr *pathval.ValidationError
		errors.As(valErr, &vErr)

		log.Debug().
			Err(valErr).
			Str("error_kind", string(vErr.Kind)).
			Msg("chain validation failed")

		fmt.Printf("\n%s Chain validation failed: %s\n", PrefixStateError, valErr.Error())

		textutils.PrintHeader("CERTIFICATE CHAIN | OpenSSL Text Format")
		printCertText([]model.Certificate{leaf})

	default:
		log.Debug().Int("chain_length", len(chain)).Msg("chain validation succeeded")

		fmt.Printf(
			"\n%s Chain validated: %d certificate(s) to a trusted anchor (depth %d)\n",
			PrefixStateOK,
			len(chain),
			chain.Depth(),
		)

		textutils.PrintHeader("CERTIFICATE CHAIN | OpenSSL Text Format")
		printCertText(chain)
	}
}

// printCertText renders each certificate in an OpenSSL-inspired text
// format. model.Certificate carries the original DER bytes (Raw), so the
// stdlib certificate certinfo expects is reconstructed on demand rather
// than threaded through the engine, which never needs *x509.Certificate
// itself.
func printCertText(certs []model.Certificate) {
	for idx, cert := range certs {
		parsed, err := x509.ParseCertificate(cert.Raw)
		if err != nil {
			fmt.Printf("\nCertificate %d of %d: failed to re-parse for display: %s\n", idx+1, len(certs), err)
			continue
		}

		certText, err := certinfo.CertificateText(parsed)
		if err != nil {
			certText = err.Error()
		}

		fmt.Printf("\nCertificate %d of %d:\n%s\n", idx+1, len(certs), certText)
	}
}
