// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package chainio loads model.Certificate values from PEM files on disk,
// the on-disk collaborator cmd/check_chain and cmd/lschain use to turn
// operator-supplied flag values into chain-builder inputs.
package chainio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atc0005/pathval/internal/certdecode"
	"github.com/atc0005/pathval/model"
)

// ErrEmptyCertificateFile indicates the named file contained no bytes.
var ErrEmptyCertificateFile = errors.New("certificate file is empty")

// LoadLeaf reads a single leaf certificate from a PEM file. Only the first
// CERTIFICATE block is used; a file holding a full chain should be split
// between the leaf and -intermediates flags instead.
func LoadLeaf(filename string) (model.Certificate, error) {
	certs, err := LoadBundle(filename)
	if err != nil {
		return model.Certificate{}, err
	}
	return certs[0], nil
}

// LoadBundle reads every CERTIFICATE block from a PEM file, in file order.
// It is used for trust bundles, supplementary intermediate pools, and
// multi-cert leaf files alike.
func LoadBundle(filename string) ([]model.Certificate, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyCertificateFile)
	}

	certs, err := certdecode.FromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}

	return certs, nil
}

// ErrSystemTrustPoolUnsupported indicates the caller left -trust-bundle
// empty. crypto/x509.CertPool deliberately keeps its anchors opaque (no API
// recovers the individual certificates backing it), so this engine cannot
// build a model.TrustStore from the system pool the way crypto/x509.Verify
// itself can; an explicit bundle file is always required.
var ErrSystemTrustPoolUnsupported = errors.New("system trust pool cannot be enumerated; provide -trust-bundle")

// LoadTrustStore builds a model.TrustStore from a PEM bundle on disk.
func LoadTrustStore(filename string) (model.TrustStore, error) {
	if filename == "" {
		return model.TrustStore{}, ErrSystemTrustPoolUnsupported
	}

	certs, err := LoadBundle(filename)
	if err != nil {
		return model.TrustStore{}, err
	}

	return model.NewTrustStore(certs...), nil
}
