// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chainio

import (
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/atc0005/pathval/internal/testca"
)

func writePEM(t *testing.T, dir, name string, certs ...[]byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	for _, der := range certs {
		if err := pem.Encode(f, &pem.Block{Type: "CERTIFICATE", Bytes: der}); err != nil {
			t.Fatalf("encoding PEM block: %v", err)
		}
	}

	return path
}

func TestLoadLeafReadsFirstCertificate(t *testing.T) {
	ws := testca.New(t)
	root := ws.IssueRoot(testca.Options{CommonName: "root"})
	intermediate := ws.IssueCA(root, testca.Options{CommonName: "intermediate"})

	path := writePEM(t, t.TempDir(), "leaf.pem", root.Cert.Raw, intermediate.Cert.Raw)

	cert, err := LoadLeaf(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cert.Subject.CommonName != "root" {
		t.Fatalf("expected subject common name root, got %s", cert.Subject.CommonName)
	}
}

func TestLoadBundleReadsEveryCertificate(t *testing.T) {
	ws := testca.New(t)
	root := ws.IssueRoot(testca.Options{CommonName: "root"})
	intermediate := ws.IssueCA(root, testca.Options{CommonName: "intermediate"})

	path := writePEM(t, t.TempDir(), "bundle.pem", root.Cert.Raw, intermediate.Cert.Raw)

	certs, err := LoadBundle(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(certs) != 2 {
		t.Fatalf("expected 2 certificates, got %d", len(certs))
	}
}

func TestLoadBundleRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pem")
	if _, err := os.Create(path); err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}

	if _, err := LoadBundle(path); err == nil {
		t.Fatal("expected an error for an empty certificate file")
	}
}

func TestLoadTrustStoreRequiresExplicitBundle(t *testing.T) {
	if _, err := LoadTrustStore(""); err == nil {
		t.Fatal("expected an error when no trust bundle is given")
	}
}

func TestLoadTrustStoreBuildsFromBundle(t *testing.T) {
	ws := testca.New(t)
	root := ws.IssueRoot(testca.Options{CommonName: "root"})

	path := writePEM(t, t.TempDir(), "roots.pem", root.Cert.Raw)

	roots, err := LoadTrustStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roots.Len() != 1 {
		t.Fatalf("expected 1 trust anchor, got %d", roots.Len())
	}
}
