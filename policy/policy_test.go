// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package policy

import (
	"net"
	"testing"
	"time"

	"github.com/atc0005/pathval/model"
)

func pathLenPtr(n int) *int { return &n }

func baseCert() model.Certificate {
	return model.Certificate{
		NotBefore:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PublicKey:          model.RSAPublicKey{ModulusBits: 2048},
		SignatureAlgorithm: model.SignatureAlgorithm{Hash: model.SHA256, Key: model.RSAKeyAlgorithm, Name: "SHA256-RSA"},
		Extensions:         model.ExtensionSet{},
	}
}

func TestValidityWindow(t *testing.T) {
	cert := baseCert()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := ValidityWindow(cert, RoleLeaf, Context{Now: now}); err != nil {
		t.Fatalf("expected valid cert to pass, got %v", err)
	}

	tooEarly := Context{Now: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := ValidityWindow(cert, RoleLeaf, tooEarly); err == nil {
		t.Fatal("expected not-yet-valid error")
	} else if ve, ok := err.(*model.ValidationError); !ok || ve.Kind != model.NotYetValid {
		t.Fatalf("expected NotYetValid, got %v", err)
	}

	tooLate := Context{Now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := ValidityWindow(cert, RoleLeaf, tooLate); err == nil {
		t.Fatal("expected expired error")
	} else if ve, ok := err.(*model.ValidationError); !ok || ve.Kind != model.Expired {
		t.Fatalf("expected Expired, got %v", err)
	}
}

func TestCARole(t *testing.T) {
	ca := baseCert()
	ca.Extensions[model.OIDBasicConstraints] = model.Extension{
		OID: model.OIDBasicConstraints, Variant: model.BasicConstraints{IsCA: true},
	}
	ca.Extensions[model.OIDKeyUsage] = model.Extension{
		OID: model.OIDKeyUsage, Variant: model.KeyUsage{Bits: model.KeyUsageKeyCertSign},
	}
	if err := CARole(ca, RoleIntermediate, Context{}); err != nil {
		t.Fatalf("expected valid CA to pass, got %v", err)
	}

	notCA := baseCert()
	if err := CARole(notCA, RoleIntermediate, Context{}); err == nil {
		t.Fatal("expected missing BasicConstraints to fail")
	}

	wrongKeyUsage := baseCert()
	wrongKeyUsage.Extensions[model.OIDBasicConstraints] = model.Extension{
		OID: model.OIDBasicConstraints, Variant: model.BasicConstraints{IsCA: true},
	}
	wrongKeyUsage.Extensions[model.OIDKeyUsage] = model.Extension{
		OID: model.OIDKeyUsage, Variant: model.KeyUsage{Bits: model.KeyUsageDigitalSignature},
	}
	if err := CARole(wrongKeyUsage, RoleIntermediate, Context{}); err == nil {
		t.Fatal("expected CA without keyCertSign to fail")
	}
}

func TestLeafRole(t *testing.T) {
	leaf := baseCert()
	if err := LeafRole(leaf, RoleLeaf, Context{}); err != nil {
		t.Fatalf("expected plain leaf to pass, got %v", err)
	}

	caAsLeaf := baseCert()
	caAsLeaf.Extensions[model.OIDBasicConstraints] = model.Extension{
		OID: model.OIDBasicConstraints, Variant: model.BasicConstraints{IsCA: true},
	}
	if err := LeafRole(caAsLeaf, RoleLeaf, Context{}); err == nil {
		t.Fatal("expected CA-flagged cert to fail leaf role")
	}
}

func TestPathLengthBudget(t *testing.T) {
	// root declares pathlen=0: no CA may follow it.
	root := baseCert()
	root.Extensions[model.OIDBasicConstraints] = model.Extension{
		Variant: model.BasicConstraints{IsCA: true, PathLen: pathLenPtr(0)},
	}
	budget, err := NewPathLengthBudget().Descend(root)
	if err != nil {
		t.Fatalf("root itself should never fail Descend: %v", err)
	}

	intermediate := baseCert()
	intermediate.RawSubject = []byte("intermediate")
	intermediate.RawIssuer = []byte("root")
	intermediate.Extensions[model.OIDBasicConstraints] = model.Extension{
		Variant: model.BasicConstraints{IsCA: true},
	}
	if _, err := budget.Descend(intermediate); err == nil {
		t.Fatal("expected pathlen=0 to forbid any intermediate CA")
	}
}

func TestPathLengthBudgetConflicting(t *testing.T) {
	root := baseCert()
	root.Extensions[model.OIDBasicConstraints] = model.Extension{
		Variant: model.BasicConstraints{IsCA: true, PathLen: pathLenPtr(1)},
	}
	budget, err := NewPathLengthBudget().Descend(root)
	if err != nil {
		t.Fatalf("unexpected error at root: %v", err)
	}

	intermediate1 := baseCert()
	intermediate1.RawSubject = []byte("intermediate1")
	intermediate1.RawIssuer = []byte("root")
	intermediate1.Extensions[model.OIDBasicConstraints] = model.Extension{
		Variant: model.BasicConstraints{IsCA: true, PathLen: pathLenPtr(2)},
	}
	budget, err = budget.Descend(intermediate1)
	if err != nil {
		t.Fatalf("unexpected error at intermediate1: %v", err)
	}

	intermediate2 := baseCert()
	intermediate2.RawSubject = []byte("intermediate2")
	intermediate2.RawIssuer = []byte("intermediate1")
	intermediate2.Extensions[model.OIDBasicConstraints] = model.Extension{
		Variant: model.BasicConstraints{IsCA: true},
	}
	if _, err := budget.Descend(intermediate2); err == nil {
		t.Fatal("expected root's tighter pathlen=1 to govern despite intermediate1's pathlen=2")
	}
}

func TestSignatureAlgorithm(t *testing.T) {
	cert := baseCert()
	if err := SignatureAlgorithm(cert, RoleLeaf, Context{}); err != nil {
		t.Fatalf("expected SHA256-RSA to pass, got %v", err)
	}

	cert.SignatureAlgorithm = model.SignatureAlgorithm{Hash: model.SHA1, Key: model.RSAKeyAlgorithm, Name: "SHA1-RSA"}
	if err := SignatureAlgorithm(cert, RoleLeaf, Context{}); err == nil {
		t.Fatal("expected SHA1 to be rejected")
	}

	cert.SignatureAlgorithm = model.SignatureAlgorithm{Hash: model.MD5, Key: model.RSAKeyAlgorithm, Name: "MD5-RSA"}
	if err := SignatureAlgorithm(cert, RoleLeaf, Context{}); err == nil {
		t.Fatal("expected MD5 to be rejected")
	}
}

func TestKeyStrength(t *testing.T) {
	cert := baseCert()
	if err := KeyStrength(cert, RoleLeaf, Context{}); err != nil {
		t.Fatalf("expected 2048-bit RSA to pass, got %v", err)
	}

	weak := baseCert()
	weak.PublicKey = model.RSAPublicKey{ModulusBits: 1024}
	if err := KeyStrength(weak, RoleLeaf, Context{}); err == nil {
		t.Fatal("expected 1024-bit RSA to fail")
	}

	unsupportedCurve := baseCert()
	unsupportedCurve.PublicKey = model.ECPublicKey{Curve: model.UnsupportedCurve}
	if err := KeyStrength(unsupportedCurve, RoleLeaf, Context{}); err == nil {
		t.Fatal("expected unsupported curve to fail")
	}

	goodCurve := baseCert()
	goodCurve.PublicKey = model.ECPublicKey{Curve: model.P256}
	if err := KeyStrength(goodCurve, RoleLeaf, Context{}); err != nil {
		t.Fatalf("expected P-256 to pass, got %v", err)
	}
}

func TestCriticalExtensions(t *testing.T) {
	cert := baseCert()
	cert.Extensions["2.5.29.99"] = model.Extension{OID: "2.5.29.99", Critical: true, Variant: model.Opaque{}}

	if err := CriticalExtensions(cert, RoleLeaf, Context{}); err == nil {
		t.Fatal("expected unrecognized critical extension to fail")
	}

	allowed := Context{AllowedCriticalExtensions: map[string]struct{}{"2.5.29.99": {}}}
	if err := CriticalExtensions(cert, RoleLeaf, allowed); err != nil {
		t.Fatalf("expected allowlisted OID to pass, got %v", err)
	}
}

func TestExtendedKeyUsage(t *testing.T) {
	const serverAuth = "1.3.6.1.5.5.7.3.1"
	const clientAuth = "1.3.6.1.5.5.7.3.2"

	cert := baseCert()
	cert.Extensions[model.OIDExtendedKeyUsage] = model.Extension{
		Variant: model.ExtendedKeyUsage{OIDs: []string{serverAuth}},
	}

	if err := ExtendedKeyUsage(cert, RoleLeaf, Context{RequestedEKU: serverAuth}); err != nil {
		t.Fatalf("expected matching EKU to pass, got %v", err)
	}
	if err := ExtendedKeyUsage(cert, RoleLeaf, Context{RequestedEKU: clientAuth}); err == nil {
		t.Fatal("expected mismatched EKU to fail")
	}

	anyEKU := baseCert()
	anyEKU.Extensions[model.OIDExtendedKeyUsage] = model.Extension{
		Variant: model.ExtendedKeyUsage{Any: true},
	}
	if err := ExtendedKeyUsage(anyEKU, RoleLeaf, Context{RequestedEKU: clientAuth}); err != nil {
		t.Fatalf("expected anyExtendedKeyUsage to satisfy every request, got %v", err)
	}

	noEKU := baseCert()
	if err := ExtendedKeyUsage(noEKU, RoleLeaf, Context{RequestedEKU: clientAuth}); err != nil {
		t.Fatalf("expected absent EKU extension to be unconstrained, got %v", err)
	}
}

func TestRequestedIdentity(t *testing.T) {
	cert := baseCert()
	cert.Extensions[model.OIDSubjectAltName] = model.Extension{
		Variant: model.SubjectAlternativeName{Names: []model.GeneralName{
			model.DNSName("*.example.com"),
			model.IPAddress{Addr: net.ParseIP("10.0.0.1")},
		}},
	}

	ok := Context{RequestedName: model.DNSName("www.example.com")}
	if err := RequestedIdentity(cert, RoleLeaf, ok); err != nil {
		t.Fatalf("expected wildcard match to pass, got %v", err)
	}

	mismatch := Context{RequestedName: model.DNSName("example.net")}
	if err := RequestedIdentity(cert, RoleLeaf, mismatch); err == nil {
		t.Fatal("expected mismatched name to fail")
	}

	// Not applicable to non-leaf roles.
	if err := RequestedIdentity(cert, RoleIntermediate, mismatch); err != nil {
		t.Fatalf("expected non-leaf role to skip identity check, got %v", err)
	}
}
