// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package certdecode is the external-decoder and crypto-provider
// collaborator: it turns stdlib *x509.Certificate values (and raw PEM/DER
// bytes) into the immutable model.Certificate shape the rest of this
// module reasons about, and performs the actual cryptographic signature
// verification that the model/policy/chainbuild layers only describe in
// the abstract. Within the validation engine (model, nametree, policy,
// chainbuild and the root pathval package) nothing else touches
// crypto/x509, crypto/rsa, or crypto/ecdsa directly; cmd/lschain and the
// internal/testca test helper use crypto/x509 themselves.
package certdecode

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net"

	"github.com/atc0005/pathval/model"
)

// ErrNoCertificatesFound indicates a PEM or DER blob decoded to zero
// certificates.
var ErrNoCertificatesFound = errors.New("no certificates found")

// FromX509 adapts an already-parsed stdlib certificate into the model's
// immutable representation. It never re-parses ASN.1 itself; it only
// re-shapes fields crypto/x509 already decoded.
func FromX509(cert *x509.Certificate) (model.Certificate, error) {
	out := model.Certificate{
		SerialNumber:       cert.SerialNumber,
		Subject:            cert.Subject,
		Issuer:             cert.Issuer,
		RawSubject:         cert.RawSubject,
		RawIssuer:          cert.RawIssuer,
		NotBefore:          cert.NotBefore,
		NotAfter:           cert.NotAfter,
		PublicKey:          decodePublicKey(cert.PublicKey),
		PublicKeyMaterial:  cert.PublicKey,
		SignatureAlgorithm: decodeSignatureAlgorithm(cert.SignatureAlgorithm),
		Signature:          cert.Signature,
		RawTBSCertificate:  cert.RawTBSCertificate,
		Raw:                cert.Raw,
		Extensions:         decodeExtensions(cert),
	}
	return out, nil
}

// FromDER decodes a single DER-encoded certificate.
func FromDER(data []byte) (model.Certificate, error) {
	cert, err := x509.ParseCertificate(data)
	if err != nil {
		return model.Certificate{}, fmt.Errorf("parsing DER certificate: %w", err)
	}
	return FromX509(cert)
}

// FromPEM decodes every CERTIFICATE block in a PEM bundle, in file order.
// Non-certificate PEM blocks (private keys, CRLs) are skipped rather than
// rejected, matching how trust bundles and chain files are commonly
// assembled by hand.
func FromPEM(data []byte) ([]model.Certificate, error) {
	var out []model.Certificate

	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := FromDER(block.Bytes)
		if err != nil {
			return nil, err
		}
		out = append(out, cert)
	}

	if len(out) == 0 {
		return nil, ErrNoCertificatesFound
	}

	return out, nil
}

func decodePublicKey(pub any) model.PublicKey {
	switch key := pub.(type) {
	case *rsa.PublicKey:
		return model.RSAPublicKey{ModulusBits: key.N.BitLen()}

	case *ecdsa.PublicKey:
		return model.ECPublicKey{Curve: decodeCurve(key)}

	default:
		return model.UnsupportedPublicKey{Algorithm: fmt.Sprintf("%T", pub)}
	}
}

func decodeCurve(key *ecdsa.PublicKey) model.Curve {
	if key.Curve == nil {
		return model.UnsupportedCurve
	}
	switch key.Curve.Params().Name {
	case "P-256":
		return model.P256
	case "P-384":
		return model.P384
	default:
		return model.UnsupportedCurve
	}
}

func decodeSignatureAlgorithm(alg x509.SignatureAlgorithm) model.SignatureAlgorithm {
	out := model.SignatureAlgorithm{Name: alg.String()}

	switch alg {
	case x509.MD5WithRSA:
		out.Hash, out.Key = model.MD5, model.RSAKeyAlgorithm
	case x509.SHA1WithRSA, x509.DSAWithSHA1:
		out.Hash, out.Key = model.SHA1, model.RSAKeyAlgorithm
	case x509.SHA256WithRSA, x509.SHA256WithRSAPSS:
		out.Hash, out.Key = model.SHA256, model.RSAKeyAlgorithm
	case x509.SHA384WithRSA, x509.SHA384WithRSAPSS:
		out.Hash, out.Key = model.SHA384, model.RSAKeyAlgorithm
	case x509.SHA512WithRSA, x509.SHA512WithRSAPSS:
		out.Hash, out.Key = model.SHA512, model.RSAKeyAlgorithm
	case x509.ECDSAWithSHA1:
		out.Hash, out.Key = model.SHA1, model.ECDSAKeyAlgorithm
	case x509.ECDSAWithSHA256:
		out.Hash, out.Key = model.SHA256, model.ECDSAKeyAlgorithm
	case x509.ECDSAWithSHA384:
		out.Hash, out.Key = model.SHA384, model.ECDSAKeyAlgorithm
	case x509.ECDSAWithSHA512:
		out.Hash, out.Key = model.SHA512, model.ECDSAKeyAlgorithm
	default:
		// DSAWithSHA256, PureEd25519, and anything future stays Unknown;
		// policy.SignatureAlgorithm rejects UnknownKeyAlgorithm outright.
	}

	return out
}

func decodeExtensions(cert *x509.Certificate) model.ExtensionSet {
	set := make(model.ExtensionSet, len(cert.Extensions))

	for _, ext := range cert.Extensions {
		oid := ext.Id.String()

		entry := model.Extension{OID: oid, Critical: ext.Critical}

		switch oid {
		case model.OIDBasicConstraints:
			entry.Variant = decodeBasicConstraints(cert)
		case model.OIDKeyUsage:
			entry.Variant = model.KeyUsage{Bits: model.KeyUsageBit(cert.KeyUsage)}
		case model.OIDExtendedKeyUsage:
			entry.Variant = decodeExtendedKeyUsage(cert)
		case model.OIDSubjectAltName:
			entry.Variant = decodeSAN(cert)
		case model.OIDNameConstraints:
			entry.Variant = decodeNameConstraints(cert)
		default:
			entry.Variant = model.Opaque{Value: ext.Value}
		}

		set[oid] = entry
	}

	return set
}

func decodeBasicConstraints(cert *x509.Certificate) model.BasicConstraints {
	bc := model.BasicConstraints{IsCA: cert.IsCA}
	if !cert.BasicConstraintsValid {
		return bc
	}
	switch {
	case cert.MaxPathLenZero:
		zero := 0
		bc.PathLen = &zero
	case cert.MaxPathLen > 0:
		n := cert.MaxPathLen
		bc.PathLen = &n
	}
	return bc
}

// ekuOIDs maps the stdlib's closed ExtKeyUsage enum back to the dotted OID
// strings the model works with, since crypto/x509 doesn't expose the raw
// OID for the usages it recognizes.
var ekuOIDs = map[x509.ExtKeyUsage]string{
	x509.ExtKeyUsageServerAuth:      "1.3.6.1.5.5.7.3.1",
	x509.ExtKeyUsageClientAuth:      "1.3.6.1.5.5.7.3.2",
	x509.ExtKeyUsageCodeSigning:     "1.3.6.1.5.5.7.3.3",
	x509.ExtKeyUsageEmailProtection: "1.3.6.1.5.5.7.3.4",
	x509.ExtKeyUsageTimeStamping:    "1.3.6.1.5.5.7.3.8",
	x509.ExtKeyUsageOCSPSigning:     "1.3.6.1.5.5.7.3.9",
}

func decodeExtendedKeyUsage(cert *x509.Certificate) model.ExtendedKeyUsage {
	eku := model.ExtendedKeyUsage{}

	for _, usage := range cert.ExtKeyUsage {
		if usage == x509.ExtKeyUsageAny {
			eku.Any = true
			continue
		}
		if oid, ok := ekuOIDs[usage]; ok {
			eku.OIDs = append(eku.OIDs, oid)
		}
	}

	for _, oid := range cert.UnknownExtKeyUsage {
		eku.OIDs = append(eku.OIDs, oid.String())
	}

	return eku
}

func decodeSAN(cert *x509.Certificate) model.SubjectAlternativeName {
	var names []model.GeneralName

	for _, dnsName := range cert.DNSNames {
		names = append(names, model.DNSName(dnsName))
	}
	for _, ip := range cert.IPAddresses {
		names = append(names, model.IPAddress{Addr: ip})
	}
	for range cert.EmailAddresses {
		names = append(names, model.OpaqueName{Kind: "rfc822Name"})
	}
	for range cert.URIs {
		names = append(names, model.OpaqueName{Kind: "uniformResourceIdentifier"})
	}

	return model.SubjectAlternativeName{Names: names}
}

func decodeNameConstraints(cert *x509.Certificate) model.NameConstraints {
	var permitted, excluded []model.GeneralName

	for _, d := range cert.PermittedDNSDomains {
		permitted = append(permitted, model.DNSName(d))
	}
	for _, d := range cert.ExcludedDNSDomains {
		excluded = append(excluded, model.DNSName(d))
	}
	for _, r := range cert.PermittedIPRanges {
		permitted = append(permitted, model.IPNetwork{Net: toIPNet(r)})
	}
	for _, r := range cert.ExcludedIPRanges {
		excluded = append(excluded, model.IPNetwork{Net: toIPNet(r)})
	}

	return model.NameConstraints{PermittedSubtrees: permitted, ExcludedSubtrees: excluded}
}

func toIPNet(n *net.IPNet) net.IPNet {
	if n == nil {
		return net.IPNet{}
	}
	return *n
}
