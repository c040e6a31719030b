// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

// Recognized extension OIDs, in dotted-decimal string form (matching how
// ExtensionSet keys its entries).
const (
	OIDBasicConstraints   = "2.5.29.19"
	OIDKeyUsage           = "2.5.29.15"
	OIDExtendedKeyUsage   = "2.5.29.37"
	OIDSubjectAltName     = "2.5.29.17"
	OIDNameConstraints    = "2.5.29.30"
	OIDAnyExtendedKeyUsage = "2.5.29.37.0"

	// OIDServerAuthEKU is the id-kp-serverAuth extended key usage, the
	// default requested EKU when a caller doesn't ask for a specific
	// purpose.
	OIDServerAuthEKU = "1.3.6.1.5.5.7.3.1"
)

// ExtensionVariant is a closed sum type over the decoded extension shapes
// this package recognizes. Implementations are BasicConstraints, KeyUsage,
// ExtendedKeyUsage, SubjectAlternativeName, NameConstraints, and Opaque.
// Every extension OID this package doesn't decode into one of the named
// variants surfaces as Opaque, never as an open/extensible type.
type ExtensionVariant interface {
	isExtensionVariant()
}

// BasicConstraints mirrors the X.509 BasicConstraints extension.
type BasicConstraints struct {
	IsCA bool

	// PathLen is nil when the extension doesn't declare a path length
	// constraint (an absent path length means "no limit", not zero).
	PathLen *int
}

func (BasicConstraints) isExtensionVariant() {}

// KeyUsageBit identifies one bit of the nine-bit X.509 KeyUsage bitfield.
type KeyUsageBit uint16

const (
	KeyUsageDigitalSignature KeyUsageBit = 1 << iota
	KeyUsageContentCommitment
	KeyUsageKeyEncipherment
	KeyUsageDataEncipherment
	KeyUsageKeyAgreement
	KeyUsageKeyCertSign
	KeyUsageCRLSign
	KeyUsageEncipherOnly
	KeyUsageDecipherOnly
)

// KeyUsage mirrors the X.509 KeyUsage extension as a bitfield.
type KeyUsage struct {
	Bits KeyUsageBit
}

func (KeyUsage) isExtensionVariant() {}

// Has reports whether the given bit is set.
func (k KeyUsage) Has(bit KeyUsageBit) bool {
	return k.Bits&bit != 0
}

// ExtendedKeyUsage mirrors the X.509 ExtendedKeyUsage extension: a set of
// OIDs (in dotted-decimal string form), plus a flag for whether the
// wildcard anyExtendedKeyUsage OID is present.
type ExtendedKeyUsage struct {
	OIDs []string
	Any  bool
}

func (ExtendedKeyUsage) isExtensionVariant() {}

// Permits reports whether this ExtendedKeyUsage set covers the requested
// OID, per the anyExtendedKeyUsage wildcard rule.
func (e ExtendedKeyUsage) Permits(oid string) bool {
	if e.Any {
		return true
	}
	for _, have := range e.OIDs {
		if have == oid {
			return true
		}
	}
	return false
}

// SubjectAlternativeName mirrors the X.509 SubjectAltName extension: an
// ordered sequence of GeneralName entries.
type SubjectAlternativeName struct {
	Names []GeneralName
}

func (SubjectAlternativeName) isExtensionVariant() {}

// NameConstraints mirrors the X.509 NameConstraints extension.
type NameConstraints struct {
	PermittedSubtrees []GeneralName
	ExcludedSubtrees  []GeneralName
}

func (NameConstraints) isExtensionVariant() {}

// Opaque represents an extension whose OID this package does not decode
// into a structured variant. The raw bytes are retained for completeness
// but are never interpreted.
type Opaque struct {
	Value []byte
}

func (Opaque) isExtensionVariant() {}

// Extension pairs a decoded (or opaque) extension value with its critical
// flag, exactly as spec.md's data model requires.
type Extension struct {
	OID      string
	Critical bool
	Variant  ExtensionVariant
}

// ExtensionSet is a certificate's extension list keyed by OID (dotted
// decimal string form). Lookup helpers return the decoded variant and a
// boolean reporting presence, mirroring the "comma ok" idiom used
// throughout this package.
type ExtensionSet map[string]Extension

// BasicConstraints returns the decoded BasicConstraints extension, if
// present.
func (s ExtensionSet) BasicConstraints() (BasicConstraints, bool) {
	ext, ok := s[OIDBasicConstraints]
	if !ok {
		return BasicConstraints{}, false
	}
	bc, ok := ext.Variant.(BasicConstraints)
	return bc, ok
}

// KeyUsage returns the decoded KeyUsage extension, if present.
func (s ExtensionSet) KeyUsage() (KeyUsage, bool) {
	ext, ok := s[OIDKeyUsage]
	if !ok {
		return KeyUsage{}, false
	}
	ku, ok := ext.Variant.(KeyUsage)
	return ku, ok
}

// ExtendedKeyUsage returns the decoded ExtendedKeyUsage extension, if
// present.
func (s ExtensionSet) ExtendedKeyUsage() (ExtendedKeyUsage, bool) {
	ext, ok := s[OIDExtendedKeyUsage]
	if !ok {
		return ExtendedKeyUsage{}, false
	}
	eku, ok := ext.Variant.(ExtendedKeyUsage)
	return eku, ok
}

// SubjectAlternativeName returns the decoded SubjectAlternativeName
// extension, if present.
func (s ExtensionSet) SubjectAlternativeName() (SubjectAlternativeName, bool) {
	ext, ok := s[OIDSubjectAltName]
	if !ok {
		return SubjectAlternativeName{}, false
	}
	san, ok := ext.Variant.(SubjectAlternativeName)
	return san, ok
}

// NameConstraints returns the decoded NameConstraints extension, if
// present.
func (s ExtensionSet) NameConstraints() (NameConstraints, bool) {
	ext, ok := s[OIDNameConstraints]
	if !ok {
		return NameConstraints{}, false
	}
	nc, ok := ext.Variant.(NameConstraints)
	return nc, ok
}

// UnrecognizedCritical returns the OIDs of every critical extension whose
// variant is Opaque, i.e. every critical extension this package doesn't
// know how to interpret.
func (s ExtensionSet) UnrecognizedCritical() []string {
	var oids []string
	for oid, ext := range s {
		if !ext.Critical {
			continue
		}
		if _, isOpaque := ext.Variant.(Opaque); isOpaque {
			oids = append(oids, oid)
		}
	}
	return oids
}
