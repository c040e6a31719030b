// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

import (
	"fmt"
	"net"
)

// NameType identifies which of the closed GeneralName variants a value
// holds. The variant set is fixed by policy; callers switch on this value
// instead of relying on open type assertions so that an unrecognized SAN
// type is always routed to the Opaque case.
type NameType int

const (
	// DNSNameType identifies a GeneralName holding a DNS host name.
	DNSNameType NameType = iota

	// IPAddressType identifies a GeneralName holding a single IP address.
	IPAddressType

	// IPNetworkType identifies a GeneralName holding a CIDR network. This
	// variant is only ever produced for name-constraint subtrees; it is
	// never a legal SAN entry on its own and never matched positively
	// against a requested name.
	IPNetworkType

	// OpaqueNameType identifies any GeneralName type not given positive
	// matching semantics by this package (email address, URI, directory
	// name, registered ID, and so on). These are recognized structurally
	// so that name-constraint accumulation can still reason about which
	// name types a certificate restricts, but they never satisfy a SAN
	// match request.
	OpaqueNameType
)

func (t NameType) String() string {
	switch t {
	case DNSNameType:
		return "dNSName"
	case IPAddressType:
		return "iPAddress"
	case IPNetworkType:
		return "iPAddress (network)"
	default:
		return "opaque"
	}
}

// GeneralName is a closed sum type over the X.509 GeneralName choices this
// package gives matching semantics to. Implementations are DNSName,
// IPAddress, IPNetwork, and OpaqueName.
type GeneralName interface {
	// Type reports which closed variant this value holds.
	Type() NameType

	// String returns a human-readable rendering, used in diagnostics.
	String() string
}

// DNSName is a GeneralName holding a DNS host name, taken verbatim from the
// certificate (not yet case-folded or dot-normalized; see nametree for
// comparison rules).
type DNSName string

// Type implements GeneralName.
func (DNSName) Type() NameType { return DNSNameType }

// String implements GeneralName.
func (n DNSName) String() string { return string(n) }

// IPAddress is a GeneralName holding a single IP address (v4 or v6).
type IPAddress struct {
	Addr net.IP
}

// Type implements GeneralName.
func (IPAddress) Type() NameType { return IPAddressType }

// String implements GeneralName.
func (n IPAddress) String() string { return n.Addr.String() }

// IPNetwork is a GeneralName holding a CIDR network, used exclusively for
// name-constraint subtrees per spec: CIDR semantics only apply inside
// constraint subtrees, never as a positive SAN match target.
type IPNetwork struct {
	Net net.IPNet
}

// Type implements GeneralName.
func (IPNetwork) Type() NameType { return IPNetworkType }

// String implements GeneralName.
func (n IPNetwork) String() string { return n.Net.String() }

// OpaqueName is a GeneralName of a type this package does not give positive
// matching semantics to (rfc822Name, uniformResourceIdentifier,
// directoryName, registeredID, x400Address, ediPartyName, otherName). Kind
// records the ASN.1 tag name for diagnostics only.
type OpaqueName struct {
	Kind string
}

// Type implements GeneralName.
func (OpaqueName) Type() NameType { return OpaqueNameType }

// String implements GeneralName.
func (n OpaqueName) String() string { return fmt.Sprintf("opaque(%s)", n.Kind) }
