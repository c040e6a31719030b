// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package nametree

import (
	"net"
	"testing"
)

func TestMatchIPRequiresExactAddress(t *testing.T) {
	a := net.ParseIP("192.0.2.1")
	b := net.ParseIP("192.0.2.1")
	c := net.ParseIP("192.0.2.2")

	if !MatchIP(a, b) {
		t.Fatal("expected equal IP addresses to match")
	}
	if MatchIP(a, c) {
		t.Fatal("did not expect different IP addresses to match")
	}
}

func TestMatchIPComparesV4MappedAndV4Forms(t *testing.T) {
	v4 := net.ParseIP("192.0.2.1")
	mapped := net.ParseIP("::ffff:192.0.2.1")

	if !MatchIP(v4, mapped) {
		t.Fatal("expected net.IP.Equal to treat v4 and v4-mapped-v6 forms as equal")
	}
}
