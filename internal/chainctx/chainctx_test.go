// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chainctx

import (
	"testing"

	"github.com/atc0005/pathval/internal/config"
	"github.com/atc0005/pathval/model"
)

func TestBuildRejectsMalformedIPAddress(t *testing.T) {
	cfg := &config.Config{IPAddress: "not-an-ip"}

	if _, err := Build(cfg); err == nil {
		t.Fatal("expected Build to reject a malformed IP address")
	}
}

func TestBuildPrefersDNSNameOverIPAddress(t *testing.T) {
	cfg := &config.Config{DNSName: "example.com", IPAddress: "203.0.113.7"}

	ctx, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ctx.RequestedName != model.DNSName("example.com") {
		t.Fatalf("expected requested name to be example.com, got %v", ctx.RequestedName)
	}
}

func TestBuildCollectsAllowedCriticalExtensions(t *testing.T) {
	cfg := &config.Config{
		AllowedCriticalExtensionOIDs: []string{"2.5.29.99", "1.2.3.4"},
	}

	ctx, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := ctx.AllowedCriticalExtensions["2.5.29.99"]; !ok {
		t.Fatal("expected 2.5.29.99 to be in the allowed set")
	}
	if _, ok := ctx.AllowedCriticalExtensions["1.2.3.4"]; !ok {
		t.Fatal("expected 1.2.3.4 to be in the allowed set")
	}
}

func TestBuildWithNoIdentityLeavesRequestedNameNil(t *testing.T) {
	cfg := &config.Config{}

	ctx, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.RequestedName != nil {
		t.Fatalf("expected nil requested name, got %v", ctx.RequestedName)
	}
}
