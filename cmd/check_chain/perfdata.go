// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"fmt"
	"time"

	"github.com/atc0005/go-nagios"

	"github.com/atc0005/pathval/model"
)

// daysUntil reports the number of whole days between now and when, which
// may be negative for a certificate that has already expired.
func daysUntil(when time.Time) int {
	return int(time.Until(when).Hours() / 24)
}

// getPerfData generates performance data metrics describing the attempted
// chain. chain is nil when validation failed before a chain could be
// assembled; leaf is always available, so leaf-derived metrics are reported
// regardless of outcome.
func getPerfData(chain model.Chain, leaf model.Certificate) []nagios.PerformanceData {
	chainLen := 0
	chainDepth := 0
	if chain != nil {
		chainLen = len(chain)
		chainDepth = chain.Depth()
	}

	return []nagios.PerformanceData{
		{
			Label: "chain_length",
			Value: fmt.Sprintf("%d", chainLen),
		},
		{
			Label: "chain_depth",
			Value: fmt.Sprintf("%d", chainDepth),
			Crit:  fmt.Sprintf("%d", model.MaxChainDepth),
		},
		{
			Label:             "leaf_days_remaining",
			Value:             fmt.Sprintf("%d", daysUntil(leaf.NotAfter)),
			UnitOfMeasurement: "d",
		},
	}
}
