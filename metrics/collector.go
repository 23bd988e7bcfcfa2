// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2026, Kallisto Finance. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package metrics

import (
	"context"
	"strconv"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/keeper"
)

const Namespace = "vault"

// ContextFunc returns the context the collector reads vault state from,
// typically a query context at the latest committed height.
type ContextFunc func() (context.Context, error)

type Collector struct {
	keeper  *keeper.Keeper
	context ContextFunc
	logger  log.Logger

	totalSupply *prometheus.Desc
	totalCap    *prometheus.Desc
	collateral  *prometheus.Desc
	paused      *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(k *keeper.Keeper, contextFn ContextFunc, logger log.Logger) *Collector {
	return &Collector{
		keeper:  k,
		context: contextFn,
		logger:  logger.With("collector", "vault"),
		totalSupply: prometheus.NewDesc(
			Namespace+"_total_supply",
			"Outstanding vault shares.",
			nil,
			prometheus.Labels{},
		),
		totalCap: prometheus.NewDesc(
			Namespace+"_total_cap",
			"UST-equivalent value of the vault by component.",
			[]string{"component"},
			prometheus.Labels{},
		),
		collateral: prometheus.NewDesc(
			Namespace+"_collateral",
			"Collateral held in the lock pipeline by status.",
			[]string{"status"},
			prometheus.Labels{},
		),
		paused: prometheus.NewDesc(
			Namespace+"_paused",
			"1 while the vault is paused, otherwise 0.",
			nil,
			prometheus.Labels{},
		),
	}
}

// Describe describes to Prometheus the metrics this collector will collect
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalSupply
	ch <- c.totalCap
	ch <- c.collateral
	ch <- c.paused
}

// Collect reads the vault state and reports it as gauges. Metrics whose
// source fails to load are skipped.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, err := c.context()
	if err != nil {
		c.logger.Error("failed to get query context", "err", err)
		return
	}

	if supply, err := c.keeper.GetTotalSupply(ctx); err != nil {
		c.logger.Error("failed to get total supply", "err", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.totalSupply, prometheus.GaugeValue, toFloat(supply))
	}

	if totalCap, err := c.keeper.GetTotalCap(ctx); err != nil {
		c.logger.Error("failed to get total cap", "err", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.totalCap, prometheus.GaugeValue, toFloat(totalCap.Total), "total")
		ch <- prometheus.MustNewConstMetric(c.totalCap, prometheus.GaugeValue, toFloat(totalCap.Free), "free")
		ch <- prometheus.MustNewConstMetric(c.totalCap, prometheus.GaugeValue, toFloat(totalCap.Committed), "committed")
		ch <- prometheus.MustNewConstMetric(c.totalCap, prometheus.GaugeValue, toFloat(totalCap.Collateral), "collateral")
	}

	if totals, err := c.keeper.GetCollateralTotals(ctx); err != nil {
		c.logger.Error("failed to get collateral totals", "err", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.collateral, prometheus.GaugeValue, toFloat(totals.Locked), "locked")
		ch <- prometheus.MustNewConstMetric(c.collateral, prometheus.GaugeValue, toFloat(totals.Unlocked), "unlocked")
	}

	if config, err := c.keeper.GetConfig(ctx); err != nil {
		c.logger.Error("failed to get config", "err", err)
	} else {
		var paused float64
		if config.Paused {
			paused = 1
		}
		ch <- prometheus.MustNewConstMetric(c.paused, prometheus.GaugeValue, paused)
	}
}

func toFloat(x math.Int) float64 {
	val, _ := strconv.ParseFloat(x.String(), 64)
	return val
}
