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

package mocks

import (
	"context"
	"testing"

	"cosmossdk.io/core/header"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/keeper"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

// HeaderService reads the header info from the wrapped SDK context.
type HeaderService struct{}

var _ header.Service = HeaderService{}

func (HeaderService) GetHeaderInfo(ctx context.Context) header.Info {
	return sdk.UnwrapSDKContext(ctx).HeaderInfo()
}

// Externals groups the mocked protocols the vault talks to.
type Externals struct {
	Bank   BankKeeper
	Queue  *LiquidationQueue
	Venue  *SwapVenue
	Oracle *PriceOracle
	Router *Router
}

// NewExternals wires a bank, queue, venue, oracle and router together. The
// oracle prices collateral at one stable unit and the venue swaps 1:1.
func NewExternals() *Externals {
	bank := BankKeeper{Balances: make(map[string]sdk.Coins)}
	queue := NewLiquidationQueue(bank)
	venue := &SwapVenue{Rate: math.LegacyOneDec()}
	oracle := &PriceOracle{Prices: map[string]math.LegacyDec{
		types.DefaultCollateralDenom + "/" + types.DefaultStableDenom: math.LegacyOneDec(),
	}}

	return &Externals{
		Bank:   bank,
		Queue:  queue,
		Venue:  venue,
		Oracle: oracle,
		Router: &Router{Bank: bank, Queue: queue, Venue: venue},
	}
}

func VaultKeeper(t testing.TB) (*keeper.Keeper, *Externals, sdk.Context) {
	externals := NewExternals()
	k, ctx := VaultKeeperWithExternals(t, externals)

	return k, externals, ctx
}

func VaultKeeperWithExternals(t testing.TB, externals *Externals) (*keeper.Keeper, sdk.Context) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey("transient_" + types.ModuleName)
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		HeaderService{},
		runtime.EventService{},
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		externals.Bank,
		externals.Queue,
		externals.Venue,
		externals.Oracle,
		externals.Router,
	)

	return k, wrapper.Ctx
}
