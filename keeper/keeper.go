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

package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

type Keeper struct {
	store store.KVStoreService

	logger  log.Logger
	header  header.Service
	event   event.Service
	address address.Codec
	bank    types.BankKeeper
	queue   types.LiquidationQueue
	swap    types.SwapVenue
	oracle  types.PriceOracle
	router  types.InstructionRouter

	Config       collections.Item[types.VaultConfig]
	TotalSupply  collections.Item[math.Int]
	Balances     collections.Map[[]byte, math.Int]
	LastDeposits collections.Map[[]byte, int64]
	LocalFunds   collections.Item[math.Int]
	Bids         collections.Map[uint32, types.BidRecord]
	Locks        collections.Map[uint64, types.CollateralLock]
	LockNextID   collections.Item[uint64]
	Permissions  collections.Map[[]byte, types.Permission]
}

func NewKeeper(
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	bank types.BankKeeper,
	queue types.LiquidationQueue,
	swap types.SwapVenue,
	oracle types.PriceOracle,
	router types.InstructionRouter,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		store: store,

		logger:  logger.With("module", types.ModuleName),
		header:  header,
		event:   event,
		address: address,
		bank:    bank,
		queue:   queue,
		swap:    swap,
		oracle:  oracle,
		router:  router,

		Config:       collections.NewItem(builder, types.ConfigKey, "config", types.VaultConfigValue),
		TotalSupply:  collections.NewItem(builder, types.TotalSupplyKey, "total_supply", sdk.IntValue),
		Balances:     collections.NewMap(builder, types.BalancePrefix, "balances", collections.BytesKey, sdk.IntValue),
		LastDeposits: collections.NewMap(builder, types.LastDepositPrefix, "last_deposits", collections.BytesKey, collections.Int64Value),
		LocalFunds:   collections.NewItem(builder, types.LocalFundsKey, "local_funds", sdk.IntValue),
		Bids:         collections.NewMap(builder, types.BidPrefix, "bids", collections.Uint32Key, types.BidRecordValue),
		Locks:        collections.NewMap(builder, types.CollateralPrefix, "locks", collections.Uint64Key, types.CollateralLockValue),
		LockNextID:   collections.NewItem(builder, types.CollateralNextIDKey, "lock_next_id", collections.Uint64Value),
		Permissions:  collections.NewMap(builder, types.PermissionPrefix, "permissions", collections.BytesKey, types.PermissionValue),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bankKeeper types.BankKeeper) {
	k.bank = bankKeeper
}

// SetInstructionRouter overwrites the router used to dispatch instructions
// to the liquidation queue and swap venue.
func (k *Keeper) SetInstructionRouter(router types.InstructionRouter) {
	k.router = router
}

// Logger returns the module scoped logger.
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// AddressCodec returns the codec used to decode account addresses.
func (k *Keeper) AddressCodec() address.Codec {
	return k.address
}

// atomically runs fn against a cached branch of the store and commits the
// branch, including its events, only when fn succeeds.
func (k *Keeper) atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	cachedCtx, commit := sdk.UnwrapSDKContext(ctx).CacheContext()

	if err := fn(cachedCtx); err != nil {
		return err
	}

	commit()
	return nil
}
