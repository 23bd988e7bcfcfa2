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

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

// InitGenesis loads a validated genesis state into the store.
func (k *Keeper) InitGenesis(ctx context.Context, genesis types.GenesisState) error {
	if err := genesis.Validate(); err != nil {
		return errors.Wrap(err, "invalid genesis state")
	}

	if genesis.Config.Owner != "" {
		if _, err := k.address.StringToBytes(genesis.Config.Owner); err != nil {
			return errors.Wrapf(types.ErrInvalidConfig, "invalid owner address: %s", genesis.Config.Owner)
		}
	}
	if genesis.Config.SwapWallet != "" {
		if _, err := k.address.StringToBytes(genesis.Config.SwapWallet); err != nil {
			return errors.Wrapf(types.ErrInvalidConfig, "invalid swap wallet address: %s", genesis.Config.SwapWallet)
		}
	}
	if err := k.SetConfig(ctx, genesis.Config); err != nil {
		return errors.Wrap(err, "unable to set genesis config")
	}

	for _, balance := range genesis.Balances {
		address, err := k.address.StringToBytes(balance.Address)
		if err != nil {
			return errors.Wrapf(types.ErrInvalidRequest, "invalid balance address: %s", balance.Address)
		}
		if err := k.setBalance(ctx, address, balance.Shares); err != nil {
			return errors.Wrapf(err, "unable to set genesis balance for %s", balance.Address)
		}
	}
	if err := k.TotalSupply.Set(ctx, genesis.TotalSupply); err != nil {
		return errors.Wrap(err, "unable to set genesis total supply")
	}

	for _, deposit := range genesis.LastDeposits {
		address, err := k.address.StringToBytes(deposit.Address)
		if err != nil {
			return errors.Wrapf(types.ErrInvalidRequest, "invalid deposit address: %s", deposit.Address)
		}
		if err := k.LastDeposits.Set(ctx, address, deposit.Time); err != nil {
			return errors.Wrapf(err, "unable to set genesis last deposit for %s", deposit.Address)
		}
	}

	if err := k.LocalFunds.Set(ctx, genesis.LocalFunds); err != nil {
		return errors.Wrap(err, "unable to set genesis local funds")
	}

	for _, bid := range genesis.Bids {
		if err := k.SetBid(ctx, bid); err != nil {
			return errors.Wrapf(err, "unable to set genesis bid at slot %d", bid.PremiumSlot)
		}
	}

	for _, lock := range genesis.Locks {
		if err := k.SetLock(ctx, lock); err != nil {
			return errors.Wrapf(err, "unable to set genesis lock %d", lock.ID)
		}
	}
	if genesis.LockNextID > 0 {
		if err := k.LockNextID.Set(ctx, genesis.LockNextID); err != nil {
			return errors.Wrap(err, "unable to set genesis lock sequence")
		}
	}

	for _, entry := range genesis.Permissions {
		address, err := k.address.StringToBytes(entry.Address)
		if err != nil {
			return errors.Wrapf(types.ErrInvalidRequest, "invalid permission address: %s", entry.Address)
		}
		if entry.Permission.IsEmpty() {
			continue
		}
		if err := k.Permissions.Set(ctx, address, entry.Permission); err != nil {
			return errors.Wrapf(err, "unable to set genesis permission for %s", entry.Address)
		}
	}

	return nil
}

// ExportGenesis reads the full module state into a genesis state.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesisState()

	var err error
	if genesis.Config, err = k.GetConfig(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to export config")
	}
	if genesis.TotalSupply, err = k.GetTotalSupply(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to export total supply")
	}
	if genesis.LocalFunds, err = k.GetLocalFunds(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to export local funds")
	}

	err = k.IterateBalances(ctx, func(address sdk.AccAddress, balance math.Int) (bool, error) {
		addr, err := k.address.BytesToString(address)
		if err != nil {
			return true, err
		}
		genesis.Balances = append(genesis.Balances, types.ShareBalance{Address: addr, Shares: balance})
		return false, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to export balances")
	}

	err = k.LastDeposits.Walk(ctx, nil, func(key []byte, timestamp int64) (bool, error) {
		addr, err := k.address.BytesToString(key)
		if err != nil {
			return true, err
		}
		genesis.LastDeposits = append(genesis.LastDeposits, types.LastDeposit{Address: addr, Time: timestamp})
		return false, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to export last deposits")
	}

	if genesis.Bids, err = k.GetBids(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to export bids")
	}

	err = k.IterateLocks(ctx, func(lock types.CollateralLock) (bool, error) {
		genesis.Locks = append(genesis.Locks, lock)
		return false, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to export locks")
	}

	if genesis.LockNextID, err = k.LockNextID.Get(ctx); err != nil && !isNotFound(err) {
		return nil, errors.Wrap(err, "unable to export lock sequence")
	}

	err = k.Permissions.Walk(ctx, nil, func(key []byte, permission types.Permission) (bool, error) {
		addr, err := k.address.BytesToString(key)
		if err != nil {
			return true, err
		}
		genesis.Permissions = append(genesis.Permissions, types.PermissionEntry{Address: addr, Permission: permission})
		return false, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to export permissions")
	}

	return genesis, nil
}
