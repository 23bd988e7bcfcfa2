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
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

// GetConfig returns the stored vault configuration. Before genesis has run
// the default configuration without an owner is returned.
func (k *Keeper) GetConfig(ctx context.Context) (types.VaultConfig, error) {
	config, err := k.Config.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultVaultConfig(""), nil
		}
		return types.VaultConfig{}, err
	}

	return config, nil
}

// SetConfig persists the provided vault configuration.
func (k *Keeper) SetConfig(ctx context.Context, config types.VaultConfig) error {
	return k.Config.Set(ctx, config)
}

// GetTotalSupply returns the total share supply, zero when unset.
func (k *Keeper) GetTotalSupply(ctx context.Context) (math.Int, error) {
	supply, err := k.TotalSupply.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return supply, nil
}

// GetBalance returns the share balance of an account, zero when unset.
func (k *Keeper) GetBalance(ctx context.Context, address sdk.AccAddress) (math.Int, error) {
	balance, err := k.Balances.Get(ctx, address)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return balance, nil
}

// setBalance stores a share balance. Zero balances are pruned.
func (k *Keeper) setBalance(ctx context.Context, address sdk.AccAddress, balance math.Int) error {
	if balance.IsZero() {
		if err := k.Balances.Remove(ctx, address); err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.Balances.Set(ctx, address, balance)
}

// IterateBalances walks every non-zero share balance.
func (k *Keeper) IterateBalances(ctx context.Context, fn func(address sdk.AccAddress, balance math.Int) (bool, error)) error {
	return k.Balances.Walk(ctx, nil, func(key []byte, balance math.Int) (bool, error) {
		return fn(sdk.AccAddress(key), balance)
	})
}

// GetLastDeposit returns the unix time of an account's last deposit. The
// boolean flag indicates whether the account ever deposited.
func (k *Keeper) GetLastDeposit(ctx context.Context, address sdk.AccAddress) (int64, bool, error) {
	timestamp, err := k.LastDeposits.Get(ctx, address)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return timestamp, true, nil
}

// GetLocalFunds returns the free UST held by the vault, zero when unset.
func (k *Keeper) GetLocalFunds(ctx context.Context) (math.Int, error) {
	funds, err := k.LocalFunds.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return funds, nil
}

// AddLocalFunds increments the free UST held by the vault.
func (k *Keeper) AddLocalFunds(ctx context.Context, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}

	current, err := k.GetLocalFunds(ctx)
	if err != nil {
		return err
	}

	current, err = types.SafeAdd(current, amount)
	if err != nil {
		return err
	}

	return k.LocalFunds.Set(ctx, current)
}

// SubtractLocalFunds decrements the free UST held by the vault.
func (k *Keeper) SubtractLocalFunds(ctx context.Context, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}

	current, err := k.GetLocalFunds(ctx)
	if err != nil {
		return err
	}

	current, err = types.SafeSub(current, amount)
	if err != nil {
		return err
	}

	return k.LocalFunds.Set(ctx, current)
}

// GetBid returns the bid record at a premium slot. The boolean flag
// indicates whether the record existed in state.
func (k *Keeper) GetBid(ctx context.Context, slot uint32) (types.BidRecord, bool, error) {
	bid, err := k.Bids.Get(ctx, slot)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.BidRecord{}, false, nil
		}
		return types.BidRecord{}, false, err
	}

	return bid, true, nil
}

// SetBid stores a bid record under its premium slot.
func (k *Keeper) SetBid(ctx context.Context, bid types.BidRecord) error {
	return k.Bids.Set(ctx, bid.PremiumSlot, bid)
}

// DeleteBid removes the bid record at a premium slot.
func (k *Keeper) DeleteBid(ctx context.Context, slot uint32) error {
	return k.Bids.Remove(ctx, slot)
}

// GetBids returns every bid record ordered by premium slot.
func (k *Keeper) GetBids(ctx context.Context) ([]types.BidRecord, error) {
	var bids []types.BidRecord
	err := k.Bids.Walk(ctx, nil, func(_ uint32, bid types.BidRecord) (bool, error) {
		bids = append(bids, bid)
		return false, nil
	})

	return bids, err
}

// NextLockID increments and returns the next collateral lock identifier.
// Identifiers start at one.
func (k *Keeper) NextLockID(ctx context.Context) (uint64, error) {
	next, err := k.LockNextID.Get(ctx)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return 0, err
		}

		next = 1
	} else {
		next++
	}

	if err := k.LockNextID.Set(ctx, next); err != nil {
		return 0, err
	}

	return next, nil
}

// SetLock stores a collateral lock entry under its identifier.
func (k *Keeper) SetLock(ctx context.Context, lock types.CollateralLock) error {
	return k.Locks.Set(ctx, lock.ID, lock)
}

// GetLock fetches a collateral lock entry by id.
func (k *Keeper) GetLock(ctx context.Context, id uint64) (types.CollateralLock, bool, error) {
	lock, err := k.Locks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.CollateralLock{}, false, nil
		}
		return types.CollateralLock{}, false, err
	}

	return lock, true, nil
}

// IterateLocks walks the collateral lock entries in claim order.
func (k *Keeper) IterateLocks(ctx context.Context, fn func(lock types.CollateralLock) (bool, error)) error {
	return k.Locks.Walk(ctx, nil, func(_ uint64, lock types.CollateralLock) (bool, error) {
		return fn(lock)
	})
}

// GetPermission returns the permission record of an account. Accounts
// without a record hold no permissions.
func (k *Keeper) GetPermission(ctx context.Context, address sdk.AccAddress) (types.Permission, error) {
	permission, err := k.Permissions.Get(ctx, address)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Permission{}, nil
		}
		return types.Permission{}, err
	}

	return permission, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, collections.ErrNotFound)
}
