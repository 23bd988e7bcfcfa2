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

// TotalCap is the UST-equivalent value of the vault split into its parts.
type TotalCap struct {
	Total      math.Int
	Free       math.Int
	Committed  math.Int
	Collateral math.Int
}

// CollateralTotals sums the collateral lock entries that have not been
// swapped yet.
type CollateralTotals struct {
	Locked        math.Int
	Unlocked      math.Int
	LockedValue   math.Int
	UnlockedValue math.Int
}

// GetCollateralTotals walks the lock pipeline and sums amounts and
// valuations per state. Swapped entries are ignored.
func (k *Keeper) GetCollateralTotals(ctx context.Context) (CollateralTotals, error) {
	totals := CollateralTotals{
		Locked:        math.ZeroInt(),
		Unlocked:      math.ZeroInt(),
		LockedValue:   math.ZeroInt(),
		UnlockedValue: math.ZeroInt(),
	}

	err := k.IterateLocks(ctx, func(lock types.CollateralLock) (bool, error) {
		var err error
		switch lock.Status {
		case types.LOCK_STATUS_LOCKED:
			if totals.Locked, err = types.SafeAdd(totals.Locked, lock.Amount); err != nil {
				return true, err
			}
			if totals.LockedValue, err = types.SafeAdd(totals.LockedValue, lock.Value); err != nil {
				return true, err
			}
		case types.LOCK_STATUS_UNLOCKED:
			if totals.Unlocked, err = types.SafeAdd(totals.Unlocked, lock.Amount); err != nil {
				return true, err
			}
			if totals.UnlockedValue, err = types.SafeAdd(totals.UnlockedValue, lock.Value); err != nil {
				return true, err
			}
		}

		return false, nil
	})
	if err != nil {
		return CollateralTotals{}, errors.Wrap(err, "unable to sum collateral locks")
	}

	return totals, nil
}

// GetCommittedFunds sums the UST committed to outstanding bids.
func (k *Keeper) GetCommittedFunds(ctx context.Context) (math.Int, error) {
	committed := math.ZeroInt()
	err := k.Bids.Walk(ctx, nil, func(_ uint32, bid types.BidRecord) (bool, error) {
		var err error
		committed, err = types.SafeAdd(committed, bid.Amount)
		return err != nil, err
	})
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to sum bid records")
	}

	return committed, nil
}

// GetTotalCap computes free UST plus committed bids plus the claim-time
// valuation of collateral that has not been swapped.
func (k *Keeper) GetTotalCap(ctx context.Context) (TotalCap, error) {
	free, err := k.GetLocalFunds(ctx)
	if err != nil {
		return TotalCap{}, errors.Wrap(err, "unable to get local funds from state")
	}

	committed, err := k.GetCommittedFunds(ctx)
	if err != nil {
		return TotalCap{}, err
	}

	collateral, err := k.GetCollateralTotals(ctx)
	if err != nil {
		return TotalCap{}, err
	}

	collateralValue, err := types.SafeAdd(collateral.LockedValue, collateral.UnlockedValue)
	if err != nil {
		return TotalCap{}, err
	}

	total, err := types.SafeAdd(free, committed)
	if err != nil {
		return TotalCap{}, err
	}
	if total, err = types.SafeAdd(total, collateralValue); err != nil {
		return TotalCap{}, err
	}

	return TotalCap{
		Total:      total,
		Free:       free,
		Committed:  committed,
		Collateral: collateralValue,
	}, nil
}

// GetWithdrawableLimit returns the UST an account could redeem right now
// for its entire share balance without touching committed funds.
func (k *Keeper) GetWithdrawableLimit(ctx context.Context, address sdk.AccAddress) (math.Int, error) {
	balance, err := k.GetBalance(ctx, address)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to get share balance from state")
	}

	supply, err := k.GetTotalSupply(ctx)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to get total supply from state")
	}
	if balance.IsZero() || supply.IsZero() {
		return math.ZeroInt(), nil
	}

	free, err := k.GetLocalFunds(ctx)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to get local funds from state")
	}

	return types.MulDivFloor(balance, free, supply)
}
