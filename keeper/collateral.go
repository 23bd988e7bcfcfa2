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
	"strconv"
	"time"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

// ClaimLiquidation claims the collateral the queue has liquidated into the
// vault's bids and appends it to the lock pipeline, valued at the oracle
// price at claim time.
func (k *Keeper) ClaimLiquidation(ctx context.Context) (*types.ClaimLiquidationsInstruction, types.CollateralLock, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, types.CollateralLock{}, errors.Wrap(err, "unable to get config from state")
	}

	queueBids, err := k.queue.BidsByUser(ctx, config.CollateralDenom, types.ModuleAddress)
	if err != nil {
		return nil, types.CollateralLock{}, errors.Wrap(err, "unable to query liquidation queue")
	}

	pending, idxs, err := claimableBids(queueBids)
	if err != nil {
		return nil, types.CollateralLock{}, err
	}
	if pending.IsZero() {
		k.logger.Debug("nothing to claim from liquidation queue")
		return nil, types.CollateralLock{}, nil
	}

	price, err := k.oracle.Price(ctx, config.CollateralDenom, config.StableDenom)
	if err != nil {
		return nil, types.CollateralLock{}, errors.Wrap(err, "unable to query collateral price")
	}
	if price.IsNil() || !price.IsPositive() {
		return nil, types.CollateralLock{}, errors.Wrapf(types.ErrInvalidRequest, "invalid collateral price %s", price)
	}

	value, err := types.MulDecFloor(pending, price)
	if err != nil {
		return nil, types.CollateralLock{}, errors.Wrap(err, "unable to value claimed collateral")
	}

	now := k.header.GetHeaderInfo(ctx).Time
	result, err := k.reconcileBids(ctx, queueBids, now, true)
	if err != nil {
		return nil, types.CollateralLock{}, err
	}

	id, err := k.NextLockID(ctx)
	if err != nil {
		return nil, types.CollateralLock{}, errors.Wrap(err, "unable to allocate lock id")
	}

	lock := types.CollateralLock{
		ID:        id,
		Amount:    pending,
		Value:     value,
		ClaimedAt: now,
		UnlockAt:  now.Add(time.Duration(config.LockPeriod) * time.Second),
		Status:    types.LOCK_STATUS_LOCKED,
	}
	if err := k.SetLock(ctx, lock); err != nil {
		return nil, types.CollateralLock{}, errors.Wrap(err, "unable to set lock to state")
	}

	instruction := &types.ClaimLiquidationsInstruction{
		CollateralDenom: config.CollateralDenom,
		BidIdxs:         idxs,
	}
	if err := k.router.Dispatch(ctx, types.ModuleAddress, *instruction); err != nil {
		return nil, types.CollateralLock{}, errors.Wrap(err, "unable to dispatch liquidation claim")
	}

	k.logger.Info("claimed liquidated collateral",
		"lock_id", id,
		"amount", pending.String(),
		"value", value.String(),
		"consumed", result.Consumed.String(),
		"reclaimed", result.Reclaimed.String(),
	)

	return instruction, lock, k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeClaimLiquidation,
		event.Attribute{Key: types.AttributeKeyLockID, Value: strconv.FormatUint(id, 10)},
		event.Attribute{Key: types.AttributeKeyAmount, Value: pending.String()},
		event.Attribute{Key: types.AttributeKeyValue, Value: value.String()},
		event.Attribute{Key: types.AttributeKeyUnlockAt, Value: strconv.FormatInt(lock.UnlockAt.Unix(), 10)},
	)
}

// GetClaimable returns the collateral pending in the vault's queue bids.
func (k *Keeper) GetClaimable(ctx context.Context) (math.Int, []math.Int, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return math.ZeroInt(), nil, errors.Wrap(err, "unable to get config from state")
	}

	queueBids, err := k.queue.BidsByUser(ctx, config.CollateralDenom, types.ModuleAddress)
	if err != nil {
		return math.ZeroInt(), nil, errors.Wrap(err, "unable to query liquidation queue")
	}

	return claimableBids(queueBids)
}

// Unlock advances every locked entry whose lock period has elapsed.
func (k *Keeper) Unlock(ctx context.Context) (uint64, math.Int, error) {
	now := k.header.GetHeaderInfo(ctx).Time

	var due []types.CollateralLock
	err := k.IterateLocks(ctx, func(lock types.CollateralLock) (bool, error) {
		if lock.Status == types.LOCK_STATUS_LOCKED && !now.Before(lock.UnlockAt) {
			due = append(due, lock)
		}
		return false, nil
	})
	if err != nil {
		return 0, math.ZeroInt(), errors.Wrap(err, "unable to iterate collateral locks")
	}
	if len(due) == 0 {
		return 0, math.ZeroInt(), nil
	}

	unlocked := math.ZeroInt()
	for _, lock := range due {
		lock.Status = types.LOCK_STATUS_UNLOCKED
		if err := k.SetLock(ctx, lock); err != nil {
			return 0, math.ZeroInt(), errors.Wrapf(err, "unable to set lock %d to state", lock.ID)
		}
		if unlocked, err = types.SafeAdd(unlocked, lock.Amount); err != nil {
			return 0, math.ZeroInt(), err
		}
	}

	k.logger.Info("unlocked collateral", "entries", len(due), "amount", unlocked.String())

	return uint64(len(due)), unlocked, k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeUnlock,
		event.Attribute{Key: types.AttributeKeyAmount, Value: unlocked.String()},
	)
}

// Swap sells all unlocked collateral through the configured swap wallet and
// credits the simulated proceeds to the free funds.
func (k *Keeper) Swap(ctx context.Context) (types.SwapInstruction, math.Int, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return types.SwapInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to get config from state")
	}
	if config.SwapWallet == "" {
		return types.SwapInstruction{}, math.ZeroInt(), errors.Wrap(types.ErrInvalidConfig, "swap wallet is not configured")
	}

	var unlocked []types.CollateralLock
	total := math.ZeroInt()
	err = k.IterateLocks(ctx, func(lock types.CollateralLock) (bool, error) {
		if lock.Status != types.LOCK_STATUS_UNLOCKED {
			return false, nil
		}

		var sumErr error
		unlocked = append(unlocked, lock)
		total, sumErr = types.SafeAdd(total, lock.Amount)
		return sumErr != nil, sumErr
	})
	if err != nil {
		return types.SwapInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to iterate collateral locks")
	}
	if total.IsZero() {
		return types.SwapInstruction{}, math.ZeroInt(), errors.Wrap(types.ErrNothingToSwap, "no unlocked collateral")
	}

	offer := sdk.NewCoin(config.CollateralDenom, total)
	expected, err := k.swap.SimulateSwap(ctx, offer, config.StableDenom)
	if err != nil {
		return types.SwapInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to simulate swap")
	}
	if err := types.CheckQuantity(expected); err != nil {
		return types.SwapInstruction{}, math.ZeroInt(), errors.Wrap(err, "invalid simulated swap return")
	}
	if !expected.IsPositive() {
		return types.SwapInstruction{}, math.ZeroInt(), errors.Wrap(types.ErrInsufficientLiquidity, "swap would return nothing")
	}

	for _, lock := range unlocked {
		lock.Status = types.LOCK_STATUS_SWAPPED
		lock.Value = math.ZeroInt()
		if err := k.SetLock(ctx, lock); err != nil {
			return types.SwapInstruction{}, math.ZeroInt(), errors.Wrapf(err, "unable to set lock %d to state", lock.ID)
		}
	}
	if err := k.AddLocalFunds(ctx, expected); err != nil {
		return types.SwapInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to credit swap proceeds")
	}

	instruction := types.SwapInstruction{
		Venue:          config.SwapWallet,
		Offer:          offer,
		AskDenom:       config.StableDenom,
		MinimumReceive: expected,
	}
	if err := k.router.Dispatch(ctx, types.ModuleAddress, instruction); err != nil {
		return types.SwapInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to dispatch swap")
	}

	k.logger.Info("swapped collateral", "offer", offer.String(), "received", expected.String())

	return instruction, expected, k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeSwap,
		event.Attribute{Key: types.AttributeKeyAmount, Value: total.String()},
		event.Attribute{Key: types.AttributeKeyReceived, Value: expected.String()},
	)
}

func claimableBids(queueBids []types.QueueBid) (math.Int, []math.Int, error) {
	pending := math.ZeroInt()
	var idxs []math.Int
	for _, bid := range queueBids {
		if bid.PendingLiquidatedCollateral.IsNil() || !bid.PendingLiquidatedCollateral.IsPositive() {
			continue
		}

		var err error
		if pending, err = types.SafeAdd(pending, bid.PendingLiquidatedCollateral); err != nil {
			return math.ZeroInt(), nil, err
		}
		idxs = append(idxs, bid.Idx)
	}

	return pending, idxs, nil
}
