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
	"time"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

// Deposit accepts UST from a depositor and mints shares against the current
// total cap. The first deposit into an empty vault mints one share per unit.
func (k *Keeper) Deposit(ctx context.Context, depositor sdk.AccAddress, amount math.Int) (math.Int, math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(types.ErrInvalidAmount, "deposit amount must be positive")
	}
	if err := types.CheckQuantity(amount); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	config, err := k.GetConfig(ctx)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(err, "unable to get config from state")
	}
	if config.Paused {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(types.ErrVaultPaused, "deposits are disabled")
	}

	supply, err := k.GetTotalSupply(ctx)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(err, "unable to get total supply from state")
	}

	minted := amount
	if supply.IsPositive() {
		totalCap, err := k.GetTotalCap(ctx)
		if err != nil {
			return math.ZeroInt(), math.ZeroInt(), errors.Wrap(err, "unable to compute total cap")
		}
		if totalCap.Total.IsZero() {
			return math.ZeroInt(), math.ZeroInt(), errors.Wrap(types.ErrDivision, "total cap is zero while shares are outstanding")
		}

		minted, err = types.MulDivFloor(amount, supply, totalCap.Total)
		if err != nil {
			return math.ZeroInt(), math.ZeroInt(), errors.Wrap(err, "unable to compute minted shares")
		}
	}
	if minted.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(types.ErrInvalidAmount, "deposit too small to mint a share")
	}

	balance := k.bank.GetBalance(ctx, depositor, config.StableDenom).Amount
	if balance.LT(amount) {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(types.ErrInsufficientBalance, "insufficient balance for deposit")
	}

	coin := sdk.NewCoin(config.StableDenom, amount)
	if err := k.bank.SendCoins(ctx, depositor, types.ModuleAddress, sdk.NewCoins(coin)); err != nil {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(err, "unable to transfer deposit into module account")
	}

	if err := k.AddLocalFunds(ctx, amount); err != nil {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(err, "unable to record local funds")
	}

	if err := k.mint(ctx, depositor, minted); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	now := k.header.GetHeaderInfo(ctx).Time
	if err := k.LastDeposits.Set(ctx, depositor, now.Unix()); err != nil {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(err, "unable to set last deposit to state")
	}

	supply, err = k.GetTotalSupply(ctx)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(err, "unable to get total supply from state")
	}

	k.logger.Info("processed deposit", "depositor", depositor.String(), "amount", amount.String(), "shares", minted.String())

	return minted, supply, k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeDeposit,
		event.Attribute{Key: types.AttributeKeyFrom, Value: depositor.String()},
		event.Attribute{Key: types.AttributeKeyAmount, Value: amount.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: minted.String()},
	)
}

// WithdrawUst burns shares for their pro-rata portion of the free UST.
func (k *Keeper) WithdrawUst(ctx context.Context, withdrawer sdk.AccAddress, shares math.Int) (math.Int, error) {
	config, supply, err := k.checkWithdrawal(ctx, withdrawer, shares, true)
	if err != nil {
		return math.ZeroInt(), err
	}

	free, err := k.GetLocalFunds(ctx)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to get local funds from state")
	}

	payout, err := types.MulDivFloor(shares, free, supply)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to compute withdrawal amount")
	}
	if payout.IsZero() {
		return math.ZeroInt(), errors.Wrap(types.ErrInsufficientLiquidity, "no free funds to withdraw")
	}
	if held := k.bank.GetBalance(ctx, types.ModuleAddress, config.StableDenom).Amount; held.LT(payout) {
		return math.ZeroInt(), errors.Wrapf(types.ErrInsufficientLiquidity, "vault holds %s, withdrawal requires %s", held, payout)
	}

	if err := k.burn(ctx, withdrawer, shares); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.SubtractLocalFunds(ctx, payout); err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to deduct local funds")
	}

	coin := sdk.NewCoin(config.StableDenom, payout)
	if err := k.bank.SendCoins(ctx, types.ModuleAddress, withdrawer, sdk.NewCoins(coin)); err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to transfer withdrawal from module account")
	}

	k.logger.Info("processed ust withdrawal", "withdrawer", withdrawer.String(), "shares", shares.String(), "amount", payout.String())

	return payout, k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeWithdrawUst,
		event.Attribute{Key: types.AttributeKeyTo, Value: withdrawer.String()},
		event.Attribute{Key: types.AttributeKeyAmount, Value: payout.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: shares.String()},
	)
}

// WithdrawBLuna burns shares for their pro-rata portion of the unlocked
// collateral. The payout is taken from the oldest unlocked entries first and
// each touched entry is revalued in proportion to what remains.
func (k *Keeper) WithdrawBLuna(ctx context.Context, withdrawer sdk.AccAddress, shares math.Int) (math.Int, error) {
	config, supply, err := k.checkWithdrawal(ctx, withdrawer, shares, false)
	if err != nil {
		return math.ZeroInt(), err
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
		return math.ZeroInt(), errors.Wrap(err, "unable to iterate collateral locks")
	}

	payout, err := types.MulDivFloor(shares, total, supply)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to compute withdrawal amount")
	}
	if payout.IsZero() {
		return math.ZeroInt(), errors.Wrap(types.ErrInsufficientLiquidity, "no unlocked collateral to withdraw")
	}
	if held := k.bank.GetBalance(ctx, types.ModuleAddress, config.CollateralDenom).Amount; held.LT(payout) {
		return math.ZeroInt(), errors.Wrapf(types.ErrInsufficientLiquidity, "vault holds %s, withdrawal requires %s", held, payout)
	}

	remaining := payout
	for _, lock := range unlocked {
		if remaining.IsZero() {
			break
		}

		taken := math.MinInt(lock.Amount, remaining)
		remaining = remaining.Sub(taken)

		left := lock.Amount.Sub(taken)
		if left.IsZero() {
			if err := k.Locks.Remove(ctx, lock.ID); err != nil {
				return math.ZeroInt(), errors.Wrapf(err, "unable to remove lock %d from state", lock.ID)
			}
			continue
		}

		if lock.Value, err = types.MulDivFloor(lock.Value, left, lock.Amount); err != nil {
			return math.ZeroInt(), errors.Wrapf(err, "unable to revalue lock %d", lock.ID)
		}
		lock.Amount = left
		if err := k.SetLock(ctx, lock); err != nil {
			return math.ZeroInt(), errors.Wrapf(err, "unable to set lock %d to state", lock.ID)
		}
	}

	if err := k.burn(ctx, withdrawer, shares); err != nil {
		return math.ZeroInt(), err
	}

	coin := sdk.NewCoin(config.CollateralDenom, payout)
	if err := k.bank.SendCoins(ctx, types.ModuleAddress, withdrawer, sdk.NewCoins(coin)); err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to transfer collateral from module account")
	}

	k.logger.Info("processed collateral withdrawal", "withdrawer", withdrawer.String(), "shares", shares.String(), "amount", payout.String())

	return payout, k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeWithdrawBLuna,
		event.Attribute{Key: types.AttributeKeyTo, Value: withdrawer.String()},
		event.Attribute{Key: types.AttributeKeyAmount, Value: payout.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: shares.String()},
	)
}

// checkWithdrawal runs the checks shared by both withdrawal paths and
// returns the configuration and the share supply they were made against.
func (k *Keeper) checkWithdrawal(ctx context.Context, withdrawer sdk.AccAddress, shares math.Int, stable bool) (types.VaultConfig, math.Int, error) {
	if shares.IsNil() || !shares.IsPositive() {
		return types.VaultConfig{}, math.ZeroInt(), errors.Wrap(types.ErrInvalidAmount, "share amount must be positive")
	}
	if err := types.CheckQuantity(shares); err != nil {
		return types.VaultConfig{}, math.ZeroInt(), err
	}

	config, err := k.GetConfig(ctx)
	if err != nil {
		return types.VaultConfig{}, math.ZeroInt(), errors.Wrap(err, "unable to get config from state")
	}
	if config.Paused && (stable || config.BlockCollateralWithdrawWhenPaused) {
		return types.VaultConfig{}, math.ZeroInt(), errors.Wrap(types.ErrVaultPaused, "withdrawals are disabled")
	}

	balance, err := k.GetBalance(ctx, withdrawer)
	if err != nil {
		return types.VaultConfig{}, math.ZeroInt(), errors.Wrap(err, "unable to get share balance from state")
	}
	if balance.LT(shares) {
		return types.VaultConfig{}, math.ZeroInt(), errors.Wrapf(types.ErrInsufficientBalance, "holds %s shares, requested %s", balance, shares)
	}

	last, found, err := k.GetLastDeposit(ctx, withdrawer)
	if err != nil {
		return types.VaultConfig{}, math.ZeroInt(), errors.Wrap(err, "unable to get last deposit from state")
	}
	if found {
		now := k.header.GetHeaderInfo(ctx).Time
		releaseAt := time.Unix(last, 0).Add(time.Duration(config.WithdrawLock) * time.Second)
		if now.Before(releaseAt) {
			return types.VaultConfig{}, math.ZeroInt(), errors.Wrapf(types.ErrWithdrawLocked, "withdrawals available from %s", releaseAt.UTC().Format(time.RFC3339))
		}
	}

	supply, err := k.GetTotalSupply(ctx)
	if err != nil {
		return types.VaultConfig{}, math.ZeroInt(), errors.Wrap(err, "unable to get total supply from state")
	}
	if supply.IsZero() {
		return types.VaultConfig{}, math.ZeroInt(), errors.Wrap(types.ErrDivision, "total supply is zero")
	}

	return config, supply, nil
}

func (k *Keeper) mint(ctx context.Context, address sdk.AccAddress, shares math.Int) error {
	balance, err := k.GetBalance(ctx, address)
	if err != nil {
		return errors.Wrap(err, "unable to get share balance from state")
	}
	supply, err := k.GetTotalSupply(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to get total supply from state")
	}

	if balance, err = types.SafeAdd(balance, shares); err != nil {
		return errors.Wrap(err, "unable to increase share balance")
	}
	if supply, err = types.SafeAdd(supply, shares); err != nil {
		return errors.Wrap(err, "unable to increase total supply")
	}

	if err := k.setBalance(ctx, address, balance); err != nil {
		return errors.Wrap(err, "unable to set share balance to state")
	}
	if err := k.TotalSupply.Set(ctx, supply); err != nil {
		return errors.Wrap(err, "unable to set total supply to state")
	}

	return nil
}

func (k *Keeper) burn(ctx context.Context, address sdk.AccAddress, shares math.Int) error {
	balance, err := k.GetBalance(ctx, address)
	if err != nil {
		return errors.Wrap(err, "unable to get share balance from state")
	}
	supply, err := k.GetTotalSupply(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to get total supply from state")
	}

	if balance, err = types.SafeSub(balance, shares); err != nil {
		return errors.Wrap(types.ErrInsufficientBalance, "unable to decrease share balance")
	}
	if supply, err = types.SafeSub(supply, shares); err != nil {
		return errors.Wrap(types.ErrInvariantViolation, "unable to decrease total supply")
	}

	if err := k.setBalance(ctx, address, balance); err != nil {
		return errors.Wrap(err, "unable to set share balance to state")
	}
	if err := k.TotalSupply.Set(ctx, supply); err != nil {
		return errors.Wrap(err, "unable to set total supply to state")
	}

	return nil
}
