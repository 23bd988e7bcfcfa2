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
	"time"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

var (
	QueueAddress = authtypes.NewModuleAddress("liquidation_queue")
	VenueAddress = authtypes.NewModuleAddress("swap_venue")
)

var _ types.LiquidationQueue = &LiquidationQueue{}

// LiquidationQueue is an in-memory liquidation queue holding the bids of a
// single bidder. Funds move through the embedded bank.
type LiquidationQueue struct {
	Bank            BankKeeper
	StableDenom     string
	CollateralDenom string
	// WaitPeriod delays activation of newly placed bids. Zero places bids
	// directly into the active pool.
	WaitPeriod time.Duration
	Err        error

	bids    []types.QueueBid
	nextIdx int64
}

func NewLiquidationQueue(bank BankKeeper) *LiquidationQueue {
	return &LiquidationQueue{
		Bank:            bank,
		StableDenom:     types.DefaultStableDenom,
		CollateralDenom: types.DefaultCollateralDenom,
		nextIdx:         1,
	}
}

func (q *LiquidationQueue) BidsByUser(_ context.Context, _ string, _ sdk.AccAddress) ([]types.QueueBid, error) {
	if q.Err != nil {
		return nil, q.Err
	}

	bids := make([]types.QueueBid, len(q.bids))
	copy(bids, q.bids)
	return bids, nil
}

// Place escrows funds from the bidder and records a new bid.
func (q *LiquidationQueue) Place(ctx context.Context, bidder sdk.AccAddress, slot uint32, funds sdk.Coin) error {
	if err := q.Bank.SendCoins(ctx, bidder, QueueAddress, sdk.NewCoins(funds)); err != nil {
		return err
	}

	bid := types.QueueBid{
		Idx:                         math.NewInt(q.nextIdx),
		PremiumSlot:                 slot,
		Amount:                      funds.Amount,
		PendingLiquidatedCollateral: math.ZeroInt(),
	}
	if q.WaitPeriod > 0 {
		waitEnd := sdk.UnwrapSDKContext(ctx).HeaderInfo().Time.Add(q.WaitPeriod)
		bid.WaitEnd = &waitEnd
	}

	q.nextIdx++
	q.bids = append(q.bids, bid)
	return nil
}

// Activate clears the wait period of the given bids once it has ended.
func (q *LiquidationQueue) Activate(ctx context.Context, idxs []math.Int) error {
	now := sdk.UnwrapSDKContext(ctx).HeaderInfo().Time
	for _, idx := range idxs {
		i := q.find(idx)
		if i < 0 {
			return errors.Wrapf(types.ErrInvalidRequest, "unknown bid %s", idx)
		}
		if q.bids[i].WaitEnd == nil || now.Before(*q.bids[i].WaitEnd) {
			return errors.Wrapf(types.ErrInvalidRequest, "bid %s is not activatable", idx)
		}
		q.bids[i].WaitEnd = nil
	}

	return nil
}

// Liquidate consumes used UST from a bid in exchange for collateral.
func (q *LiquidationQueue) Liquidate(idx math.Int, used, collateral math.Int) {
	i := q.find(idx)
	if i < 0 {
		return
	}

	q.bids[i].Amount = q.bids[i].Amount.Sub(used)
	q.bids[i].PendingLiquidatedCollateral = q.bids[i].PendingLiquidatedCollateral.Add(collateral)
	q.Bank.Mint(QueueAddress, sdk.NewCoins(sdk.NewCoin(q.CollateralDenom, collateral)))
}

// Claim pays out pending collateral of the given bids and drops bids that
// are fully consumed.
func (q *LiquidationQueue) Claim(ctx context.Context, bidder sdk.AccAddress, idxs []math.Int) error {
	for _, idx := range idxs {
		i := q.find(idx)
		if i < 0 {
			return errors.Wrapf(types.ErrInvalidRequest, "unknown bid %s", idx)
		}

		pending := q.bids[i].PendingLiquidatedCollateral
		if pending.IsPositive() {
			coins := sdk.NewCoins(sdk.NewCoin(q.CollateralDenom, pending))
			if err := q.Bank.SendCoins(ctx, QueueAddress, bidder, coins); err != nil {
				return err
			}
		}
		q.bids[i].PendingLiquidatedCollateral = math.ZeroInt()
	}

	remaining := q.bids[:0]
	for _, bid := range q.bids {
		if bid.Amount.IsPositive() || bid.PendingLiquidatedCollateral.IsPositive() {
			remaining = append(remaining, bid)
		}
	}
	q.bids = remaining

	return nil
}

// Refund retracts every bid at a slot and returns the unused funds.
func (q *LiquidationQueue) Refund(ctx context.Context, bidder sdk.AccAddress, slot uint32) error {
	remaining := q.bids[:0]
	for _, bid := range q.bids {
		if bid.PremiumSlot != slot {
			remaining = append(remaining, bid)
			continue
		}
		if bid.Amount.IsPositive() {
			coins := sdk.NewCoins(sdk.NewCoin(q.StableDenom, bid.Amount))
			if err := q.Bank.SendCoins(ctx, QueueAddress, bidder, coins); err != nil {
				return err
			}
		}
	}
	q.bids = remaining

	return nil
}

// Bids returns the bids currently held by the queue.
func (q *LiquidationQueue) Bids() []types.QueueBid {
	return q.bids
}

func (q *LiquidationQueue) find(idx math.Int) int {
	for i, bid := range q.bids {
		if bid.Idx.Equal(idx) {
			return i
		}
	}

	return -1
}
