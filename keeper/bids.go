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
	"slices"
	"strconv"
	"strings"
	"time"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

// SubmitBid commits free UST to a premium slot of the liquidation queue. The
// local bid records are first reconciled with the queue so refunded bids
// count towards the free funds.
func (k *Keeper) SubmitBid(ctx context.Context, amount math.Int, slot uint32) (types.SubmitBidInstruction, math.Int, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to get config from state")
	}

	if slot > config.MaxPremiumSlot {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrapf(types.ErrInvalidPremiumSlot, "slot %d exceeds maximum of %d", slot, config.MaxPremiumSlot)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrap(types.ErrInvalidAmount, "bid amount must be positive")
	}
	if err := types.CheckQuantity(amount); err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), err
	}

	queueBids, err := k.queue.BidsByUser(ctx, config.CollateralDenom, types.ModuleAddress)
	if err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to query liquidation queue")
	}
	result, err := k.reconcileBids(ctx, queueBids, k.header.GetHeaderInfo(ctx).Time, false)
	if err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), err
	}

	free, err := k.GetLocalFunds(ctx)
	if err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to get local funds from state")
	}
	if free.LT(amount) {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrapf(types.ErrInsufficientLiquidity, "free funds %s, bid requires %s", free, amount)
	}

	bid, found, err := k.GetBid(ctx, slot)
	if err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to get bid from state")
	}
	if !found {
		bid = types.BidRecord{PremiumSlot: slot, Amount: math.ZeroInt()}
	}
	if bid.Amount, err = types.SafeAdd(bid.Amount, amount); err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to increase bid amount")
	}
	bid.UpdatedAt = k.header.GetHeaderInfo(ctx).Time

	if err := k.SetBid(ctx, bid); err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to set bid to state")
	}
	if err := k.SubtractLocalFunds(ctx, amount); err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to deduct local funds")
	}

	instruction := types.SubmitBidInstruction{
		CollateralDenom: config.CollateralDenom,
		PremiumSlot:     slot,
		Funds:           sdk.NewCoin(config.StableDenom, amount),
	}
	if err := k.router.Dispatch(ctx, types.ModuleAddress, instruction); err != nil {
		return types.SubmitBidInstruction{}, math.ZeroInt(), errors.Wrap(err, "unable to dispatch bid submission")
	}

	k.logger.Info("submitted bid",
		"premium_slot", slot,
		"amount", amount.String(),
		"committed", bid.Amount.String(),
		"reclaimed", result.Reclaimed.String(),
	)

	return instruction, bid.Amount, k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeSubmitBid,
		event.Attribute{Key: types.AttributeKeyPremiumSlot, Value: strconv.FormatUint(uint64(slot), 10)},
		event.Attribute{Key: types.AttributeKeyAmount, Value: amount.String()},
	)
}

// ActivateBid activates every queue bid whose wait period has ended. When
// something is activated, bids the queue no longer reports for a previously
// observed slot are treated as refunded and their amount returns to the free
// funds. With nothing activatable no state is written.
func (k *Keeper) ActivateBid(ctx context.Context) (*types.ActivateBidsInstruction, math.Int, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, math.ZeroInt(), errors.Wrap(err, "unable to get config from state")
	}

	queueBids, err := k.queue.BidsByUser(ctx, config.CollateralDenom, types.ModuleAddress)
	if err != nil {
		return nil, math.ZeroInt(), errors.Wrap(err, "unable to query liquidation queue")
	}

	now := k.header.GetHeaderInfo(ctx).Time
	activatable := activatableBids(queueBids, now)
	if len(activatable) == 0 {
		k.logger.Debug("nothing to activate in liquidation queue")
		return nil, math.ZeroInt(), nil
	}

	result, err := k.reconcileBids(ctx, queueBids, now, false)
	if err != nil {
		return nil, math.ZeroInt(), err
	}

	instruction := &types.ActivateBidsInstruction{
		CollateralDenom: config.CollateralDenom,
		BidIdxs:         activatable,
	}
	if err := k.router.Dispatch(ctx, types.ModuleAddress, *instruction); err != nil {
		return nil, math.ZeroInt(), errors.Wrap(err, "unable to dispatch bid activation")
	}

	k.logger.Info("activated bids", "count", len(activatable), "reclaimed", result.Reclaimed.String())

	return instruction, result.Reclaimed, k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeActivateBids,
		event.Attribute{Key: types.AttributeKeyBidIdxs, Value: joinIdxs(activatable)},
		event.Attribute{Key: types.AttributeKeyReclaimed, Value: result.Reclaimed.String()},
	)
}

// GetActivatable returns the identifiers of queue bids ready for activation.
func (k *Keeper) GetActivatable(ctx context.Context) ([]math.Int, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get config from state")
	}

	queueBids, err := k.queue.BidsByUser(ctx, config.CollateralDenom, types.ModuleAddress)
	if err != nil {
		return nil, errors.Wrap(err, "unable to query liquidation queue")
	}

	return activatableBids(queueBids, k.header.GetHeaderInfo(ctx).Time), nil
}

type reconciliation struct {
	Reclaimed math.Int
	Consumed  math.Int
}

// reconcileBids brings the local bid records in line with the queue's view.
// When settle is set the remaining queue amounts replace the recorded
// amounts and the difference is reported as consumed by liquidations.
// Nothing is written when the views already agree.
func (k *Keeper) reconcileBids(ctx context.Context, queueBids []types.QueueBid, now time.Time, settle bool) (reconciliation, error) {
	result := reconciliation{Reclaimed: math.ZeroInt(), Consumed: math.ZeroInt()}

	bySlot := make(map[uint32][]types.QueueBid)
	for _, bid := range queueBids {
		bySlot[bid.PremiumSlot] = append(bySlot[bid.PremiumSlot], bid)
	}

	records, err := k.GetBids(ctx)
	if err != nil {
		return result, errors.Wrap(err, "unable to get bids from state")
	}

	for _, record := range records {
		reported := bySlot[record.PremiumSlot]

		if len(reported) == 0 {
			if !record.Observed {
				continue
			}

			if result.Reclaimed, err = types.SafeAdd(result.Reclaimed, record.Amount); err != nil {
				return result, err
			}
			if err := k.DeleteBid(ctx, record.PremiumSlot); err != nil {
				return result, errors.Wrapf(err, "unable to remove bid at slot %d", record.PremiumSlot)
			}
			continue
		}

		updated := record
		updated.Observed = true
		updated.BidIdxs = bidIdxs(reported)

		if settle {
			remaining := math.ZeroInt()
			for _, bid := range reported {
				if remaining, err = types.SafeAdd(remaining, bid.Amount); err != nil {
					return result, err
				}
			}
			remaining = math.MinInt(remaining, record.Amount)

			consumed := record.Amount.Sub(remaining)
			if result.Consumed, err = types.SafeAdd(result.Consumed, consumed); err != nil {
				return result, err
			}
			updated.Amount = remaining

			if remaining.IsZero() {
				if err := k.DeleteBid(ctx, record.PremiumSlot); err != nil {
					return result, errors.Wrapf(err, "unable to remove bid at slot %d", record.PremiumSlot)
				}
				continue
			}
		}

		if bidRecordsEqual(record, updated) {
			continue
		}

		updated.UpdatedAt = now
		if err := k.SetBid(ctx, updated); err != nil {
			return result, errors.Wrapf(err, "unable to set bid at slot %d", record.PremiumSlot)
		}
	}

	if err := k.AddLocalFunds(ctx, result.Reclaimed); err != nil {
		return result, errors.Wrap(err, "unable to return reclaimed funds")
	}

	return result, nil
}

func activatableBids(queueBids []types.QueueBid, now time.Time) []math.Int {
	var idxs []math.Int
	for _, bid := range queueBids {
		if bid.WaitEnd != nil && !now.Before(*bid.WaitEnd) {
			idxs = append(idxs, bid.Idx)
		}
	}

	return idxs
}

func bidIdxs(queueBids []types.QueueBid) []math.Int {
	idxs := make([]math.Int, 0, len(queueBids))
	for _, bid := range queueBids {
		idxs = append(idxs, bid.Idx)
	}
	slices.SortFunc(idxs, func(a, b math.Int) int {
		return a.BigInt().Cmp(b.BigInt())
	})

	return idxs
}

func bidRecordsEqual(a, b types.BidRecord) bool {
	if a.Observed != b.Observed || !a.Amount.Equal(b.Amount) || len(a.BidIdxs) != len(b.BidIdxs) {
		return false
	}
	for i := range a.BidIdxs {
		if !a.BidIdxs[i].Equal(b.BidIdxs[i]) {
			return false
		}
	}

	return true
}

func joinIdxs(idxs []math.Int) string {
	parts := make([]string, 0, len(idxs))
	for _, idx := range idxs {
		parts = append(parts, idx.String())
	}

	return strings.Join(parts, ",")
}
