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

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

var (
	_ types.SwapVenue         = &SwapVenue{}
	_ types.PriceOracle       = &PriceOracle{}
	_ types.InstructionRouter = &Router{}
)

// SwapVenue quotes a fixed exchange rate.
type SwapVenue struct {
	Rate math.LegacyDec
	Err  error
}

func (v *SwapVenue) SimulateSwap(_ context.Context, offer sdk.Coin, _ string) (math.Int, error) {
	if v.Err != nil {
		return math.ZeroInt(), v.Err
	}

	return v.Rate.MulInt(offer.Amount).TruncateInt(), nil
}

// PriceOracle serves prices keyed by "base/quote".
type PriceOracle struct {
	Prices map[string]math.LegacyDec
	Err    error
}

func (o *PriceOracle) Price(_ context.Context, base, quote string) (math.LegacyDec, error) {
	if o.Err != nil {
		return math.LegacyDec{}, o.Err
	}

	price, found := o.Prices[base+"/"+quote]
	if !found {
		return math.LegacyDec{}, errors.Wrapf(types.ErrInvalidRequest, "no price for %s/%s", base, quote)
	}

	return price, nil
}

// Router records dispatched instructions and applies them to the mock
// queue and venue. Setting Reject makes every dispatch fail.
type Router struct {
	Bank   BankKeeper
	Queue  *LiquidationQueue
	Venue  *SwapVenue
	Reject error

	Dispatched []types.Instruction
}

func (r *Router) Dispatch(ctx context.Context, sender sdk.AccAddress, instruction types.Instruction) error {
	if r.Reject != nil {
		return r.Reject
	}

	switch instruction := instruction.(type) {
	case types.SubmitBidInstruction:
		if err := r.Queue.Place(ctx, sender, instruction.PremiumSlot, instruction.Funds); err != nil {
			return err
		}
	case types.ActivateBidsInstruction:
		if err := r.Queue.Activate(ctx, instruction.BidIdxs); err != nil {
			return err
		}
	case types.ClaimLiquidationsInstruction:
		if err := r.Queue.Claim(ctx, sender, instruction.BidIdxs); err != nil {
			return err
		}
	case types.SwapInstruction:
		received, err := r.Venue.SimulateSwap(ctx, instruction.Offer, instruction.AskDenom)
		if err != nil {
			return err
		}
		if received.LT(instruction.MinimumReceive) {
			return errors.Wrapf(types.ErrInsufficientLiquidity, "received %s below minimum %s", received, instruction.MinimumReceive)
		}
		if err := r.Bank.SendCoins(ctx, sender, VenueAddress, sdk.NewCoins(instruction.Offer)); err != nil {
			return err
		}
		r.Bank.Mint(sender, sdk.NewCoins(sdk.NewCoin(instruction.AskDenom, received)))
	default:
		return errors.Wrapf(types.ErrInvalidRequest, "unknown instruction %T", instruction)
	}

	r.Dispatched = append(r.Dispatched, instruction)
	return nil
}

// Last returns the most recently dispatched instruction.
func (r *Router) Last() types.Instruction {
	if len(r.Dispatched) == 0 {
		return nil
	}

	return r.Dispatched[len(r.Dispatched)-1]
}
