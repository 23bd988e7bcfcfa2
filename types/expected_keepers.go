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

package types

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// QueueBid is a bid as reported by the liquidation queue.
type QueueBid struct {
	Idx                         math.Int
	PremiumSlot                 uint32
	Amount                      math.Int
	PendingLiquidatedCollateral math.Int
	// WaitEnd is set while the bid waits for activation.
	WaitEnd *time.Time
}

type LiquidationQueue interface {
	BidsByUser(ctx context.Context, collateralDenom string, bidder sdk.AccAddress) ([]QueueBid, error)
}

type SwapVenue interface {
	SimulateSwap(ctx context.Context, offer sdk.Coin, askDenom string) (math.Int, error)
}

type PriceOracle interface {
	Price(ctx context.Context, base, quote string) (math.LegacyDec, error)
}

// InstructionRouter hands instructions to the external protocols. A
// non-nil error means the instruction was not accepted.
type InstructionRouter interface {
	Dispatch(ctx context.Context, sender sdk.AccAddress, instruction Instruction) error
}
