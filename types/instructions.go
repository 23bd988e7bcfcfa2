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
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Instruction is an outbound command dispatched to an external protocol.
// The vault records the local effect of an instruction when it is accepted
// for dispatch; its outcome is observed on a later invocation.
type Instruction interface {
	InstructionType() string
}

const (
	InstructionSubmitBid         = "submit_bid"
	InstructionActivateBids      = "activate_bids"
	InstructionClaimLiquidations = "claim_liquidations"
	InstructionSwap              = "swap"
)

// SubmitBidInstruction places UST into the liquidation queue at a premium slot.
type SubmitBidInstruction struct {
	CollateralDenom string   `json:"collateral_denom"`
	PremiumSlot     uint32   `json:"premium_slot"`
	Funds           sdk.Coin `json:"funds"`
}

func (SubmitBidInstruction) InstructionType() string { return InstructionSubmitBid }

// ActivateBidsInstruction activates waiting bids in the liquidation queue.
type ActivateBidsInstruction struct {
	CollateralDenom string     `json:"collateral_denom"`
	BidIdxs         []math.Int `json:"bids_idx"`
}

func (ActivateBidsInstruction) InstructionType() string { return InstructionActivateBids }

// ClaimLiquidationsInstruction asks the queue to release settled collateral.
type ClaimLiquidationsInstruction struct {
	CollateralDenom string     `json:"collateral_denom"`
	BidIdxs         []math.Int `json:"bids_idx"`
}

func (ClaimLiquidationsInstruction) InstructionType() string { return InstructionClaimLiquidations }

// SwapInstruction sells unlocked collateral for the stable denom.
type SwapInstruction struct {
	Venue          string   `json:"venue"`
	Offer          sdk.Coin `json:"offer"`
	AskDenom       string   `json:"ask_denom"`
	MinimumReceive math.Int `json:"minimum_receive"`
}

func (SwapInstruction) InstructionType() string { return InstructionSwap }
