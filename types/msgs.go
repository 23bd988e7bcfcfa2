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
)

type MsgServer interface {
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	WithdrawUst(context.Context, *MsgWithdrawUst) (*MsgWithdrawUstResponse, error)
	WithdrawBLuna(context.Context, *MsgWithdrawBLuna) (*MsgWithdrawBLunaResponse, error)
	SubmitBid(context.Context, *MsgSubmitBid) (*MsgSubmitBidResponse, error)
	ActivateBid(context.Context, *MsgActivateBid) (*MsgActivateBidResponse, error)
	ClaimLiquidation(context.Context, *MsgClaimLiquidation) (*MsgClaimLiquidationResponse, error)
	Unlock(context.Context, *MsgUnlock) (*MsgUnlockResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	SetPermission(context.Context, *MsgSetPermission) (*MsgSetPermissionResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
}

type MsgDeposit struct {
	Depositor string   `json:"depositor"`
	Amount    math.Int `json:"amount"`
}

type MsgDepositResponse struct {
	SharesMinted math.Int `json:"shares_minted"`
	TotalSupply  math.Int `json:"total_supply"`
}

type MsgWithdrawUst struct {
	Withdrawer string   `json:"withdrawer"`
	Share      math.Int `json:"share"`
}

type MsgWithdrawUstResponse struct {
	SharesBurned math.Int `json:"shares_burned"`
	AmountPaid   math.Int `json:"amount_paid"`
}

type MsgWithdrawBLuna struct {
	Withdrawer string   `json:"withdrawer"`
	Share      math.Int `json:"share"`
}

type MsgWithdrawBLunaResponse struct {
	SharesBurned math.Int `json:"shares_burned"`
	AmountPaid   math.Int `json:"amount_paid"`
}

type MsgSubmitBid struct {
	Signer      string   `json:"signer"`
	Amount      math.Int `json:"amount"`
	PremiumSlot uint32   `json:"premium_slot"`
}

type MsgSubmitBidResponse struct {
	Instruction SubmitBidInstruction `json:"instruction"`
	Committed   math.Int             `json:"committed"`
}

type MsgActivateBid struct {
	Signer string `json:"signer"`
}

type MsgActivateBidResponse struct {
	// Instruction is nil when nothing was activatable.
	Instruction *ActivateBidsInstruction `json:"instruction,omitempty"`
	Reclaimed   math.Int                 `json:"reclaimed"`
}

type MsgClaimLiquidation struct {
	Signer string `json:"signer"`
}

type MsgClaimLiquidationResponse struct {
	// Instruction is nil when nothing was claimable.
	Instruction *ClaimLiquidationsInstruction `json:"instruction,omitempty"`
	LockID      uint64                        `json:"lock_id"`
	Amount      math.Int                      `json:"amount"`
	Value       math.Int                      `json:"value"`
	UnlockAt    time.Time                     `json:"unlock_at"`
}

type MsgUnlock struct {
	Signer string `json:"signer"`
}

type MsgUnlockResponse struct {
	Unlocked       uint64   `json:"unlocked"`
	AmountUnlocked math.Int `json:"amount_unlocked"`
}

type MsgSwap struct {
	Signer string `json:"signer"`
}

type MsgSwapResponse struct {
	Instruction    SwapInstruction `json:"instruction"`
	AmountSwapped  math.Int        `json:"amount_swapped"`
	AmountReceived math.Int        `json:"amount_received"`
}

type MsgSetPermission struct {
	Owner      string     `json:"owner"`
	Address    string     `json:"address"`
	Permission Permission `json:"permission"`
}

type MsgSetPermissionResponse struct{}

// MsgUpdateConfig updates only the fields that are set.
type MsgUpdateConfig struct {
	Owner                             string  `json:"owner"`
	NewOwner                          *string `json:"new_owner,omitempty"`
	LockPeriod                        *int64  `json:"lock_period,omitempty"`
	WithdrawLock                      *int64  `json:"withdraw_lock,omitempty"`
	Paused                            *bool   `json:"paused,omitempty"`
	SwapWallet                        *string `json:"swap_wallet,omitempty"`
	BlockCollateralWithdrawWhenPaused *bool   `json:"block_collateral_withdraw_when_paused,omitempty"`
	MaxPremiumSlot                    *uint32 `json:"max_premium_slot,omitempty"`
}

type MsgUpdateConfigResponse struct {
	Config VaultConfig `json:"config"`
}
