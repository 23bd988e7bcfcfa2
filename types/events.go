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

const (
	EventTypeDeposit          = "deposit"
	EventTypeWithdrawUst      = "withdraw_ust"
	EventTypeWithdrawBLuna    = "withdraw_bluna"
	EventTypeSubmitBid        = "submit_bid"
	EventTypeActivateBids     = "activate_bids"
	EventTypeClaimLiquidation = "claim_liquidation"
	EventTypeUnlock           = "unlock"
	EventTypeSwap             = "swap"
	EventTypeSetPermission    = "set_permission"
	EventTypeUpdateConfig     = "update_config"

	AttributeKeyFrom        = "from"
	AttributeKeyTo          = "to"
	AttributeKeyAmount      = "amount"
	AttributeKeyShares      = "shares"
	AttributeKeyPremiumSlot = "premium_slot"
	AttributeKeyBidIdxs     = "bids_idx"
	AttributeKeyLockID      = "lock_id"
	AttributeKeyUnlockAt    = "unlock_at"
	AttributeKeyValue       = "value"
	AttributeKeyReclaimed   = "reclaimed"
	AttributeKeyReceived    = "received"
	AttributeKeyAddress     = "address"
	AttributeKeySubmitBid   = "submit_bid"
	AttributeKeyOwner       = "owner"
	AttributeKeyPaused      = "paused"
)
