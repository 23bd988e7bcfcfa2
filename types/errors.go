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

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest        = errors.Register(ModuleName, 1, "invalid request")
	ErrUnauthorized          = errors.Register(ModuleName, 2, "unauthorized")
	ErrVaultPaused           = errors.Register(ModuleName, 3, "vault is paused")
	ErrInvalidAmount         = errors.Register(ModuleName, 4, "invalid amount")
	ErrInvalidPremiumSlot    = errors.Register(ModuleName, 5, "invalid premium slot")
	ErrInsufficientBalance   = errors.Register(ModuleName, 6, "insufficient balance")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 7, "insufficient liquidity")
	ErrNothingToSwap         = errors.Register(ModuleName, 8, "nothing to swap")
	ErrDivision              = errors.Register(ModuleName, 9, "division error")
	ErrOverflow              = errors.Register(ModuleName, 10, "overflow")
	ErrWithdrawLocked        = errors.Register(ModuleName, 11, "withdrawal is locked")
	ErrInvalidConfig         = errors.Register(ModuleName, 12, "invalid config")
	ErrInvariantViolation    = errors.Register(ModuleName, 13, "invariant violation")
)
