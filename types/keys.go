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

import authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

const ModuleName = "vault"

// ModuleAddress is the account holding pooled depositor funds and claimed
// collateral. It is also the bidder identity in the liquidation queue.
var ModuleAddress = authtypes.NewModuleAddress(ModuleName)

var (
	ConfigKey           = []byte("vault/config")
	TotalSupplyKey      = []byte("vault/total_supply")
	BalancePrefix       = []byte("vault/balance/")
	LastDepositPrefix   = []byte("vault/last_deposit/")
	LocalFundsKey       = []byte("vault/local_funds")
	BidPrefix           = []byte("vault/bid/")
	CollateralPrefix    = []byte("vault/collateral/")
	CollateralNextIDKey = []byte("vault/collateral_next_id")
	PermissionPrefix    = []byte("vault/permission/")
)

const (
	DefaultStableDenom     = "uusd"
	DefaultCollateralDenom = "ubluna"

	// DefaultLockPeriod is the number of seconds claimed collateral waits
	// before it becomes unlock-eligible.
	DefaultLockPeriod int64 = 86400
	// DefaultWithdrawLock is the number of seconds after a holder's last
	// deposit before withdrawals are honoured.
	DefaultWithdrawLock int64 = 3600
	// MaxPeriod bounds the lock period and withdraw lock, in seconds, so
	// both stay representable as a time.Duration.
	MaxPeriod int64 = 10 * 365 * 24 * 60 * 60
	// DefaultMaxPremiumSlot is the highest premium slot the liquidation
	// queue accepts.
	DefaultMaxPremiumSlot uint32 = 30
)
