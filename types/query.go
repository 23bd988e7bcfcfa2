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

	"cosmossdk.io/math"
)

type QueryServer interface {
	GetInfo(context.Context, *QueryGetInfoRequest) (*QueryGetInfoResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	TotalCap(context.Context, *QueryTotalCapRequest) (*QueryTotalCapResponse, error)
	Activatable(context.Context, *QueryActivatableRequest) (*QueryActivatableResponse, error)
	Claimable(context.Context, *QueryClaimableRequest) (*QueryClaimableResponse, error)
	WithdrawableLimit(context.Context, *QueryWithdrawableLimitRequest) (*QueryWithdrawableLimitResponse, error)
	Permission(context.Context, *QueryPermissionRequest) (*QueryPermissionResponse, error)
	Bids(context.Context, *QueryBidsRequest) (*QueryBidsResponse, error)
	Locks(context.Context, *QueryLocksRequest) (*QueryLocksResponse, error)
}

type QueryGetInfoRequest struct{}

type QueryGetInfoResponse struct {
	Owner              string      `json:"owner"`
	TotalSupply        math.Int    `json:"total_supply"`
	LockedCollateral   math.Int    `json:"locked_collateral"`
	UnlockedCollateral math.Int    `json:"unlocked_collateral"`
	Paused             bool        `json:"paused"`
	Config             VaultConfig `json:"config"`
}

type QueryBalanceRequest struct {
	Address string `json:"address"`
}

type QueryBalanceResponse struct {
	Balance math.Int `json:"balance"`
}

type QueryTotalCapRequest struct{}

// QueryTotalCapResponse breaks the total cap into its components.
type QueryTotalCapResponse struct {
	TotalCap        math.Int `json:"total_cap"`
	FreeUst         math.Int `json:"free_ust"`
	CommittedUst    math.Int `json:"committed_ust"`
	CollateralValue math.Int `json:"collateral_value"`
}

type QueryActivatableRequest struct{}

type QueryActivatableResponse struct {
	Activatable bool `json:"activatable"`
}

type QueryClaimableRequest struct{}

type QueryClaimableResponse struct {
	Claimable bool     `json:"claimable"`
	Amount    math.Int `json:"amount"`
}

type QueryWithdrawableLimitRequest struct {
	Address string `json:"address"`
}

type QueryWithdrawableLimitResponse struct {
	Limit math.Int `json:"limit"`
}

type QueryPermissionRequest struct {
	Address string `json:"address"`
}

type QueryPermissionResponse struct {
	Permission Permission `json:"permission"`
	Role       string     `json:"role"`
}

type QueryBidsRequest struct{}

type QueryBidsResponse struct {
	Bids []BidRecord `json:"bids"`
}

type QueryLocksRequest struct{}

type QueryLocksResponse struct {
	Locks []CollateralLock `json:"locks"`
}
