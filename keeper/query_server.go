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

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (q queryServer) GetInfo(ctx context.Context, req *types.QueryGetInfoRequest) (*types.QueryGetInfoResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	config, err := q.GetConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch config")
	}
	supply, err := q.GetTotalSupply(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch total supply")
	}
	collateral, err := q.GetCollateralTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryGetInfoResponse{
		Owner:              config.Owner,
		TotalSupply:        supply,
		LockedCollateral:   collateral.Locked,
		UnlockedCollateral: collateral.Unlocked,
		Paused:             config.Paused,
		Config:             config,
	}, nil
}

func (q queryServer) Balance(ctx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	address, err := q.decodeAddress(req.Address)
	if err != nil {
		return nil, err
	}

	balance, err := q.GetBalance(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch share balance")
	}

	return &types.QueryBalanceResponse{Balance: balance}, nil
}

func (q queryServer) TotalCap(ctx context.Context, req *types.QueryTotalCapRequest) (*types.QueryTotalCapResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	totalCap, err := q.GetTotalCap(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryTotalCapResponse{
		TotalCap:        totalCap.Total,
		FreeUst:         totalCap.Free,
		CommittedUst:    totalCap.Committed,
		CollateralValue: totalCap.Collateral,
	}, nil
}

func (q queryServer) Activatable(ctx context.Context, req *types.QueryActivatableRequest) (*types.QueryActivatableResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	idxs, err := q.GetActivatable(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryActivatableResponse{Activatable: len(idxs) > 0}, nil
}

func (q queryServer) Claimable(ctx context.Context, req *types.QueryClaimableRequest) (*types.QueryClaimableResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	amount, _, err := q.GetClaimable(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryClaimableResponse{Claimable: amount.IsPositive(), Amount: amount}, nil
}

func (q queryServer) WithdrawableLimit(ctx context.Context, req *types.QueryWithdrawableLimitRequest) (*types.QueryWithdrawableLimitResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	address, err := q.decodeAddress(req.Address)
	if err != nil {
		return nil, err
	}

	limit, err := q.GetWithdrawableLimit(ctx, address)
	if err != nil {
		return nil, err
	}

	return &types.QueryWithdrawableLimitResponse{Limit: limit}, nil
}

func (q queryServer) Permission(ctx context.Context, req *types.QueryPermissionRequest) (*types.QueryPermissionResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	address, err := q.decodeAddress(req.Address)
	if err != nil {
		return nil, err
	}

	config, err := q.GetConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch config")
	}
	permission, err := q.GetPermission(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch permission")
	}
	role, err := q.RoleOf(ctx, config, address)
	if err != nil {
		return nil, err
	}

	return &types.QueryPermissionResponse{Permission: permission, Role: role.String()}, nil
}

func (q queryServer) Bids(ctx context.Context, req *types.QueryBidsRequest) (*types.QueryBidsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	bids, err := q.GetBids(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch bids")
	}

	return &types.QueryBidsResponse{Bids: bids}, nil
}

func (q queryServer) Locks(ctx context.Context, req *types.QueryLocksRequest) (*types.QueryLocksResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	var locks []types.CollateralLock
	err := q.IterateLocks(ctx, func(lock types.CollateralLock) (bool, error) {
		locks = append(locks, lock)
		return false, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch locks")
	}

	return &types.QueryLocksResponse{Locks: locks}, nil
}

func (q queryServer) decodeAddress(address string) (sdk.AccAddress, error) {
	bz, err := q.address.StringToBytes(address)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid address: %s", address)
	}

	return sdk.AccAddress(bz), nil
}
