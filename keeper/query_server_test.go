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

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/keeper"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/utils"
)

func TestQueryTotalCap(t *testing.T) {
	k, server, externals, ctx, owner := setupVaultTest(t)
	query := keeper.NewQueryServer(k)

	resp, err := query.TotalCap(ctx, &types.QueryTotalCapRequest{})
	require.NoError(t, err)
	assert.True(t, resp.TotalCap.IsZero())

	// ARRANGE: Free funds, a committed bid and a claimed lock.
	deposit(t, server, ctx, externals, utils.TestAccount(), 1_000)
	_, err = server.SubmitBid(ctx, &types.MsgSubmitBid{Signer: owner.Address, Amount: math.NewInt(700), PremiumSlot: 10})
	require.NoError(t, err)
	externals.Oracle.Prices[BLUNA+"/"+UST] = math.LegacyMustNewDecFromStr("0.95")
	externals.Queue.Liquidate(math.NewInt(1), math.NewInt(300), math.NewInt(333))
	_, err = server.ClaimLiquidation(ctx, &types.MsgClaimLiquidation{Signer: owner.Address})
	require.NoError(t, err)

	// ACT
	resp, err = query.TotalCap(ctx, &types.QueryTotalCapRequest{})

	// ASSERT: floor(333 * 0.95) is carried as collateral value.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(300), resp.FreeUst)
	assert.Equal(t, math.NewInt(400), resp.CommittedUst)
	assert.Equal(t, math.NewInt(316), resp.CollateralValue)
	assert.Equal(t, math.NewInt(1_016), resp.TotalCap)
}

func TestQueryWithdrawableLimit(t *testing.T) {
	k, server, externals, ctx, owner := setupVaultTest(t)
	query := keeper.NewQueryServer(k)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	// ASSERT: Zero supply yields a zero limit.
	resp, err := query.WithdrawableLimit(ctx, &types.QueryWithdrawableLimitRequest{Address: alice.Address})
	require.NoError(t, err)
	assert.True(t, resp.Limit.IsZero())

	// ARRANGE
	deposit(t, server, ctx, externals, alice, 750)
	deposit(t, server, ctx, externals, bob, 250)
	_, err = server.SubmitBid(ctx, &types.MsgSubmitBid{Signer: owner.Address, Amount: math.NewInt(601), PremiumSlot: 10})
	require.NoError(t, err)

	// ACT
	resp, err = query.WithdrawableLimit(ctx, &types.QueryWithdrawableLimitRequest{Address: alice.Address})

	// ASSERT: floor(750 * 399 / 1000)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(299), resp.Limit)

	_, err = query.WithdrawableLimit(ctx, &types.QueryWithdrawableLimitRequest{Address: "invalid"})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestQueryGetInfo(t *testing.T) {
	k, server, externals, ctx, owner := setupVaultTest(t)
	deposit(t, server, ctx, externals, utils.TestAccount(), 500)

	resp, err := keeper.NewQueryServer(k).GetInfo(ctx, &types.QueryGetInfoRequest{})
	require.NoError(t, err)
	assert.Equal(t, owner.Address, resp.Owner)
	assert.Equal(t, math.NewInt(500), resp.TotalSupply)
	assert.True(t, resp.LockedCollateral.IsZero())
	assert.False(t, resp.Paused)
	assert.Equal(t, uint32(types.DefaultMaxPremiumSlot), resp.Config.MaxPremiumSlot)
}

func TestQueryBidsAndLocks(t *testing.T) {
	k, server, externals, ctx, owner := setupVaultTest(t)
	query := keeper.NewQueryServer(k)
	deposit(t, server, ctx, externals, utils.TestAccount(), 1_000)

	for _, slot := range []uint32{9, 2, 5} {
		_, err := server.SubmitBid(ctx, &types.MsgSubmitBid{Signer: owner.Address, Amount: math.NewInt(100), PremiumSlot: slot})
		require.NoError(t, err)
	}

	bids, err := query.Bids(ctx, &types.QueryBidsRequest{})
	require.NoError(t, err)
	require.Len(t, bids.Bids, 3)
	assert.Equal(t, uint32(2), bids.Bids[0].PremiumSlot)
	assert.Equal(t, uint32(9), bids.Bids[2].PremiumSlot)

	externals.Queue.Liquidate(math.NewInt(1), math.NewInt(50), math.NewInt(50))
	_, err = server.ClaimLiquidation(ctx, &types.MsgClaimLiquidation{Signer: owner.Address})
	require.NoError(t, err)

	locks, err := query.Locks(ctx, &types.QueryLocksRequest{})
	require.NoError(t, err)
	require.Len(t, locks.Locks, 1)
	assert.Equal(t, types.LOCK_STATUS_LOCKED, locks.Locks[0].Status)
}
