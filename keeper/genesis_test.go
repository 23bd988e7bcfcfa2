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
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/keeper"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/utils"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/utils/mocks"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, server, externals, ctx, owner := setupVaultTest(t)
	alice, operator := utils.TestAccount(), utils.TestAccount()

	// ARRANGE: Populate every collection.
	deposit(t, server, ctx, externals, alice, 1_000)
	_, err := server.SetPermission(ctx, &types.MsgSetPermission{
		Owner:      owner.Address,
		Address:    operator.Address,
		Permission: types.Permission{SubmitBid: true},
	})
	require.NoError(t, err)
	_, err = server.SubmitBid(ctx, &types.MsgSubmitBid{Signer: operator.Address, Amount: math.NewInt(400), PremiumSlot: 7})
	require.NoError(t, err)
	externals.Queue.Liquidate(math.NewInt(1), math.NewInt(100), math.NewInt(120))
	_, err = server.ClaimLiquidation(ctx, &types.MsgClaimLiquidation{Signer: operator.Address})
	require.NoError(t, err)

	exported := exportState(t, k, ctx)
	require.NoError(t, exported.Validate())
	assert.Len(t, exported.Balances, 1)
	assert.Len(t, exported.LastDeposits, 1)
	assert.Len(t, exported.Bids, 1)
	assert.Len(t, exported.Locks, 1)
	assert.Len(t, exported.Permissions, 1)
	assert.Equal(t, uint64(1), exported.LockNextID)

	// ACT: Import into a fresh keeper.
	fresh, _, freshCtx := mocks.VaultKeeper(t)
	require.NoError(t, fresh.InitGenesis(freshCtx, *exported))

	// ASSERT
	assert.Equal(t, exported, exportState(t, fresh, freshCtx))

	id, err := fresh.NextLockID(freshCtx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k, _, ctx := mocks.VaultKeeper(t)

	genesis := types.DefaultGenesisState()
	genesis.TotalSupply = math.NewInt(10)
	require.ErrorIs(t, k.InitGenesis(ctx, *genesis), types.ErrInvariantViolation)

	genesis = types.DefaultGenesisState()
	genesis.Config.Owner = "invalid"
	require.ErrorIs(t, k.InitGenesis(ctx, *genesis), types.ErrInvalidConfig)

	genesis = types.DefaultGenesisState()
	genesis.Balances = []types.ShareBalance{{Address: "invalid", Shares: math.ZeroInt()}}
	require.ErrorIs(t, k.InitGenesis(ctx, *genesis), types.ErrInvalidRequest)
}

func TestTotalSupplyInvariant(t *testing.T) {
	k, server, externals, ctx, _ := setupVaultTest(t)
	deposit(t, server, ctx, externals, utils.TestAccount(), 1_000)

	msg, broken := keeper.TotalSupplyInvariant(k)(ctx)
	assert.False(t, broken, msg)
	require.NoError(t, k.CheckTotalSupply(ctx))

	// ARRANGE: Corrupt the supply.
	require.NoError(t, k.TotalSupply.Set(ctx, math.NewInt(999)))

	msg, broken = keeper.TotalSupplyInvariant(k)(ctx)
	assert.True(t, broken)
	assert.Contains(t, msg, "total-supply")
	require.ErrorIs(t, k.CheckTotalSupply(ctx), types.ErrInvariantViolation)
}

func TestLockSequenceInvariant(t *testing.T) {
	k, _, _, ctx, _ := setupVaultTest(t)

	_, broken := keeper.LockSequenceInvariant(k)(ctx)
	assert.False(t, broken)

	require.NoError(t, k.SetLock(ctx, types.CollateralLock{
		ID:        5,
		Amount:    math.NewInt(1),
		Value:     math.NewInt(1),
		ClaimedAt: genesisTime,
		UnlockAt:  genesisTime.Add(time.Hour),
		Status:    types.LOCK_STATUS_LOCKED,
	}))

	msg, broken := keeper.LockSequenceInvariant(k)(ctx)
	assert.True(t, broken)
	assert.Contains(t, msg, "outside of sequence")
}
