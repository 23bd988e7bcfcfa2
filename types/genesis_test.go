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

package types_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

func TestGenesisValidate(t *testing.T) {
	now := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)

	valid := func() *types.GenesisState {
		genesis := types.DefaultGenesisState()
		genesis.TotalSupply = math.NewInt(150)
		genesis.Balances = []types.ShareBalance{
			{Address: "alice", Shares: math.NewInt(100)},
			{Address: "bob", Shares: math.NewInt(50)},
		}
		genesis.Bids = []types.BidRecord{{PremiumSlot: 3, Amount: math.NewInt(10), UpdatedAt: now}}
		genesis.Locks = []types.CollateralLock{{
			ID:        1,
			Amount:    math.NewInt(5),
			Value:     math.NewInt(5),
			ClaimedAt: now,
			UnlockAt:  now.Add(24 * time.Hour),
			Status:    types.LOCK_STATUS_LOCKED,
		}}
		genesis.LockNextID = 1
		return genesis
	}

	tests := []struct {
		name     string
		malleate func(genesis *types.GenesisState)
		wantErr  error
	}{
		{name: "valid", malleate: func(*types.GenesisState) {}},
		{name: "default", malleate: func(genesis *types.GenesisState) { *genesis = *types.DefaultGenesisState() }},
		{
			name:     "supply mismatch",
			malleate: func(genesis *types.GenesisState) { genesis.TotalSupply = math.NewInt(151) },
			wantErr:  types.ErrInvariantViolation,
		},
		{
			name: "duplicate balance",
			malleate: func(genesis *types.GenesisState) {
				genesis.Balances[1].Address = "alice"
			},
			wantErr: types.ErrInvalidRequest,
		},
		{
			name:     "premium slot out of range",
			malleate: func(genesis *types.GenesisState) { genesis.Bids[0].PremiumSlot = 31 },
			wantErr:  types.ErrInvalidPremiumSlot,
		},
		{
			name:     "lock outside sequence",
			malleate: func(genesis *types.GenesisState) { genesis.Locks[0].ID = 2 },
			wantErr:  types.ErrInvalidRequest,
		},
		{
			name:     "unknown lock status",
			malleate: func(genesis *types.GenesisState) { genesis.Locks[0].Status = 7 },
			wantErr:  types.ErrInvalidRequest,
		},
		{
			name:     "negative lock period",
			malleate: func(genesis *types.GenesisState) { genesis.Config.LockPeriod = -1 },
			wantErr:  types.ErrInvalidConfig,
		},
		{
			name:     "lock period beyond duration range",
			malleate: func(genesis *types.GenesisState) { genesis.Config.LockPeriod = 9_300_000_000 },
			wantErr:  types.ErrInvalidConfig,
		},
		{
			name:     "withdraw lock beyond maximum",
			malleate: func(genesis *types.GenesisState) { genesis.Config.WithdrawLock = types.MaxPeriod + 1 },
			wantErr:  types.ErrInvalidConfig,
		},
		{
			name:     "identical denoms",
			malleate: func(genesis *types.GenesisState) { genesis.Config.CollateralDenom = genesis.Config.StableDenom },
			wantErr:  types.ErrInvalidConfig,
		},
		{
			name:     "oversized local funds",
			malleate: func(genesis *types.GenesisState) { genesis.LocalFunds = types.MaxQuantity.AddRaw(1) },
			wantErr:  types.ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genesis := valid()
			tt.malleate(genesis)

			err := genesis.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoleAllows(t *testing.T) {
	require.True(t, types.RolePublic.Allows(types.CapabilityPublic))
	require.False(t, types.RolePublic.Allows(types.CapabilitySubmitBid))
	require.True(t, types.RolePermissioned.Allows(types.CapabilitySubmitBid))
	require.False(t, types.RolePermissioned.Allows(types.CapabilityOwner))
	require.True(t, types.RoleOwner.Allows(types.CapabilitySubmitBid))
	require.True(t, types.RoleOwner.Allows(types.CapabilityOwner))
}
