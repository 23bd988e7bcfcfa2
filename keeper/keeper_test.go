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
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/keeper"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/utils"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/utils/mocks"
)

type invariantRegistry struct {
	routes []string
}

func (r *invariantRegistry) RegisterRoute(moduleName, route string, _ sdk.Invariant) {
	r.routes = append(r.routes, moduleName+"/"+route)
}

func TestRegisterInvariants(t *testing.T) {
	k, _, _ := mocks.VaultKeeper(t)

	registry := &invariantRegistry{}
	keeper.RegisterInvariants(registry, k)

	assert.Equal(t, []string{"vault/total-supply", "vault/lock-sequence"}, registry.routes)
}

func TestSetInstructionRouter(t *testing.T) {
	k, server, externals, ctx, owner := setupVaultTest(t)
	deposit(t, server, ctx, externals, utils.TestAccount(), 1_000)

	// ARRANGE: Swap in a router that refuses every instruction.
	k.SetInstructionRouter(&mocks.Router{Reject: types.ErrInvalidRequest})

	// ACT
	_, err := server.SubmitBid(ctx, &types.MsgSubmitBid{Signer: owner.Address, Amount: math.NewInt(100), PremiumSlot: 1})

	// ASSERT
	require.ErrorIs(t, err, types.ErrInvalidRequest)
	assert.Empty(t, externals.Router.Dispatched)
}

func TestSetBankKeeper(t *testing.T) {
	k, server, externals, ctx, _ := setupVaultTest(t)
	alice := utils.TestAccount()
	fund(externals, alice, 100)

	// ARRANGE: A bank without alice's funds.
	k.SetBankKeeper(mocks.BankKeeper{Balances: make(map[string]sdk.Coins)})

	// ACT
	_, err := server.Deposit(ctx, &types.MsgDeposit{Depositor: alice.Address, Amount: math.NewInt(100)})

	// ASSERT
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestAddressCodec(t *testing.T) {
	k, _, _ := mocks.VaultKeeper(t)
	account := utils.TestAccount()

	bz, err := k.AddressCodec().StringToBytes(account.Address)
	require.NoError(t, err)
	assert.Equal(t, account.Bytes, bz)
	assert.NotNil(t, k.Logger())
}
