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

package metrics_test

import (
	"context"
	"strings"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/keeper"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/metrics"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/utils"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/utils/mocks"
)

func TestVaultCollector(t *testing.T) {
	k, externals, ctx := mocks.VaultKeeper(t)
	owner, alice := utils.TestAccount(), utils.TestAccount()
	require.NoError(t, k.SetConfig(ctx, types.DefaultVaultConfig(owner.Address)))

	externals.Bank.Mint(alice.Bytes, sdk.NewCoins(sdk.NewInt64Coin(types.DefaultStableDenom, 1_000)))
	_, err := keeper.NewMsgServer(k).Deposit(ctx, &types.MsgDeposit{Depositor: alice.Address, Amount: math.NewInt(1_000)})
	require.NoError(t, err)

	collector := metrics.NewCollector(k, func() (context.Context, error) { return ctx, nil }, log.NewNopLogger())

	assert.Equal(t, 8, testutil.CollectAndCount(collector))

	expected := `
# HELP vault_total_supply Outstanding vault shares.
# TYPE vault_total_supply gauge
vault_total_supply 1000
# HELP vault_total_cap UST-equivalent value of the vault by component.
# TYPE vault_total_cap gauge
vault_total_cap{component="collateral"} 0
vault_total_cap{component="committed"} 0
vault_total_cap{component="free"} 1000
vault_total_cap{component="total"} 1000
# HELP vault_paused 1 while the vault is paused, otherwise 0.
# TYPE vault_paused gauge
vault_paused 0
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"vault_total_supply", "vault_total_cap", "vault_paused",
	))
}
