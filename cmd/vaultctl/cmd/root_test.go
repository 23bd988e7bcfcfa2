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

package cmd_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/cmd/vaultctl/cmd"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/utils"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	root := cmd.Cmd()
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGenesisDefault(t *testing.T) {
	owner := utils.TestAccount()

	out, err := execute(t, "genesis", "default", "--bech32-prefix", "cosmos", "--owner", owner.Address, "--withdraw-lock", "0")
	require.NoError(t, err)

	var genesis types.GenesisState
	require.NoError(t, json.Unmarshal([]byte(out), &genesis))
	assert.Equal(t, owner.Address, genesis.Config.Owner)
	assert.Equal(t, types.DefaultLockPeriod, genesis.Config.LockPeriod)
	assert.Equal(t, int64(0), genesis.Config.WithdrawLock)
	assert.True(t, genesis.TotalSupply.IsZero())
}

func TestGenesisDefaultEnvironment(t *testing.T) {
	t.Setenv("VAULTCTL_LOCK_PERIOD", "60")

	out, err := execute(t, "genesis", "default")
	require.NoError(t, err)

	var genesis types.GenesisState
	require.NoError(t, json.Unmarshal([]byte(out), &genesis))
	assert.Equal(t, int64(60), genesis.Config.LockPeriod)
}

func TestGenesisDefaultRejectsInvalidOwner(t *testing.T) {
	_, err := execute(t, "genesis", "default", "--owner", "invalid")
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = execute(t, "genesis", "default", "--lock-period", "-1")
	require.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestGenesisValidate(t *testing.T) {
	holder := utils.TestAccount()

	testCases := []struct {
		name     string
		file     string
		content  string
		expected error
	}{
		{
			name: "SUCCESS: yaml",
			file: "genesis.yaml",
			content: `
total_supply: "100"
local_funds: "100"
balances:
  - address: "` + holder.Address + `"
    shares: "100"
`,
		},
		{
			name: "SUCCESS: json",
			file: "genesis.json",
			content: `{
  "config": {"lock_period": 10, "stable_denom": "uusd", "collateral_denom": "ubluna", "max_premium_slot": 30},
  "total_supply": "0",
  "local_funds": "0"
}`,
		},
		{
			name: "FAILURE: supply mismatch",
			file: "genesis.toml",
			content: `
total_supply = "5"
local_funds = "0"
`,
			expected: types.ErrInvariantViolation,
		},
		{
			name: "FAILURE: invalid holder address",
			file: "genesis.yaml",
			content: `
total_supply: "1"
local_funds: "0"
balances:
  - address: "terra1invalid"
    shares: "1"
`,
			expected: types.ErrInvalidRequest,
		},
		{
			name:     "FAILURE: missing file",
			file:     "",
			expected: types.ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.json")
			if tc.file != "" {
				path = writeFile(t, tc.file, tc.content)
			}

			out, err := execute(t, "genesis", "validate", path, "--bech32-prefix", "cosmos", "--log-level", "error")
			if tc.expected != nil {
				require.ErrorIs(t, err, tc.expected)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, out, "is a valid genesis file")
		})
	}
}

func TestGenesisValidateLogLevel(t *testing.T) {
	path := writeFile(t, "genesis.json", `{"total_supply": "0", "local_funds": "0"}`)

	_, err := execute(t, "genesis", "validate", path, "--log-level", "loud")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, cmd.Version)
}
