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

package cmd

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/core/address"
	"cosmossdk.io/errors"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

const (
	FlagOwner        = "owner"
	FlagSwapWallet   = "swap-wallet"
	FlagLockPeriod   = "lock-period"
	FlagWithdrawLock = "withdraw-lock"
)

func genesisCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Generate and validate vault genesis files",
	}

	defaultCmd := &cobra.Command{
		Use:   "default",
		Short: "Print a default genesis state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			genesis := types.DefaultGenesisState()
			genesis.Config.Owner = v.GetString(FlagOwner)
			genesis.Config.SwapWallet = v.GetString(FlagSwapWallet)
			genesis.Config.LockPeriod = v.GetInt64(FlagLockPeriod)
			genesis.Config.WithdrawLock = v.GetInt64(FlagWithdrawLock)

			if err := validateGenesis(addressCodec(v), genesis); err != nil {
				return err
			}

			bz, err := json.MarshalIndent(genesis, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bz))

			return nil
		},
	}
	defaultCmd.Flags().String(FlagOwner, "", "vault owner address")
	defaultCmd.Flags().String(FlagSwapWallet, "", "address that receives collateral swaps")
	defaultCmd.Flags().Int64(FlagLockPeriod, types.DefaultLockPeriod, "seconds claimed collateral stays locked")
	defaultCmd.Flags().Int64(FlagWithdrawLock, types.DefaultWithdrawLock, "seconds after a deposit before withdrawals are allowed")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a genesis file (JSON, YAML or TOML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v)
			if err != nil {
				return err
			}

			genesis, err := ReadGenesis(args[0])
			if err != nil {
				return err
			}
			if err := validateGenesis(addressCodec(v), genesis); err != nil {
				return err
			}

			logger.Info("validated genesis file",
				"file", args[0],
				"holders", len(genesis.Balances),
				"bids", len(genesis.Bids),
				"locks", len(genesis.Locks),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid genesis file\n", args[0])

			return nil
		},
	}

	cmd.AddCommand(defaultCmd, validateCmd)

	return cmd
}

// ReadGenesis decodes a genesis file in any format viper understands. Keys
// use the snake_case names of the JSON encoding and quantities are strings.
func ReadGenesis(path string) (*types.GenesisState, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to read %s: %s", path, err)
	}

	bz, err := json.Marshal(v.AllSettings())
	if err != nil {
		return nil, err
	}

	genesis := types.DefaultGenesisState()
	if err := json.Unmarshal(bz, genesis); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "unable to decode %s: %s", path, err)
	}

	return genesis, nil
}

func addressCodec(v *viper.Viper) address.Codec {
	return addresscodec.NewBech32Codec(v.GetString(FlagBech32Prefix))
}

// validateGenesis runs the stateless checks and the address checks the
// keeper applies on import.
func validateGenesis(codec address.Codec, genesis *types.GenesisState) error {
	if err := genesis.Validate(); err != nil {
		return err
	}

	check := func(field, addr string) error {
		if _, err := codec.StringToBytes(addr); err != nil {
			return errors.Wrapf(types.ErrInvalidRequest, "invalid %s address %q", field, addr)
		}
		return nil
	}

	if genesis.Config.Owner != "" {
		if err := check("owner", genesis.Config.Owner); err != nil {
			return err
		}
	}
	if genesis.Config.SwapWallet != "" {
		if err := check("swap wallet", genesis.Config.SwapWallet); err != nil {
			return err
		}
	}
	for _, balance := range genesis.Balances {
		if err := check("balance", balance.Address); err != nil {
			return err
		}
	}
	for _, entry := range genesis.Permissions {
		if err := check("permission", entry.Address); err != nil {
			return err
		}
	}

	return nil
}
