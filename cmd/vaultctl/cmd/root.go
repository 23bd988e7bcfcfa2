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
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	FlagLogLevel     = "log-level"
	FlagBech32Prefix = "bech32-prefix"

	EnvPrefix = "VAULTCTL"
)

// Cmd returns the vaultctl root command. Flags may also be supplied through
// VAULTCTL_ prefixed environment variables.
func Cmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "vaultctl",
		Short:        "Operator tooling for the bLuna liquidation vault",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().String(FlagLogLevel, "info", "log level (e.g. debug, info, error)")
	rootCmd.PersistentFlags().String(FlagBech32Prefix, "terra", "bech32 prefix of account addresses")

	rootCmd.AddCommand(genesisCmd(v))
	rootCmd.AddCommand(versionCmd())
	rootCmd.Version = GetVersion()

	return rootCmd
}

func newLogger(v *viper.Viper) (log.Logger, error) {
	filter, err := log.ParseLogLevel(v.GetString(FlagLogLevel))
	if err != nil {
		return nil, err
	}

	return log.NewLogger(os.Stderr, log.FilterOption(filter)).With("module", "vaultctl"), nil
}
