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
	"strconv"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

// RoleOf resolves the role of an account under the supplied configuration.
func (k *Keeper) RoleOf(ctx context.Context, config types.VaultConfig, address sdk.AccAddress) (types.Role, error) {
	if config.Owner != "" {
		owner, err := k.address.StringToBytes(config.Owner)
		if err != nil {
			return types.RolePublic, errors.Wrapf(types.ErrInvalidConfig, "invalid owner address: %s", config.Owner)
		}
		if address.Equals(sdk.AccAddress(owner)) {
			return types.RoleOwner, nil
		}
	}

	permission, err := k.GetPermission(ctx, address)
	if err != nil {
		return types.RolePublic, errors.Wrap(err, "unable to get permission from state")
	}
	if permission.SubmitBid {
		return types.RolePermissioned, nil
	}

	return types.RolePublic, nil
}

// authorize decodes the caller, resolves its role once and checks it against
// the capability the operation requires.
func (k *Keeper) authorize(ctx context.Context, config types.VaultConfig, caller string, capability types.Capability) (sdk.AccAddress, types.Role, error) {
	bz, err := k.address.StringToBytes(caller)
	if err != nil {
		return nil, types.RolePublic, errors.Wrapf(types.ErrInvalidRequest, "invalid address: %s", caller)
	}
	address := sdk.AccAddress(bz)

	role, err := k.RoleOf(ctx, config, address)
	if err != nil {
		return nil, types.RolePublic, err
	}
	if !role.Allows(capability) {
		return nil, role, errors.Wrapf(types.ErrUnauthorized, "%s is %s", caller, role)
	}

	return address, role, nil
}

// requireOperational rejects callers other than the owner while the vault is
// paused, so outstanding positions remain manageable by the owner only.
func requireOperational(config types.VaultConfig, role types.Role) error {
	if config.Paused && role != types.RoleOwner {
		return errors.Wrap(types.ErrVaultPaused, "only the owner may operate a paused vault")
	}

	return nil
}

// SetPermission fully replaces the permission record of an account. An
// empty permission removes the record.
func (k *Keeper) SetPermission(ctx context.Context, address sdk.AccAddress, permission types.Permission) error {
	if permission.IsEmpty() {
		if err := k.Permissions.Remove(ctx, address); err != nil {
			return errors.Wrap(err, "unable to remove permission from state")
		}
	} else if err := k.Permissions.Set(ctx, address, permission); err != nil {
		return errors.Wrap(err, "unable to set permission to state")
	}

	addr, err := k.address.BytesToString(address)
	if err != nil {
		return errors.Wrap(err, "unable to encode address")
	}

	k.logger.Info("updated permission", "address", addr, "submit_bid", permission.SubmitBid)

	return k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeSetPermission,
		event.Attribute{Key: types.AttributeKeyAddress, Value: addr},
		event.Attribute{Key: types.AttributeKeySubmitBid, Value: strconv.FormatBool(permission.SubmitBid)},
	)
}

// UpdateConfig applies the fields set in msg to the stored configuration.
// An ownership change takes effect immediately.
func (k *Keeper) UpdateConfig(ctx context.Context, msg *types.MsgUpdateConfig) (types.VaultConfig, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return types.VaultConfig{}, errors.Wrap(err, "unable to get config from state")
	}

	if msg.NewOwner != nil {
		if _, err := k.address.StringToBytes(*msg.NewOwner); err != nil {
			return types.VaultConfig{}, errors.Wrapf(types.ErrInvalidRequest, "invalid new owner address: %s", *msg.NewOwner)
		}
		config.Owner = *msg.NewOwner
	}
	if msg.SwapWallet != nil {
		if *msg.SwapWallet != "" {
			if _, err := k.address.StringToBytes(*msg.SwapWallet); err != nil {
				return types.VaultConfig{}, errors.Wrapf(types.ErrInvalidRequest, "invalid swap wallet address: %s", *msg.SwapWallet)
			}
		}
		config.SwapWallet = *msg.SwapWallet
	}
	if msg.LockPeriod != nil {
		config.LockPeriod = *msg.LockPeriod
	}
	if msg.WithdrawLock != nil {
		config.WithdrawLock = *msg.WithdrawLock
	}
	if msg.Paused != nil {
		config.Paused = *msg.Paused
	}
	if msg.BlockCollateralWithdrawWhenPaused != nil {
		config.BlockCollateralWithdrawWhenPaused = *msg.BlockCollateralWithdrawWhenPaused
	}
	if msg.MaxPremiumSlot != nil {
		config.MaxPremiumSlot = *msg.MaxPremiumSlot
	}

	if err := config.Validate(); err != nil {
		return types.VaultConfig{}, err
	}
	if err := k.SetConfig(ctx, config); err != nil {
		return types.VaultConfig{}, errors.Wrap(err, "unable to set config to state")
	}

	k.logger.Info("updated config", "owner", config.Owner, "paused", config.Paused, "lock_period", config.LockPeriod, "withdraw_lock", config.WithdrawLock)

	return config, k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeUpdateConfig,
		event.Attribute{Key: types.AttributeKeyOwner, Value: config.Owner},
		event.Attribute{Key: types.AttributeKeyPaused, Value: strconv.FormatBool(config.Paused)},
	)
}
