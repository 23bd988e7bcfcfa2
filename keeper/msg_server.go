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
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	depositor, err := m.decodeAddress(msg.Depositor, "depositor")
	if err != nil {
		return nil, err
	}

	var minted, supply math.Int
	err = m.atomically(ctx, func(ctx context.Context) error {
		minted, supply, err = m.Keeper.Deposit(ctx, depositor, msg.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgDepositResponse{SharesMinted: minted, TotalSupply: supply}, nil
}

func (m msgServer) WithdrawUst(ctx context.Context, msg *types.MsgWithdrawUst) (*types.MsgWithdrawUstResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	withdrawer, err := m.decodeAddress(msg.Withdrawer, "withdrawer")
	if err != nil {
		return nil, err
	}

	var paid math.Int
	err = m.atomically(ctx, func(ctx context.Context) error {
		paid, err = m.Keeper.WithdrawUst(ctx, withdrawer, msg.Share)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgWithdrawUstResponse{SharesBurned: msg.Share, AmountPaid: paid}, nil
}

func (m msgServer) WithdrawBLuna(ctx context.Context, msg *types.MsgWithdrawBLuna) (*types.MsgWithdrawBLunaResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	withdrawer, err := m.decodeAddress(msg.Withdrawer, "withdrawer")
	if err != nil {
		return nil, err
	}

	var paid math.Int
	err = m.atomically(ctx, func(ctx context.Context) error {
		paid, err = m.Keeper.WithdrawBLuna(ctx, withdrawer, msg.Share)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgWithdrawBLunaResponse{SharesBurned: msg.Share, AmountPaid: paid}, nil
}

func (m msgServer) SubmitBid(ctx context.Context, msg *types.MsgSubmitBid) (*types.MsgSubmitBidResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	var resp types.MsgSubmitBidResponse
	err := m.atomically(ctx, func(ctx context.Context) error {
		if err := m.authorizeOperational(ctx, msg.Signer, types.CapabilitySubmitBid); err != nil {
			return err
		}

		var err error
		resp.Instruction, resp.Committed, err = m.Keeper.SubmitBid(ctx, msg.Amount, msg.PremiumSlot)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (m msgServer) ActivateBid(ctx context.Context, msg *types.MsgActivateBid) (*types.MsgActivateBidResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	var resp types.MsgActivateBidResponse
	err := m.atomically(ctx, func(ctx context.Context) error {
		if err := m.authorizeOperational(ctx, msg.Signer, types.CapabilitySubmitBid); err != nil {
			return err
		}

		var err error
		resp.Instruction, resp.Reclaimed, err = m.Keeper.ActivateBid(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (m msgServer) ClaimLiquidation(ctx context.Context, msg *types.MsgClaimLiquidation) (*types.MsgClaimLiquidationResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	var resp types.MsgClaimLiquidationResponse
	err := m.atomically(ctx, func(ctx context.Context) error {
		if err := m.authorizeOperational(ctx, msg.Signer, types.CapabilitySubmitBid); err != nil {
			return err
		}

		instruction, lock, err := m.Keeper.ClaimLiquidation(ctx)
		if err != nil {
			return err
		}

		resp.Instruction = instruction
		if instruction != nil {
			resp.LockID = lock.ID
			resp.Amount = lock.Amount
			resp.Value = lock.Value
			resp.UnlockAt = lock.UnlockAt
		} else {
			resp.Amount = math.ZeroInt()
			resp.Value = math.ZeroInt()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (m msgServer) Unlock(ctx context.Context, msg *types.MsgUnlock) (*types.MsgUnlockResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	var resp types.MsgUnlockResponse
	err := m.atomically(ctx, func(ctx context.Context) error {
		if err := m.authorizeOperational(ctx, msg.Signer, types.CapabilityPublic); err != nil {
			return err
		}

		var err error
		resp.Unlocked, resp.AmountUnlocked, err = m.Keeper.Unlock(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (m msgServer) Swap(ctx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	var resp types.MsgSwapResponse
	err := m.atomically(ctx, func(ctx context.Context) error {
		if err := m.authorizeOperational(ctx, msg.Signer, types.CapabilityPublic); err != nil {
			return err
		}

		var err error
		resp.Instruction, resp.AmountReceived, err = m.Keeper.Swap(ctx)
		resp.AmountSwapped = resp.Instruction.Offer.Amount
		return err
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (m msgServer) SetPermission(ctx context.Context, msg *types.MsgSetPermission) (*types.MsgSetPermissionResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	address, err := m.decodeAddress(msg.Address, "permission")
	if err != nil {
		return nil, err
	}

	err = m.atomically(ctx, func(ctx context.Context) error {
		config, err := m.GetConfig(ctx)
		if err != nil {
			return errors.Wrap(err, "unable to get config from state")
		}
		if _, _, err := m.authorize(ctx, config, msg.Owner, types.CapabilityOwner); err != nil {
			return err
		}

		return m.Keeper.SetPermission(ctx, address, msg.Permission)
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgSetPermissionResponse{}, nil
}

func (m msgServer) UpdateConfig(ctx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	var config types.VaultConfig
	err := m.atomically(ctx, func(ctx context.Context) error {
		current, err := m.GetConfig(ctx)
		if err != nil {
			return errors.Wrap(err, "unable to get config from state")
		}
		if _, _, err := m.authorize(ctx, current, msg.Owner, types.CapabilityOwner); err != nil {
			return err
		}

		config, err = m.Keeper.UpdateConfig(ctx, msg)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgUpdateConfigResponse{Config: config}, nil
}

// authorizeOperational checks the caller's capability and, while the vault
// is paused, that the caller is the owner.
func (m msgServer) authorizeOperational(ctx context.Context, signer string, capability types.Capability) error {
	config, err := m.GetConfig(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to get config from state")
	}

	_, role, err := m.authorize(ctx, config, signer, capability)
	if err != nil {
		return err
	}

	return requireOperational(config, role)
}

func (m msgServer) decodeAddress(address, field string) (sdk.AccAddress, error) {
	bz, err := m.address.StringToBytes(address)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid %s address: %s", field, address)
	}

	return sdk.AccAddress(bz), nil
}
