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

package types

import (
	"time"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VaultConfig is the owner-managed configuration singleton.
type VaultConfig struct {
	Owner      string `json:"owner"`
	SwapWallet string `json:"swap_wallet"`
	// LockPeriod is the number of seconds claimed collateral stays locked.
	LockPeriod int64 `json:"lock_period"`
	// WithdrawLock is the number of seconds after a deposit before the
	// depositor may withdraw.
	WithdrawLock int64 `json:"withdraw_lock"`
	Paused       bool  `json:"paused"`
	// BlockCollateralWithdrawWhenPaused controls whether WithdrawBLuna is
	// rejected while the vault is paused.
	BlockCollateralWithdrawWhenPaused bool   `json:"block_collateral_withdraw_when_paused"`
	MaxPremiumSlot                    uint32 `json:"max_premium_slot"`
	StableDenom                       string `json:"stable_denom"`
	CollateralDenom                   string `json:"collateral_denom"`
}

// DefaultVaultConfig returns the configuration used at instantiation when no
// overrides are supplied.
func DefaultVaultConfig(owner string) VaultConfig {
	return VaultConfig{
		Owner:                             owner,
		LockPeriod:                        DefaultLockPeriod,
		WithdrawLock:                      DefaultWithdrawLock,
		BlockCollateralWithdrawWhenPaused: true,
		MaxPremiumSlot:                    DefaultMaxPremiumSlot,
		StableDenom:                       DefaultStableDenom,
		CollateralDenom:                   DefaultCollateralDenom,
	}
}

func (c VaultConfig) Validate() error {
	if c.LockPeriod < 0 {
		return errors.Wrap(ErrInvalidConfig, "lock period cannot be negative")
	}
	if c.LockPeriod > MaxPeriod {
		return errors.Wrapf(ErrInvalidConfig, "lock period %d exceeds %d seconds", c.LockPeriod, MaxPeriod)
	}
	if c.WithdrawLock < 0 {
		return errors.Wrap(ErrInvalidConfig, "withdraw lock cannot be negative")
	}
	if c.WithdrawLock > MaxPeriod {
		return errors.Wrapf(ErrInvalidConfig, "withdraw lock %d exceeds %d seconds", c.WithdrawLock, MaxPeriod)
	}
	if err := sdk.ValidateDenom(c.StableDenom); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "invalid stable denom: %s", err)
	}
	if err := sdk.ValidateDenom(c.CollateralDenom); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "invalid collateral denom: %s", err)
	}
	if c.StableDenom == c.CollateralDenom {
		return errors.Wrap(ErrInvalidConfig, "stable and collateral denoms must differ")
	}
	if c.MaxPremiumSlot > 100 {
		return errors.Wrapf(ErrInvalidConfig, "max premium slot %d exceeds 100", c.MaxPremiumSlot)
	}

	return nil
}

// Permission is the set of privileged capabilities granted to a non-owner.
type Permission struct {
	SubmitBid bool `json:"submit_bid"`
}

// IsEmpty reports whether the permission grants nothing.
func (p Permission) IsEmpty() bool {
	return !p.SubmitBid
}

// BidRecord tracks the UST committed to the liquidation queue at a single
// premium slot.
type BidRecord struct {
	PremiumSlot uint32     `json:"premium_slot"`
	Amount      math.Int   `json:"amount"`
	BidIdxs     []math.Int `json:"bid_idxs,omitempty"`
	// Observed is set once the queue has reported a bid at this slot.
	Observed  bool      `json:"observed"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LockStatus int32

const (
	LOCK_STATUS_LOCKED LockStatus = iota
	LOCK_STATUS_UNLOCKED
	LOCK_STATUS_SWAPPED
)

func (s LockStatus) String() string {
	switch s {
	case LOCK_STATUS_LOCKED:
		return "LOCKED"
	case LOCK_STATUS_UNLOCKED:
		return "UNLOCKED"
	case LOCK_STATUS_SWAPPED:
		return "SWAPPED"
	default:
		return "UNKNOWN"
	}
}

// CollateralLock is collateral claimed from the liquidation queue. Value is
// the UST-equivalent at claim time and is carried unchanged until the entry
// is swapped.
type CollateralLock struct {
	ID        uint64     `json:"id"`
	Amount    math.Int   `json:"amount"`
	Value     math.Int   `json:"value"`
	ClaimedAt time.Time  `json:"claimed_at"`
	UnlockAt  time.Time  `json:"unlock_at"`
	Status    LockStatus `json:"status"`
}

// Role is the caller's capability class, resolved once per operation.
type Role int32

const (
	RolePublic Role = iota
	RolePermissioned
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RolePermissioned:
		return "permissioned"
	default:
		return "public"
	}
}

// Capability names what an operation requires from its caller.
type Capability int32

const (
	CapabilityPublic Capability = iota
	CapabilitySubmitBid
	CapabilityOwner
)

// Allows reports whether the role satisfies the capability. The owner
// implicitly holds every capability.
func (r Role) Allows(c Capability) bool {
	switch c {
	case CapabilityPublic:
		return true
	case CapabilitySubmitBid:
		return r == RoleOwner || r == RolePermissioned
	case CapabilityOwner:
		return r == RoleOwner
	default:
		return false
	}
}
