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
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

type ShareBalance struct {
	Address string   `json:"address"`
	Shares  math.Int `json:"shares"`
}

type PermissionEntry struct {
	Address    string     `json:"address"`
	Permission Permission `json:"permission"`
}

type LastDeposit struct {
	Address string `json:"address"`
	// Time is the unix timestamp of the holder's most recent deposit.
	Time int64 `json:"time"`
}

type GenesisState struct {
	Config       VaultConfig       `json:"config"`
	TotalSupply  math.Int          `json:"total_supply"`
	Balances     []ShareBalance    `json:"balances"`
	LastDeposits []LastDeposit     `json:"last_deposits"`
	LocalFunds   math.Int          `json:"local_funds"`
	Bids         []BidRecord       `json:"bids"`
	Locks        []CollateralLock  `json:"locks"`
	LockNextID   uint64            `json:"lock_next_id"`
	Permissions  []PermissionEntry `json:"permissions"`
}

// DefaultGenesisState returns a vault with no owner. An owner must be set
// before privileged operations are usable.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Config:      DefaultVaultConfig(""),
		TotalSupply: math.ZeroInt(),
		LocalFunds:  math.ZeroInt(),
	}
}

// Validate checks the configuration and the ledger invariants of the
// genesis state. Address formats are checked by the keeper on import.
func (gs *GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return err
	}

	if err := CheckQuantity(gs.TotalSupply); err != nil {
		return errors.Wrap(err, "invalid total supply")
	}
	if err := CheckQuantity(gs.LocalFunds); err != nil {
		return errors.Wrap(err, "invalid local funds")
	}

	sum := math.ZeroInt()
	seen := make(map[string]bool)
	for _, balance := range gs.Balances {
		if balance.Address == "" {
			return errors.Wrap(ErrInvalidRequest, "balance address cannot be empty")
		}
		if seen[balance.Address] {
			return errors.Wrapf(ErrInvalidRequest, "duplicate balance for %s", balance.Address)
		}
		seen[balance.Address] = true

		if err := CheckQuantity(balance.Shares); err != nil {
			return errors.Wrapf(err, "invalid balance for %s", balance.Address)
		}

		var err error
		if sum, err = SafeAdd(sum, balance.Shares); err != nil {
			return err
		}
	}
	if !sum.Equal(gs.TotalSupply) {
		return errors.Wrapf(ErrInvariantViolation, "total supply %s does not match sum of balances %s", gs.TotalSupply, sum)
	}

	slots := make(map[uint32]bool)
	for _, bid := range gs.Bids {
		if bid.PremiumSlot > gs.Config.MaxPremiumSlot {
			return errors.Wrapf(ErrInvalidPremiumSlot, "bid at slot %d", bid.PremiumSlot)
		}
		if slots[bid.PremiumSlot] {
			return errors.Wrapf(ErrInvalidRequest, "duplicate bid record at slot %d", bid.PremiumSlot)
		}
		slots[bid.PremiumSlot] = true

		if err := CheckQuantity(bid.Amount); err != nil {
			return errors.Wrapf(err, "invalid bid amount at slot %d", bid.PremiumSlot)
		}
	}

	ids := make(map[uint64]bool)
	for _, lock := range gs.Locks {
		if lock.ID == 0 || lock.ID > gs.LockNextID {
			return errors.Wrapf(ErrInvalidRequest, "lock id %d outside of sequence %d", lock.ID, gs.LockNextID)
		}
		if ids[lock.ID] {
			return errors.Wrapf(ErrInvalidRequest, "duplicate lock %d", lock.ID)
		}
		ids[lock.ID] = true

		if err := CheckQuantity(lock.Amount); err != nil {
			return errors.Wrapf(err, "invalid amount for lock %d", lock.ID)
		}
		if err := CheckQuantity(lock.Value); err != nil {
			return errors.Wrapf(err, "invalid value for lock %d", lock.ID)
		}
		if lock.Status < LOCK_STATUS_LOCKED || lock.Status > LOCK_STATUS_SWAPPED {
			return errors.Wrapf(ErrInvalidRequest, "unknown status %d for lock %d", lock.Status, lock.ID)
		}
	}

	permissions := make(map[string]bool)
	for _, entry := range gs.Permissions {
		if permissions[entry.Address] {
			return errors.Wrapf(ErrInvalidRequest, "duplicate permission for %s", entry.Address)
		}
		permissions[entry.Address] = true
	}

	return nil
}
