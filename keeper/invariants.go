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
	"fmt"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-supply", TotalSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "lock-sequence", LockSequenceInvariant(k))
}

// TotalSupplyInvariant checks that the share supply equals the sum of all
// share balances.
func TotalSupplyInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		err := k.CheckTotalSupply(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "total-supply", err.Error()), true
		}

		return sdk.FormatInvariant(types.ModuleName, "total-supply", "total supply matches balances"), false
	}
}

// LockSequenceInvariant checks that every collateral lock id was allocated
// by the lock sequence.
func LockSequenceInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		next, err := k.LockNextID.Get(ctx)
		if err != nil && !isNotFound(err) {
			return sdk.FormatInvariant(types.ModuleName, "lock-sequence", err.Error()), true
		}

		var broken []uint64
		err = k.IterateLocks(ctx, func(lock types.CollateralLock) (bool, error) {
			if lock.ID == 0 || lock.ID > next {
				broken = append(broken, lock.ID)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "lock-sequence", err.Error()), true
		}
		if len(broken) > 0 {
			msg := fmt.Sprintf("locks %v outside of sequence %d", broken, next)
			return sdk.FormatInvariant(types.ModuleName, "lock-sequence", msg), true
		}

		return sdk.FormatInvariant(types.ModuleName, "lock-sequence", "all locks within sequence"), false
	}
}

// CheckTotalSupply returns ErrInvariantViolation when the stored share
// supply differs from the sum of share balances.
func (k *Keeper) CheckTotalSupply(ctx context.Context) error {
	supply, err := k.GetTotalSupply(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to get total supply from state")
	}

	sum := math.ZeroInt()
	err = k.IterateBalances(ctx, func(_ sdk.AccAddress, balance math.Int) (bool, error) {
		var addErr error
		sum, addErr = types.SafeAdd(sum, balance)
		return addErr != nil, addErr
	})
	if err != nil {
		return errors.Wrap(err, "unable to sum share balances")
	}

	if !sum.Equal(supply) {
		return errors.Wrapf(types.ErrInvariantViolation, "total supply %s does not match sum of balances %s", supply, sum)
	}

	return nil
}
