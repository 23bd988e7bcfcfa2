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
	"math/big"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MaxQuantity is the largest amount representable by an unsigned 128-bit
// integer. Every share and token amount in the vault must fit below it.
var MaxQuantity = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// CheckQuantity verifies that x is a non-negative value in the 128-bit range.
func CheckQuantity(x math.Int) error {
	if x.IsNil() {
		return errors.Wrap(ErrInvalidAmount, "amount cannot be nil")
	}
	if x.IsNegative() {
		return errors.Wrapf(ErrOverflow, "negative quantity %s", x)
	}
	if x.GT(MaxQuantity) {
		return errors.Wrapf(ErrOverflow, "quantity %s exceeds 128 bits", x)
	}

	return nil
}

// SafeAdd returns a+b, failing when the sum leaves the 128-bit range.
func SafeAdd(a, b math.Int) (math.Int, error) {
	sum, err := a.SafeAdd(b)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(ErrOverflow, err.Error())
	}
	if err := CheckQuantity(sum); err != nil {
		return math.ZeroInt(), err
	}

	return sum, nil
}

// SafeSub returns a-b, failing when the result would be negative.
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.ZeroInt(), errors.Wrapf(ErrOverflow, "cannot subtract %s from %s", b, a)
	}

	return a.Sub(b), nil
}

// MulDivFloor computes floor(a*b/c). The intermediate product is held in a
// 256-bit integer so only the final result is range checked.
func MulDivFloor(a, b, c math.Int) (math.Int, error) {
	if err := CheckQuantity(a); err != nil {
		return math.ZeroInt(), err
	}
	if err := CheckQuantity(b); err != nil {
		return math.ZeroInt(), err
	}
	if c.IsNil() || c.IsZero() {
		return math.ZeroInt(), errors.Wrap(ErrDivision, "division by zero")
	}
	if c.IsNegative() {
		return math.ZeroInt(), errors.Wrapf(ErrDivision, "negative divisor %s", c)
	}

	product, err := a.SafeMul(b)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(ErrOverflow, err.Error())
	}

	result := product.Quo(c)
	if err := CheckQuantity(result); err != nil {
		return math.ZeroInt(), err
	}

	return result, nil
}

// MulDecFloor applies a decimal price to an amount, truncating any
// fractional remainder.
func MulDecFloor(amount math.Int, price math.LegacyDec) (math.Int, error) {
	if err := CheckQuantity(amount); err != nil {
		return math.ZeroInt(), err
	}
	if price.IsNil() || price.IsNegative() {
		return math.ZeroInt(), errors.Wrap(ErrInvalidAmount, "price must be non-negative")
	}

	result := price.MulInt(amount).TruncateInt()
	if err := CheckQuantity(result); err != nil {
		return math.ZeroInt(), err
	}

	return result, nil
}
