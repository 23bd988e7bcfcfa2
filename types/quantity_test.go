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

package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

func TestCheckQuantity(t *testing.T) {
	tests := []struct {
		name    string
		amount  math.Int
		wantErr error
	}{
		{name: "zero", amount: math.ZeroInt()},
		{name: "max", amount: types.MaxQuantity},
		{name: "nil", amount: math.Int{}, wantErr: types.ErrInvalidAmount},
		{name: "negative", amount: math.NewInt(-1), wantErr: types.ErrOverflow},
		{name: "above 128 bits", amount: types.MaxQuantity.AddRaw(1), wantErr: types.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := types.CheckQuantity(tt.amount)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSafeArithmetic(t *testing.T) {
	sum, err := types.SafeAdd(math.NewInt(2), math.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(5), sum)

	_, err = types.SafeAdd(types.MaxQuantity, math.OneInt())
	require.ErrorIs(t, err, types.ErrOverflow)

	diff, err := types.SafeSub(math.NewInt(3), math.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, math.OneInt(), diff)

	_, err = types.SafeSub(math.NewInt(2), math.NewInt(3))
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestMulDivFloor(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  math.Int
		expected math.Int
		wantErr  error
	}{
		{name: "exact", a: math.NewInt(300), b: math.NewInt(1_000), c: math.NewInt(1_500), expected: math.NewInt(200)},
		{name: "floors", a: math.NewInt(333), b: math.NewInt(400), c: math.NewInt(1_000), expected: math.NewInt(133)},
		{name: "wide intermediate", a: types.MaxQuantity, b: types.MaxQuantity, c: types.MaxQuantity, expected: types.MaxQuantity},
		{name: "division by zero", a: math.OneInt(), b: math.OneInt(), c: math.ZeroInt(), wantErr: types.ErrDivision},
		{name: "result overflow", a: types.MaxQuantity, b: math.NewInt(2), c: math.OneInt(), wantErr: types.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := types.MulDivFloor(tt.a, tt.b, tt.c)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "expected %s, got %s", tt.expected, result)
		})
	}
}

func TestMulDecFloor(t *testing.T) {
	value, err := types.MulDecFloor(math.NewInt(333), math.LegacyMustNewDecFromStr("0.95"))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(316), value)

	_, err = types.MulDecFloor(math.NewInt(1), math.LegacyNewDec(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}
