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
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kallisto-finance/anchor-bluna-liquidation-pool/types"
)

func TestJSONValue(t *testing.T) {
	lock := types.CollateralLock{
		ID:        3,
		Amount:    math.NewInt(100),
		Value:     math.NewInt(95),
		ClaimedAt: time.Unix(1_646_092_800, 0).UTC(),
		UnlockAt:  time.Unix(1_646_179_200, 0).UTC(),
		Status:    types.LOCK_STATUS_UNLOCKED,
	}

	bz, err := types.CollateralLockValue.Encode(lock)
	require.NoError(t, err)

	decoded, err := types.CollateralLockValue.Decode(bz)
	require.NoError(t, err)
	assert.Equal(t, lock.ID, decoded.ID)
	assert.True(t, lock.Amount.Equal(decoded.Amount))
	assert.True(t, lock.UnlockAt.Equal(decoded.UnlockAt))
	assert.Equal(t, "json/collateral_lock", types.CollateralLockValue.ValueType())

	_, err = types.CollateralLockValue.Decode([]byte("{"))
	require.ErrorContains(t, err, "unable to decode collateral_lock")
}
