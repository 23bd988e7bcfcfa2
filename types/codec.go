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
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/errors"
)

var _ collcodec.ValueCodec[VaultConfig] = jsonValue[VaultConfig]{}

// jsonValue stores plain Go structs in collections using their JSON form.
type jsonValue[T any] struct {
	name string
}

// NewJSONValue returns a collections value codec for T.
func NewJSONValue[T any](name string) collcodec.ValueCodec[T] {
	return jsonValue[T]{name: name}
}

func (v jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (v jsonValue[T]) Decode(bz []byte) (T, error) {
	var value T
	if err := json.Unmarshal(bz, &value); err != nil {
		return value, errors.Wrapf(err, "unable to decode %s", v.name)
	}

	return value, nil
}

func (v jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return v.Encode(value)
}

func (v jsonValue[T]) DecodeJSON(bz []byte) (T, error) {
	return v.Decode(bz)
}

func (v jsonValue[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(bz)
}

func (v jsonValue[T]) ValueType() string {
	return "json/" + v.name
}

var (
	VaultConfigValue    = NewJSONValue[VaultConfig]("vault_config")
	PermissionValue     = NewJSONValue[Permission]("permission")
	BidRecordValue      = NewJSONValue[BidRecord]("bid_record")
	CollateralLockValue = NewJSONValue[CollateralLock]("collateral_lock")
)
