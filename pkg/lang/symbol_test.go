// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolIdentityIsByIDNotName(t *testing.T) {
	a := NewSymbol(1, "x")
	b := NewSymbol(2, "x")

	assert.Equal(t, "x", a.Name())
	assert.NotEqual(t, a, b, "two distinct ids sharing a display name are different symbols")

	c := NewSymbol(1, "x")
	assert.Equal(t, a, c, "identical id and name compare equal, as Symbol is a plain value type")
}

func TestSignatureFunctionTypeProjection(t *testing.T) {
	sig := Signature{Params: []Type{Int32Type{}, Float64Type{}}, Result: BoolType{}}

	ft := sig.FunctionType()
	assert.Equal(t, FunctionType{Params: sig.Params, Result: sig.Result}, ft)
	assert.True(t, ft.Equals(FunctionType{Params: []Type{Int32Type{}, Float64Type{}}, Result: BoolType{}}))
}
