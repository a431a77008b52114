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

func TestEqualsAcrossTheLattice(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Type
		equal bool
	}{
		{"int32 equals int32", Int32Type{}, Int32Type{}, true},
		{"int32 does not equal float64", Int32Type{}, Float64Type{}, false},
		{"bool equals bool", BoolType{}, BoolType{}, true},
		{"void equals void", VoidType{}, VoidType{}, true},
		{"same class object refs equal", ObjectRefType{ClassName: "Point"}, ObjectRefType{ClassName: "Point"}, true},
		{"different class object refs differ", ObjectRefType{ClassName: "Point"}, ObjectRefType{ClassName: "Vec"}, false},
		{"object ref does not equal array ref", ObjectRefType{ClassName: "Point"}, ArrayRefType{Elem: Int32Type{}}, false},
		{
			"array refs equal when elem types equal",
			ArrayRefType{Elem: Int32Type{}}, ArrayRefType{Elem: Int32Type{}}, true,
		},
		{
			"array refs differ when elem types differ",
			ArrayRefType{Elem: Int32Type{}}, ArrayRefType{Elem: Float64Type{}}, false,
		},
		{
			"nested array refs compare element types recursively",
			ArrayRefType{Elem: ArrayRefType{Elem: BoolType{}}},
			ArrayRefType{Elem: ArrayRefType{Elem: BoolType{}}},
			true,
		},
		{
			"function types equal when params and result match",
			FunctionType{Params: []Type{Int32Type{}, BoolType{}}, Result: Float64Type{}},
			FunctionType{Params: []Type{Int32Type{}, BoolType{}}, Result: Float64Type{}},
			true,
		},
		{
			"function types differ on arity",
			FunctionType{Params: []Type{Int32Type{}}, Result: VoidType{}},
			FunctionType{Params: []Type{Int32Type{}, Int32Type{}}, Result: VoidType{}},
			false,
		},
		{
			"function types differ on result",
			FunctionType{Params: []Type{}, Result: Int32Type{}},
			FunctionType{Params: []Type{}, Result: Float64Type{}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equals(tt.b))
		})
	}
}

func TestIsIntLikeIsStrictSubsetOfIsNumberLike(t *testing.T) {
	assert.True(t, IsIntLike(Int32Type{}))
	assert.True(t, IsNumberLike(Int32Type{}))

	assert.False(t, IsIntLike(Float64Type{}))
	assert.True(t, IsNumberLike(Float64Type{}))

	assert.False(t, IsNumberLike(BoolType{}))
	assert.False(t, IsNumberLike(VoidType{}))
}

func TestIsBoolAndIsRef(t *testing.T) {
	assert.True(t, IsBool(BoolType{}))
	assert.False(t, IsBool(Int32Type{}))

	assert.True(t, IsRef(ObjectRefType{ClassName: "Point"}))
	assert.True(t, IsRef(ArrayRefType{Elem: Int32Type{}}))
	assert.False(t, IsRef(Int32Type{}))
}

func TestStringRenderingIsHumanReadable(t *testing.T) {
	assert.Equal(t, "int32", Int32Type{}.String())
	assert.Equal(t, "ref(object:Point)", ObjectRefType{ClassName: "Point"}.String())
	assert.Equal(t, "ref(object)", ObjectRefType{}.String())
	assert.Equal(t, "ref(array<int32>)", ArrayRefType{Elem: Int32Type{}}.String())
	assert.Equal(
		t,
		"function(int32, bool) -> float64",
		FunctionType{Params: []Type{Int32Type{}, BoolType{}}, Result: Float64Type{}}.String(),
	)
}
