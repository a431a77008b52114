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
package ssa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speedyc-lang/speedyc/pkg/lang"
)

func TestEncodeProducesWellFormedHeaderAndExport(t *testing.T) {
	mod := NewModule()
	buildAdd(mod)

	out := Encode(mod)

	require.True(t, len(out) > 8)
	assert.Equal(t, []byte(wasmMagic), out[0:4])
	assert.Equal(t, byte(1), out[4], "version is encoded little-endian; byte 0 of a value of 1 is 1")
	assert.Equal(t, byte(0), out[5])
	assert.Equal(t, byte(0), out[6])
	assert.Equal(t, byte(0), out[7])

	// Name 'add' should appear verbatim inside the export section payload.
	assert.Contains(t, string(out), "add")
}

func TestSignatureKeyDistinguishesValueTypes(t *testing.T) {
	i32 := []lang.Type{lang.Int32Type{}}
	f64 := []lang.Type{lang.Float64Type{}}

	assert.NotEqual(t, signatureKey(i32, lang.Int32Type{}), signatureKey(f64, lang.Int32Type{}))
	assert.Equal(t, signatureKey(i32, lang.VoidType{}), signatureKey(i32, lang.VoidType{}))
}

func TestEncodeDedupesIdenticalSignaturesInTypeSection(t *testing.T) {
	mod := NewModule()
	b := NewBuilder(mod)

	_, e1 := b.NewFunction("a", true, []lang.Type{lang.Int32Type{}}, lang.Int32Type{})
	b.SetInsertionPoint(e1)
	b.Return(b.CurrentFunction().Params()[0])
	b.Finish()

	b2 := NewBuilder(mod)
	_, e2 := b2.NewFunction("b", true, []lang.Type{lang.Int32Type{}}, lang.Int32Type{})
	b2.SetInsertionPoint(e2)
	b2.Return(b2.CurrentFunction().Params()[0])
	b2.Finish()

	_, typeIdx := encodeTypeSection(mod)
	assert.Len(t, typeIdx, 1, "both functions share the (i32)->i32 signature")
}
