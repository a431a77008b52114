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

// buildAdd constructs "export func add(int32, int32) -> int32 { return a +
// b }" directly against the Builder, mirroring how the Function Compiler
// itself emits a two-operand arithmetic function.
func buildAdd(mod *Module) *Function {
	b := NewBuilder(mod)

	params, entry := b.NewFunction("add", true, []lang.Type{lang.Int32Type{}, lang.Int32Type{}}, lang.Int32Type{})
	b.SetInsertionPoint(entry)

	sum := b.IAdd(params[0], params[1])
	b.Return(sum)

	return b.Finish()
}

func TestBuilderIntArithmeticAndReturn(t *testing.T) {
	mod := NewModule()
	fn := buildAdd(mod)

	require.NoError(t, Verify(fn))
	assert.Equal(t, "add", fn.Name)
	assert.True(t, fn.Exported)
	assert.Len(t, fn.Blocks(), 1)
	assert.Equal(t, lang.Int32Type{}, fn.TypeOf(fn.Params()[0]))
}

func TestBuilderBranchingRequiresTerminatedBlocks(t *testing.T) {
	mod := NewModule()
	b := NewBuilder(mod)

	_, entry := b.NewFunction("choose", false, []lang.Type{lang.BoolType{}}, lang.Int32Type{})
	thenBlk := b.NewBlock()
	elseBlk := b.NewBlock()

	b.SetInsertionPoint(entry)
	cond := b.CurrentFunction().Params()[0]
	b.CondBr(cond, thenBlk, elseBlk)

	b.SetInsertionPoint(thenBlk)
	one := b.Int32(1)
	b.Return(one)

	b.SetInsertionPoint(elseBlk)
	zero := b.Int32(0)
	b.Return(zero)

	fn := b.Finish()
	assert.NoError(t, Verify(fn))
}

func TestBuilderUnterminatedBlockFailsVerify(t *testing.T) {
	mod := NewModule()
	b := NewBuilder(mod)

	_, entry := b.NewFunction("dangling", false, nil, lang.VoidType{})
	b.SetInsertionPoint(entry)
	b.Int32(0)

	fn := b.Finish()
	assert.Error(t, Verify(fn))
}

func TestBuilderPhiMergesBranches(t *testing.T) {
	mod := NewModule()
	b := NewBuilder(mod)

	params, entry := b.NewFunction("abs", false, []lang.Type{lang.Int32Type{}}, lang.Int32Type{})
	neg := b.NewBlock()
	join := b.NewBlock()

	b.SetInsertionPoint(entry)
	isNeg := b.ICmp(PredLT, params[0], b.Int32(0))
	b.CondBr(isNeg, neg, join)
	fromEntry := Incoming{Value: params[0], Block: entry}

	b.SetInsertionPoint(neg)
	negated := b.ISub(b.Int32(0), params[0])
	b.Br(join)
	fromNeg := Incoming{Value: negated, Block: neg}

	b.SetInsertionPoint(join)
	merged := b.Phi(lang.Int32Type{}, []Incoming{fromEntry, fromNeg})
	b.Return(merged)

	fn := b.Finish()
	require.NoError(t, Verify(fn))
	assert.Contains(t, Text(mod), "phi")
}

func TestConstStringInternsIntoModulePool(t *testing.T) {
	mod := NewModule()
	b := NewBuilder(mod)

	_, entry := b.NewFunction("greet", false, nil, lang.ObjectRefType{ClassName: "String"})
	b.SetInsertionPoint(entry)

	v := b.ConstString("hello")
	v2 := b.ConstString("hello")
	b.ConstString("world")
	b.Return(v)

	assert.Equal(t, []string{"hello", "world"}, mod.Strings(), "the pool dedupes payloads even though each call still emits its own instruction")
	assert.NotEqual(t, v, v2, "each ConstString call emits a fresh instruction regardless of pool dedup")

	b.Finish()
}
