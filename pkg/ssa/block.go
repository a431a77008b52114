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

// Block is a basic block: a maximal straight-line sequence of instructions
// ending in exactly one terminator (Br, CondBr, Return, or Unreachable).
type Block struct {
	id     BlockID
	instrs []Value
	sealed bool
}

// ID returns this block's identity within its enclosing Function.
func (b *Block) ID() BlockID { return b.id }

// HasTerminator determines whether this block's instruction list already
// ends in a terminator, i.e. whether it is sealed against further
// instructions being appended. This underlies testable-property #3 (spec.md
// §8): exactly one terminator per non-epilogue block.
func (b *Block) HasTerminator() bool { return b.sealed }

// Instrs returns, in emission order, the ids of every instruction (value or
// void) appended to this block.
func (b *Block) Instrs() []Value {
	out := make([]Value, len(b.instrs))
	copy(out, b.instrs)

	return out
}
