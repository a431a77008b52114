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

import "github.com/speedyc-lang/speedyc/pkg/lang"

// Function is one compiled function: its typed signature, its basic blocks,
// and the pool of value definitions they reference.
type Function struct {
	// Name is the function's name, always set; whether it is exported as
	// a WebAssembly symbol is recorded separately in Exported.
	Name     string
	Exported bool
	Params   []lang.Type
	Result   lang.Type

	blocks []*Block
	values []valueDef
	params []Value
	entry  BlockID
}

// Blocks returns this function's basic blocks in creation order. Block 0 is
// always the entry block.
func (f *Function) Blocks() []*Block {
	return f.blocks
}

// Entry returns the id of this function's entry block.
func (f *Function) Entry() BlockID { return f.entry }

// Params returns the Values bound to this function's formal parameters, in
// declaration order; each is materialized into a stack slot by the Function
// Compiler so parameters are uniformly mutable l-values (spec.md §4.4.8).
func (f *Function) Params() []Value {
	out := make([]Value, len(f.params))
	copy(out, f.params)

	return out
}

// TypeOf returns the static type a previously-emitted Value was constructed
// with.
func (f *Function) TypeOf(v Value) lang.Type {
	return f.values[v-1].typ
}

// block looks up a block by id; panics on an unknown id, which indicates a
// Builder misuse rather than a user-facing condition.
func (f *Function) block(id BlockID) *Block {
	for _, b := range f.blocks {
		if b.id == id {
			return b
		}
	}

	panic("ssa: unknown block id")
}
