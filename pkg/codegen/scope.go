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
package codegen

import (
	"github.com/speedyc-lang/speedyc/pkg/lang"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

// scope maps symbol identity to its l-value slot within one lexical block.
// Scopes form a stack; lookup walks outward to the enclosing scope, per
// spec.md §3 "Scope chain".
type scope struct {
	slots  map[lang.Symbol]Value
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{slots: make(map[lang.Symbol]Value), parent: parent}
}

// define installs a new binding in this scope. Redeclaration within the
// same scope is a front-end concern (the type resolver would not have
// produced the AST otherwise); this package trusts its input.
func (s *scope) define(sym lang.Symbol, v Value) {
	s.slots[sym] = v
}

// lookup walks outward from s, returning the bound Value and true, or
// false if sym is bound nowhere in the chain.
func (s *scope) lookup(sym lang.Symbol) (Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.slots[sym]; ok {
			return v, true
		}
	}

	return nil, false
}

// LoopPads is the landing-pad pair a loop pushes on entry: the blocks
// `continue` and `break` branch to respectively.
type LoopPads struct {
	Continue ssa.BlockID
	Break    ssa.BlockID
}

// SwitchPads is the landing pad a switch pushes on entry: fallthrough
// (the next case's block) is threaded separately by gen_switch itself,
// since it is positional rather than a fixed target; Break is the only
// pad a `break` inside a switch needs.
type SwitchPads struct {
	Break ssa.BlockID
}
