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

// Extern is a declared but not locally defined function, imported from the
// runtime (pkg/runtime/extern) at link time. Two Externs with the same
// mangled Name must agree on Signature; a conflict is an
// ExternSignatureConflict diagnostic (spec.md §7).
type Extern struct {
	Name   string
	Params []lang.Type
	Result lang.Type
}

// Module is the sealed unit of compilation output: every function the
// Module Assembler decided to compile, plus the deduplicated table of
// externs they reference. It is the container the Builder populates and the
// only input the text and bytecode encoders consume.
type Module struct {
	functions []*Function
	externs   []Extern
	externIdx map[string]int

	strings   []string
	stringIdx map[string]int
}

// NewModule constructs an empty Module ready to receive functions via a
// Builder.
func NewModule() *Module {
	return &Module{externIdx: make(map[string]int), stringIdx: make(map[string]int)}
}

// Strings returns the deduplicated pool of string-literal payloads
// referenced by opConstString instructions, in first-use order. Encode
// does not write them out; it emits no data section.
func (m *Module) Strings() []string {
	return m.strings
}

// internString registers s in the pool if not already present.
func (m *Module) internString(s string) int {
	if i, ok := m.stringIdx[s]; ok {
		return i
	}

	i := len(m.strings)
	m.stringIdx[s] = i
	m.strings = append(m.strings, s)

	return i
}

// Functions returns every function assembled into this module, in the order
// they were finished.
func (m *Module) Functions() []*Function {
	return m.functions
}

// Externs returns the deduplicated extern table.
func (m *Module) Externs() []Extern {
	return m.externs
}

// DeclareExtern registers callee with the given signature, deduplicating by
// name. It returns false if callee was already declared with a
// incompatible signature, leaving the existing declaration untouched; the
// caller is expected to surface this as an ExternSignatureConflict
// diagnostic.
func (m *Module) DeclareExtern(e Extern) bool {
	if i, ok := m.externIdx[e.Name]; ok {
		existing := m.externs[i]
		if !signaturesEqual(existing, e) {
			return false
		}

		return true
	}

	m.externIdx[e.Name] = len(m.externs)
	m.externs = append(m.externs, e)

	return true
}

func signaturesEqual(a, b Extern) bool {
	if !a.Result.Equals(b.Result) || len(a.Params) != len(b.Params) {
		return false
	}

	for i := range a.Params {
		if !a.Params[i].Equals(b.Params[i]) {
			return false
		}
	}

	return true
}
