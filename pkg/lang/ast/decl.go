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
package ast

import "github.com/speedyc-lang/speedyc/pkg/lang"

// CompilationDirective is the leading string-literal statement which marks a
// function as a compilation candidate (spec.md §6, "Input").
const CompilationDirective = "use speedy"

// Param is a single formal parameter of a FuncDecl.
type Param struct {
	Symbol lang.Symbol
	Type   lang.Type
}

// FuncDecl is a top-level (or nested, non-escaping) function declaration.
// Functions whose leading body statement is the CompilationDirective string
// literal are compilation candidates and are added to the Module
// Assembler's work list; others exist only so calls to them type-check but
// are not themselves lowered.
type FuncDecl struct {
	Name      string
	Symbol    lang.Symbol
	Params    []Param
	Result    lang.Type
	Body      *Block
	Annotated bool
}

// Category implements Node.
func (*FuncDecl) Category() Category { return CategoryFuncDecl }

// Signature projects this declaration's parameter and result types into a
// lang.Signature, for use by the Type Resolver's signature_of query.
func (f *FuncDecl) Signature() lang.Signature {
	params := make([]lang.Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}

	return lang.Signature{Params: params, Result: f.Result}
}

// Program is the root of a compilation unit: the set of function
// declarations visible to the Module Assembler.
type Program struct {
	Functions []*FuncDecl
}
