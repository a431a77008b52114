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

// Symbol is an opaque identity for a declared variable or function, assigned
// by the (external) front-end resolver.  Scope lookup keys on Symbol
// identity rather than spelling, so that two lexically-shadowed declarations
// sharing a name are never confused.
type Symbol struct {
	// id distinguishes this symbol from every other symbol produced by the
	// front end during a single compilation.
	id uint64
	// name is retained only for diagnostics.
	name string
}

// NewSymbol constructs a symbol with the given identity and display name.
// The front-end adapter is responsible for allocating unique ids.
func NewSymbol(id uint64, name string) Symbol {
	return Symbol{id, name}
}

// Name returns the symbol's display name, for diagnostics only.
func (s Symbol) Name() string { return s.name }

// Signature describes the arity and typing of a callable entity: a declared
// function, or an extern from the runtime library.
type Signature struct {
	Params []Type
	Result Type
	// Variadic is always false in the restricted subset; retained so the
	// call-expression generator has a single place to reject it explicitly
	// rather than silently mis-arity-checking.
	Variadic bool
}

// FunctionType projects this signature into the Type lattice, for use where
// a function value itself (not a call to it) needs a static type.
func (s Signature) FunctionType() FunctionType {
	return FunctionType{Params: s.Params, Result: s.Result}
}
