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

import "github.com/speedyc-lang/speedyc/pkg/lang/ast"

// generateIdentifier resolves a symbol reference against the active scope
// chain (spec.md §4.4.2). A miss is UnresolvedSymbolError rather than a
// panic: the front-end's resolver is trusted for well-typedness, not for
// having already proven every reference reachable from this Context's
// scope stack, since the two walk the program independently.
func generateIdentifier(c *Context, node ast.Node) (Value, error) {
	ident := node.(*ast.Identifier)

	v, ok := c.Lookup(ident.Symbol)
	if !ok {
		return nil, &UnresolvedSymbolError{Name: ident.Symbol.Name(), At: c.spanOf(node)}
	}

	return v, nil
}
