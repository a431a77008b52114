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

// Generator lowers one node of a fixed syntactic category into a Value.
type Generator func(c *Context, node ast.Node) (Value, error)

// Dispatcher is the registry mapping each syntactic category to its
// code-generator (spec.md §4.1). The category set is closed and fixed by
// package ast, so this is a plain map built once by NewDispatcher rather
// than an open, plugin-style registration scheme (spec.md §9's "Dynamic
// dispatch" note: prefer the table when the set is closed, as here).
// Immutable after construction; the only process-wide state this
// compiler carries (spec.md §9 "Global state").
type Dispatcher struct {
	generators map[ast.Category]Generator
}

// NewDispatcher builds the dispatcher with every category in the accepted
// subset bound to its generator. Adding a new category to package ast
// without adding its entry here means every lowering of that category
// fails with UnsupportedCategoryError at generation time, not at startup:
// the dispatcher itself does not attempt exhaustiveness checking, since Go
// has no closed-enum exhaustiveness check over map keys.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{generators: map[ast.Category]Generator{
		ast.CategoryLiteral:        generateLiteral,
		ast.CategoryIdentifier:     generateIdentifier,
		ast.CategoryBinary:         generateBinary,
		ast.CategoryUnary:          generateUnary,
		ast.CategoryTernary:        generateTernary,
		ast.CategoryLogical:        generateLogical,
		ast.CategoryCall:           generateCall,
		ast.CategoryNew:            generateNew,
		ast.CategoryPropertyAccess: generatePropertyAccess,
		ast.CategoryElementAccess:  generateElementAccess,
		ast.CategoryArrayLiteral:   generateArrayLiteral,
		ast.CategoryObjectLiteral:  generateObjectLiteral,
		ast.CategoryBlock:          generateBlock,
		ast.CategoryExprStmt:       generateExprStmt,
		ast.CategoryIf:             generateIf,
		ast.CategoryWhile:          generateWhile,
		ast.CategoryDoWhile:        generateDoWhile,
		ast.CategoryFor:            generateFor,
		ast.CategorySwitch:         generateSwitch,
		ast.CategoryBreak:          generateBreak,
		ast.CategoryContinue:       generateContinue,
		ast.CategoryReturn:         generateReturn,
		ast.CategoryVarDecl:        generateVarDecl,
		ast.CategoryFuncDecl:       generateFuncDecl,
	}}
}

// Generate looks up node's category and delegates, per spec.md §4.1's
// generate(node, context) -> Value. A missing generator is
// UnsupportedCategoryError, not a bare panic, so the Module Assembler can
// aggregate it per §7.
func (d *Dispatcher) Generate(c *Context, node ast.Node) (Value, error) {
	gen, ok := d.generators[node.Category()]
	if !ok {
		return nil, &UnsupportedCategoryError{Category: node.Category(), At: c.spanOf(node)}
	}

	return gen(c, node)
}
