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

// generateBlock lowers a `{ ... }` block: each statement in order, within
// its own lexical scope. Stops early if a statement seals the current
// block (return/break/continue made the rest of the block unreachable);
// this mirrors how a type-checked front end would already have flagged
// genuinely unreachable code, so this package does not itself diagnose it.
func generateBlock(c *Context, node ast.Node) (Value, error) {
	blk := node.(*ast.Block)

	return nil, c.WithScope(func() error {
		for _, stmt := range blk.Stmts {
			if _, err := c.Generate(stmt); err != nil {
				return err
			}

			if blockHasTerminator(c) {
				break
			}
		}

		return nil
	})
}

// blockHasTerminator reports whether the builder's current block already
// ended in a terminator.
func blockHasTerminator(c *Context) bool {
	cur := c.Builder.CurrentBlock()

	for _, b := range c.Builder.CurrentFunction().Blocks() {
		if b.ID() == cur {
			return b.HasTerminator()
		}
	}

	return false
}

// generateExprStmt lowers an expression used as a statement, discarding
// its value.
func generateExprStmt(c *Context, node ast.Node) (Value, error) {
	stmt := node.(*ast.ExprStmt)

	_, err := c.Generate(stmt.Expr)

	return nil, err
}
