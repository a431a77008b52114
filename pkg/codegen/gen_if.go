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
	"github.com/speedyc-lang/speedyc/pkg/lang/ast"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

// generateIf lowers an if/else statement. Unlike gen_ternary.go there is no
// value to merge, so the then/else blocks simply branch to a shared
// continuation block; a branch that already ended in a terminator
// (return/break/continue) is left sealed and contributes no edge to the
// continuation.
func generateIf(c *Context, node ast.Node) (Value, error) {
	stmt := node.(*ast.IfStmt)

	cond, err := c.Generate(stmt.Cond)
	if err != nil {
		return nil, err
	}

	thenBlock := c.Builder.NewBlock()
	contBlock := c.Builder.NewBlock()

	elseBlock := contBlock
	if stmt.Else != nil {
		elseBlock = c.Builder.NewBlock()
	}

	c.Builder.CondBr(cond.AsRValue(c), thenBlock, elseBlock)

	c.Builder.SetInsertionPoint(thenBlock)

	if err := c.WithScope(func() error {
		_, err := c.Generate(stmt.Then)
		return err
	}); err != nil {
		return nil, err
	}

	branchToOpenBlock(c, contBlock)

	if stmt.Else != nil {
		c.Builder.SetInsertionPoint(elseBlock)

		if err := c.WithScope(func() error {
			_, err := c.Generate(stmt.Else)
			return err
		}); err != nil {
			return nil, err
		}

		branchToOpenBlock(c, contBlock)
	}

	c.Builder.SetInsertionPoint(contBlock)

	return nil, nil
}

// branchToOpenBlock emits a branch to target from the builder's current
// block, unless that block already ended in a terminator (e.g. the
// branch's last statement was a return).
func branchToOpenBlock(c *Context, target ssa.BlockID) {
	if blockHasTerminator(c) {
		return
	}

	c.Builder.Br(target)
}
