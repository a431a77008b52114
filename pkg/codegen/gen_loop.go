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

// generateWhile lowers `while (cond) body`. continue re-enters the header
// (re-evaluates cond); break exits to the block after the loop (spec.md
// §4.4.6).
func generateWhile(c *Context, node ast.Node) (Value, error) {
	stmt := node.(*ast.WhileStmt)

	header := c.Builder.NewBlock()
	body := c.Builder.NewBlock()
	exit := c.Builder.NewBlock()

	c.Builder.Br(header)
	c.Builder.SetInsertionPoint(header)

	cond, err := c.Generate(stmt.Cond)
	if err != nil {
		return nil, err
	}

	c.Builder.CondBr(cond.AsRValue(c), body, exit)

	c.Builder.SetInsertionPoint(body)

	if err := c.WithLoop(LoopPads{Continue: header, Break: exit}, func() error {
		return c.WithScope(func() error {
			_, err := c.Generate(stmt.Body)
			return err
		})
	}); err != nil {
		return nil, err
	}

	branchToOpenBlock(c, header)
	c.Builder.SetInsertionPoint(exit)

	return nil, nil
}

// generateDoWhile lowers `do body while (cond)`. The body always runs once
// before cond is first evaluated; continue re-enters the condition check
// rather than the body directly (spec.md §4.4.6).
func generateDoWhile(c *Context, node ast.Node) (Value, error) {
	stmt := node.(*ast.DoWhileStmt)

	body := c.Builder.NewBlock()
	condBlock := c.Builder.NewBlock()
	exit := c.Builder.NewBlock()

	c.Builder.Br(body)
	c.Builder.SetInsertionPoint(body)

	if err := c.WithLoop(LoopPads{Continue: condBlock, Break: exit}, func() error {
		return c.WithScope(func() error {
			_, err := c.Generate(stmt.Body)
			return err
		})
	}); err != nil {
		return nil, err
	}

	branchToOpenBlock(c, condBlock)
	c.Builder.SetInsertionPoint(condBlock)

	cond, err := c.Generate(stmt.Cond)
	if err != nil {
		return nil, err
	}

	c.Builder.CondBr(cond.AsRValue(c), body, exit)

	c.Builder.SetInsertionPoint(exit)

	return nil, nil
}

// generateFor lowers `for (init; cond; post) body`. continue re-enters the
// post block (runs the increment, then re-checks cond), never the body
// directly (spec.md §4.4.6).
func generateFor(c *Context, node ast.Node) (Value, error) {
	stmt := node.(*ast.ForStmt)

	return nil, c.WithScope(func() error {
		if stmt.Init != nil {
			if _, err := c.Generate(stmt.Init); err != nil {
				return err
			}
		}

		header := c.Builder.NewBlock()
		body := c.Builder.NewBlock()
		post := c.Builder.NewBlock()
		exit := c.Builder.NewBlock()

		c.Builder.Br(header)
		c.Builder.SetInsertionPoint(header)

		if stmt.Cond != nil {
			cond, err := c.Generate(stmt.Cond)
			if err != nil {
				return err
			}

			c.Builder.CondBr(cond.AsRValue(c), body, exit)
		} else {
			c.Builder.Br(body)
		}

		c.Builder.SetInsertionPoint(body)

		if err := c.WithLoop(LoopPads{Continue: post, Break: exit}, func() error {
			return c.WithScope(func() error {
				_, err := c.Generate(stmt.Body)
				return err
			})
		}); err != nil {
			return err
		}

		branchToOpenBlock(c, post)
		c.Builder.SetInsertionPoint(post)

		if stmt.Post != nil {
			if _, err := c.Generate(stmt.Post); err != nil {
				return err
			}
		}

		c.Builder.Br(header)
		c.Builder.SetInsertionPoint(exit)

		return nil
	})
}
