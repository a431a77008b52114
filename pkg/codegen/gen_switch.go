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

// generateSwitch lowers `switch (disc) { case v: ...; default: ... }` as a
// chain of equality tests against disc, one case body block per arm, and
// fallthrough between arms that don't end in an explicit break — the
// branch-table-style multi-way dispatch the teacher uses for its own
// instruction decode (pkg/asm/compiler/branch_table.go), generalized here
// from a dense jump table to a test chain since case values need not be
// dense or even constant-foldable at this stage.
func generateSwitch(c *Context, node ast.Node) (Value, error) {
	stmt := node.(*ast.SwitchStmt)

	disc, err := c.Generate(stmt.Disc)
	if err != nil {
		return nil, err
	}

	discVal := disc.AsRValue(c)

	caseBlocks := make([]ssa.BlockID, len(stmt.Cases))
	for i := range stmt.Cases {
		caseBlocks[i] = c.Builder.NewBlock()
	}

	exitBlock := c.Builder.NewBlock()

	if err := emitCaseTests(c, stmt, discVal, caseBlocks, exitBlock); err != nil {
		return nil, err
	}

	return nil, c.WithSwitch(SwitchPads{Break: exitBlock}, func() error {
		for i, cs := range stmt.Cases {
			c.Builder.SetInsertionPoint(caseBlocks[i])

			if err := c.WithScope(func() error {
				for _, s := range cs.Body {
					if _, err := c.Generate(s); err != nil {
						return err
					}

					if blockHasTerminator(c) {
						break
					}
				}

				return nil
			}); err != nil {
				return err
			}

			next := exitBlock
			if i+1 < len(caseBlocks) {
				next = caseBlocks[i+1]
			}

			branchToOpenBlock(c, next)
		}

		c.Builder.SetInsertionPoint(exitBlock)

		return nil
	})
}

// emitCaseTests builds the sequential comparison chain that selects which
// case block to enter. The default arm (Value == nil) matches
// unconditionally once reached, so it must be tested last regardless of
// its position in stmt.Cases — the source language allows `default` to
// appear anywhere among the cases but it only ever catches what no other
// case claimed.
func emitCaseTests(c *Context, stmt *ast.SwitchStmt, discVal ssa.Value, caseBlocks []ssa.BlockID, exitBlock ssa.BlockID) error {
	order := make([]int, 0, len(stmt.Cases))
	defaultIdx := -1

	for i, cs := range stmt.Cases {
		if cs.Value == nil {
			defaultIdx = i
			continue
		}

		order = append(order, i)
	}

	if defaultIdx >= 0 {
		order = append(order, defaultIdx)
	}

	if len(order) == 0 {
		c.Builder.Br(exitBlock)
		return nil
	}

	for pos, i := range order {
		cs := stmt.Cases[i]

		if cs.Value == nil {
			c.Builder.Br(caseBlocks[i])
			return nil
		}

		caseVal, err := c.Generate(cs.Value)
		if err != nil {
			return err
		}

		matched := c.Builder.ICmp(ssa.PredEQ, discVal, caseVal.AsRValue(c))

		miss := exitBlock
		if pos+1 < len(order) {
			miss = c.Builder.NewBlock()
		}

		c.Builder.CondBr(matched, caseBlocks[i], miss)

		if pos+1 < len(order) {
			c.Builder.SetInsertionPoint(miss)
		}
	}

	return nil
}
