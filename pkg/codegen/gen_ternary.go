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

// generateTernary lowers `cond ? then : otherwise` (SPEC_FULL.md §4.4,
// supplemented feature) as an expression-level if/else: two successor
// blocks that each compute one arm and branch to a merge block holding a
// phi over the two results, rather than gen_if.go's statement form which
// has no value to merge.
func generateTernary(c *Context, node ast.Node) (Value, error) {
	tern := node.(*ast.TernaryExpr)

	cond, err := c.Generate(tern.Cond)
	if err != nil {
		return nil, err
	}

	thenBlock := c.Builder.NewBlock()
	elseBlock := c.Builder.NewBlock()
	mergeBlock := c.Builder.NewBlock()

	c.Builder.CondBr(cond.AsRValue(c), thenBlock, elseBlock)

	c.Builder.SetInsertionPoint(thenBlock)

	thenVal, err := c.Generate(tern.Then)
	if err != nil {
		return nil, err
	}

	thenResult := thenVal.AsRValue(c)
	thenEnd := c.Builder.CurrentBlock()
	c.Builder.Br(mergeBlock)

	c.Builder.SetInsertionPoint(elseBlock)

	elseVal, err := c.Generate(tern.Otherwise)
	if err != nil {
		return nil, err
	}

	elseResult := elseVal.AsRValue(c)
	elseEnd := c.Builder.CurrentBlock()
	c.Builder.Br(mergeBlock)

	c.Builder.SetInsertionPoint(mergeBlock)

	resultType := thenVal.Type()
	phi := c.Builder.Phi(resultType, []ssa.Incoming{
		{Value: thenResult, Block: thenEnd},
		{Value: elseResult, Block: elseEnd},
	})

	return RValue{Val: phi, Typ: resultType}, nil
}
