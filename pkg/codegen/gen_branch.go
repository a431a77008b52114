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

// generateBreak branches to whichever of the nearest enclosing loop or
// switch is innermost. No enclosing construct is UnstructuredControlFlow
// (spec.md §4.4.6).
func generateBreak(c *Context, node ast.Node) (Value, error) {
	target, ok := c.CurrentBreak()
	if !ok {
		return nil, &UnstructuredControlFlowError{Keyword: "break", At: c.spanOf(node)}
	}

	c.Builder.Br(target)

	return nil, nil
}

// generateContinue branches to the nearest enclosing loop's continue pad.
// Unlike break, continue always targets a loop, never a switch: a switch
// pushes no continue pad, so an intervening switch is transparent to
// continue's search for the nearest enclosing loop.
func generateContinue(c *Context, node ast.Node) (Value, error) {
	loop, ok := c.CurrentLoop()
	if !ok {
		return nil, &UnstructuredControlFlowError{Keyword: "continue", At: c.spanOf(node)}
	}

	c.Builder.Br(loop.Continue)

	return nil, nil
}

// generateReturn evaluates the optional return value (none for a void
// function) and records it in the function epilogue rather than emitting a
// terminator directly: the epilogue block owns the single return
// instruction and merges every return site via a phi when there is more
// than one (spec.md §4.4.6).
func generateReturn(c *Context, node ast.Node) (Value, error) {
	stmt := node.(*ast.ReturnStmt)

	var v Value

	if stmt.Value != nil {
		var err error

		v, err = c.Generate(stmt.Value)
		if err != nil {
			return nil, err
		}
	}

	return nil, c.emitReturn(v)
}
