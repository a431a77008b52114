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
	"context"

	"github.com/sirupsen/logrus"

	"github.com/speedyc-lang/speedyc/pkg/lang/ast"
	"github.com/speedyc-lang/speedyc/pkg/source"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

// CompileAll is the Module Assembler (spec.md §4.6, SPEC_FULL.md §4.6):
// it defines every function's symbol as a FunctionRef in one shared global
// scope (so a compiled function can call a sibling declared later in the
// program), then compiles every annotated function in program order,
// collecting a Diagnostic per failure without aborting the batch —
// grounded on the teacher's []SyntaxError accumulation pattern in
// pkg/corset/compiler (TypeCheckCircuit, ParseSourceFiles) rather than a
// wrapped multierror chain.
//
// ctx is checked for cancellation between functions only (spec.md §5),
// following the teacher's own sparing, coarse-grained use of
// context.Context (e.g. pkg/cmd command execution) rather than plumbing it
// through every call.
func CompileAll(
	ctx context.Context,
	prog *ast.Program,
	resolver ast.TypeResolver,
	spans *source.Maps[ast.Node],
	log *logrus.Logger,
) (*ssa.Module, []Diagnostic) {
	mod := ssa.NewModule()
	builder := ssa.NewBuilder(mod)
	dispatcher := NewDispatcher()
	c := NewContext(builder, mod, resolver, dispatcher, spans)

	for _, decl := range prog.Functions {
		c.Define(decl.Symbol, FunctionRef{Name: decl.Name, Sig: decl.Signature()})
	}

	var diagnostics []Diagnostic

	for _, decl := range prog.Functions {
		if !isAnnotatedForCompilation(decl) {
			continue
		}

		select {
		case <-ctx.Done():
			diagnostics = append(diagnostics, &MalformedFunctionError{
				Function: decl.Name,
				Reason:   ctx.Err().Error(),
				At:       c.spanOf(decl.Body),
			})

			return mod, diagnostics
		default:
		}

		if _, err := compileOne(c, decl); err != nil {
			if log != nil {
				log.WithField("function", decl.Name).Warnf("compilation failed: %v", err)
			}

			if diag, ok := err.(Diagnostic); ok {
				diagnostics = append(diagnostics, diag)
			} else {
				diagnostics = append(diagnostics, &MalformedFunctionError{
					Function: decl.Name,
					Reason:   err.Error(),
					At:       c.spanOf(decl.Body),
				})
			}
		}
	}

	return mod, diagnostics
}
