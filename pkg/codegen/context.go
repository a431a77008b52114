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
	"github.com/speedyc-lang/speedyc/pkg/lang"
	"github.com/speedyc-lang/speedyc/pkg/lang/ast"
	"github.com/speedyc-lang/speedyc/pkg/source"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

// Context is the per-function Emission Context of spec.md §3: the builder,
// the scope chain, the loop/switch landing-pad stacks, and the collaborators
// (module, type resolver, dispatcher) every code-generator needs. One
// Context exists per function compilation and is discarded when the
// function is finalized.
type Context struct {
	Builder    ssa.Builder
	Module     *ssa.Module
	Resolver   ast.TypeResolver
	Dispatcher *Dispatcher
	Spans      *source.Maps[ast.Node]

	fn       *ssa.Function
	epi      epilogue
	top      *scope
	loops    []LoopPads
	switches []SwitchPads
	// breaks is a single combined stack of break targets pushed by both
	// WithLoop and WithSwitch, in nesting order; `break` always targets
	// whichever of the two constructs is innermost, which loops/switches
	// tracked on separate stacks cannot express on their own.
	breaks []ssa.BlockID
}

// epilogue collects return values (and the block that produced each) for
// the single function-exit phi, per spec.md §4.4.6: "return branches to the
// function epilogue, which owns the single return instruction and a phi
// over return values when multiple returns exist."
type epilogue struct {
	block  ssa.BlockID
	values []ssa.Incoming
}

// NewContext constructs an Emission Context for compiling fn against mod,
// with an empty top-level scope.
func NewContext(
	b ssa.Builder,
	mod *ssa.Module,
	resolver ast.TypeResolver,
	dispatcher *Dispatcher,
	spans *source.Maps[ast.Node],
) *Context {
	return &Context{
		Builder:    b,
		Module:     mod,
		Resolver:   resolver,
		Dispatcher: dispatcher,
		Spans:      spans,
		top:        newScope(nil),
	}
}

// spanOf returns the source span registered for node, or the zero Span if
// the front-end adapter did not map it (unit-test fixtures frequently omit
// a source map entirely).
func (c *Context) spanOf(node ast.Node) source.Span {
	if c.Spans == nil || !c.Spans.Has(node) {
		return source.Span{}
	}

	return c.Spans.Diagnostic(node, "").Span()
}

// Generate delegates node to the dispatcher, per spec.md §4.3
// "generate_value(node)".
func (c *Context) Generate(node ast.Node) (Value, error) {
	return c.Dispatcher.Generate(c, node)
}

// Define installs sym -> v in the innermost scope.
func (c *Context) Define(sym lang.Symbol, v Value) {
	c.top.define(sym, v)
}

// Lookup walks the scope chain outward for sym.
func (c *Context) Lookup(sym lang.Symbol) (Value, bool) {
	return c.top.lookup(sym)
}

// WithScope pushes a new lexical scope, runs fn, and pops it whether or not
// fn returns an error — the scoped-guard pattern spec.md §4.3 requires
// ("all exit paths, including error paths, must restore state"), grounded
// on the teacher's LocalScope.NestedScope push/pop discipline
// (pkg/corset/compiler/scope.go).
func (c *Context) WithScope(fn func() error) error {
	saved := c.top
	c.top = newScope(saved)

	defer func() { c.top = saved }()

	return fn()
}

// WithLoop pushes pads, runs fn, and pops pads on every exit path.
func (c *Context) WithLoop(pads LoopPads, fn func() error) error {
	c.loops = append(c.loops, pads)
	c.breaks = append(c.breaks, pads.Break)

	defer func() {
		c.loops = c.loops[:len(c.loops)-1]
		c.breaks = c.breaks[:len(c.breaks)-1]
	}()

	return fn()
}

// WithSwitch pushes a switch landing pad, runs fn, and pops it on every
// exit path.
func (c *Context) WithSwitch(pads SwitchPads, fn func() error) error {
	c.switches = append(c.switches, pads)
	c.breaks = append(c.breaks, pads.Break)

	defer func() {
		c.switches = c.switches[:len(c.switches)-1]
		c.breaks = c.breaks[:len(c.breaks)-1]
	}()

	return fn()
}

// CurrentLoop returns the nearest enclosing loop's landing pads, or false
// if none is active.
func (c *Context) CurrentLoop() (LoopPads, bool) {
	if len(c.loops) == 0 {
		return LoopPads{}, false
	}

	return c.loops[len(c.loops)-1], true
}

// CurrentSwitch returns the nearest enclosing switch's landing pad, or
// false if none is active.
func (c *Context) CurrentSwitch() (SwitchPads, bool) {
	if len(c.switches) == 0 {
		return SwitchPads{}, false
	}

	return c.switches[len(c.switches)-1], true
}

// CurrentBreak returns the break target of whichever loop or switch is
// innermost at this point, or false if neither is active.
func (c *Context) CurrentBreak() (ssa.BlockID, bool) {
	if len(c.breaks) == 0 {
		return 0, false
	}

	return c.breaks[len(c.breaks)-1], true
}

// recordReturn adds one incoming (value, predecessor-block) pair to the
// function epilogue phi. v is the zero Value for a void return.
func (c *Context) recordReturn(v ssa.Value, at ssa.BlockID) {
	c.epi.values = append(c.epi.values, ssa.Incoming{Value: v, Block: at})
}

// emitReturn records one return value at the current block, then branches
// to the epilogue block (function.go seeds c.epi.block before compiling
// the body). Coerces Value to its SSA operand first since the epilogue
// phi deals only in ssa.Value.
func (c *Context) emitReturn(v Value) error {
	var operand ssa.Value
	if v != nil {
		operand = v.AsRValue(c)
	}

	c.recordReturn(operand, c.Builder.CurrentBlock())
	c.Builder.Br(c.epi.block)

	return nil
}
