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
package ast

import "github.com/speedyc-lang/speedyc/pkg/lang"

// Block is a sequence of statements sharing a single lexical scope.
type Block struct {
	Stmts []Stmt
}

// Category implements Node.
func (*Block) Category() Category { return CategoryBlock }
func (*Block) isStmt()            {}

// ExprStmt evaluates an expression for effect, discarding its Value.
type ExprStmt struct {
	Expr Expr
}

// Category implements Node.
func (*ExprStmt) Category() Category { return CategoryExprStmt }
func (*ExprStmt) isStmt()            {}

// IfStmt is "if (Cond) Then [else Else]"; Else is nil when absent.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// Category implements Node.
func (*IfStmt) Category() Category { return CategoryIf }
func (*IfStmt) isStmt()            {}

// WhileStmt is "while (Cond) Body".
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// Category implements Node.
func (*WhileStmt) Category() Category { return CategoryWhile }
func (*WhileStmt) isStmt()            {}

// DoWhileStmt is "do Body while (Cond)".
type DoWhileStmt struct {
	Body Stmt
	Cond Expr
}

// Category implements Node.
func (*DoWhileStmt) Category() Category { return CategoryDoWhile }
func (*DoWhileStmt) isStmt()            {}

// ForStmt is "for (Init; Cond; Post) Body"; Init, Cond, and Post may each be
// nil when the corresponding clause is omitted.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Post Stmt
	Body Stmt
}

// Category implements Node.
func (*ForStmt) Category() Category { return CategoryFor }
func (*ForStmt) isStmt()            {}

// SwitchCase is one "case Value:" (or, when Value is nil, the "default:")
// arm of a SwitchStmt. A case with no trailing break falls through to the
// next arm's statements, per the source language's C-like switch semantics.
type SwitchCase struct {
	Value Expr
	Body  []Stmt
}

// SwitchStmt dispatches on Disc against each case's constant Value, lowered
// using the switch landing-pad stack (SPEC_FULL.md §4.4, "Supplemented").
type SwitchStmt struct {
	Disc  Expr
	Cases []SwitchCase
}

// Category implements Node.
func (*SwitchStmt) Category() Category { return CategorySwitch }
func (*SwitchStmt) isStmt()            {}

// BreakStmt branches to the nearest enclosing loop or switch's break target.
type BreakStmt struct{}

// Category implements Node.
func (*BreakStmt) Category() Category { return CategoryBreak }
func (*BreakStmt) isStmt()            {}

// ContinueStmt branches to the nearest enclosing loop's continue target.
type ContinueStmt struct{}

// Category implements Node.
func (*ContinueStmt) Category() Category { return CategoryContinue }
func (*ContinueStmt) isStmt()            {}

// ReturnStmt branches to the function epilogue; Value is nil for a void
// return.
type ReturnStmt struct {
	Value Expr
}

// Category implements Node.
func (*ReturnStmt) Category() Category { return CategoryReturn }
func (*ReturnStmt) isStmt()            {}

// VarDeclStmt declares a new binding in the current scope; Init is nil when
// the declaration has no initializer, in which case the slot receives the
// language-defined zero value for its Symbol's declared type.
type VarDeclStmt struct {
	Symbol lang.Symbol
	Type   lang.Type
	Init   Expr
}

// Category implements Node.
func (*VarDeclStmt) Category() Category { return CategoryVarDecl }
func (*VarDeclStmt) isStmt()            {}
