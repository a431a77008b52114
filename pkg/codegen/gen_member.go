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
	"github.com/speedyc-lang/speedyc/pkg/runtime/extern"
	"github.com/speedyc-lang/speedyc/pkg/ssa"
)

// generatePropertyAccess, generateElementAccess, generateNew,
// generateArrayLiteral, and generateObjectLiteral all implement spec.md
// §4.4.9: the generator's only job is to marshal typed arguments and
// thread the ref Value the runtime collaborator hands back. None of them
// addresses memory directly; every object layout decision belongs to the
// runtime (pkg/runtime/extern), consistent with ObjectRefType's own doc
// comment ("the actual layout is owned by the runtime collaborator").

// callExtern declares e in the module (surfacing ExternSignatureConflict
// on a mismatched re-declaration) and emits the call.
func callExtern(c *Context, e ssa.Extern, args []ssa.Value, at ast.Node) (ssa.Value, error) {
	if !c.Module.DeclareExtern(e) {
		return 0, &ExternSignatureConflictError{Name: e.Name, At: c.spanOf(at)}
	}

	return c.Builder.Call(e.Name, e.Result, args), nil
}

// generatePropertyAccess resolves `object.Name` to a PropertyRef, an
// Assignable Value backed by a mangled per-(class,field) runtime accessor
// pair rather than a raw field offset. The getter extern is declared here,
// eagerly, rather than lazily the first time the resulting PropertyRef is
// read, so that two classes sharing a field name with incompatible types
// (e.g. Point.x: int32 vs Circle.x: float64) surface
// ExternSignatureConflictError instead of the read silently compiling away
// — mangling the getter by class as well as field name means this pair no
// longer collides at all; the check remains as a backstop for the one
// case it still can fire (the same class genuinely redeclaring a field
// with two different types).
func generatePropertyAccess(c *Context, node ast.Node) (Value, error) {
	pa := node.(*ast.PropertyAccess)

	obj, err := c.Generate(pa.Object)
	if err != nil {
		return nil, err
	}

	className := objectClassName(obj.Type())

	getter := extern.FieldGetter(className, pa.Name, pa.FieldType)
	if !c.Module.DeclareExtern(getter) {
		return nil, &ExternSignatureConflictError{Name: getter.Name, At: c.spanOf(pa)}
	}

	return PropertyRef{Object: obj.AsRValue(c), ClassName: className, Name: pa.Name, Typ: pa.FieldType}, nil
}

// objectClassName extracts the ClassName an object-typed Value's static
// type carries, or "" if t isn't an object reference (FieldGetter/
// FieldSetter fall back to the bare field name in that case).
func objectClassName(t lang.Type) string {
	if ref := t.AsObjectRef(); ref != nil {
		return ref.ClassName
	}

	return ""
}

// generateElementAccess resolves `array[index]` to an ElementRef, an
// Assignable Value backed by the element-kind-mangled
// rt_array_get_<kind>/rt_array_set_<kind> pair. The getter extern is
// declared here, eagerly, for the same reason generatePropertyAccess
// declares its getter eagerly: ElementRef.AsRValue has no way to report a
// signature conflict once it's too late.
func generateElementAccess(c *Context, node ast.Node) (Value, error) {
	ea := node.(*ast.ElementAccess)

	arr, err := c.Generate(ea.Array)
	if err != nil {
		return nil, err
	}

	idx, err := c.Generate(ea.Index)
	if err != nil {
		return nil, err
	}

	arrType := arr.Type().AsArrayRef()
	if arrType == nil {
		return nil, &TypeMismatchError{Expected: lang.ArrayRefType{}, Actual: arr.Type(), At: c.spanOf(ea.Array)}
	}

	getter := extern.ArrayGet(*arrType, arrType.Elem)
	if !c.Module.DeclareExtern(getter) {
		return nil, &ExternSignatureConflictError{Name: getter.Name, At: c.spanOf(ea)}
	}

	return ElementRef{
		Array: arr.AsRValue(c),
		Index: idx.AsRValue(c),
		Typ:   arrType.Elem,
	}, nil
}

// generateNew marshals a `new ClassName(args...)` call into the mangled
// per-class constructor extern rt_new_<ClassName>.
func generateNew(c *Context, node ast.Node) (Value, error) {
	ne := node.(*ast.NewExpr)

	args, argTypes, err := generateArgs(c, ne.Args)
	if err != nil {
		return nil, err
	}

	v, err := callExtern(c, extern.Constructor(ne.ClassName, argTypes, ne.Type), args, node)
	if err != nil {
		return nil, err
	}

	return RValue{Val: v, Typ: ne.Type}, nil
}

// generateArrayLiteral allocates a fixed-length array via rt_alloc_array
// and populates it element by element via rt_array_set_<kind>, left to
// right.
func generateArrayLiteral(c *Context, node ast.Node) (Value, error) {
	al := node.(*ast.ArrayLiteral)

	arrType := lang.ArrayRefType{Elem: al.Elem}

	arr, err := callExtern(c, extern.AllocArray(arrType), []ssa.Value{
		elemKindConst(c, al.Elem),
		c.Builder.Int32(int32(len(al.Elements))),
	}, node)
	if err != nil {
		return nil, err
	}

	setExtern := extern.ArraySet(arrType, al.Elem)

	for i, elemNode := range al.Elements {
		elemVal, err := c.Generate(elemNode)
		if err != nil {
			return nil, err
		}

		elem, err := coerceArgument(c, elemNode, elemVal, al.Elem)
		if err != nil {
			return nil, err
		}

		if _, err := callExtern(c, setExtern, []ssa.Value{arr, c.Builder.Int32(int32(i)), elem}, elemNode); err != nil {
			return nil, err
		}
	}

	return RValue{Val: arr, Typ: arrType}, nil
}

// generateObjectLiteral allocates an object via rt_alloc_object sized by
// its property count and populates each property via the same mangled
// per-field setter PropertyRef.Assign uses.
func generateObjectLiteral(c *Context, node ast.Node) (Value, error) {
	ol := node.(*ast.ObjectLiteral)

	obj, err := callExtern(c, extern.AllocObject(ol.Type), []ssa.Value{c.Builder.Int32(int32(len(ol.Properties)))}, node)
	if err != nil {
		return nil, err
	}

	for _, prop := range ol.Properties {
		val, err := c.Generate(prop.Value)
		if err != nil {
			return nil, err
		}

		ref := PropertyRef{Object: obj, ClassName: ol.Type.ClassName, Name: prop.Name, Typ: val.Type()}
		if err := ref.Assign(c, val); err != nil {
			return nil, err
		}
	}

	return RValue{Val: obj, Typ: ol.Type}, nil
}

// generateArgs evaluates expr nodes left to right, returning both their
// SSA operands and static types for extern-signature construction.
func generateArgs(c *Context, nodes []ast.Expr) ([]ssa.Value, []lang.Type, error) {
	args := make([]ssa.Value, len(nodes))
	types := make([]lang.Type, len(nodes))

	for i, n := range nodes {
		v, err := c.Generate(n)
		if err != nil {
			return nil, nil, err
		}

		args[i] = v.AsRValue(c)
		types[i] = v.Type()
	}

	return args, types, nil
}

// elemKindConst encodes an array's element type as the int32 kind tag
// rt_alloc_array expects: 0 int32, 1 float64, 2 bool, 3 ref. The runtime
// collaborator owns the actual storage layout per kind.
func elemKindConst(c *Context, elem lang.Type) ssa.Value {
	switch {
	case elem.AsInt32() != nil:
		return c.Builder.Int32(0)
	case elem.AsFloat64() != nil:
		return c.Builder.Int32(1)
	case elem.AsBool() != nil:
		return c.Builder.Int32(2)
	default:
		return c.Builder.Int32(3)
	}
}

// PropertyRef is an Assignable Value backed by a mangled per-(class,field)
// runtime accessor pair (rt_field_get_<ClassName>_<Name>/
// rt_field_set_<ClassName>_<Name>), since field offsets are a
// runtime-layout concern this package never computes directly.
type PropertyRef struct {
	Object    ssa.Value
	ClassName string
	Name      string
	Typ       lang.Type
}

// Type implements Value.
func (p PropertyRef) Type() lang.Type { return p.Typ }

// AsRValue implements Value. The getter extern is already declared by
// generatePropertyAccess (which surfaces any signature conflict before a
// PropertyRef ever exists), so this only emits the call.
func (p PropertyRef) AsRValue(c *Context) ssa.Value {
	e := extern.FieldGetter(p.ClassName, p.Name, p.Typ)

	return c.Builder.Call(e.Name, e.Result, []ssa.Value{p.Object})
}

// Assign implements Assignable.
func (p PropertyRef) Assign(c *Context, src Value) error {
	_, err := callExtern(c, extern.FieldSetter(p.ClassName, p.Name, p.Typ), []ssa.Value{p.Object, src.AsRValue(c)}, nil)

	return err
}

// ElementRef is an Assignable Value backed by the per-element-kind
// rt_array_get_<kind>/rt_array_set_<kind> pair.
type ElementRef struct {
	Array ssa.Value
	Index ssa.Value
	Typ   lang.Type
}

// Type implements Value.
func (e ElementRef) Type() lang.Type { return e.Typ }

// AsRValue implements Value. The getter extern is already declared by
// generateElementAccess (which surfaces any signature conflict before an
// ElementRef ever exists), so this only emits the call.
func (e ElementRef) AsRValue(c *Context) ssa.Value {
	ext := extern.ArrayGet(lang.ArrayRefType{Elem: e.Typ}, e.Typ)

	return c.Builder.Call(ext.Name, ext.Result, []ssa.Value{e.Array, e.Index})
}

// Assign implements Assignable.
func (e ElementRef) Assign(c *Context, src Value) error {
	_, err := callExtern(c, extern.ArraySet(lang.ArrayRefType{Elem: e.Typ}, e.Typ), []ssa.Value{e.Array, e.Index, src.AsRValue(c)}, nil)

	return err
}
