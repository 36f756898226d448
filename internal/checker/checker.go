// Package checker walks a parsed syntax tree and assigns a semantic type
// to every expression, implementing the type discipline of internal/types
// against an internal/ast tree. It does not mutate the tree; types are
// reported back to the caller, never written into it.
package checker

import (
	"fmt"

	"github.com/malphas-lang/malphas-lang/internal/ast"
	"github.com/malphas-lang/malphas-lang/internal/types"
)

// Checker holds the registries built by the item pre-pass: constant and
// function signatures live in the environment itself (so forward
// references resolve the same way a later lookup would), while struct and
// enum declarations are kept separately since they are type definitions,
// not expression-environment bindings.
type Checker struct {
	env     *types.Environment
	structs map[string]*ast.StructItem
	enums   map[string]*ast.EnumItem
}

// New returns a checker with an empty environment.
func New() *Checker {
	return &Checker{
		env:     types.NewEnvironment(),
		structs: make(map[string]*ast.StructItem),
		enums:   make(map[string]*ast.EnumItem),
	}
}

// CheckFile runs the item pre-pass (registering every const/function name,
// and every struct/enum declaration) and then checks each item's body in
// a second pass, so items may reference names declared later in the file.
func (c *Checker) CheckFile(items []ast.Item) error {
	if err := c.registerItems(items); err != nil {
		return err
	}
	for _, item := range items {
		if err := c.checkItemBody(item); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) registerItems(items []ast.Item) error {
	for _, item := range items {
		switch n := item.(type) {
		case *ast.ConstItem:
			t, err := c.resolveType(n.Type)
			if err != nil {
				return err
			}
			c.env.Define(n.Name, t, false)

		case *ast.FunctionItem:
			fn, err := c.functionType(n)
			if err != nil {
				return err
			}
			c.env.Define(n.Name, fn, false)

		case *ast.StructItem:
			c.structs[n.Name] = n

		case *ast.EnumItem:
			c.enums[n.Name] = n
		}
	}
	return nil
}

// functionType resolves a declared function's signature. A function with
// no explicit return type is registered as returning Unit, so that
// forward references to it have a concrete signature before its body
// (which may itself call forward-declared functions) is checked.
func (c *Checker) functionType(n *ast.FunctionItem) (*types.FnType, error) {
	params := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		pt, err := c.resolveType(p.Type)
		if err != nil {
			return nil, err
		}
		params[i] = pt
	}
	result := types.Type(types.Unit)
	if n.ReturnType != nil {
		rt, err := c.resolveType(n.ReturnType)
		if err != nil {
			return nil, err
		}
		result = rt
	}
	return &types.FnType{Params: params, Result: result}, nil
}

func (c *Checker) checkItemBody(item ast.Item) error {
	switch n := item.(type) {
	case *ast.ConstItem:
		declared, _ := c.env.Lookup(n.Name)
		valueType, err := c.typeOf(n.Value, c.env.Clone())
		if err != nil {
			return err
		}
		if !types.Equal(declared.Type, valueType) {
			return &types.Error{Kind: types.MismatchedTypes, Found: valueType, Expected: declared.Type, Span: n.Value.Span()}
		}
		return nil

	case *ast.FunctionItem:
		fnEnv := c.env.Clone()
		fn, _ := c.env.Lookup(n.Name)
		fnType := fn.Type.(*types.FnType)
		for i, p := range n.Params {
			fnEnv.Define(p.Name, fnType.Params[i], p.Mut)
		}
		bodyType, err := c.typeOf(n.Body, fnEnv)
		if err != nil {
			return err
		}
		if n.ReturnType != nil && !types.Equal(fnType.Result, bodyType) {
			return &types.Error{Kind: types.MismatchedTypes, Found: bodyType, Expected: fnType.Result, Span: n.Body.Span()}
		}
		return nil

	default:
		return nil // structs and enums carry no executable body to check
	}
}

// resolveType converts an AST type expression to its semantic type,
// resolving the seven primitive names and falling back to Named for
// anything else (including structs and enums, which the checker tracks
// by name rather than by expanding their declared shape into every use).
func (c *Checker) resolveType(te ast.TypeExpr) (types.Type, error) {
	switch t := te.(type) {
	case *ast.NamedType:
		if len(t.Generics) == 0 {
			if prim, ok := primitiveByName(t.Name); ok {
				return prim, nil
			}
		}
		generics := make([]types.Type, len(t.Generics))
		for i, g := range t.Generics {
			gt, err := c.resolveType(g)
			if err != nil {
				return nil, err
			}
			generics[i] = gt
		}
		return &types.NamedType{Name: t.Name, Generics: generics}, nil

	case *ast.ArrayType:
		elem, err := c.resolveType(t.Elem)
		if err != nil {
			return nil, err
		}
		return &types.ArrayType{Elem: elem}, nil

	case *ast.TupleType:
		elems := make([]types.Type, len(t.Elems))
		for i, e := range t.Elems {
			et, err := c.resolveType(e)
			if err != nil {
				return nil, err
			}
			elems[i] = et
		}
		return &types.TupleType{Elems: elems}, nil

	case *ast.FnType:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			pt, err := c.resolveType(p)
			if err != nil {
				return nil, err
			}
			params[i] = pt
		}
		result, err := c.resolveType(t.Result)
		if err != nil {
			return nil, err
		}
		return &types.FnType{Params: params, Result: result}, nil

	default:
		return nil, fmt.Errorf("checker: unknown type expression %T", te)
	}
}

func primitiveByName(name string) (types.Type, bool) {
	switch name {
	case "Int":
		return types.Int, true
	case "UInt":
		return types.UInt, true
	case "Byte":
		return types.Byte, true
	case "Float":
		return types.Float, true
	case "Bool":
		return types.Bool, true
	case "Str":
		return types.Str, true
	case "Char":
		return types.Char, true
	default:
		return nil, false
	}
}
