package checker

import (
	"math"

	"github.com/malphas-lang/malphas-lang/internal/ast"
	"github.com/malphas-lang/malphas-lang/internal/types"
)

// Check type-checks a sequence of expressions, threading a single cloned
// environment through all of them in order -- a `let` earlier in the
// sequence is visible to expressions later in it.
func (c *Checker) Check(exprs []ast.Expr) ([]types.Type, error) {
	env := c.env.Clone()
	out := make([]types.Type, len(exprs))
	for i, e := range exprs {
		t, err := c.typeOf(e, env)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// TypeOf type-checks a single expression against a fresh clone of the
// checker's top-level environment.
func (c *Checker) TypeOf(e ast.Expr) (types.Type, error) {
	return c.typeOf(e, c.env.Clone())
}

func (c *Checker) typeOf(e ast.Expr, env *types.Environment) (types.Type, error) {
	switch n := e.(type) {
	case *ast.IdentExpr:
		info, ok := env.Lookup(n.Name)
		if !ok {
			return nil, &types.Error{Kind: types.UnboundIdent, Name: n.Name, Span: n.Span()}
		}
		return info.Type, nil

	case *ast.IntLit:
		if n.Value <= math.MaxInt64 {
			return types.GInt, nil
		}
		return types.UInt, nil

	case *ast.FloatLit:
		return types.Float, nil

	case *ast.StringLit:
		return types.Str, nil

	case *ast.CharLit:
		return types.Char, nil

	case *ast.BoolLit:
		return types.Bool, nil

	case *ast.ArrayLit:
		return c.typeOfArray(n, env)

	case *ast.TupleLit:
		elems := make([]types.Type, len(n.Elements))
		for i, el := range n.Elements {
			t, err := c.typeOf(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return &types.TupleType{Elems: elems}, nil

	case *ast.CallExpr:
		return c.typeOfCall(n, env)

	case *ast.UnaryExpr:
		return c.typeOfUnary(n, env)

	case *ast.IndexExpr:
		return c.typeOfIndex(n, env)

	case *ast.FieldExpr:
		return c.typeOfField(n, env)

	case *ast.IfExpr:
		return c.typeOfIf(n, env)

	case *ast.LetExpr:
		return c.typeOfLet(n, env)

	case *ast.AssignExpr:
		return c.typeOfAssign(n, env)

	case *ast.BlockExpr:
		return c.typeOfBlock(n, env)

	case *ast.BinaryExpr:
		return c.typeOfBinary(n, env)

	case *ast.LambdaExpr:
		return c.typeOfLambda(n, env)

	default:
		return nil, &types.Error{Kind: types.CantInfer, Span: e.Span()}
	}
}

func (c *Checker) typeOfArray(n *ast.ArrayLit, env *types.Environment) (types.Type, error) {
	if len(n.Elements) == 0 {
		return &types.ArrayType{Elem: types.Any}, nil
	}
	elemType, err := c.typeOf(n.Elements[0], env)
	if err != nil {
		return nil, err
	}
	for _, el := range n.Elements[1:] {
		t, err := c.typeOf(el, env)
		if err != nil {
			return nil, err
		}
		if !types.Equal(elemType, t) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: t, Expected: elemType, Span: el.Span()}
		}
		elemType = types.PreferConcrete(elemType, t)
	}
	return &types.ArrayType{Elem: elemType}, nil
}

func (c *Checker) typeOfCall(n *ast.CallExpr, env *types.Environment) (types.Type, error) {
	calleeType, err := c.typeOf(n.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeType.(*types.FnType)
	if !ok {
		return nil, &types.Error{Kind: types.MismatchedTypes, Found: calleeType, Span: n.Callee.Span()}
	}
	if len(n.Args) != len(fn.Params) {
		return nil, &types.Error{Kind: types.WrongArgCount, Needed: len(fn.Params), Provided: len(n.Args), Span: n.Span()}
	}
	for i, arg := range n.Args {
		at, err := c.typeOf(arg, env)
		if err != nil {
			return nil, err
		}
		if !types.Equal(at, fn.Params[i]) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: at, Expected: fn.Params[i], Span: arg.Span()}
		}
	}
	return fn.Result, nil
}

func (c *Checker) typeOfUnary(n *ast.UnaryExpr, env *types.Environment) (types.Type, error) {
	operand, err := c.typeOf(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.Not:
		if !types.Equal(operand, types.Bool) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: operand, Expected: types.Bool, Span: n.Operand.Span()}
		}
		return types.Bool, nil
	case ast.Neg:
		if _, isGInt := operand.(*types.GIntType); isGInt {
			return types.Int, nil
		}
		if types.Equal(operand, types.Int) || types.Equal(operand, types.Float) {
			return operand, nil
		}
		return nil, &types.Error{Kind: types.NotNumeric, Found: operand, Span: n.Operand.Span()}
	default:
		return nil, &types.Error{Kind: types.NotNumeric, Found: operand, Span: n.Operand.Span()}
	}
}

func (c *Checker) typeOfIndex(n *ast.IndexExpr, env *types.Environment) (types.Type, error) {
	idxType, err := c.typeOf(n.Index, env)
	if err != nil {
		return nil, err
	}
	if !types.Equal(idxType, types.UInt) {
		return nil, &types.Error{Kind: types.NotInteger, Found: idxType, Span: n.Index.Span()}
	}
	baseType, err := c.typeOf(n.Base, env)
	if err != nil {
		return nil, err
	}
	arr, ok := baseType.(*types.ArrayType)
	if !ok {
		return nil, &types.Error{Kind: types.MismatchedTypes, Found: baseType, Span: n.Base.Span()}
	}
	return arr.Elem, nil
}

// typeOfField resolves `base.field` against a registered struct
// declaration when the base's type names one. This rule is not spelled
// out by the expression-kind list -- the closed rule set never revisits
// field access once a value leaves a struct literal -- so struct layout
// is the only grounding available; any other base type fails closed with
// MismatchedTypes rather than silently returning Never.
func (c *Checker) typeOfField(n *ast.FieldExpr, env *types.Environment) (types.Type, error) {
	baseType, err := c.typeOf(n.Base, env)
	if err != nil {
		return nil, err
	}
	named, ok := baseType.(*types.NamedType)
	if !ok {
		return nil, &types.Error{Kind: types.MismatchedTypes, Found: baseType, Span: n.Base.Span()}
	}
	decl, ok := c.structs[named.Name]
	if !ok {
		return nil, &types.Error{Kind: types.MismatchedTypes, Found: baseType, Span: n.Base.Span()}
	}
	for _, f := range decl.Fields {
		if f.Name == n.Field {
			return c.resolveType(f.Type)
		}
	}
	return nil, &types.Error{Kind: types.MismatchedTypes, Found: baseType, Span: n.FieldSpan}
}

func (c *Checker) typeOfIf(n *ast.IfExpr, env *types.Environment) (types.Type, error) {
	condType, err := c.typeOf(n.Cond, env)
	if err != nil {
		return nil, err
	}
	if !types.Equal(condType, types.Bool) {
		return nil, &types.Error{Kind: types.MismatchedTypes, Found: condType, Expected: types.Bool, Span: n.Cond.Span()}
	}

	thenType, err := c.typeOf(n.Then, env.Clone())
	if err != nil {
		return nil, err
	}
	if n.Else == nil {
		return types.Unit, nil
	}
	elseType, err := c.typeOf(n.Else, env.Clone())
	if err != nil {
		return nil, err
	}
	if !types.Equal(thenType, elseType) {
		return nil, &types.Error{Kind: types.MismatchedBranches, ThenType: thenType, ElseType: elseType, Span: n.Span()}
	}
	return types.PreferConcrete(thenType, elseType), nil
}

func (c *Checker) typeOfLet(n *ast.LetExpr, env *types.Environment) (types.Type, error) {
	valueType, err := c.typeOf(n.Value, env)
	if err != nil {
		return nil, err
	}

	_, valueIsGInt := valueType.(*types.GIntType)
	result := valueType

	if n.Binding.Type != nil {
		annType, err := c.resolveType(n.Binding.Type)
		if err != nil {
			return nil, err
		}
		if valueIsGInt && types.IsInteger(annType) {
			result = annType
		} else if !types.Equal(annType, valueType) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: valueType, Expected: annType, Span: n.Value.Span()}
		} else {
			result = annType
		}
	} else if valueIsGInt {
		result = types.Int
	}

	env.Define(n.Binding.Name, result, n.Binding.Mut)
	return types.Unit, nil
}

func (c *Checker) typeOfAssign(n *ast.AssignExpr, env *types.Environment) (types.Type, error) {
	info, ok := env.Lookup(n.Target)
	if !ok {
		return nil, &types.Error{Kind: types.UnboundIdent, Name: n.Target, Span: n.TargetSpan}
	}
	if !info.Mutable {
		return nil, &types.Error{Kind: types.Mutation, Name: n.Target, Span: n.TargetSpan}
	}
	valueType, err := c.typeOf(n.Value, env)
	if err != nil {
		return nil, err
	}
	if !types.Equal(info.Type, valueType) {
		return nil, &types.Error{Kind: types.MismatchedTypes, Found: valueType, Expected: info.Type, Span: n.Value.Span()}
	}
	return types.Unit, nil
}

func (c *Checker) typeOfBlock(n *ast.BlockExpr, env *types.Environment) (types.Type, error) {
	blockEnv := env.Clone()
	var last types.Type = types.Unit
	for _, e := range n.Exprs {
		t, err := c.typeOf(e, blockEnv)
		if err != nil {
			return nil, err
		}
		last = t
	}
	if n.Trailing && len(n.Exprs) > 0 {
		return last, nil
	}
	return types.Unit, nil
}

func (c *Checker) typeOfLambda(n *ast.LambdaExpr, env *types.Environment) (types.Type, error) {
	lambdaEnv := env.Clone()
	params := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		var pt types.Type = types.Any
		if p.Type != nil {
			var err error
			pt, err = c.resolveType(p.Type)
			if err != nil {
				return nil, err
			}
		}
		params[i] = pt
		lambdaEnv.Define(p.Name, pt, p.Mut)
	}

	bodyType, err := c.typeOf(n.Body, lambdaEnv)
	if err != nil {
		return nil, err
	}

	result := bodyType
	if n.ReturnType != nil {
		rt, err := c.resolveType(n.ReturnType)
		if err != nil {
			return nil, err
		}
		if !types.Equal(rt, bodyType) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: bodyType, Expected: rt, Span: n.Body.Span()}
		}
		result = rt
	}
	return &types.FnType{Params: params, Result: result}, nil
}

type opClass int

const (
	classArithmetic opClass = iota
	classLogical
	classBitwise
	classEquality
	classOrdering
)

func classify(op ast.BinaryOp) opClass {
	switch op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Exp:
		return classArithmetic
	case ast.LogicalAnd, ast.LogicalOr, ast.LogicalXor:
		return classLogical
	case ast.BitAnd, ast.BitOr:
		return classBitwise
	case ast.Eq, ast.Neq:
		return classEquality
	default:
		return classOrdering
	}
}

func (c *Checker) typeOfBinary(n *ast.BinaryExpr, env *types.Environment) (types.Type, error) {
	left, err := c.typeOf(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := c.typeOf(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch classify(n.Op) {
	case classArithmetic:
		if !types.IsNumeric(left) {
			return nil, &types.Error{Kind: types.NotNumeric, Found: left, Span: n.Left.Span()}
		}
		if !types.IsNumeric(right) {
			return nil, &types.Error{Kind: types.NotNumeric, Found: right, Span: n.Right.Span()}
		}
		if !types.Equal(left, right) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: right, Expected: left, Span: n.Right.Span()}
		}
		return types.PreferConcrete(left, right), nil

	case classLogical:
		if !types.Equal(left, types.Bool) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: left, Expected: types.Bool, Span: n.Left.Span()}
		}
		if !types.Equal(right, types.Bool) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: right, Expected: types.Bool, Span: n.Right.Span()}
		}
		return types.Bool, nil

	case classBitwise:
		if !types.IsInteger(left) {
			return nil, &types.Error{Kind: types.NotInteger, Found: left, Span: n.Left.Span()}
		}
		if !types.IsInteger(right) {
			return nil, &types.Error{Kind: types.NotInteger, Found: right, Span: n.Right.Span()}
		}
		if !types.Equal(left, right) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: right, Expected: left, Span: n.Right.Span()}
		}
		return types.PreferConcrete(left, right), nil

	case classEquality:
		if !types.Equal(left, right) {
			return nil, &types.Error{Kind: types.MismatchedTypes, Found: right, Expected: left, Span: n.Right.Span()}
		}
		return types.Bool, nil

	default: // classOrdering
		if !types.IsNumeric(left) {
			return nil, &types.Error{Kind: types.NotNumeric, Found: left, Span: n.Left.Span()}
		}
		if !types.IsNumeric(right) {
			return nil, &types.Error{Kind: types.NotNumeric, Found: right, Span: n.Right.Span()}
		}
		return types.Bool, nil
	}
}
