package ast

import "github.com/malphas-lang/malphas-lang/internal/span"

// BinaryOp identifies a binary operator spelling.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Exp
	LogicalAnd
	LogicalOr
	LogicalXor
	BitAnd
	BitOr
	Eq
	Neq
	Lt
	Gt
	Leq
	Geq
)

var binaryOpNames = map[BinaryOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Exp: "**",
	LogicalAnd: "&&", LogicalOr: "||", LogicalXor: "^",
	BitAnd: "&", BitOr: "|",
	Eq: "==", Neq: "!=", Lt: "<", Gt: ">", Leq: "<=", Geq: ">=",
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpNames[op]; ok {
		return s
	}
	return "?"
}

// UnaryOp identifies a unary operator spelling.
type UnaryOp int

const (
	Neg UnaryOp = iota // -
	Not                // !
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	default:
		return "?"
	}
}

// IdentExpr is a bare identifier reference.
type IdentExpr struct {
	Name string
	span span.Span
}

func NewIdentExpr(name string, sp span.Span) *IdentExpr { return &IdentExpr{Name: name, span: sp} }
func (e *IdentExpr) Span() span.Span                    { return e.span }
func (*IdentExpr) exprNode()                             {}

// IntLit is an integer literal. Its magnitude is always non-negative;
// negative integers are represented as unary-minus applied to a literal.
type IntLit struct {
	Value uint64
	span  span.Span
}

func NewIntLit(value uint64, sp span.Span) *IntLit { return &IntLit{Value: value, span: sp} }
func (e *IntLit) Span() span.Span                  { return e.span }
func (*IntLit) exprNode()                           {}

// FloatLit is a floating point literal.
type FloatLit struct {
	Value float64
	span  span.Span
}

func NewFloatLit(value float64, sp span.Span) *FloatLit { return &FloatLit{Value: value, span: sp} }
func (e *FloatLit) Span() span.Span                     { return e.span }
func (*FloatLit) exprNode()                              {}

// StringLit is a string literal with escapes already decoded.
type StringLit struct {
	Value string
	span  span.Span
}

func NewStringLit(value string, sp span.Span) *StringLit { return &StringLit{Value: value, span: sp} }
func (e *StringLit) Span() span.Span                     { return e.span }
func (*StringLit) exprNode()                              {}

// CharLit is a character literal with its escape (if any) already decoded
// to the single byte it denotes.
type CharLit struct {
	Value byte
	span  span.Span
}

func NewCharLit(value byte, sp span.Span) *CharLit { return &CharLit{Value: value, span: sp} }
func (e *CharLit) Span() span.Span                 { return e.span }
func (*CharLit) exprNode()                          {}

// BoolLit is `true` or `false`.
type BoolLit struct {
	Value bool
	span  span.Span
}

func NewBoolLit(value bool, sp span.Span) *BoolLit { return &BoolLit{Value: value, span: sp} }
func (e *BoolLit) Span() span.Span                 { return e.span }
func (*BoolLit) exprNode()                          {}

// ArrayLit is `[e1, e2, ...]`.
type ArrayLit struct {
	Elements []Expr
	span     span.Span
}

func NewArrayLit(elements []Expr, sp span.Span) *ArrayLit {
	return &ArrayLit{Elements: elements, span: sp}
}
func (e *ArrayLit) Span() span.Span { return e.span }
func (*ArrayLit) exprNode()          {}

// TupleLit is `(e1, e2, ...)`. A non-empty tuple is always written with at
// least one comma (including the singleton `(x,)`); `()` is the empty
// tuple.
type TupleLit struct {
	Elements []Expr
	span     span.Span
}

func NewTupleLit(elements []Expr, sp span.Span) *TupleLit {
	return &TupleLit{Elements: elements, span: sp}
}
func (e *TupleLit) Span() span.Span { return e.span }
func (*TupleLit) exprNode()          {}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   span.Span
}

func NewCallExpr(callee Expr, args []Expr, sp span.Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: sp}
}
func (e *CallExpr) Span() span.Span { return e.span }
func (*CallExpr) exprNode()          {}

// BinaryExpr is `left op right`.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	span  span.Span
}

func NewBinaryExpr(op BinaryOp, left, right Expr, sp span.Span) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: sp}
}
func (e *BinaryExpr) Span() span.Span { return e.span }
func (*BinaryExpr) exprNode()          {}

// UnaryExpr is `op operand`.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	span    span.Span
}

func NewUnaryExpr(op UnaryOp, operand Expr, sp span.Span) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: sp}
}
func (e *UnaryExpr) Span() span.Span { return e.span }
func (*UnaryExpr) exprNode()          {}

// IndexExpr is `base[index]`.
type IndexExpr struct {
	Base  Expr
	Index Expr
	span  span.Span
}

func NewIndexExpr(base, index Expr, sp span.Span) *IndexExpr {
	return &IndexExpr{Base: base, Index: index, span: sp}
}
func (e *IndexExpr) Span() span.Span { return e.span }
func (*IndexExpr) exprNode()          {}

// FieldExpr is `base.field`.
type FieldExpr struct {
	Base      Expr
	Field     string
	FieldSpan span.Span
	span      span.Span
}

func NewFieldExpr(base Expr, field string, fieldSpan, sp span.Span) *FieldExpr {
	return &FieldExpr{Base: base, Field: field, FieldSpan: fieldSpan, span: sp}
}
func (e *FieldExpr) Span() span.Span { return e.span }
func (*FieldExpr) exprNode()          {}

// IfExpr is `if(cond) then [else else_]`. Else is nil when omitted.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	span span.Span
}

func NewIfExpr(cond, then, els Expr, sp span.Span) *IfExpr {
	return &IfExpr{Cond: cond, Then: then, Else: els, span: sp}
}
func (e *IfExpr) Span() span.Span { return e.span }
func (*IfExpr) exprNode()          {}

// LetExpr is `let binding = value`.
type LetExpr struct {
	Binding Binding
	Value   Expr
	span    span.Span
}

func NewLetExpr(binding Binding, value Expr, sp span.Span) *LetExpr {
	return &LetExpr{Binding: binding, Value: value, span: sp}
}
func (e *LetExpr) Span() span.Span { return e.span }
func (*LetExpr) exprNode()          {}

// AssignExpr is `target = value`. It is a dedicated node, never a binary
// operator, and is only produced when the parser's left-hand side was a
// bare identifier.
type AssignExpr struct {
	Target     string
	TargetSpan span.Span
	Value      Expr
	span       span.Span
}

func NewAssignExpr(target string, targetSpan span.Span, value Expr, sp span.Span) *AssignExpr {
	return &AssignExpr{Target: target, TargetSpan: targetSpan, Value: value, span: sp}
}
func (e *AssignExpr) Span() span.Span { return e.span }
func (*AssignExpr) exprNode()          {}

// LambdaExpr is `|params|: return_type -> body`.
type LambdaExpr struct {
	Params     []Binding
	ReturnType TypeExpr // nil when omitted
	Body       Expr
	span       span.Span
}

func NewLambdaExpr(params []Binding, returnType TypeExpr, body Expr, sp span.Span) *LambdaExpr {
	return &LambdaExpr{Params: params, ReturnType: returnType, Body: body, span: sp}
}
func (e *LambdaExpr) Span() span.Span { return e.span }
func (*LambdaExpr) exprNode()          {}

// BlockExpr is `{ e1; e2; ... }`. Trailing is set when the last expression
// was not terminated by `;`, making it the block's value.
type BlockExpr struct {
	Exprs    []Expr
	Trailing bool
	span     span.Span
}

func NewBlockExpr(exprs []Expr, trailing bool, sp span.Span) *BlockExpr {
	return &BlockExpr{Exprs: exprs, Trailing: trailing, span: sp}
}
func (e *BlockExpr) Span() span.Span { return e.span }
func (*BlockExpr) exprNode()          {}
