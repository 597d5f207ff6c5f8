package ast

// PrimOp is a closed enumeration of primitive operators. Arithmetic,
// comparison, logical, array, and type-test operations all live here.
type PrimOp int

const (
	// unary arithmetic
	PrimAdd1 PrimOp = iota
	PrimSub1
	// binary arithmetic
	PrimAdd
	PrimSub
	PrimMul
	// unary logical
	PrimNot
	// binary logical
	PrimAnd
	PrimOr
	// binary comparison
	PrimLt
	PrimLe
	PrimGt
	PrimGe
	PrimEq
	PrimNeq
	// dynamic type tests
	PrimIsInt
	PrimIsBool
	PrimIsArray
	// array
	PrimNewArray
	PrimMakeArray
	PrimArrayGet
	PrimArraySet
	PrimLength
)

// TypeKind enumerates the runtime type tags testable with the is* primitives.
type TypeKind int

const (
	TypeInt TypeKind = iota
	TypeBool
	TypeArray
)

// String returns the surface spelling of the type kind.
func (k TypeKind) String() string {
	switch k {
	case TypeInt:
		return "Int"
	case TypeBool:
		return "Bool"
	case TypeArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// TypeTest returns the type kind tested by op, if op is a type-test
// primitive.
func (op PrimOp) TypeTest() (TypeKind, bool) {
	switch op {
	case PrimIsInt:
		return TypeInt, true
	case PrimIsBool:
		return TypeBool, true
	case PrimIsArray:
		return TypeArray, true
	default:
		return 0, false
	}
}

// TypeTestOp returns the type-test primitive for the given kind.
func TypeTestOp(kind TypeKind) PrimOp {
	switch kind {
	case TypeBool:
		return PrimIsBool
	case TypeArray:
		return PrimIsArray
	default:
		return PrimIsInt
	}
}

// String returns the surface spelling of the operator: the keyword for
// keyword primitives, the symbol for operators. MakeArray, ArrayGet and
// ArraySet have bracket syntax rather than a spelling; their names are
// returned for debug output.
func (op PrimOp) String() string {
	switch op {
	case PrimAdd1:
		return "add1"
	case PrimSub1:
		return "sub1"
	case PrimAdd:
		return "+"
	case PrimSub:
		return "-"
	case PrimMul:
		return "*"
	case PrimNot:
		return "!"
	case PrimAnd:
		return "&&"
	case PrimOr:
		return "||"
	case PrimLt:
		return "<"
	case PrimLe:
		return "<="
	case PrimGt:
		return ">"
	case PrimGe:
		return ">="
	case PrimEq:
		return "=="
	case PrimNeq:
		return "!="
	case PrimIsInt:
		return "isInt"
	case PrimIsBool:
		return "isBool"
	case PrimIsArray:
		return "isArray"
	case PrimNewArray:
		return "newArray"
	case PrimMakeArray:
		return "mkArray"
	case PrimArrayGet:
		return "arrayGet"
	case PrimArraySet:
		return "arraySet"
	case PrimLength:
		return "length"
	default:
		return "unknown"
	}
}
