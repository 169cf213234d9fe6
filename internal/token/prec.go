package token

// Assoc is the grouping direction of equal-precedence operators.
type Assoc uint8

const (
	// AssocLeft groups left-to-right: 10 - 3 - 2 is (10 - 3) - 2.
	AssocLeft Assoc = iota
	// AssocRight groups right-to-left: 2 ^ 3 ^ 2 is 2 ^ (3 ^ 2).
	AssocRight
)

func (a Assoc) String() string {
	if a == AssocRight {
		return "right"
	}
	return "left"
}

// Precedence returns the binding strength of an operator kind.
// Smaller means tighter: ^ is 1, * / % are 2, + - are 3.
// Non-operator kinds return 0.
func Precedence(k Kind) int {
	switch k {
	case Caret:
		return 1
	case Star, Slash, Percent:
		return 2
	case Plus, Minus:
		return 3
	default:
		return 0
	}
}

// Associativity returns the grouping direction of an operator kind.
// Only ^ is right-associative.
func Associativity(k Kind) Assoc {
	if k == Caret {
		return AssocRight
	}
	return AssocLeft
}
