package token

// Kind represents the category of a lexical token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Number is an integer or floating-point literal.
	Number

	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Caret represents '^'.
	Caret // ^

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Number:  "Number",
	Plus:    "Plus",
	Minus:   "Minus",
	Star:    "Star",
	Slash:   "Slash",
	Percent: "Percent",
	Caret:   "Caret",
	LParen:  "LParen",
	RParen:  "RParen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Symbol returns the single source character for operator and paren kinds,
// and 0 for everything else.
func (k Kind) Symbol() byte {
	switch k {
	case Plus:
		return '+'
	case Minus:
		return '-'
	case Star:
		return '*'
	case Slash:
		return '/'
	case Percent:
		return '%'
	case Caret:
		return '^'
	case LParen:
		return '('
	case RParen:
		return ')'
	default:
		return 0
	}
}

// KindForByte maps a source byte to its operator or paren kind.
// Digits, periods, and blanks are not covered here; they never form
// single-character tokens.
func KindForByte(b byte) (Kind, bool) {
	switch b {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case '*':
		return Star, true
	case '/':
		return Slash, true
	case '%':
		return Percent, true
	case '^':
		return Caret, true
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	default:
		return Invalid, false
	}
}
