package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInvalidCharacter Code = 1001
	LexMalformedNumber  Code = 1002

	// Conversion (shunting yard)
	ConvUnbalancedParen Code = 2001

	// Evaluation
	EvalArityMismatch Code = 3001

	// I/O (batch files)
	IOLoadFile Code = 4001
)

// ID returns a stable short identifier usable in output and tests.
func (c Code) ID() string {
	switch c {
	case LexInvalidCharacter:
		return "LEX1001"
	case LexMalformedNumber:
		return "LEX1002"
	case ConvUnbalancedParen:
		return "CNV2001"
	case EvalArityMismatch:
		return "EVL3001"
	case IOLoadFile:
		return "IO4001"
	default:
		return fmt.Sprintf("DIAG%04d", uint16(c))
	}
}
