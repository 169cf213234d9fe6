// Package token defines the lexical token kinds of the calculator language.
// Invariants:
//   - Token.Text is an owned copy of the matched source bytes, never a view
//     into the original buffer.
//   - Token.Span matches Text exactly (Start..End, byte offsets).
//   - Number tokens carry their parsed float64 in Token.Value; operator and
//     paren tokens leave Value at zero.
//   - Precedence is inverted relative to the usual convention: a SMALLER
//     value binds TIGHTER. This feeds the pop rule of the shunting-yard
//     converter directly and must not be "fixed".
package token
