package driver_test

import (
	"math"
	"testing"

	"shunt/internal/diag"
	"shunt/internal/driver"
)

const tolerance = 1e-10

func evalValue(t *testing.T, expr string) float64 {
	t.Helper()
	res := driver.EvaluateExpr(expr, driver.DefaultMaxDiagnostics)
	if !res.OK {
		t.Fatalf("EvaluateExpr(%q) failed: %v", expr, res.Bag.Items())
	}
	return res.Value
}

func expectValue(t *testing.T, expr string, want float64) {
	t.Helper()
	got := evalValue(t, expr)
	if math.Abs(got-want) > tolerance {
		t.Errorf("EvaluateExpr(%q) = %v, want %v", expr, got, want)
	}
}

func expectCode(t *testing.T, expr string, want diag.Code) {
	t.Helper()
	res := driver.EvaluateExpr(expr, driver.DefaultMaxDiagnostics)
	if res.OK {
		t.Fatalf("EvaluateExpr(%q) succeeded with %v, want %v", expr, res.Value, want)
	}
	res.Bag.Sort()
	first, found := res.Bag.FirstError()
	if !found {
		t.Fatalf("EvaluateExpr(%q): no diagnostic recorded", expr)
	}
	if first.Code != want {
		t.Errorf("EvaluateExpr(%q) diagnostic = %s (%s), want %s",
			expr, first.Code.ID(), first.Message, want.ID())
	}
}

func TestPrecedence(t *testing.T) {
	expectValue(t, "2 + 3 * 4", 14)
	expectValue(t, "(2 + 3) * 4", 20)
}

func TestAssociativity(t *testing.T) {
	expectValue(t, "2 ^ 3 ^ 2", 512) // 2^(3^2), not (2^3)^2 = 64
	expectValue(t, "10 - 3 - 2", 5)
	expectValue(t, "20 / 2 / 2", 5)
}

func TestWhitespaceInvariance(t *testing.T) {
	if evalValue(t, "1+2") != evalValue(t, " 1 + 2 ") {
		t.Error("whitespace changed the result")
	}
}

func TestFloatLiterals(t *testing.T) {
	expectValue(t, "1.5 * 2", 3)
}

// Expected values cross-checked against WolframAlpha in the original suite.
func TestRegressionValues(t *testing.T) {
	expectValue(t, "3 + 4 * 2 / (1 - 5) ^ 2 ^ 3", 3.0001220703125)
	expectValue(t, "542 / 122 + (3 + 4) * 3 - 4 ^ 3 ^ 1.123", -91.37456685970892539418662159436692907944381008665673239539)
	expectValue(t, "10 * 15 / 23 / (512 * 13 ^ 2 ^ 2 / 13 ^ 2) * 3213 + 1 * 2 - 11 + 10",
		1.2421684059042963725237972729611525598147671726267043992796501157)
	expectValue(t, "10.321 * 15.12451 / 23.1231 / (512.5643 * 13.345 ^ 2.3123 ^ 2 / 13 ^ 2) * 3213.42 + 1 * 2 - 11 + 10",
		1.0068815587795003943699518459476085786540847766316463805172)
	expectValue(t, "0 - 10.321 * 15.12451 / 23.1231 / (512.5643 * 13.345 ^ 2.3123 ^ 2 / 13 ^ 2) * 3213.42 + 1 * 2 - 11 + 10",
		0.9931184412204996056300481540523914213459152233683536194827)
	expectValue(t, "542 % 15.515 / (122 % 2 ^ (1.5 / 1.25)) + (3 + 4 * 11.111111) * 3 - 4 ^ 3 ^ 1.123",
		86.405052120668061919918225856697354813352563787666758760999)
}

func TestDivisionByZero(t *testing.T) {
	if got := evalValue(t, "1 / 0"); !math.IsInf(got, 1) {
		t.Errorf("1/0 = %v, want +Inf", got)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	expectCode(t, "(1 + 2", diag.ConvUnbalancedParen)
	expectCode(t, "1 + 2)", diag.ConvUnbalancedParen)
	expectCode(t, "1 + + 2", diag.EvalArityMismatch)
	expectCode(t, "1 .5 . 2", diag.LexMalformedNumber)
	expectCode(t, "1 & 2", diag.LexInvalidCharacter)
	expectCode(t, "", diag.EvalArityMismatch)
	expectCode(t, "   ", diag.EvalArityMismatch)
}

func TestEvaluationsAreIndependent(t *testing.T) {
	// a failed evaluation must not leak state into the next one
	bad := driver.EvaluateExpr("(1 + 2", driver.DefaultMaxDiagnostics)
	if bad.OK {
		t.Fatal("expected failure")
	}
	expectValue(t, "1 + 2", 3)
}

func TestConvertExprSkipsAfterLexErrors(t *testing.T) {
	res := driver.ConvertExpr("1 @ 2", driver.DefaultMaxDiagnostics)
	if res.OK {
		t.Error("ConvertExpr reported OK despite lex errors")
	}
	if res.Postfix != nil {
		t.Errorf("ConvertExpr produced postfix %v despite lex errors", res.Postfix)
	}
}
