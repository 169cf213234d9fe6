package diag_test

import (
	"testing"

	"shunt/internal/diag"
	"shunt/internal/source"
)

func TestBagCap(t *testing.T) {
	bag := diag.NewBag(2)

	for i := 0; i < 3; i++ {
		added := bag.Add(diag.NewError(diag.LexInvalidCharacter, source.Span{}, "x"))
		if i < 2 && !added {
			t.Errorf("Add #%d rejected below cap", i)
		}
		if i == 2 && added {
			t.Error("Add accepted past cap")
		}
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagSortAndFirstError(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.EvalArityMismatch, source.Span{Start: 7, End: 8}, "late"))
	bag.Add(diag.NewError(diag.LexMalformedNumber, source.Span{Start: 2, End: 4}, "early"))
	bag.Sort()

	first, ok := bag.FirstError()
	if !ok {
		t.Fatal("FirstError found nothing")
	}
	if first.Code != diag.LexMalformedNumber {
		t.Errorf("FirstError code = %v, want LexMalformedNumber", first.Code)
	}
}

func TestHasErrorsIgnoresWarnings(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.New(diag.SevWarning, diag.UnknownCode, source.Span{}, "just a warning"))
	if bag.HasErrors() {
		t.Error("HasErrors = true for warnings only")
	}
	bag.Add(diag.NewError(diag.ConvUnbalancedParen, source.Span{}, "boom"))
	if !bag.HasErrors() {
		t.Error("HasErrors = false after adding an error")
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[diag.Code]string{
		diag.LexInvalidCharacter: "LEX1001",
		diag.LexMalformedNumber:  "LEX1002",
		diag.ConvUnbalancedParen: "CNV2001",
		diag.EvalArityMismatch:   "EVL3001",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("ID(%d) = %q, want %q", code, got, want)
		}
	}
}
