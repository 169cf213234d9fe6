package driver_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"shunt/internal/diag"
	"shunt/internal/driver"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exprs.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEvaluateFile(t *testing.T) {
	path := writeBatchFile(t, "1 + 2\n\n# comment\n2 ^ 3 ^ 2\n(1 + 2\n")

	_, results, err := driver.EvaluateFile(context.Background(), path, driver.DefaultMaxDiagnostics, 4)
	if err != nil {
		t.Fatal(err)
	}

	byLine := map[uint32]driver.LineResult{}
	for _, r := range results {
		byLine[r.Line] = r
	}

	if r := byLine[1]; !r.OK || r.Value != 3 {
		t.Errorf("line 1 = %+v, want value 3", r)
	}
	if r := byLine[2]; !r.Skipped() {
		t.Errorf("line 2 = %+v, want skipped", r)
	}
	if r := byLine[3]; !r.Skipped() {
		t.Errorf("line 3 (comment) = %+v, want skipped", r)
	}
	if r := byLine[4]; !r.OK || r.Value != 512 {
		t.Errorf("line 4 = %+v, want value 512", r)
	}
	r := byLine[5]
	if r.OK || r.Skipped() {
		t.Fatalf("line 5 = %+v, want failure", r)
	}
	first, found := r.Bag.FirstError()
	if !found || first.Code != diag.ConvUnbalancedParen {
		t.Errorf("line 5 diagnostic = %+v, want ConvUnbalancedParen", first)
	}
}

func TestEvaluateFileOrderIsStable(t *testing.T) {
	path := writeBatchFile(t, "1\n2\n3\n4\n5\n6\n7\n8\n")

	_, results, err := driver.EvaluateFile(context.Background(), path, driver.DefaultMaxDiagnostics, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		if results[i].Line != uint32(i+1) {
			t.Fatalf("result %d has line %d", i, results[i].Line)
		}
		if !results[i].OK || results[i].Value != float64(i+1) {
			t.Errorf("line %d = %+v", i+1, results[i])
		}
	}
}

func TestEvaluateFileMissing(t *testing.T) {
	_, _, err := driver.EvaluateFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), 8, 1)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path := writeBatchFile(t, "1 + 1\nbogus &\n")
	fs, results, err := driver.EvaluateFile(context.Background(), path, driver.DefaultMaxDiagnostics, 2)
	if err != nil {
		t.Fatal(err)
	}

	file, ok := fs.GetByPath(path)
	if !ok {
		t.Fatal("batch file missing from file set")
	}

	payload := driver.PayloadFromResults(path, results)
	if err := cache.Put(file.Hash, payload); err != nil {
		t.Fatal(err)
	}

	var got driver.BatchPayload
	hit, err := cache.Get(file.Hash, &got)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if len(got.Lines) != len(results) {
		t.Fatalf("cached %d lines, want %d", len(got.Lines), len(results))
	}
	if got.Lines[0].Value != 2 || !got.Lines[0].OK {
		t.Errorf("cached line 1 = %+v, want value 2", got.Lines[0])
	}
	if got.Lines[1].OK || got.Lines[1].ErrCode != uint16(diag.LexInvalidCharacter) {
		t.Errorf("cached line 2 = %+v, want LexInvalidCharacter", got.Lines[1])
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var out driver.BatchPayload
	hit, err := cache.Get(driver.Digest{1, 2, 3}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("unexpected hit for unknown digest")
	}
}

func TestBatchNaNRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := writeBatchFile(t, "0 / 0\n")
	fs, results, err := driver.EvaluateFile(context.Background(), path, driver.DefaultMaxDiagnostics, 1)
	if err != nil {
		t.Fatal(err)
	}
	file, _ := fs.GetByPath(path)
	if err := cache.Put(file.Hash, driver.PayloadFromResults(path, results)); err != nil {
		t.Fatal(err)
	}
	var got driver.BatchPayload
	if hit, err := cache.Get(file.Hash, &got); err != nil || !hit {
		t.Fatalf("hit=%v err=%v", hit, err)
	}
	if !math.IsNaN(got.Lines[0].Value) {
		t.Errorf("cached 0/0 = %v, want NaN", got.Lines[0].Value)
	}
}
