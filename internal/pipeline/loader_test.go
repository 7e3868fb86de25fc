package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/theirongolddev/spendr/internal/export"
	"github.com/theirongolddev/spendr/internal/fault"
)

func TestLoadMergesInPathOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.xlsx")
	b := filepath.Join(dir, "b.xlsx")
	records := fixture()
	if err := export.ExportToExcel(a, records[:2]); err != nil {
		t.Fatal(err)
	}
	if err := export.ExportToExcel(b, records[2:]); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int64
	res, err := Load(context.Background(), []string{a, b}, nil, func(current, total int) {
		calls.Add(1)
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.LoadedFiles != 2 || res.Err() != nil {
		t.Fatalf("loaded %d files, errs %v", res.LoadedFiles, res.Err())
	}
	if calls.Load() != 2 {
		t.Errorf("progress called %d times, want 2", calls.Load())
	}
	if got := res.Store.Len(); got != 4 {
		t.Errorf("store has %d records, want 4", got)
	}
	if got := res.Store.Categories(); len(got) != 3 || got[0] != "Groceries" || got[1] != "Transport" {
		t.Errorf("categories = %v", got)
	}
}

func TestLoadReportsBadFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.xlsx")
	if err := export.ExportToExcel(good, fixture()); err != nil {
		t.Fatal(err)
	}
	junk := filepath.Join(dir, "junk.xlsx")
	if err := os.WriteFile(junk, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Load(context.Background(), []string{good, junk, filepath.Join(dir, "missing.xlsx")}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.LoadedFiles != 1 || len(res.FileErrors) != 2 {
		t.Fatalf("loaded %d, errors %d", res.LoadedFiles, len(res.FileErrors))
	}
	if !errors.Is(res.Err(), fault.ErrIO) {
		t.Errorf("joined error should include the missing file: %v", res.Err())
	}
	if !errors.Is(res.Err(), fault.ErrValidation) {
		t.Errorf("joined error should include the junk file: %v", res.Err())
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	if _, err := Load(ctx, []string{"x.xlsx"}, nil, nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestLoadNoPaths(t *testing.T) {
	res, err := Load(context.Background(), nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Store.Len() != 0 || res.TotalFiles != 0 {
		t.Errorf("unexpected result %+v", res)
	}
}
