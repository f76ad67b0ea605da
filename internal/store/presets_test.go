package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/growthsim/internal/model"
)

func openTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := Open(filepath.Join(t.TempDir(), "presets.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func TestSaveGetList(t *testing.T) {
	lib := openTestLibrary(t)

	aggressive := model.ScenarioInput{StartingBalance: 5000, MonthlyContribution: 1500, AnnualRate: 0.09, Years: 20}
	if err := lib.Save("aggressive", aggressive, "stocks heavy"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := lib.Save(" baseline ", model.DefaultScenario(), ""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := lib.Get("aggressive")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Input != aggressive || got.Note != "stocks heavy" {
		t.Fatalf("Get = %+v", got)
	}

	list, err := lib.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Name != "aggressive" || list[1].Name != "baseline" {
		t.Fatalf("List = %+v, want [aggressive baseline]", list)
	}

	n, err := lib.Count()
	if err != nil || n != 2 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}

func TestSaveReplaceKeepsCreatedAt(t *testing.T) {
	lib := openTestLibrary(t)

	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	lib.now = func() time.Time { return t0 }
	if err := lib.Save("plan", model.DefaultScenario(), ""); err != nil {
		t.Fatal(err)
	}

	lib.now = func() time.Time { return t0.Add(48 * time.Hour) }
	updated := model.DefaultScenario()
	updated.Years = 30
	if err := lib.Save("plan", updated, "longer"); err != nil {
		t.Fatal(err)
	}

	got, err := lib.Get("plan")
	if err != nil {
		t.Fatal(err)
	}
	if got.Input.Years != 30 {
		t.Errorf("Years = %d, want 30", got.Input.Years)
	}
	if !got.CreatedAt.Equal(t0) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, t0)
	}
	if !got.UpdatedAt.Equal(t0.Add(48 * time.Hour)) {
		t.Errorf("UpdatedAt = %v", got.UpdatedAt)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	lib := openTestLibrary(t)

	err := lib.Save("bad", model.ScenarioInput{AnnualRate: 0.05, Years: 0}, "")
	if !errors.Is(err, model.ErrInvalidScenarioInput) {
		t.Fatalf("Save error = %v, want ErrInvalidScenarioInput", err)
	}
	if err := lib.Save("  ", model.DefaultScenario(), ""); err == nil {
		t.Fatal("Save accepted an empty name")
	}
}

func TestGetDeleteMissing(t *testing.T) {
	lib := openTestLibrary(t)

	if _, err := lib.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get error = %v, want ErrNotFound", err)
	}
	if err := lib.Delete("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete error = %v, want ErrNotFound", err)
	}

	if err := lib.Save("tmp", model.DefaultScenario(), ""); err != nil {
		t.Fatal(err)
	}
	if err := lib.Delete("tmp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := lib.Get("tmp"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
}
