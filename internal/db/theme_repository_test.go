package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/opencode-ai/glasstheme/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if _, err := database.MigrateUp(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	database := setupTestDB(t)

	applied, err := database.MigrateUp(ctx)
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if applied != 0 {
		t.Fatalf("expected no pending migrations, got %d", applied)
	}
}

func TestThemeRepositoryCreateGet(t *testing.T) {
	ctx := context.Background()
	repo := NewThemeRepository(setupTestDB(t))

	record := &models.ThemeRecord{
		Name:       "brand",
		Kind:       models.ThemeKindRamp,
		Source:     "palette.json",
		Stylesheet: ":root {\n  --glass-blur: 16px;\n}\n",
		TokenCount: 38,
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected ID to be set")
	}
	if record.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := repo.Get(ctx, record.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "brand" || got.Kind != models.ThemeKindRamp {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.Stylesheet != record.Stylesheet {
		t.Errorf("stylesheet mismatch: %q", got.Stylesheet)
	}
	if got.Source != "palette.json" || got.TokenCount != 38 {
		t.Errorf("unexpected source/count: %q %d", got.Source, got.TokenCount)
	}
	if !got.CreatedAt.Equal(record.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, record.CreatedAt)
	}
}

func TestThemeRepositoryCreateInvalid(t *testing.T) {
	repo := NewThemeRepository(setupTestDB(t))

	err := repo.Create(context.Background(), &models.ThemeRecord{Name: "brand"})
	var validation *models.ValidationErrors
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestThemeRepositoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewThemeRepository(setupTestDB(t))

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		record := &models.ThemeRecord{
			Name:       name,
			Kind:       models.ThemeKindDiscrete,
			Stylesheet: ":root {}",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	themes, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(themes))
	}
	if themes[0].Name != "third" || themes[1].Name != "second" {
		t.Errorf("unexpected order: %s, %s", themes[0].Name, themes[1].Name)
	}
	if themes[0].Source != "" {
		t.Errorf("expected empty source, got %q", themes[0].Source)
	}
}

func TestThemeRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewThemeRepository(setupTestDB(t))

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestThemeRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewThemeRepository(setupTestDB(t))

	record := &models.ThemeRecord{Name: "brand", Kind: models.ThemeKindSeed, Stylesheet: ":root {}"}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, record.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, record.ID); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound after delete, got %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	if _, err := database.MigrateUp(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}
