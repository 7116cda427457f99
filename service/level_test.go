package service

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"context"
	"testing"
)

func TestLevelTable_CachesValidTable(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	table, err := h.level.Table(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 3 || len(h.cache.levels) != 3 {
		t.Fatalf("table=%d cached=%d", len(table), len(h.cache.levels))
	}

	// 缓存命中后不再读库
	h.levels.levels = nil
	if _, err := h.level.Table(ctx); err != nil {
		t.Fatalf("cached read failed: %v", err)
	}
}

func TestLevelTable_BrokenTable(t *testing.T) {
	h := newHarness()
	h.levels.levels[1].MinPoints = 150 // gap after bronze

	_, err := h.level.Table(context.Background())
	if !reputation.IsConfiguration(err) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
	if len(h.cache.levels) != 0 {
		t.Fatal("broken table must not be cached")
	}
}

func TestLevelSave_RejectsGap(t *testing.T) {
	h := newHarness()
	silver := defaultLevels()[1]
	silver.MinPoints = 120

	err := h.level.Save(context.Background(), silver)
	if !reputation.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if h.levels.writes != 0 {
		t.Fatal("invalid table was written")
	}
}

func TestLevelSave_RenameInvalidatesCache(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	if _, err := h.level.Table(ctx); err != nil {
		t.Fatal(err)
	}

	gold := defaultLevels()[2]
	gold.Name = "platinum"
	if err := h.level.Save(ctx, gold); err != nil {
		t.Fatal(err)
	}
	if h.cache.invalidated != 1 {
		t.Fatalf("invalidated = %d", h.cache.invalidated)
	}
	top, err := h.level.Resolve(ctx, 10000)
	if err != nil {
		t.Fatal(err)
	}
	if top.Name != "platinum" {
		t.Fatalf("top = %s", top.Name)
	}
}

func TestLevelSave_AppendTopTierNeedsReplace(t *testing.T) {
	h := newHarness()
	// 在 gold 之上新增等级时 gold 必须先有上限，单条保存无法做到
	err := h.level.Save(context.Background(), models.MemberLevel{Name: "diamond", MinPoints: 2000})
	if !reputation.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestLevelReplace(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	levels := []models.MemberLevel{
		{Name: "diamond", MinPoints: 2000},
		{Name: "bronze", MinPoints: 0, MaxPoints: ptr(99)},
		{Name: "gold", MinPoints: 500, MaxPoints: ptr(1999)},
		{Name: "silver", MinPoints: 100, MaxPoints: ptr(499)},
	}
	if err := h.level.Replace(ctx, levels); err != nil {
		t.Fatal(err)
	}
	table, err := h.level.Table(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 4 || table[3].Name != "diamond" || table[3].ID != 4 {
		t.Fatalf("table = %+v", table)
	}
}

func TestLevelDelete(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	if err := h.level.Delete(ctx, 3); !reputation.IsValidation(err) {
		t.Fatalf("deleting top tier err = %v, want ValidationError", err)
	}
	if err := h.level.Delete(ctx, 9); !reputation.IsValidation(err) {
		t.Fatalf("deleting unknown tier err = %v, want ValidationError", err)
	}
	if h.levels.writes != 0 {
		t.Fatal("store written on rejected delete")
	}
}
