package service

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"context"
	"errors"
	"testing"
)

func TestAward_LevelProgression(t *testing.T) {
	h := newHarness(models.Member{ID: 1, Level: 1})
	ctx := context.Background()

	res, err := h.reputation.Award(ctx, Entry{MemberID: 1, Delta: 150, Reason: "article approved"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Balance != 150 || res.Level.Name != "silver" || !res.LevelChanged {
		t.Fatalf("after +150: %+v", res)
	}
	m, _ := h.db.FindByID(ctx, 1)
	if m.Level != 2 {
		t.Fatalf("stored level = %d, want 2", m.Level)
	}

	res, err = h.reputation.Award(ctx, Entry{MemberID: 1, Delta: 400, Reason: "featured"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Balance != 550 || res.Level.Name != "gold" {
		t.Fatalf("after +400: %+v", res)
	}

	res, err = h.reputation.Award(ctx, Entry{MemberID: 1, Delta: 10, Reason: "comment"})
	if err != nil {
		t.Fatal(err)
	}
	if res.LevelChanged {
		t.Fatal("level should not change within gold")
	}
}

func TestAward_BrokenTable(t *testing.T) {
	h := newHarness(models.Member{ID: 1})
	h.levels.levels = nil

	_, err := h.reputation.Award(context.Background(), Entry{MemberID: 1, Delta: 10, Reason: "x"})
	if !reputation.IsConfiguration(err) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
}

func TestBalance_NextLevel(t *testing.T) {
	h := newHarness(models.Member{ID: 1, Points: 120})
	b, err := h.reputation.Balance(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if b.Level.Name != "silver" || b.NextLevel == nil || b.NextLevel.Name != "gold" || b.ToNext != 380 {
		t.Fatalf("balance = %+v", b)
	}

	h = newHarness(models.Member{ID: 1, Points: 900})
	b, err = h.reputation.Balance(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if b.NextLevel != nil {
		t.Fatalf("gold has no next level, got %+v", b.NextLevel)
	}
}

func TestAwardBatch_SyncsLevels(t *testing.T) {
	h := newHarness(models.Member{ID: 1}, models.Member{ID: 2})
	h.db.failAppend[2] = errors.New("deadlock")

	succeeded, err := h.reputation.AwardBatch(context.Background(), []uint64{1, 2}, 200, "contest")
	var pbf *reputation.PartialBatchFailure
	if !errors.As(err, &pbf) || len(pbf.Failures) != 1 || pbf.Failures[0].MemberID != 2 {
		t.Fatalf("err = %v", err)
	}
	if len(succeeded) != 1 || succeeded[0] != 1 {
		t.Fatalf("succeeded = %v", succeeded)
	}
	m, _ := h.db.FindByID(context.Background(), 1)
	if m.Level != 2 {
		t.Fatalf("member 1 level = %d, want 2", m.Level)
	}
}
