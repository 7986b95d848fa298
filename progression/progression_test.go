package progression

import (
	"testing"
	"time"
)

var twoRanks = Table{
	{Level: 1, MinXP: 0, Title: "RECRUIT", Icon: "🎯"},
	{Level: 2, MinXP: 100, Title: "OPERATIVE", Icon: "⚔️"},
}

func mustCompute(t *testing.T, xp int, table Table, activity []time.Time, now time.Time) Snapshot {
	t.Helper()
	s, err := Compute(xp, table, activity, now)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	return s
}

func TestComputeAtThreshold(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mustCompute(t, 100, twoRanks, nil, now)
	if s.Level != 2 || s.Title != "OPERATIVE" {
		t.Fatalf("expected level 2 OPERATIVE, got %d %q", s.Level, s.Title)
	}
	if s.XPInLevel != 0 {
		t.Fatalf("expected 0 XP in level at exact threshold, got %d", s.XPInLevel)
	}
}

func TestComputeOneBelowNextThreshold(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mustCompute(t, 99, twoRanks, nil, now)
	if s.Level != 1 {
		t.Fatalf("expected level 1, got %d", s.Level)
	}
	if s.XPForNext != 100 || s.XPInLevel != s.XPForNext-1 {
		t.Fatalf("expected 99/100, got %d/%d", s.XPInLevel, s.XPForNext)
	}
}

func TestComputeSaturatedAtTopRank(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mustCompute(t, 150, twoRanks, nil, now)
	if s.Level != 2 || s.Title != "OPERATIVE" {
		t.Fatalf("expected level 2 OPERATIVE, got %d %q", s.Level, s.Title)
	}
	if s.XPInLevel != 50 {
		t.Fatalf("expected 50 XP in level, got %d", s.XPInLevel)
	}
	if !s.Saturated || s.XPForNext != 0 {
		t.Fatalf("expected saturated band, got saturated=%v next=%d", s.Saturated, s.XPForNext)
	}
	if s.Percent() != 100 {
		t.Fatalf("saturated band must report 100%%, got %v", s.Percent())
	}
}

func TestComputeDefaultTableBands(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mustCompute(t, 250, DefaultTable(), nil, now)
	if s.Level != 3 || s.Title != "AGENT" {
		t.Fatalf("expected level 3 AGENT at 250 XP, got %d %q", s.Level, s.Title)
	}
	if s.XPInLevel != 0 || s.XPForNext != 250 {
		t.Fatalf("expected 0/250 band, got %d/%d", s.XPInLevel, s.XPForNext)
	}

	s = mustCompute(t, 31000, DefaultTable(), nil, now)
	if s.Level != 10 || !s.Saturated {
		t.Fatalf("expected saturated top rank, got level %d saturated=%v", s.Level, s.Saturated)
	}
}

func TestComputeRejectsNegativeXP(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if _, err := Compute(-1, twoRanks, nil, now); err == nil {
		t.Fatalf("expected error for negative XP")
	}
}

func TestComputeDailyQuest(t *testing.T) {
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	var activity []time.Time
	for i := 0; i < DailyQuestTarget; i++ {
		activity = append(activity, now.Add(-time.Duration(i)*time.Hour))
	}
	s := mustCompute(t, 0, twoRanks, activity, now)
	if s.ActivitiesToday != DailyQuestTarget {
		t.Fatalf("expected %d activities today, got %d", DailyQuestTarget, s.ActivitiesToday)
	}
	if !s.QuestCompleted {
		t.Fatalf("expected daily quest completed")
	}

	s = mustCompute(t, 0, twoRanks, activity[:2], now)
	if s.QuestCompleted {
		t.Fatalf("quest must not complete at %d/%d", s.ActivitiesToday, s.QuestTarget)
	}
}

func TestComputeIsReferentiallyStable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	activity := []time.Time{now.Add(-time.Hour), now.AddDate(0, 0, -1)}
	a := mustCompute(t, 512, DefaultTable(), activity, now)
	b := mustCompute(t, 512, DefaultTable(), activity, now)
	if a != b {
		t.Fatalf("identical input produced different snapshots: %+v vs %+v", a, b)
	}
}
