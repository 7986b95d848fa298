// Package progression derives rank, in-level experience and streak state
// from a cumulative XP total and an activity-date history. It is pure:
// no I/O, no internal clock, and identical input always yields identical
// output. The server computes the same aggregate; this package is the
// offline-capable reference for it.
package progression

import (
	"fmt"
	"time"
)

// DailyQuestTarget is the number of qualifying activities that complete
// the daily quest.
const DailyQuestTarget = 5

// Snapshot is the derived progression view.
type Snapshot struct {
	Level   int
	Title   string
	Icon    string
	TotalXP int

	// XPInLevel is the experience accrued past the current rank's
	// threshold. XPForNext is the width of the current band; it is 0
	// when Saturated, i.e. at the top rank where no next threshold
	// exists.
	XPInLevel int
	XPForNext int
	Saturated bool

	Streak          int
	ActivitiesToday int
	QuestTarget     int
	QuestCompleted  bool
}

// Percent reports progress through the current band in [0, 100].
// A saturated band always reports 100 so no caller ever divides by a
// missing next threshold.
func (s Snapshot) Percent() float64 {
	if s.Saturated || s.XPForNext == 0 {
		return 100
	}
	p := float64(s.XPInLevel) / float64(s.XPForNext) * 100
	if p > 100 {
		return 100
	}
	return p
}

// Compute maps (total experience, rank table, activity history) to a
// Snapshot. now anchors "today" so the caller controls the clock; the
// calendar-day arithmetic uses now's location.
func Compute(totalXP int, table Table, activity []time.Time, now time.Time) (Snapshot, error) {
	if err := table.Validate(); err != nil {
		return Snapshot{}, err
	}
	if totalXP < 0 {
		return Snapshot{}, fmt.Errorf("total experience must be non-negative, got %d", totalXP)
	}

	idx := 0
	for i := range table {
		if table[i].MinXP <= totalXP {
			idx = i
		}
	}
	cur := table[idx]

	s := Snapshot{
		Level:       cur.Level,
		Title:       cur.Title,
		Icon:        cur.Icon,
		TotalXP:     totalXP,
		XPInLevel:   totalXP - cur.MinXP,
		QuestTarget: DailyQuestTarget,
	}
	if idx == len(table)-1 {
		s.Saturated = true
	} else {
		s.XPForNext = table[idx+1].MinXP - cur.MinXP
	}

	s.Streak = streak(activity, now)
	s.ActivitiesToday = activitiesOn(activity, now)
	s.QuestCompleted = s.ActivitiesToday >= DailyQuestTarget
	return s, nil
}
