package progression

import "time"

// midnight truncates t to its calendar day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// streak counts consecutive calendar days with at least one activity,
// ending at today or yesterday. A quiet day so far today does not break
// a streak anchored at yesterday; a fully skipped day zeroes it.
func streak(activity []time.Time, now time.Time) int {
	loc := now.Location()
	days := make(map[time.Time]struct{}, len(activity))
	for _, ts := range activity {
		days[midnight(ts, loc)] = struct{}{}
	}

	anchor := midnight(now, loc)
	if _, ok := days[anchor]; !ok {
		anchor = anchor.AddDate(0, 0, -1)
		if _, ok := days[anchor]; !ok {
			return 0
		}
	}

	n := 0
	for {
		if _, ok := days[anchor]; !ok {
			return n
		}
		n++
		anchor = anchor.AddDate(0, 0, -1)
	}
}

// activitiesOn counts activities that fall on now's calendar day.
func activitiesOn(activity []time.Time, now time.Time) int {
	loc := now.Location()
	today := midnight(now, loc)
	n := 0
	for _, ts := range activity {
		if midnight(ts, loc).Equal(today) {
			n++
		}
	}
	return n
}
