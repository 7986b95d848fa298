package progression

import "fmt"

// Level is one rung of the rank ladder.
type Level struct {
	Level int
	MinXP int
	Title string
	Icon  string
}

// Table is an ordered rank ladder. A valid table starts at level 1 with
// MinXP 0 and is strictly increasing in both level and MinXP.
type Table []Level

// DefaultTable returns the product rank ladder.
func DefaultTable() Table {
	return Table{
		{Level: 1, MinXP: 0, Title: "RECRUIT", Icon: "🎯"},
		{Level: 2, MinXP: 100, Title: "OPERATIVE", Icon: "⚔️"},
		{Level: 3, MinXP: 250, Title: "AGENT", Icon: "🛡️"},
		{Level: 4, MinXP: 500, Title: "SPECIALIST", Icon: "🔥"},
		{Level: 5, MinXP: 1000, Title: "ELITE", Icon: "💎"},
		{Level: 6, MinXP: 2000, Title: "VETERAN", Icon: "⭐"},
		{Level: 7, MinXP: 4000, Title: "TACTICIAN", Icon: "🏆"},
		{Level: 8, MinXP: 8000, Title: "COMMANDER", Icon: "👑"},
		{Level: 9, MinXP: 15000, Title: "RADIANT", Icon: "✨"},
		{Level: 10, MinXP: 30000, Title: "PROTOCOL HUNTER", Icon: "🔱"},
	}
}

// Validate checks the ladder ordering. A malformed table is a
// configuration error, so callers should fail fast on it.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("level table is empty")
	}
	if t[0].Level != 1 || t[0].MinXP != 0 {
		return fmt.Errorf("level table must start at level 1 with 0 XP, got level %d with %d XP", t[0].Level, t[0].MinXP)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Level <= t[i-1].Level {
			return fmt.Errorf("level table not strictly increasing in level at index %d", i)
		}
		if t[i].MinXP <= t[i-1].MinXP {
			return fmt.Errorf("level table not strictly increasing in XP at index %d", i)
		}
	}
	return nil
}
