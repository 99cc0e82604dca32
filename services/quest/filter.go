package quest

import (
	"time"

	"shadowWisper/set"
)

// Filter narrows an already-fetched quest list. It never changes the remote
// query; all of this runs client-side over the full list.
type Filter struct {
	// Status must match exactly, except StatusAll which passes everything.
	Status Status
	// Start and End bound CreatedAt as a half-open window [Start, End).
	// A zero Start or End leaves that side unbounded.
	Start time.Time
	End   time.Time
}

// Visible reports whether the viewing user may see the quest: they own it,
// or one of their characters is assigned to it.
func Visible(q Quest, userID string, characterIDs []string) bool {
	if q.UserID == userID {
		return true
	}
	return set.FromSlice(q.AssignedCharacterIDs).Intersects(set.FromSlice(characterIDs))
}

// Apply returns the quests the user may see that also pass the filter.
func Apply(quests []Quest, userID string, characterIDs []string, f Filter) []Quest {
	result := make([]Quest, 0)
	for _, q := range quests {
		if !Visible(q, userID, characterIDs) {
			continue
		}
		if f.Status != StatusAll && f.Status != "" && q.Status != f.Status {
			continue
		}
		if !inWindow(q.CreatedAt, f.Start, f.End) {
			continue
		}
		result = append(result, q)
	}
	return result
}

func inWindow(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(start) {
		return false
	}
	if !end.IsZero() && !t.Before(end) {
		return false
	}
	return true
}

// Partition splits a visible quest list into the user's own quests and the
// ones they only see through an assignment.
func Partition(quests []Quest, userID string) (mine []Quest, assigned []Quest) {
	mine = make([]Quest, 0)
	assigned = make([]Quest, 0)
	for _, q := range quests {
		if q.UserID == userID {
			mine = append(mine, q)
		} else {
			assigned = append(assigned, q)
		}
	}
	return mine, assigned
}
