package quest

import (
	"reflect"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestVisible(t *testing.T) {
	chars := []string{"char-1", "char-2"}
	tests := []struct {
		name  string
		quest Quest
		want  bool
	}{
		{
			"owned quests are always visible",
			Quest{UserID: "user-1", AssignedCharacterIDs: nil},
			true,
		},
		{
			"owned even when assigned elsewhere",
			Quest{UserID: "user-1", AssignedCharacterIDs: []string{"char-99"}},
			true,
		},
		{
			"assigned to one of my characters",
			Quest{UserID: "user-2", AssignedCharacterIDs: []string{"char-99", "char-2"}},
			true,
		},
		{
			"foreign and unassigned is never visible",
			Quest{UserID: "user-2", AssignedCharacterIDs: []string{"char-99"}},
			false,
		},
		{
			"foreign with no assignments",
			Quest{UserID: "user-2"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.quest, "user-1", chars); got != tt.want {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyStatusPredicate(t *testing.T) {
	quests := []Quest{
		{ID: "q1", UserID: "user-1", Status: StatusOpen, CreatedAt: day(1)},
		{ID: "q2", UserID: "user-1", Status: StatusInProgress, CreatedAt: day(2)},
		{ID: "q3", UserID: "user-1", Status: StatusDone, CreatedAt: day(3)},
	}

	t.Run("exact match", func(t *testing.T) {
		got := Apply(quests, "user-1", nil, Filter{Status: StatusDone})
		if len(got) != 1 || got[0].ID != "q3" {
			t.Errorf("Apply = %v, want only q3", got)
		}
	})

	t.Run("all selector passes everything", func(t *testing.T) {
		got := Apply(quests, "user-1", nil, Filter{Status: StatusAll})
		if len(got) != 3 {
			t.Errorf("Apply returned %d quests, want 3", len(got))
		}
	})

	t.Run("empty status behaves like all", func(t *testing.T) {
		got := Apply(quests, "user-1", nil, Filter{})
		if len(got) != 3 {
			t.Errorf("Apply returned %d quests, want 3", len(got))
		}
	})
}

func TestApplyDateWindow(t *testing.T) {
	quests := []Quest{
		{ID: "early", UserID: "user-1", Status: StatusOpen, CreatedAt: day(1)},
		{ID: "inside", UserID: "user-1", Status: StatusOpen, CreatedAt: day(5)},
		{ID: "boundary", UserID: "user-1", Status: StatusOpen, CreatedAt: day(10)},
	}

	// Half-open window: the start day is included, the end day is not.
	got := Apply(quests, "user-1", nil, Filter{Start: day(5), End: day(10)})
	if len(got) != 1 || got[0].ID != "inside" {
		t.Errorf("Apply = %v, want only the quest inside [start, end)", got)
	}

	// A visible quest outside the window is excluded even though visibility
	// alone would keep it.
	got = Apply(quests, "user-1", nil, Filter{Start: day(2), End: day(4)})
	if len(got) != 0 {
		t.Errorf("Apply = %v, want empty", got)
	}

	// Zero bounds leave that side open.
	got = Apply(quests, "user-1", nil, Filter{Start: day(5)})
	if len(got) != 2 {
		t.Errorf("Apply with open end returned %d quests, want 2", len(got))
	}
}

func TestApplyCombinesVisibilityAndFilter(t *testing.T) {
	quests := []Quest{
		{ID: "mine", UserID: "user-1", Status: StatusOpen, CreatedAt: day(5)},
		{ID: "assigned", UserID: "user-2", Status: StatusOpen, CreatedAt: day(5), AssignedCharacterIDs: []string{"char-1"}},
		{ID: "hidden", UserID: "user-2", Status: StatusOpen, CreatedAt: day(5)},
	}
	got := Apply(quests, "user-1", []string{"char-1"}, Filter{Status: StatusOpen})
	ids := make([]string, 0, len(got))
	for _, q := range got {
		ids = append(ids, q.ID)
	}
	if !reflect.DeepEqual(ids, []string{"mine", "assigned"}) {
		t.Errorf("Apply ids = %v, want [mine assigned]", ids)
	}
}

func TestPartition(t *testing.T) {
	quests := []Quest{
		{ID: "q1", UserID: "user-1"},
		{ID: "q2", UserID: "user-2", AssignedCharacterIDs: []string{"char-1"}},
		{ID: "q3", UserID: "user-1"},
	}
	mine, assigned := Partition(quests, "user-1")
	if len(mine) != 2 || mine[0].ID != "q1" || mine[1].ID != "q3" {
		t.Errorf("mine = %v", mine)
	}
	if len(assigned) != 1 || assigned[0].ID != "q2" {
		t.Errorf("assigned = %v", assigned)
	}
}

func TestStatusValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusOpen, true},
		{StatusInProgress, true},
		{StatusDone, true},
		{StatusAll, false},
		{Status("aktiv"), false},
		{Status(""), false},
	}
	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("Status(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
