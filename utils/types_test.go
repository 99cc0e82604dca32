package utils

import (
	"reflect"
	"testing"
)

func TestDedupStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"keeps first occurrence", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"empty", nil, []string{}},
		{"all same", []string{"x", "x", "x"}, []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DedupStrings(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DedupStrings(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFirestoreMap(t *testing.T) {
	type record struct {
		Title  string `firestore:"title"`
		Status string `firestore:"status"`
	}
	got := FirestoreMap(record{Title: "Run the border", Status: "open"})
	want := map[string]any{"title": "Run the border", "status": "open"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FirestoreMap() = %v, want %v", got, want)
	}
}
