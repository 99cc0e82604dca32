package utils

import (
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/fatih/structs"
)

func ToPointer[T any](value T) *T {
	return &value
}

func GetAllToStructs[T any](docs []*firestore.DocumentSnapshot) ([]T, error) {
	result := make([]T, len(docs))
	for i, doc := range docs {
		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("failed to convert doc %s: %w", doc.Ref.ID, err)
		}
		result[i] = item
	}
	return result, nil
}

// FirestoreMap converts a struct into a map keyed by its firestore tags,
// for use with merge writes. Zero-value fields are kept; callers that only
// want to touch a few fields should build the map by hand instead.
func FirestoreMap(value any) map[string]any {
	s := structs.New(value)
	s.TagName = "firestore"
	return s.Map()
}

// DedupStrings returns the input with duplicates removed, keeping the first
// occurrence of each value in its original position.
func DedupStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
