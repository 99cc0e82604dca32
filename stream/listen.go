package stream

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
)

// Listen attaches a snapshot listener for q under kind and feeds every query
// snapshot into r, decoded one document at a time. A document that fails to
// decode is dropped with a warning and never aborts the rest of the snapshot.
// A snapshot whose iteration fails partway is discarded whole, so the current
// list never regresses to a truncated one. A stream error logs and stops the
// listener, leaving the current list untouched; there is no automatic retry.
func Listen[T any](ctx context.Context, m *Manager, kind Kind, q firestore.Query, r *Reducer[T]) *Handle {
	return m.Attach(ctx, kind, func(ctx context.Context, h *Handle) {
		it := q.Snapshots(ctx)
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Warn().
					Str("stream", string(kind)).
					Err(err).
					Msg("snapshot stream failed, keeping last known list")
				return
			}
			items, err := decodeDocuments[T](kind, snap.Documents)
			if err != nil {
				log.Warn().
					Str("stream", string(kind)).
					Err(err).
					Msg("discarding partial snapshot, keeping last known list")
				continue
			}
			r.Apply(h, items)
		}
	})
}

// documents is the part of firestore.DocumentIterator that decodeDocuments
// consumes.
type documents interface {
	Next() (*firestore.DocumentSnapshot, error)
}

func decodeDocuments[T any](kind Kind, it documents) ([]T, error) {
	items := make([]T, 0)
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var item T
		if err := doc.DataTo(&item); err != nil {
			log.Warn().
				Str("stream", string(kind)).
				Str("doc", doc.Ref.ID).
				Err(err).
				Msg("dropping record that failed to decode")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
