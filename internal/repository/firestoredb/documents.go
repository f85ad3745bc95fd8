package firestoredb

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func getDoc[T any](ctx context.Context, f *Firestore, coll, id string, notFound error, setID func(*T, string)) (*T, error) {
	snap, err := f.client.Collection(coll).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, notFound
		}
		f.log.Errorw("failed to get document", "error", err, "collection", coll, "id", id)
		return nil, fmt.Errorf("get %s: %w", coll, err)
	}

	var out T
	if err := snap.DataTo(&out); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", coll, id, err)
	}
	setID(&out, snap.Ref.ID)
	return &out, nil
}

func listWhere[T any](ctx context.Context, f *Firestore, coll, field, value string, setID func(*T, string)) ([]T, error) {
	iter := f.client.Collection(coll).Where(field, "==", value).Documents(ctx)
	defer iter.Stop()

	out := make([]T, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			f.log.Errorw("failed to iterate documents", "error", err, "collection", coll)
			return nil, fmt.Errorf("list %s: %w", coll, err)
		}

		var doc T
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", coll, snap.Ref.ID, err)
		}
		setID(&doc, snap.Ref.ID)
		out = append(out, doc)
	}
	return out, nil
}

func updateField(ctx context.Context, f *Firestore, coll, id, path string, value any) error {
	_, err := f.client.Collection(coll).Doc(id).Update(ctx, []firestore.Update{{Path: path, Value: value}})
	return err
}
