package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/dineatlas/directory-backend/internal/config"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore implements Store over Cloud Firestore, one native collection
// per logical collection. This is the "managed NoSQL" backend.
type Firestore struct {
	client *firestore.Client
}

func OpenFirestore(ctx context.Context, cfg *config.Config) (*Firestore, error) {
	if cfg.FirestoreProjectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID is required for the firestore backend")
	}
	var opts []option.ClientOption
	if cfg.FirestoreCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentialsFile))
	}
	client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &Firestore{client: client}, nil
}

func (f *Firestore) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	ref := f.client.Collection(collection).NewDoc()
	if _, err := ref.Set(ctx, doc); err != nil {
		return "", err
	}
	return ref.ID, nil
}

func snapDoc(snap *firestore.DocumentSnapshot) Document {
	doc := snap.Data()
	if doc == nil {
		doc = Document{}
	}
	doc["_id"] = snap.Ref.ID
	return doc
}

// query builds a filtered query. An "_id" filter is resolved separately
// via a direct document lookup.
func (f *Firestore) query(collection string, filter Filter) (firestore.Query, string) {
	q := f.client.Collection(collection).Query
	id := ""
	for k, v := range filter {
		if k == "_id" {
			id = fmt.Sprint(v)
			continue
		}
		q = q.Where(k, "==", v)
	}
	return q, id
}

func (f *Firestore) getByID(ctx context.Context, collection, id string) (*firestore.DocumentSnapshot, error) {
	snap, err := f.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return snap, nil
}

func (f *Firestore) Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error) {
	q, id := f.query(collection, filter)
	if id != "" {
		snap, err := f.getByID(ctx, collection, id)
		if err != nil || snap == nil {
			return []Document{}, err
		}
		return []Document{snapDoc(snap)}, nil
	}

	if opts.Sort != nil {
		dir := firestore.Asc
		if opts.Sort.Desc {
			dir = firestore.Desc
		}
		q = q.OrderBy(opts.Sort.Field, dir)
	}
	limit := opts.Limit
	if limit <= 0 || limit > MaxFetch {
		limit = MaxFetch
	}
	q = q.Limit(limit)

	docs := make([]Document, 0)
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, snapDoc(snap))
	}
	return docs, nil
}

func (f *Firestore) findSnap(ctx context.Context, collection string, filter Filter) (*firestore.DocumentSnapshot, error) {
	q, id := f.query(collection, filter)
	if id != "" {
		return f.getByID(ctx, collection, id)
	}
	iter := q.Limit(1).Documents(ctx)
	defer iter.Stop()
	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (f *Firestore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	snap, err := f.findSnap(ctx, collection, filter)
	if err != nil || snap == nil {
		return nil, err
	}
	return snapDoc(snap), nil
}

func (f *Firestore) ReplaceOne(ctx context.Context, collection string, filter Filter, doc Document, upsert bool) error {
	snap, err := f.findSnap(ctx, collection, filter)
	if err != nil {
		return err
	}
	if snap == nil {
		if !upsert {
			return nil
		}
		_, err := f.InsertOne(ctx, collection, doc)
		return err
	}
	_, err = snap.Ref.Set(ctx, doc)
	return err
}

func (f *Firestore) UpdateOne(ctx context.Context, collection string, filter Filter, set Document) (bool, error) {
	snap, err := f.findSnap(ctx, collection, filter)
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, nil
	}
	if _, err := snap.Ref.Set(ctx, set, firestore.MergeAll); err != nil {
		return false, err
	}
	return true, nil
}

func (f *Firestore) DeleteOne(ctx context.Context, collection string, filter Filter) (bool, error) {
	snap, err := f.findSnap(ctx, collection, filter)
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, nil
	}
	if _, err := snap.Ref.Delete(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (f *Firestore) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	return f.DeleteOne(ctx, collection, Filter{"_id": id})
}

// Count streams keys-only snapshots and counts them. Exhaustive, but the
// fetch cap keeps collections small by construction.
func (f *Firestore) Count(ctx context.Context, collection string) (int64, error) {
	iter := f.client.Collection(collection).Select().Documents(ctx)
	defer iter.Stop()
	var n int64
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		n++
	}
}

func (f *Firestore) Collections(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	iter := f.client.Collections(ctx)
	for {
		col, err := iter.Next()
		if err == iterator.Done {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		names = append(names, col.ID)
	}
}

func (f *Firestore) Ping(ctx context.Context) error {
	iter := f.client.Collections(ctx)
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

func (f *Firestore) Close() error { return f.client.Close() }

func (f *Firestore) Backend() string { return "firestore" }
