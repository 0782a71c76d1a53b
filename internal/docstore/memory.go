package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Memory keeps documents in process memory. Data is lost on restart.
// Safe for concurrent use. Unsorted reads see insertion order, which
// keeps tests deterministic.
type Memory struct {
	mu     sync.RWMutex
	nextID int
	colls  map[string][]memDoc
}

type memDoc struct {
	id   string
	data Document
}

func NewMemory() *Memory {
	return &Memory{colls: make(map[string][]memDoc)}
}

// deepCopy round-trips through JSON so callers can never mutate stored
// state, and so stored values have the same shapes a real backend would
// return (e.g. timestamps as strings).
func deepCopy(src Document) Document {
	if src == nil {
		return nil
	}
	b, _ := json.Marshal(src)
	var dst Document
	_ = json.Unmarshal(b, &dst)
	return dst
}

func (m *Memory) InsertOne(_ context.Context, collection string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := fmt.Sprintf("mem-%06d", m.nextID)
	m.colls[collection] = append(m.colls[collection], memDoc{id: id, data: deepCopy(doc)})
	return id, nil
}

func matches(d memDoc, filter Filter) bool {
	for k, want := range filter {
		if k == "_id" {
			if d.id != fmt.Sprint(want) {
				return false
			}
			continue
		}
		got, ok := d.data[k]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func (m *Memory) withID(d memDoc) Document {
	doc := deepCopy(d.data)
	if doc == nil {
		doc = Document{}
	}
	doc["_id"] = d.id
	return doc
}

func (m *Memory) Find(_ context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Document, 0)
	for _, d := range m.colls[collection] {
		if matches(d, filter) {
			result = append(result, m.withID(d))
		}
	}

	if opts.Sort != nil {
		field, desc := opts.Sort.Field, opts.Sort.Desc
		sort.SliceStable(result, func(i, j int) bool {
			a := fmt.Sprint(result[i][field])
			b := fmt.Sprint(result[j][field])
			if desc {
				return a > b
			}
			return a < b
		})
	}

	if opts.Limit > 0 && len(result) > opts.Limit {
		result = result[:opts.Limit]
	}
	return result, nil
}

func (m *Memory) FindOne(_ context.Context, collection string, filter Filter) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.colls[collection] {
		if matches(d, filter) {
			return m.withID(d), nil
		}
	}
	return nil, nil
}

func (m *Memory) ReplaceOne(_ context.Context, collection string, filter Filter, doc Document, upsert bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.colls[collection] {
		if matches(d, filter) {
			m.colls[collection][i].data = deepCopy(doc)
			return nil
		}
	}
	if upsert {
		m.nextID++
		id := fmt.Sprintf("mem-%06d", m.nextID)
		m.colls[collection] = append(m.colls[collection], memDoc{id: id, data: deepCopy(doc)})
	}
	return nil
}

func (m *Memory) UpdateOne(_ context.Context, collection string, filter Filter, set Document) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.colls[collection] {
		if matches(d, filter) {
			merged := deepCopy(d.data)
			for k, v := range deepCopy(set) {
				merged[k] = v
			}
			m.colls[collection][i].data = merged
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) DeleteOne(_ context.Context, collection string, filter Filter) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.colls[collection] {
		if matches(d, filter) {
			m.colls[collection] = append(m.colls[collection][:i], m.colls[collection][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	return m.DeleteOne(ctx, collection, Filter{"_id": id})
}

func (m *Memory) Count(_ context.Context, collection string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.colls[collection])), nil
}

func (m *Memory) Collections(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.colls))
	for name, docs := range m.colls {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Ping(context.Context) error { return nil }
func (m *Memory) Close() error               { return nil }
func (m *Memory) Backend() string            { return "memory" }
