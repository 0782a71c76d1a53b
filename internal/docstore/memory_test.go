package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryInsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, err := m.InsertOne(ctx, "restaurants", Document{"restaurant_key": "abc", "city": "Austin"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := m.FindOne(ctx, "restaurants", Filter{"restaurant_key": "abc"})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, id, doc["_id"])
	assert.Equal(t, "Austin", doc["city"])

	missing, err := m.FindOne(ctx, "restaurants", Filter{"restaurant_key": "nope"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryFindSortAndLimit(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for _, name := range []string{"bravo", "alpha", "charlie"} {
		_, err := m.InsertOne(ctx, "restaurants", Document{"restaurant_name": name})
		require.NoError(t, err)
	}

	docs, err := m.Find(ctx, "restaurants", nil, FindOptions{
		Sort: &Sort{Field: "restaurant_name"},
	})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "alpha", docs[0]["restaurant_name"])
	assert.Equal(t, "charlie", docs[2]["restaurant_name"])

	docs, err = m.Find(ctx, "restaurants", nil, FindOptions{
		Sort:  &Sort{Field: "restaurant_name", Desc: true},
		Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "charlie", docs[0]["restaurant_name"])
	assert.Equal(t, "bravo", docs[1]["restaurant_name"])
}

func TestMemoryFindUnsortedSeesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first, err := m.InsertOne(ctx, "status_checks", Document{"client_name": "one"})
	require.NoError(t, err)
	second, err := m.InsertOne(ctx, "status_checks", Document{"client_name": "two"})
	require.NoError(t, err)

	docs, err := m.Find(ctx, "status_checks", nil, FindOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, first, docs[0]["_id"])
	assert.Equal(t, second, docs[1]["_id"])
}

func TestMemoryUpdateOneMerges(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.InsertOne(ctx, "user_profiles", Document{"uid": "u1", "email": "a@b.c", "address": "old"})
	require.NoError(t, err)

	matched, err := m.UpdateOne(ctx, "user_profiles", Filter{"uid": "u1"}, Document{"address": "new"})
	require.NoError(t, err)
	assert.True(t, matched)

	doc, err := m.FindOne(ctx, "user_profiles", Filter{"uid": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "new", doc["address"])
	assert.Equal(t, "a@b.c", doc["email"])

	matched, err = m.UpdateOne(ctx, "user_profiles", Filter{"uid": "u2"}, Document{"address": "x"})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestMemoryReplaceOneUpsert(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.ReplaceOne(ctx, "user_profiles", Filter{"uid": "u1"}, Document{"uid": "u1", "email": "a@b.c"}, true)
	require.NoError(t, err)

	err = m.ReplaceOne(ctx, "user_profiles", Filter{"uid": "u1"}, Document{"uid": "u1", "email": "new@b.c"}, true)
	require.NoError(t, err)

	n, err := m.Count(ctx, "user_profiles")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	doc, err := m.FindOne(ctx, "user_profiles", Filter{"uid": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "new@b.c", doc["email"])
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, err := m.InsertOne(ctx, "restaurants", Document{"restaurant_key": "abc"})
	require.NoError(t, err)

	deleted, err := m.DeleteByID(ctx, "restaurants", id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = m.DeleteByID(ctx, "restaurants", id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryCollections(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.InsertOne(ctx, "restaurants", Document{"a": 1})
	require.NoError(t, err)
	_, err = m.InsertOne(ctx, "status_checks", Document{"b": 2})
	require.NoError(t, err)

	names, err := m.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"restaurants", "status_checks"}, names)
}

func TestMemoryCallersCannotMutateStoredState(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	src := Document{"city": "Austin"}
	_, err := m.InsertOne(ctx, "restaurants", src)
	require.NoError(t, err)
	src["city"] = "changed"

	doc, err := m.FindOne(ctx, "restaurants", nil)
	require.NoError(t, err)
	assert.Equal(t, "Austin", doc["city"])

	doc["city"] = "also changed"
	again, err := m.FindOne(ctx, "restaurants", nil)
	require.NoError(t, err)
	assert.Equal(t, "Austin", again["city"])
}
