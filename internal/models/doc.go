package models

import (
	"time"

	"github.com/dineatlas/directory-backend/internal/docstore"
)

func docString(doc docstore.Document, key string) string {
	v, _ := doc[key].(string)
	return v
}

func docOptString(doc docstore.Document, key string) *string {
	if v, ok := doc[key].(string); ok {
		return &v
	}
	return nil
}

// docTime parses timestamps stored as RFC3339 strings; backends that
// return native times are handled too.
func docTime(doc docstore.Document, key string) time.Time {
	switch v := doc[key].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	case time.Time:
		return v
	}
	return time.Time{}
}

func optValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
