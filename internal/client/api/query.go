package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Query builds a query string whose keys keep insertion order. Optional
// helpers skip zero values so absent parameters never reach the wire.
type Query struct {
	keys   []string
	values []string
}

func NewQuery() *Query {
	return &Query{}
}

// Add appends key=value unconditionally.
func (q *Query) Add(key, value string) *Query {
	q.keys = append(q.keys, key)
	q.values = append(q.values, value)
	return q
}

func (q *Query) String(key, value string) *Query {
	if value == "" {
		return q
	}
	return q.Add(key, value)
}

func (q *Query) Int(key string, value int) *Query {
	if value == 0 {
		return q
	}
	return q.Add(key, strconv.Itoa(value))
}

func (q *Query) Int64(key string, value int64) *Query {
	if value == 0 {
		return q
	}
	return q.Add(key, strconv.FormatInt(value, 10))
}

func (q *Query) Float(key string, value float64) *Query {
	if value == 0 {
		return q
	}
	return q.Add(key, formatFloat(value))
}

// FloatPtr adds the value when non-nil, including an explicit zero.
func (q *Query) FloatPtr(key string, value *float64) *Query {
	if value == nil {
		return q
	}
	return q.Add(key, formatFloat(*value))
}

// Bool adds "true" or "false" when value is non-nil.
func (q *Query) Bool(key string, value *bool) *Query {
	if value == nil {
		return q
	}
	return q.Add(key, strconv.FormatBool(*value))
}

// List adds the items joined by commas when at least one is present.
func (q *Query) List(key string, items []string) *Query {
	if len(items) == 0 {
		return q
	}
	return q.Add(key, strings.Join(items, ","))
}

func (q *Query) Len() int {
	return len(q.keys)
}

// Encode renders the query without a leading '?'.
func (q *Query) Encode() string {
	var b strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[i]))
	}
	return b.String()
}

// Path appends the encoded query to path, or returns path unchanged when the
// query is empty.
func (q *Query) Path(path string) string {
	if q == nil || len(q.keys) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
