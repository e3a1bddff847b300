// Package catalog is a small record domain built on the matcher engine: a
// bounded catalog of named, versioned model entries searched with composed
// matchers or parsed filter expressions.
package catalog

import (
	"github.com/google/uuid"

	"github.com/hupe1980/matchgo"
	"github.com/hupe1980/matchgo/filter"
	"github.com/hupe1980/matchgo/store"
)

// Model is one catalog record. Records are opaque to the matcher engine
// except through the field adapters below.
type Model struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Version int       `json:"version"`
}

// New creates a Model with a fresh identity.
func New(name string, version int) Model {
	return Model{
		ID:      uuid.New(),
		Name:    name,
		Version: version,
	}
}

// Field implements filter.Filterable, exposing the attributes id, name and
// version to filter trees.
func (m Model) Field(key string) (filter.Value, bool) {
	switch key {
	case "id":
		return filter.String(m.ID.String()), true
	case "name":
		return filter.String(m.Name), true
	case "version":
		return filter.Int(int64(m.Version)), true
	default:
		return filter.Value{}, false
	}
}

// NameMatches lifts a string matcher over the Name attribute into a matcher
// over whole records.
func NameMatches(m matchgo.Matcher[string]) matchgo.Matcher[Model] {
	return matchgo.Field(func(rec Model) string { return rec.Name }, m)
}

// VersionMatches lifts an integer matcher over the Version attribute into a
// matcher over whole records.
func VersionMatches(m matchgo.Matcher[int]) matchgo.Matcher[Model] {
	return matchgo.Field(func(rec Model) int { return rec.Version }, m)
}

// Catalog is a bounded, order-preserving collection of Models.
type Catalog struct {
	*store.Store[Model]
}

// NewCatalog creates a Catalog holding at most capacity records.
func NewCatalog(capacity int, optFns ...store.Option) (*Catalog, error) {
	s, err := store.New[Model](capacity, optFns...)
	if err != nil {
		return nil, err
	}
	return &Catalog{Store: s}, nil
}

// FindExpr parses a filter expression and returns the first matching record.
func (c *Catalog) FindExpr(expr string) (*Model, bool, error) {
	n, err := filter.Parse(expr)
	if err != nil {
		return nil, false, err
	}
	rec, ok := c.Find(filter.Matcher[Model](n))
	return rec, ok, nil
}
