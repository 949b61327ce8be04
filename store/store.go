// Package store implements the document backend of the gallery: namespaced
// collections with equality-filtered queries and live snapshot subscriptions.
// Every mutation re-runs the query of each live subscription and pushes the
// full current snapshot, so subscribers replace rather than patch their state.
package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no document matches the id.
var ErrNotFound = errors.New("store: document not found")

// Document is anything a Collection can persist. The store owns the id, the
// namespace, the creation timestamp and the sequence number; callers must not
// set them.
type Document interface {
	DocumentID() string
	SetDocumentID(id string)
	Namespace() string
	SetNamespace(ns string)
	CreatedUnix() int64
	SetCreatedUnix(ts int64)
	Sequence() int64
	SetSequence(seq int64)
}

// Filter is a conjunction of column equality conditions. Keys are column
// names, not struct fields.
type Filter map[string]any

// Snapshot receives the full ordered result of a collection subscription.
type Snapshot[T Document] func(docs []T)

// DocumentSnapshot receives the current state of a single-document
// subscription. found is false exactly once, when the document disappears;
// after that the subscription stays dormant until cancelled.
type DocumentSnapshot[T Document] func(doc T, found bool)

func wrap(op, table string, err error) error {
	return fmt.Errorf("store: %s %s: %w", op, table, err)
}
