package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iaparraguez/Pagina-Fotos/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection is one namespaced document table. All queries are scoped to the
// namespace given at construction; snapshots are ordered newest first with
// the sequence number as creation-order tiebreak (missing timestamps sort
// oldest, i.e. last).
type Collection[T Document] struct {
	db    *gorm.DB
	table string
	ns    string

	mu        sync.Mutex // guards subs
	subs      map[uint64]*subscription[T]
	nextSubID uint64

	// dispatchMu serializes snapshot deliveries so that every subscription
	// observes mutations in store push order.
	dispatchMu sync.Mutex
}

func NewCollection[T Document](db *gorm.DB, table, ns string) *Collection[T] {
	return &Collection[T]{
		db:    db,
		table: table,
		ns:    ns,
		subs:  make(map[uint64]*subscription[T]),
	}
}

type subscription[T Document] struct {
	closed  atomic.Bool
	dormant bool // single-document target deleted; guarded by dispatchMu

	filter Filter
	fn     Snapshot[T]

	docID string // non-empty for single-document subscriptions
	docFn DocumentSnapshot[T]
}

func (s *subscription[T]) deliver(docs []T) {
	if s.closed.Load() {
		return
	}
	s.fn(docs)
}

func (s *subscription[T]) deliverDoc(doc T, found bool) {
	if s.closed.Load() {
		return
	}
	s.docFn(doc, found)
}

// seqCounter keeps sequence numbers strictly increasing even when the clock
// is too coarse to tell two creates apart.
var seqCounter atomic.Int64

func nextSeq(now int64) int64 {
	for {
		last := seqCounter.Load()
		s := now
		if s <= last {
			s = last + 1
		}
		if seqCounter.CompareAndSwap(last, s) {
			return s
		}
	}
}

// Create assigns the id, namespace, server timestamp and sequence, persists
// the document and pushes fresh snapshots to all live subscriptions before
// returning, so the caller's own subscriptions observe the write.
func (c *Collection[T]) Create(ctx context.Context, doc T) error {
	now := time.Now()
	doc.SetDocumentID(uuid.NewString())
	doc.SetNamespace(c.ns)
	doc.SetCreatedUnix(now.Unix())
	doc.SetSequence(nextSeq(now.UnixNano()))
	if err := c.db.WithContext(ctx).Table(c.table).Create(doc).Error; err != nil {
		return wrap("create", c.table, err)
	}
	c.broadcast()
	return nil
}

// Delete removes a document by id. Deleting an absent document is not an
// error and pushes no snapshots.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	result := c.db.WithContext(ctx).Exec("DELETE FROM "+c.table+" WHERE ns = ? AND id = ?", c.ns, id)
	if result.Error != nil {
		return wrap("delete", c.table, result.Error)
	}
	if result.RowsAffected > 0 {
		c.broadcast()
	}
	return nil
}

// Find returns the documents matching all equality conditions, newest first.
func (c *Collection[T]) Find(ctx context.Context, filter Filter) ([]T, error) {
	docs, err := c.query(ctx, filter)
	if err != nil {
		return nil, wrap("find", c.table, err)
	}
	return docs, nil
}

// Get returns a single document or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var doc T
	err := c.db.WithContext(ctx).Table(c.table).Where("ns = ? AND id = ?", c.ns, id).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, wrap("get", c.table, err)
	}
	return doc, nil
}

// Subscribe opens a live query subscription. The current snapshot is
// delivered before Subscribe returns and again after every mutation of the
// collection. The returned cancel func is idempotent. Cancelling from the
// callback goroutine (including from inside the callback itself) is allowed
// and guarantees no further deliveries; a cancel racing a concurrent
// mutation may let one already-dispatched snapshot through.
func (c *Collection[T]) Subscribe(filter Filter, fn Snapshot[T]) (cancel func()) {
	sub := &subscription[T]{filter: filter, fn: fn}
	id := c.register(sub)

	c.dispatchMu.Lock()
	docs, err := c.query(context.Background(), filter)
	if err != nil {
		logger.L.Errorw("subscription snapshot failed", "table", c.table, "err", err)
	} else {
		sub.deliver(docs)
	}
	c.dispatchMu.Unlock()

	return func() { c.unregister(id, sub) }
}

// SubscribeDocument opens a live subscription to one document. The callback
// observes found=false when the target is deleted (or never existed), after
// which the subscription stays dormant until cancelled.
func (c *Collection[T]) SubscribeDocument(id string, fn DocumentSnapshot[T]) (cancel func()) {
	sub := &subscription[T]{docID: id, docFn: fn}
	subID := c.register(sub)

	c.dispatchMu.Lock()
	c.pushDocument(sub)
	c.dispatchMu.Unlock()

	return func() { c.unregister(subID, sub) }
}

func (c *Collection[T]) register(sub *subscription[T]) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSubID++
	c.subs[c.nextSubID] = sub
	return c.nextSubID
}

func (c *Collection[T]) unregister(id uint64, sub *subscription[T]) {
	sub.closed.Store(true)
	c.mu.Lock()
	delete(c.subs, id)
	c.mu.Unlock()
}

// broadcast re-queries every live subscription and delivers fresh snapshots.
// Queries run on a detached context: delivery to subscribers must not depend
// on the lifetime of whichever request happened to issue the mutation.
func (c *Collection[T]) broadcast() {
	c.mu.Lock()
	subs := make([]*subscription[T], 0, len(c.subs))
	for _, s := range c.subs {
		subs = append(subs, s)
	}
	c.mu.Unlock()

	ctx := context.Background()
	c.dispatchMu.Lock()
	defer c.dispatchMu.Unlock()
	for _, sub := range subs {
		if sub.closed.Load() {
			continue
		}
		if sub.docFn != nil {
			if !sub.dormant {
				c.pushDocument(sub)
			}
			continue
		}
		docs, err := c.query(ctx, sub.filter)
		if err != nil {
			logger.L.Errorw("subscription snapshot failed", "table", c.table, "err", err)
			continue
		}
		sub.deliver(docs)
	}
}

// pushDocument delivers the current state of a single-document subscription.
// Callers hold dispatchMu.
func (c *Collection[T]) pushDocument(sub *subscription[T]) {
	doc, err := c.Get(context.Background(), sub.docID)
	if errors.Is(err, ErrNotFound) {
		sub.dormant = true
		sub.deliverDoc(doc, false)
		return
	}
	if err != nil {
		logger.L.Errorw("document snapshot failed", "table", c.table, "id", sub.docID, "err", err)
		return
	}
	sub.deliverDoc(doc, true)
}

func (c *Collection[T]) query(ctx context.Context, filter Filter) ([]T, error) {
	tx := c.db.WithContext(ctx).Table(c.table).Where("ns = ?", c.ns)
	for column, value := range filter {
		tx = tx.Where(column+" = ?", value)
	}
	var docs []T
	if err := tx.Order("created_at DESC, seq ASC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
