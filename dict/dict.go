package dict

import (
	"cmp"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bluesky-social/pdict/pbst"

	lru "github.com/hashicorp/golang-lru/v2"
)

type config struct {
	logger  *slog.Logger
	history int
}

type Option func(*config)

// WithLogger sets the logger used for debug output on commits and rejected mutations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHistory retains the most recent `versions` committed versions (for `At` and `Rollback`), and the same number of operations for `Undo`. Zero disables history.
func WithHistory(versions int) Option {
	return func(c *config) {
		c.history = versions
	}
}

// Ordered key/value dictionary backed by a persistent binary search tree.
//
// The only mutable state is a reference to the current version's root. Reads load that reference atomically and never block. Writes (Add, Remove, Undo, Rollback) are serialized, compute a new version from the current one, and then swap it in; a failed write leaves the current version in place.
type Dictionary[K, V any] struct {
	compare pbst.CompareFunc[K]
	logger  *slog.Logger

	// held by writers for the whole read-modify-replace sequence
	mu      sync.Mutex
	current atomic.Pointer[Snapshot[K, V]]

	history *lru.Cache[uint64, Snapshot[K, V]]
	undo    []*pbst.Operation[K, V]
	undoMax int
}

// Creates an empty dictionary for naturally ordered keys.
func New[K cmp.Ordered, V any](opts ...Option) *Dictionary[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// Creates an empty dictionary using `compare` to order keys. `compare` must be a total order, and must not be nil.
func NewFunc[K, V any](compare pbst.CompareFunc[K], opts ...Option) *Dictionary[K, V] {
	cfg := config{
		logger: slog.Default().With("system", "pdict"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dictionary[K, V]{
		compare: compare,
		logger:  cfg.logger,
	}
	empty := &Snapshot[K, V]{compare: compare}
	d.current.Store(empty)

	if cfg.history > 0 {
		// only fails for non-positive sizes
		d.history, _ = lru.New[uint64, Snapshot[K, V]](cfg.history)
		d.history.Add(empty.version, *empty)
		d.undoMax = cfg.history
	}
	return d
}

// Looks up `key` in the current version. Returns false and the zero value if the key is not present; that is not an error.
func (d *Dictionary[K, V]) TryGetValue(key K) (bool, V, error) {
	ok, val, err := d.current.Load().TryGetValue(key)
	if err != nil {
		dictionaryOps.WithLabelValues("get", "null_key").Inc()
		return ok, val, err
	}
	if ok {
		dictionaryOps.WithLabelValues("get", "hit").Inc()
	} else {
		dictionaryOps.WithLabelValues("get", "miss").Inc()
	}
	return ok, val, nil
}

// Adds a new key. If the key already exists, returns an error wrapping `ErrDuplicateKey` and the dictionary is not modified.
func (d *Dictionary[K, V]) Add(key K, value V) error {
	if isNullKey(key) {
		dictionaryOps.WithLabelValues("add", "null_key").Inc()
		return ErrNullKey
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	cur := d.current.Load()
	root, op, err := pbst.ApplyOp(d.compare, cur.root, key, &value)
	if err != nil {
		dictionaryOps.WithLabelValues("add", "duplicate").Inc()
		d.logger.Debug("rejected duplicate key", "key", key, "version", cur.version)
		return err
	}
	next := d.commit(cur, root, op)

	insertDepth.Observe(float64(pbst.Depth(d.compare, key, root)))
	dictionaryOps.WithLabelValues("add", "ok").Inc()
	d.logger.Debug("added key", "key", key, "version", next.version)
	return nil
}

// Removes `key`, returning whether it was present. Removing a missing key is a no-op, and does not create a new version.
func (d *Dictionary[K, V]) Remove(key K) (bool, error) {
	if isNullKey(key) {
		dictionaryOps.WithLabelValues("remove", "null_key").Inc()
		return false, ErrNullKey
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	cur := d.current.Load()
	root, op, err := pbst.ApplyOp(d.compare, cur.root, key, nil)
	if err != nil {
		return false, err
	}
	if op.IsNoop() {
		dictionaryOps.WithLabelValues("remove", "miss").Inc()
		return false, nil
	}
	next := d.commit(cur, root, op)

	dictionaryOps.WithLabelValues("remove", "ok").Inc()
	d.logger.Debug("removed key", "key", key, "version", next.version)
	return true, nil
}

// Captures the current version.
func (d *Dictionary[K, V]) Snapshot() Snapshot[K, V] {
	return *d.current.Load()
}

// Read-only handle to the current tree root, for traversal and rendering.
func (d *Dictionary[K, V]) Root() pbst.Ref[K, V] {
	return d.current.Load().root
}

func (d *Dictionary[K, V]) Version() uint64 {
	return d.current.Load().version
}

// Number of keys in the current version. O(n).
func (d *Dictionary[K, V]) Len() int {
	return d.current.Load().Len()
}

// Returns a retained earlier version (or the current one).
func (d *Dictionary[K, V]) At(version uint64) (Snapshot[K, V], error) {
	cur := d.current.Load()
	if version == cur.version {
		return *cur, nil
	}
	if d.history == nil {
		return Snapshot[K, V]{}, ErrNoHistory
	}
	s, ok := d.history.Peek(version)
	if !ok {
		return Snapshot[K, V]{}, fmt.Errorf("%w: %d", ErrVersionEvicted, version)
	}
	return s, nil
}

// Reverts the most recent retained Add or Remove, committing the result as a new version. Returns the operation which was inverted.
func (d *Dictionary[K, V]) Undo() (*pbst.Operation[K, V], error) {
	if d.history == nil {
		return nil, ErrNoHistory
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.undo) == 0 {
		return nil, ErrNothingToUndo
	}
	op := d.undo[len(d.undo)-1]
	cur := d.current.Load()
	root, err := pbst.InvertOp(d.compare, cur.root, op)
	if err != nil {
		return nil, fmt.Errorf("failed to undo operation on %v: %w", op.Key, err)
	}
	d.undo = d.undo[:len(d.undo)-1]
	next := d.commit(cur, root, nil)

	dictionaryOps.WithLabelValues("undo", "ok").Inc()
	d.logger.Debug("undid operation", "key", op.Key, "create", op.IsCreate(), "version", next.version)
	return op, nil
}

// Installs the tree of a retained earlier version as a new current version. The undo log is cleared.
func (d *Dictionary[K, V]) Rollback(version uint64) error {
	target, err := d.At(version)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	cur := d.current.Load()
	next := d.commit(cur, target.root, nil)
	d.undo = nil

	dictionaryOps.WithLabelValues("rollback", "ok").Inc()
	d.logger.Info("rolled back dictionary", "target", version, "version", next.version)
	return nil
}

// swaps in a new version. caller must hold d.mu. a nil op is not recorded for undo
func (d *Dictionary[K, V]) commit(cur *Snapshot[K, V], root pbst.Ref[K, V], op *pbst.Operation[K, V]) *Snapshot[K, V] {
	next := &Snapshot[K, V]{
		root:    root,
		version: cur.version + 1,
		compare: d.compare,
	}
	d.current.Store(next)

	if d.history == nil {
		return next
	}
	d.history.Add(next.version, *next)
	if op != nil {
		d.undo = append(d.undo, op)
		if len(d.undo) > d.undoMax {
			d.undo = append([]*pbst.Operation[K, V]{}, d.undo[1:]...)
		}
	}
	return next
}
