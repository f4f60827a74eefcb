package pbst

import (
	"fmt"
)

// A single change to a tree: either the creation of a key, or its deletion. Keys are never updated in place, so at most one of Value and Prev is set on a valid operation. If neither is set, the operation was a no-op (deletion of a missing key).
type Operation[K, V any] struct {
	Key   K
	Value *V
	Prev  *V
}

func (op *Operation[K, V]) IsCreate() bool {
	if op.Value != nil && op.Prev == nil {
		return true
	}
	return false
}

func (op *Operation[K, V]) IsDelete() bool {
	if op.Value == nil && op.Prev != nil {
		return true
	}
	return false
}

func (op *Operation[K, V]) IsNoop() bool {
	return op.Value == nil && op.Prev == nil
}

// Mutates the tree (by building a new version), returning a full `Operation`. A non-nil `val` is an insertion; nil is a deletion.
func ApplyOp[K, V any](compare CompareFunc[K], t Ref[K, V], key K, val *V) (Ref[K, V], *Operation[K, V], error) {
	if val != nil {
		out, err := Add(compare, t, key, *val)
		if err != nil {
			return Ref[K, V]{}, nil, err
		}
		op := &Operation[K, V]{
			Key:   key,
			Value: val,
		}
		return out, op, nil
	}
	op := &Operation[K, V]{
		Key: key,
	}
	prev, ok := Get(compare, key, t)
	if !ok {
		return t, op, nil
	}
	out, _ := Remove(compare, key, t)
	op.Prev = &prev
	return out, op, nil
}

// Does a simple "forwards" (not inversion) check of operation: created keys must be present, deleted keys absent.
func CheckOp[K, V any](compare CompareFunc[K], t Ref[K, V], op *Operation[K, V]) error {
	_, found := Find(compare, op.Key, t)
	if op.IsCreate() {
		if !found {
			return fmt.Errorf("key missing from tree after creation op: %v", op.Key)
		}
		return nil
	}
	if op.IsDelete() {
		if found {
			return fmt.Errorf("key still in tree after deletion op: %v", op.Key)
		}
		return nil
	}
	if op.IsNoop() {
		return nil
	}
	return ErrInvalidOperation
}

// Builds the version of the tree from before `op` was applied.
func InvertOp[K, V any](compare CompareFunc[K], t Ref[K, V], op *Operation[K, V]) (Ref[K, V], error) {
	if op.IsCreate() {
		out, found := Remove(compare, op.Key, t)
		if !found {
			return Ref[K, V]{}, fmt.Errorf("failed to invert creation: key not in tree: %v", op.Key)
		}
		return out, nil
	}
	if op.IsDelete() {
		out, err := Add(compare, t, op.Key, *op.Prev)
		if err != nil {
			return Ref[K, V]{}, fmt.Errorf("failed to invert deletion: %w", err)
		}
		return out, nil
	}
	if op.IsNoop() {
		return t, nil
	}
	return Ref[K, V]{}, ErrInvalidOperation
}
