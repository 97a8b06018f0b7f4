// Package keyedList provides an immutable, order preserving associative list.
//
// A KeyedList behaves like a slice: it has a stable iteration order and
// allows access by index. At the same time every element is addressable by a
// unique string key taken from the element itself. All modifying operations
// are copy-on-write: they return a new list and leave the receiver and all
// arguments untouched, which makes a KeyedList usable as a state snapshot
// that is shared without coordination.
package keyedList

import (
	"fmt"
)

// Keyed is the constraint every element type has to satisfy. The returned
// key identifies the element within a list. It has to be unique and
// must not change while the element is stored.
type Keyed interface {
	Key() string
}

// DuplicateKeyError is returned if an element is added whose key is already
// present in the list.
type DuplicateKeyError struct {
	Key string
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.Key)
}

// KeyChangedError is returned by Update if the modifier function changed the
// key of the element.
type KeyChangedError struct {
	From string
	To   string
}

func (e KeyChangedError) Error() string {
	return fmt.Sprintf("update changed the key %q to %q", e.From, e.To)
}

// KeyedList is an ordered collection of elements addressable by their key.
// Elements are stored and returned as shallow copies, so T should be a plain
// struct type; storing pointers or types containing pointers weakens the
// immutability guarantee to the fields reachable by value.
// The zero value is an empty list ready to use.
type KeyedList[T Keyed] struct {
	order []string
	byKey map[string]T
}

// New creates a list containing the given elements in the given order.
// If two elements share a key a DuplicateKeyError is returned.
func New[T Keyed](items ...T) (KeyedList[T], error) {
	l := KeyedList[T]{
		order: make([]string, 0, len(items)),
		byKey: make(map[string]T, len(items)),
	}
	for _, item := range items {
		key := item.Key()
		if _, ok := l.byKey[key]; ok {
			return KeyedList[T]{}, DuplicateKeyError{Key: key}
		}
		l.order = append(l.order, key)
		l.byKey[key] = item
	}
	return l, nil
}

// ToSlice returns the elements as a slice in list order.
func (l KeyedList[T]) ToSlice() []T {
	items := make([]T, 0, len(l.order))
	for _, k := range l.order {
		items = append(items, l.byKey[k])
	}
	return items
}

// Get returns the element stored for the given key.
func (l KeyedList[T]) Get(key string) (T, bool) {
	e, ok := l.byKey[key]
	return e, ok
}

// GetMany returns the elements for the given keys in the order the keys are
// given, which is not necessarily the list order. Keys not present in the
// list are skipped.
func (l KeyedList[T]) GetMany(keys ...string) []T {
	items := make([]T, 0, len(keys))
	for _, k := range keys {
		if e, ok := l.byKey[k]; ok {
			items = append(items, e)
		}
	}
	return items
}

// Keys returns a copy of the ordered key list.
func (l KeyedList[T]) Keys() []string {
	keys := make([]string, len(l.order))
	copy(keys, l.order)
	return keys
}

// KeyAt returns the key at the given position. If the position is negative
// or beyond the last element false is returned.
func (l KeyedList[T]) KeyAt(i int) (string, bool) {
	if i < 0 || i >= len(l.order) {
		return "", false
	}
	return l.order[i], true
}

// At returns the element at the given position, applying the same bounds
// rule as KeyAt.
func (l KeyedList[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.order) {
		var zero T
		return zero, false
	}
	return l.byKey[l.order[i]], true
}

// First returns the first element in list order.
func (l KeyedList[T]) First() (T, bool) {
	return l.At(0)
}

// Last returns the last element in list order.
func (l KeyedList[T]) Last() (T, bool) {
	return l.At(len(l.order) - 1)
}

// Size returns the number of elements in the list.
func (l KeyedList[T]) Size() int {
	return len(l.order)
}

// Has checks if the given key is present in the list.
func (l KeyedList[T]) Has(key string) bool {
	_, ok := l.byKey[key]
	return ok
}

// IndexOf returns the position of the given key in list order, or -1 if the
// key is not present.
func (l KeyedList[T]) IndexOf(key string) int {
	if _, ok := l.byKey[key]; !ok {
		return -1
	}
	for i, k := range l.order {
		if k == key {
			return i
		}
	}
	return -1
}

func (l KeyedList[T]) copy(extra int) KeyedList[T] {
	n := KeyedList[T]{
		order: make([]string, len(l.order), len(l.order)+extra),
		byKey: make(map[string]T, len(l.byKey)+extra),
	}
	copy(n.order, l.order)
	for k, e := range l.byKey {
		n.byKey[k] = e
	}
	return n
}

// Append returns a new list with the given element added at the end.
// If the key is already present a DuplicateKeyError is returned together
// with the unchanged receiver.
func (l KeyedList[T]) Append(e T) (KeyedList[T], error) {
	key := e.Key()
	if _, ok := l.byKey[key]; ok {
		return l, DuplicateKeyError{Key: key}
	}
	n := l.copy(1)
	n.order = append(n.order, key)
	n.byKey[key] = e
	return n, nil
}

// Prepend returns a new list with the given element added at the front.
// Duplicate keys are handled like in Append.
func (l KeyedList[T]) Prepend(e T) (KeyedList[T], error) {
	key := e.Key()
	if _, ok := l.byKey[key]; ok {
		return l, DuplicateKeyError{Key: key}
	}
	n := KeyedList[T]{
		order: make([]string, 0, len(l.order)+1),
		byKey: make(map[string]T, len(l.byKey)+1),
	}
	n.order = append(n.order, key)
	n.order = append(n.order, l.order...)
	for k, o := range l.byKey {
		n.byKey[k] = o
	}
	n.byKey[key] = e
	return n, nil
}

// Update returns a new list in which the element stored for the given key is
// replaced by the result of the modifier function. The modifier receives a
// copy of the stored element, so it can set the fields it cares about and
// return it; all other fields keep their value. If the key is not present
// the receiver is returned unchanged. The modifier must not change the key
// of the element; if it does, a KeyChangedError is returned together with
// the unchanged receiver.
func (l KeyedList[T]) Update(key string, mod func(T) T) (KeyedList[T], error) {
	old, ok := l.byKey[key]
	if !ok {
		return l, nil
	}
	e := mod(old)
	if k := e.Key(); k != key {
		return l, KeyChangedError{From: key, To: k}
	}
	n := l.copy(0)
	n.byKey[key] = e
	return n, nil
}

// RemoveKey returns a new list without the element stored for the given key.
// If the key is not present the receiver is returned unchanged, so removing
// is idempotent.
func (l KeyedList[T]) RemoveKey(key string) KeyedList[T] {
	if _, ok := l.byKey[key]; !ok {
		return l
	}
	n := KeyedList[T]{
		order: make([]string, 0, len(l.order)-1),
		byKey: make(map[string]T, len(l.byKey)-1),
	}
	for _, k := range l.order {
		if k == key {
			continue
		}
		n.order = append(n.order, k)
		n.byKey[k] = l.byKey[k]
	}
	return n
}

// Remove returns a new list without the element sharing the key of the
// given element.
func (l KeyedList[T]) Remove(e T) KeyedList[T] {
	return l.RemoveKey(e.Key())
}
