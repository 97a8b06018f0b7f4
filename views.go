package keyedList

import (
	"bytes"
	"fmt"
	"github.com/hneemann/iterator"
	"sort"
)

// Iter iterates the list in list order, yielding the key and the element.
// It can be used in a range statement like "for key, e := range l.Iter".
func (l KeyedList[T]) Iter(yield func(key string, e T) bool) {
	for _, k := range l.order {
		if !yield(k, l.byKey[k]) {
			return
		}
	}
}

// Elements returns the elements in list order as a producer, so the
// combinators of the iterator package can be applied to a list.
func (l KeyedList[T]) Elements() iterator.Producer[T] {
	return func(yield iterator.Consumer[T]) {
		for _, k := range l.order {
			if !yield(l.byKey[k], nil) {
				return
			}
		}
	}
}

// FromIterator collects the elements of the given producer in a new list,
// applying the same duplicate key rule as New. If the producer yields an
// error, collecting stops and the error is returned.
func FromIterator[T Keyed](it iterator.Producer[T]) (KeyedList[T], error) {
	l := KeyedList[T]{byKey: map[string]T{}}
	for e, err := range it {
		if err != nil {
			return KeyedList[T]{}, err
		}
		key := e.Key()
		if _, ok := l.byKey[key]; ok {
			return KeyedList[T]{}, DuplicateKeyError{Key: key}
		}
		l.order = append(l.order, key)
		l.byKey[key] = e
	}
	return l, nil
}

// Map creates a slice containing the result of the given function applied to
// every element in list order. The list itself is passed to the function, so
// sibling elements can be looked at while mapping.
func Map[T Keyed, U any](l KeyedList[T], f func(e T, i int, l KeyedList[T]) U) []U {
	items := make([]U, 0, len(l.order))
	for i, k := range l.order {
		items = append(items, f(l.byKey[k], i, l))
	}
	return items
}

// MapKeys is the same as Map, except that the function is applied to the
// keys instead of the elements.
func MapKeys[T Keyed, V any](l KeyedList[T], f func(key string, i int, l KeyedList[T]) V) []V {
	items := make([]V, 0, len(l.order))
	for i, k := range l.order {
		items = append(items, f(k, i, l))
	}
	return items
}

// Filter returns the elements the given function accepts, keeping the list
// order.
func (l KeyedList[T]) Filter(accept func(T) bool) []T {
	var items []T
	for _, k := range l.order {
		if e := l.byKey[k]; accept(e) {
			items = append(items, e)
		}
	}
	return items
}

// Sort returns a new list ordered by the given comparator. A negative result
// means a comes before b. The sort is stable, elements comparing equal keep
// their relative order. The key mapping is unchanged, only the order of the
// new list differs.
func (l KeyedList[T]) Sort(compare func(a, b T) int) KeyedList[T] {
	n := l.copy(0)
	sort.SliceStable(n.order, func(i, j int) bool {
		return compare(n.byKey[n.order[i]], n.byKey[n.order[j]]) < 0
	})
	return n
}

// Equals checks if the two lists contain equal elements under the same keys
// in the same order. The elements are compared by the given function.
func (l KeyedList[T]) Equals(other KeyedList[T], equal func(a, b T) bool) bool {
	if len(l.order) != len(other.order) {
		return false
	}
	for i, k := range l.order {
		if other.order[i] != k {
			return false
		}
		if !equal(l.byKey[k], other.byKey[k]) {
			return false
		}
	}
	return true
}

// String returns a string representation of the list.
func (l KeyedList[T]) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, k := range l.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(":")
		fmt.Fprintf(&b, "%v", l.byKey[k])
	}
	b.WriteString("]")
	return b.String()
}
