package keyedList

import (
	"errors"
	"github.com/hneemann/iterator"
	"github.com/stretchr/testify/assert"
	"testing"
)

func testList(t *testing.T) KeyedList[person] {
	t.Helper()
	l, err := New(
		person{ID: "1", Name: "A", Age: 1},
		person{ID: "2", Name: "B", Age: 2},
		person{ID: "3", Name: "C", Age: 3},
	)
	assert.NoError(t, err)
	return l
}

func TestIter(t *testing.T) {
	l := testList(t)
	var keys []string
	var sum int
	for k, e := range l.Iter {
		keys = append(keys, k)
		sum += e.Age
	}
	assert.Equal(t, []string{"1", "2", "3"}, keys)
	assert.Equal(t, 6, sum)
}

func TestIterBreak(t *testing.T) {
	l := testList(t)
	var sum int
	for _, e := range l.Iter {
		sum += e.Age
		break
	}
	assert.Equal(t, 1, sum)
}

func TestElements(t *testing.T) {
	l := testList(t)
	items, err := iterator.ToSlice(l.Elements())
	assert.NoError(t, err)
	assert.Equal(t, l.ToSlice(), items)
}

func TestElementsCombinators(t *testing.T) {
	l := testList(t)
	adults := iterator.Filter(l.Elements(), func(p person) (bool, error) {
		return p.Age >= 2, nil
	})
	names, err := iterator.ToSlice(iterator.Map(adults, func(i int, p person) (string, error) {
		return p.Name, nil
	}))
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, names)
}

func TestFromIterator(t *testing.T) {
	items := []person{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
	}
	l, err := FromIterator(iterator.Slice(items))
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, l.Keys())
	assert.Equal(t, items, l.ToSlice())
}

func TestFromIteratorDuplicate(t *testing.T) {
	_, err := FromIterator(iterator.Slice([]person{
		{ID: "1", Name: "A"},
		{ID: "1", Name: "B"},
	}))
	var dup DuplicateKeyError
	assert.True(t, errors.As(err, &dup))
	assert.Equal(t, "1", dup.Key)
}

func TestFromIteratorError(t *testing.T) {
	fail := errors.New("source failed")
	var it iterator.Producer[person] = func(yield iterator.Consumer[person]) {
		if !yield(person{ID: "1"}, nil) {
			return
		}
		var zero person
		yield(zero, fail)
	}
	_, err := FromIterator(it)
	assert.Equal(t, fail, err)
}

func TestMap(t *testing.T) {
	l := testList(t)
	got := Map(l, func(e person, i int, l KeyedList[person]) string {
		next, ok := l.At(i + 1)
		if !ok {
			return e.Name
		}
		return e.Name + next.Name
	})
	assert.Equal(t, []string{"AB", "BC", "C"}, got)
}

func TestMapKeys(t *testing.T) {
	l := testList(t)
	got := MapKeys(l, func(key string, i int, l KeyedList[person]) string {
		e, _ := l.Get(key)
		return key + ":" + e.Name
	})
	assert.Equal(t, []string{"1:A", "2:B", "3:C"}, got)
}

func TestFilter(t *testing.T) {
	l := testList(t)
	got := l.Filter(func(p person) bool {
		return p.Age != 2
	})
	assert.Equal(t, []person{
		{ID: "1", Name: "A", Age: 1},
		{ID: "3", Name: "C", Age: 3},
	}, got)
	assert.Empty(t, l.Filter(func(p person) bool { return false }))
}

type scored struct {
	ID string
	V  int
}

func (s scored) Key() string {
	return s.ID
}

func TestSortIsStable(t *testing.T) {
	l, err := New(
		scored{ID: "a", V: 1},
		scored{ID: "b", V: 1},
		scored{ID: "c", V: 0},
	)
	assert.NoError(t, err)
	n := l.Sort(func(a, b scored) int {
		return a.V - b.V
	})
	assert.Equal(t, []string{"c", "a", "b"}, n.Keys())
	// the receiver keeps its order
	assert.Equal(t, []string{"a", "b", "c"}, l.Keys())

	e, ok := n.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 1, e.V)
}

func TestEquals(t *testing.T) {
	eq := func(a, b person) bool {
		return a == b
	}
	a := testList(t)
	b := testList(t)
	assert.True(t, a.Equals(b, eq))

	c := b.RemoveKey("3")
	assert.False(t, a.Equals(c, eq))

	d, _ := b.Update("2", func(p person) person {
		p.Age = 9
		return p
	})
	assert.False(t, a.Equals(d, eq))

	// same elements, different order
	e := b.Sort(func(x, y person) int {
		return y.Age - x.Age
	})
	assert.False(t, a.Equals(e, eq))
}

func TestString(t *testing.T) {
	l, _ := New(
		scored{ID: "a", V: 1},
		scored{ID: "b", V: 2},
	)
	assert.Equal(t, "[a:{a 1}, b:{b 2}]", l.String())

	empty, _ := New[scored]()
	assert.Equal(t, "[]", empty.String())
}
