package record

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPerson(t *testing.T) *Type {
	t.Helper()
	return NewFactory(nil, nil).New(Symbol("name"), Symbol("age"))
}

func TestType_New(t *testing.T) {
	typ := newPerson(t)

	testCases := []struct {
		name     string
		values   []any
		expected []any
	}{
		{name: "no values", values: nil, expected: []any{nil, nil}},
		{name: "partial", values: []any{"Ann"}, expected: []any{"Ann", nil}},
		{name: "full", values: []any{"Ann", 30}, expected: []any{"Ann", 30}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := typ.New(tc.values...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, r.ToSlice())
			assert.Same(t, typ, r.Type())
		})
	}
}

func TestType_NewArityError(t *testing.T) {
	typ := NewFactory(nil, nil).New("point", Symbol("x"), Symbol("y"))

	r, err := typ.New(1, 2, 3)

	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, ErrArity))

	var arityErr *ArityError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, "Point", arityErr.Type)
	assert.Equal(t, 3, arityErr.Given)
	assert.Equal(t, 2, arityErr.Max)
	assert.Contains(t, err.Error(), "given 3, expected at most 2")

	assert.Panics(t, func() { typ.MustNew(1, 2, 3) })
}

func TestType_NewWithNoFields(t *testing.T) {
	typ := NewFactory(nil, nil).New()

	r, err := typ.New()
	require.NoError(t, err)
	assert.Equal(t, 0, r.Size())

	_, err = typ.New(1)
	assert.ErrorIs(t, err, ErrArity)
}

func TestInstance_Get(t *testing.T) {
	r := newPerson(t).MustNew("Ann", 30)

	testCases := []struct {
		name     string
		key      any
		expected any
	}{
		{name: "symbol", key: Symbol("name"), expected: "Ann"},
		{name: "string", key: "age", expected: 30},
		{name: "first position", key: 0, expected: "Ann"},
		{name: "second position", key: 1, expected: 30},
		{name: "int64 position", key: int64(1), expected: 30},
		{name: "negative position", key: -1, expected: 30},
		{name: "out of range", key: 2, expected: nil},
		{name: "negative out of range", key: -3, expected: nil},
		{name: "uint64 beyond int range", key: uint64(math.MaxUint64), expected: nil},
		{name: "uint beyond int range", key: uint(math.MaxUint), expected: nil},
		{name: "int64 min", key: int64(math.MinInt64), expected: nil},
		{name: "unknown name", key: "email", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Get(tc.key))
		})
	}
}

func TestInstance_Set(t *testing.T) {
	t.Run("by name and position", func(t *testing.T) {
		r := newPerson(t).MustNew("Ann", 30)

		assert.True(t, r.Set("name", "Bob"))
		assert.True(t, r.Set(1, 31))

		assert.Equal(t, []any{"Bob", 31}, r.ToSlice())
		assert.Equal(t, []Symbol{"name", "age"}, r.Members())
	})

	t.Run("out of range position is a soft miss", func(t *testing.T) {
		r := newPerson(t).MustNew("Ann", 30)

		assert.False(t, r.Set(5, "ignored"))
		assert.False(t, r.Set(-5, "ignored"))
		assert.False(t, r.Set(uint64(math.MaxUint64), "ignored"))

		assert.Equal(t, []any{"Ann", 30}, r.ToSlice())
		assert.Equal(t, 2, r.Size())
	})

	t.Run("unknown name widens the instance only", func(t *testing.T) {
		typ := newPerson(t)
		r := typ.MustNew("Ann", 30)
		other := typ.MustNew("Ann", 30)

		assert.True(t, r.Set(Symbol("email"), "ann@example.com"))

		assert.Equal(t, 3, r.Size())
		assert.Equal(t, []Symbol{"name", "age", "email"}, r.Members())
		assert.Equal(t, "ann@example.com", r.Get(2))
		assert.Equal(t, []Symbol{"name", "age"}, typ.Fields(), "the declared shape never changes")
		assert.Equal(t, 2, other.Size(), "sibling instances are unaffected")
	})
}

func TestInstance_String(t *testing.T) {
	point := NewFactory(nil, nil).New("point", Symbol("x"), Symbol("label"))
	assert.Equal(t, `#<struct Point x=1, label="a">`, point.MustNew(1, "a").String())
	assert.Equal(t, `#<struct Point x=nil, label=nil>`, point.MustNew().String())

	anon := NewFactory(nil, nil).New(Symbol("v"))
	assert.Equal(t, `#<struct v=:sym>`, anon.MustNew(Symbol("sym")).String())
	assert.Equal(t, "Point(x, label)", point.String())
	assert.Equal(t, "#<record>(v)", anon.String())
}
