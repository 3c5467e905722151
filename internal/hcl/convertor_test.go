package hcl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/recordkit/internal/record"
	"github.com/zclconf/go-cty/cty"
)

func TestConverter_ToCtyValue(t *testing.T) {
	c := NewConverter()
	f := record.NewFactory(nil, nil)
	inner := f.New(record.Symbol("v"))
	outer := f.New(record.Symbol("name"), record.Symbol("n"), record.Symbol("missing"), record.Symbol("inner"), record.Symbol("tags"))

	r := outer.MustNew("Ann", 3, nil, inner.MustNew(true), []any{"a", record.Symbol("b")})

	val, err := c.ToCtyValue(r)
	require.NoError(t, err)
	require.True(t, val.Type().IsObjectType())

	assert.True(t, val.GetAttr("name").RawEquals(cty.StringVal("Ann")))
	assert.True(t, val.GetAttr("n").RawEquals(cty.NumberIntVal(3)))
	assert.True(t, val.GetAttr("missing").IsNull())
	assert.True(t, val.GetAttr("inner").GetAttr("v").RawEquals(cty.True))
	assert.True(t, val.GetAttr("tags").RawEquals(cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})))
}

func TestConverter_ToCtyValueUnsupported(t *testing.T) {
	c := NewConverter()
	r := record.NewFactory(nil, nil).New(record.Symbol("ch")).MustNew(make(chan int))

	_, err := c.ToCtyValue(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "ch"`)
}

func TestConverter_FromCtyValue(t *testing.T) {
	c := NewConverter()

	testCases := []struct {
		name     string
		in       cty.Value
		expected any
	}{
		{name: "null", in: cty.NullVal(cty.String), expected: nil},
		{name: "unknown", in: cty.UnknownVal(cty.String), expected: nil},
		{name: "string", in: cty.StringVal("hi"), expected: "hi"},
		{name: "whole number", in: cty.NumberIntVal(42), expected: 42},
		{name: "fraction", in: cty.NumberFloatVal(1.5), expected: 1.5},
		{name: "bool", in: cty.False, expected: false},
		{
			name:     "tuple",
			in:       cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(1)}),
			expected: []any{"a", 1},
		},
		{
			name:     "object",
			in:       cty.ObjectVal(map[string]cty.Value{"k": cty.ListVal([]cty.Value{cty.True})}),
			expected: map[string]any{"k": []any{true}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.FromCtyValue(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
