package registry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/recordkit/internal/config"
	"github.com/vk/recordkit/internal/ctxlog"
	"github.com/vk/recordkit/internal/record"
	"github.com/zclconf/go-cty/cty"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRegistry_BindAndLookup(t *testing.T) {
	var buf bytes.Buffer
	reg := New(testLogger(&buf))
	f := record.NewFactory(nil, reg)

	point := f.New("point", record.Symbol("x"), record.Symbol("y"))
	f.New(record.Symbol("anonymous"))

	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, []string{"Point"}, reg.Names())

	got, ok := reg.Lookup("Point")
	require.True(t, ok)
	assert.Same(t, point, got)

	got, ok = reg.Lookup("point")
	require.True(t, ok, "lookups are normalized like bindings")
	assert.Same(t, point, got)

	_, ok = reg.Lookup("Missing")
	assert.False(t, ok)

	p, err := got.New(1, 2)
	require.NoError(t, err)
	assert.True(t, p.Equal(point.MustNew(1, 2)))
	assert.False(t, p.Equal(point.MustNew(1, 3)))
}

func TestRegistry_RebindReplacesAndWarns(t *testing.T) {
	var buf bytes.Buffer
	reg := New(testLogger(&buf))
	f := record.NewFactory(nil, reg)

	first := f.New("Point", record.Symbol("x"))
	second := f.New("POINT", record.Symbol("x"), record.Symbol("y"))

	got, ok := reg.Lookup("Point")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.NotSame(t, first, got)
	assert.Equal(t, 1, reg.Len())
	assert.Contains(t, buf.String(), "already bound")
}

func TestRegistry_RegisterMethod(t *testing.T) {
	reg := New(nil)
	m := func(self *record.Instance, args ...any) (any, error) { return "ok", nil }

	reg.RegisterMethod("Hello", m)
	got, ok := reg.Method("Hello")
	require.True(t, ok)
	v, err := got(nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	assert.Panics(t, func() { reg.RegisterMethod("Hello", m) })
	assert.Panics(t, func() { reg.RegisterMethod("Nil", nil) })
}

func staticExpr() hcl.Expression {
	return hcl.StaticExpr(cty.StringVal("x"), hcl.Range{})
}

func TestRegistry_ValidateDefinitions(t *testing.T) {
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	reg := New(nil)
	reg.RegisterMethod("Known", func(self *record.Instance, args ...any) (any, error) { return nil, nil })

	t.Run("valid", func(t *testing.T) {
		model := &config.Model{Records: []*config.RecordDefinition{{
			Name:   "point",
			Fields: []string{"x"},
			Methods: []*config.MethodDefinition{
				{Name: "a", Handler: "Known"},
				{Name: "b", Expr: staticExpr()},
			},
		}}}
		require.NoError(t, reg.ValidateDefinitions(ctx, model))
	})

	t.Run("invalid", func(t *testing.T) {
		model := &config.Model{Records: []*config.RecordDefinition{{
			Name:   "point",
			Source: "defs.hcl",
			Fields: []string{"x"},
			Methods: []*config.MethodDefinition{
				{Name: "missing", Handler: "Unknown"},
				{Name: "both", Handler: "Known", Expr: staticExpr()},
				{Name: "neither"},
				{Name: "missing", Handler: "Known"},
			},
		}}}

		err := reg.ValidateDefinitions(ctx, model)
		require.Error(t, err)
		msg := err.Error()
		assert.Contains(t, msg, "handler 'Unknown' which is not registered")
		assert.Contains(t, msg, "sets both 'handler' and 'expr'")
		assert.Contains(t, msg, "needs either 'handler' or 'expr'")
		assert.Contains(t, msg, "declared more than once")
	})

	t.Run("unregistered handler shared by records", func(t *testing.T) {
		model := &config.Model{Records: []*config.RecordDefinition{
			{Name: "point", Fields: []string{"x"}, Methods: []*config.MethodDefinition{{Name: "a", Handler: "Gone"}}},
			{Name: "line", Fields: []string{"x"}, Methods: []*config.MethodDefinition{
				{Name: "b", Handler: "Gone"},
				{Name: "c", Handler: "Known"},
			}},
		}}

		err := reg.ValidateDefinitions(ctx, model)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 'point' (): method 'a' refers to handler 'Gone'")
		assert.Contains(t, err.Error(), "record 'line' (): method 'b' refers to handler 'Gone'")
		assert.NotContains(t, err.Error(), "'Known'")
	})
}

func TestRegistry_DefineRecords(t *testing.T) {
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	reg := New(nil)
	reg.RegisterMethod("Sum", func(self *record.Instance, args ...any) (any, error) {
		return self.Get("x").(int) + self.Get("y").(int), nil
	})
	f := record.NewFactory(nil, reg)

	expr, diags := hclsyntax.ParseExpression([]byte(`"const"`), "t.hcl", hcl.Pos{Line: 1, Column: 1})
	require.False(t, diags.HasErrors())

	var compiled int
	compile := func(e hcl.Expression) record.Method {
		compiled++
		return func(self *record.Instance, args ...any) (any, error) { return "compiled", nil }
	}

	model := &config.Model{Records: []*config.RecordDefinition{
		{
			Name:   "point",
			Fields: []string{"x", "y"},
			Methods: []*config.MethodDefinition{
				{Name: "sum", Handler: "Sum"},
				{Name: "size", Expr: expr},
			},
		},
		{Fields: []string{"a"}},
	}}

	types, err := reg.DefineRecords(ctx, f, model, compile)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, 1, compiled)
	assert.Equal(t, 1, reg.Len(), "anonymous definitions are created but not bound")
	assert.Equal(t, "", types[1].Name())

	point, ok := reg.Lookup("Point")
	require.True(t, ok)
	assert.Same(t, types[0], point)

	p := point.MustNew(2, 3)
	sum, err := p.Call("sum")
	require.NoError(t, err)
	assert.Equal(t, 5, sum)

	size, err := p.Call("size")
	require.NoError(t, err)
	assert.Equal(t, "compiled", size, "definitions shadow built-ins")
	assert.Equal(t, 2, p.Size())

	t.Run("unregistered handler", func(t *testing.T) {
		bad := &config.Model{Records: []*config.RecordDefinition{{
			Name:    "broken",
			Fields:  []string{"x"},
			Methods: []*config.MethodDefinition{{Name: "m", Handler: "Nope"}},
		}}}
		_, err := reg.DefineRecords(ctx, f, bad, compile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `handler "Nope" is not registered`)
	})
}
