package record

import "fmt"

// Method is an operation in a type's method table. self is the receiving
// instance.
type Method func(self *Instance, args ...any) (any, error)

// reader returns the accessor method that reads field.
func reader(field Symbol) Method {
	return func(self *Instance, args ...any) (any, error) {
		if err := wantArgs(string(field), args, 0); err != nil {
			return nil, err
		}
		return self.Get(field), nil
	}
}

// writer returns the accessor method that writes field and yields the value.
func writer(field Symbol) Method {
	name := string(field) + "="
	return func(self *Instance, args ...any) (any, error) {
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		self.Set(field, args[0])
		return args[0], nil
	}
}

// builtins is copied into every new type's method table.
var builtins = map[string]Method{
	"get": func(self *Instance, args ...any) (any, error) {
		if err := wantArgs("get", args, 1); err != nil {
			return nil, err
		}
		return self.Get(args[0]), nil
	},
	"set": func(self *Instance, args ...any) (any, error) {
		if err := wantArgs("set", args, 2); err != nil {
			return nil, err
		}
		self.Set(args[0], args[1])
		return args[1], nil
	},
	"each": func(self *Instance, args ...any) (any, error) {
		visit, err := argAs[func(any) any]("each", args)
		if err != nil {
			return nil, err
		}
		return self.Each(visit), nil
	},
	"each_pair": func(self *Instance, args ...any) (any, error) {
		visit, err := argAs[func(Symbol, any) any]("each_pair", args)
		if err != nil {
			return nil, err
		}
		return self.EachPair(visit), nil
	},
	"dig": func(self *Instance, args ...any) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: dig: at least 1 argument required", ErrBadArgument)
		}
		return self.Dig(args[0], args[1:]...), nil
	},
	"size":   sizeMethod,
	"length": sizeMethod,
	"members": func(self *Instance, args ...any) (any, error) {
		if err := wantArgs("members", args, 0); err != nil {
			return nil, err
		}
		return self.Members(), nil
	},
	"select": func(self *Instance, args ...any) (any, error) {
		keep, err := argAs[func(any) bool]("select", args)
		if err != nil {
			return nil, err
		}
		return self.Select(keep), nil
	},
	"to_a": func(self *Instance, args ...any) (any, error) {
		if err := wantArgs("to_a", args, 0); err != nil {
			return nil, err
		}
		return self.ToSlice(), nil
	},
	"values_at": func(self *Instance, args ...any) (any, error) {
		indices := make([]int, len(args))
		for i, a := range args {
			idx, ok := asIndex(a)
			if !ok {
				return nil, fmt.Errorf("%w: values_at: index %d is %T, not an integer", ErrBadArgument, i, a)
			}
			indices[i] = idx
		}
		return self.ValuesAt(indices...), nil
	},
	"equal": equalMethod,
	"eql":   equalMethod,
}

func sizeMethod(self *Instance, args ...any) (any, error) {
	if err := wantArgs("size", args, 0); err != nil {
		return nil, err
	}
	return self.Size(), nil
}

func equalMethod(self *Instance, args ...any) (any, error) {
	if err := wantArgs("equal", args, 1); err != nil {
		return nil, err
	}
	other, ok := args[0].(*Instance)
	return ok && self.Equal(other), nil
}

func wantArgs(name string, args []any, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s: given %d arguments, expected %d", ErrBadArgument, name, len(args), n)
	}
	return nil
}

func argAs[T any](name string, args []any) (T, error) {
	var zero T
	if err := wantArgs(name, args, 1); err != nil {
		return zero, err
	}
	v, ok := args[0].(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s: expected %T, got %T", ErrBadArgument, name, zero, args[0])
	}
	return v, nil
}

// Call invokes the named method from the instance's type. Caller-defined
// methods shadow built-ins of the same name.
func (r *Instance) Call(name string, args ...any) (any, error) {
	m, ok := r.typ.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w %q for %s", ErrUnknownMethod, name, r.typ)
	}
	return m(r, args...)
}

// RespondsTo reports whether Call would find name.
func (r *Instance) RespondsTo(name string) bool {
	return r.typ.HasMethod(name)
}
