package i18n

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Param declares one argument of a message definition. Type is optional;
// when set, Definition.Bind rejects values that are not assignable to it.
type Param struct {
	Name string
	Type reflect.Type
}

// P declares an untyped parameter.
func P(name string) Param {
	return Param{Name: name}
}

// Typed declares a parameter that only accepts values assignable to T.
func Typed[T any](name string) Param {
	return Param{Name: name, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// Definition declares a translation id together with its argument schema.
// Declare once, bind many times: Bind validates arity and types at the
// declaration boundary and produces messages with named arguments, so
// patterns can reference parameters by name instead of position.
type Definition struct {
	id     string
	params []Param
}

// ID returns the translation id of the definition.
func (d *Definition) ID() string { return d.id }

// Params returns the declared parameters in order.
func (d *Definition) Params() []Param {
	out := make([]Param, len(d.params))
	copy(out, d.params)
	return out
}

// Bind builds a Message from positional values matched against the declared
// parameters. Each value is bound under its parameter's name. Values may be
// wrapped with Opt to attach formatter options.
func (d *Definition) Bind(values ...any) (Message, error) {
	if len(values) != len(d.params) {
		return Message{}, fmt.Errorf("%w: %q takes %d, got %d",
			ErrArityMismatch, d.id, len(d.params), len(values))
	}

	args := make([]any, len(values))
	for i, v := range values {
		p := d.params[i]

		raw := v
		if o, ok := raw.(Optioned); ok {
			raw = o.Value
		}
		if p.Type != nil && raw != nil && !reflect.TypeOf(raw).AssignableTo(p.Type) {
			return Message{}, fmt.Errorf("%w: parameter %q of %q wants %s, got %T",
				ErrParamType, p.Name, d.id, p.Type, raw)
		}

		args[i] = Named(p.Name, v)
	}

	return Bind(d.id, args...)
}

// MustBind is like Bind but panics on error.
func (d *Definition) MustBind(values ...any) Message {
	m, err := d.Bind(values...)
	if err != nil {
		panic(err)
	}
	return m
}

// Catalog collects message definitions in one place. Report tooling uses it
// to enumerate every id an application can produce, which is what makes
// "translation missing for locale X" reports possible without scanning code.
type Catalog struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{defs: make(map[string]*Definition)}
}

// Define registers a message definition. Defining the same id twice fails
// with ErrRedefined; duplicate parameter names fail with ErrDuplicateKey.
func (c *Catalog) Define(id string, params ...Param) (*Definition, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if p.Name == "" {
			return nil, fmt.Errorf("%w (definition %q)", ErrEmptyKey, id)
		}
		if seen[p.Name] {
			return nil, &DuplicateKeyError{ID: id, Key: p.Name}
		}
		seen[p.Name] = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.defs[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrRedefined, id)
	}

	d := &Definition{id: id, params: params}
	c.defs[id] = d
	return d, nil
}

// MustDefine is like Define but panics on error. Intended for package-level
// definition variables.
func (c *Catalog) MustDefine(id string, params ...Param) *Definition {
	d, err := c.Define(id, params...)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the definition for an id.
func (c *Catalog) Lookup(id string) (*Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.defs[id]
	return d, ok
}

// IDs returns all defined translation ids, sorted.
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.defs))
	for id := range c.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
