package eval

import "sort"

// Env is the symbol table: a single flat scope that lives as long as the
// interpreter owning it.
type Env struct {
	Globals map[string]Value
}

func NewEnv() *Env {
	return &Env{
		Globals: map[string]Value{},
	}
}

// Define binds name to val, replacing any previous binding.
func (env *Env) Define(name string, val Value) {
	env.Globals[name] = val
}

func (env *Env) Retrieve(name string) (Value, bool) {
	val, ok := env.Globals[name]
	return val, ok
}

// Keys returns the bound names in sorted order.
func (env *Env) Keys() []string {
	keys := make([]string, 0, len(env.Globals))
	for k := range env.Globals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
