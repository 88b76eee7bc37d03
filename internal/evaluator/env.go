package evaluator

// Env is the per-run evaluation environment: declared variables and
// imported module names. It is created fresh for every Run call and
// discarded afterwards; nothing in it is ever persisted.
type Env struct {
	vars    map[string]Value
	imports map[string]bool
}

// NewEnv creates an empty environment
func NewEnv() *Env {
	return &Env{
		vars:    make(map[string]Value),
		imports: make(map[string]bool),
	}
}

// Set declares or overwrites a variable
func (e *Env) Set(name string, v Value) {
	e.vars[name] = v
}

// Get looks up a variable
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Import records a module as imported
func (e *Env) Import(module string) {
	e.imports[module] = true
}

// Imported reports whether a module's import line was matched earlier in
// the buffer
func (e *Env) Imported(module string) bool {
	return e.imports[module]
}
