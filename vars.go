package expreval

// Variable is a named cell holding at most one value. A new variable is
// unbound. Only assignment changes the value of a variable.
type Variable struct {
	name string
	val  Value
}

// Name returns the identifier of the variable.
func (v *Variable) Name() string {
	return v.name
}

// Value returns the value bound to the variable and whether there is one.
func (v *Variable) Value() (Value, bool) {
	return v.val, v.val.kind != NoValue
}

// Bound reports whether the variable holds a value.
func (v *Variable) Bound() bool {
	return v.val.kind != NoValue
}

func (v *Variable) bind(val Value) {
	v.val = val
}

// Vars is a dictionary of variables keyed by their exact names. It is shared
// by a session's tokenizer, which creates variables, and evaluator, which
// reads and assigns them. It is not safe to use a Vars concurrently.
type Vars struct {
	m map[string]*Variable
}

// NewVars creates an empty variable dictionary.
func NewVars() *Vars {
	return &Vars{m: make(map[string]*Variable)}
}

// Lookup returns the variable with the given name, or nil if there is none.
func (vs *Vars) Lookup(name string) *Variable {
	return vs.m[name]
}

// Intern returns the variable with the given name, creating an unbound one if
// it does not exist yet.
func (vs *Vars) Intern(name string) *Variable {
	if v := vs.m[name]; v != nil {
		return v
	}
	v := &Variable{name: name}
	vs.m[name] = v
	return v
}

// Set binds a value to a variable, creating the variable if needed. Setting
// the zero Value unbinds the variable.
func (vs *Vars) Set(name string, val Value) *Variable {
	v := vs.Intern(name)
	v.bind(val)
	return v
}

// Names returns the sorted names of all variables, bound or not.
func (vs *Vars) Names() []string {
	names := make([]string, 0, len(vs.m))
	for k := range vs.m {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// Len returns the number of variables.
func (vs *Vars) Len() int {
	return len(vs.m)
}

// Clone creates an independent copy of the dictionary. Values are immutable,
// so only the cells are copied.
func (vs *Vars) Clone() *Vars {
	n := &Vars{m: make(map[string]*Variable, len(vs.m))}
	for k, v := range vs.m {
		n.m[k] = &Variable{name: v.name, val: v.val}
	}
	return n
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
