package elox

import "fmt"

// Environment is one scope in the chain of lexical scopes. Lookups walk from
// the innermost scope outward and stop at the first match.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]interface{})}
}

// Define binds a name in this scope. The first declaration of a name wins;
// defining an already-bound name in the same scope is a no-op.
func (env *Environment) Define(name string, value interface{}) {
	if _, ok := env.values[name]; ok {
		return
	}
	env.values[name] = value
}

// Assign mutates the innermost existing binding of the name. Assignment
// never creates a binding; a name that is bound nowhere in the chain is a
// NameError.
func (env *Environment) Assign(name *Token, value interface{}) error {
	if _, ok := env.values[name.Lexeme]; ok {
		env.values[name.Lexeme] = value
		return nil
	}
	if env.enclosing != nil {
		return env.enclosing.Assign(name, value)
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return newNameError(name, msg)
}

func (env *Environment) Get(name *Token) (interface{}, error) {
	if value, ok := env.values[name.Lexeme]; ok {
		return value, nil
	}
	if env.enclosing != nil {
		return env.enclosing.Get(name)
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return nil, newNameError(name, msg)
}

// IsDefined reports whether the name is bound anywhere in the chain.
func (env *Environment) IsDefined(name string) bool {
	if _, ok := env.values[name]; ok {
		return true
	}
	if env.enclosing != nil {
		return env.enclosing.IsDefined(name)
	}
	return false
}

// rebind forcibly sets a name in this scope, bypassing the first-wins rule.
// Used for the interpreter-maintained '_' binding.
func (env *Environment) rebind(name string, value interface{}) {
	env.values[name] = value
}
