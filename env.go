package symdiff

// Env binds variables to numeric values for Substitute.
type Env map[Variable]Value

// EmptyEnv binds nothing. Substituting it returns an equal tree.
var EmptyEnv = Env{}

// EnvOf builds an Env from plain names.
func EnvOf(values map[string]float64) Env {
	env := make(Env, len(values))
	for name, v := range values {
		env[S(name)] = N(v)
	}
	return env
}

// Lookup returns the value bound to v, if any. A nil Env binds nothing.
func (env Env) Lookup(v Variable) (Value, bool) {
	val, ok := env[v]
	return val, ok
}

// With returns a copy of env with name bound to v.
func (env Env) With(name string, v float64) Env {
	out := make(Env, len(env)+1)
	for k, val := range env {
		out[k] = val
	}
	out[S(name)] = N(v)
	return out
}
