package pattern

// A Resolver supplies the regular expression fragment for a named
// parameter type. Fragments must not contain capturing groups of their
// own; the compiler wraps each occurrence in exactly one.
type Resolver interface {
	Resolve(name string) (pattern string, ok bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (string, bool)

func (f ResolverFunc) Resolve(name string) (string, bool) { return f(name) }

// The built in parameter types. int and float carry the aliases the
// wider Cucumber family defines for them; the anonymous type has the
// empty name. float differs from other implementations in being
// written without lookaheads, which RE2 does not support.
var builtins = map[string]string{
	"int":        `(?:-?\d+)|(?:\d+)`,
	"biginteger": `(?:-?\d+)|(?:\d+)`,
	"byte":       `(?:-?\d+)|(?:\d+)`,
	"short":      `(?:-?\d+)|(?:\d+)`,
	"long":       `(?:-?\d+)|(?:\d+)`,
	"float":      `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`,
	"double":     `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`,
	"bigdecimal": `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`,
	"word":       `[^\s]+`,
	"string":     `"(?:[^"\\]*(?:\\.[^"\\]*)*)"|'(?:[^'\\]*(?:\\.[^'\\]*)*)'`,
	"":           `.*`,
}

type builtinResolver struct{}

func (builtinResolver) Resolve(name string) (string, bool) {
	pattern, ok := builtins[name]
	return pattern, ok
}

// BuiltinTypes returns the resolver holding the standard parameter
// types: int, float, word, string, the numeric aliases biginteger,
// bigdecimal, byte, short, long and double, and the anonymous type.
func BuiltinTypes() Resolver {
	return builtinResolver{}
}

type customResolver map[string]string

func (c customResolver) Resolve(name string) (string, bool) {
	if pattern, ok := c[name]; ok {
		return pattern, true
	}
	return builtinResolver{}.Resolve(name)
}

// CustomTypes returns a resolver that consults types first and falls
// back to the built in table. The map is copied once at construction;
// the result is immutable and safe for concurrent use.
func CustomTypes(types map[string]string) Resolver {
	copied := make(customResolver, len(types))
	for name, pattern := range types {
		copied[name] = pattern
	}
	return copied
}
