package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilslv/cucumber-expressions-1/pattern"
)

func TestBuiltinTypes(t *testing.T) {
	builtins := pattern.BuiltinTypes()

	fragment, ok := builtins.Resolve("int")
	require.True(t, ok)
	require.Equal(t, `(?:-?\d+)|(?:\d+)`, fragment)

	// The numeric aliases share the int and float fragments.
	for _, alias := range []string{"biginteger", "byte", "short", "long"} {
		aliased, ok := builtins.Resolve(alias)
		require.True(t, ok, alias)
		require.Equal(t, fragment, aliased, alias)
	}
	floatFragment, ok := builtins.Resolve("float")
	require.True(t, ok)
	for _, alias := range []string{"double", "bigdecimal"} {
		aliased, ok := builtins.Resolve(alias)
		require.True(t, ok, alias)
		require.Equal(t, floatFragment, aliased, alias)
	}

	// The anonymous type is the empty name.
	fragment, ok = builtins.Resolve("")
	require.True(t, ok)
	require.Equal(t, ".*", fragment)

	_, ok = builtins.Resolve("unknownType")
	require.False(t, ok)
}

func TestCustomTypes(t *testing.T) {
	types := map[string]string{
		"color": "red|green|blue",
		"int":   `\d`,
	}
	resolver := pattern.CustomTypes(types)

	fragment, ok := resolver.Resolve("color")
	require.True(t, ok)
	require.Equal(t, "red|green|blue", fragment)

	// Custom registrations shadow the built in table.
	fragment, ok = resolver.Resolve("int")
	require.True(t, ok)
	require.Equal(t, `\d`, fragment)

	// Unshadowed built ins remain reachable.
	fragment, ok = resolver.Resolve("word")
	require.True(t, ok)
	require.Equal(t, `[^\s]+`, fragment)

	_, ok = resolver.Resolve("unknownType")
	require.False(t, ok)
}

func TestCustomTypesCopiesTheMap(t *testing.T) {
	types := map[string]string{"color": "red"}
	resolver := pattern.CustomTypes(types)
	types["color"] = "blue"
	delete(types, "color")

	fragment, ok := resolver.Resolve("color")
	require.True(t, ok)
	require.Equal(t, "red", fragment)
}

func TestResolverFunc(t *testing.T) {
	resolver := pattern.ResolverFunc(func(name string) (string, bool) {
		if name == "digits" {
			return `\d+`, true
		}
		return "", false
	})
	fragment, ok := resolver.Resolve("digits")
	require.True(t, ok)
	require.Equal(t, `\d+`, fragment)
	_, ok = resolver.Resolve("int")
	require.False(t, ok)
}
