package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ilslv/cucumber-expressions-1/pattern"
)

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag `help:"Print version and exit."`
		Types   string           `short:"t" type:"existingfile" placeholder:"FILE" help:"YAML file of custom parameter types (name: regexp)."`

		Parse parseCmd `cmd:"" help:"Parse an expression and print its syntax tree."`
		Regex regexCmd `cmd:"" help:"Compile an expression to an anchored regular expression."`
		Match matchCmd `cmd:"" help:"Match sentences against an expression."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A command-line tool for Cucumber expressions.`),
		kong.Vars{"version": version},
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}

// resolver builds the parameter type resolver for this invocation: the
// built in types, extended by the --types file when given.
func resolver() (pattern.Resolver, error) {
	if cli.Types == "" {
		return pattern.BuiltinTypes(), nil
	}
	data, err := os.ReadFile(cli.Types)
	if err != nil {
		return nil, err
	}
	types := map[string]string{}
	if err := yaml.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("%s: %w", cli.Types, err)
	}
	return pattern.CustomTypes(types), nil
}
