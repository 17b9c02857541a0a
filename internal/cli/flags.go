package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// parsedValue is a pflag.Value that validates its input with parse when the
// flag is set, so bad values are reported by flag parsing.
type parsedValue[T ~string] struct {
	value   *T
	parse   func(string) (T, error)
	choices []string
}

var _ pflag.Value = (*parsedValue[string])(nil)

func newParsedValue[T ~string](def T, p *T, parse func(string) (T, error), choices []string) *parsedValue[T] {
	*p = def
	return &parsedValue[T]{value: p, parse: parse, choices: choices}
}

func (v *parsedValue[T]) Set(s string) error {
	parsed, err := v.parse(s)
	if err != nil {
		return err
	}
	*v.value = parsed
	return nil
}

func (v *parsedValue[T]) String() string {
	if v.value == nil {
		return ""
	}
	return string(*v.value)
}

func (v *parsedValue[T]) Type() string {
	if len(v.choices) > 0 && len(v.choices) <= 3 {
		return strings.Join(v.choices, "|")
	}
	return "string"
}
