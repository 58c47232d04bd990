// Package toml loads pydocs configuration files written in TOML.
//
// Keys are flag names, with dashes or underscores:
//
//	output = "pretty"
//	cache_ttl = "24h"
//	concurrency = 4
package toml

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/pydocs"
)

// Loader is a kong.ConfigurationLoader. Values from the file are used for
// flags not given on the command line or through the environment.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, pydocs.Errorf(pydocs.EINVALID, "invalid configuration: %v", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := values[key]; ok {
				return scalar(v), nil
			}
		}
		return nil, nil
	}), nil
}

// scalar converts decoded TOML values to the string form kong's mappers
// accept for every flag type.
func scalar(v any) any {
	switch v := v.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
