package variables

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Add puts a single entry into the seed, creating the seed and the scope map
// if needed, so the zero Seed is ready to use. Blank names are kept; NewStore
// is what drops them.
func (s *Seed) Add(scope Scope, name, value string, secret bool) {
	if *s == nil {
		*s = make(Seed)
	}
	if (*s)[scope] == nil {
		(*s)[scope] = make(map[string]Value)
	}
	(*s)[scope][name] = Value{Value: value, Secret: secret}
}

// AddEnvFile reads a dotenv file into scope, marking every entry with the
// given secrecy.
func (s *Seed) AddEnvFile(scope Scope, path string, secret bool) error {
	if !scope.Valid() {
		return ErrUnknownScope
	}

	vals, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading env file %q: %w", path, err)
	}

	for name, value := range vals {
		s.Add(scope, name, value, secret)
	}
	return nil
}

// LoadSeedFile reads a seed document from path. See LoadSeed.
func LoadSeedFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %q: %w", path, err)
	}
	defer f.Close()

	seed, err := LoadSeed(f)
	if err != nil {
		return nil, fmt.Errorf("parsing seed file %q: %w", path, err)
	}
	return seed, nil
}

// LoadSeed parses a YAML (or JSON) seed document. The top level keys are
// scope names, and each variable is either a plain value, which is not
// secret, or a mapping with value and secret keys:
//
//	org:
//	  DEPLOY_REGION: us-east-1
//	final:
//	  build.number: "42"
//	  NPM_TOKEN:
//	    value: npm_abc123
//	    secret: true
func LoadSeed(r io.Reader) (Seed, error) {
	var raw map[string]map[string]Value
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	seed := make(Seed, len(raw))
	for name, vars := range raw {
		scope, err := ParseScope(name)
		if err != nil {
			return nil, err
		}
		if seed[scope] == nil {
			seed[scope] = make(map[string]Value, len(vars))
		}
		for k, v := range vars {
			seed[scope][k] = v
		}
	}
	return seed, nil
}

// UnmarshalYAML accepts either a scalar (a non-secret value) or a mapping
// with value and secret keys.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*v = Value{}
			return nil
		}
		*v = Value{Value: node.Value}
		return nil

	case yaml.MappingNode:
		// An alias type avoids recursing back into this method.
		type plain Value
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*v = Value(p)
		return nil

	default:
		return fmt.Errorf("line %d: variable must be a string or a mapping with value and secret keys", node.Line)
	}
}
