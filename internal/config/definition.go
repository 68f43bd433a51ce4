package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vietdv277/scalekit/internal/provision"
)

// Definition describes one autoscaling group in a YAML file:
//
//	name: MyWebApp
//	region: us-east-1
//	action: create_with_overwrite
//	group:
//	  zones: [us-east-1b]
//	  max_size: 3
//	policies:
//	  - name: plus-one-instance
//	    scaling: 1
//
// Keys left out keep their defaults.
type Definition struct {
	Name     string             `yaml:"name"`
	Region   string             `yaml:"region"`
	Action   string             `yaml:"action"`
	Group    provision.Config   `yaml:"group"`
	Policies []PolicyDefinition `yaml:"policies"`
}

// PolicyDefinition is a named scaling policy of a Definition
type PolicyDefinition struct {
	Name                   string `yaml:"name"`
	provision.PolicyConfig `yaml:",inline"`
}

var policyKeys = map[string]bool{
	"name":            true,
	"adjustment_type": true,
	"scaling":         true,
	"cooldown":        true,
}

// UnmarshalYAML fills the policy defaults before decoding the node
func (p *PolicyDefinition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: a policy must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if !policyKeys[key.Value] {
			return fmt.Errorf("line %d: field %s not found in policy", key.Line, key.Value)
		}
	}

	type plain PolicyDefinition
	raw := plain{PolicyConfig: provision.DefaultPolicyConfig()}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = PolicyDefinition(raw)
	return nil
}

// DecodeDefinition reads a definition from r onto the default configuration.
// Unknown keys are rejected.
func DecodeDefinition(r io.Reader) (*Definition, error) {
	def := &Definition{Group: provision.DefaultConfig()}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty definition", provision.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}

	if def.Name == "" {
		return nil, fmt.Errorf("%w: definition has no name", provision.ErrInvalidConfig)
	}
	if def.Action != "" {
		if _, err := provision.ParseAction(def.Action); err != nil {
			return nil, err
		}
	}

	return def, nil
}

// LoadDefinition reads a definition file. A relative user_data_file is
// resolved against the directory of the definition.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	def, err := DecodeDefinition(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if f := def.Group.UserDataFile; f != "" && !filepath.IsAbs(f) {
		def.Group.UserDataFile = filepath.Join(filepath.Dir(path), f)
	}

	return def, nil
}

// ParsedAction returns the action of the definition, or fallback when none is set
func (d *Definition) ParsedAction(fallback provision.Action) (provision.Action, error) {
	if d.Action == "" {
		return fallback, nil
	}
	return provision.ParseAction(d.Action)
}

// Configure copies the definition onto an open group and registers its policies
func (d *Definition) Configure(g *provision.Group) error {
	*g.Config() = d.Group

	for _, p := range d.Policies {
		cfg := p.PolicyConfig
		if err := g.Policy(p.Name, func(c *provision.PolicyConfig) { *c = cfg }); err != nil {
			return err
		}
	}

	return nil
}
