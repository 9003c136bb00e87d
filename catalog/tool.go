package catalog

import "fmt"

// Policy controls how caller arguments become JSON-RPC params.
type Policy string

const (
	// PolicyPassthrough forwards caller arguments verbatim, {} when none were given.
	PolicyPassthrough Policy = "passthrough"
	// PolicyEmpty ignores caller arguments and omits params.
	PolicyEmpty Policy = "empty"
	// PolicyOptional forwards caller arguments only when at least one was given.
	PolicyOptional Policy = "optional"
)

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	switch p {
	case PolicyPassthrough, PolicyEmpty, PolicyOptional:
		return true
	}
	return false
}

// Parameter describes one named tool argument.
type Parameter struct {
	Name        string         `yaml:"name" json:"name"`
	Type        string         `yaml:"type" json:"type"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Default     interface{}    `yaml:"default,omitempty" json:"default,omitempty"`
	Required    bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Items       map[string]any `yaml:"items,omitempty" json:"items,omitempty"`
	Properties  map[string]any `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// Schema returns the JSON schema fragment of the parameter.
func (p *Parameter) Schema() map[string]interface{} {
	result := map[string]interface{}{"type": p.Type}
	if p.Description != "" {
		result["description"] = p.Description
	}
	if p.Default != nil {
		result["default"] = p.Default
	}
	if len(p.Items) > 0 {
		result["items"] = cloneValue(p.Items)
	}
	if len(p.Properties) > 0 {
		result["properties"] = cloneValue(p.Properties)
	}
	return result
}

func (p *Parameter) clone() *Parameter {
	ret := *p
	ret.Default = cloneValue(p.Default)
	if p.Items != nil {
		ret.Items = cloneValue(p.Items).(map[string]any)
	}
	if p.Properties != nil {
		ret.Properties = cloneValue(p.Properties).(map[string]any)
	}
	return &ret
}

// Descriptor is the advertised definition of a tool.
type Descriptor struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

func (d *Descriptor) clone() *Descriptor {
	ret := *d
	if d.Parameters != nil {
		ret.Parameters = make([]*Parameter, len(d.Parameters))
		for i, param := range d.Parameters {
			ret.Parameters[i] = param.clone()
		}
	}
	return &ret
}

// cloneValue deep copies decoded YAML/JSON values.
func cloneValue(value interface{}) interface{} {
	switch actual := value.(type) {
	case map[string]interface{}:
		ret := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			ret[k] = cloneValue(v)
		}
		return ret
	case []interface{}:
		ret := make([]interface{}, len(actual))
		for i, v := range actual {
			ret[i] = cloneValue(v)
		}
		return ret
	}
	return value
}

// InputSchema is the object schema of the tool arguments.
type InputSchema struct {
	Type       string
	Properties map[string]map[string]interface{}
	Required   []string
}

// InputSchema returns the descriptor arguments as an object schema.
// Required is never nil so that it serializes as an empty list.
func (d *Descriptor) InputSchema() *InputSchema {
	result := &InputSchema{
		Type:       "object",
		Properties: make(map[string]map[string]interface{}, len(d.Parameters)),
		Required:   []string{},
	}
	for _, param := range d.Parameters {
		result.Properties[param.Name] = param.Schema()
		if param.Required {
			result.Required = append(result.Required, param.Name)
		}
	}
	return result
}

// Declaration is a single catalog entry: a descriptor plus its dispatch rule.
type Declaration struct {
	Descriptor `yaml:",inline"`
	Method     string `yaml:"method"`
	Policy     Policy `yaml:"policy"`
}

func (d *Declaration) validate() error {
	if d.Name == "" {
		return fmt.Errorf("tool name was empty")
	}
	if d.Method == "" {
		return fmt.Errorf("tool %v: method was empty", d.Name)
	}
	if !d.Policy.Valid() {
		return fmt.Errorf("tool %v: unsupported policy %q", d.Name, d.Policy)
	}
	seen := make(map[string]bool, len(d.Parameters))
	for _, param := range d.Parameters {
		if param == nil || param.Name == "" {
			return fmt.Errorf("tool %v: parameter name was empty", d.Name)
		}
		if param.Type == "" {
			return fmt.Errorf("tool %v: parameter %v: type was empty", d.Name, param.Name)
		}
		if seen[param.Name] {
			return fmt.Errorf("tool %v: duplicate parameter %v", d.Name, param.Name)
		}
		seen[param.Name] = true
	}
	return nil
}

// Entry is the dispatch rule of a tool.
type Entry struct {
	Tool   string
	Method string
	Policy Policy
}
