package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownTool is returned when a tool name has no catalog entry.
var ErrUnknownTool = errors.New("unknown tool")

// Call is a resolved JSON-RPC call. Nil Params means the params field is omitted.
type Call struct {
	Method string
	Params json.RawMessage
}

// Resolve maps a tool invocation to its JSON-RPC method and params.
func (c *Catalog) Resolve(name string, args map[string]interface{}) (*Call, error) {
	entry, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	call := &Call{Method: entry.Method}
	switch entry.Policy {
	case PolicyEmpty:
		return call, nil
	case PolicyOptional:
		if len(args) == 0 {
			return call, nil
		}
	case PolicyPassthrough:
		if args == nil {
			args = map[string]interface{}{}
		}
	default:
		return nil, fmt.Errorf("tool %v: unsupported policy %q", name, entry.Policy)
	}
	// encoding/json sorts map keys, so params are deterministic
	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("tool %v: failed to encode arguments: %w", name, err)
	}
	call.Params = data
	return call, nil
}
