package catalog

import "fmt"

// Catalog holds the tool registry and its dispatch table.
// It is immutable once created and safe for concurrent use: accessors return copies.
type Catalog struct {
	tools   []*Descriptor
	entries map[string]*Entry
	byName  map[string]*Descriptor
}

// New creates a catalog from declarations, preserving their order.
func New(declarations []*Declaration) (*Catalog, error) {
	ret := &Catalog{
		tools:   make([]*Descriptor, 0, len(declarations)),
		entries: make(map[string]*Entry, len(declarations)),
		byName:  make(map[string]*Descriptor, len(declarations)),
	}
	for i, decl := range declarations {
		if decl == nil {
			return nil, fmt.Errorf("declaration %d was nil", i)
		}
		if err := decl.validate(); err != nil {
			return nil, err
		}
		if _, ok := ret.byName[decl.Name]; ok {
			return nil, fmt.Errorf("duplicate tool %v", decl.Name)
		}
		descriptor := decl.Descriptor.clone()
		ret.tools = append(ret.tools, descriptor)
		ret.byName[decl.Name] = descriptor
		ret.entries[decl.Name] = &Entry{Tool: decl.Name, Method: decl.Method, Policy: decl.Policy}
	}
	return ret, nil
}

// Tools returns descriptors in declaration order.
func (c *Catalog) Tools() []*Descriptor {
	result := make([]*Descriptor, len(c.tools))
	for i, descriptor := range c.tools {
		result[i] = descriptor.clone()
	}
	return result
}

// Descriptor returns a tool descriptor by name.
func (c *Catalog) Descriptor(name string) (*Descriptor, bool) {
	ret, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return ret.clone(), true
}

// Entry returns a dispatch entry by tool name.
func (c *Catalog) Entry(name string) (*Entry, bool) {
	ret, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	entry := *ret
	return &entry, true
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}
