package kolladm

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/kolladm/kolladm/pkg/filestore"
)

// AnsibleProperties is the deployment property file (globals.yml) handed to
// the ansible runner as extra variables. Properties are kept as written,
// values are rendered as strings on access.
type AnsibleProperties struct {
	path  string
	props map[string]interface{}
}

// LoadProperties reads the property file at path. A missing or blank file
// yields an empty property set.
func LoadProperties(path string) (*AnsibleProperties, error) {
	data, err := filestore.Read(path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}

	props := make(map[string]interface{})
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &props); err != nil {
			return nil, &PersistenceError{Op: "load", Path: path, Err: err}
		}
	}
	return &AnsibleProperties{path: path, props: props}, nil
}

// Get returns the named property rendered as a string, or "" if unset.
func (p *AnsibleProperties) Get(name string) string {
	value, ok := p.props[name]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

// Set sets a property.
func (p *AnsibleProperties) Set(name, value string) {
	p.props[name] = value
}

// Clear removes a property.
func (p *AnsibleProperties) Clear(name string) {
	delete(p.props, name)
}

// Names returns all property names, sorted.
func (p *AnsibleProperties) Names() []string {
	names := make([]string, 0, len(p.props))
	for name := range p.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the property file back atomically.
func (p *AnsibleProperties) Save() error {
	data, err := yaml.Marshal(p.props)
	if err != nil {
		return &PersistenceError{Op: "save", Path: p.path, Err: err}
	}
	if err := filestore.WriteAtomic(p.path, data, 0644); err != nil {
		return &PersistenceError{Op: "save", Path: p.path, Err: err}
	}
	return nil
}
