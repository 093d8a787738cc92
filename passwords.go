package kolladm

import (
	"sort"
	"strings"

	"github.com/pborman/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kolladm/kolladm/pkg/filestore"
)

// PasswordStore is the deployment password file (passwords.yml). Values are
// only ever listed by name, never printed.
type PasswordStore struct {
	path      string
	passwords map[string]string
}

// LoadPasswords reads the password file at path. A missing or blank file
// yields an empty store.
func LoadPasswords(path string) (*PasswordStore, error) {
	data, err := filestore.Read(path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}

	passwords := make(map[string]string)
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &passwords); err != nil {
			return nil, &PersistenceError{Op: "load", Path: path, Err: err}
		}
	}
	return &PasswordStore{path: path, passwords: passwords}, nil
}

// Get returns the named password and whether it is set.
func (p *PasswordStore) Get(name string) (string, bool) {
	value, ok := p.passwords[name]
	return value, ok
}

// Set sets a password.
func (p *PasswordStore) Set(name, value string) {
	p.passwords[name] = value
}

// Clear removes a password.
func (p *PasswordStore) Clear(name string) {
	delete(p.passwords, name)
}

// Names returns all password names, sorted.
func (p *PasswordStore) Names() []string {
	names := make([]string, 0, len(p.passwords))
	for name := range p.passwords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the password file back atomically, readable by the owner
// only.
func (p *PasswordStore) Save() error {
	data, err := yaml.Marshal(p.passwords)
	if err != nil {
		return &PersistenceError{Op: "save", Path: p.path, Err: err}
	}
	if err := filestore.WriteAtomic(p.path, data, 0600); err != nil {
		return &PersistenceError{Op: "save", Path: p.path, Err: err}
	}
	return nil
}

// GeneratePassword returns a new random password value.
func GeneratePassword() string {
	return strings.ReplaceAll(uuid.New(), "-", "")
}
