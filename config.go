package kolladm

import (
	"path/filepath"

	"github.com/caarlos0/env/v9"
)

// Config holds the filesystem layout and the admin account kolladm manages
// hosts with. Everything comes from the environment with kolla's usual
// defaults.
type Config struct {
	// KollaHome is where the kolla playbooks and docs are installed
	KollaHome string `env:"KOLLA_HOME" envDefault:"/usr/share/kolla"`
	// KollaEtc holds the deployment configuration shared with kolla
	KollaEtc string `env:"KOLLA_ETC" envDefault:"/etc/kolla"`
	// Etc holds kolladm's own state, most notably the inventory document
	Etc string `env:"KOLLADM_ETC" envDefault:"/etc/kolla/kolladm"`
	// LogDir is where kolla containers write their logs
	LogDir string `env:"KOLLA_LOG_DIR" envDefault:"/var/log/kolla"`
	// AdminUser is the account used to manage remote hosts
	AdminUser string `env:"KOLLADM_ADMIN_USER" envDefault:"kolla"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InventoryPath is the fixed path of the persisted inventory document.
func (c *Config) InventoryPath() string {
	return filepath.Join(c.Etc, "ansible", "inventory.json")
}

// GlobalsPath is the path of the ansible properties file.
func (c *Config) GlobalsPath() string {
	return filepath.Join(c.KollaEtc, "globals.yml")
}

// PasswordsPath is the path of the deployment password file.
func (c *Config) PasswordsPath() string {
	return filepath.Join(c.KollaEtc, "passwords.yml")
}

// PlaybookPath is the site playbook handed to the deploy runner.
func (c *Config) PlaybookPath() string {
	return filepath.Join(c.KollaHome, "ansible", "site.yml")
}

// DestroyPlaybookPath is the playbook that tears a deployment down.
func (c *Config) DestroyPlaybookPath() string {
	return filepath.Join(c.KollaHome, "ansible", "host_destroy.yml")
}
