// Package sshutil bootstraps remote hosts for management by the kolladm
// admin user: it creates the admin account, grants it passwordless sudo and
// installs the management public key, all over a password-authenticated ssh
// connection.
package sshutil

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

const sshPort = "22"

// Config describes how to reach a host and what to set up on it.
type Config struct {
	// User is the login account used for the bootstrap, root by default
	User string
	// Password authenticates the login account
	Password string
	// AdminUser is the management account to create
	AdminUser string
	// PublicKey is the ssh key installed for the management account
	PublicKey string
	// Timeout bounds the connection attempt
	Timeout time.Duration
}

// SetupHost connects to hostname and provisions the management account.
func SetupHost(hostname string, cfg Config) error {
	if cfg.User == "" {
		cfg.User = "root"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	clientConfig := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         cfg.Timeout,
	}

	client, err := ssh.Dial("tcp", net.JoinHostPort(hostname, sshPort), clientConfig)
	if err != nil {
		return fmt.Errorf("ssh connect to %s failed: %s", hostname, err)
	}
	defer func() { _ = client.Close() }()

	for _, cmd := range setupCommands(cfg) {
		if err := run(client, cmd); err != nil {
			return err
		}
	}
	return nil
}

// CheckReachable verifies the host's ssh port accepts connections.
func CheckReachable(hostname string, timeout time.Duration) error {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(hostname, sshPort), timeout)
	if err != nil {
		return fmt.Errorf("host %s is not reachable: %s", hostname, err)
	}
	return conn.Close()
}

func run(client *ssh.Client, cmd string) error {
	session, err := client.NewSession()
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	if out, err := session.CombinedOutput(cmd); err != nil {
		return fmt.Errorf("remote command %q failed: %s: %s", cmd, err, out)
	}
	return nil
}

func setupCommands(cfg Config) []string {
	admin := cfg.AdminUser
	sshDir := fmt.Sprintf("~%s/.ssh", admin)
	return []string{
		fmt.Sprintf("id -u %s >/dev/null 2>&1 || useradd -m %s", admin, admin),
		fmt.Sprintf("mkdir -p %s && chmod 700 %s", sshDir, sshDir),
		fmt.Sprintf("grep -qF '%s' %s/authorized_keys 2>/dev/null || echo '%s' >> %s/authorized_keys",
			cfg.PublicKey, sshDir, cfg.PublicKey, sshDir),
		fmt.Sprintf("chmod 600 %s/authorized_keys && chown -R %s: %s", sshDir, admin, sshDir),
		fmt.Sprintf("echo '%s ALL=(ALL) NOPASSWD: ALL' > /etc/sudoers.d/%s && chmod 440 /etc/sudoers.d/%s",
			admin, admin, admin),
	}
}
