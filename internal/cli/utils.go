package cli

import (
	"bufio"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// AssertName checks whether a string is usable as an inventory name
func AssertName(name string) {
	if name == "" || strings.ContainsAny(name, " \t\n") || strings.HasPrefix(name, "-") {
		log.WithFields(log.Fields{
			"name": name,
		}).Fatal("invalid name")
	}
}

// Read collects non-blank lines from a reader, one name per line
func Read(r io.Reader) []string {
	names := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			names = append(names, line)
		}
	}
	return names
}
