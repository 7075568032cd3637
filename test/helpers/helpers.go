package helpers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/onsi/gomega"
)

// FakeCodexPath returns the absolute path of a stand-in for codex that echoes its arguments.
func FakeCodexPath() string {
	path, err := filepath.Abs(filepath.Join("fixtures", "fake-codex"))
	gomega.Expect(err).ToNot(gomega.HaveOccurred())
	return path
}

// EnvWithout returns the environment of the current process minus any variable with one of the given prefixes.
func EnvWithout(prefixes ...string) map[string]string {
	env := map[string]string{}

	for _, pair := range os.Environ() {
		fields := strings.SplitN(pair, "=", 2)
		if len(fields) != 2 {
			continue
		}

		skip := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(fields[0], prefix) {
				skip = true
				break
			}
		}

		if !skip {
			env[fields[0]] = fields[1]
		}
	}

	return env
}
