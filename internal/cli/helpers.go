package cli

import (
	"fmt"
	"os"
)

// ensureOutputDir creates the directory that will hold generated artifacts.
func ensureOutputDir(path string) error {
	if path == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	return os.MkdirAll(path, 0o755)
}
