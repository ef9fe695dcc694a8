package bridge

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

const bundledDir = "platform-tools"

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "adb.exe"
	}
	return "adb"
}

// Locate finds the bridge executable. A configured path wins; otherwise a
// copy bundled in platform-tools next to the program; otherwise adb on PATH.
func Locate(configured string) (string, error) {
	exeDir := ""
	if p, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(p)
	}
	return locate(configured, exeDir, exec.LookPath)
}

func locate(configured, exeDir string, lookPath func(string) (string, error)) (string, error) {
	if configured != "" {
		if isExecutableFile(configured) {
			return configured, nil
		}
		if p, err := lookPath(configured); err == nil {
			return p, nil
		}
		return "", fmt.Errorf("%w: configured path %q", ErrNotFound, configured)
	}

	if exeDir != "" {
		bundled := filepath.Join(exeDir, bundledDir, binaryName())
		if isExecutableFile(bundled) {
			return bundled, nil
		}
	}

	if p, err := lookPath(binaryName()); err == nil {
		return p, nil
	}
	return "", ErrNotFound
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
