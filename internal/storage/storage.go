package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dataDirName = "AndroidTVController"
	logsDir     = "logs"
)

// AppStorage resolves the application data directory and performs the
// whole-file reads and writes the documents are built on.
type AppStorage struct {
	configPath string
	logPath    string
}

// DefaultDataDir is ~/Documents/AndroidTVController.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "Documents", dataDirName), nil
}

// NewAppStorage creates baseDir (or the default data dir when empty) and
// its logs subdirectory.
func NewAppStorage(baseDir string) (*AppStorage, error) {
	if baseDir == "" {
		var err error
		if baseDir, err = DefaultDataDir(); err != nil {
			return nil, err
		}
	}

	logPath := filepath.Join(baseDir, logsDir)
	for _, dir := range []string{baseDir, logPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	return &AppStorage{
		configPath: baseDir,
		logPath:    logPath,
	}, nil
}

func (s *AppStorage) ConfigPath() string {
	return s.configPath
}

func (s *AppStorage) LogPath() string {
	return s.logPath
}

// Path joins name onto the data directory.
func (s *AppStorage) Path(name string) string {
	return filepath.Join(s.configPath, name)
}

func (s *AppStorage) EnsureDirPermissions(dirpath string) error {
	if err := os.MkdirAll(dirpath, 0o755); err != nil {
		return err
	}
	return os.Chmod(dirpath, 0o755)
}

func (s *AppStorage) WriteFile(path string, data []byte) error {
	if err := s.EnsureDirPermissions(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *AppStorage) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *AppStorage) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFileIfAbsent writes data only when path does not exist yet and
// reports whether it wrote.
func (s *AppStorage) WriteFileIfAbsent(path string, data []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := s.WriteFile(path, data); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AppStorage) CopyFile(src, dst string) error {
	data, err := s.ReadFile(src)
	if err != nil {
		return err
	}
	return s.WriteFile(dst, data)
}
