// Package bridge runs the adb executable that talks to the TV.
package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrNotFound means the bridge executable could not be located or started.
var ErrNotFound = errors.New("bridge executable not found")

// waitDelay bounds how long output copying may outlive a killed bridge.
const waitDelay = 2 * time.Second

// Runner invokes the bridge with args and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// Exec runs a bridge binary as a child process, one call per invocation.
type Exec struct {
	path    string
	timeout time.Duration
}

// New returns a runner for the binary at path. An empty path yields a
// runner whose every call fails with ErrNotFound. A zero timeout leaves
// calls bounded only by ctx.
func New(path string, timeout time.Duration) *Exec {
	return &Exec{path: path, timeout: timeout}
}

func (e *Exec) Path() string {
	return e.path
}

func (e *Exec) Available() bool {
	return e.path != ""
}

func (e *Exec) Run(ctx context.Context, args ...string) (string, error) {
	if e.path == "" {
		return "", ErrNotFound
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	hideWindow(cmd)

	started := time.Now()
	err := cmd.Run()
	entry := log.WithFields(log.Fields{
		"args":    strings.Join(args, " "),
		"elapsed": time.Since(started).Round(time.Millisecond),
	})

	if err != nil {
		sub := "adb"
		if len(args) > 0 {
			sub += " " + args[0]
		}
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			entry.WithError(err).Error("bridge could not be started")
			return "", fmt.Errorf("%w: %s: %v", ErrNotFound, e.path, err)
		}
		msg := strings.TrimSpace(stderr.String())
		entry.WithError(err).WithField("stderr", msg).Warn("bridge call failed")
		if msg != "" {
			return stdout.String(), fmt.Errorf("%s: %w: %s", sub, err, msg)
		}
		return stdout.String(), fmt.Errorf("%s: %w", sub, err)
	}

	entry.Debug("bridge call finished")
	return stdout.String(), nil
}
