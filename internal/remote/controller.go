// Package remote turns remote-control actions into bridge invocations and
// tracks which device the remote is pointed at.
package remote

import (
	"context"
	"strings"
	"sync"

	"atvremote/internal/bridge"
	"atvremote/internal/models"

	log "github.com/sirupsen/logrus"
)

// SpaceToken is how `input text` expects spaces to be written.
const SpaceToken = "%s"

const (
	connectedMarker = "connected"
	deviceMarker    = "device"
)

// AddressBook persists addresses of devices that accepted a connection.
type AddressBook interface {
	Addresses() []string
	AddAddress(addr string) (bool, error)
}

// Controller is the connection manager and command dispatcher. Calls
// block for the duration of the bridge process.
type Controller struct {
	runner bridge.Runner
	book   AddressBook

	mu      sync.RWMutex
	current string
}

func NewController(runner bridge.Runner, book AddressBook) *Controller {
	return &Controller{runner: runner, book: book}
}

// Current is the address of the last successful connect, or "".
func (c *Controller) Current() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Controller) SavedAddresses() []string {
	return c.book.Addresses()
}

// Connect asks the bridge to connect to address. When the bridge reports
// success the address becomes current and is saved if new. A non-nil
// error with ok == true means the device connected but saving failed.
func (c *Controller) Connect(ctx context.Context, address string) (ok bool, err error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return false, nil
	}

	out, err := c.runner.Run(ctx, "connect", address)
	if err != nil {
		log.WithField("address", address).WithError(err).Warn("connect failed")
		return false, err
	}
	if !strings.Contains(strings.ToLower(out), connectedMarker) {
		log.WithFields(log.Fields{"address": address, "output": strings.TrimSpace(out)}).Info("device refused connection")
		return false, nil
	}

	c.mu.Lock()
	c.current = address
	c.mu.Unlock()

	if _, err := c.book.AddAddress(address); err != nil {
		return true, err
	}
	log.WithField("address", address).Info("connected")
	return true, nil
}

// Attach points the controller at address without calling the bridge.
// Used by one-shot commands that act on a device connected earlier.
func (c *Controller) Attach(address string) {
	c.mu.Lock()
	c.current = strings.TrimSpace(address)
	c.mu.Unlock()
}

// Disconnect drops the current device and returns its address. With no
// current device it does nothing and returns "".
func (c *Controller) Disconnect(ctx context.Context) (string, error) {
	c.mu.Lock()
	address := c.current
	c.current = ""
	c.mu.Unlock()

	if address == "" {
		return "", nil
	}

	_, err := c.runner.Run(ctx, "disconnect", address)
	if err != nil {
		log.WithField("address", address).WithError(err).Warn("disconnect failed")
	} else {
		log.WithField("address", address).Info("disconnected")
	}
	return address, err
}

// PollStatus queries the bridge state. Any failure reads as disconnected;
// the error is returned so callers can tell a missing bridge apart.
func (c *Controller) PollStatus(ctx context.Context) (models.ConnectionStatus, error) {
	out, err := c.runner.Run(ctx, "get-state")
	if err != nil {
		return models.StatusDisconnected, err
	}
	if strings.Contains(strings.ToLower(out), deviceMarker) {
		return models.StatusConnected, nil
	}
	return models.StatusDisconnected, nil
}

func (c *Controller) SendKey(ctx context.Context, code models.Keycode) error {
	_, err := c.runner.Run(ctx, "shell", "input", "keyevent", string(code))
	return err
}

// Press sends the keycode bound to a remote button.
func (c *Controller) Press(ctx context.Context, action models.Action) error {
	code := action.Keycode()
	if code == "" {
		return nil
	}
	return c.SendKey(ctx, code)
}

// SendText types text on the device. Blank input sends nothing and
// reports false.
func (c *Controller) SendText(ctx context.Context, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	_, err := c.runner.Run(ctx, "shell", "input", "text", EscapeText(text))
	return err == nil, err
}

// EscapeText replaces spaces with SpaceToken.
func EscapeText(text string) string {
	return strings.ReplaceAll(text, " ", SpaceToken)
}
