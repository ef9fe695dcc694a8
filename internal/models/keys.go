package models

import (
	"fmt"
	"strings"
)

// Keycode is the token the bridge passes to `input keyevent`.
type Keycode string

const (
	KeycodeBack       Keycode = "KEYCODE_BACK"
	KeycodeHome       Keycode = "KEYCODE_HOME"
	KeycodeAppSwitch  Keycode = "KEYCODE_APP_SWITCH"
	KeycodePower      Keycode = "KEYCODE_POWER"
	KeycodeVolumeUp   Keycode = "KEYCODE_VOLUME_UP"
	KeycodeVolumeDown Keycode = "KEYCODE_VOLUME_DOWN"
	KeycodeDpadLeft   Keycode = "KEYCODE_DPAD_LEFT"
	KeycodeDpadRight  Keycode = "KEYCODE_DPAD_RIGHT"
	KeycodeDpadUp     Keycode = "KEYCODE_DPAD_UP"
	KeycodeDpadDown   Keycode = "KEYCODE_DPAD_DOWN"
	KeycodeEnter      Keycode = "KEYCODE_ENTER"
)

// Action is a button on the remote.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionOK
	ActionPower
	ActionVolumeUp
	ActionVolumeDown
	ActionHome
	ActionBack
	ActionApps
)

var actionInfo = []struct {
	name string
	code Keycode
}{
	ActionUp:         {"up", KeycodeDpadUp},
	ActionDown:       {"down", KeycodeDpadDown},
	ActionLeft:       {"left", KeycodeDpadLeft},
	ActionRight:      {"right", KeycodeDpadRight},
	ActionOK:         {"ok", KeycodeEnter},
	ActionPower:      {"power", KeycodePower},
	ActionVolumeUp:   {"volume-up", KeycodeVolumeUp},
	ActionVolumeDown: {"volume-down", KeycodeVolumeDown},
	ActionHome:       {"home", KeycodeHome},
	ActionBack:       {"back", KeycodeBack},
	ActionApps:       {"apps", KeycodeAppSwitch},
}

// Actions lists every remote button in display order.
func Actions() []Action {
	out := make([]Action, len(actionInfo))
	for i := range actionInfo {
		out[i] = Action(i)
	}
	return out
}

func (a Action) valid() bool {
	return a >= 0 && int(a) < len(actionInfo)
}

func (a Action) String() string {
	if !a.valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionInfo[a].name
}

func (a Action) Keycode() Keycode {
	if !a.valid() {
		return ""
	}
	return actionInfo[a].code
}

// ParseAction resolves a button name such as "volume-up" or "OK".
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range actionInfo {
		if info.name == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}
