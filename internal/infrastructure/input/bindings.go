package input

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/loppy/internal/domain/entity"
	"github.com/younwookim/loppy/internal/infrastructure/config"
)

// pauseAction is the host-only binding name that toggles pause.
const pauseAction = "pause"

// Control is one physical key or mouse button.
type Control struct {
	Key     ebiten.Key
	Button  ebiten.MouseButton
	IsMouse bool
}

var mouseButtons = map[string]ebiten.MouseButton{
	"MouseLeft":   ebiten.MouseButtonLeft,
	"MouseRight":  ebiten.MouseButtonRight,
	"MouseMiddle": ebiten.MouseButtonMiddle,
}

// ParseControl resolves a key name such as "Space", "ArrowUp" or "MouseRight".
func ParseControl(name string) (Control, error) {
	if b, ok := mouseButtons[name]; ok {
		return Control{Button: b, IsMouse: true}, nil
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return Control{}, fmt.Errorf("unknown key %q", name)
	}
	return Control{Key: key}, nil
}

// Bindings maps every controller action, plus pause, to the controls that trigger it.
type Bindings struct {
	actions [entity.ActionCount][]Control
	pause   []Control
}

// NewBindings parses a controls config. Unknown action names and key names are errors.
func NewBindings(cfg *config.ControlsConfig) (*Bindings, error) {
	b := &Bindings{}
	var errs []error

	names := make([]string, 0, len(cfg.Bindings))
	for name := range cfg.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		controls := make([]Control, 0, len(cfg.Bindings[name]))
		for _, keyName := range cfg.Bindings[name] {
			c, err := ParseControl(keyName)
			if err != nil {
				errs = append(errs, fmt.Errorf("bindings.%s: %w", name, err))
				continue
			}
			controls = append(controls, c)
		}

		if name == pauseAction {
			b.pause = controls
			continue
		}
		action, ok := entity.ParseAction(name)
		if !ok {
			errs = append(errs, fmt.Errorf("bindings.%s: unknown action", name))
			continue
		}
		b.actions[action] = controls
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return b, nil
}

// Controls returns the controls bound to an action.
func (b *Bindings) Controls(action entity.Action) []Control {
	if action < 0 || action >= entity.ActionCount {
		return nil
	}
	return b.actions[action]
}
