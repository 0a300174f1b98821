package camera

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how Update maps input to the camera pose.
type Mode int

const (
	// ModeCustom leaves the pose to the host; only the pointer is tracked.
	ModeCustom Mode = iota
	// ModeFree is an editor-style camera: zoom, alt-drag to rotate, drag to pan.
	ModeFree
	// ModeOrbital slowly circles the target.
	ModeOrbital
	// ModeFirstPerson walks the camera itself with head bob.
	ModeFirstPerson
	// ModeThirdPerson follows a player position from behind.
	ModeThirdPerson

	modeCount
)

// ErrUnknownMode is returned by ParseMode for names that match no mode.
var ErrUnknownMode = errors.New("unknown camera mode")

var modeNames = [modeCount]string{
	ModeCustom:      "custom",
	ModeFree:        "free",
	ModeOrbital:     "orbital",
	ModeFirstPerson: "first_person",
	ModeThirdPerson: "third_person",
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeCustom, ModeFree, ModeOrbital, ModeFirstPerson, ModeThirdPerson}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= ModeCustom && m < modeCount
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode converts a config name such as "free" or "first-person" to a Mode.
func ParseMode(name string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for m, n := range modeNames {
		if n == key {
			return Mode(m), nil
		}
	}
	return ModeCustom, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// MarshalText implements encoding.TextMarshaler so modes read naturally in YAML.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// confinesPointer reports whether the pointer is hidden and kept away from screen edges.
func (m Mode) confinesPointer() bool {
	return m != ModeFree && m != ModeOrbital
}

// orbits reports whether the position is derived from the spherical angles each frame.
func (m Mode) orbits() bool {
	return m == ModeFree || m == ModeOrbital || m == ModeThirdPerson
}
