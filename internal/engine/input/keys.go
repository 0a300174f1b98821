// Package input names keys and pointer buttons and carries window events.
//
// Codes follow the GLFW numbering: printable keys use their uppercase ASCII value,
// everything else uses GLFW's key and mouse button constants. Backends translate
// their native codes to this numbering.
package input

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Faultbox/camrig/internal/camera"
)

// ErrUnknownKey is returned for key or button names missing from the table.
var ErrUnknownKey = errors.New("unknown key name")

// Named key codes.
const (
	KeySpace        camera.Key = 32
	KeyEscape       camera.Key = 256
	KeyEnter        camera.Key = 257
	KeyTab          camera.Key = 258
	KeyBackspace    camera.Key = 259
	KeyRight        camera.Key = 262
	KeyLeft         camera.Key = 263
	KeyDown         camera.Key = 264
	KeyUp           camera.Key = 265
	KeyF1           camera.Key = 290
	KeyF12          camera.Key = 301
	KeyLeftShift    camera.Key = 340
	KeyLeftControl  camera.Key = 341
	KeyLeftAlt      camera.Key = 342
	KeyLeftSuper    camera.Key = 343
	KeyRightShift   camera.Key = 344
	KeyRightControl camera.Key = 345
	KeyRightAlt     camera.Key = 346
	KeyRightSuper   camera.Key = 347
)

// Pointer buttons.
const (
	ButtonLeft   camera.Button = 0
	ButtonRight  camera.Button = 1
	ButtonMiddle camera.Button = 2
	Button4      camera.Button = 3
	Button5      camera.Button = 4
)

var namedKeys = map[string]camera.Key{
	"space":         KeySpace,
	"escape":        KeyEscape,
	"enter":         KeyEnter,
	"tab":           KeyTab,
	"backspace":     KeyBackspace,
	"right":         KeyRight,
	"left":          KeyLeft,
	"down":          KeyDown,
	"up":            KeyUp,
	"left_shift":    KeyLeftShift,
	"left_control":  KeyLeftControl,
	"left_alt":      KeyLeftAlt,
	"left_super":    KeyLeftSuper,
	"right_shift":   KeyRightShift,
	"right_control": KeyRightControl,
	"right_alt":     KeyRightAlt,
	"right_super":   KeyRightSuper,
}

// Aliases accepted by ParseKey but never produced by KeyName.
var keyAliases = map[string]string{
	"esc":     "escape",
	"return":  "enter",
	"shift":   "left_shift",
	"ctrl":    "left_control",
	"control": "left_control",
	"alt":     "left_alt",
	"super":   "left_super",
}

var namedButtons = map[string]camera.Button{
	"left":    ButtonLeft,
	"right":   ButtonRight,
	"middle":  ButtonMiddle,
	"button4": Button4,
	"button5": Button5,
}

func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	return strings.ReplaceAll(n, " ", "_")
}

// ParseKey converts a key name such as "w", "left_alt" or "f3" to its code.
func ParseKey(name string) (camera.Key, error) {
	n := normalize(name)
	if alias, ok := keyAliases[n]; ok {
		n = alias
	}

	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return camera.Key(c - 'a' + 'A'), nil
		case c >= '0' && c <= '9':
			return camera.Key(c), nil
		}
	}

	if k, ok := namedKeys[n]; ok {
		return k, nil
	}

	if rest, ok := strings.CutPrefix(n, "f"); ok {
		if f, err := strconv.Atoi(rest); err == nil && f >= 1 && f <= 12 {
			return KeyF1 + camera.Key(f-1), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// KeyName returns the canonical name of k, or "" when k has none.
func KeyName(k camera.Key) string {
	switch {
	case k >= 'A' && k <= 'Z':
		return string(rune(k - 'A' + 'a'))
	case k >= '0' && k <= '9':
		return string(rune(k))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	for name, code := range namedKeys {
		if code == k {
			return name
		}
	}
	return ""
}

// ParseButton converts a pointer button name such as "middle" to its code.
func ParseButton(name string) (camera.Button, error) {
	if b, ok := namedButtons[normalize(name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: button %q", ErrUnknownKey, name)
}

// ButtonName returns the canonical name of b, or "" when b has none.
func ButtonName(b camera.Button) string {
	for name, code := range namedButtons {
		if code == b {
			return name
		}
	}
	return ""
}

// KeyNames lists every canonical named key, sorted. Letters, digits and function keys
// are accepted as well but not listed.
func KeyNames() []string {
	names := make([]string, 0, len(namedKeys))
	for n := range namedKeys {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
