package camera

import "github.com/Faultbox/camrig/pkg/math"

// fakeInput is a scripted InputProvider. Tests mutate its fields between updates.
type fakeInput struct {
	pointer math.Vec2
	wheel   int
	width   int
	height  int
	keys    map[Key]bool
	buttons map[Button]bool

	visible bool
	warps   []math.Vec2
	shows   int
	hides   int
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pointer: math.Vec2{X: 640, Y: 360},
		width:   1280,
		height:  720,
		keys:    map[Key]bool{},
		buttons: map[Button]bool{},
	}
}

func (f *fakeInput) PointerPosition() math.Vec2 { return f.pointer }

func (f *fakeInput) SetPointerPosition(pos math.Vec2) {
	f.pointer = pos
	f.warps = append(f.warps, pos)
}

func (f *fakeInput) IsButtonDown(b Button) bool { return f.buttons[b] }

// WheelDelta reports the scripted wheel once, like a per-frame accumulator.
func (f *fakeInput) WheelDelta() int {
	w := f.wheel
	f.wheel = 0
	return w
}

func (f *fakeInput) ScreenSize() (int, int) { return f.width, f.height }

func (f *fakeInput) ShowPointer() {
	f.visible = true
	f.shows++
}

func (f *fakeInput) HidePointer() {
	f.visible = false
	f.hides++
}

func (f *fakeInput) IsKeyDown(k Key) bool { return f.keys[k] }

// moveBy shifts the pointer by (dx, dy).
func (f *fakeInput) moveBy(dx, dy float32) {
	f.pointer = f.pointer.Add(math.Vec2{X: dx, Y: dy})
}
