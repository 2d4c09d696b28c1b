package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{}, Event{Type: EventQuit}, true},
		{"resize", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600}, true},
		{"other window event", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED}, Event{}, false},
		{"key down", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE}, true},
		{"key repeat", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1}, Event{}, false},
		{"key up", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			Event{Type: EventKeyUp, Key: sdl.SCANCODE_W}, true},
		{"motion", &sdl.MouseMotionEvent{X: 10, Y: 20, XRel: -3, YRel: 4},
			Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DX: -3, DY: 4}, true},
		{"button", &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, X: 1, Y: 2, Button: sdl.BUTTON_LEFT},
			Event{Type: EventMouseDown, MouseX: 1, MouseY: 2, Button: sdl.BUTTON_LEFT}, true},
		{"wheel", &sdl.MouseWheelEvent{Y: -1}, Event{Type: EventMouseWheel, Wheel: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("translate ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInputDeltas(t *testing.T) {
	in := New()
	in.events = []Event{
		{Type: EventMouseMove, DX: 2, DY: -1},
		{Type: EventKeyDown, Key: sdl.SCANCODE_F},
		{Type: EventMouseMove, DX: 3, DY: 5},
		{Type: EventMouseWheel, Wheel: 2},
	}

	dx, dy := in.MouseDelta()
	if dx != 5 || dy != 4 {
		t.Errorf("MouseDelta = (%d, %d), want (5, 4)", dx, dy)
	}
	if w := in.WheelDelta(); w != 2 {
		t.Errorf("WheelDelta = %d, want 2", w)
	}
	if !in.IsKeyPressed(sdl.SCANCODE_F) {
		t.Error("F should be pressed")
	}
	if in.IsKeyHeld(sdl.SCANCODE_F) {
		t.Error("no keyboard state before Update")
	}
}

func TestAxes(t *testing.T) {
	held := map[sdl.Scancode]bool{sdl.SCANCODE_W: true, sdl.SCANCODE_A: true, sdl.SCANCODE_SPACE: true, sdl.SCANCODE_LSHIFT: true}
	f, r, u := Axes(func(s sdl.Scancode) bool { return held[s] })
	if f != 1 || r != -1 || u != 0 {
		t.Errorf("Axes = (%v, %v, %v), want (1, -1, 0)", f, r, u)
	}
}
