package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/loppy/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		tps    int
		wantDT float64
	}{
		{"60 tps", 60, 1.0 / 60},
		{"120 tps", 120, 1.0 / 120},
		{"invalid tps falls back to the default", 0, 1.0 / float64(ebiten.DefaultTPS)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := &mockScene{}
			g := New(initial, 320, 240, tt.tps, nil)

			assert.Equal(t, 1, initial.onEnterCalled, "OnEnter should be called on initial scene")
			assert.InDelta(t, tt.wantDT, g.DT(), 1e-12)
		})
	}
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 320, 240, 60, nil)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, initial.updateCalled)
	assert.InDelta(t, 1.0/60, initial.lastDT, 1e-12)
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 320, 240, 60, nil)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}
	scene1.nextScene = scene2

	g := New(scene1, 320, 240, 60, nil)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, 320, 240, 60, nil)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, scene1.updateCalled)
	assert.Equal(t, 0, scene1.onExitCalled)
}

func TestGame_UpdateErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"quit terminates cleanly", scene.ErrQuit, ebiten.Termination},
		{"other errors propagate", assert.AnError, assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockScene{updateErr: tt.err}
			g := New(s, 320, 240, 60, nil)

			assert.ErrorIs(t, g.Update(), tt.wantErr)
			assert.Equal(t, 1, s.onExitCalled)

			g.Close()
			assert.Equal(t, 1, s.onExitCalled, "the scene exits once")
		})
	}
}
