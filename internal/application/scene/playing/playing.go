// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/application/replay"
	"github.com/younwookim/loppy/internal/application/scene"
	"github.com/younwookim/loppy/internal/application/state"
	"github.com/younwookim/loppy/internal/application/system"
	"github.com/younwookim/loppy/internal/domain/entity"
	"github.com/younwookim/loppy/internal/infrastructure/config"
	"github.com/younwookim/loppy/internal/infrastructure/input"
	"github.com/younwookim/loppy/internal/infrastructure/physics"
)

// maxStepsPerFrame bounds catch-up after a long frame.
const maxStepsPerFrame = 5

// cameraFollowRate is the share of the remaining distance the camera covers per frame.
const cameraFollowRate = 0.2

// Options configures a Playing scene. Poller may be nil when a replay drives the actor.
type Options struct {
	Settings   *config.Store
	Stage      *entity.Stage
	StageName  string
	Poller     *input.Poller
	RecordPath string
	Replay     *replay.ReplayData
	Logger     *slog.Logger
}

// Playing is the main gameplay scene.
type Playing struct {
	settings *config.Store
	applied  *config.GameConfig
	stage    *entity.Stage
	name     string
	logger   *slog.Logger

	world *physics.World
	body  *physics.ActorBody
	ctrl  *system.Controller
	clock *system.TimeScale

	poller    *input.Poller
	tickInput entity.InputState
	replayer  *replay.Replayer

	recorder  *recorder
	flow      *state.Flow
	camera    *camera
	fixedDT   float64
	accum     float64
	ticks     int
	lastEvent entity.Event
	hasEvent  bool
}

// New builds the world, the actor body and its controller for one stage.
func New(opts Options) (*Playing, error) {
	if opts.Settings == nil || opts.Stage == nil {
		return nil, errors.New("playing scene needs settings and a stage")
	}
	if opts.Poller == nil && opts.Replay == nil {
		return nil, errors.New("playing scene needs an input poller or a replay")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cfg := opts.Settings.Current()
	display := cfg.Physics.Display
	p := &Playing{
		settings: opts.Settings,
		applied:  cfg,
		stage:    opts.Stage,
		name:     opts.StageName,
		logger:   logger,
		poller:   opts.Poller,
		clock:    system.NewTimeScale(),
		flow:     state.NewFlow(state.StatePlaying),
		camera:   newCamera(display.ScreenWidth, display.ScreenHeight, display.PixelsPerUnit),
		fixedDT:  1.0 / float64(display.Framerate),
	}

	if opts.Replay != nil {
		if opts.Replay.FixedDT > 0 {
			p.fixedDT = opts.Replay.FixedDT
		}
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.flow = state.NewFlow(state.StateReplaying)
		logger.Info("replaying", "stage", opts.Replay.Stage, "frames", p.replayer.TotalFrames())
	}
	if opts.RecordPath != "" {
		p.recorder = newRecorder(opts.RecordPath, opts.StageName, p.fixedDT, logger)
		logger.Info("recording enabled", "file", opts.RecordPath)
	}

	p.world = physics.NewWorld(opts.Stage)
	p.body = p.world.AddActor(opts.Stage.Spawn, entity.CapsuleShape{
		Size:   cfg.Physics.Collider.Size.Vector(),
		Offset: cfg.Physics.Collider.Offset.Vector(),
	})
	p.ctrl = system.NewController(&p.tickInput, p.world, p.body, opts.Settings, p.clock,
		system.WithLogger(logger.With("component", "controller")))
	p.ctrl.Subscribe(p.observe)
	p.camera.focus = p.ctrl.FocalPoint()

	if p.poller != nil {
		p.poller.SetScreenToWorld(p.camera.toWorld)
	}
	return p, nil
}

func (p *Playing) observe(ev entity.Event) {
	p.lastEvent = ev
	p.hasEvent = true
}

// Update advances the scene by one rendered frame (implements scene.Scene).
func (p *Playing) Update(frameDT float64) (scene.Scene, error) {
	if p.poller != nil {
		p.poller.Poll()
		if p.poller.PausePressed() {
			p.flow.TogglePause()
			p.logger.Debug("pause toggled", "state", p.flow.Current())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.recorder.save()
	}

	if !p.flow.Current().Simulating() {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return nil, scene.ErrQuit
		}
		return nil, nil
	}
	p.Advance(frameDT)
	return nil, nil
}

// Advance runs the frame work and every whole fixed step the scaled frame time covers.
func (p *Playing) Advance(frameDT float64) int {
	p.applySettings()
	p.frameInput()
	p.ctrl.Frame(frameDT)

	p.accum += frameDT * p.clock.Scale()
	steps := 0
	for p.accum >= p.fixedDT && steps < maxStepsPerFrame {
		p.fixedStep()
		p.accum -= p.fixedDT
		steps++
	}
	if steps == maxStepsPerFrame {
		p.accum = 0
	}

	p.camera.follow(p.ctrl.FocalPoint(), cameraFollowRate)
	return steps
}

func (p *Playing) fixedStep() {
	switch {
	case p.flow.Current() == state.StateReplaying:
		if p.replayer.Advance() {
			p.tickInput = p.replayer.Snapshot()
			break
		}
		p.logger.Info("replay finished", "frames", p.replayer.TotalFrames())
		p.flow.Set(state.StatePlaying)
		p.tickInput = p.liveInput()
	default:
		p.tickInput = p.liveInput()
		if p.recorder != nil {
			p.recorder.record(p.tickInput)
		}
	}

	p.ctrl.FixedUpdate(p.fixedDT)
	p.world.Step(p.fixedDT)
	p.ticks++
}

// frameInput refreshes the held actions and aim that per-frame work reads,
// since fixed steps stall while time is slowed. Replays only carry fixed ticks.
func (p *Playing) frameInput() {
	if p.poller == nil || p.flow.Current() == state.StateReplaying {
		return
	}
	live := p.poller.Held()
	p.tickInput.Held = live.Held
	p.tickInput.Aim = live.Aim
}

func (p *Playing) liveInput() entity.InputState {
	if p.poller == nil {
		return entity.InputState{}
	}
	return p.poller.Snapshot()
}

// applySettings notices a hot-reloaded snapshot and updates what the scene derives from it.
func (p *Playing) applySettings() {
	cfg := p.settings.Current()
	if cfg == p.applied {
		return
	}
	p.applied = cfg
	p.body.SetShape(entity.CapsuleShape{
		Size:   cfg.Physics.Collider.Size.Vector(),
		Offset: cfg.Physics.Collider.Offset.Vector(),
	})
	p.camera.pixelsPerUnit = max(cfg.Physics.Display.PixelsPerUnit, 1)

	if p.poller == nil {
		return
	}
	bindings, err := input.NewBindings(cfg.Controls)
	if err != nil {
		p.logger.Warn("keeping previous key bindings", "error", err)
		return
	}
	p.poller.SetBindings(bindings)
}

func (p *Playing) restart() {
	p.ctrl.Reset(p.stage.Spawn)
	p.camera.focus = p.stage.Spawn
	p.accum = 0
	p.hasEvent = false
	if p.replayer != nil && p.flow.Current() == state.StateReplaying {
		p.replayer.Reset()
	}
	p.logger.Info("restarted", "spawn", fmt.Sprintf("(%.2f, %.2f)", p.stage.Spawn.X, p.stage.Spawn.Y))
}

// OnEnter is called when entering this scene.
func (p *Playing) OnEnter() {}

// OnExit saves the recording, if any.
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.recorder.save()
	}
}

// Controller exposes the actor controller.
func (p *Playing) Controller() *system.Controller {
	return p.ctrl
}

// World exposes the geometry world.
func (p *Playing) World() *physics.World {
	return p.world
}

// State returns the host state.
func (p *Playing) State() state.GameState {
	return p.flow.Current()
}

// Ticks returns the number of fixed steps run so far.
func (p *Playing) Ticks() int {
	return p.ticks
}

// FocalPoint returns where the camera is looking.
func (p *Playing) FocalPoint() cp.Vector {
	return p.camera.focus
}
