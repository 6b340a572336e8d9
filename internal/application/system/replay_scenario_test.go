package system_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/loppy/internal/application/replay"
	"github.com/younwookim/loppy/internal/application/system"
	"github.com/younwookim/loppy/internal/domain/entity"
	"github.com/younwookim/loppy/internal/infrastructure/config"
	"github.com/younwookim/loppy/internal/infrastructure/physics"
)

// runReplay plays data against a fresh world and returns where the body ended up
func runReplay(t *testing.T, data replay.ReplayData, unlock func(u *config.UnlocksConfig)) (cp.Vector, []entity.Event) {
	t.Helper()

	stage := system.LoadStage(&config.StageConfig{
		TileSize:    1,
		Layers:      config.LayersConfig{Collision: wallRows},
		TileMapping: map[string]config.TileMappingConfig{"#": {Type: "solid"}},
	})
	settings := config.DefaultGameConfig()
	if unlock != nil {
		unlock(settings.Unlocks)
	}

	world := physics.NewWorld(stage)
	body := world.AddActor(cp.Vector{X: 4, Y: 2.01}, entity.CapsuleShape{
		Size:   settings.Physics.Collider.Size.Vector(),
		Offset: settings.Physics.Collider.Offset.Vector(),
	})
	player := replay.NewReplayer(data)
	ctrl := system.NewController(player, world, body, settings, system.NewTimeScale())

	var events []entity.Event
	ctrl.Subscribe(func(ev entity.Event) { events = append(events, ev) })

	for player.Advance() {
		ctrl.FixedUpdate(data.FixedDT)
		world.Step(data.FixedDT)
	}
	return body.Position(), events
}

func TestController_ReplayIsDeterministic(t *testing.T) {
	data := replay.NewScript("wall", dt).
		Wait(2).
		Hold(entity.ActionRight).
		Wait(10).
		Hold(entity.ActionDash).
		Wait(20).
		Release(entity.ActionDash).
		Hold(entity.ActionJump).
		Wait(40).
		Release(entity.ActionRight, entity.ActionJump).
		Wait(30).
		Data()
	unlock := func(u *config.UnlocksConfig) {
		u.Dash = true
		u.WallClimb = true
	}

	first, firstEvents := runReplay(t, data, unlock)
	second, secondEvents := runReplay(t, data, unlock)

	assert.Equal(t, first, second)
	assert.Equal(t, firstEvents, secondEvents)

	kinds := map[entity.EventKind]bool{}
	for _, ev := range firstEvents {
		kinds[ev.Kind] = true
	}
	require.True(t, kinds[entity.EventDash], "the script dashes")
	assert.True(t, kinds[entity.EventWallCling], "the jump rises along the wall and clings on the way down")
	assert.Less(t, first.X, 10.0)
}
