package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

const (
	// castBackoff pulls sweep starts back so shapes already touching still register
	castBackoff = 0.02
	// tieEpsilon treats hits this close in distance as simultaneous
	tieEpsilon = 1e-6
	// spineDivisions is the number of circle samples per radius along the capsule spine
	spineDivisions = 4
)

// World owns the cp space holding the stage terrain and the enemies,
// and answers the shape queries the actor controller issues.
type World struct {
	space   *cp.Space
	stage   *entity.Stage
	probe   *cp.Body
	enemies []*Enemy
	bodies  []*ActorBody
	nextID  entity.EnemyID
}

// NewWorld builds terrain shapes for stage and spawns its enemies.
func NewWorld(stage *entity.Stage) *World {
	space := cp.NewSpace()
	// Terrain is static and enemies are kinematic; nothing needs gravity
	space.SetGravity(cp.Vector{})

	w := &World{
		space: space,
		stage: stage,
		probe: cp.NewKinematicBody(),
	}
	buildTerrain(space, stage)
	for _, spawn := range stage.Enemies {
		w.SpawnEnemy(spawn)
	}
	return w
}

// Stage returns the stage the world was built from.
func (w *World) Stage() *entity.Stage {
	return w.stage
}

// AddActor creates a move-and-slide body standing at position.
func (w *World) AddActor(position cp.Vector, shape entity.CapsuleShape) *ActorBody {
	b := &ActorBody{world: w, shape: shape, position: position}
	w.bodies = append(w.bodies, b)
	return b
}

// SpawnEnemy adds a patrolling enemy.
func (w *World) SpawnEnemy(spawn entity.EnemySpawn) *Enemy {
	w.nextID++
	e := newEnemy(w.space, w.nextID, spawn)
	w.enemies = append(w.enemies, e)
	return e
}

// Enemies returns the live enemies.
func (w *World) Enemies() []*Enemy {
	return w.enemies
}

// DestroyEnemy removes an enemy from the space.
// Colliders handed out for it report invalid from then on.
func (w *World) DestroyEnemy(id entity.EnemyID) bool {
	for i, e := range w.enemies {
		if e.Entity.ID != id {
			continue
		}
		w.space.RemoveShape(e.shape)
		w.space.RemoveBody(e.body)
		e.Entity.Active = false
		w.enemies = append(w.enemies[:i], w.enemies[i+1:]...)
		return true
	}
	return false
}

// Step advances enemies and actor bodies by dt.
func (w *World) Step(dt float64) {
	for _, e := range w.enemies {
		e.prepare()
	}
	w.space.Step(dt)
	for _, e := range w.enemies {
		e.sync()
	}
	for _, b := range w.bodies {
		b.step(dt)
	}
}

// SweepCapsule casts shape along dir and reports the first surface on mask it touches.
func (w *World) SweepCapsule(shape entity.Capsule, dir cp.Vector, maxDistance float64, mask entity.LayerMask) (entity.Hit, bool) {
	hit, dist, ok := w.cast(shape, dir, maxDistance, mask)
	if !ok {
		return entity.Hit{}, false
	}
	hit.Distance = math.Max(dist, 0)
	return hit, true
}

// cast sweeps the capsule as circles along its spine. The returned distance is
// signed: a negative value means the capsule already overlaps by that much.
func (w *World) cast(shape entity.Capsule, dir cp.Vector, maxDistance float64, mask entity.LayerMask) (entity.Hit, float64, bool) {
	if dir.LengthSq() == 0 || maxDistance < 0 {
		return entity.Hit{}, 0, false
	}
	dir = dir.Normalize()
	r := shape.Radius()
	travel := maxDistance + castBackoff
	filter := queryFilter(mask)

	var (
		best       cp.SegmentQueryInfo
		bestSample cp.Vector
		bestDist   = math.Inf(1)
		found      bool
	)
	for _, p := range spineSamples(shape) {
		start := p.Sub(dir.Mult(castBackoff))
		info := w.segmentQueryFirst(start, start.Add(dir.Mult(travel)), r, filter)
		if info.Shape == nil {
			continue
		}
		d := info.Alpha*travel - castBackoff
		switch {
		case d < bestDist-tieEpsilon:
		case d <= bestDist+tieEpsilon && info.Normal.Dot(dir) < best.Normal.Dot(dir):
		default:
			continue
		}
		best, bestSample, bestDist, found = info, p, d, true
	}
	if !found {
		return entity.Hit{}, 0, false
	}
	// the query reports circle centers for flat faces, so derive the surface point
	contact := bestSample.Add(dir.Mult(bestDist)).Sub(best.Normal.Mult(r))
	return entity.Hit{
		Point:    contact,
		Normal:   best.Normal,
		Collider: colliderOf(best.Shape),
	}, bestDist, true
}

// segmentQueryFirst finds the first shape a thick segment touches.
// Space.SegmentQueryFirst walks the spatial index with the bare centerline,
// so it misses shapes whose bounds lie within radius of the line but off it.
// Candidates here come from the segment's bounds grown by radius instead.
func (w *World) segmentQueryFirst(start, end cp.Vector, radius float64, filter cp.ShapeFilter) cp.SegmentQueryInfo {
	first := cp.SegmentQueryInfo{Point: end, Alpha: 1}
	bb := cp.NewBBForCircle(start, radius).Merge(cp.NewBBForCircle(end, radius))
	w.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		var info cp.SegmentQueryInfo
		if !shape.SegmentQuery(start, end, radius, &info) || info.Alpha >= first.Alpha {
			return
		}
		// a surface already touched at the start only blocks motion into it
		if info.Alpha == 0 && info.Normal.Dot(end.Sub(start)) >= 0 {
			return
		}
		first = info
	}, nil)
	return first
}

// spineSamples returns circle centers covering the capsule from bottom to top.
func spineSamples(shape entity.Capsule) []cp.Vector {
	bottom, top := shape.Spine()
	length := top.Distance(bottom)
	step := shape.Radius() / spineDivisions
	if length == 0 || step <= 0 {
		return []cp.Vector{bottom}
	}
	n := int(math.Ceil(length / step))
	samples := make([]cp.Vector, 0, n+1)
	for i := 0; i <= n; i++ {
		samples = append(samples, bottom.Lerp(top, float64(i)/float64(n)))
	}
	return samples
}

// OverlapCapsule reports whether shape intersects anything on mask.
func (w *World) OverlapCapsule(shape entity.Capsule, mask entity.LayerMask) bool {
	bottom, top := shape.Spine()
	if bottom == top {
		top = bottom.Add(cp.Vector{Y: 1e-9})
	}
	seg := cp.NewSegment(w.probe, bottom, top, shape.Radius())
	seg.SetFilter(queryFilter(mask))
	return w.space.ShapeQuery(seg, func(*cp.Shape, *cp.ContactPointSet) {})
}

// Raycast casts a ray and reports the first surface on mask it crosses.
// A ray starting inside a shape does not hit that shape.
func (w *World) Raycast(origin, dir cp.Vector, maxDistance float64, mask entity.LayerMask) (entity.Hit, bool) {
	if dir.LengthSq() == 0 || maxDistance <= 0 {
		return entity.Hit{}, false
	}
	dir = dir.Normalize()
	info := w.space.SegmentQueryFirst(origin, origin.Add(dir.Mult(maxDistance)), 0, queryFilter(mask))
	if info.Shape == nil {
		return entity.Hit{}, false
	}
	return entity.Hit{
		Point:    info.Point,
		Normal:   info.Normal,
		Distance: info.Alpha * maxDistance,
		Collider: colliderOf(info.Shape),
	}, true
}
