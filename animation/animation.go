// Package animation evaluates keyframe animations bound to scene graph
// components.
package animation

import (
	"fmt"

	"github.com/achilleasa/lxs/asset/scene"
	"github.com/achilleasa/lxs/types"
	"github.com/tanema/gween/ease"
)

// Pose is a decomposed transformation. Rotations are expressed in degrees.
type Pose struct {
	Translate types.Vec3
	Rotate    types.Vec3
	Scale     types.Vec3
}

// The pose of an untransformed component.
var IdentityPose = Pose{Scale: types.XYZ(1, 1, 1)}

func (p Pose) String() string {
	return fmt.Sprintf("T%v R%v S%v", p.Translate, p.Rotate, p.Scale)
}

// Transformer receives the transformation steps that express a pose.
type Transformer interface {
	Translate(v types.Vec3)
	Rotate(rad float32, axis types.Vec3)
	Scale(v types.Vec3)
}

// StateKind describes the position of the elapsed time relative to the
// keyframe table.
type StateKind uint8

const (
	PreStart StateKind = iota
	Segment
	Held
)

// State is the evaluation state of an animation instance. Segment is only
// meaningful for the Segment kind; it holds the index of the keyframe that
// ends the active segment.
type State struct {
	Kind    StateKind
	Segment int
}

func (s State) String() string {
	switch s.Kind {
	case PreStart:
		return "pre-start"
	case Segment:
		return fmt.Sprintf("segment(%d)", s.Segment)
	}
	return "held"
}

// Kind identifies the animation variant of an instance.
type Kind uint8

const (
	KeyframeKind Kind = iota
)

// Instance is the runtime state of an animation bound to a single component.
// Instances never share state even when created from the same animation.
type Instance struct {
	kind Kind
	id   string

	keyframes []scene.Keyframe
	easing    ease.TweenFunc

	elapsed float64

	// Number of keyframes whose instant is <= elapsed.
	next int

	pose Pose
}

// Create a new instance for an animation. The instance starts at elapsed
// time 0.
func New(spec *scene.Animation) *Instance {
	easing, ok := LookupEasing(spec.Easing)
	if !ok {
		easing = ease.Linear
	}

	inst := &Instance{
		kind:      KeyframeKind,
		id:        spec.ID,
		keyframes: spec.Keyframes,
		easing:    easing,
	}
	inst.Update(0)
	return inst
}

// Get the id of the animation this instance was created from.
func (inst *Instance) ID() string {
	return inst.id
}

// Get the animation variant.
func (inst *Instance) Kind() Kind {
	return inst.kind
}

// Get the total elapsed time.
func (inst *Instance) Elapsed() float64 {
	return inst.elapsed
}

// Get the pose computed by the last call to Update.
func (inst *Instance) Pose() Pose {
	return inst.pose
}

// Get the evaluation state.
func (inst *Instance) State() State {
	switch inst.kind {
	case KeyframeKind:
		return stateAt(inst.next, len(inst.keyframes))
	}
	return State{Kind: Held}
}

// Advance the elapsed time by dt seconds and recompute the pose. Negative
// values are treated as 0.
func (inst *Instance) Update(dt float64) {
	if dt > 0 {
		inst.elapsed += dt
	}

	switch inst.kind {
	case KeyframeKind:
		inst.next = advance(inst.keyframes, inst.next, inst.elapsed)
		inst.pose = sampleAt(inst.keyframes, inst.next, inst.elapsed, inst.easing)
	}
}

// Issue the current pose to t: translate, rotate about X, Y and Z and finally
// scale.
func (inst *Instance) Apply(t Transformer) {
	p := inst.pose
	t.Translate(p.Translate)
	t.Rotate(types.DegToRad(p.Rotate[0]), types.AxisX.Vec3())
	t.Rotate(types.DegToRad(p.Rotate[1]), types.AxisY.Vec3())
	t.Rotate(types.DegToRad(p.Rotate[2]), types.AxisZ.Vec3())
	t.Scale(p.Scale)
}

// Sample the pose of a keyframe table at the given elapsed time. If easing
// is nil, linear interpolation is used.
func Sample(keyframes []scene.Keyframe, elapsed float64, easing ease.TweenFunc) Pose {
	if easing == nil {
		easing = ease.Linear
	}
	return sampleAt(keyframes, advance(keyframes, 0, elapsed), elapsed, easing)
}

// Move the next keyframe index forward past every keyframe reached at elapsed.
func advance(keyframes []scene.Keyframe, next int, elapsed float64) int {
	for next < len(keyframes) && elapsed >= float64(keyframes[next].Instant) {
		next++
	}
	return next
}

func stateAt(next, count int) State {
	switch {
	case next == 0:
		return State{Kind: PreStart}
	case next >= count:
		return State{Kind: Held}
	}
	return State{Kind: Segment, Segment: next}
}

func sampleAt(keyframes []scene.Keyframe, next int, elapsed float64, easing ease.TweenFunc) Pose {
	if len(keyframes) == 0 {
		return IdentityPose
	}

	switch state := stateAt(next, len(keyframes)); state.Kind {
	case PreStart:
		first := keyframes[0]
		if first.Instant == 0 {
			return poseOf(first)
		}
		return interpolate(IdentityPose, poseOf(first), elapsed/float64(first.Instant), easing)
	case Segment:
		from, to := keyframes[state.Segment-1], keyframes[state.Segment]
		span := float64(to.Instant - from.Instant)
		if span == 0 {
			return poseOf(to)
		}
		return interpolate(poseOf(from), poseOf(to), (elapsed-float64(from.Instant))/span, easing)
	}

	return poseOf(keyframes[len(keyframes)-1])
}

func poseOf(kf scene.Keyframe) Pose {
	return Pose{Translate: kf.Translate, Rotate: kf.Rotate, Scale: kf.Scale}
}

// Interpolate each axis of each pose component independently. The identity
// scale is 1 so interpolating from the identity pose yields 1+(s-1)*f.
func interpolate(from, to Pose, fraction float64, easing ease.TweenFunc) Pose {
	f := float32(fraction)
	return Pose{
		Translate: lerp3(from.Translate, to.Translate, f, easing),
		Rotate:    lerp3(from.Rotate, to.Rotate, f, easing),
		Scale:     lerp3(from.Scale, to.Scale, f, easing),
	}
}

func lerp3(from, to types.Vec3, f float32, easing ease.TweenFunc) types.Vec3 {
	var out types.Vec3
	for i := range out {
		out[i] = easing(f, from[i], to[i]-from[i], 1)
	}
	return out
}
