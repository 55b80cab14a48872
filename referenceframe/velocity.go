package referenceframe

import (
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
)

// velocityStep is the half-width of the central difference used to compute
// frame velocities. Joint positions are O(1) radians or meters, so a step near
// the cube root of machine epsilon keeps truncation and roundoff balanced.
const velocityStep = 1e-6

// LinearVelocityInWorld computes the world-frame linear velocity of the named
// frame at the given joint positions and velocities. The velocity is the
// directional derivative of the frame position along the joint velocities,
// evaluated by central finite differences; frames absent from the velocities
// map are treated as stationary.
func LinearVelocityInWorld(
	fs FrameSystem,
	frameName string,
	positions, velocities map[string][]Input,
) (r3.Vector, error) {
	var errAll error
	fwd, err := fs.PoseInWorld(frameName, perturbInputs(positions, velocities, velocityStep))
	if err != nil && fwd == nil {
		return r3.Vector{}, err
	}
	multierr.AppendInto(&errAll, err)
	back, err := fs.PoseInWorld(frameName, perturbInputs(positions, velocities, -velocityStep))
	if err != nil && back == nil {
		return r3.Vector{}, err
	}
	multierr.AppendInto(&errAll, err)
	return fwd.Point().Sub(back.Point()).Mul(1 / (2 * velocityStep)), errAll
}

// perturbInputs returns a copy of positions advanced by h along velocities.
func perturbInputs(positions, velocities map[string][]Input, h float64) map[string][]Input {
	perturbed := make(map[string][]Input, len(positions))
	for name, inputs := range positions {
		vel, ok := velocities[name]
		if !ok || len(vel) != len(inputs) {
			perturbed[name] = inputs
			continue
		}
		stepped := make([]Input, len(inputs))
		for i, input := range inputs {
			stepped[i] = Input{input.Value + h*vel[i].Value}
		}
		perturbed[name] = stepped
	}
	return perturbed
}
