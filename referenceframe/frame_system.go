package referenceframe

import (
	"sort"

	"go.uber.org/multierr"

	spatial "github.com/gaitworks/locomotion/spatialmath"
)

// World is the string "world", but made into an exported constant.
const World = "world"

// FrameSystem represents a tree of frames connected to each other, allowing
// the pose of any frame to be computed with respect to the world.
type FrameSystem interface {
	// Name returns the name of this FrameSystem.
	Name() string

	// World returns the frame corresponding to the root of the FrameSystem,
	// from which other frames are defined with respect to.
	World() Frame

	// FrameNames returns the names of all of the frames that exist in the
	// FrameSystem, not including the world frame.
	FrameNames() []string

	// GetFrame returns the Frame in the FrameSystem corresponding to the name,
	// or nil if not found.
	GetFrame(name string) Frame

	// AddFrame inserts a given Frame into the FrameSystem as a child of the
	// parent Frame.
	AddFrame(frame, parent Frame) error

	// TracebackFrame traces the parentage of the given frame up to the world,
	// and returns the full list of frames in between. The list is ordered from
	// world to the query frame, inclusive of both.
	TracebackFrame(frame Frame) ([]Frame, error)

	// Parent returns the parent Frame for the given Frame in the FrameSystem.
	Parent(frame Frame) (Frame, error)

	// PoseInWorld computes the pose of the named frame with respect to the
	// world, given inputs for every frame with nonzero DoF keyed by frame
	// name. Out-of-bounds inputs still yield a pose, with a non-nil error.
	PoseInWorld(frameName string, positions map[string][]Input) (spatial.Pose, error)
}

// simpleFrameSystem implements FrameSystem. It is a simple tree graph.
type simpleFrameSystem struct {
	name    string
	world   Frame
	frames  map[string]Frame
	parents map[Frame]Frame
}

// NewEmptySimpleFrameSystem creates an empty tree of frames rooted at the world.
func NewEmptySimpleFrameSystem(name string) FrameSystem {
	worldFrame := NewZeroStaticFrame(World)
	return &simpleFrameSystem{name, worldFrame, map[string]Frame{}, map[Frame]Frame{}}
}

// Name returns the name of the simpleFrameSystem.
func (sfs *simpleFrameSystem) Name() string {
	return sfs.name
}

// World returns the base world frame.
func (sfs *simpleFrameSystem) World() Frame {
	return sfs.world
}

// frameExists is a helper function to see if a frame with a given name already
// exists in the system.
func (sfs *simpleFrameSystem) frameExists(name string) bool {
	if name == World {
		return true
	}
	_, ok := sfs.frames[name]
	return ok
}

// GetFrame returns the frame given the name of the frame. Returns nil if the
// frame is not found.
func (sfs *simpleFrameSystem) GetFrame(name string) Frame {
	if !sfs.frameExists(name) {
		return nil
	}
	if name == World {
		return sfs.world
	}
	return sfs.frames[name]
}

// FrameNames returns the list of frame names registered in the frame system,
// sorted for deterministic iteration.
func (sfs *simpleFrameSystem) FrameNames() []string {
	var frameNames []string
	for k := range sfs.frames {
		frameNames = append(frameNames, k)
	}
	sort.Strings(frameNames)
	return frameNames
}

// AddFrame sets an already defined Frame into the system.
func (sfs *simpleFrameSystem) AddFrame(frame, parent Frame) error {
	if parent == nil {
		return NewParentFrameMissingError()
	}
	if !sfs.frameExists(parent.Name()) {
		return NewFrameMissingError(parent.Name())
	}
	if sfs.frameExists(frame.Name()) {
		return NewFrameAlreadyExistsError(frame.Name())
	}
	sfs.frames[frame.Name()] = frame
	sfs.parents[frame] = parent
	return nil
}

// Parent returns the parent frame of the input frame. nil if input is World.
func (sfs *simpleFrameSystem) Parent(frame Frame) (Frame, error) {
	if !sfs.frameExists(frame.Name()) {
		return nil, NewFrameMissingError(frame.Name())
	}
	if frame == sfs.world {
		return nil, nil
	}
	return sfs.parents[frame], nil
}

// TracebackFrame traces the parentage of the given frame up to the world.
func (sfs *simpleFrameSystem) TracebackFrame(frame Frame) ([]Frame, error) {
	if !sfs.frameExists(frame.Name()) {
		return nil, NewFrameMissingError(frame.Name())
	}
	if frame == sfs.world {
		return []Frame{frame}, nil
	}
	parents, err := sfs.TracebackFrame(sfs.parents[frame])
	if err != nil {
		return nil, err
	}
	return append(parents, frame), nil
}

// PoseInWorld composes the chain of transforms from the world down to the
// named frame. Inputs for frames with nonzero DoF are looked up by frame name
// in positions; an absent entry is a lookup failure.
func (sfs *simpleFrameSystem) PoseInWorld(frameName string, positions map[string][]Input) (spatial.Pose, error) {
	frame := sfs.GetFrame(frameName)
	if frame == nil {
		return nil, NewFrameMissingError(frameName)
	}
	chain, err := sfs.TracebackFrame(frame)
	if err != nil {
		return nil, err
	}
	var errAll error
	composed := spatial.NewZeroPose()
	for _, f := range chain {
		inputs, err := frameInputs(f, positions)
		if err != nil {
			return nil, err
		}
		pose, errNew := f.Transform(inputs)
		if pose == nil {
			return nil, errNew
		}
		multierr.AppendInto(&errAll, errNew)
		composed = spatial.Compose(composed, pose)
	}
	return composed, errAll
}

// frameInputs pulls the inputs for a frame out of the positions map, verifying
// their length against the frame's DoF.
func frameInputs(frame Frame, positions map[string][]Input) ([]Input, error) {
	if len(frame.DoF()) == 0 {
		return []Input{}, nil
	}
	inputs, ok := positions[frame.Name()]
	if !ok {
		return nil, NewFrameMissingError(frame.Name())
	}
	if len(inputs) != len(frame.DoF()) {
		return nil, NewIncorrectInputLengthError(len(inputs), len(frame.DoF()))
	}
	return inputs, nil
}
