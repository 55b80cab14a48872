package referenceframe

import (
	"sync"

	"go.uber.org/multierr"

	spatial "github.com/gaitworks/locomotion/spatialmath"
)

// A Model is a frame composed of an ordered chain of simpler frames, e.g. a
// robot leg modeled as alternating joints and fixed links. It implements Frame,
// with a DoF equal to the sum of the DoF of its constituent transforms.
type Model interface {
	Frame
	OrderedTransforms() []Frame
}

// SimpleModel is a model of a serial kinematic chain. OrdTransforms is ordered
// from the base of the chain to the tip.
type SimpleModel struct {
	name          string
	OrdTransforms []Frame

	limits []Limit
	lock   sync.RWMutex
}

// NewSimpleModel constructs a new named model from transforms ordered base to tip.
func NewSimpleModel(name string, transforms []Frame) *SimpleModel {
	return &SimpleModel{name: name, OrdTransforms: transforms}
}

// Name returns the name of this model.
func (m *SimpleModel) Name() string {
	return m.name
}

// OrderedTransforms returns the chain of constituent frames, base to tip.
func (m *SimpleModel) OrderedTransforms() []Frame {
	return m.OrdTransforms
}

// Transform takes a model and a list of joint inputs and computes the pose of
// the tip of the chain relative to its base. Out-of-bounds inputs are still
// computed, with a non-nil error alongside the valid pose.
func (m *SimpleModel) Transform(inputs []Input) (spatial.Pose, error) {
	if len(inputs) != len(m.DoF()) {
		return nil, NewIncorrectInputLengthError(len(inputs), len(m.DoF()))
	}
	var err error
	composed := spatial.NewZeroPose()
	posIdx := 0
	for _, transform := range m.OrdTransforms {
		dof := len(transform.DoF()) + posIdx
		input := inputs[posIdx:dof]
		posIdx = dof

		pose, errNew := transform.Transform(input)
		// Fail if inputs are incorrect and pose is nil, but allow querying
		// out-of-bounds positions
		if pose == nil {
			return nil, errNew
		}
		multierr.AppendInto(&err, errNew)
		composed = spatial.Compose(composed, pose)
	}
	return composed, err
}

// DoF returns the movement limits of each degree of freedom within the model.
func (m *SimpleModel) DoF() []Limit {
	m.lock.RLock()
	if len(m.limits) > 0 {
		defer m.lock.RUnlock()
		return m.limits
	}
	m.lock.RUnlock()

	limits := make([]Limit, 0, len(m.OrdTransforms))
	for _, transform := range m.OrdTransforms {
		limits = append(limits, transform.DoF()...)
	}
	m.lock.Lock()
	m.limits = limits
	m.lock.Unlock()
	return limits
}

// AlmostEquals returns true if the only difference between this model and
// another is floating point imprecision.
func (m *SimpleModel) AlmostEquals(otherFrame Frame) bool {
	other, ok := otherFrame.(*SimpleModel)
	if !ok {
		return false
	}
	if m.name != other.name {
		return false
	}
	if len(m.OrdTransforms) != len(other.OrdTransforms) {
		return false
	}
	for idx, transform := range m.OrdTransforms {
		if !transform.AlmostEquals(other.OrdTransforms[idx]) {
			return false
		}
	}
	return true
}
