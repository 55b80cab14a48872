// Package locomotion reshapes raw locomotion trajectory data into smooth
// derived trajectories: per-end-effector swing splines built through forward
// kinematics, and a centroidal dynamics trajectory (COM motion, angular
// momentum, per-patch contact forces) built from a contact sequence.
package locomotion

// DefaultPatchWidth is the number of control columns a contact patch carries
// when none is configured: a 6-dimensional generalized force.
const DefaultPatchWidth = 6

// ContactPatch names one maintained contact between an end effector and the
// environment. Patches are always handled as an ordered slice; the order
// determines which contiguous control columns belong to which patch.
type ContactPatch struct {
	// Name identifies the patch, e.g. "RF_patch".
	Name string
	// FrameName is the end-effector frame in the kinematic model, e.g. "RF_foot".
	FrameName string
	// Width is the number of control columns the patch occupies. Zero means
	// DefaultPatchWidth.
	Width int
}

func (cp ContactPatch) width() int {
	if cp.Width == 0 {
		return DefaultPatchWidth
	}
	return cp.Width
}

// ColumnRange is a half-open range [Start, End) of control columns.
type ColumnRange struct {
	Start int
	End   int
}

// PatchRanges assigns contiguous column ranges to the patches in order. The
// ranges must exactly partition the given control width; any gap or overflow
// is a dimension mismatch.
func PatchRanges(patches []ContactPatch, controlWidth int) ([]ColumnRange, error) {
	ranges := make([]ColumnRange, 0, len(patches))
	start := 0
	for _, patch := range patches {
		ranges = append(ranges, ColumnRange{Start: start, End: start + patch.width()})
		start += patch.width()
	}
	if start != controlWidth {
		return nil, NewControlWidthError(controlWidth, start)
	}
	return ranges, nil
}
