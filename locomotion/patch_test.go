package locomotion

import (
	"testing"

	"go.viam.com/test"
)

func TestPatchRanges(t *testing.T) {
	patches := []ContactPatch{
		{Name: "RF_patch"},
		{Name: "LF_patch"},
		{Name: "RH_patch"},
		{Name: "LH_patch"},
	}
	ranges, err := PatchRanges(patches, 24)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ranges, test.ShouldResemble, []ColumnRange{{0, 6}, {6, 12}, {12, 18}, {18, 24}})

	// ranges must partition the control width exactly
	_, err = PatchRanges(patches, 23)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = PatchRanges(patches, 30)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPatchRangesCustomWidths(t *testing.T) {
	patches := []ContactPatch{
		{Name: "hand", Width: 3},
		{Name: "foot"},
	}
	ranges, err := PatchRanges(patches, 9)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ranges, test.ShouldResemble, []ColumnRange{{0, 3}, {3, 9}})
}
