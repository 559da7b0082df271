package trailcost

import (
	"fmt"

	"github.com/paulmach/orb"
)

// AugmentedWeight pairs a region with multiplier for cost of edges intersecting it
type AugmentedWeight struct {
	Geometry orb.Geometry
	Weight   float64
}

// NewAugmentedWeight creates augmentation
func NewAugmentedWeight(geometry orb.Geometry, weight float64) AugmentedWeight {
	return AugmentedWeight{Geometry: geometry, Weight: weight}
}

// Equal checks structural equality: same geometry and same weight
func (aw AugmentedWeight) Equal(other AugmentedWeight) bool {
	if aw.Weight != other.Weight {
		return false
	}
	if aw.Geometry == nil || other.Geometry == nil {
		return aw.Geometry == nil && other.Geometry == nil
	}
	return orb.Equal(aw.Geometry, other.Geometry)
}

// String returns pretty printed value for AugmentedWeight
func (aw AugmentedWeight) String() string {
	return fmt.Sprintf("Weight: %v | Geometry: %s", aw.Weight, PrepareWKTGeometry(aw.Geometry))
}

// AugmentationList is an ordered sequence of augmentations. Later entries may override earlier ones.
//
// List is not safe for concurrent appends
type AugmentationList []AugmentedWeight

// Add appends augmentation to the list
func (list *AugmentationList) Add(geometry orb.Geometry, weight float64) {
	*list = append(*list, NewAugmentedWeight(geometry, weight))
}

// Equal checks structural equality of lists (order matters)
func (list AugmentationList) Equal(other AugmentationList) bool {
	if len(list) != len(other) {
		return false
	}
	for i := range list {
		if !list[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
