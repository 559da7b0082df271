package trailcost

import "fmt"

// EdgeFlags is a packed edge record: speed, access in both directions and priority factor.
// Layout is defined by WayEncoder which produced the flags
type EdgeFlags uint64

// String returns pretty printed value for EdgeFlags
func (flags EdgeFlags) String() string {
	return fmt.Sprintf("%#016x", uint64(flags))
}
