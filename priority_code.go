package trailcost

// PriorityCode is a discrete routing-preference level of an edge
type PriorityCode uint16

const (
	PRIORITY_WORST = PriorityCode(iota)
	PRIORITY_AVOID_AT_ALL_COSTS
	PRIORITY_REACH_DEST
	PRIORITY_AVOID_IF_POSSIBLE
	PRIORITY_UNCHANGED
	PRIORITY_PREFER
	PRIORITY_VERY_NICE
	PRIORITY_BEST
)

func (iotaIdx PriorityCode) String() string {
	if iotaIdx > PRIORITY_BEST {
		return "unknown"
	}
	return [...]string{"worst", "avoid_at_all_costs", "reach_dest", "avoid_if_possible", "unchanged", "prefer", "very_nice", "best"}[iotaIdx]
}

// Factor returns decimal representation of priority code which is stored in edge flags (code / BEST)
func (iotaIdx PriorityCode) Factor() float64 {
	return float64(iotaIdx) / float64(PRIORITY_BEST)
}

// priorityFactorStep is the quantization step of stored priority factor
func priorityFactorStep() float64 {
	return PRIORITY_AVOID_AT_ALL_COSTS.Factor()
}
