package attrs

// Position is an integer grid coordinate assigned to a node once the
// per-axis ordering DAGs have been topologically sorted.
type Position struct {
	X, Y int
}
