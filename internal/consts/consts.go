package consts

const (
	PivotAbsTol = 1e-10 // Pivot magnitude at or below this counts as singular

	MinNodes    = 2 // Reference node plus at least one other
	MaxNodes    = 10
	MinElements = 1
	MaxElements = 20
)
