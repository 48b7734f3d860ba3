package pkg

const (
	// INF_WEIGHT stands in for an unreachable cost in reports and tables.
	INF_WEIGHT float64 = 1e15
)
