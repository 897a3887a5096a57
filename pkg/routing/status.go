package routing

// RouteStatus is the terminal state of a route request
type RouteStatus string

const (
	// StatusSuccess means a shortest path was computed
	StatusSuccess RouteStatus = "success"
	// StatusValidationError means the request failed precondition checks
	StatusValidationError RouteStatus = "validation_error"
	// StatusNoPath means the goal is unreachable from the start
	StatusNoPath RouteStatus = "no_path"
	// StatusNegativeCycle means a negative cycle makes the path undefined
	StatusNegativeCycle RouteStatus = "negative_cycle"
	// StatusTimeout means the computation exceeded its time budget
	StatusTimeout RouteStatus = "timeout"
	// StatusAlgorithmError means the algorithm failed in an unexpected way
	StatusAlgorithmError RouteStatus = "algorithm_error"
	// StatusFailure means all retry attempts were exhausted
	StatusFailure RouteStatus = "failure"
)
