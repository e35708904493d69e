package graph

// AverageDegree returns 2*edges/nodes with integer truncation, and 0 for an
// empty graph. The truncation is part of the sizing policy: it biases filters
// small on sparse graphs.
func AverageDegree(edges, nodes int) int {
	if nodes <= 0 || edges <= 0 {
		return 0
	}

	return 2 * edges / nodes
}

// ExpectedTwoHop estimates how many ids a node's two-hop filter will hold.
func ExpectedTwoHop(degree, avgDegree int) int {
	if degree <= 0 || avgDegree <= 0 {
		return 0
	}

	return degree * avgDegree
}
