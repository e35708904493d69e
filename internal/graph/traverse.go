package graph

// MaxTrustHops is the default search depth for the deepest trust feature.
const MaxTrustHops = 4

// Reachable runs a breadth-first search from `from` and reports the hop count at
// which `to` is first found, stopping after maxHops levels. Unseen endpoints are
// never reachable.
func Reachable(g *Adjacency, from, to string, maxHops int) (int, bool) {
	if !g.HasNode(from) || !g.HasNode(to) || maxHops <= 0 {
		return 0, false
	}

	visited := map[string]bool{from: true}
	frontier := []string{from}

	for hop := 1; hop <= maxHops && len(frontier) > 0; hop++ {
		var next []string

		for _, id := range frontier {
			for n := range g.Neighbors(id) {
				if n == to {
					return hop, true
				}

				if !visited[n] {
					visited[n] = true
					next = append(next, n)
				}
			}
		}

		frontier = next
	}

	return 0, false
}
