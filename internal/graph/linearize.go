package graph

// Linearize walks the graph from its start node and returns the stages in
// pipeline order. The walk stops at the first node whose outgoing edge
// count is not exactly one (branch, merge-into-fork or dead end) and at the
// first already-visited target (cycle). Truncation is silent: only strictly
// linear topologies are supported, anything past a fan-out is dropped
// rather than reported as an error.
//
// A graph with no start node yields an empty slice, which the generators
// interpret as "nothing to generate".
func Linearize(g Graph) []Node {
	byID := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}

	var startID string
	found := false
	for _, n := range g.Nodes {
		if n.Kind == KindStart {
			startID = n.ID
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	adjacency := make(map[string][]string, len(g.Edges))
	for _, e := range g.Edges {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
	}

	ordered := make([]Node, 0, len(g.Nodes))
	visited := make(map[string]bool, len(g.Nodes))

	current := startID
	for {
		node, ok := byID[current]
		if !ok {
			break
		}
		ordered = append(ordered, node)
		visited[current] = true

		targets := adjacency[current]
		if len(targets) != 1 {
			break
		}
		if visited[targets[0]] {
			break
		}
		current = targets[0]
	}

	return ordered
}
