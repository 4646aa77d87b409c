package suite

import "github.com/matzehuels/topogen/pkg/topology"

// StarfishRayLength is the maximum ray length of the built-in starfish test.
const StarfishRayLength = 7

var defaultTests = []Binding{
	{ID: 0, Name: "clique", Topology: topology.KindClique, Nodes: Between(5, 10)},
	{ID: 1, Name: "path", Topology: topology.KindPath, Nodes: Between(5, 10)},
	{ID: 2, Name: "paths", Topology: topology.KindPath, Nodes: Between(8, 15), Components: Between(3, 6)},
	{ID: 3, Name: "tree", Topology: topology.KindTree, Nodes: Between(5, 10)},
	{ID: 4, Name: "forest", Topology: topology.KindForest, Nodes: Between(10, 15), Components: Between(3, 4)},
	{ID: 5, Name: "shallow-forest", Topology: topology.KindShallowForest, Nodes: Between(10, 15), Components: Between(3, 4)},
	{ID: 6, Name: "starfish", Topology: topology.KindStarfish, Nodes: Between(5, 20), Rays: Between(3, 4), MaxRayLength: StarfishRayLength},
	{ID: 7, Name: "sparse", Topology: topology.KindSparse, Nodes: Between(10, 15)},
	{ID: 8, Name: "dense", Topology: topology.KindDense, Nodes: Between(10, 15)},
	{ID: 9, Name: "bounded-tree", Topology: topology.KindBoundedTree, Nodes: Between(10, 20), MinDegree: 2, MaxDegree: 4},
	// Paths on 1 or 2 nodes have a single labeling, so two different ones
	// need at least 3.
	{ID: 10, Name: "distinct-paths", Topology: topology.KindPath, Nodes: Between(3, 10), Distinct: true},
}

// Default returns the built-in suite.
func Default() *Suite {
	s, err := New(defaultTests...)
	if err != nil {
		panic("suite: invalid default table: " + err.Error())
	}
	return s
}
