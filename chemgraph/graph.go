//Package chemgraph exposes a loos.Topology as a gonum graph, with atoms
//as nodes and bonds as edges, so the gonum graph algorithms can be run
//directly on a molecular system.
package chemgraph

import (
	"sort"

	loos "github.com/mehdishafiei/loos"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"
)

//Atom wraps a *loos.Atom so it fullfills graph.Node. The node id is
//the 0-based index of the atom in its topology, so FillIndexes must
//have been called on the topology before building the graph.
type Atom struct {
	*loos.Atom
}

func (A Atom) ID() int64 {
	return int64(A.Index)
}

//Bond wraps a *loos.Bond so it fullfills graph.Edge.
type Bond struct {
	*loos.Bond
}

func (B Bond) From() graph.Node {
	return Atom{B.At1}
}

func (B Bond) To() graph.Node {
	return Atom{B.At2}
}

//Bonds are not directional, so the reversed edge is the same edge.
func (B Bond) ReversedEdge() graph.Edge {
	return Bond{&loos.Bond{Index: B.Index, At1: B.At2, At2: B.At1}}
}

//Topology implements graph.Undirected over the bond relation of a
//loos topology.
type Topology struct {
	mol loos.Atomer
}

//NewTopology returns a graph over the atoms and bonds of mol.
func NewTopology(mol *loos.Topology) *Topology {
	mol.FillIndexes()
	return &Topology{mol: mol}
}

func (T *Topology) Node(id int64) graph.Node {
	if id < 0 || id >= int64(T.mol.Len()) {
		return nil
	}
	return Atom{T.mol.Atom(int(id))}
}

func (T *Topology) Nodes() graph.Nodes {
	nodes := make([]graph.Node, T.mol.Len())
	for i := 0; i < T.mol.Len(); i++ {
		nodes[i] = Atom{T.mol.Atom(i)}
	}
	return iterator.NewOrderedNodes(nodes)
}

func (T *Topology) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(T.mol.Len()) {
		return graph.Empty
	}
	at := T.mol.Atom(int(id))
	nodes := make([]graph.Node, 0, len(at.Bonds))
	for _, b := range at.Bonds {
		nodes = append(nodes, Atom{b.Cross(at)})
	}
	if len(nodes) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(nodes)
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	return T.EdgeBetween(xid, yid) != nil
}

func (T *Topology) Edge(uid, vid int64) graph.Edge {
	return T.EdgeBetween(uid, vid)
}

func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	if xid == yid {
		return nil
	}
	if xid < 0 || xid >= int64(T.mol.Len()) || yid < 0 || yid >= int64(T.mol.Len()) {
		return nil
	}
	at := T.mol.Atom(int(xid))
	for _, b := range at.Bonds {
		if int64(b.Cross(at).Index) == yid {
			return Bond{b}
		}
	}
	return nil
}

//Components returns the connectivity groups of mol: one slice of
//0-based atom indexes per connected molecule. Indexes are sorted
//within each group, and groups are sorted by their first atom.
func Components(mol *loos.Topology) [][]int {
	g := NewTopology(mol)
	components := topo.ConnectedComponents(g)
	groups := make([][]int, 0, len(components))
	for _, comp := range components {
		indexes := make([]int, 0, len(comp))
		for _, node := range comp {
			indexes = append(indexes, int(node.ID()))
		}
		sort.Ints(indexes)
		groups = append(groups, indexes)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}
