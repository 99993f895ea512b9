package chemgraph

import (
	"testing"

	loos "github.com/mehdishafiei/loos"
)

func testTop(natoms int, bonds [][2]int) *loos.Topology {
	ats := make([]*loos.Atom, natoms)
	for i := range ats {
		ats[i] = &loos.Atom{ID: i + 1}
	}
	top, _ := loos.MakeTopology(ats, 0, 0)
	top.FillIndexes()
	for i, b := range bonds {
		loos.NewBond(top.Atom(b[0]), top.Atom(b[1]), i)
	}
	return top
}

//TestComponents derives the connectivity groups of a system with a
//3-atom molecule, a 2-atom molecule and a lone atom.
func TestComponents(Te *testing.T) {
	top := testTop(6, [][2]int{{0, 1}, {1, 2}, {4, 5}})
	groups := Components(top)
	if len(groups) != 3 {
		Te.Fatalf("got %d groups: %v", len(groups), groups)
	}
	want := [][]int{{0, 1, 2}, {3}, {4, 5}}
	for i, g := range groups {
		if len(g) != len(want[i]) {
			Te.Fatalf("group %d is %v, wanted %v", i, g, want[i])
		}
		for j := range g {
			if g[j] != want[i][j] {
				Te.Errorf("group %d is %v, wanted %v", i, g, want[i])
				break
			}
		}
	}
}

func TestGraph(Te *testing.T) {
	top := testTop(3, [][2]int{{0, 1}})
	g := NewTopology(top)
	if g.Nodes().Len() != 3 {
		Te.Errorf("graph has %d nodes", g.Nodes().Len())
	}
	if !g.HasEdgeBetween(0, 1) || !g.HasEdgeBetween(1, 0) {
		Te.Error("bond edge missing or not symmetric")
	}
	if g.HasEdgeBetween(0, 2) || g.HasEdgeBetween(1, 1) {
		Te.Error("spurious edge")
	}
	if g.From(0).Len() != 1 || g.From(2).Len() != 0 {
		Te.Error("wrong neighbor counts")
	}
	e := g.Edge(0, 1)
	if e == nil || e.From().ID() != 0 || e.To().ID() != 1 {
		Te.Error("edge endpoints are wrong")
	}
}
