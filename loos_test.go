/*
 * loos_test.go, part of goloos.
 *
 * Copyright 2024 The goLOOS developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package loos

import "testing"

func testTop(masses []float64) *Topology {
	ats := make([]*Atom, len(masses))
	for i, m := range masses {
		ats[i] = &Atom{ID: i + 1, Mass: m}
	}
	top, _ := MakeTopology(ats, 0, 0)
	return top
}

func TestBonds(Te *testing.T) {
	top := testTop([]float64{16.0, 1.008, 1.008})
	top.FillIndexes()
	o, h1, h2 := top.Atom(0), top.Atom(1), top.Atom(2)
	NewBond(o, h1, 0)
	NewBond(o, h2, 1)
	if !o.Bonded(h1) || !h1.Bonded(o) {
		Te.Error("bond is not mutual")
	}
	if h1.Bonded(h2) {
		Te.Error("spurious bond")
	}
	if o.Bonds[0].Cross(o) != h1 || h1.Bonds[0].Cross(h1) != o {
		Te.Error("Cross doesn't return the atom at the other side")
	}
	if len(o.Bonds) != 2 {
		Te.Errorf("oxygen has %d bonds", len(o.Bonds))
	}
}

func TestMasses(Te *testing.T) {
	top := testTop([]float64{16.0, 1.008, 1.008})
	masses, err := top.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	if len(masses) != 3 || masses[0] != 16.0 {
		Te.Errorf("masses: %v", masses)
	}
	col, err := top.MassCol()
	if err != nil {
		Te.Fatal(err)
	}
	if col.Rows() != 3 || col.Cols() != 1 || col.Get(2, 0) != 1.008 {
		Te.Error("mass column malformed")
	}
	//A zero mass means the masses were never obtained.
	bad := testTop([]float64{16.0, 0})
	if _, err := bad.Masses(); err == nil {
		Te.Error("accepted a topology with missing masses")
	}
}

func TestSymbolFromMass(Te *testing.T) {
	cases := []struct {
		mass float64
		want string
	}{
		{1.008, "H"},
		{12.011, "C"},
		{14.007, "N"},
		{15.999, "O"},
		{22.99, "Na"},
		{35.453, "Cl"},
	}
	for _, c := range cases {
		got, err := SymbolFromMass(c.mass)
		if err != nil {
			Te.Errorf("mass %f: %s", c.mass, err.Error())
			continue
		}
		if got != c.want {
			Te.Errorf("mass %f gave %q, wanted %q", c.mass, got, c.want)
		}
	}
	if _, err := SymbolFromMass(6.6); err == nil {
		Te.Error("matched a mass far from every tabulated element")
	}
}

func TestDeduceSymbols(Te *testing.T) {
	top := testTop([]float64{16.0, 1.008, 300.0})
	top.DeduceSymbols()
	if top.Atom(0).Symbol != "O" || top.Atom(1).Symbol != "H" {
		Te.Errorf("symbols: %q %q", top.Atom(0).Symbol, top.Atom(1).Symbol)
	}
	if top.Atom(2).Symbol != "" {
		Te.Errorf("an unmatchable mass got symbol %q", top.Atom(2).Symbol)
	}
}

func TestAtomCopy(Te *testing.T) {
	top := testTop([]float64{16.0, 1.008})
	top.FillIndexes()
	NewBond(top.Atom(0), top.Atom(1), 0)
	at := top.Atom(0)
	at.Name = "O"
	cp := at.Copy()
	cp.Name = "OW"
	if at.Name != "O" {
		Te.Error("changing the copy changed the original")
	}
	if len(cp.Bonds) != 1 || cp.Bonds[0] != at.Bonds[0] {
		Te.Error("the copy doesn't share the bonds of the original")
	}
}

func TestSomeAtoms(Te *testing.T) {
	top := testTop([]float64{16.0, 1.008, 1.008})
	sub, err := top.SomeAtoms([]int{0, 2})
	if err != nil {
		Te.Fatal(err)
	}
	if sub.Len() != 2 || sub.Atom(1) != top.Atom(2) {
		Te.Error("wrong selection")
	}
	if _, err := top.SomeAtoms([]int{5}); err == nil {
		Te.Error("accepted an out of range selection")
	}
}
