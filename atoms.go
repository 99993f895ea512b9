/*
 * atoms.go, part of goloos.
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

import (
	"fmt"

	"github.com/skelterjohn/go.matrix"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

//Atom contains the static information for one atom: everything except
//for the coordinates, which belong to a separate layer.
type Atom struct {
	ID      int    //The 1-based id given by the file the atom was read from.
	Name    string
	Symbol  string //chemical element. May be inferred from the mass.
	MolName string //the residue name.
	MolID   int    //the residue id, 1-based.
	Mass    float64
	Charge  float64
	Index   int //0-based position of the atom in its Topology. Set by FillIndexes.
	Bonds   []*Bond
}

//Copy returns a copy of the Atom object. Note that the bond slice
//is shared with the original, as bonds reference other atoms.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.ID = A.ID
	Newat.Name = A.Name
	Newat.Symbol = A.Symbol
	Newat.MolName = A.MolName
	Newat.MolID = A.MolID
	Newat.Mass = A.Mass
	Newat.Charge = A.Charge
	Newat.Index = A.Index
	Newat.Bonds = A.Bonds
	return Newat
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time
//(i.e. everything except for coordinates and b-factors). It exclusively owns its atom slice.
type Topology struct {
	Atoms    []*Atom
	title    string
	groups   [][]int //connectivity groups, one slice of 0-based atom indexes per group.
	charge   int
	unpaired int
}

//MakeTopology makes a topology from ats atoms, with total charge charge and
//unpaired unpaired electrons, and returns it. It returns error if the atom
//slice is nil. It doesnt check for correct charge or unpaired electrons.
func MakeTopology(ats []*Atom, charge, unpaired int) (*Topology, error) {
	if ats == nil {
		return nil, CError{"Supplied a nil atom slice", []string{"MakeTopology"}}
	}
	top := new(Topology)
	top.Atoms = ats
	top.charge = charge
	top.unpaired = unpaired
	return top, nil
}

/*Topology methods*/

//Charge gets the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

//Unpaired gets the number of unpaired electrons in the topology
func (T *Topology) Unpaired() int {
	return T.unpaired
}

//SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//SetUnpaired sets the number of unpaired electrons in the topology to i
func (T *Topology) SetUnpaired(i int) {
	T.unpaired = i
}

//Title returns the title read from the originating file, if any.
func (T *Topology) Title() string {
	return T.title
}

//SetTitle sets the title of the topology to s.
func (T *Topology) SetTitle(s string) {
	T.title = s
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//SetAtom sets the (i+1)th Atom of the topology to at.
//Panics if out of range
func (T *Topology) SetAtom(i int, at *Atom) {
	if i >= T.Len() {
		panic("Topology: Tried to set Atom out of bounds")
	}
	T.Atoms[i] = at
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//FillIndexes sets the Index field of each atom to its current
//position in the topology.
func (T *Topology) FillIndexes() {
	for key := range T.Atoms {
		T.Atoms[key].Index = key
	}
}

//SomeAtoms, given a list of ints, returns a topology with the atoms
//at the corresponding positions in T. Changes to these atoms affect
//the original topology. The charge and multiplicity of the returned
//topology is just that of the parent and not guarranteed to be correct.
func (T *Topology) SomeAtoms(atomlist []int) (*Topology, error) {
	var ret []*Atom
	lenatoms := len(T.Atoms)
	for k, j := range atomlist {
		if j > lenatoms-1 {
			return nil, CError{fmt.Sprintf("Atom requested (Number: %d, value: %d) out of range", k, j), []string{"SomeAtoms"}}
		}
		ret = append(ret, T.Atoms[j])
	}
	return MakeTopology(ret, T.Charge(), T.Unpaired())
}

//Masses returns a slice with the masses of all atoms, and an error
//if they have not all been obtained.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		thisatom := T.Atom(i)
		if thisatom.Mass == 0 {
			return nil, CError{fmt.Sprintf("Not all the masses have been obtained: %d %v", i, thisatom), []string{"Masses"}}
		}
		mass[i] = thisatom.Mass
	}
	return mass, nil
}

//MassCol returns a DenseMatrix 1-col matrix with the masses of the atoms,
//and an error if they have not been obtained. It is kept for compatibility
//with the go.matrix-based tools.
func (T *Topology) MassCol() (*matrix.DenseMatrix, error) {
	mass, err := T.Masses()
	if err != nil {
		return nil, errDecorate(err, "MassCol")
	}
	massmat := matrix.MakeDenseMatrix(mass, len(mass), 1)
	return massmat, nil
}

//SetConnectivity stores the connectivity groups of the topology. Each
//group is a set of 0-based atom indexes belonging to the same connected
//molecule. The groups are normally obtained with chemgraph.Components.
func (T *Topology) SetConnectivity(groups [][]int) {
	T.groups = groups
}

//Connectivity returns the connectivity groups of the topology, or nil
//if they have not been derived.
func (T *Topology) Connectivity() [][]int {
	return T.groups
}
