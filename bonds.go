/*
 * bonds.go, part of goloos.
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

//Bond is a chemical bond between 2 atoms. The same *Bond is held by
//both atoms, so the bond relation is symmetric by construction.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
}

//Cross returns the atom at the other side of the bond from origin.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}

//Bonded returns true if A and at2 share a bond.
func (A *Atom) Bonded(at2 *Atom) bool {
	for _, v := range A.Bonds {
		if (v.At1 == A && v.At2 == at2) || (v.At1 == at2 && v.At2 == A) {
			return true
		}
	}
	return false
}

//NewBond bonds at1 and at2, appending the new bond to the bond slice
//of both atoms, and returns it. It does not check whether the atoms
//were already bonded, use Bonded for that.
func NewBond(at1, at2 *Atom, index int) *Bond {
	b := &Bond{Index: index, At1: at1, At2: at2}
	at1.Bonds = append(at1.Bonds, b)
	at2.Bonds = append(at2.Bonds, b)
	return b
}
