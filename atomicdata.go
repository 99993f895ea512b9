/*
 * atomicdata.go, part of goloos.
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

import "fmt"

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//The default mass tolerance for SymbolFromMass. Topology files round
//masses differently, so an exact lookup would miss most of them.
const massTol = 0.6

//SymbolFromMass returns the chemical symbol whose tabulated mass is
//closest to mass, within the tolerance tol (massTol if not given).
//It returns an error if no element in the table is close enough.
func SymbolFromMass(mass float64, tol ...float64) (string, error) {
	t := massTol
	if len(tol) > 0 {
		t = tol[0]
	}
	best := ""
	bestdiff := t
	for symbol, m := range symbolMass {
		diff := m - mass
		if diff < 0 {
			diff = -diff
		}
		if diff < bestdiff {
			best = symbol
			bestdiff = diff
		}
	}
	if best == "" {
		return "", CError{fmt.Sprintf("No element within %4.2f of mass %6.3f", t, mass), []string{"SymbolFromMass"}}
	}
	return best, nil
}

//DeduceSymbols fills the Symbol field of every atom in the topology
//from its mass. Atoms whose mass doesn't match any tabulated element
//keep their previous symbol (the empty string if none was ever read).
func (T *Topology) DeduceSymbols() {
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		symbol, err := SymbolFromMass(at.Mass)
		if err != nil {
			continue
		}
		at.Symbol = symbol
	}
}
