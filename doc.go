/*
 * doc.go, part of goloos.
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

/*Package loos provides the core data model of a lightweight toolkit for
analyzing molecular structures: atoms, bonds and topologies, plus a few
facilities built on top of them.

	**Capabilities**

    Atom and Topology structures holding the static description of a
	molecular system (names, masses, charges, residues, bonds).

    A symmetric, deduplicated bond relation between atoms.

    Inference of the chemical element of an atom from its mass.

    Derivation of the connectivity groups (separate molecules) of a
	topology, via the chemgraph subpackage.

    Reading of AMBER topology (parmtop) files, via the amber subpackage,
	including gzip- and zstd-compressed files.

The coordinate, trajectory and numeric-analysis layers are not part of this
module; they consume the topologies assembled here.
*/
package loos
