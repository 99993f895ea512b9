/*
 * errors.go, part of goloos.
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

package amber

import (
	"fmt"

	loos "github.com/mehdishafiei/loos"
)

//errDecorate is a helper function that asserts that the error
//implements loos.Error and decorates the error with the caller's name
//before returning it. If used with a non-loos.Error error, it will
//cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(loos.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for parmtop reading errors. It carries
//the 1-based number of the line where the problem was detected, and
//fullfills loos.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("Amber topology, line %d: %s", err.line, err.message)
	}
	return fmt.Sprintf("Amber topology file %s, line %d: %s", err.filename, err.line, err.message)
}

func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Line() int { return err.line }

func (err Error) Format() string { return "Amber parmtop" }

func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen         = "Unable to open file"
	MissingFormat        = "Expected a %FORMAT directive"
	UnparsableFormat     = "Cannot parse format"
	WrongFormatType      = "Invalid format type"
	MissingPointers      = "POINTERS section required"
	DuplicatedPointers   = "Internal error: trying to read an amber parmtop into a non-empty topology"
	UnassignableResidues = "Unable to assign residues"
)
