/*
 * format.go, part of goloos.
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
	"bufio"
	"io"
	"strconv"
	"strings"
)

//lineReader is a sequential line source with 1-based line numbering.
//A single line can be held back with hold, so a block reader that runs
//into the next section tag can leave it for the dispatcher.
type lineReader struct {
	scan   *bufio.Scanner
	line   string
	lineno int
	held   bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scan: bufio.NewScanner(r)}
}

//next advances to the following line. It returns false when the
//input is exhausted.
func (r *lineReader) next() bool {
	if r.held {
		r.held = false
		return true
	}
	if !r.scan.Scan() {
		return false
	}
	r.line = r.scan.Text()
	r.lineno++
	return true
}

//hold makes the current line available again on the next call to next.
func (r *lineReader) hold() {
	r.held = true
}

//err reports any underlying read error. next returning false can mean
//either a clean end of input or a failed read; only err tells them
//apart.
func (r *lineReader) err() error {
	return r.scan.Err()
}

//FieldFormat is a Fortran format specification extracted from a
//%FORMAT directive: Repeat fields of Width characters apiece per line.
//It describes the data lines of the section it precedes only, and is
//not kept after the section is read.
type FieldFormat struct {
	Repeat    int
	Type      byte
	Width     int
	Precision int
}

//fmtScanner walks a format substring the way an input stream would,
//skipping whitespace between tokens.
type fmtScanner struct {
	s   string
	pos int
}

func (f *fmtScanner) skipSpaces() {
	for f.pos < len(f.s) && (f.s[f.pos] == ' ' || f.s[f.pos] == '\t') {
		f.pos++
	}
}

//readInt extracts a (possibly signed) decimal integer.
func (f *fmtScanner) readInt() (int, bool) {
	f.skipSpaces()
	start := f.pos
	if f.pos < len(f.s) && (f.s[f.pos] == '+' || f.s[f.pos] == '-') {
		f.pos++
	}
	digits := f.pos
	for f.pos < len(f.s) && f.s[f.pos] >= '0' && f.s[f.pos] <= '9' {
		f.pos++
	}
	if f.pos == digits {
		f.pos = start
		return 0, false
	}
	n, err := strconv.Atoi(f.s[start:f.pos])
	if err != nil {
		f.pos = start
		return 0, false
	}
	return n, true
}

//readByte extracts the next non-space character.
func (f *fmtScanner) readByte() (byte, bool) {
	f.skipSpaces()
	if f.pos >= len(f.s) {
		return 0, false
	}
	b := f.s[f.pos]
	f.pos++
	return b, true
}

//The four grammars a format substring can take, in descending
//specificity: nTw.p, nTw, Tw and T alone. Each is an independent
//parse attempt; trailing characters beyond what a grammar needs are
//ignored, as the first grammar to match wins.

func fullFormat(s string) (FieldFormat, bool) {
	var ff FieldFormat
	f := &fmtScanner{s: s}
	var ok bool
	if ff.Repeat, ok = f.readInt(); !ok {
		return ff, false
	}
	if ff.Type, ok = f.readByte(); !ok {
		return ff, false
	}
	if ff.Width, ok = f.readInt(); !ok {
		return ff, false
	}
	period, ok := f.readByte()
	if !ok || period != '.' {
		return ff, false
	}
	if ff.Precision, ok = f.readInt(); !ok {
		return ff, false
	}
	return ff, true
}

func repeatFormat(s string) (FieldFormat, bool) {
	var ff FieldFormat
	f := &fmtScanner{s: s}
	var ok bool
	if ff.Repeat, ok = f.readInt(); !ok {
		return ff, false
	}
	if ff.Type, ok = f.readByte(); !ok {
		return ff, false
	}
	if ff.Width, ok = f.readInt(); !ok {
		return ff, false
	}
	return ff, true
}

func widthFormat(s string) (FieldFormat, bool) {
	var ff FieldFormat
	f := &fmtScanner{s: s}
	var ok bool
	if ff.Type, ok = f.readByte(); !ok {
		return ff, false
	}
	if ff.Width, ok = f.readInt(); !ok {
		return ff, false
	}
	ff.Repeat = 1
	return ff, true
}

func bareFormat(s string) (FieldFormat, bool) {
	var ff FieldFormat
	f := &fmtScanner{s: s}
	var ok bool
	if ff.Type, ok = f.readByte(); !ok {
		return ff, false
	}
	return ff, true
}

var formatGrammars = []func(string) (FieldFormat, bool){
	fullFormat,
	repeatFormat,
	widthFormat,
	bareFormat,
}

//parseFormat advances the reader to the next line and parses it as a
//%FORMAT directive, trying each grammar in order. The parsed format
//type must be one of the characters in expected (e.g. "EFG" for a
//section holding floats), otherwise a WrongFormatType error is
//returned. where is only used in error messages.
func (p *parser) parseFormat(expected, where string) (FieldFormat, error) {
	var ff FieldFormat
	if !p.r.next() {
		return ff, p.wrapError(MissingFormat + " for " + where)
	}
	if !strings.HasPrefix(p.r.line, "%FORMAT") {
		return ff, p.wrapError(MissingFormat + " for " + where)
	}
	open := strings.IndexByte(p.r.line, '(')
	if open < 0 {
		return ff, p.wrapError(UnparsableFormat + " for " + where)
	}
	closing := strings.IndexByte(p.r.line[open+1:], ')')
	if closing < 0 {
		return ff, p.wrapError(UnparsableFormat + " for " + where)
	}
	inner := p.r.line[open+1 : open+1+closing]
	for _, grammar := range formatGrammars {
		got, ok := grammar(inner)
		if !ok {
			continue
		}
		if strings.IndexByte(expected, got.Type) < 0 {
			return ff, p.wrapError(WrongFormatType + " for " + where)
		}
		return got, nil
	}
	return ff, p.wrapError(UnparsableFormat + " for " + where)
}

//Converters for readBlock. They return false on fields that fail to
//yield a value (blank, or unparsable for the numeric kinds).

func convInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func convFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

//String fields are returned uncut except at the field boundaries;
//callers trim where their section calls for it.
func convString(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

//readBlock consumes data lines from r, splitting each into at most
//ff.Repeat fields of ff.Width characters and converting them with conv,
//until a line yields no values or the next section tag is reached (the
//tag line is held back for the dispatcher). The reader does not know
//how many values the caller wants; the section parsers validate the
//length of the returned block.
func readBlock[T any](r *lineReader, ff FieldFormat, conv func(string) (T, bool)) []T {
	var data []T
	for r.next() {
		if strings.HasPrefix(r.line, "%") {
			r.hold()
			break
		}
		read := 0
		if ff.Width <= 0 {
			//a bare-type format gives no layout, so fall back to
			//whitespace-separated fields.
			for _, field := range strings.Fields(r.line) {
				v, ok := conv(field)
				if !ok {
					break
				}
				data = append(data, v)
				read++
			}
		} else {
			for pos, n := 0, 0; pos < len(r.line); pos, n = pos+ff.Width, n+1 {
				if ff.Repeat > 0 && n >= ff.Repeat {
					break
				}
				end := pos + ff.Width
				if end > len(r.line) {
					end = len(r.line)
				}
				v, ok := conv(r.line[pos:end])
				if !ok {
					break
				}
				data = append(data, v)
				read++
			}
		}
		if read == 0 {
			break
		}
	}
	return data
}
