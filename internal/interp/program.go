package interp

import "sort"

// sentinelLineNumber marks the placeholder ProgramLine that always precedes
// every real line after sorting (§3). It is never executed.
const sentinelLineNumber = -1

// ProgramLine is one stored line: its number and source text.
type ProgramLine struct {
	Number int32
	Text   string
}

// ProgramStore holds the program's lines, kept sorted ascending by line
// number before any execution or LIST. The sentinel line always occupies
// position 0 once sorted.
type ProgramStore struct {
	lines []ProgramLine
}

// NewProgramStore returns a store containing only the sentinel line.
func NewProgramStore() *ProgramStore {
	return &ProgramStore{lines: []ProgramLine{{Number: sentinelLineNumber, Text: ""}}}
}

// Sort orders lines ascending by number; the sentinel (-1) always sorts
// first.
func (p *ProgramStore) Sort() {
	sort.Slice(p.lines, func(i, j int) bool {
		return p.lines[i].Number < p.lines[j].Number
	})
}

// Put inserts or replaces the line numbered n.
func (p *ProgramStore) Put(n int32, text string) {
	for i := range p.lines {
		if p.lines[i].Number == n {
			p.lines[i].Text = text
			return
		}
	}
	p.lines = append(p.lines, ProgramLine{Number: n, Text: text})
	p.Sort()
}

// Remove deletes the line numbered n, reporting whether it existed.
func (p *ProgramStore) Remove(n int32) bool {
	for i := range p.lines {
		if p.lines[i].Number == n {
			p.lines = append(p.lines[:i], p.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear resets the store to just the sentinel line.
func (p *ProgramStore) Clear() {
	p.lines = []ProgramLine{{Number: sentinelLineNumber, Text: ""}}
}

// Lines returns every non-sentinel line in sorted order, for LIST.
func (p *ProgramStore) Lines() []ProgramLine {
	p.Sort()
	out := make([]ProgramLine, 0, len(p.lines))
	for _, l := range p.lines {
		if l.Number != sentinelLineNumber {
			out = append(out, l)
		}
	}
	return out
}

// IndexOf returns the position of line number n within the sorted store, or
// -1 if absent.
func (p *ProgramStore) IndexOf(n int32) int {
	p.Sort()
	for i, l := range p.lines {
		if l.Number == n {
			return i
		}
	}
	return -1
}

// At returns the line at sorted position i, and whether i is in range.
func (p *ProgramStore) At(i int) (ProgramLine, bool) {
	p.Sort()
	if i < 0 || i >= len(p.lines) {
		return ProgramLine{}, false
	}
	return p.lines[i], true
}

// FirstReal returns the sorted index of the first non-sentinel line, or
// len(lines) if the program is empty.
func (p *ProgramStore) FirstReal() int {
	p.Sort()
	for i, l := range p.lines {
		if l.Number != sentinelLineNumber {
			return i
		}
	}
	return len(p.lines)
}

// Len returns the number of stored positions, including the sentinel.
func (p *ProgramStore) Len() int {
	return len(p.lines)
}
