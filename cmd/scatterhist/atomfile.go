package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/scatterhist/internal/molecule"
)

// loadMolecule reads a newline-delimited atom file:
//
//	x y z element residue atom_name [body]
//
// Blank lines and lines starting with '#' are skipped. Body defaults
// to "A" when omitted, so single-chain inputs need no body column.
func loadMolecule(path string) (*molecule.Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bodyIndex := map[string]int{}
	var bodies []molecule.Body

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 6 {
			return nil, fmt.Errorf("atomfile: line %d: expected at least 6 fields, got %d", lineNo, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("atomfile: line %d: bad x: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("atomfile: line %d: bad y: %w", lineNo, err)
		}
		z, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("atomfile: line %d: bad z: %w", lineNo, err)
		}
		element, residue, atomName := fields[3], fields[4], fields[5]
		bodyName := "A"
		if len(fields) >= 7 {
			bodyName = fields[6]
		}

		atomType, err := molecule.Classify(element, residue, atomName)
		if err != nil {
			return nil, fmt.Errorf("atomfile: line %d: %w", lineNo, err)
		}

		idx, ok := bodyIndex[bodyName]
		if !ok {
			idx = len(bodies)
			bodyIndex[bodyName] = idx
			bodies = append(bodies, molecule.Body{Name: bodyName})
		}
		bodies[idx].Atoms = append(bodies[idx].Atoms, molecule.Atom{
			X: x, Y: y, Z: z, Type: atomType, Weight: 1, BodyID: idx,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(bodies) == 0 {
		return nil, fmt.Errorf("atomfile: %s: no atoms found", path)
	}
	return &molecule.Molecule{Bodies: bodies}, nil
}
