// Package align wraps US-align structural alignment runs and parses the
// TM-scores out of their text output.
package align

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// USalign runs the US-align binary against pairs of structure files.
type USalign struct {
	binPath string
}

// NewUSalign returns a runner for the given US-align binary.
func NewUSalign(binPath string) (*USalign, error) {
	abs, err := filepath.Abs(binPath)
	if err != nil {
		return nil, err
	}
	return &USalign{binPath: abs}, nil
}

// Run aligns two structure files, restricted to the given comma separated
// chain lists, and returns the raw tool output. The multimer mode is picked
// from the chain counts: monomer vs monomer, oligomer vs oligomer, or
// chains against an oligomer.
func (u *USalign) Run(pdb1, pdb2, chains1, chains2 string) ([]byte, error) {
	n1 := len(strings.Split(chains1, ","))
	n2 := len(strings.Split(chains2, ","))

	mm := 2
	switch {
	case n1 == 1 && n2 == 1:
		mm = 0
	case n1 > 1 && n2 > 1:
		mm = 1
	}

	cmd := exec.Command(u.binPath,
		"-chain1", chains1, pdb1,
		"-chain2", chains2, pdb2,
		"-mol", "prot",
		"-mm", fmt.Sprintf("%d", mm),
		"-ter", "2",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("usalign: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return out, nil
}

// TMScores extracts the two TM-scores from US-align or MM-align output:
// the first normalized by the length of chain 1, the second by chain 2.
func TMScores(output []byte) (tm1, tm2 float64, err error) {
	lines := strings.Split(string(output), "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "TM-score=") {
			continue
		}
		if i+1 >= len(lines) || !strings.HasPrefix(lines[i+1], "TM-score=") {
			return 0, 0, errors.New("second TM-score line not found")
		}

		tm1, err = parseTMScoreLine(line)
		if err != nil {
			return 0, 0, err
		}
		tm2, err = parseTMScoreLine(lines[i+1])
		if err != nil {
			return 0, 0, err
		}
		return tm1, tm2, nil
	}

	return 0, 0, errors.New("TM-score not found in output")
}

func parseTMScoreLine(line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed TM-score line %q", line)
	}
	score, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed TM-score line %q: %v", line, err)
	}
	return score, nil
}
