// Package cluster wraps MMseqs2 sequence clustering and parses its cluster
// table output. The binary itself is treated as opaque; only its text
// output is interpreted.
package cluster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Cluster modes, per the MMseqs2 --cluster-mode flag.
const (
	ModeGreedySet          = 0 // greedy set cover, fewest clusters
	ModeConnectedComponent = 1 // connected component, most clusters
	ModeGreedyIncremental  = 2 // greedy incremental, CD-HIT like
)

// MMseqs runs the MMseqs2 binary against FASTA inputs.
type MMseqs struct {
	binPath string
	tmpDir  string
}

// NewMMseqs returns a runner for the given MMseqs2 binary.
func NewMMseqs(binPath, tmpDir string) (*MMseqs, error) {
	abs, err := filepath.Abs(binPath)
	if err != nil {
		return nil, err
	}
	return &MMseqs{binPath: abs, tmpDir: tmpDir}, nil
}

// Cluster clusters the sequences in dbFile, writing MMseqs2 output files
// under outPrefix. algo is either "easy-cluster" or "easy-linclust";
// minSeqID is the sequence identity threshold.
func (m *MMseqs) Cluster(dbFile, outPrefix, algo string, minSeqID float64, mode int) error {
	if algo != "easy-cluster" && algo != "easy-linclust" {
		return fmt.Errorf("unsupported clustering algorithm %q", algo)
	}

	cmd := exec.Command(m.binPath, algo, dbFile, outPrefix, m.tmpDir,
		"--min-seq-id", fmt.Sprintf("%g", minSeqID),
		"--cluster-mode", fmt.Sprintf("%d", mode),
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mmseqs: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ParseClusterTSV parses the representative–member cluster table produced
// by MMseqs2 and returns members grouped by cluster representative.
func ParseClusterTSV(r io.Reader) (map[string][]string, error) {
	clusters := make(map[string][]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed cluster line %q", line)
		}
		clusters[fields[0]] = append(clusters[fields[0]], fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(clusters) == 0 {
		return nil, errors.New("empty cluster table")
	}

	return clusters, nil
}

// ParseClusterFile parses an MMseqs2 cluster TSV file from disk.
func ParseClusterFile(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cluster table: %v", err)
	}
	defer f.Close()

	return ParseClusterTSV(f)
}
