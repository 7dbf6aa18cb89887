package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tikz/ppiprep/config"
	"github.com/tikz/ppiprep/contact"
	"github.com/tikz/ppiprep/disorder"
	"github.com/tikz/ppiprep/fasta"
	"github.com/tikz/ppiprep/numbering"
	"github.com/tikz/ppiprep/pdb"
	"github.com/tikz/ppiprep/store"
)

// Complex represents one row of the input table, a PDB entry with two
// interacting chains and their UniProt accessions.
type Complex struct {
	PDBID    string
	Chain1   string
	Chain2   string
	UniProt1 string
	UniProt2 string
}

// ChainResult holds the per-chain output of a processed complex.
type ChainResult struct {
	Chain         string   `json:"chain"`
	Accession     string   `json:"accession"`
	ResolvedSpans []string `json:"resolvedSpans"`
	DisorderSpans []string `json:"disorderSpans"`
	DisorderPDB   []string `json:"disorderSpansPdb"`
	DisorderIDs   string   `json:"disorderIds,omitempty"`
}

// Result is the JSON document written for each processed complex.
type Result struct {
	PDBID        string      `json:"pdbId"`
	Chain1       ChainResult `json:"chain1"`
	Chain2       ChainResult `json:"chain2"`
	Contacts     int         `json:"contacts"`
	ContactCells [][]int8    `json:"contactMap"`
}

// ReadComplexes parses the input CSV table. Expected columns are
// pdb_id, chain1, chain2, uniprot1 and uniprot2.
func ReadComplexes(path string) ([]Complex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open complexes table: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse complexes table: %v", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("complexes table %s has no entries", path)
	}

	col := make(map[string]int)
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, name := range []string{"pdb_id", "chain1", "chain2", "uniprot1", "uniprot2"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("complexes table is missing column %s", name)
		}
	}

	var complexes []Complex
	for _, row := range rows[1:] {
		complexes = append(complexes, Complex{
			PDBID:    row[col["pdb_id"]],
			Chain1:   row[col["chain1"]],
			Chain2:   row[col["chain2"]],
			UniProt1: row[col["uniprot1"]],
			UniProt2: row[col["uniprot2"]],
		})
	}
	return complexes, nil
}

// ProcessComplex loads the structure and sequence entries for one complex,
// maps both chains between coordinate systems, computes the contact map and
// the disorder annotation in both numbering bases, and returns the result
// together with the FASTA records covering the mapped sequence spans.
func ProcessComplex(cfg *config.Config, st *store.Store, reg *disorder.Registry, cx Complex) (*Result, []fasta.Record, error) {
	p, err := st.PDB(cx.PDBID)
	if err != nil {
		return nil, nil, fmt.Errorf("load PDB %s: %v", cx.PDBID, err)
	}

	c1, rec1, m1, err := processChain(cfg, st, reg, p, cx.Chain1, cx.UniProt1)
	if err != nil {
		return nil, nil, fmt.Errorf("chain %s: %v", cx.Chain1, err)
	}
	c2, rec2, m2, err := processChain(cfg, st, reg, p, cx.Chain2, cx.UniProt2)
	if err != nil {
		return nil, nil, fmt.Errorf("chain %s: %v", cx.Chain2, err)
	}

	cm, err := contact.FromChains(p, cx.Chain1, cx.Chain2,
		numbering.Numbers(numbering.RemoveGaps(m1.PDB)),
		numbering.Numbers(numbering.RemoveGaps(m2.PDB)),
		cfg.Contact.Threshold)
	if err != nil {
		return nil, nil, fmt.Errorf("contact map: %v", err)
	}

	result := &Result{
		PDBID:        cx.PDBID,
		Chain1:       *c1,
		Chain2:       *c2,
		Contacts:     cm.Count(),
		ContactCells: cm.Cells,
	}
	return result, []fasta.Record{rec1, rec2}, nil
}

// processChain maps one chain between numbering systems and assembles its
// resolved spans and disorder annotation.
func processChain(cfg *config.Config, st *store.Store, reg *disorder.Registry, p *pdb.PDB, chain, accession string) (*ChainResult, fasta.Record, *numbering.Mapping, error) {
	var rec fasta.Record

	m, err := p.ChainMapping(accession, chain)
	if err != nil {
		return nil, rec, nil, err
	}

	// UniProt positions of the residues actually resolved in the structure.
	resolvedPDB, idx := numbering.RemoveGapsIndexed(m.PDB)
	resolvedUni, err := numbering.ByIndex(m.Uni, resolvedPDB, idx)
	if err != nil {
		return nil, rec, nil, fmt.Errorf("map resolved residues: %v", err)
	}
	if len(resolvedUni) == 0 {
		return nil, rec, nil, fmt.Errorf("no resolved residues mapped to %s", accession)
	}

	uniNumbers := numbering.Numbers(resolvedUni)
	spans := numbering.Ranges(uniNumbers)

	regions, err := reg.Regions([]string{accession}, cfg.Disorder.MinLength)
	if err != nil {
		return nil, rec, nil, fmt.Errorf("disorder regions for %s: %v", accession, err)
	}

	// Intersect the annotated regions with the mapped positions, then carry
	// them over to the structure's own numbering.
	inStruct := make(map[int64]bool, len(uniNumbers))
	for _, n := range uniNumbers {
		inStruct[n] = true
	}
	var disorderUni []numbering.Position
	for _, region := range regions {
		for _, pos := range region.Positions() {
			if inStruct[pos] {
				disorderUni = append(disorderUni, numbering.Pos(pos))
			}
		}
	}
	disorderPDB, err := m.ToPDB(disorderUni)
	if err != nil {
		return nil, rec, nil, fmt.Errorf("disorder to structure numbering: %v", err)
	}

	cr := &ChainResult{
		Chain:         chain,
		Accession:     accession,
		ResolvedSpans: intervalStrings(spans),
		DisorderSpans: intervalStrings(numbering.Ranges(numbering.Numbers(disorderUni))),
		DisorderPDB:   intervalStrings(numbering.Ranges(numbering.Numbers(disorderPDB))),
		DisorderIDs:   reg.EntryIDs([]string{accession}),
	}

	u, err := st.UniProt(accession)
	if err != nil {
		return nil, rec, nil, fmt.Errorf("load UniProt %s: %v", accession, err)
	}
	start, end := uniNumbers[0], uniNumbers[len(uniNumbers)-1]
	seq, err := u.SubSequence(start, end)
	if err != nil {
		return nil, rec, nil, fmt.Errorf("subsequence %d-%d of %s: %v", start, end, accession, err)
	}
	rec = fasta.Record{
		Header:   fmt.Sprintf("%s_%s %d-%d", accession, chain, start, end),
		Sequence: seq,
	}
	return cr, rec, m, nil
}

func intervalStrings(intervals []numbering.Interval) []string {
	spans := make([]string, len(intervals))
	for i, iv := range intervals {
		spans[i] = iv.String()
	}
	return spans
}

// WriteResult writes the JSON document for one processed complex.
func WriteResult(outDir string, res *Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result for %s: %v", res.PDBID, err)
	}
	name := fmt.Sprintf("%s_%s%s.json", res.PDBID, res.Chain1.Chain, res.Chain2.Chain)
	if err := os.WriteFile(filepath.Join(outDir, name), data, 0644); err != nil {
		return fmt.Errorf("write result for %s: %v", res.PDBID, err)
	}
	return nil
}
