// Package disorder looks up intrinsically disordered region annotations for
// UniProt accessions across the DisProt, IDEAL and MobiDB reference tables.
// Tables are loaded once into an explicitly constructed Registry; region
// lookups are recomputed per query and never cached.
package disorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/tikz/ppiprep/numbering"
)

// Source is a single disorder annotation table.
type Source struct {
	Name    string
	entries []entry
}

type entry struct {
	accession string
	regions   string // raw "start-end,start-end" region string
	id        string // source database identifier for the entry
}

// LoadSource reads an annotation table from a CSV file. The table must have
// "Uniprot ID" and "Disorder regions" columns; idColumn names the column
// holding the source's own entry identifier and may be empty.
func LoadSource(name, path, idColumn string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s table: %v", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s table: %v", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s table is empty", name)
	}

	accCol, regCol, idCol := -1, -1, -1
	for i, col := range records[0] {
		switch strings.TrimSpace(col) {
		case "Uniprot ID":
			accCol = i
		case "Disorder regions":
			regCol = i
		case idColumn:
			idCol = i
		}
	}
	if accCol == -1 || regCol == -1 {
		return nil, fmt.Errorf("%s table is missing required columns", name)
	}

	s := &Source{Name: name}
	for _, rec := range records[1:] {
		if accCol >= len(rec) || regCol >= len(rec) {
			continue
		}
		e := entry{
			accession: strings.TrimSpace(rec[accCol]),
			regions:   strings.TrimSpace(rec[regCol]),
		}
		if idCol != -1 && idCol < len(rec) {
			e.id = strings.TrimSpace(rec[idCol])
		}
		s.entries = append(s.entries, e)
	}

	return s, nil
}

// RawRegions returns the raw region strings and entry identifiers annotated
// for an accession. Isoform annotations match their parent accession.
func (s *Source) RawRegions(accession string) (regions []string, ids []string) {
	for _, e := range s.entries {
		if strings.Contains(e.accession, accession) && e.regions != "" {
			regions = append(regions, e.regions)
			ids = append(ids, e.id)
		}
	}
	return regions, ids
}

// Registry aggregates the disorder annotation sources.
type Registry struct {
	Sources []*Source
}

// NewRegistry loads the DisProt, IDEAL and MobiDB tables from their CSV
// files and returns a ready to query Registry.
func NewRegistry(disprotPath, idealPath, mobidbPath string) (*Registry, error) {
	disprot, err := LoadSource("DisProt", disprotPath, "Disprot ID")
	if err != nil {
		return nil, err
	}
	ideal, err := LoadSource("IDEAL", idealPath, "IDP ID")
	if err != nil {
		return nil, err
	}
	mobidb, err := LoadSource("MobiDB", mobidbPath, "")
	if err != nil {
		return nil, err
	}

	return &Registry{Sources: []*Source{disprot, ideal, mobidb}}, nil
}

// Regions returns the disorder regions annotated for the given accessions
// across all sources, merged and filtered to a minimum region length. An
// accession without annotations yields no regions and no error.
func (r *Registry) Regions(accessions []string, minLen int64) ([]numbering.Interval, error) {
	var raw []string
	for _, s := range r.Sources {
		for _, accession := range accessions {
			regions, _ := s.RawRegions(accession)
			raw = append(raw, regions...)
		}
	}

	if len(raw) == 0 {
		return nil, nil
	}

	merged, err := numbering.Consolidate(strings.Join(raw, ","), minLen)
	if err != nil {
		return nil, fmt.Errorf("consolidate regions: %v", err)
	}
	return merged, nil
}

// EntryIDs returns the per-source database identifiers annotating the given
// accessions, one comma separated group per source, groups joined by "--".
func (r *Registry) EntryIDs(accessions []string) string {
	groups := make([]string, 0, len(r.Sources))
	for _, s := range r.Sources {
		var all []string
		for _, accession := range accessions {
			regions, ids := s.RawRegions(accession)
			for i := range regions {
				if ids[i] != "" {
					all = append(all, ids[i])
				} else {
					all = append(all, accession)
				}
			}
		}
		groups = append(groups, strings.Join(all, ","))
	}
	return strings.Join(groups, "--")
}
