// Package store caches fetched PDB and UniProt entries on disk so repeated
// pipeline runs do not refetch them.
package store

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tikz/ppiprep/pdb"
	"github.com/tikz/ppiprep/uniprot"
)

const fileExt = ".data"

// Store is an on-disk cache of fetched entries, one gob file per entry.
type Store struct {
	unpDir string
	pdbDir string
}

// NewStore creates the cache layout under the given base directory.
func NewStore(baseDir string) (*Store, error) {
	s := &Store{
		unpDir: filepath.Join(baseDir, "uniprot"),
		pdbDir: filepath.Join(baseDir, "pdb"),
	}

	for _, dir := range []string{s.unpDir, s.pdbDir} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("create cache dir: %v", err)
		}
	}
	return s, nil
}

// PDB returns the cached structure entry, fetching and caching it on a
// cache miss.
func (s *Store) PDB(pdbID string) (*pdb.PDB, error) {
	path := filepath.Join(s.pdbDir, pdbID+fileExt)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		p, err := pdb.NewPDBFromID(pdbID)
		if err != nil {
			return nil, err
		}

		// Only the raw file and SIFTS data are persisted; the derived
		// residue maps are rebuilt on read.
		stored := pdb.PDB{ID: p.ID, URL: p.URL, PDBURL: p.PDBURL, RawPDB: p.RawPDB, SIFTS: p.SIFTS}
		if err := write(path, &stored); err != nil {
			return nil, fmt.Errorf("write PDB: %v", err)
		}
		return p, nil
	}

	p := new(pdb.PDB)
	if err := read(path, p); err != nil {
		return nil, fmt.Errorf("load file: %v", err)
	}

	if err := p.Parse(); err != nil {
		return nil, fmt.Errorf("parse cached PDB: %v", err)
	}
	return p, nil
}

// UniProt returns the cached accession entry, fetching and caching it on a
// cache miss.
func (s *Store) UniProt(unpID string) (*uniprot.UniProt, error) {
	path := filepath.Join(s.unpDir, unpID+fileExt)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		u, err := uniprot.NewUniProt(unpID)
		if err != nil {
			return nil, err
		}

		if err := write(path, u); err != nil {
			return nil, fmt.Errorf("write UniProt: %v", err)
		}
		return u, nil
	}

	u := new(uniprot.UniProt)
	if err := read(path, u); err != nil {
		return nil, fmt.Errorf("load file: %v", err)
	}
	return u, nil
}

func write(filePath string, object interface{}) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(object)
}

func read(filePath string, object interface{}) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewDecoder(file).Decode(object)
}
