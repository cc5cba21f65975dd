// SPDX-License-Identifier: MIT

package dictionary

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sets maps a set name to its words.
type Sets map[string][]string

// setFile is the on-disk shape of a set file.
type setFile struct {
	Dictionaries Sets `yaml:"dictionaries" json:"dictionaries"`
}

// Load reads a plain-text word list from r.
func Load(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	if words == nil {
		words = []string{}
	}

	return words, nil
}

// LoadFile reads the word list at path. Files ending in .yaml, .yml or .json
// are set files and must hold exactly one set; anything else is plain text.
func LoadFile(path string) ([]string, error) {
	if isSetFile(path) {
		sets, err := LoadSetsFile(path)
		if err != nil {
			return nil, err
		}
		names := sets.Names()
		if len(names) != 1 {
			return nil, fmt.Errorf("%w: %s has %d", ErrAmbiguousSet, path, len(names))
		}

		return sets.Get(names[0])
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// LoadSets decodes a YAML set document from r. JSON documents of the same
// shape decode too, JSON being a subset of YAML.
func LoadSets(r io.Reader) (Sets, error) {
	var doc setFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("dictionary: parse sets: %w", err)
	}
	if doc.Dictionaries == nil {
		return Sets{}, nil
	}

	return doc.Dictionaries, nil
}

// LoadSetsFile reads a set file from disk.
func LoadSetsFile(path string) (Sets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read sets: %w", err)
	}

	var doc setFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("dictionary: parse %s: %w", filepath.Base(path), err)
	}
	if doc.Dictionaries == nil {
		return Sets{}, nil
	}

	return doc.Dictionaries, nil
}

// Get returns a copy of the named set. A set declared with no words yields
// an empty, non-nil slice.
func (s Sets) Get(name string) ([]string, error) {
	words, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, name)
	}
	out := make([]string, len(words))
	copy(out, words)

	return out, nil
}

// Names returns the set names in ascending order.
func (s Sets) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func isSetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
