package console

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const filenamePrefix = "list-"

var extensions = []string{".json", ".yaml", ".yml"}

func filterFiles[T fs.DirEntry](dir []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, entry := range dir {
			if !entry.Type().IsRegular() {
				continue
			}

			name := entry.Name()
			if !slices.Contains(extensions, filepath.Ext(name)) {
				continue
			}

			if !strings.HasPrefix(name, filenamePrefix) {
				continue
			}

			if !yield(entry) {
				return
			}
		}
	}
}

// LoadFiles reads every list file in dir and returns their values
// concatenated in directory order, plus the number of files read.
func LoadFiles(dir string) (values []string, count int, err error) {
	entries, err := os.ReadDir(filepath.Clean(dir))
	if err != nil {
		return nil, 0, err
	}

	for entry := range filterFiles(entries) {
		v, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, count, err
		}
		values = append(values, v...)
		count++
	}
	return
}

func LoadFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var values []string
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &values)
	default:
		err = json.Unmarshal(content, &values)
	}
	if err != nil {
		return nil, fmt.Errorf("console: decode %s: %w", filepath.Base(path), err)
	}
	return values, nil
}

// SaveFile writes values as YAML when path ends in .yaml or .yml, JSON otherwise.
func SaveFile(path string, values []string) error {
	if values == nil {
		values = []string{}
	}

	var (
		content []byte
		err     error
	)
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		content, err = yaml.Marshal(values)
	default:
		content, err = json.MarshalIndent(values, "", "    ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
