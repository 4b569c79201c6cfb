package cities

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed data/russian_cities.txt
var dataFS embed.FS

const defaultListPath = "data/russian_cities.txt"

var (
	defaultOnce   sync.Once
	defaultCities []string
	defaultErr    error
)

// DefaultCities returns the embedded reference list. List order is the
// curated popularity order and is preserved; ranking happens per query.
func DefaultCities() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		list, err := LoadCities(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultCities = list
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultCities...), nil
}

// LoadCities reads one city per line, skipping blanks, comments and
// duplicates. Input order is preserved.
func LoadCities(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("cities: missing reader")
	}

	scanner := bufio.NewScanner(r)
	list := make([]string, 0, 64)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		list = append(list, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
