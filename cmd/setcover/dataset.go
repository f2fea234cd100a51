package main

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/titanous/json5"

	"github.com/matthiaskaeding/setcover/pkg/core/index"
)

// loadCSV reads a long-form dataset with a set,element header. Ids must
// already be dense zero-based integers; the declared bounds are derived
// from the largest id seen.
func loadCSV(path string) (pairs []index.Pair, numSets, numElements int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return nil, 0, 0, errors.Wrap(err, "read dataset header")
	}
	if len(header) != 2 || header[0] != "set" || header[1] != "element" {
		return nil, 0, 0, errors.Errorf("unexpected header %v, want [set element]", header)
	}

	for row := 1; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, errors.Wrapf(err, "read dataset row %d", row)
		}
		set, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, 0, 0, errors.Wrapf(err, "parse set id in row %d", row)
		}
		element, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, 0, 0, errors.Wrapf(err, "parse element id in row %d", row)
		}
		pairs = append(pairs, index.Pair{Set: index.SetID(set), Element: index.ElementID(element)})
		if set >= numSets {
			numSets = set + 1
		}
		if element >= numElements {
			numElements = element + 1
		}
	}
	return pairs, numSets, numElements, nil
}

// generate builds a seeded synthetic dataset of uniformly random
// membership rows.
func generate(numSets, numElements, numRows int, seed int64) []index.Pair {
	rng := rand.New(rand.NewSource(seed))
	pairs := make([]index.Pair, numRows)
	for i := range pairs {
		pairs[i] = index.Pair{
			Set:     index.SetID(rng.Intn(numSets)),
			Element: index.ElementID(rng.Intn(numElements)),
		}
	}
	return pairs
}

// loadScenario parses a JSON5 file mapping set labels to element labels.
func loadScenario(path string) (map[string][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	var scenario map[string][]string
	if err := json5.Unmarshal(raw, &scenario); err != nil {
		return nil, errors.Wrap(err, "parse scenario")
	}
	return scenario, nil
}
