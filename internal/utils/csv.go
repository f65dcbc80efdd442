package utils

import (
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/facette/natsort"
)

type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

// WriteAsCSV saves data rows under a header, naturally sorted by the first
// column.
func WriteAsCSV(data CSV, makeDir bool, outputPath, modelName, fileSuffix string, columns []string) error {
	sort.Sort(data)
	return WriteRows(data, makeDir, outputPath, modelName, fileSuffix, columns)
}

// WriteRows saves data rows under a header in the given order.
func WriteRows(data [][]string, makeDir bool, outputPath, modelName, fileSuffix string, columns []string) error {
	file, err := OpenFile(makeDir, outputPath, modelName, fileSuffix)
	if err != nil {
		return fmt.Errorf("unable to save %s: %w", fileSuffix, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	w.WriteAll([][]string{columns})
	w.WriteAll(data)
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}
	return nil
}
