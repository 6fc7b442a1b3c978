// Package export persists generated datasets as tab-separated tables.
//
// The layout matches the established benchmark file format: a header row of
// sample labels (S0..Sn) with an empty leading cell, an index column of
// feature labels (X0../Y0..), and the naming scheme
//
//	X_{association}_{xfeatures}_{samples}.txt
//	Y_{association}_{yfeatures}_{samples}.txt
//	A_{association}_{xfeatures}_{yfeatures}.txt
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"blocksynth/internal/model"
)

// Tables bundles the three tables of one generation run.
type Tables struct {
	X [][]float64
	Y [][]float64
	A [][]int
}

// Write persists t under dir, recreating dir destructively if it already
// exists. It returns the written file names in X, Y, A order.
func Write(dir string, assoc model.Association, t Tables) ([]string, error) {
	if err := recreateDir(dir); err != nil {
		return nil, err
	}

	samples := 0
	if len(t.X) > 0 {
		samples = len(t.X[0])
	}
	xName := fmt.Sprintf("X_%s_%d_%d.txt", assoc, len(t.X), samples)
	yName := fmt.Sprintf("Y_%s_%d_%d.txt", assoc, len(t.Y), samples)
	aName := fmt.Sprintf("A_%s_%d_%d.txt", assoc, len(t.X), len(t.Y))

	if err := writeTable(filepath.Join(dir, xName), "S", "X", floatRecords(t.X)); err != nil {
		return nil, fmt.Errorf("write X table: %w", err)
	}
	if err := writeTable(filepath.Join(dir, yName), "S", "Y", floatRecords(t.Y)); err != nil {
		return nil, fmt.Errorf("write Y table: %w", err)
	}
	if err := writeTable(filepath.Join(dir, aName), "Y", "X", intRecords(t.A)); err != nil {
		return nil, fmt.Errorf("write A table: %w", err)
	}
	return []string{xName, yName, aName}, nil
}

func recreateDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove output dir %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return nil
}

func writeTable(path, colPrefix, rowPrefix string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	header := make([]string, cols+1)
	for j := 0; j < cols; j++ {
		header[j+1] = fmt.Sprintf("%s%d", colPrefix, j)
	}
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return err
	}

	record := make([]string, cols+1)
	for i, row := range rows {
		record[0] = fmt.Sprintf("%s%d", rowPrefix, i)
		copy(record[1:], row)
		if err := w.Write(record); err != nil {
			_ = f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func floatRecords(table [][]float64) [][]string {
	rows := make([][]string, len(table))
	for i, row := range table {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rows[i] = cells
	}
	return rows
}

func intRecords(table [][]int) [][]string {
	rows := make([][]string, len(table))
	for i, row := range table {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.Itoa(v)
		}
		rows[i] = cells
	}
	return rows
}
