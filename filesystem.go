package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/laher/periodic/builders"
	"github.com/laher/periodic/period"
)

// getNoteName is the note path relative to the base dir, slash separated.
func (c Config) getNoteName(p period.Period) (string, error) {
	nc := c.Note(p.Kind)
	return builders.NewPeriodNameBuilder(c.parserFactory()).
		WithPath(nc.Folder).
		WithName(nc.Format).
		WithValue(p).
		Build()
}

func (c Config) getNoteFilename(p period.Period) (string, error) {
	name, err := c.getNoteName(p)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.BaseDir, filepath.FromSlash(strings.TrimPrefix(name, "/"))), nil
}

func (c Config) periodFor(kind period.Kind, t time.Time) (period.Period, error) {
	return period.New(kind, t, c.weekStart())
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
