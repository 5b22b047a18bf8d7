package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/russross/blackfriday/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/laher/periodic/period"
)

const kindUsage = "period kind: daily, weekly, monthly, quarterly or yearly"

func newPathCmd(a *app) *cobra.Command {
	var (
		kind string
		abs  bool
	)
	cmd := &cobra.Command{
		Use:   "path [date]",
		Short: "Print the path of a periodic note",
		Long: `Print the path of the note for the period containing date.

Examples:
  # Today's daily note, relative to the notes directory
  periodic path

  # Absolute path of the weekly note for a given day
  periodic path --kind weekly --abs 2023-10-02`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.selectPeriod(kind, args)
			if err != nil {
				return err
			}
			name, err := a.cfg.getNoteName(p)
			if abs {
				name, err = a.cfg.getNoteFilename(p)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(period.Daily), kindUsage)
	cmd.Flags().BoolVar(&abs, "abs", false, "print the absolute path under the notes directory")
	return cmd
}

func newNewCmd(a *app) *cobra.Command {
	var (
		kind  string
		force bool
		carry []string
	)
	cmd := &cobra.Command{
		Use:   "new [date]",
		Short: "Create a periodic note",
		Long: `Create the note for the period containing date, with a title heading.

With --carry, open list items under the named headings of the previous
period's note are copied into the new note. Done and cancelled items are
dropped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.selectPeriod(kind, args)
			if err != nil {
				return err
			}
			f, err := a.cfg.getNoteFilename(p)
			if err != nil {
				return err
			}
			if fileExists(f) && !force {
				return fmt.Errorf("note already exists: %s", f)
			}
			doc, err := a.buildNote(p, carry)
			if err != nil {
				return err
			}
			if err := writeNote(f, doc); err != nil {
				return fmt.Errorf("failed to write note: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), f)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(period.Daily), kindUsage)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing note")
	cmd.Flags().StringArrayVar(&carry, "carry", nil, "heading to carry open items over from the previous note (repeatable)")
	return cmd
}

// buildNote creates the document for p: a title heading, then one section
// per carried heading with the open items found under it in the previous note.
func (a *app) buildNote(p period.Period, carry []string) (tasks, error) {
	doc := tasks{node: blackfriday.NewNode(blackfriday.Document)}

	nc := a.cfg.Note(p.Kind)
	title := nc.Title
	if title == "" {
		title = nc.Format
	}
	text, err := a.cfg.parserFactory().GetParser().FromDate(p.Date, title)
	if err != nil {
		return tasks{}, err
	}
	headingNode(doc.node, 1, text)

	if len(carry) == 0 {
		return doc, nil
	}
	old := tasks{node: blackfriday.NewNode(blackfriday.Document)}
	prev, err := a.cfg.getNoteFilename(p.Prev())
	if err != nil {
		return tasks{}, err
	}
	if fileExists(prev) {
		if old, err = parseFile(prev); err != nil {
			return tasks{}, err
		}
	} else {
		log.Printf("no previous note at %s", prev)
	}
	for _, h := range carry {
		headingNode(doc.node, 2, h)
		unfiltered := old.ByHeader(h)
		filtered := filterDone(unfiltered)
		log.Printf("%s unfiltered/filtered: %d/%d", h, len(unfiltered), len(filtered))
		for _, n := range filtered {
			doc.node.AppendChild(n)
		}
	}
	return doc, nil
}

func writeNote(filename string, t tasks) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	fh, err := os.Create(filename)
	if err != nil {
		return err
	}
	render(newRenderer(false), fh, t.node)
	return fh.Close()
}

// isTerminal is swapped out in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newShowCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Print a periodic note",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.selectPeriod(kind, args)
			if err != nil {
				return err
			}
			f, err := a.cfg.getNoteFilename(p)
			if err != nil {
				return err
			}
			t, err := parseFile(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			render(newRenderer(isTerminal(out)), out, t.node)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(period.Daily), kindUsage)
	return cmd
}

func newDaysCmd(a *app) *cobra.Command {
	var (
		kind  string
		count int
	)
	cmd := &cobra.Command{
		Use:   "days",
		Short: "List upcoming periods and their note paths (for fzf inputs)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.selectPeriod(kind, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				name, err := a.cfg.getNoteName(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s%s, %s\n", dayLabel(p.Kind, i), p.Date.Format("2006-01-02, Mon"), name)
				p = p.Next()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(period.Daily), kindUsage)
	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of periods to list")
	return cmd
}

func dayLabel(kind period.Kind, i int) string {
	switch {
	case i == 0 && kind == period.Daily:
		return "Today, "
	case i == 1 && kind == period.Daily:
		return "Tomorrow, "
	case i == 0:
		return "Current, "
	case i == 1:
		return "Next, "
	}
	return ""
}

func newHeadingsCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "headings [file]",
		Short: "List the headings in a note (default: today's daily note)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			} else {
				p, err := a.selectPeriod(kind, nil)
				if err != nil {
					return err
				}
				if file, err = a.cfg.getNoteFilename(p); err != nil {
					return err
				}
			}
			b, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			for _, h := range outline(b) {
				fmt.Fprintln(cmd.OutOrStdout(), h)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(period.Daily), kindUsage)
	return cmd
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List period kinds with their folder and name templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range period.Kinds {
				nc := a.cfg.Note(kind)
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s folder=%q format=%q\n", kind, nc.Folder, nc.Format)
			}
			return nil
		},
	}
}

func newStatusesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List the task statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]string, 0, len(statuses))
			for s := range statuses {
				keys = append(keys, s)
			}
			sort.Strings(keys)
			for _, s := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", s, statuses[s])
			}
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				b   []byte
				err error
			)
			switch format {
			case "json":
				b, err = json.MarshalIndent(a.cfg, "", "  ")
				b = append(b, '\n')
			case "toml":
				b, err = toml.Marshal(a.cfg)
			case "yaml":
				b, err = yaml.Marshal(a.cfg)
			default:
				return fmt.Errorf("unsupported format %q (want json, toml or yaml)", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, toml or yaml")
	return cmd
}
