package refs

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/orphanlabs/jsorphan/internal/output"
)

// Report is the renderable result of a scan.
type Report struct {
	Root      string   `json:"root" toon:"root"`
	HTMLFiles int      `json:"html_files" toon:"html_files"`
	JSFiles   int      `json:"js_files" toon:"js_files"`
	Used      []string `json:"used" toon:"used"`
	Unused    []string `json:"unused" toon:"unused"`
}

// NewReport builds a report from the scan root, discovery counts, and the
// resolved partition.
func NewReport(root string, htmlCount int, partition Partition) *Report {
	return &Report{
		Root:      root,
		HTMLFiles: htmlCount,
		JSFiles:   len(partition.Used) + len(partition.Unused),
		Used:      partition.Used,
		Unused:    partition.Unused,
	}
}

func (r *Report) RenderData() any {
	return r
}

func (r *Report) RenderText(w io.Writer, colored bool) error {
	info := func(format string, args ...any) {
		fmt.Fprintf(w, "INFO: "+format+"\n", args...)
	}

	info("Scanning directory: %s", r.Root)
	info("Found %d HTML files and %d JS files.", r.HTMLFiles, r.JSFiles)

	if len(r.Unused) > 0 {
		info("")
		info("===== UNUSED JavaScript files =====")
		for _, path := range r.Unused {
			if colored {
				path = color.RedString(path)
			}
			info("UNUSED  %s", path)
		}
	} else {
		msg := "Great! Every JavaScript file is referenced somewhere."
		if colored {
			msg = color.GreenString(msg)
		}
		info("%s", msg)
	}

	fmt.Fprintln(w)
	return r.summaryTable().RenderText(w, colored)
}

func (r *Report) RenderMarkdown(w io.Writer) error {
	fmt.Fprintf(w, "# Unused JavaScript Report\n\n")
	fmt.Fprintf(w, "Scanned `%s`: %d HTML files, %d JS files.\n\n", r.Root, r.HTMLFiles, r.JSFiles)

	if len(r.Unused) == 0 {
		fmt.Fprintln(w, "Every JavaScript file is referenced somewhere.")
		fmt.Fprintln(w)
		return nil
	}

	rows := make([][]string, len(r.Unused))
	for i, path := range r.Unused {
		rows[i] = []string{path}
	}
	table := output.NewTable("Unused JavaScript Files", []string{"File"}, rows, nil, r)
	return table.RenderMarkdown(w)
}

// summaryTable renders the discovery and partition counts.
func (r *Report) summaryTable() *output.Table {
	rows := [][]string{
		{"HTML files", strconv.Itoa(r.HTMLFiles)},
		{"JS files", strconv.Itoa(r.JSFiles)},
		{"Referenced", strconv.Itoa(len(r.Used))},
		{"Unused", strconv.Itoa(len(r.Unused))},
	}
	return output.NewTable("", []string{"Metric", "Count"}, rows, nil, r)
}
