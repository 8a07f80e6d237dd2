package refs

import "path/filepath"

// Partition splits the discovered JavaScript files into referenced and
// unreferenced, preserving discovery order. Every discovered file appears in
// exactly one of the two lists.
type Partition struct {
	Used   []string `json:"used" toon:"used"`
	Unused []string `json:"unused" toon:"unused"`
}

// Resolve partitions jsFiles by basename membership in the reference set.
// Two files with the same basename in different directories are
// indistinguishable here; that is inherent to basename-only matching.
// Pure function of its inputs.
func Resolve(jsFiles []string, references ReferenceSet) Partition {
	var p Partition
	for _, path := range jsFiles {
		if references.Contains(filepath.Base(path)) {
			p.Used = append(p.Used, path)
		} else {
			p.Unused = append(p.Unused, path)
		}
	}
	return p
}
