// Package refs finds JavaScript files that are referenced nowhere in a
// project: not by any HTML <script src> and not by any JS import/require.
//
// The scan is lexical, not semantic. Import specifiers are matched with a
// fixed set of patterns over raw text, so specifiers built at runtime
// (string concatenation, template interpolation) are missed, and look-alike
// text inside comments or strings may match. Matching is by basename only;
// relative paths are not resolved against the filesystem.
package refs

import (
	"strings"

	"github.com/orphanlabs/jsorphan/internal/fileproc"
)

// ReferenceSet is the union of all JavaScript basenames referenced from
// anywhere in the project. No provenance is kept: the set answers "is this
// basename referenced", not "by whom". Membership is case-sensitive;
// extension checks during extraction are case-insensitive.
type ReferenceSet map[string]struct{}

// Add inserts a basename into the set.
func (r ReferenceSet) Add(name string) {
	r[name] = struct{}{}
}

// Contains reports whether name is in the set.
func (r ReferenceSet) Contains(name string) bool {
	_, ok := r[name]
	return ok
}

// Union merges other into r.
func (r ReferenceSet) Union(other ReferenceSet) {
	for name := range other {
		r[name] = struct{}{}
	}
}

// Analyzer extracts JavaScript references from HTML and JS sources.
type Analyzer struct {
	scriptTag  string
	srcAttr    string
	extensions []string
	defaultExt string
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithMarkup sets the HTML tag and attribute searched for script references.
func WithMarkup(tag, attr string) Option {
	return func(a *Analyzer) {
		a.scriptTag = tag
		a.srcAttr = attr
	}
}

// WithExtensions sets the file extensions treated as JavaScript.
func WithExtensions(exts ...string) Option {
	return func(a *Analyzer) {
		a.extensions = exts
	}
}

// WithDefaultExtension sets the extension inferred for extensionless
// specifiers.
func WithDefaultExtension(ext string) Option {
	return func(a *Analyzer) {
		a.defaultExt = ext
	}
}

// New creates a new reference analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		scriptTag:  "script",
		srcAttr:    "src",
		extensions: []string{".js"},
		defaultExt: ".js",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// hasJSExtension reports whether name ends in one of the configured
// JavaScript extensions, compared case-insensitively.
func (a *Analyzer) hasJSExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range a.extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// basenameOf returns the segment after the last path separator.
func basenameOf(spec string) string {
	if i := strings.LastIndex(spec, "/"); i >= 0 {
		return spec[i+1:]
	}
	return spec
}

// normalizeSpecifier reduces an import specifier to a comparable basename:
// the segment after the last path separator, with the default extension
// appended when none is present. Returns false for specifiers that do not
// name a JavaScript file (CSS, JSON, images, bare directories). Extension
// inference applies to import specifiers only; markup references go through
// markupBasename instead.
func (a *Analyzer) normalizeSpecifier(spec string) (string, bool) {
	base := basenameOf(spec)
	if base == "" {
		return "", false
	}
	if !strings.Contains(base, ".") {
		base += a.defaultExt
	}
	if !a.hasJSExtension(base) {
		return "", false
	}
	return base, true
}

// markupBasename reduces a script src value to its basename, keeping it only
// if it already names a JavaScript file. No extension is inferred: an
// extensionless src does not lexically name a JavaScript file.
func (a *Analyzer) markupBasename(val string) (string, bool) {
	base := basenameOf(val)
	if base == "" || !a.hasJSExtension(base) {
		return "", false
	}
	return base, true
}

// CollectReferences runs both extractors over every discovered HTML and JS
// file and returns the union of all referenced basenames. Extraction is
// parallelized per file; each file's extraction depends only on its own
// contents, so the union is order-independent. Per-file failures are
// reported through onError and contribute nothing to the union.
func (a *Analyzer) CollectReferences(htmlFiles, jsFiles []string, onProgress fileproc.ProgressFunc, onError fileproc.ErrorFunc) ReferenceSet {
	merged := make(ReferenceSet)

	for _, set := range fileproc.ForEachFileN(htmlFiles, 0, a.ExtractHTML, onProgress, onError) {
		merged.Union(set)
	}
	for _, set := range fileproc.ForEachFileN(jsFiles, 0, a.ExtractJS, onProgress, onError) {
		merged.Union(set)
	}

	return merged
}
