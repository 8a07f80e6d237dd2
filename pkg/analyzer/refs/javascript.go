package refs

import (
	"bytes"
	"os"
	"regexp"
)

// importPatterns covers the three reference kinds recognized in JavaScript
// source: static ES-module imports, dynamic import() calls, and CommonJS
// require() calls. The patterns run over raw text, not an AST.
var importPatterns = []*regexp.Regexp{
	// Static import: import abc from './utils.js', import './side-effect.js'
	regexp.MustCompile(`import\s+(?:[\w*\s{},]*\s+from\s+)?["']([^"']+)["']`),
	// Dynamic import: const mod = await import('./chunk')
	regexp.MustCompile(`import\(\s*["']([^"']+)["']\s*\)`),
	// CommonJS require: const lib = require('../lib/core.js')
	regexp.MustCompile(`require\(\s*["']([^"']+)["']\s*\)`),
}

// ExtractJS scans one JavaScript file and returns the basenames of every
// module it imports or requires. Extensionless specifiers get the default
// extension appended; specifiers naming non-JS assets are filtered out.
func (a *Analyzer) ExtractJS(path string) (ReferenceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Invalid byte sequences are replaced rather than failing the scan.
	data = bytes.ToValidUTF8(data, []byte("�"))

	names := make(ReferenceSet)
	for _, pattern := range importPatterns {
		for _, match := range pattern.FindAllSubmatch(data, -1) {
			if base, ok := a.normalizeSpecifier(string(match[1])); ok {
				names.Add(base)
			}
		}
	}
	return names, nil
}
