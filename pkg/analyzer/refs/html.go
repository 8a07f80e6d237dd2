package refs

import (
	"bytes"
	"os"

	"golang.org/x/net/html"
)

// ExtractHTML parses one HTML document and returns the basenames of every
// JavaScript file referenced by a script-tag src attribute. The parser is
// tolerant by construction: malformed markup yields a best-effort tree, not
// an error. Script tags without a src attribute contribute nothing.
func (a *Analyzer) ExtractHTML(path string) (ReferenceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Invalid byte sequences are replaced rather than failing the scan.
	data = bytes.ToValidUTF8(data, []byte("�"))

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	names := make(ReferenceSet)
	a.walkMarkup(doc, names)
	return names, nil
}

// walkMarkup descends the parsed tree collecting script src basenames.
func (a *Analyzer) walkMarkup(n *html.Node, names ReferenceSet) {
	if n.Type == html.ElementNode && n.Data == a.scriptTag {
		for _, attr := range n.Attr {
			if attr.Key != a.srcAttr {
				continue
			}
			if base, ok := a.markupBasename(attr.Val); ok {
				names.Add(base)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		a.walkMarkup(c, names)
	}
}
