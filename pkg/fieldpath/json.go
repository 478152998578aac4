package fieldpath

import (
	"strings"

	"github.com/tidwall/gjson"
)

// gjson treats these as path syntax; accessor segments are plain names
var jsonPathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`!`, `\!`,
	`=`, `\=`,
	`<`, `\<`,
	`>`, `\>`,
	`%`, `\%`,
)

// JSONPath converts a dotted accessor into an escaped gjson path
func JSONPath(path string) (string, bool) {
	segments, ok := Split(path)
	if !ok {
		return "", false
	}
	for i, seg := range segments {
		segments[i] = jsonPathEscaper.Replace(seg)
	}
	return strings.Join(segments, Separator), true
}

// LookupJSON resolves path inside a raw JSON document. JSON null is
// treated the same as an absent field.
func LookupJSON(doc []byte, path string) (any, bool) {
	p, ok := JSONPath(path)
	if !ok {
		return nil, false
	}
	res := gjson.GetBytes(doc, p)
	if !res.Exists() || res.Type == gjson.Null {
		return nil, false
	}
	return res.Value(), true
}

// JSONText is Text for raw JSON documents
func JSONText(doc []byte, path string) string {
	val, ok := LookupJSON(doc, path)
	if !ok {
		return ""
	}
	return Stringify(val)
}
