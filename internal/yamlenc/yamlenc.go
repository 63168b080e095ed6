// Package yamlenc renders ordered documents into the line-oriented YAML
// dialect the downstream chat host expects. The output format is frozen:
// the host's scripts parse it, so the quoting, empty-collection and
// literal-block rules must not drift.
package yamlenc

import (
	"fmt"
	"strings"
)

// Field is one key/value pair. Supported value kinds: nil, string, bool,
// integers, floats, []any (a flat sequence) and Doc (a nested mapping).
type Field struct {
	Key   string
	Value any
}

// Doc is an ordered mapping. Go maps are deliberately not accepted as values:
// the export document must serialize with deterministic key order.
type Doc []Field

// Append returns d with an extra field. Convenience for builder-style use.
func (d Doc) Append(key string, value any) Doc {
	return append(d, Field{Key: key, Value: value})
}

// longStringLimit is the scalar length (in runes) above which strings switch
// to literal-block form.
const longStringLimit = 50

// Marshal renders the document with two-space indentation per nesting level.
func Marshal(d Doc) string {
	var b strings.Builder
	write(&b, d, 0)
	return b.String()
}

func write(b *strings.Builder, d Doc, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, f := range d {
		switch v := f.Value.(type) {
		case nil:
			fmt.Fprintf(b, "%s%s: null\n", pad, f.Key)
		case Doc:
			if len(v) == 0 {
				fmt.Fprintf(b, "%s%s: {}\n", pad, f.Key)
			} else {
				fmt.Fprintf(b, "%s%s:\n", pad, f.Key)
				write(b, v, indent+2)
			}
		case []any:
			if len(v) == 0 {
				// No space after the colon; the host accepts both forms but
				// this one matches the original emitter byte for byte.
				fmt.Fprintf(b, "%s%s:[]\n", pad, f.Key)
			} else {
				fmt.Fprintf(b, "%s%s:\n", pad, f.Key)
				for _, item := range v {
					fmt.Fprintf(b, "%s  - %v\n", pad, item)
				}
			}
		case string:
			writeString(b, pad, f.Key, v)
		default:
			// Numbers and booleans emit as bare scalars.
			fmt.Fprintf(b, "%s%s: %v\n", pad, f.Key, v)
		}
	}
}

func writeString(b *strings.Builder, pad, key, s string) {
	clean := strings.ReplaceAll(s, "\r", "")
	clean = strings.TrimSuffix(clean, "\n")

	if strings.Contains(clean, "\n") || len([]rune(clean)) > longStringLimit {
		fmt.Fprintf(b, "%s%s: |\n", pad, key)
		for _, line := range strings.Split(clean, "\n") {
			if strings.TrimSpace(line) == "" {
				b.WriteString("\n")
			} else {
				fmt.Fprintf(b, "%s  %s\n", pad, line)
			}
		}
		return
	}

	// Only embedded double quotes are escaped; %q would also escape
	// backslashes and non-ASCII, which the host does not expect.
	quoted := strings.ReplaceAll(clean, `"`, `\"`)
	fmt.Fprintf(b, "%s%s: \"%s\"\n", pad, key, quoted)
}
