package render

import (
	"fmt"
	"strings"
)

// Declaration is a single `key: value;` line.
type Declaration struct {
	Key   string
	Value string
}

// Block is a selector and its declarations in source order.
type Block struct {
	Selector     string
	Declarations []Declaration
}

// Lookup returns the value of key within the block.
func (b Block) Lookup(key string) (string, bool) {
	for _, decl := range b.Declarations {
		if decl.Key == key {
			return decl.Value, true
		}
	}
	return "", false
}

// ParseBlocks reads back stylesheets produced by this package. It understands
// flat rule blocks, one declaration per line, and /* */ comments.
func ParseBlocks(css string) ([]Block, error) {
	var blocks []Block
	var current *Block

	for n, raw := range strings.Split(stripComments(css), "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case strings.HasSuffix(line, "{"):
			if current != nil {
				return nil, fmt.Errorf("line %d: nested block %q", n+1, line)
			}
			current = &Block{Selector: strings.TrimSpace(strings.TrimSuffix(line, "{"))}
		case line == "}":
			if current == nil {
				return nil, fmt.Errorf("line %d: unexpected }", n+1)
			}
			blocks = append(blocks, *current)
			current = nil
		default:
			if current == nil {
				return nil, fmt.Errorf("line %d: declaration outside block", n+1)
			}
			key, value, ok := strings.Cut(strings.TrimSuffix(line, ";"), ":")
			if !ok || !strings.HasSuffix(line, ";") {
				return nil, fmt.Errorf("line %d: malformed declaration %q", n+1, line)
			}
			current.Declarations = append(current.Declarations, Declaration{
				Key:   strings.TrimSpace(key),
				Value: strings.TrimSpace(value),
			})
		}
	}

	if current != nil {
		return nil, fmt.Errorf("unterminated block %q", current.Selector)
	}
	return blocks, nil
}

func stripComments(css string) string {
	var b strings.Builder
	for {
		start := strings.Index(css, "/*")
		if start < 0 {
			b.WriteString(css)
			return b.String()
		}
		b.WriteString(css[:start])
		end := strings.Index(css[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		css = css[start+2+end+2:]
	}
}
