package level

import "strings"

// Parse decodes a complete level document. It returns *ParseError on any
// malformed input; there is no partial result.
func Parse(text string) (*Level, error) {
	lines := strings.Split(text, "\n")

	header, body, err := parseHeader(lines, 0)
	if err != nil {
		return nil, err
	}

	roots, err := parseBody(lines, body)
	if err != nil {
		return nil, err
	}

	return &Level{Header: header, Roots: roots}, nil
}

// parseBody reconstructs the tree from the tab-indented object lines. The
// stack holds the currently open block at each ancestor depth; truncating it
// to a line's depth closes every block whose subtree has ended.
func parseBody(lines []string, start int) ([]*Block, error) {
	var roots []*Block
	var stack []*Block

	for i := start; i < len(lines); i++ {
		depth := 0
		for depth < len(lines[i]) && lines[i][depth] == '\t' {
			depth++
		}
		content := strings.TrimRight(lines[i][depth:], " \t\r")
		if content == "" {
			continue
		}

		if depth > len(stack) {
			return nil, parseErrorf(i+1, "invalid indentation")
		}
		stack = stack[:depth]

		var parent *Block
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}

		toks := strings.Fields(content)
		f := newFieldReader(toks[1:])
		switch toks[0] {
		case "Block":
			b := decodeBlock(f)
			if parent == nil {
				roots = append(roots, b)
			} else {
				parent.Children = append(parent.Children, b)
			}
			stack = append(stack, b)
		case "Ref":
			if parent == nil {
				return nil, parseErrorf(i+1, "Ref must be inside a Block")
			}
			parent.Children = append(parent.Children, decodeRef(f))
		case "Wall":
			if parent == nil {
				return nil, parseErrorf(i+1, "Wall must be inside a Block")
			}
			parent.Children = append(parent.Children, decodeWall(f))
		case "Floor":
			if parent == nil {
				return nil, parseErrorf(i+1, "Floor must be inside a Block")
			}
			parent.Children = append(parent.Children, decodeFloor(f))
		default:
			return nil, parseErrorf(i+1, "unknown object %q", toks[0])
		}
	}

	if len(roots) == 0 {
		return nil, parseErrorf(len(lines), "no root block found")
	}
	return roots, nil
}
