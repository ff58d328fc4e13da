package level

import (
	"math"
	"strconv"
	"strings"
)

// The header section runs from the start of the document to a line equal to
// "#", which is consumed. Recognized keys are matched on the first token of
// each line; everything else is preserved verbatim so the document survives
// editors that don't know about newer keys.

const headerTerminator = "#"

var drawStyles = map[string]DrawStyle{
	"tui":      DrawStyleTUI,
	"grid":     DrawStyleGrid,
	"oldstyle": DrawStyleOldStyle,
}

// parseHeader consumes header lines starting at index start and returns the
// header plus the index of the first body line. Line numbers in errors are
// 1-based.
func parseHeader(lines []string, start int) (Header, int, error) {
	h := Header{
		CustomLevelMusic:   -1,
		CustomLevelPalette: -1,
	}
	versionSeen := false

	i := start
	for ; i < len(lines); i++ {
		raw := strings.TrimRight(lines[i], " \t\r")
		if raw == headerTerminator {
			i++
			break
		}
		toks := strings.Fields(raw)
		if len(toks) == 0 {
			continue
		}
		rest := strings.Join(toks[1:], " ")
		switch toks[0] {
		case "version":
			v, err := strconv.ParseFloat(rest, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return h, i, parseErrorf(i+1, "invalid version %q", rest)
			}
			h.Version = int(v)
			versionSeen = true
		case "attempt_order":
			h.AttemptOrder = rest
		case "shed":
			h.Shed = true
		case "inner_push":
			h.InnerPush = true
		case "draw_style":
			if ds, ok := drawStyles[rest]; ok {
				h.DrawStyle = ds
			} else {
				h.Unknown = append(h.Unknown, raw)
			}
		case "custom_level_music":
			if v, err := strconv.ParseFloat(rest, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
				h.CustomLevelMusic = int(v)
			} else {
				h.Unknown = append(h.Unknown, raw)
			}
		case "custom_level_palette":
			if v, err := strconv.ParseFloat(rest, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
				h.CustomLevelPalette = int(v)
			} else {
				h.Unknown = append(h.Unknown, raw)
			}
		default:
			h.Unknown = append(h.Unknown, raw)
		}
	}

	if !versionSeen {
		return h, i, parseErrorf(i, "missing version")
	}
	return h, i, nil
}

// writeHeader emits the header fields in fixed order: version always, each
// optional field only when present, then the unknown lines in recorded
// order, then the terminator.
func writeHeader(sb *strings.Builder, h Header) {
	sb.WriteString("version ")
	sb.WriteString(strconv.Itoa(h.Version))
	sb.WriteByte('\n')
	if h.AttemptOrder != "" {
		sb.WriteString("attempt_order ")
		sb.WriteString(h.AttemptOrder)
		sb.WriteByte('\n')
	}
	if h.Shed {
		sb.WriteString("shed\n")
	}
	if h.InnerPush {
		sb.WriteString("inner_push\n")
	}
	if h.DrawStyle != DrawStyleDefault {
		sb.WriteString("draw_style ")
		sb.WriteString(string(h.DrawStyle))
		sb.WriteByte('\n')
	}
	if h.CustomLevelMusic != -1 {
		sb.WriteString("custom_level_music ")
		sb.WriteString(strconv.Itoa(h.CustomLevelMusic))
		sb.WriteByte('\n')
	}
	if h.CustomLevelPalette != -1 {
		sb.WriteString("custom_level_palette ")
		sb.WriteString(strconv.Itoa(h.CustomLevelPalette))
		sb.WriteByte('\n')
	}
	for _, u := range h.Unknown {
		sb.WriteString(u)
		sb.WriteByte('\n')
	}
	sb.WriteString(headerTerminator)
	sb.WriteByte('\n')
}
