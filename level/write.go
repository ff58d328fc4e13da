package level

import (
	"strconv"
	"strings"
)

// Serialize encodes the level back into its text form: header, terminator,
// then a pre-order walk of the forest with one tab per depth and a single
// trailing newline. Serialize is the exact inverse of Parse.
func Serialize(l *Level) string {
	var sb strings.Builder
	writeHeader(&sb, l.Header)
	for _, r := range l.Roots {
		writeBlock(&sb, r, 0)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, b *Block, depth int) {
	indent(sb, depth)
	sb.WriteString("Block")
	writeInts(sb, b.X, b.Y, b.ID, b.Width, b.Height)
	writeFloats(sb, b.Hue, b.Sat, b.Val, b.Zoom)
	writeBools(sb, b.FillWithWalls, b.Player, b.Possessable)
	writeInts(sb, b.PlayerOrder)
	writeBools(sb, b.FlipH, b.FloatInSpace)
	writeInts(sb, b.SpecialEffect)
	sb.WriteByte('\n')
	for _, c := range b.Children {
		switch v := c.(type) {
		case *Block:
			writeBlock(sb, v, depth+1)
		case *Ref:
			writeRef(sb, v, depth+1)
		case *Wall:
			writeWall(sb, v, depth+1)
		case *Floor:
			writeFloor(sb, v, depth+1)
		}
	}
}

func writeRef(sb *strings.Builder, r *Ref, depth int) {
	indent(sb, depth)
	sb.WriteString("Ref")
	writeInts(sb, r.X, r.Y, r.ID)
	writeBools(sb, r.ExitBlock, r.InfExit)
	writeInts(sb, r.InfExitNum)
	writeBools(sb, r.InfEnter)
	writeInts(sb, r.InfEnterNum)
	writeBools(sb, r.Player, r.Possessable)
	writeInts(sb, r.PlayerOrder)
	writeBools(sb, r.FlipH, r.FloatInSpace)
	writeInts(sb, r.SpecialEffect)
	sb.WriteByte('\n')
}

func writeWall(sb *strings.Builder, w *Wall, depth int) {
	indent(sb, depth)
	sb.WriteString("Wall")
	writeInts(sb, w.X, w.Y)
	writeBools(sb, w.Player, w.Possessable)
	writeInts(sb, w.PlayerOrder)
	sb.WriteByte('\n')
}

func writeFloor(sb *strings.Builder, f *Floor, depth int) {
	indent(sb, depth)
	sb.WriteString("Floor")
	writeInts(sb, f.X, f.Y)
	switch f.Kind {
	case FloorButton:
		sb.WriteString(" Button")
	case FloorPlayerButton:
		sb.WriteString(" PlayerButton")
	case FloorPortal:
		sb.WriteString(" Portal")
		if f.Scene != "" {
			sb.WriteByte(' ')
			sb.WriteString(f.Scene)
		}
	case FloorInfo:
		sb.WriteString(" Info")
		if f.Text != "" {
			sb.WriteByte(' ')
			sb.WriteString(strings.ReplaceAll(f.Text, " ", "_"))
		}
	case FloorBreak:
		sb.WriteString(" Break")
	case FloorFastTravel:
		sb.WriteString(" FastTravel")
	case FloorGallery:
		sb.WriteString(" Gallery")
	case FloorDemoEnd:
		sb.WriteString(" DemoEnd")
	case FloorUnknown:
		if f.Raw != "" {
			sb.WriteByte(' ')
			sb.WriteString(f.Raw)
		}
	}
	sb.WriteByte('\n')
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteByte('\t')
	}
}

func writeInts(sb *strings.Builder, vs ...int) {
	for _, v := range vs {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(v))
	}
}

func writeBools(sb *strings.Builder, vs ...bool) {
	for _, v := range vs {
		if v {
			sb.WriteString(" 1")
		} else {
			sb.WriteString(" 0")
		}
	}
}

func writeFloats(sb *strings.Builder, vs ...float64) {
	for _, v := range vs {
		sb.WriteByte(' ')
		sb.WriteString(formatFloat(v))
	}
}

// formatFloat prints the shortest decimal form, falling back to 6 fixed
// places with trailing zeros stripped when the shortest form would use
// exponential notation, which the format does not allow.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, "eE") {
		s = strconv.FormatFloat(v, 'f', 6, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
