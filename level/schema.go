package level

import (
	"math"
	"strconv"
	"strings"
)

// Each object kind has a fixed ordered list of positional fields after its
// keyword. Decoding is lenient: a missing or non-finite token falls back to
// the field's default instead of failing, which matches how the game client
// reads files written by older editors with fewer fields.

// fieldReader walks the tokens of a single body line.
type fieldReader struct {
	toks []string
	i    int
}

func newFieldReader(toks []string) *fieldReader {
	return &fieldReader{toks: toks}
}

func (f *fieldReader) next() (string, bool) {
	if f.i >= len(f.toks) {
		return "", false
	}
	t := f.toks[f.i]
	f.i++
	return t, true
}

// intField parses the next token as a number truncated toward zero, or def
// when the token is missing or not a finite number.
func (f *fieldReader) intField(def int) int {
	t, ok := f.next()
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return int(v)
}

func (f *fieldReader) floatField(def float64) float64 {
	t, ok := f.next()
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// boolField is true only for the literal token "1".
func (f *fieldReader) boolField() bool {
	t, ok := f.next()
	return ok && t == "1"
}

// rest re-joins all remaining tokens with single spaces.
func (f *fieldReader) rest() string {
	s := strings.Join(f.toks[f.i:], " ")
	f.i = len(f.toks)
	return s
}

func decodeBlock(f *fieldReader) *Block {
	return &Block{
		X:             f.intField(0),
		Y:             f.intField(0),
		ID:            f.intField(0),
		Width:         f.intField(1),
		Height:        f.intField(1),
		Hue:           f.floatField(0),
		Sat:           f.floatField(0),
		Val:           f.floatField(0),
		Zoom:          f.floatField(1),
		FillWithWalls: f.boolField(),
		Player:        f.boolField(),
		Possessable:   f.boolField(),
		PlayerOrder:   f.intField(0),
		FlipH:         f.boolField(),
		FloatInSpace:  f.boolField(),
		SpecialEffect: f.intField(0),
	}
}

func decodeRef(f *fieldReader) *Ref {
	return &Ref{
		X:             f.intField(0),
		Y:             f.intField(0),
		ID:            f.intField(0),
		ExitBlock:     f.boolField(),
		InfExit:       f.boolField(),
		InfExitNum:    f.intField(0),
		InfEnter:      f.boolField(),
		InfEnterNum:   f.intField(0),
		Player:        f.boolField(),
		Possessable:   f.boolField(),
		PlayerOrder:   f.intField(0),
		FlipH:         f.boolField(),
		FloatInSpace:  f.boolField(),
		SpecialEffect: f.intField(0),
	}
}

func decodeWall(f *fieldReader) *Wall {
	return &Wall{
		X:           f.intField(0),
		Y:           f.intField(0),
		Player:      f.boolField(),
		Possessable: f.boolField(),
		PlayerOrder: f.intField(0),
	}
}

// decodeFloor reads x and y, then dispatches the re-joined remainder on its
// first token. Info uses underscores for spaces, its only escaping
// mechanism, since spaces are token separators. Anything unrecognized is
// kept opaque so it still round-trips.
func decodeFloor(f *fieldReader) *Floor {
	fl := &Floor{
		X: f.intField(0),
		Y: f.intField(0),
	}
	payload := f.rest()
	kind, arg, _ := strings.Cut(payload, " ")
	switch kind {
	case "Button":
		fl.Kind = FloorButton
	case "PlayerButton":
		fl.Kind = FloorPlayerButton
	case "Portal":
		fl.Kind = FloorPortal
		fl.Scene = arg
	case "Info":
		fl.Kind = FloorInfo
		fl.Text = strings.ReplaceAll(arg, "_", " ")
	case "Break":
		fl.Kind = FloorBreak
	case "FastTravel":
		fl.Kind = FloorFastTravel
	case "Gallery":
		fl.Kind = FloorGallery
	case "DemoEnd":
		fl.Kind = FloorDemoEnd
	default:
		fl.Kind = FloorUnknown
		fl.Raw = payload
	}
	return fl
}
