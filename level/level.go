// Package level implements the box-tree level format: a line-oriented,
// tab-indented text format describing a forest of nested rectangular blocks
// containing typed cell objects.
//
// A document is a header section of whitespace-tokenized key/value lines
// terminated by a line containing exactly "#", followed by a body of object
// lines whose leading tab count encodes tree depth. Parse and Serialize are
// exact inverses for any well-formed document, including verbatim
// preservation of unrecognized header lines and floor payloads.
package level

// Object is a node in a block's children sequence. Implemented by *Block,
// *Ref, *Wall and *Floor. The order of a children sequence is meaningful:
// earlier entries render below later ones, and later entries win hit
// priority among blocks.
type Object interface {
	object()
}

// DrawStyle selects how a level is presented by the game client.
type DrawStyle string

const (
	DrawStyleDefault  DrawStyle = ""
	DrawStyleTUI      DrawStyle = "tui"
	DrawStyleGrid     DrawStyle = "grid"
	DrawStyleOldStyle DrawStyle = "oldstyle"
)

// Header holds the key/value preamble of a level document. Unrecognized
// lines are kept verbatim, in order, so that a parse/serialize cycle
// reproduces the original text.
type Header struct {
	Version            int
	AttemptOrder       string
	Shed               bool
	InnerPush          bool
	DrawStyle          DrawStyle
	CustomLevelMusic   int // -1 when absent
	CustomLevelPalette int // -1 when absent
	Unknown            []string
}

// Block is a rectangle that owns an ordered sequence of child objects and is
// the only branching node kind in the tree.
type Block struct {
	X, Y          int
	ID            int
	Width, Height int
	Hue, Sat, Val float64
	Zoom          float64
	FillWithWalls bool
	Player        bool
	Possessable   bool
	PlayerOrder   int
	FlipH         bool
	FloatInSpace  bool
	SpecialEffect int
	Children      []Object
}

// Ref is a leaf that names another block by id. The id is never resolved
// here; it is not a structural link, which is what keeps the tree acyclic.
type Ref struct {
	X, Y          int
	ID            int
	ExitBlock     bool
	InfExit       bool
	InfExitNum    int
	InfEnter      bool
	InfEnterNum   int
	Player        bool
	Possessable   bool
	PlayerOrder   int
	FlipH         bool
	FloatInSpace  bool
	SpecialEffect int
}

// Wall is a leaf occupying a single cell.
type Wall struct {
	X, Y        int
	Player      bool
	Possessable bool
	PlayerOrder int
}

// FloorKind tags the variant carried by a Floor.
type FloorKind int

const (
	FloorButton FloorKind = iota
	FloorPlayerButton
	FloorPortal
	FloorInfo
	FloorBreak
	FloorFastTravel
	FloorGallery
	FloorDemoEnd
	FloorUnknown
)

// Floor is a leaf carrying a tagged variant. Portal holds a scene name,
// Info holds free text, and Unknown preserves an unrecognized payload
// verbatim so it still round-trips.
type Floor struct {
	X, Y  int
	Kind  FloorKind
	Scene string // Portal
	Text  string // Info
	Raw   string // Unknown
}

// Level is a full document: a header plus the forest of root blocks.
type Level struct {
	Header Header
	Roots  []*Block
}

func (*Block) object() {}
func (*Ref) object()   {}
func (*Wall) object()  {}
func (*Floor) object() {}

// NewEmptyLevel returns the fixed starting document used for new files:
// version 4 and a single 9x9 root block with id 0.
func NewEmptyLevel() *Level {
	return &Level{
		Header: Header{
			Version:            4,
			CustomLevelMusic:   -1,
			CustomLevelPalette: -1,
		},
		Roots: []*Block{{
			Width:  9,
			Height: 9,
			Hue:    0.6,
			Sat:    0.8,
			Val:    1,
			Zoom:   1,
		}},
	}
}

// Clone returns a structurally independent deep copy of the level. Every
// edit operates on a clone; parsed levels are never mutated in place.
func (l *Level) Clone() *Level {
	out := &Level{Header: l.Header}
	if l.Header.Unknown != nil {
		out.Header.Unknown = append([]string(nil), l.Header.Unknown...)
	}
	if l.Roots != nil {
		out.Roots = make([]*Block, len(l.Roots))
		for i, r := range l.Roots {
			out.Roots[i] = r.Clone()
		}
	}
	return out
}

// Clone deep-copies the block and its entire subtree.
func (b *Block) Clone() *Block {
	out := *b
	if b.Children != nil {
		out.Children = make([]Object, len(b.Children))
		for i, c := range b.Children {
			out.Children[i] = cloneObject(c)
		}
	}
	return &out
}

func cloneObject(o Object) Object {
	switch v := o.(type) {
	case *Block:
		return v.Clone()
	case *Ref:
		c := *v
		return &c
	case *Wall:
		c := *v
		return &c
	case *Floor:
		c := *v
		return &c
	}
	return o
}
