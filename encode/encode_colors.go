package encode

import (
	"strings"

	"github.com/kindredlab/gedcom-format/go-gedcom/element"

	"github.com/fatih/color"
)

// Colorable keys a color by what part of the line is being rendered
// and what kind of record the line belongs to.
type Colorable struct {
	Kind element.Kind
	Part Part
}

// Part names one segment of a rendered GEDCOM line.
type Part int

const (
	LevelPart Part = iota
	PointerPart
	TagPart
	ValuePart
)

// Colors maps line parts to sprint functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func kinds() []element.Kind {
	return []element.Kind{
		element.GenericKind,
		element.FamilyKind,
		element.IndividualKind,
		element.NoteKind,
		element.ObjectKind,
		element.RepositoryKind,
		element.SourceKind,
		element.SubmitterKind,
		element.SubmissionKind,
		element.HeaderKind,
	}
}

// NewColors returns the default terminal color scheme.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range kinds() {
		able := Colorable{Kind: k, Part: LevelPart}
		colors.Map[able] = color.RGB(128, 128, 128).SprintfFunc()
		able.Part = PointerPart
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Part = TagPart
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Part = ValuePart
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	}
	// record-opening tags stand out against their sub-lines
	for _, k := range kinds() {
		if k == element.GenericKind {
			continue
		}
		colors.Map[Colorable{Kind: k, Part: TagPart}] = color.RGB(196, 96, 16).SprintfFunc()
		colors.Map[Colorable{Kind: k, Part: PointerPart}] = color.CyanString
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k element.Kind, p Part, s string) string {
	return c.Get(k, p)(s)
}

func (c *Colors) Get(k element.Kind, p Part) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Part: p}]
	if f == nil {
		return c.Default
	}
	return f
}
