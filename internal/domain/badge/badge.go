package badge

import (
	"errors"
	"fmt"
	"slices"

	"hris/internal/table"
)

var ErrUnknownTag = errors.New("unknown badge tag")

// Tones understood by the renderers.
const (
	ToneGreen   = "green"
	ToneEmerald = "emerald"
	ToneYellow  = "yellow"
	ToneAmber   = "amber"
	ToneOrange  = "orange"
	ToneRed     = "red"
	ToneRose    = "rose"
	ToneBlue    = "blue"
	TonePurple  = "purple"
	ToneIndigo  = "indigo"
	ToneSlate   = "slate"
	ToneGray    = "gray"
)

type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
	Icon  string `json:"icon,omitempty"`
}

func (b Badge) Cell() table.Cell {
	text := b.Label
	if b.Icon != "" {
		text = b.Icon + " " + b.Label
	}
	return table.Cell{Text: text, Tone: b.Tone}
}

// Mapping is the closed set of badges for one discriminant type.
type Mapping[K ~string] struct {
	kind     string
	entries  map[K]Badge
	fallback Badge
}

func NewMapping[K ~string](kind string, fallback Badge, entries map[K]Badge) Mapping[K] {
	return Mapping[K]{kind: kind, entries: entries, fallback: fallback}
}

func (m Mapping[K]) Lookup(tag K) (Badge, error) {
	b, ok := m.entries[tag]
	if !ok {
		return Badge{}, fmt.Errorf("%w: %s %q", ErrUnknownTag, m.kind, string(tag))
	}
	return b, nil
}

// Resolve returns the mapped badge or the neutral fallback labelled with the raw tag.
func (m Mapping[K]) Resolve(tag K) Badge {
	b, err := m.Lookup(tag)
	if err != nil {
		fallback := m.fallback
		fallback.Label = string(tag)
		return fallback
	}
	return b
}

func (m Mapping[K]) Known() []K {
	out := make([]K, 0, len(m.entries))
	for tag := range m.entries {
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}

func (m Mapping[K]) Valid(tag K) bool {
	_, ok := m.entries[tag]
	return ok
}

// Neutral is the fallback used by most mappings.
var Neutral = Badge{Tone: ToneGray}

type RecordStatus string

const (
	StatusActive   RecordStatus = "Active"
	StatusInactive RecordStatus = "Inactive"
)

var RecordStatuses = NewMapping("record status", Neutral, map[RecordStatus]Badge{
	StatusActive:   {Label: "Active", Tone: ToneGreen},
	StatusInactive: {Label: "Inactive", Tone: ToneSlate},
})
