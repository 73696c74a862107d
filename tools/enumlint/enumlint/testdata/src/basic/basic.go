// SPDX-License-Identifier: MPL-2.0

package basic

import "fmt"

// --- Conforming enumeration: no findings ---

type Color uint8

const (
	Red Color = iota
	Green
	Blue
	ColorCount

	ColorFirst = Red
)

func (Color) Bounds() (first, count Color) { return ColorFirst, ColorCount }

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// --- Gap: 2 is inside the range but unnamed ---

type Level int // want `type basic\.Level: value 2 in \[1, 4\) has no named constant`

const (
	LevelLow   Level = 1
	LevelHigh  Level = 3
	LevelCount Level = 4
)

func (Level) Bounds() (Level, Level) { return LevelLow, LevelCount }

func (l Level) String() string { return fmt.Sprintf("level-%d", int(l)) }

// --- Stray constant beyond Count ---

type Shade int

const (
	ShadeLight Shade = iota
	ShadeDark
	ShadeCount
	ShadeLegacy Shade = 9 // want `constant basic\.ShadeLegacy = 9 of type basic\.Shade lies outside \[0, 2\]`
)

func (Shade) Bounds() (Shade, Shade) { return ShadeLight, ShadeCount }

func (s Shade) String() string { return fmt.Sprint(int(s)) }

// --- No display hook ---

type Phase int // want `type basic\.Phase has no String\(\) string method`

const (
	PhaseInit Phase = iota
	PhaseRun
	PhaseCount
)

func (Phase) Bounds() (Phase, Phase) { return PhaseInit, PhaseCount }

// --- Bounds computed at run time ---

var slotCount = 3

type Slot int

const (
	SlotA Slot = iota
	SlotB
	SlotC
)

func (Slot) Bounds() (Slot, Slot) { // want `type basic\.Slot: Bounds must return constants of the enumeration type`
	return SlotA, Slot(slotCount)
}

func (s Slot) String() string { return fmt.Sprint(int(s)) }

// --- First past Count: the range is inverted ---

type Rank int

const (
	RankLow  Rank = 1
	RankHigh Rank = 3
)

func (Rank) Bounds() (Rank, Rank) { return RankHigh, RankLow } // want `type basic\.Rank: Bounds first 3 is greater than count 1`

func (r Rank) String() string { return fmt.Sprint(int(r)) }

// --- Suppressed by directive ---

//enumlint:ignore
type Legacy int

const LegacyOnly Legacy = 5

func (Legacy) Bounds() (Legacy, Legacy) { return 0, 2 }

// --- Not bounded enumerations: ignored ---

type Plain int

const PlainValue Plain = 7

type Ptr int

func (*Ptr) Bounds() (Ptr, Ptr) { return 0, 1 }

type Name string

func (Name) Bounds() (Name, Name) { return "a", "b" }
