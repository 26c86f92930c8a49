package model

import (
	"encoding/json"
	"fmt"
)

// Level represents the classification assigned to a text run.
type Level int

const (
	LevelNone Level = iota
	LevelTitle
	LevelH1
	LevelH2
	LevelH3
)

// String returns the wire representation of the level.
func (l Level) String() string {
	switch l {
	case LevelTitle:
		return "title"
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "none"
	}
}

// Depth returns the nesting depth of the level for outline hierarchy
// building: title is 0, H1 is 1, H2 is 2, H3 is 3. LevelNone has no
// meaningful depth and returns -1.
func (l Level) Depth() int {
	switch l {
	case LevelTitle:
		return 0
	case LevelH1:
		return 1
	case LevelH2:
		return 2
	case LevelH3:
		return 3
	default:
		return -1
	}
}

// IsHeading returns true for H1, H2 and H3.
func (l Level) IsHeading() bool {
	return l >= LevelH1 && l <= LevelH3
}

// MarshalJSON encodes the level as its wire string ("title", "H1", ...).
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its wire string.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "title":
		*l = LevelTitle
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	case "none", "":
		*l = LevelNone
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}
