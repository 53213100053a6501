package vector

import (
	"fmt"
	"strings"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	// Document commands
	CmdBegin CommandType = iota // Start of document
	CmdEnd                      // End of document

	// Structure commands
	CmdBeginGroup // Open a transformed group
	CmdEndGroup   // Close the innermost group

	// Drawing commands
	CmdLine    // Straight line
	CmdCircle  // Circle
	CmdPolygon // Closed polygon
	CmdPath    // Multi-command path
	CmdText    // Text run
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBegin:      "Begin",
	CmdEnd:        "End",
	CmdBeginGroup: "BeginGroup",
	CmdEndGroup:   "EndGroup",
	CmdLine:       "Line",
	CmdCircle:     "Circle",
	CmdPolygon:    "Polygon",
	CmdPath:       "Path",
	CmdText:       "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded backend call. Only the fields relevant to Type
// are set.
type Command struct {
	Type      CommandType
	Transform Transform
	Points    []Point
	Radius    float64
	Data      string
	Style     Style
}

// String renders the command on one line, e.g.
// "Circle (50,50) r=5 stroke=black fill=none width=1".
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Type.String())
	switch c.Type {
	case CmdBeginGroup:
		t := c.Transform
		fmt.Fprintf(&sb, " translate(%s,%s) rotate(%s about %s,%s)",
			FormatNumber(t.Offset.X), FormatNumber(t.Offset.Y),
			FormatNumber(t.Angle), FormatNumber(t.Pivot.X), FormatNumber(t.Pivot.Y))
		return sb.String()
	case CmdEndGroup, CmdEnd:
		return sb.String()
	}
	for _, p := range c.Points {
		fmt.Fprintf(&sb, " (%s,%s)", FormatNumber(p.X), FormatNumber(p.Y))
	}
	if c.Type == CmdCircle {
		fmt.Fprintf(&sb, " r=%s", FormatNumber(c.Radius))
	}
	if c.Data != "" {
		fmt.Fprintf(&sb, " %q", c.Data)
	}
	if c.Style.Stroke != "" {
		fmt.Fprintf(&sb, " stroke=%s", c.Style.Stroke)
	}
	if c.Style.Fill != "" {
		fmt.Fprintf(&sb, " fill=%s", c.Style.Fill)
	}
	if c.Style.StrokeWidth != 0 {
		fmt.Fprintf(&sb, " width=%s", FormatNumber(c.Style.StrokeWidth))
	}
	return sb.String()
}
