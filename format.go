package jsondiff

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal, in which case it's a
// good idea to pass colorTTY=true to the formatting functions
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// palette colors output by operation
type palette struct {
	insert, delete, neutral *color.Color
}

func newPalette(colorTTY bool) palette {
	p := palette{
		insert:  color.New(color.FgGreen),
		delete:  color.New(color.FgRed),
		neutral: color.New(color.FgWhite),
	}
	for _, c := range []*color.Color{p.insert, p.delete, p.neutral} {
		if colorTTY {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) forOp(op Operation) *color.Color {
	switch op {
	case DTInsert:
		return p.insert
	case DTDelete:
		return p.delete
	default:
		return p.neutral
	}
}

// FormatPrettyString is a convenice wrapper that outputs to a string instead of
// an io.Writer
func FormatPrettyString(changes Deltas, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, changes, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one line per delta in application
// order. if colorTTY is true it will add
// red "-" for deletions
// green "+" for insertions
// the root path is written as "/"
func FormatPretty(w io.Writer, changes Deltas, colorTTY bool) error {
	p := newPalette(colorTTY)
	for _, d := range changes {
		if d == nil {
			continue
		}
		path := d.Path.String()
		if path == "" {
			path = "/"
		}

		var line string
		switch d.Type {
		case DTInsert:
			data, err := d.Value.MarshalJSON()
			if err != nil {
				return err
			}
			line = fmt.Sprintf("%s %s: %s", d.Type, path, data)
		default:
			line = fmt.Sprintf("%s %s", d.Type, path)
		}

		if _, err := fmt.Fprintln(w, p.forOp(d.Type).Sprint(line)); err != nil {
			return err
		}
	}
	return nil
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(diffStat *Stats) string {
	return formatStats(diffStat, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(diffStat *Stats) string {
	return formatStats(diffStat, true)
}

func formatStats(ds *Stats, colorTTY bool) string {
	if ds == nil {
		return "<nil>"
	}

	p := newPalette(colorTTY)
	buf := &bytes.Buffer{}

	elsColor := p.insert
	change := ds.NodeChange()
	elementsWord := "elements"
	sign := "+"
	if change < 0 {
		elsColor = p.delete
		sign = ""
	} else if change == 0 {
		elsColor = p.neutral
		sign = ""
	}
	if change == 1 || change == -1 {
		elementsWord = "element"
	}

	buf.WriteString(elsColor.Sprintf("%s%d", sign, change))
	buf.WriteString(p.neutral.Sprintf(" %s.", elementsWord))

	insertsWord := "inserts"
	if ds.Inserts == 1 {
		insertsWord = "insert"
	}
	buf.WriteString(p.insert.Sprintf(" %d %s.", ds.Inserts, insertsWord))

	deletesWord := "deletes"
	if ds.Deletes == 1 {
		deletesWord = "delete"
	}
	buf.WriteString(p.delete.Sprintf(" %d %s.", ds.Deletes, deletesWord))

	if ds.Replaced {
		buf.WriteString(p.neutral.Sprint(" replaced."))
	}

	buf.WriteRune('\n')
	return buf.String()
}
