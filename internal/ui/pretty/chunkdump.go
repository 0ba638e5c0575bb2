package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vobal-jb/uncrustify/pkg/chunk"
	"github.com/vobal-jb/uncrustify/pkg/config"
	"github.com/vobal-jb/uncrustify/pkg/token"
)

// Dump formatting constants.
const (
	positionWidth    = 9
	kindWidth        = 16
	levelWidth       = 3
	parentWidth      = 14
	maxTextWidth     = 40
	defaultTermWidth = 100
)

// DumpFormatter renders a chunk list as a styled table, one row per chunk.
type DumpFormatter struct {
	styles    *Styles
	termWidth int
	cfg       config.DumpConfig
}

// NewDumpFormatter creates a dump formatter. A non-positive termWidth falls
// back to a default.
func NewDumpFormatter(styles *Styles, termWidth int, cfg config.DumpConfig) *DumpFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &DumpFormatter{styles: styles, termWidth: termWidth, cfg: cfg}
}

// Format renders the whole store for one file.
func (d *DumpFormatter) Format(path string, store *chunk.Store) string {
	var b strings.Builder

	b.WriteString(d.styles.FilePath.Render(path))
	b.WriteString(d.styles.Dim.Render(fmt.Sprintf("  (%d chunks)", store.Len())))
	b.WriteString("\n")
	b.WriteString(d.header())
	b.WriteString("\n")

	for pc := store.Head(); pc != nil; pc = pc.Next(chunk.ScopeAll) {
		b.WriteString(d.row(pc))
		b.WriteString("\n")
	}
	return b.String()
}

func (d *DumpFormatter) header() string {
	cols := []string{
		pad("LINE:COL", positionWidth),
		pad("KIND", kindWidth),
	}
	if d.cfg.ShowLevel {
		cols = append(cols, pad("LVL", levelWidth))
	}
	if d.cfg.ShowParent {
		cols = append(cols, pad("PARENT", parentWidth))
	}
	cols = append(cols, "TEXT")
	if d.cfg.ShowFlags {
		cols = append(cols, "FLAGS")
	}
	return d.styles.Header.Render(strings.Join(cols, " "))
}

func (d *DumpFormatter) row(pc *chunk.Chunk) string {
	pos := fmt.Sprintf("%d:%d", pc.OrigLine(), pc.OrigCol())

	cols := []string{
		d.styles.Position.Render(pad(pos, positionWidth)),
		d.kindStyle(pc).Render(pad(pc.Kind().String(), kindWidth)),
	}
	if d.cfg.ShowLevel {
		cols = append(cols, d.styles.Level.Render(pad(fmt.Sprintf("%d", pc.Level()), levelWidth)))
	}
	if d.cfg.ShowParent {
		parent := ""
		if pc.ParentKind() != token.None {
			parent = pc.ParentKind().String()
		}
		cols = append(cols, d.styles.Parent.Render(pad(parent, parentWidth)))
	}
	cols = append(cols, d.styles.Text.Render(renderText(pc.Text(), d.textWidth())))
	if d.cfg.ShowFlags && pc.Flags() != token.FlagNone {
		cols = append(cols, d.styles.Flags.Render(pc.Flags().String()))
	}
	return strings.Join(cols, " ")
}

func (d *DumpFormatter) kindStyle(pc *chunk.Chunk) lipgloss.Style {
	switch {
	case pc.IsComment():
		return d.styles.Comment
	case pc.IsNewline():
		return d.styles.Newline
	case pc.IsPreproc():
		return d.styles.Preproc
	default:
		return d.styles.Kind
	}
}

// textWidth is the room left for the TEXT column on the current terminal.
func (d *DumpFormatter) textWidth() int {
	fixed := positionWidth + kindWidth + levelWidth + parentWidth + 8
	width := d.termWidth - fixed
	if width < 16 {
		width = 16
	}
	if width > maxTextWidth {
		width = maxTextWidth
	}
	return width
}

// renderText makes token text printable in one table cell: newlines become
// escapes, long text is truncated.
func renderText(text string, width int) string {
	out := strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(text)
	if len(out) > width {
		out = out[:width-3] + "..."
	}
	return out
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
