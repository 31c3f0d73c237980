package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Palette holds the ANSI colours used for each kind of message.
type Palette struct {
	Error   string
	Warn    string
	Info    string
	Success string
	Link    string
	Muted   string
}

var (
	LightPalette = Palette{Error: "1", Warn: "3", Info: "4", Success: "2", Link: "#005F87", Muted: "8"}
	DarkPalette  = Palette{Error: "9", Warn: "11", Info: "12", Success: "10", Link: "#87CEEB", Muted: "7"}
)

type UI struct {
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
	Palette      Palette
}

func New(out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	errOutput := termenv.NewOutput(err)

	colorEnabled := shouldEnableColor(output, mode, disableColor)
	return &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    errOutput,
		ColorEnabled: colorEnabled,
		Palette:      LightPalette,
	}
}

// SetDarkMode switches between the light and dark palettes.
func (u *UI) SetDarkMode(dark bool) {
	if dark {
		u.Palette = DarkPalette
		return
	}
	u.Palette = LightPalette
}

func shouldEnableColor(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if disableColor {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

func (u *UI) print(w io.Writer, output *termenv.Output, color string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = output.String(msg).Foreground(output.Color(color)).String()
	}
	fmt.Fprintln(w, msg)
}

func (u *UI) Errorf(format string, args ...any) {
	u.print(u.Err, u.ErrOutput, u.Palette.Error, format, args...)
}

func (u *UI) Warnf(format string, args ...any) {
	u.print(u.Err, u.ErrOutput, u.Palette.Warn, format, args...)
}

func (u *UI) Infof(format string, args ...any) {
	u.print(u.Out, u.Output, u.Palette.Info, format, args...)
}

func (u *UI) Successf(format string, args ...any) {
	u.print(u.Out, u.Output, u.Palette.Success, format, args...)
}

// Badge colours an application status label.
func (u *UI) Badge(status string, label string) string {
	if !u.ColorEnabled {
		return label
	}
	color := u.Palette.Muted
	switch status {
	case "pending":
		color = u.Palette.Warn
	case "accepted":
		color = u.Palette.Success
	case "rejected":
		color = u.Palette.Error
	case "not_applied":
		color = u.Palette.Info
	}
	return u.Output.String(label).Foreground(u.Output.Color(color)).String()
}

func ColorizeLink(output *termenv.Output, enabled bool, color string, text string) string {
	if !enabled || output == nil {
		return text
	}
	return output.String(text).Foreground(output.Color(color)).String()
}

func (u *UI) LinkText(text string) string {
	return ColorizeLink(u.Output, u.ColorEnabled, u.Palette.Link, text)
}

func NormalizeColorMode(value string) ColorMode {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case string(ColorAlways):
		return ColorAlways
	case string(ColorNever):
		return ColorNever
	default:
		return ColorAuto
	}
}
