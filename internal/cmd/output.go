package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jimezsa/kazi/internal/export"
	"github.com/muesli/termenv"
)

// OutputOptions are shared by commands that print listings.
type OutputOptions struct {
	Format string `help:"Output format: table, csv, tsv, json, md." enum:",table,csv,tsv,json,md" default:""`
	Output string `name:"output" short:"o" help:"Write output to a file."`
}

func resolveFormat(ctx *Context, opts OutputOptions) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if opts.Format != "" {
		return parseFormat(opts.Format)
	}
	if opts.Output != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "json":
		return export.FormatJSON, nil
	case "md", "markdown":
		return export.FormatMarkdown, nil
	case "tsv":
		return export.FormatTSV, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

// openOutput returns the writer for opts and a func that closes it.
func openOutput(ctx *Context, opts OutputOptions) (io.Writer, func(), error) {
	if strings.TrimSpace(opts.Output) == "" {
		return ctx.Out, func() {}, nil
	}
	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}

func writeOptions(ctx *Context, w io.Writer) export.WriteOptions {
	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	opts := export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(w),
		Language:     ctx.Language(),
	}
	if ctx.UI != nil {
		opts.LinkColor = ctx.UI.Palette.Link
		opts.Badge = ctx.UI.Badge
	}
	return opts
}

// notice prints an informational line unless the output is meant for machines.
func notice(ctx *Context, format export.Format, msg string) {
	if ctx.UI == nil || format == export.FormatJSON || format == export.FormatCSV || format == export.FormatTSV {
		return
	}
	ctx.UI.Infof("%s", msg)
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func startIndicator(ctx *Context, label string) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				seconds := int(time.Since(start).Seconds())
				frame := frames[index%len(frames)]
				fmt.Fprintf(ctx.Err, "\r\033[2K%s %ds %s", label, seconds, frame)
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
