package summarizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/user/readbench/pkg/pipeline"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion sets the version shown in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Benchmark Summary"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Generated"), s.GeneratedAt.Format(time.RFC3339))
	if s.RunID != "" {
		fmt.Fprintf(&b, "- %s: `%s`\n", t("Run ID"), s.RunID)
	}
	b.WriteString("\n")

	// File
	fmt.Fprintf(&b, "## %s\n\n", t("File"))
	writeTableHeader(&b, t("Item"), t("Value"))
	writeRow(&b, t("Path"), "`"+s.File.Path+"`")
	writeRow(&b, t("Size"), fmt.Sprintf("%s (%d bytes)", formatBytes(s.File.Size), s.File.Size))
	writeRow(&b, t("Generated Fixture"), f.yesNo(s.File.Generated))
	b.WriteString("\n")

	// Settings
	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	writeTableHeader(&b, t("Item"), t("Value"))
	writeRow(&b, t("Bench Time"), s.Settings.BenchTime)
	writeRow(&b, t("Runs per Strategy"), fmt.Sprintf("%d", s.Settings.Count))
	writeRow(&b, t("Verified"), f.yesNo(s.Settings.Verified))
	if s.Settings.GoVersion != "" {
		writeRow(&b, t("Go Version"), s.Settings.GoVersion)
	}
	if s.Settings.OS != "" {
		writeRow(&b, t("Platform"), s.Settings.OS+"/"+s.Settings.Arch)
	}
	b.WriteString("\n")

	// Verification
	if len(s.Checks) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Verification"))
		writeTableHeader(&b, t("Strategy"), t("Bytes"), t("Read Time"))
		for _, c := range s.Checks {
			writeRow(&b,
				c.Strategy,
				fmt.Sprintf("%d", c.Bytes),
				pipeline.FormatNs(float64(c.Elapsed.Nanoseconds())),
			)
		}
		b.WriteString("\n")
	}

	// Results
	fmt.Fprintf(&b, "## %s\n\n", t("Results"))
	if len(s.Results) == 0 {
		fmt.Fprintf(&b, "%s\n", t("No results"))
	} else {
		writeTableHeader(&b,
			"#", t("Strategy"), t("Mean"), t("Median"), t("Min"), t("Max"),
			t("Std Dev"), "MB/s", "allocs/op", "B/op", t("Relative"))
		for i, r := range s.Results {
			writeRow(&b,
				fmt.Sprintf("%d", i+1),
				r.Strategy,
				pipeline.FormatNs(r.MeanNs),
				pipeline.FormatNs(r.MedianNs),
				pipeline.FormatNs(r.MinNs),
				pipeline.FormatNs(r.MaxNs),
				pipeline.FormatNs(r.StdDevNs),
				fmt.Sprintf("%.2f", r.MBPerSec),
				fmt.Sprintf("%d", r.AllocsPerOp),
				fmt.Sprintf("%d", r.BytesPerOp),
				fmt.Sprintf("%.2fx", r.Relative),
			)
		}
	}

	b.WriteString("\n---\n\n")
	footer := t("Generated by") + " readbench"
	if f.version != "" {
		footer += " " + f.version
	}
	b.WriteString(footer + "\n")

	return b.String()
}

func (f *MarkdownFormatter) yesNo(v bool) string {
	if v {
		return f.translate("Yes")
	}
	return f.translate("No")
}

func writeTableHeader(b *strings.Builder, cols ...string) {
	writeRow(b, cols...)
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	writeRow(b, seps...)
}

func writeRow(b *strings.Builder, cells ...string) {
	b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

// formatBytes formats a byte count with binary units.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
