package render

import "slices"

// Output format names.
const (
	FormatTXT  = "txt"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatPNG  = "png"
)

// Formats returns every supported output format.
func Formats() []string {
	return []string{FormatTXT, FormatSVG, FormatJSON, FormatDOT, FormatPNG}
}

// Binary reports whether format produces non-text output.
func Binary(format string) bool { return format == FormatPNG }

// ContentType returns the MIME type served for format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatPNG:
		return "image/png"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// Extension returns the file extension, including the dot, for format.
func Extension(format string) string {
	if !slices.Contains(Formats(), format) {
		return ""
	}
	return "." + format
}
