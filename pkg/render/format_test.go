package render

import "testing"

func TestFormats(t *testing.T) {
	for _, f := range Formats() {
		if Extension(f) != "."+f {
			t.Errorf("Extension(%q) = %q", f, Extension(f))
		}
		if ContentType(f) == "" {
			t.Errorf("ContentType(%q) is empty", f)
		}
	}
	if Extension("gif") != "" {
		t.Error("Extension(gif) should be empty")
	}
	if !Binary(FormatPNG) || Binary(FormatSVG) {
		t.Error("Binary() misclassifies formats")
	}
}
