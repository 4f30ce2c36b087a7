package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/backmassage/framegrid/internal/config"
	"github.com/backmassage/framegrid/internal/term"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical document 700 KiB", 716800, "700.0 KiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-second", 850 * time.Millisecond, "850ms"},
		{"seconds", 12300 * time.Millisecond, "12.3s"},
		{"minutes", 125 * time.Second, "2m05s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestPrintGrid_Plain(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintGrid(&buf, [][]string{{"#000000", "#FFFFFF"}, {"#3264C8", "#010203"}})

	want := "  #000000 #FFFFFF\n  #3264C8 #010203\n"
	if buf.String() != want {
		t.Errorf("PrintGrid = %q, want %q", buf.String(), want)
	}
}

func TestSwatch_Colored(t *testing.T) {
	term.Configure(config.ColorAlways)
	defer term.Configure(config.ColorNever)

	got := Swatch("#3264C8")
	if !strings.Contains(got, "48;2;50;100;200") {
		t.Errorf("Swatch = %q, want 24-bit background for 50,100,200", got)
	}
	if got := Swatch("garbage"); got != "garbage " {
		t.Errorf("Swatch(garbage) = %q", got)
	}
}

func TestPrintBanner(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	if !strings.Contains(buf.String(), "v1.2.3") {
		t.Errorf("banner missing version: %q", buf.String())
	}
}
