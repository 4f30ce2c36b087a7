package term

import (
	"testing"

	"github.com/backmassage/framegrid/internal/config"
)

func TestConfigure(t *testing.T) {
	defer Configure(config.ColorNever)

	Configure(config.ColorAlways)
	if !Enabled() {
		t.Fatal("ColorAlways should enable colors")
	}
	if got := Paint(Green, "ok"); got != Green+"ok"+NC {
		t.Errorf("Paint with colors = %q", got)
	}

	Configure(config.ColorNever)
	if Enabled() {
		t.Fatal("ColorNever should disable colors")
	}
	if got := Paint(Green, "ok"); got != "ok" {
		t.Errorf("Paint without colors = %q, want %q", got, "ok")
	}
}

func TestIsTerminal_Nil(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) should be false")
	}
}
