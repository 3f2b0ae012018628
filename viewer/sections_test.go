package viewer

import (
	"testing"
)

func TestSplitReport(t *testing.T) {
	out := "Warning: Module 1: B=9 valid=[0..0] assume zero relative\n" +
		"Symbol Table\n" +
		"A=0\n" +
		"B=1 Error: This variable is multiple times defined; first value used\n" +
		"\n" +
		"Memory Map\n" +
		"000: 1000\n" +
		"001: 1000 Error: X is not defined; zero used\n" +
		"Warning: Module 0: uselist[0]=X was not used\n" +
		"\n" +
		"Warning: Module 1: B was defined but never used\n"

	s := splitReport(out)

	if len(s.Symbols) != 2 {
		t.Fatalf("expected 2 symbol lines, got %d: %v", len(s.Symbols), s.Symbols)
	}
	if s.Symbols[0] != "A=0" {
		t.Errorf("unexpected first symbol line: %q", s.Symbols[0])
	}

	if len(s.Map) != 2 {
		t.Fatalf("expected 2 map lines, got %d: %v", len(s.Map), s.Map)
	}
	if s.Map[1] != "001: 1000 Error: X is not defined; zero used" {
		t.Errorf("inline errors must stay on the map line: %q", s.Map[1])
	}

	// Warnings from both passes are collected wherever they appear
	if len(s.Warnings) != 3 {
		t.Fatalf("expected 3 warning lines, got %d: %v", len(s.Warnings), s.Warnings)
	}
	if s.Warnings[0] != "Warning: Module 1: B=9 valid=[0..0] assume zero relative" {
		t.Errorf("unexpected first warning: %q", s.Warnings[0])
	}
}

func TestSplitReport_Empty(t *testing.T) {
	s := splitReport("Symbol Table\n\nMemory Map\n\n")
	if len(s.Symbols) != 0 || len(s.Map) != 0 || len(s.Warnings) != 0 {
		t.Errorf("expected empty sections, got %+v", s)
	}
}
