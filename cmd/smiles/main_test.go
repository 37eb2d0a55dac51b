package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// Run with the help flag to exercise main/run without relying on any real
// subcommand producing output, the way poly's TestMain spoofs os.Stdout.
func TestMain(t *testing.T) {
	rescueStdout := os.Stdout
	_, w, _ := os.Pipe()
	os.Stdout = w

	arg := os.Args[0:1]
	os.Args = append(arg, "-h")
	main()
	os.Args = os.Args[0:1]
	w.Close()
	os.Stdout = rescueStdout
}

func runApp(args ...string) (string, error) {
	var buf bytes.Buffer
	app := application()
	app.Writer = &buf

	full := append([]string{"smiles"}, args...)
	err := app.Run(full)
	return buf.String(), err
}

func TestParseCommandPrintsCST(t *testing.T) {
	out, err := runApp("parse", "CC(C)C")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out, "Rendered: CC(C)C") {
		t.Errorf("output missing rendered chain: %q", out)
	}
	if !strings.Contains(out, "Atoms: 4") {
		t.Errorf("output missing atom count: %q", out)
	}
}

func TestParseCommandRejectsBadInput(t *testing.T) {
	if _, err := runApp("parse", "[Qq]"); err == nil {
		t.Error("expected a parse error")
	}
}

func TestParseCommandRequiresExactlyOneArg(t *testing.T) {
	if _, err := runApp("parse"); err == nil {
		t.Error("expected an error with no arguments")
	}
	if _, err := runApp("parse", "CC", "CC"); err == nil {
		t.Error("expected an error with two arguments")
	}
}

func TestGraphCommandReportsComponents(t *testing.T) {
	out, err := runApp("graph", "[Na+].[Cl-]")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out, "Components: 2") {
		t.Errorf("output missing component count: %q", out)
	}
}

func TestGraphCommandCountsEthaneHydrogens(t *testing.T) {
	out, err := runApp("graph", "CC")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out, "Nodes: 8") {
		t.Errorf("output missing node count: %q", out)
	}
}

func TestBackboneCommandFindsLongestBranch(t *testing.T) {
	out, err := runApp("backbone", "CC(CCCC)C")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out, "Backbone length: 6") {
		t.Errorf("output missing backbone length: %q", out)
	}
}

func TestBackboneCommandNoCarbons(t *testing.T) {
	out, err := runApp("backbone", "[Na+].[Cl-]")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out, "No carbon backbone found.") {
		t.Errorf("output missing no-backbone message: %q", out)
	}
}
