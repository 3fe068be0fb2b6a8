package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"github.com/ygo-tools/seccannon/pkg/seccannon"
)

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables are package globals; reset them between runs.
	outputPath, markdownPath, verbose = "", "", false

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	out, err := execute(t, "1", "2", "1", "2", "-o", path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "Saved: "+path) {
		t.Errorf("Expected confirmation message, got %q", out)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open written file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	// Header plus one row per solution.
	if len(rows) != 5 {
		t.Errorf("Expected 5 rows, got %d", len(rows))
	}
}

func TestRunWritesMarkdown(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "out.xlsx")
	mdPath := filepath.Join(dir, "out.md")

	out, err := execute(t, "1", "2", "1", "2", "-o", xlsxPath, "--markdown", mdPath)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "Saved: "+mdPath) {
		t.Errorf("Expected markdown confirmation, got %q", out)
	}

	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("Failed to read markdown file: %v", err)
	}
	if !strings.Contains(string(data), "nb cards") {
		t.Error("Expected table headers in markdown output")
	}
}

func TestRunRejectsNonInteger(t *testing.T) {
	_, err := execute(t, "1", "2", "x", "4")
	if err == nil {
		t.Fatal("Expected error for non-integer argument")
	}
	if !strings.Contains(err.Error(), "fusion_min") {
		t.Errorf("Expected error naming fusion_min, got %v", err)
	}
}

func TestRunRejectsInvalidBounds(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "fusion range inverted",
			args:    []string{"1", "2", "5", "1"},
			wantErr: seccannon.ErrFusionOrder,
		},
		{
			name:    "xyz range inverted",
			args:    []string{"6", "2", "1", "5"},
			wantErr: seccannon.ErrXYZOrder,
		},
		{
			name:    "xyz min zero",
			args:    []string{"0", "2", "1", "5"},
			wantErr: seccannon.ErrNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute() = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunRejectsWrongArgCount(t *testing.T) {
	_, err := execute(t, "1", "2", "3")
	if err == nil {
		t.Fatal("Expected error for missing argument")
	}
}

func TestParseBounds(t *testing.T) {
	bounds, err := parseBounds([]string{"2", "6", "1", "5"})
	if err != nil {
		t.Fatalf("parseBounds failed: %v", err)
	}

	want := seccannon.Bounds{XYZMin: 2, XYZMax: 6, FusionMin: 1, FusionMax: 5}
	if bounds != want {
		t.Errorf("parseBounds = %+v, expected %+v", bounds, want)
	}
}

func TestOutputFilename(t *testing.T) {
	b := seccannon.Bounds{XYZMin: 2, XYZMax: 6, FusionMin: 1, FusionMax: 5}
	want := "sec xyz2-6 fusion1-5.xlsx"
	if got := outputFilename(b); got != want {
		t.Errorf("outputFilename = %q, expected %q", got, want)
	}
}
