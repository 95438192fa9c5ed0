package docgen

import (
	"strings"
	"testing"
)

func TestExtractBlocks(t *testing.T) {
	header := strings.Join([]string{
		"#pragma once",
		"/** @DOC_START",
		"  # class nvvk::RingFences",
		"",
		"  RingFences recycles a fixed number of fences.   ",
		"    - indented item",
		"@DOC_END */",
		"class RingFences {};",
		"/** @DOC_START",
		"## functions",
		"- cmdBegin",
		"@DOC_END */",
	}, "\n")

	document, err := Extract(strings.NewReader(header))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	expected := "### class nvvk::RingFences\n" +
		"\n" +
		"RingFences recycles a fixed number of fences.\n" +
		"  - indented item\n" +
		"#### functions\n" +
		"- cmdBegin\n"
	if document.Text != expected {
		t.Errorf("Expected %q, got %q", expected, document.Text)
	}
	if document.Skip {
		t.Errorf("Unexpected skip")
	}
	if len(document.Warnings) != 0 {
		t.Errorf("Unexpected warnings %d", len(document.Warnings))
	}
}

func TestExtractWithoutBlocks(t *testing.T) {
	document, err := Extract(strings.NewReader("#pragma once\nint value;\n"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if document.Text != Todo {
		t.Errorf("Expected todo text, got %q", document.Text)
	}
}

func TestExtractSkip(t *testing.T) {
	document, err := Extract(strings.NewReader("// @DOC_SKIP\n/** @DOC_START\n# a\n@DOC_END */\n"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !document.Skip {
		t.Errorf("Expected skip")
	}
}

func TestExtractLegacyWarning(t *testing.T) {
	header := strings.Join([]string{
		"/**",
		" * \\class Legacy",
		" */",
		"// \\struct NotInDocComment",
		"/** @DOC_START",
		"\\namespace InsideBlock",
		"@DOC_END */",
		"/** \\namespace sample */",
	}, "\n")

	document, err := Extract(strings.NewReader(header))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(document.Warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %d", len(document.Warnings))
	}
	if document.Warnings[0].Line != 2 || document.Warnings[1].Line != 8 {
		t.Errorf("Unexpected warning lines %d and %d", document.Warnings[0].Line, document.Warnings[1].Line)
	}
}

func TestDemote(t *testing.T) {
	cases := map[string]string{
		"# Title":      "### Title",
		"  ## Section": "  #### Section",
		"#include":     "#include",
		"text # here":  "text # here",
	}
	for input, expected := range cases {
		if got := Demote(input); got != expected {
			t.Errorf("Demote(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestReadme(t *testing.T) {
	headers := []*Header{
		{Name: "a.hpp", Document: &Document{Text: "x\n"}},
		{Name: "b.h", Document: &Document{Text: Todo}},
	}

	expected := "## Table of Contents\n" +
		"- [a.hpp](#ahpp)\n" +
		"- [b.h](#bh)\n" +
		"\n## a.hpp\n" +
		"x\n" +
		"\n## b.h\n" +
		"\n> Todo: Add documentation\n"
	if got := Readme(headers); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestExtractLongLine(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)
	source := "static const char data[] = \"" + long + "\";\n" +
		"/** @DOC_START\n" +
		"# table\n" +
		"  " + long + "\n" +
		"@DOC_END */\n" +
		"// trailing line without newline"

	document, err := Extract(strings.NewReader(source))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	expected := "### table\n  " + long + "\n"
	if document.Text != expected {
		t.Errorf("Unexpected text of length %d", len(document.Text))
	}
}

func TestExtractLastLineWithoutNewline(t *testing.T) {
	document, err := Extract(strings.NewReader("/** @DOC_START\n# tail\n@DOC_END */\n// @DOC_SKIP"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !document.Skip {
		t.Errorf("Expected skip tag on the unterminated last line")
	}
	if document.Text != "### tail\n" {
		t.Errorf("Unexpected text %q", document.Text)
	}
}
