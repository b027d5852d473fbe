package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/soup/assay"
)

func newTestTool() (*Tool, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return &Tool{
		Output:    buf,
		Length:    8,
		StepLimit: 2048,
		Trials:    10,
		Seed:      1,
	}, buf
}

func TestAsmDisasm(t *testing.T) {
	tool, buf := newTestTool()
	if err := tool.Asm("[.>}]"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "5b2e3e7d5d000000\n" {
		t.Fatalf("got %q", got)
	}

	buf.Reset()
	if err := tool.Disasm("5b2e3e7d5d000000"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[.>}]___\n" {
		t.Fatalf("got %q", got)
	}

	if err := tool.Disasm("xyz"); err == nil {
		t.Fatal("should error")
	}
	tool.Length = 0
	if err := tool.Asm("+"); err == nil {
		t.Fatal("should error")
	}
}

func TestTrace(t *testing.T) {
	tool, buf := newTestTool()
	if err := tool.Trace("2b2b", "0000"); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, expected := range []string{
		"    0 ip=  0 op=+ h0=  0 h1=  2\n",
		"    1 ip=  1 op=+ h0=  0 h1=  2\n",
		"halt: ip out of tape after 4 steps\n",
		"a: 2d2b\n",
	} {
		if !strings.Contains(got, expected) {
			t.Fatalf("missing %q in\n%s", expected, got)
		}
	}

	if err := tool.Trace("00", "0000"); err == nil {
		t.Fatal("should error")
	}
}

func TestAssay(t *testing.T) {
	tool, buf := newTestTool()
	tool.StepLimit = 0
	// with no steps the template's own half is untouched
	if err := tool.Assay("5b2e3e7d5d000000"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "infect_as_A->B success_rate=1.000  infect_as_B->A success_rate=1.000\n" {
		t.Fatalf("got %q", got)
	}

	if err := tool.SetMatch("victim"); err != nil {
		t.Fatal(err)
	}
	if tool.Match != assay.MatchVictim {
		t.Fatal()
	}
	buf.Reset()
	if err := tool.Assay("5b2e3e7d5d000000"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "infect_as_A->B success_rate=0.000  infect_as_B->A success_rate=0.000\n" {
		t.Fatalf("got %q", got)
	}

	if err := tool.SetMatch("both"); err == nil {
		t.Fatal("should error")
	}
}
