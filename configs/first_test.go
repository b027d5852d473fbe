package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test2.cue", "testdata/test.cue"}, testSchema)

	str := First[string](loader, "str")
	if str != "foo" {
		t.Fatalf("got %v", str)
	}

	list := First[[]int](loader, "list")
	if len(list) != 3 {
		t.Fatalf("got %v", list)
	}

}
