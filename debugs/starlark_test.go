package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

type testGenome []byte

func TestToStarlarkValue(t *testing.T) {
	type testStruct struct {
		Exported   float64
		unexported int
	}

	ptrStruct := &testStruct{
		Exported:   0.5,
		unexported: 42,
	}

	structDict := func() starlark.Value {
		d := starlark.NewDict(1)
		d.SetKey(starlark.String("Exported"), starlark.Float(0.5))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"starlark value", starlark.MakeInt(3), starlark.MakeInt(3)},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"named bytes", testGenome{'[', ']'}, starlark.Bytes("[]")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int8", int8(-3), starlark.MakeInt(-3)},
		{"uint8", uint8(42), starlark.MakeInt(42)},
		{"uint64", uint64(1 << 40), starlark.MakeUint64(1 << 40)},
		{"float64", 3.25, starlark.Float(3.25)},
		{"array", [2]int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"map", map[string]int{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"struct", testStruct{Exported: 0.5, unexported: 42}, structDict()},
		{"pointer to struct", ptrStruct, structDict()},
		{"pointer to pointer to struct", &ptrStruct, structDict()},
		{"nil pointer", (*testStruct)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func(s string) string {
			return s + s
		})
		if _, ok := v.(starlark.Callable); !ok {
			t.Fatalf("got %T", v)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
