package intcode

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input    string
		expected []int64
	}{
		{"1,0,0,0,99", []int64{1, 0, 0, 0, 99}},
		{"1,0,0,0,99\n", []int64{1, 0, 0, 0, 99}},
		{"1, -2 ,3,\n", []int64{1, -2, 3}},
		{" 104,1125899906842624,99 ", []int64{104, 1125899906842624, 99}},
		{"", nil},
		{"\n", nil},
	}
	for _, tc := range testCases {
		got, err := Parse(strings.NewReader(tc.input))
		if err != nil {
			t.Fatalf("%q: %v", tc.input, err)
		}
		if !slices.Equal(got, tc.expected) {
			t.Fatalf("%q: expected %v, got %v", tc.input, tc.expected, got)
		}
	}
}

func TestParseError(t *testing.T) {
	for _, input := range []string{
		"1,,2",
		"1,a,2",
		"1.5",
		"99999999999999999999",
	} {
		_, err := Parse(strings.NewReader(input))
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("%q: got %v", input, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.txt")
	if err := os.WriteFile(path, []byte("3,0,4,0,99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Memory()) != 10 {
		t.Fatalf("got %v", len(m.Memory()))
	}
	output, err := m.RunToEnd([]int64{42})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(output, []int64{42}) {
		t.Fatalf("got %v", output)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing"), 0); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}
