package vars

import (
	"fmt"
	"testing"
)

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[string](); v != "" {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonEmpty(nil, []int{}, []int{1}); fmt.Sprint(v) != "[1]" {
		t.Fatalf("got %v", v)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Y":     true,
		"1":     true,
		"false": false,
		"n":     false,
		"foo":   false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%s: got %v", str, got)
		}
	}
}

func TestStrToInts(t *testing.T) {
	ints, err := StrToInts("9, 8,7,-1")
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprint(ints); str != "[9 8 7 -1]" {
		t.Fatalf("got %s", str)
	}
	ints, err = StrToInts("")
	if err != nil || ints != nil {
		t.Fatalf("got %v %v", ints, err)
	}
	if _, err := StrToInts("1,x"); err == nil {
		t.Fatal("should error")
	}
}
