package tag

import (
	"testing"

	"github.com/parfait-bio/parfait/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		wantName string
		wantText string
	}{
		{"char", "XX:A:c", "XX", "c"},
		{"int", "LN:i:1024", "LN", "1024"},
		{"negative int", "NM:i:-3", "NM", "-3"},
		{"float", "XF:f:3.14", "XF", "3.14"},
		{"float shortest form", "XF:f:0.50", "XF", "0.5"},
		{"string", "VN:Z:1.0", "VN", "1.0"},
		{"string with spaces", "CM:Z:assembled with care", "CM", "assembled with care"},
		{"json verbatim", "XJ:J:{\"k\": 1}", "XJ", "{\"k\": 1}"},
		{"hex uppercased", "SH:H:deadbeef", "SH", "DEADBEEF"},
		{"int array", "XB:B:c,3,-2,5", "XB", "c,3,-2,5"},
		{"unsigned array", "XB:B:C,0,255", "XB", "C,0,255"},
		{"float array", "XB:B:f,1.5,-0.25", "XB", "f,1.5,-0.25"},
		{"empty array", "XB:B:I", "XB", "I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.field)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.field, err)
			}
			if f.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", f.Name, tt.wantName)
			}
			if got := f.Val.Text(); got != tt.wantText {
				t.Errorf("Text() = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		code  errors.Code
	}{
		{"missing colon", "VN", errors.ErrCodeInvalidTag},
		{"one colon", "VN:Z", errors.ErrCodeInvalidTag},
		{"short name", "V:Z:1.0", errors.ErrCodeInvalidTagName},
		{"long name", "VNX:Z:1.0", errors.ErrCodeInvalidTagName},
		{"bad name char", "V!:Z:1.0", errors.ErrCodeInvalidTagName},
		{"long type", "VN:ZZ:1.0", errors.ErrCodeInvalidTagType},
		{"unknown type", "VN:Q:1.0", errors.ErrCodeInvalidTagType},
		{"bad char", "XX:A:ab", errors.ErrCodeInvalidChar},
		{"bad int", "LN:i:12x", errors.ErrCodeInvalidInteger},
		{"int overflow", "LN:i:99999999999999999999", errors.ErrCodeInvalidInteger},
		{"bad float", "XF:f:abc", errors.ErrCodeInvalidFloat},
		{"odd hex", "SH:H:abc", errors.ErrCodeInvalidHex},
		{"non-hex", "SH:H:zzzz", errors.ErrCodeInvalidHex},
		{"array no sub-type", "XB:B:", errors.ErrCodeInvalidArray},
		{"array unknown sub-type", "XB:B:q,1", errors.ErrCodeInvalidArray},
		{"array bad element", "XB:B:c,abc", errors.ErrCodeInvalidArray},
		{"array element out of range", "XB:B:c,200", errors.ErrCodeInvalidArray},
		{"array unsigned negative", "XB:B:C,-1", errors.ErrCodeInvalidArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.field)
			if err == nil {
				t.Fatalf("Parse(%q) = nil error, want %v", tt.field, tt.code)
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestFieldString(t *testing.T) {
	tests := []struct {
		field    string
		expected string
	}{
		{"VN:Z:1.0", "VN:Z:1.0"},
		{"LN:i:42", "LN:i:42"},
		{"SH:H:cafe", "SH:H:CAFE"},
		{"XB:B:s,100,-100", "XB:B:s,100,-100"},
	}

	for _, tt := range tests {
		f, err := Parse(tt.field)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.field, err)
		}
		if got := f.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestReservedType(t *testing.T) {
	if typ, ok := ReservedType("VN"); !ok || typ != TypeString {
		t.Errorf("ReservedType(VN) = %v, %v, want %v, true", typ, ok, TypeString)
	}
	if typ, ok := ReservedType("LN"); !ok || typ != TypeInt {
		t.Errorf("ReservedType(LN) = %v, %v, want %v, true", typ, ok, TypeInt)
	}
	if _, ok := ReservedType("XX"); ok {
		t.Error("ReservedType(XX) = true, want false")
	}
}

func TestMapOrder(t *testing.T) {
	var m Map
	m.Set("VN", Text("1.0"))
	m.Set("LN", Int(12))
	m.Set("SH", Hex{0xca, 0xfe})

	want := "VN:Z:1.0\tLN:i:12\tSH:H:CAFE"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// Replacing keeps position.
	m.Set("VN", Text("2.0"))
	want = "VN:Z:2.0\tLN:i:12\tSH:H:CAFE"
	if got := m.String(); got != want {
		t.Errorf("String() after replace = %q, want %q", got, want)
	}
}

func TestMapAddDuplicate(t *testing.T) {
	var m Map
	if err := m.Add("RC", Int(5)); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	err := m.Add("RC", Int(9))
	if !errors.Is(err, errors.ErrCodeDuplicateTag) {
		t.Fatalf("Add() duplicate error = %v, want %v", err, errors.ErrCodeDuplicateTag)
	}

	// First value wins.
	v, ok := m.Get("RC")
	if !ok {
		t.Fatal("Get(RC) = false, want true")
	}
	if v.(Int) != 5 {
		t.Errorf("Get(RC) = %v, want 5", v)
	}
}

func TestMapDelete(t *testing.T) {
	var m Map
	m.Set("AA", Int(1))
	m.Set("BB", Int(2))
	m.Set("CC", Int(3))

	if !m.Delete("BB") {
		t.Fatal("Delete(BB) = false, want true")
	}
	if m.Delete("BB") {
		t.Error("second Delete(BB) = true, want false")
	}

	want := "AA:i:1\tCC:i:3"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// Index still resolves after compaction.
	if v, ok := m.Get("CC"); !ok || v.(Int) != 3 {
		t.Errorf("Get(CC) = %v, %v, want 3, true", v, ok)
	}
}

func TestMapClone(t *testing.T) {
	var m Map
	m.Set("AA", Int(1))
	m.Set("BB", Text("x"))

	c := m.Clone()
	c.Set("AA", Int(9))

	if v, _ := m.Get("AA"); v.(Int) != 1 {
		t.Errorf("original Get(AA) = %v, want 1", v)
	}
	if v, _ := c.Get("AA"); v.(Int) != 9 {
		t.Errorf("clone Get(AA) = %v, want 9", v)
	}
}
