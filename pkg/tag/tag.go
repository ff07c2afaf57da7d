// Package tag implements GFA optional fields.
//
// An optional field has the text form NAME:TYPE:VALUE where NAME is exactly
// two characters, TYPE is a single type character, and VALUE is typed
// accordingly:
//
//	A  single printable character
//	i  signed 64-bit integer
//	f  64-bit float
//	Z  printable string
//	J  JSON text, kept verbatim
//	H  hex-encoded byte array
//	B  numeric array with a sub-type character
//
// Values round-trip: serializing a parsed field reproduces the same type
// character and a canonical value rendering (uppercase hex pairs, shortest
// float form).
package tag

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/parfait-bio/parfait/pkg/errors"
)

// Type is a GFA optional field type character.
type Type byte

// Optional field type characters.
const (
	TypeChar   Type = 'A'
	TypeInt    Type = 'i'
	TypeFloat  Type = 'f'
	TypeString Type = 'Z'
	TypeJSON   Type = 'J'
	TypeHex    Type = 'H'
	TypeArray  Type = 'B'
)

// Value is the typed payload of an optional field.
type Value interface {
	// Type returns the field's type character.
	Type() Type
	// Text returns the canonical GFA rendering of the value, without the
	// NAME:TYPE: prefix.
	Text() string
}

// Char is a single printable character ('A').
type Char byte

func (c Char) Type() Type   { return TypeChar }
func (c Char) Text() string { return string(byte(c)) }

// Int is a signed 64-bit integer ('i').
type Int int64

func (i Int) Type() Type   { return TypeInt }
func (i Int) Text() string { return strconv.FormatInt(int64(i), 10) }

// Float is a 64-bit float ('f').
type Float float64

func (f Float) Type() Type   { return TypeFloat }
func (f Float) Text() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Text is a printable string ('Z').
type Text string

func (t Text) Type() Type   { return TypeString }
func (t Text) Text() string { return string(t) }

// JSON is JSON text kept verbatim ('J').
type JSON string

func (j JSON) Type() Type   { return TypeJSON }
func (j JSON) Text() string { return string(j) }

// Hex is a decoded byte array ('H'). It serializes as uppercase hex pairs.
type Hex []byte

func (h Hex) Type() Type   { return TypeHex }
func (h Hex) Text() string { return strings.ToUpper(hex.EncodeToString(h)) }

// Array is a numeric array ('B') with a sub-type character.
// Sub is one of c, C, s, S, i, I (integer widths) or f (float). Integer
// elements live in Ints, float elements in Floats. An empty array is valid.
type Array struct {
	Sub    byte
	Ints   []int64
	Floats []float64
}

func (a Array) Type() Type { return TypeArray }

func (a Array) Text() string {
	var sb strings.Builder
	sb.WriteByte(a.Sub)
	if a.Sub == 'f' {
		for _, f := range a.Floats {
			sb.WriteByte(',')
			sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		}
		return sb.String()
	}
	for _, i := range a.Ints {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatInt(i, 10))
	}
	return sb.String()
}

// Field is a named optional field.
type Field struct {
	Name string
	Val  Value
}

// String renders the field in NAME:TYPE:VALUE form.
func (f Field) String() string {
	return fmt.Sprintf("%s:%c:%s", f.Name, byte(f.Val.Type()), f.Val.Text())
}

// arrayBits maps integer array sub-types to their parse width and signedness.
var arrayBits = map[byte]struct {
	bits     int
	unsigned bool
}{
	'c': {8, false},
	'C': {8, true},
	's': {16, false},
	'S': {16, true},
	'i': {32, false},
	'I': {32, true},
}

// Parse parses one optional field from its NAME:TYPE:VALUE text form.
func Parse(field string) (Field, error) {
	parts := strings.SplitN(field, ":", 3)
	if len(parts) != 3 {
		return Field{}, errors.New(errors.ErrCodeInvalidTag, "malformed optional field %q", field)
	}
	name, typ, raw := parts[0], parts[1], parts[2]

	if !validName(name) {
		return Field{}, errors.New(errors.ErrCodeInvalidTagName, "invalid tag name %q", name)
	}
	if len(typ) != 1 {
		return Field{}, errors.New(errors.ErrCodeInvalidTagType, "invalid tag type %q", typ)
	}

	val, err := parseValue(Type(typ[0]), raw)
	if err != nil {
		return Field{}, err
	}
	return Field{Name: name, Val: val}, nil
}

func parseValue(typ Type, raw string) (Value, error) {
	switch typ {
	case TypeChar:
		if len(raw) != 1 || raw[0] < '!' || raw[0] > '~' {
			return nil, errors.New(errors.ErrCodeInvalidChar, "invalid character value %q", raw)
		}
		return Char(raw[0]), nil

	case TypeInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInteger, "invalid integer %q", raw)
		}
		return Int(i), nil

	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidFloat, "invalid float %q", raw)
		}
		return Float(f), nil

	case TypeString:
		return Text(raw), nil

	case TypeJSON:
		return JSON(raw), nil

	case TypeHex:
		if len(raw)%2 != 0 {
			return nil, errors.New(errors.ErrCodeInvalidHex, "odd-length hex value %q", raw)
		}
		b, err := hex.DecodeString(raw)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidHex, "invalid hex value %q", raw)
		}
		return Hex(b), nil

	case TypeArray:
		return parseArray(raw)

	default:
		return nil, errors.New(errors.ErrCodeInvalidTagType, "unknown tag type %q", string(byte(typ)))
	}
}

func parseArray(raw string) (Value, error) {
	if raw == "" {
		return nil, errors.New(errors.ErrCodeInvalidArray, "array value missing sub-type")
	}
	sub := raw[0]
	rest := raw[1:]

	var elems []string
	if rest != "" {
		if rest[0] != ',' {
			return nil, errors.New(errors.ErrCodeInvalidArray, "malformed array value %q", raw)
		}
		elems = strings.Split(rest[1:], ",")
	}

	if sub == 'f' {
		arr := Array{Sub: sub}
		for _, e := range elems {
			f, err := strconv.ParseFloat(e, 64)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidArray, "invalid array element %q", e)
			}
			arr.Floats = append(arr.Floats, f)
		}
		return arr, nil
	}

	width, ok := arrayBits[sub]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidArray, "unknown array sub-type %q", string(sub))
	}
	arr := Array{Sub: sub}
	for _, e := range elems {
		var i int64
		if width.unsigned {
			u, err := strconv.ParseUint(e, 10, width.bits)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidArray, "invalid array element %q", e)
			}
			i = int64(u)
		} else {
			s, err := strconv.ParseInt(e, 10, width.bits)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidArray, "invalid array element %q", e)
			}
			i = s
		}
		arr.Ints = append(arr.Ints, i)
	}
	return arr, nil
}

// validName reports whether name is a legal two-character tag name.
func validName(name string) bool {
	if len(name) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// reservedTypes lists well-known tags and their declared types. A reserved
// tag parsed with a different type character is flagged but its value is
// still kept.
var reservedTypes = map[string]Type{
	"VN": TypeString,
	"TS": TypeInt,
	"LN": TypeInt,
	"RC": TypeInt,
	"FC": TypeInt,
	"KC": TypeInt,
	"SH": TypeHex,
	"UR": TypeString,
	"MQ": TypeInt,
	"NM": TypeInt,
	"ID": TypeString,
	"SC": TypeInt,
}

// ReservedType returns the declared type of a well-known tag name.
func ReservedType(name string) (Type, bool) {
	t, ok := reservedTypes[name]
	return t, ok
}
