// Package tag implements GFA's optional-field ("tag") engine: parsing and
// printing of <name>:<type>:<value> triplets, the predefined-tag table, and
// an ordered, duplicate-checked set of tags per record.
package tag

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/asmgraph/gfa/datatype"
	"github.com/asmgraph/gfa/gfaerr"
)

// Type is one of the seven wire-level GFA tag type characters.
type Type byte

const (
	TypeInt          Type = 'i'
	TypeFloat        Type = 'f'
	TypeString       Type = 'Z'
	TypeByteArray    Type = 'H'
	TypeChar         Type = 'A'
	TypeNumericArray Type = 'B'
	TypeJSON         Type = 'J'
)

// datatypeFor maps a wire-level Type to the datatype package's tag.
func datatypeFor(t Type) datatype.Tag {
	switch t {
	case TypeInt:
		return datatype.Integer
	case TypeFloat:
		return datatype.Float
	case TypeString:
		return datatype.String
	case TypeByteArray:
		return datatype.ByteArray
	case TypeChar:
		return datatype.Char
	case TypeNumericArray:
		return datatype.NumericArray
	case TypeJSON:
		return datatype.JSON
	default:
		return datatype.Generic
	}
}

// Predefined maps a predefined tag name to its fixed wire type, per
// spec §4.1's non-exhaustive table. cn is user-defined by convention but
// used internally by copy-number operations, so it is pinned here too.
var Predefined = map[string]Type{
	"LN": TypeInt,
	"RC": TypeInt,
	"KC": TypeInt,
	"FC": TypeInt,
	"MQ": TypeInt,
	"NM": TypeInt,
	"SH": TypeByteArray,
	"ID": TypeString,
	"UR": TypeString,
	"VN": TypeString,
	"cn": TypeInt,
	"or": TypeString,
}

var reUserTagName = regexp.MustCompile(`^[a-z][a-z0-9]$`)
var rePredefinedTagName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]$`)

// ValidateName reports whether name is a legal tag name: either a
// predefined two-character name, or a two-character lowercase
// user-defined name (spec §3 invariant).
func ValidateName(name string) bool {
	if _, ok := Predefined[name]; ok {
		return true
	}
	if !rePredefinedTagName.MatchString(name) {
		return false
	}
	return reUserTagName.MatchString(name)
}

// Tag is one decoded optional field.
type Tag struct {
	Name  string
	Type  Type
	Raw   string
	Value any
}

// Parse decodes a "<name>:<type>:<value>" triplet. Fails with FormatError
// if the triplet shape is wrong, TypeError if name is predefined with a
// different type than given.
func Parse(field string) (Tag, error) {
	parts := strings.SplitN(field, ":", 3)
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 1 {
		return Tag{}, gfaerr.New(gfaerr.FormatError, "tag.Parse", fmt.Sprintf("malformed tag field %q", field))
	}
	name, typeChar, raw := parts[0], Type(parts[1][0]), parts[2]

	if predefinedType, ok := Predefined[name]; ok && predefinedType != typeChar {
		return Tag{}, gfaerr.New(gfaerr.TypeError, "tag.Parse",
			fmt.Sprintf("tag %s is predefined as type %q, got %q", name, string(predefinedType), string(typeChar)))
	}
	if !ValidateName(name) {
		return Tag{}, gfaerr.New(gfaerr.FormatError, "tag.Parse", fmt.Sprintf("invalid tag name %q", name))
	}

	dt := datatypeFor(typeChar)
	value, err := datatype.Decode(dt, raw)
	if err != nil {
		return Tag{}, err
	}
	return Tag{Name: name, Type: typeChar, Raw: raw, Value: value}, nil
}

// New builds a Tag from a native value, auto-inferring its wire type from
// the value's printed surface form when the name isn't predefined.
func New(name string, value any) (Tag, error) {
	if !ValidateName(name) {
		return Tag{}, gfaerr.New(gfaerr.FormatError, "tag.New", fmt.Sprintf("invalid tag name %q", name))
	}
	var typeChar Type
	if predefinedType, ok := Predefined[name]; ok {
		typeChar = predefinedType
	} else {
		typeChar = wireTypeFor(datatype.AutoType(fmt.Sprintf("%v", value)))
	}
	raw, err := datatype.Encode(datatypeFor(typeChar), value)
	if err != nil {
		return Tag{}, err
	}
	return Tag{Name: name, Type: typeChar, Raw: raw, Value: value}, nil
}

func wireTypeFor(dt datatype.Tag) Type {
	switch dt {
	case datatype.Integer:
		return TypeInt
	case datatype.Float:
		return TypeFloat
	case datatype.NumericArray:
		return TypeNumericArray
	case datatype.ByteArray:
		return TypeByteArray
	case datatype.JSON:
		return TypeJSON
	default:
		return TypeString
	}
}

// String renders the tag in canonical "<name>:<type>:<value>" form.
func (t Tag) String() string {
	raw := t.Raw
	if raw == "" {
		if s, err := datatype.Encode(datatypeFor(t.Type), t.Value); err == nil {
			raw = s
		}
	}
	return fmt.Sprintf("%s:%c:%s", t.Name, t.Type, raw)
}
