// Package datatype implements the GFA field-datatype registry: a closed
// set of named datatypes, each with a validator, a string decoder, and a
// native-value encoder.
package datatype

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/asmgraph/gfa/gfaerr"
)

// Tag names one of the closed set of field datatypes.
type Tag string

const (
	SegmentName            Tag = "segment_name"
	Sequence                Tag = "sequence"
	Integer                 Tag = "integer"
	Float                   Tag = "float"
	String                  Tag = "string"
	Orientation             Tag = "orientation"
	CIGAR                   Tag = "cigar"
	Alignment               Tag = "alignment"
	AlignmentList           Tag = "alignment_list"
	ByteArray               Tag = "byte_array"
	NumericArray            Tag = "numeric_array"
	JSON                    Tag = "JSON"
	Position                Tag = "position"
	IdentifierGFA2          Tag = "identifier_gfa2"
	IdentifierListGFA2      Tag = "identifier_list_gfa2"
	OptionalIdentifierGFA2  Tag = "optional_identifier_gfa2"
	Comment                 Tag = "comment"
	Generic                 Tag = "generic"
	Char                    Tag = "char"
)

// regexes backing the structural validators. GFA's field grammars are all
// regular languages (spec §4.1), so a compiled regexp is sufficient for
// every validator except numeric_array and byte_array, which need a
// structural check (prefix character, parity) beyond what's convenient to
// express as one regex.
var (
	reSegmentNameV1 = regexp.MustCompile(`^[!-)+-<>-~][!-~]*$`)
	reSegmentNameV2 = regexp.MustCompile(`^[!-~]+$`)
	reSequence      = regexp.MustCompile(`^(\*|[A-Za-z=.]+)$`)
	reInteger       = regexp.MustCompile(`^[-+]?[0-9]+$`)
	reFloat         = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)
	reOrientation   = regexp.MustCompile(`^[+-]$`)
	reCIGAROp       = regexp.MustCompile(`^([0-9]+[MIDNSHPX=])+$`)
	reTrace         = regexp.MustCompile(`^[0-9]+(,[0-9]+)*$`)
	rePosition      = regexp.MustCompile(`^[0-9]+\$?$`)
	reIdentifierV2  = regexp.MustCompile(`^(\*|[!-~]+)$`)
	reChar          = regexp.MustCompile(`^[!-~]$`)
)

// Validate reports whether raw is a syntactically valid surface form for
// the datatype t, without decoding it.
func Validate(t Tag, raw string) bool {
	switch t {
	case SegmentName:
		return reSegmentNameV1.MatchString(raw)
	case Sequence:
		return reSequence.MatchString(raw)
	case Integer:
		return reInteger.MatchString(raw)
	case Float:
		return reFloat.MatchString(raw) || reInteger.MatchString(raw)
	case String, Comment, Generic:
		return !strings.Contains(raw, "\t")
	case Orientation:
		return reOrientation.MatchString(raw)
	case CIGAR:
		return raw == "*" || reCIGAROp.MatchString(raw)
	case Alignment:
		return raw == "*" || reCIGAROp.MatchString(raw) || reTrace.MatchString(raw)
	case AlignmentList:
		if raw == "*" {
			return true
		}
		for _, part := range strings.Split(raw, ";") {
			if !Validate(Alignment, part) {
				return false
			}
		}
		return true
	case ByteArray:
		return validByteArray(raw)
	case NumericArray:
		return validNumericArray(raw)
	case JSON:
		return json.Valid([]byte(jsonc.ToJSON([]byte(raw))))
	case Position:
		return rePosition.MatchString(raw)
	case IdentifierGFA2, OptionalIdentifierGFA2:
		return reIdentifierV2.MatchString(raw)
	case IdentifierListGFA2:
		if raw == "*" {
			return true
		}
		for _, part := range strings.Fields(raw) {
			if !reIdentifierV2.MatchString(strings.TrimRight(part, "+-")) {
				return false
			}
		}
		return true
	case Char:
		return reChar.MatchString(raw)
	default:
		return false
	}
}

func validByteArray(raw string) bool {
	if len(raw)%2 != 0 {
		return false
	}
	for _, r := range raw {
		if !strings.ContainsRune("0123456789ABCDEFabcdef", r) {
			return false
		}
	}
	return true
}

func validNumericArray(raw string) bool {
	parts := strings.Split(raw, ",")
	if len(parts) < 1 {
		return false
	}
	if len(parts[0]) != 1 || !strings.ContainsRune("cCsSiIf", rune(parts[0][0])) {
		return false
	}
	numRe := reInteger
	if parts[0] == "f" {
		numRe = reFloat
	}
	for _, n := range parts[1:] {
		if !numRe.MatchString(n) {
			return false
		}
	}
	return true
}

// Decode converts raw into a native Go value for datatype t, failing with
// a *gfaerr.Error of kind FormatError if raw doesn't validate.
func Decode(t Tag, raw string) (any, error) {
	if !Validate(t, raw) {
		return nil, gfaerr.New(gfaerr.FormatError, string(t), fmt.Sprintf("invalid %s: %q", t, raw))
	}
	switch t {
	case Integer:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, gfaerr.Wrap(gfaerr.FormatError, string(t), err)
		}
		return n, nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, gfaerr.Wrap(gfaerr.FormatError, string(t), err)
		}
		return f, nil
	case Orientation:
		return raw == "+", nil
	case NumericArray:
		return decodeNumericArray(raw)
	case ByteArray:
		return raw, nil
	case JSON:
		var v any
		if err := json.Unmarshal(jsonc.ToJSON([]byte(raw)), &v); err != nil {
			return nil, gfaerr.Wrap(gfaerr.FormatError, string(t), err)
		}
		return v, nil
	case Char:
		return rune(raw[0]), nil
	default:
		return raw, nil
	}
}

func decodeNumericArray(raw string) (any, error) {
	parts := strings.Split(raw, ",")
	kind := parts[0]
	nums := parts[1:]
	if kind == "f" {
		out := make([]float64, len(nums))
		for i, n := range nums {
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return nil, gfaerr.Wrap(gfaerr.FormatError, string(NumericArray), err)
			}
			out[i] = f
		}
		return out, nil
	}
	out := make([]int64, len(nums))
	for i, n := range nums {
		v, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return nil, gfaerr.Wrap(gfaerr.FormatError, string(NumericArray), err)
		}
		out[i] = v
	}
	return out, nil
}

// Encode renders a native Go value back to its canonical string form for
// datatype t.
func Encode(t Tag, value any) (string, error) {
	switch t {
	case Integer:
		switch v := value.(type) {
		case int:
			return strconv.Itoa(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		}
	case Float:
		if f, ok := value.(float64); ok {
			return strconv.FormatFloat(f, 'g', -1, 64), nil
		}
	case Orientation:
		if b, ok := value.(bool); ok {
			if b {
				return "+", nil
			}
			return "-", nil
		}
	case JSON:
		data, err := json.Marshal(value)
		if err != nil {
			return "", gfaerr.Wrap(gfaerr.FormatError, string(t), err)
		}
		return string(data), nil
	case NumericArray:
		return encodeNumericArray(value)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return fmt.Sprintf("%v", value), nil
}

func encodeNumericArray(value any) (string, error) {
	switch v := value.(type) {
	case []float64:
		parts := make([]string, len(v)+1)
		parts[0] = "f"
		for i, f := range v {
			parts[i+1] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, ","), nil
	case []int64:
		parts := make([]string, len(v)+1)
		parts[0] = "i"
		for i, n := range v {
			parts[i+1] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", gfaerr.New(gfaerr.TypeError, string(NumericArray), fmt.Sprintf("unsupported numeric_array value %T", value))
	}
}

// AutoType infers the narrowest datatype matching raw's surface form, for
// user-defined tags whose type wasn't given explicitly: integer before
// float, numeric-array before generic string, byte-array for hex-even
// strings, JSON for bracketed objects, else string.
func AutoType(raw string) Tag {
	switch {
	case reInteger.MatchString(raw):
		return Integer
	case reFloat.MatchString(raw):
		return Float
	case validNumericArray(raw):
		return NumericArray
	case len(raw) > 0 && len(raw)%2 == 0 && validByteArray(raw):
		return ByteArray
	case strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "["):
		return JSON
	default:
		return String
	}
}
