package gfaio

import (
	"strconv"
	"strings"

	"github.com/asmgraph/gfa/datatype"
	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/location"
	"github.com/asmgraph/gfa/record"
	"github.com/asmgraph/gfa/tag"
)

// parseLine dispatches a single tab-separated line to the record factory
// for its first field (spec §2: "text lines → tokenizer → record factory
// (dispatch on first field)"). A blank line yields (nil, nil) and is
// skipped by the caller.
func parseLine(line string, pos location.Position) (record.Record, error) {
	if line == "" {
		return nil, nil
	}
	fields := strings.Split(line, "\t")
	code := fields[0]
	if code == "" {
		return nil, gfaerr.New(gfaerr.FormatError, "gfaio.parseLine", "empty record type at "+pos.String())
	}
	if code[0] == '#' {
		return &record.Comment{Text: strings.TrimPrefix(line, "#"), Position: pos}, nil
	}
	if len(code) != 1 {
		return nil, gfaerr.New(gfaerr.FormatError, "gfaio.parseLine", "malformed record type "+code+" at "+pos.String())
	}
	switch code[0] {
	case 'H':
		return parseHeader(fields, pos)
	case 'S':
		return parseSegment(fields, pos)
	case 'L':
		return parseLink(fields, pos)
	case 'C':
		return parseContainment(fields, pos)
	case 'P':
		return parsePath(fields, pos)
	case 'E':
		return parseEdge(fields, pos)
	case 'F':
		return parseFragment(fields, pos)
	case 'G':
		return parseGap(fields, pos)
	case 'O':
		return parseOGroup(fields, pos)
	case 'U':
		return parseUGroup(fields, pos)
	default:
		if code[0] >= 'A' && code[0] <= 'Z' {
			return parseCustom(fields, pos)
		}
		return nil, gfaerr.New(gfaerr.FormatError, "gfaio.parseLine", "unknown record type "+code+" at "+pos.String())
	}
}

func parseTags(fields []string, set *tag.Set) error {
	for _, f := range fields {
		t, err := tag.Parse(f)
		if err != nil {
			return err
		}
		if err := set.Add(t); err != nil {
			return err
		}
	}
	return nil
}

func requireFields(fields []string, n int, recType string, pos location.Position) error {
	if len(fields) < n {
		return gfaerr.New(gfaerr.FormatError, "gfaio.parse"+recType,
			recType+" line needs at least "+strconv.Itoa(n)+" fields at "+pos.String())
	}
	return nil
}

func parseHeader(fields []string, pos location.Position) (record.Record, error) {
	h := record.NewHeader()
	h.Position = pos
	if err := parseTags(fields[1:], h.Tags); err != nil {
		return nil, err
	}
	if vn, ok := h.Tags.Get("VN"); ok {
		if s, ok := vn.Value.(string); ok {
			h.VN = s
		}
	}
	return h, nil
}

func parseSegment(fields []string, pos location.Position) (record.Record, error) {
	if err := requireFields(fields, 3, "Segment", pos); err != nil {
		return nil, err
	}
	name := fields[1]
	// A GFA2 S line (integer length before the sequence) names its segment
	// with the GFA2 identifier grammar; a GFA1 line uses segment_name.
	nameType := datatype.SegmentName
	if len(fields) >= 4 && datatype.Validate(datatype.Integer, fields[2]) {
		nameType = datatype.IdentifierGFA2
	}
	if !datatype.Validate(nameType, name) {
		return nil, gfaerr.New(gfaerr.FormatError, "gfaio.parseSegment", "invalid segment name "+name+" at "+pos.String())
	}

	// GFA2 carries an explicit length field before the sequence; GFA1 does
	// not. Distinguish by whether the third field is itself a sequence
	// (GFA1) or an integer length with the sequence one field later
	// (GFA2).
	var seqField string
	var tagFields []string
	var explicitLN int
	var hasExplicitLN bool
	if len(fields) >= 4 && datatype.Validate(datatype.Integer, fields[2]) {
		ln, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, gfaerr.Wrap(gfaerr.FormatError, "gfaio.parseSegment", err)
		}
		explicitLN, hasExplicitLN = ln, true
		seqField = fields[3]
		tagFields = fields[4:]
	} else {
		seqField = fields[2]
		tagFields = fields[3:]
	}
	if !datatype.Validate(datatype.Sequence, seqField) {
		return nil, gfaerr.New(gfaerr.FormatError, "gfaio.parseSegment", "invalid sequence at "+pos.String())
	}

	seg := record.NewSegment(name, seqField)
	seg.Position = pos
	if err := parseTags(tagFields, seg.Tags); err != nil {
		return nil, err
	}
	if hasExplicitLN {
		if _, already := seg.Tags.Get("LN"); !already {
			seg.Tags.SetInt("LN", explicitLN)
		}
	}
	return seg, nil
}

func parseLink(fields []string, pos location.Position) (record.Record, error) {
	if err := requireFields(fields, 6, "Link", pos); err != nil {
		return nil, err
	}
	fromOrient, ok := record.ParseOrientation(fields[2])
	if !ok {
		return nil, gfaerr.New(gfaerr.FormatError, "gfaio.parseLink", "invalid orientation at "+pos.String())
	}
	toOrient, ok := record.ParseOrientation(fields[4])
	if !ok {
		return nil, gfaerr.New(gfaerr.FormatError, "gfaio.parseLink", "invalid orientation at "+pos.String())
	}
	l := record.NewLink(fields[1], fromOrient, fields[3], toOrient, fields[5])
	l.Position = pos
	if err := parseTags(fields[6:], l.Tags); err != nil {
		return nil, err
	}
	return l, nil
}

func parseContainment(fields []string, pos location.Position) (record.Record, error) {
	if err := requireFields(fields, 7, "Containment", pos); err != nil {
		return nil, err
	}
	containerOrient, ok := record.ParseOrientation(fields[2])
	if !ok {
		return nil, gfaerr.New(gfaerr.FormatError, "gfaio.parseContainment", "invalid orientation at "+pos.String())
	}
	containedOrient, ok := record.ParseOrientation(fields[4])
	if !ok {
		return nil, gfaerr.New(gfaerr.FormatError, "gfaio.parseContainment", "invalid orientation at "+pos.String())
	}
	at, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, gfaerr.Wrap(gfaerr.FormatError, "gfaio.parseContainment", err)
	}
	c := &record.Containment{
		Container: fields[1], ContainerOrient: containerOrient,
		Contained: fields[3], ContainedOrient: containedOrient,
		At: at, Overlap: fields[6],
		Position: pos, Tags: tag.NewSet(),
	}
	if err := parseTags(fields[7:], c.Tags); err != nil {
		return nil, err
	}
	return c, nil
}

func parseOrientedName(field string) (record.OrientedName, error) {
	if len(field) < 2 {
		return record.OrientedName{}, gfaerr.New(gfaerr.FormatError, "gfaio.parseOrientedName", "malformed oriented name "+field)
	}
	orient, ok := record.ParseOrientation(field[len(field)-1:])
	if !ok {
		return record.OrientedName{}, gfaerr.New(gfaerr.FormatError, "gfaio.parseOrientedName", "malformed orientation on "+field)
	}
	return record.OrientedName{Name: field[:len(field)-1], Orient: orient}, nil
}

func parsePath(fields []string, pos location.Position) (record.Record, error) {
	if err := requireFields(fields, 4, "Path", pos); err != nil {
		return nil, err
	}
	names := strings.Split(fields[2], ",")
	segs := make([]record.OrientedName, len(names))
	for i, n := range names {
		on, err := parseOrientedName(n)
		if err != nil {
			return nil, err
		}
		segs[i] = on
	}
	overlaps := strings.Split(fields[3], ",")
	p := record.NewPath(fields[1], segs, overlaps)
	p.Position = pos
	if err := parseTags(fields[4:], p.Tags); err != nil {
		return nil, err
	}
	return p, nil
}

func parseEdge(fields []string, pos location.Position) (record.Record, error) {
	if err := requireFields(fields, 9, "Edge", pos); err != nil {
		return nil, err
	}
	sid1, err := parseOrientedName(fields[2])
	if err != nil {
		return nil, err
	}
	sid2, err := parseOrientedName(fields[3])
	if err != nil {
		return nil, err
	}
	e := &record.Edge{
		ID: fields[1], Sid1: sid1, Sid2: sid2,
		Beg1: fields[4], End1: fields[5], Beg2: fields[6], End2: fields[7],
		Alignment: fields[8], Position: pos, Tags: tag.NewSet(),
	}
	if err := parseTags(fields[9:], e.Tags); err != nil {
		return nil, err
	}
	return e, nil
}

func parseFragment(fields []string, pos location.Position) (record.Record, error) {
	if err := requireFields(fields, 8, "Fragment", pos); err != nil {
		return nil, err
	}
	ext, err := parseOrientedName(fields[2])
	if err != nil {
		return nil, err
	}
	f := &record.Fragment{
		SegmentID: fields[1], ExternalID: ext,
		SBeg: fields[3], SEnd: fields[4], FBeg: fields[5], FEnd: fields[6],
		Alignment: fields[7], Position: pos, Tags: tag.NewSet(),
	}
	if err := parseTags(fields[8:], f.Tags); err != nil {
		return nil, err
	}
	return f, nil
}

func parseGap(fields []string, pos location.Position) (record.Record, error) {
	if err := requireFields(fields, 6, "Gap", pos); err != nil {
		return nil, err
	}
	sid1, err := parseOrientedName(fields[2])
	if err != nil {
		return nil, err
	}
	sid2, err := parseOrientedName(fields[3])
	if err != nil {
		return nil, err
	}
	dist, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, gfaerr.Wrap(gfaerr.FormatError, "gfaio.parseGap", err)
	}
	g := &record.Gap{
		ID: fields[1], Sid1: sid1, Sid2: sid2,
		Distance: dist, Variance: fields[5],
		Position: pos, Tags: tag.NewSet(),
	}
	if err := parseTags(fields[6:], g.Tags); err != nil {
		return nil, err
	}
	return g, nil
}

func parseOGroup(fields []string, pos location.Position) (record.Record, error) {
	if err := requireFields(fields, 3, "OGroup", pos); err != nil {
		return nil, err
	}
	var items []record.OrientedName
	if fields[2] != "*" {
		for _, f := range strings.Fields(fields[2]) {
			on, err := parseOrientedName(f)
			if err != nil {
				return nil, err
			}
			items = append(items, on)
		}
	}
	o := &record.OGroup{ID: fields[1], Items: items, Position: pos, Tags: tag.NewSet()}
	if err := parseTags(fields[3:], o.Tags); err != nil {
		return nil, err
	}
	return o, nil
}

func parseUGroup(fields []string, pos location.Position) (record.Record, error) {
	if err := requireFields(fields, 3, "UGroup", pos); err != nil {
		return nil, err
	}
	var items []string
	if fields[2] != "*" {
		items = strings.Fields(fields[2])
	}
	u := &record.UGroup{ID: fields[1], Items: items, Position: pos, Tags: tag.NewSet()}
	if err := parseTags(fields[3:], u.Tags); err != nil {
		return nil, err
	}
	return u, nil
}

func parseCustom(fields []string, pos location.Position) (record.Record, error) {
	c := &record.Custom{Code: fields[0][0], Fields: append([]string(nil), fields[1:]...), Position: pos, Tags: tag.NewSet()}
	return c, nil
}
