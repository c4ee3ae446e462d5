package faultmodel

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/marchatpg/marchatpg/crossstate"
	"github.com/marchatpg/marchatpg/marchtest"
)

// LoadCatalogue reads a fault-catalogue JSON file (an array of
// {fault_id, category, cell_scope, fault_primitives} objects) and
// normalises every entry into a Fault.
//
// A fault whose category, cell scope or any primitive fails to parse
// aborts the load: LoadCatalogue returns an error naming that fault and no
// faults at all.
func LoadCatalogue(path string) ([]Fault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("faultmodel: read catalogue %s: %w", path, err)
	}

	var raw []RawFault
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("faultmodel: parse catalogue %s: %w", path, err)
	}

	faults := make([]Fault, 0, len(raw))
	for _, rf := range raw {
		f, err := ParseFault(rf)
		if err != nil {
			return nil, fmt.Errorf("faultmodel: fault %q: %w", rf.FaultID, err)
		}
		faults = append(faults, f)
	}
	return faults, nil
}

// ParseFault normalises a RawFault into a Fault, parsing every primitive
// string.
func ParseFault(raw RawFault) (Fault, error) {
	category, err := parseCategory(raw.Category)
	if err != nil {
		return Fault{}, err
	}
	scope, err := parseCellScope(raw.CellScope)
	if err != nil {
		return Fault{}, err
	}

	prims := make([]FPExpr, 0, len(raw.FaultPrimitives))
	for _, p := range raw.FaultPrimitives {
		fp, err := ParsePrimitive(p)
		if err != nil {
			return Fault{}, fmt.Errorf("primitive %q: %w", p, err)
		}
		prims = append(prims, fp)
	}

	return Fault{
		ID:         raw.FaultID,
		Category:   category,
		CellScope:  scope,
		Primitives: prims,
	}, nil
}

func parseCategory(s string) (Category, error) {
	switch s {
	case "either_read_or_compute":
		return EitherReadOrCompute, nil
	case "must_read":
		return MustRead, nil
	case "must_compute":
		return MustCompute, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadCategory, s)
	}
}

func parseCellScope(s string) (CellScope, error) {
	switch s {
	case "single cell":
		return SingleCell, nil
	case "two cell (row-agnostic)":
		return TwoCellRowAgnostic, nil
	case "two cell same row":
		return TwoCellSameRow, nil
	case "two cell cross row":
		return TwoCellCrossRow, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadCellScope, s)
	}
}

// ParsePrimitive parses one `<Sa ; Sv / F / R>` fault primitive string.
//
// Sa and Sv are each either "-" (wholly unspecified) or an initial D bit
// (0/1/-) optionally followed by comma-separated op tokens
// (R0/R1/W0/W1/C(x)(y)(z)); F and R are single bit tokens (0/1/-).
func ParsePrimitive(raw string) (FPExpr, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < 2 || trimmed[0] != '<' || trimmed[len(trimmed)-1] != '>' {
		return FPExpr{}, fmt.Errorf("%w: missing angle brackets", ErrBadPrimitive)
	}
	body := trimmed[1 : len(trimmed)-1]

	slashParts := strings.Split(body, "/")
	if len(slashParts) != 3 {
		return FPExpr{}, fmt.Errorf("%w: expected exactly two '/' separators", ErrBadPrimitive)
	}

	semiParts := strings.SplitN(slashParts[0], ";", 2)
	if len(semiParts) != 2 {
		return FPExpr{}, fmt.Errorf("%w: expected a ';' separating Sa and Sv", ErrBadPrimitive)
	}

	aggressor, err := parseSide(semiParts[0])
	if err != nil {
		return FPExpr{}, err
	}
	victim, err := parseSide(semiParts[1])
	if err != nil {
		return FPExpr{}, err
	}

	fd, err := parseBitOrDash(strings.TrimSpace(slashParts[1]))
	if err != nil {
		return FPExpr{}, err
	}
	rd, err := parseBitOrDash(strings.TrimSpace(slashParts[2]))
	if err != nil {
		return FPExpr{}, err
	}

	return FPExpr{Raw: raw, Aggressor: aggressor, Victim: victim, FD: fd, RD: rd}, nil
}

// parseSide parses one Sa/Sv segment: "-", or an init bit followed by
// zero or more comma-separated op tokens.
func parseSide(seg string) (SideSpec, error) {
	seg = strings.TrimSpace(seg)
	if seg == "-" || seg == "" {
		return SideSpec{Init: crossstate.X}, nil
	}

	tokens := strings.Split(seg, ",")
	initTok := strings.TrimSpace(tokens[0])
	init, err := parseBitOrDash(initTok)
	if err != nil {
		return SideSpec{}, err
	}

	side := SideSpec{Init: init}
	for _, tok := range tokens[1:] {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		op, err := parseSideOpToken(tok)
		if err != nil {
			return SideSpec{}, err
		}
		side.Ops = append(side.Ops, op)
	}
	return side, nil
}

func parseSideOpToken(tok string) (marchtest.Op, error) {
	op, err := marchtest.ParseOpToken(tok)
	if err != nil {
		return marchtest.Op{}, fmt.Errorf("%w: %v", ErrBadPrimitive, err)
	}
	return op, nil
}

func parseBitOrDash(s string) (crossstate.Val, error) {
	switch s {
	case "-", "":
		return crossstate.X, nil
	case "0":
		return crossstate.Zero, nil
	case "1":
		return crossstate.One, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadBit, s)
	}
}
