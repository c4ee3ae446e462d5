package marchtest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/marchatpg/marchatpg/crossstate"
)

// LoadCatalogue reads a March-test catalogue JSON file (an array of
// {March_test, Pattern} objects) from path.
func LoadCatalogue(path string) ([]RawMarchTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("marchtest: read catalogue %s: %w", path, err)
	}

	var raw []RawMarchTest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("marchtest: parse catalogue %s: %w", path, err)
	}
	return raw, nil
}

// Parse turns a pattern string of the form
// "addr(op,op,...);addr(op,...)" into a MarchTest. addr is one of
// a/A (Up), d/D (Down), b/B (Any); op tokens are R0/R1/W0/W1/C(x)(y)(z).
//
// Complexity: O(n) in len(pattern).
func Parse(name, pattern string) (MarchTest, error) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return MarchTest{}, ErrEmptyPattern
	}

	rawElems := strings.Split(trimmed, ";")
	mt := MarchTest{Name: name, Elements: make([]MarchElement, 0, len(rawElems))}

	for _, rawElem := range rawElems {
		elemStr := strings.TrimSpace(rawElem)
		if elemStr == "" {
			continue
		}

		elem, err := parseElement(elemStr)
		if err != nil {
			return MarchTest{}, err
		}
		mt.Elements = append(mt.Elements, elem)
	}

	if len(mt.Elements) == 0 {
		return MarchTest{}, ErrEmptyPattern
	}
	return mt, nil
}

// parseElement parses one "addr(op,op,...)" segment.
func parseElement(s string) (MarchElement, error) {
	if s[0] == '(' {
		return MarchElement{}, fmt.Errorf("%w: %q", ErrMissingAddrChar, s)
	}
	order, err := parseAddrOrder(s[0])
	if err != nil {
		return MarchElement{}, err
	}

	rest := strings.TrimSpace(s[1:])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return MarchElement{}, fmt.Errorf("%w: %q", ErrUnbalancedParen, s)
	}
	body := rest[1 : len(rest)-1]

	elem := MarchElement{Order: order}
	for _, tok := range splitOpTokens(body) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		op, err := parseOpToken(tok)
		if err != nil {
			return MarchElement{}, err
		}
		elem.Ops = append(elem.Ops, op)
	}
	return elem, nil
}

// splitOpTokens splits an element body on commas that are not inside a
// Compute token's parentheses (e.g. "C(0)(1)(0)" contains no top-level
// commas, but "R0,C(0)(1)(0),W1" must split only at the two outer commas).
func splitOpTokens(body string) []string {
	var toks []string
	depth := 0
	start := 0
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				toks = append(toks, body[start:i])
				start = i + 1
			}
		}
	}
	toks = append(toks, body[start:])
	return toks
}

func parseAddrOrder(c byte) (AddrOrder, error) {
	switch c {
	case 'a', 'A':
		return Up, nil
	case 'd', 'D':
		return Down, nil
	case 'b', 'B':
		return Any, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadAddrChar, string(c))
	}
}

// ParseOpToken parses a single R0/R1/W0/W1/C(x)(y)(z) op token. It is
// exported so other packages describing op sequences outside a full
// pattern string (faultmodel's Sa/Sv op lists, synth's candidate alphabet)
// can reuse the same grammar.
func ParseOpToken(tok string) (Op, error) {
	return parseOpToken(tok)
}

// parseOpToken parses a single R0/R1/W0/W1/C(x)(y)(z) token.
func parseOpToken(tok string) (Op, error) {
	if len(tok) < 2 {
		return Op{}, fmt.Errorf("%w: %q", ErrBadOpToken, tok)
	}

	kindCh := tok[0]
	switch kindCh {
	case 'R', 'r':
		v, err := parseBit(tok[1])
		if err != nil {
			return Op{}, fmt.Errorf("%w: %q", ErrBadOpToken, tok)
		}
		return ReadOp(v), nil
	case 'W', 'w':
		v, err := parseBit(tok[1])
		if err != nil {
			return Op{}, fmt.Errorf("%w: %q", ErrBadOpToken, tok)
		}
		return WriteOp(v), nil
	case 'C', 'c':
		return parseComputeToken(tok)
	default:
		return Op{}, fmt.Errorf("%w: %q", ErrBadOpToken, tok)
	}
}

// parseComputeToken parses "C(x)(y)(z)" with x,y,z in {0,1}.
func parseComputeToken(tok string) (Op, error) {
	rest := tok[1:]
	var bits [3]crossstate.Val
	for i := 0; i < 3; i++ {
		if len(rest) < 3 || rest[0] != '(' || rest[2] != ')' {
			return Op{}, fmt.Errorf("%w: %q", ErrBadOpToken, tok)
		}
		v, err := parseBit(rest[1])
		if err != nil {
			return Op{}, fmt.Errorf("%w: %q", ErrBadOpToken, tok)
		}
		bits[i] = v
		rest = rest[3:]
	}
	if rest != "" {
		return Op{}, fmt.Errorf("%w: %q", ErrBadOpToken, tok)
	}
	return ComputeAndOp(bits[0], bits[1], bits[2]), nil
}

func parseBit(c byte) (crossstate.Val, error) {
	switch c {
	case '0':
		return crossstate.Zero, nil
	case '1':
		return crossstate.One, nil
	default:
		return 0, fmt.Errorf("bit must be 0 or 1, got %q", string(c))
	}
}

// String renders mt back into pattern grammar, inverse of Parse (modulo
// the textual case of the address-order letter, always lower-case).
func (mt MarchTest) String() string {
	var sb strings.Builder
	for i, elem := range mt.Elements {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(elem.Order.String())
		sb.WriteByte('(')
		for j, op := range elem.Ops {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(opToken(op))
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// OpToken renders a single Op back into its grammar token
// (R0/R1/W0/W1/C(x)(y)(z)), the inverse of ParseOpToken. Exported for
// callers that render individual ops outside a full MarchTest, such as
// report writers walking a flattened op table.
func OpToken(op Op) string { return opToken(op) }

func opToken(op Op) string {
	switch op.Kind {
	case Write:
		return "W" + op.Val.String()
	case Read:
		return "R" + op.Val.String()
	default:
		return fmt.Sprintf("C(%s)(%s)(%s)", op.T, op.M, op.B)
	}
}
