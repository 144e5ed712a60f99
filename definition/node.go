package definition

import (
	"fmt"
	"strconv"

	"go.dw1.io/rex/internal/cast"
	"go.dw1.io/rex/pattern"
)

// Ops understood by a Node.
const (
	OpSeq          = "seq"          // parts (or seq) concatenated
	OpRaw          = "raw"          // text used verbatim
	OpLiteral      = "literal"      // text escaped
	OpDigit        = "digit"        // \d
	OpAlphanumeric = "alphanumeric" // \w
	OpAlphabetic   = "alphabetic"   // ([a-zA-Z])
	OpStart        = "start"        // ^
	OpEnd          = "end"          // $
	OpAny          = "any"          // .
	OpAnyOf        = "any_of"       // (?:a|b)
	OpOneOf        = "one_of"       // (a|b)
	OpRef          = "ref"          // another entry, named by text
)

// Node describes one pattern fragment and the modifiers applied to it.
//
// A Node with no Op and a non-empty Seq is a sequence. Modifiers apply in the
// order Times, OneOrMore, Group.
type Node struct {
	Op        string `json:"op,omitempty" yaml:"op,omitempty"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Seq       []Node `json:"seq,omitempty" yaml:"seq,omitempty"`
	Parts     []Node `json:"parts,omitempty" yaml:"parts,omitempty"`
	Times     any    `json:"times,omitempty" yaml:"times,omitempty"`
	OneOrMore bool   `json:"one_or_more,omitempty" yaml:"one_or_more,omitempty"`
	Group     string `json:"group,omitempty" yaml:"group,omitempty"`
}

// Built is an Entry turned into a Pattern.
type Built struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Pattern     pattern.Pattern `json:"pattern"`
}

// Build turns every entry of d into a Pattern, in document order.
func (d *Document) Build() ([]Built, error) {
	b := newBuilder(d)

	out := make([]Built, 0, len(d.Patterns))
	for _, e := range d.Patterns {
		p, err := b.entry(e.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, Built{Name: e.Name, Description: e.Description, Pattern: p})
	}

	return out, nil
}

// Lookup builds the entry called name.
func (d *Document) Lookup(name string) (pattern.Pattern, error) {
	return newBuilder(d).entry(name)
}

type builder struct {
	doc      *Document
	done     map[string]pattern.Pattern
	visiting map[string]bool
}

func newBuilder(doc *Document) *builder {
	return &builder{
		doc:      doc,
		done:     make(map[string]pattern.Pattern),
		visiting: make(map[string]bool),
	}
}

func (b *builder) entry(name string) (pattern.Pattern, error) {
	if p, ok := b.done[name]; ok {
		return p, nil
	}

	e, ok := b.doc.entry(name)
	if !ok {
		return pattern.Pattern{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if b.visiting[name] {
		return pattern.Pattern{}, fmt.Errorf("%w: %q", ErrCycle, name)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	p, err := b.node(name, e.Pattern)
	if err != nil {
		return pattern.Pattern{}, err
	}

	b.done[name] = p

	return p, nil
}

func (b *builder) node(path string, n Node) (pattern.Pattern, error) {
	p, err := b.base(path, n)
	if err != nil {
		return pattern.Pattern{}, err
	}

	if n.Times != nil {
		count, err := cast.To[uint](n.Times)
		if err != nil {
			return pattern.Pattern{}, fmt.Errorf("%s: %w %v: %w", path, ErrInvalidCount, n.Times, err)
		}
		p = p.Times(count)
	}

	if n.OneOrMore {
		p = p.OneOrMore()
	}

	if n.Group != "" {
		p = p.GroupedAs(n.Group)
	}

	return p, nil
}

func (b *builder) base(path string, n Node) (pattern.Pattern, error) {
	op := n.Op
	if op == "" && len(n.Seq) > 0 {
		op = OpSeq
	}

	switch op {
	case OpSeq:
		if len(n.Seq) > 0 {
			return b.concat(path+".seq", n.Seq)
		}
		return b.concat(path+".parts", n.Parts)
	case OpRaw:
		return pattern.New(n.Text), nil
	case OpLiteral:
		return pattern.Literal(n.Text), nil
	case OpDigit:
		return pattern.Digit(), nil
	case OpAlphanumeric:
		return pattern.Alphanumeric(), nil
	case OpAlphabetic:
		return pattern.Alphabetic(), nil
	case OpStart:
		return pattern.Start(), nil
	case OpEnd:
		return pattern.End(), nil
	case OpAny:
		return pattern.Pattern{}.AnyCharacter(), nil
	case OpAnyOf, OpOneOf:
		parts, err := b.list(path+".parts", n.Parts)
		if err != nil {
			return pattern.Pattern{}, err
		}
		if op == OpOneOf {
			return pattern.AnyOf(parts...), nil
		}
		return pattern.Pattern{}.AnyOf(parts...), nil
	case OpRef:
		p, err := b.entry(n.Text)
		if err != nil {
			return pattern.Pattern{}, fmt.Errorf("%s: %w", path, err)
		}
		return p, nil
	default:
		return pattern.Pattern{}, fmt.Errorf("%s: %w %q", path, ErrUnknownOp, n.Op)
	}
}

func (b *builder) concat(path string, nodes []Node) (pattern.Pattern, error) {
	parts, err := b.list(path, nodes)
	if err != nil {
		return pattern.Pattern{}, err
	}
	return pattern.Concat(parts...), nil
}

func (b *builder) list(path string, nodes []Node) ([]pattern.Pattern, error) {
	parts := make([]pattern.Pattern, 0, len(nodes))
	for i, n := range nodes {
		p, err := b.node(path+"["+strconv.Itoa(i)+"]", n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}
