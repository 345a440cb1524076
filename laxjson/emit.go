package laxjson

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

// EmitOptions configures the renderer.
type EmitOptions struct {
	// Pretty adds indentation and newlines for readability
	Pretty bool

	// Indent string for pretty mode (default: "  ")
	Indent string

	// SortKeys sorts dict keys bytewise for deterministic output
	SortKeys bool
}

// DefaultEmitOptions returns sensible defaults: compact, insertion order.
func DefaultEmitOptions() EmitOptions {
	return EmitOptions{Indent: "  "}
}

// Emit converts a JValue to JSON text.
func Emit(v *JValue) string {
	return EmitWithOptions(v, DefaultEmitOptions())
}

// EmitPretty converts a JValue to indented JSON text.
func EmitPretty(v *JValue) string {
	return EmitWithOptions(v, EmitOptions{Pretty: true, Indent: "  "})
}

// EmitWithOptions converts a JValue with custom options.
func EmitWithOptions(v *JValue, opts EmitOptions) string {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	b := getPooledBuilder()
	e := &emitter{b: b, opts: opts}
	e.emit(v, 0)
	out := b.String()
	putPooledBuilder(b)
	return out
}

// stringBuilderPool provides reusable string builders for emitters.
var stringBuilderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func getPooledBuilder() *strings.Builder {
	b := stringBuilderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putPooledBuilder(b *strings.Builder) {
	// Only return reasonably sized builders to the pool
	if b.Cap() < 64*1024 {
		stringBuilderPool.Put(b)
	}
}

type emitter struct {
	b    *strings.Builder
	opts EmitOptions
}

func (e *emitter) emit(v *JValue, depth int) {
	if v == nil {
		e.b.WriteString("null")
		return
	}

	switch v.typ {
	case TypeNull:
		e.b.WriteString("null")

	case TypeBool:
		if v.boolVal {
			e.b.WriteString("true")
		} else {
			e.b.WriteString("false")
		}

	case TypeInt:
		e.b.WriteString(strconv.FormatInt(v.intVal, 10))

	case TypeDouble:
		e.emitDouble(v.doubleVal)

	case TypeString:
		writeQuotedString(e.b, v.strVal)

	case TypeList:
		e.emitList(v, depth)

	case TypeDict:
		e.emitDict(v, depth)
	}
}

func (e *emitter) emitDouble(f float64) {
	if math.IsNaN(f) {
		e.b.WriteString("NaN")
		return
	}
	if math.IsInf(f, 1) {
		e.b.WriteString("Inf")
		return
	}
	if math.IsInf(f, -1) {
		e.b.WriteString("-Inf")
		return
	}

	// Shortest representation that round-trips. Ensure a decimal point or
	// exponent so a double never reads back as an int.
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	e.b.WriteString(s)
}

func (e *emitter) emitList(v *JValue, depth int) {
	e.b.WriteString("[")

	if e.opts.Pretty && len(v.listVal) > 0 {
		e.b.WriteString("\n")
	}

	for i, elem := range v.listVal {
		if e.opts.Pretty {
			e.writeIndent(depth + 1)
		}

		e.emit(elem, depth+1)

		if i < len(v.listVal)-1 {
			if e.opts.Pretty {
				e.b.WriteString(",")
			} else {
				e.b.WriteString(", ")
			}
		}

		if e.opts.Pretty {
			e.b.WriteString("\n")
		}
	}

	if e.opts.Pretty && len(v.listVal) > 0 {
		e.writeIndent(depth)
	}
	e.b.WriteString("]")
}

func (e *emitter) emitDict(v *JValue, depth int) {
	entries := v.dictVal
	if e.opts.SortKeys {
		entries = sortDictEntries(entries)
	}

	e.b.WriteString("{")

	if e.opts.Pretty && len(entries) > 0 {
		e.b.WriteString("\n")
	}

	for i, entry := range entries {
		if e.opts.Pretty {
			e.writeIndent(depth + 1)
		}

		writeQuotedString(e.b, entry.Key)
		e.b.WriteString(": ")
		e.emit(entry.Value, depth+1)

		if i < len(entries)-1 {
			if e.opts.Pretty {
				e.b.WriteString(",")
			} else {
				e.b.WriteString(", ")
			}
		}

		if e.opts.Pretty {
			e.b.WriteString("\n")
		}
	}

	if e.opts.Pretty && len(entries) > 0 {
		e.writeIndent(depth)
	}
	e.b.WriteString("}")
}

func (e *emitter) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		e.b.WriteString(e.opts.Indent)
	}
}

// writeQuotedString writes a double-quoted string using only escape
// sequences the parser maps back, so quoting round-trips exactly. Bytes
// outside the escape table (including multi-byte text) pass through raw.
func writeQuotedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case '\b':
			b.WriteString(`\b`)
		case '\a':
			b.WriteString(`\a`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

// sortDictEntries returns a copy of entries sorted bytewise by key.
func sortDictEntries(entries []DictEntry) []DictEntry {
	if len(entries) <= 1 {
		return entries
	}

	sorted := make([]DictEntry, len(entries))
	copy(sorted, entries)

	// Simple insertion sort (good for small dicts)
	for i := 1; i < len(sorted); i++ {
		j := i
		for j > 0 && sorted[j].Key < sorted[j-1].Key {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			j--
		}
	}

	return sorted
}
