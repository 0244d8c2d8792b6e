package main

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"
)

var primitives = map[string]wit.Type{
	"bool":   wit.Bool{},
	"u8":     wit.U8{},
	"u16":    wit.U16{},
	"u32":    wit.U32{},
	"u64":    wit.U64{},
	"s8":     wit.S8{},
	"s16":    wit.S16{},
	"s32":    wit.S32{},
	"s64":    wit.S64{},
	"f32":    wit.F32{},
	"f64":    wit.F64{},
	"char":   wit.Char{},
	"string": wit.String{},
}

// parseSignature reads "params:results", each side a comma-separated list of
// WIT types. Supported are the primitives plus list<T>, option<T>,
// result, result<T>, result<T, E> with _ for an absent payload, and
// tuple<T, ...>.
func parseSignature(s string) (params, results []wit.Type, err error) {
	left, right, _ := strings.Cut(s, ":")
	if params, err = parseTypeList(left); err != nil {
		return nil, nil, fmt.Errorf("params: %w", err)
	}
	if results, err = parseTypeList(right); err != nil {
		return nil, nil, fmt.Errorf("results: %w", err)
	}
	return params, results, nil
}

func parseTypeList(s string) ([]wit.Type, error) {
	var out []wit.Type
	for _, part := range splitTopLevel(s) {
		t, err := parseType(part)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func parseType(s string) (wit.Type, error) {
	s = strings.TrimSpace(s)
	if t, ok := primitives[s]; ok {
		return t, nil
	}
	if s == "result" {
		return &wit.TypeDef{Kind: &wit.Result{}}, nil
	}

	name, rest, ok := strings.Cut(s, "<")
	if !ok || !strings.HasSuffix(rest, ">") {
		return nil, fmt.Errorf("unknown type %q", s)
	}
	inner := strings.TrimSuffix(rest, ">")
	if strings.TrimSpace(name) == "result" {
		return parseResult(inner)
	}
	args, err := parseTypeList(inner)
	if err != nil {
		return nil, err
	}

	switch strings.TrimSpace(name) {
	case "list":
		if len(args) != 1 {
			return nil, fmt.Errorf("list takes one type, got %d", len(args))
		}
		return &wit.TypeDef{Kind: &wit.List{Type: args[0]}}, nil
	case "option":
		if len(args) != 1 {
			return nil, fmt.Errorf("option takes one type, got %d", len(args))
		}
		return &wit.TypeDef{Kind: &wit.Option{Type: args[0]}}, nil
	case "tuple":
		return &wit.TypeDef{Kind: &wit.Tuple{Types: args}}, nil
	default:
		return nil, fmt.Errorf("unknown type %q", s)
	}
}

// parseResult reads the arguments of result<...>: one or two payloads where
// _ leaves that payload empty.
func parseResult(inner string) (wit.Type, error) {
	parts := splitTopLevel(inner)
	if len(parts) == 0 || len(parts) > 2 {
		return nil, fmt.Errorf("result takes one or two types, got %d", len(parts))
	}
	payloads := make([]wit.Type, 2)
	for i, part := range parts {
		if strings.TrimSpace(part) == "_" {
			continue
		}
		t, err := parseType(part)
		if err != nil {
			return nil, err
		}
		payloads[i] = t
	}
	return &wit.TypeDef{Kind: &wit.Result{OK: payloads[0], Err: payloads[1]}}, nil
}

// splitTopLevel splits on commas outside angle brackets. Empty input yields
// no parts.
func splitTopLevel(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
