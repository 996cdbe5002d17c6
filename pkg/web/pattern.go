package web

import (
	"fmt"
	"strings"
)

type segment struct {
	literal string
	param   string
}

// pattern is a compiled route pattern made of literal and {name} segments.
type pattern struct {
	raw      string
	segments []segment
}

func compilePattern(raw string) (pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, raw)
	}

	p := pattern{raw: raw}
	if raw == "/" {
		return p, nil
	}

	seen := make(map[string]bool)
	for _, part := range strings.Split(raw[1:], "/") {
		if part == "" {
			return pattern{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, raw)
		}

		if !strings.ContainsAny(part, "{}") {
			p.segments = append(p.segments, segment{literal: part})
			continue
		}

		if !strings.HasPrefix(part, "{") || !strings.HasSuffix(part, "}") {
			return pattern{}, fmt.Errorf("%w: %q placeholder must span the whole segment", ErrInvalidPattern, raw)
		}

		name := part[1 : len(part)-1]
		if !isIdentifier(name) {
			return pattern{}, fmt.Errorf("%w: %q has invalid parameter name %q", ErrInvalidPattern, raw, name)
		}
		if seen[name] {
			return pattern{}, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, raw, name)
		}
		seen[name] = true

		p.segments = append(p.segments, segment{param: name})
	}

	return p, nil
}

// match reports whether path matches the pattern and returns the captured parameters.
func (p pattern) match(path string) (Params, bool) {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}

	if len(p.segments) == 0 {
		return nil, path == "/"
	}

	parts := strings.Split(path[1:], "/")
	if len(parts) != len(p.segments) {
		return nil, false
	}

	var params Params
	for i, seg := range p.segments {
		part := parts[i]
		if seg.param == "" {
			if part != seg.literal {
				return nil, false
			}
			continue
		}
		if part == "" {
			return nil, false
		}
		if params == nil {
			params = make(Params)
		}
		params[seg.param] = part
	}

	return params, true
}

// build renders the pattern with the given parameter values.
func (p pattern) build(params Params) (string, error) {
	if len(p.segments) == 0 {
		return "/", nil
	}

	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteByte('/')
		if seg.param == "" {
			b.WriteString(seg.literal)
			continue
		}
		v, ok := params[seg.param]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingParam, seg.param)
		}
		b.WriteString(escapeSegment(v))
	}
	return b.String(), nil
}

// shape identifies patterns that match exactly the same paths, ignoring parameter names.
func (p pattern) shape() string {
	if len(p.segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteByte('/')
		if seg.param != "" {
			b.WriteString("{}")
		} else {
			b.WriteString(seg.literal)
		}
	}
	return b.String()
}

func (p pattern) params() []string {
	var names []string
	for _, seg := range p.segments {
		if seg.param != "" {
			names = append(names, seg.param)
		}
	}
	return names
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
