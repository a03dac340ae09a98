// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package text renders close-message templates against an event payload.
//
// A template is literal text with ${path} references, where path is a
// dot-separated chain of field names or array indexes rooted at a top-level
// payload field, e.g. "Hi ${sender.login}, see ${issue.labels.0.name}".
// References are resolved by lookup only; nothing in a template is executed.
// "$${" renders a literal "${".
package text

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/similigh/issue-gate/internal/core/failure"
)

// Template is a parsed close-message template.
type Template struct {
	segments []segment
}

type segment struct {
	literal string
	path    []string // nil for literal segments
}

// Render parses src and renders it against data.
func Render(src string, data map[string]any) (string, error) {
	tmpl, err := Parse(src)
	if err != nil {
		return "", err
	}
	return tmpl.Render(data)
}

// Parse parses a template. Templates written as JavaScript template literals
// (wrapped in backticks) are unwrapped first.
func Parse(src string) (*Template, error) {
	src = unwrapBackticks(src)

	var (
		segments []segment
		lit      strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			segments = append(segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(src); {
		if strings.HasPrefix(src[i:], "$${") {
			lit.WriteString("${")
			i += 3
			continue
		}
		if strings.HasPrefix(src[i:], "${") {
			end := strings.IndexByte(src[i+2:], '}')
			if end < 0 {
				return nil, failure.New(failure.ErrTemplateRender,
					fmt.Sprintf("unterminated reference at offset %d", i))
			}
			expr := strings.TrimSpace(src[i+2 : i+2+end])
			path, err := parsePath(expr)
			if err != nil {
				return nil, err
			}
			flush()
			segments = append(segments, segment{path: path})
			i += 2 + end + 1
			continue
		}
		lit.WriteByte(src[i])
		i++
	}
	flush()

	return &Template{segments: segments}, nil
}

// Render resolves every reference against data.
func (t *Template) Render(data map[string]any) (string, error) {
	var sb strings.Builder
	for _, seg := range t.segments {
		if seg.path == nil {
			sb.WriteString(seg.literal)
			continue
		}
		v, err := resolve(data, seg.path)
		if err != nil {
			return "", err
		}
		s, err := format(v)
		if err != nil {
			return "", failure.Wrap(failure.ErrTemplateRender, err,
				fmt.Sprintf("cannot render %s", strings.Join(seg.path, ".")))
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func unwrapBackticks(src string) string {
	if len(src) >= 2 && src[0] == '`' && src[len(src)-1] == '`' {
		return src[1 : len(src)-1]
	}
	return src
}

func parsePath(expr string) ([]string, error) {
	if expr == "" {
		return nil, failure.New(failure.ErrTemplateRender, "empty reference ${}")
	}
	parts := strings.Split(expr, ".")
	for i, p := range parts {
		if i == 0 && !isIdentifier(p) {
			return nil, failure.New(failure.ErrTemplateRender,
				fmt.Sprintf("invalid reference ${%s}: %q is not a field name", expr, p))
		}
		if !isIdentifier(p) && !isIndex(p) {
			return nil, failure.New(failure.ErrTemplateRender,
				fmt.Sprintf("invalid reference ${%s}: %q is not a field name or index", expr, p))
		}
	}
	return parts, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func resolve(data map[string]any, path []string) (any, error) {
	var cur any = data
	for i, name := range path {
		at := strings.Join(path[:i+1], ".")
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[name]
			if !ok {
				return nil, failure.New(failure.ErrTemplateRender, fmt.Sprintf("%s is not defined", at))
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(name)
			if err != nil || idx >= len(v) {
				return nil, failure.New(failure.ErrTemplateRender, fmt.Sprintf("%s is not defined", at))
			}
			cur = v[idx]
		case nil:
			return nil, failure.New(failure.ErrTemplateRender,
				fmt.Sprintf("cannot read %q of null at %s", name, strings.Join(path[:i], ".")))
		default:
			return nil, failure.New(failure.ErrTemplateRender, fmt.Sprintf("%s is not defined", at))
		}
	}
	return cur, nil
}

func format(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
