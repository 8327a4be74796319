package compare

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/models"
)

// Normalize reduces a raw value fragment to a canonical value comparable with
// an authoritative default. It understands the literal subset of the host's
// scripting dialect: None/True/False, numbers, quoted strings and bracketed
// sequences. Anything that needs evaluation (names, calls, concatenation,
// f-strings, dict displays) yields ErrUnresolvable; the caller reports the
// comparison as unverifiable instead of failing the run.
func Normalize(raw string) (models.Value, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.Value{}, fmt.Errorf("%w: empty value", models.ErrUnresolvable)
	}

	switch s {
	case "None":
		return models.NoneValue(), nil
	case "True":
		return models.BoolValue(true), nil
	case "False":
		return models.BoolValue(false), nil
	}

	if isStringStart(s) {
		return normalizeString(s)
	}

	if (strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")) ||
		(strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")) {
		return normalizeSequence(s[1 : len(s)-1])
	}

	if v, err := strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 0, 64); err == nil {
		return models.IntValue(v), nil
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64); err == nil {
		return models.FloatValue(v), nil
	}

	return models.Value{}, fmt.Errorf("%w: %q", models.ErrUnresolvable, s)
}

func isStringStart(s string) bool {
	_, rest := splitStringPrefix(s)
	return rest != "" && (rest[0] == '\'' || rest[0] == '"')
}

// splitStringPrefix separates an optional string prefix (r, b, rb, f, ...)
// from the quoted remainder. At most two prefix letters exist in the host
// dialect.
func splitStringPrefix(s string) (prefix, rest string) {
	i := 0
	for i < len(s) && i < 2 {
		c := s[i]
		if c == 'r' || c == 'R' || c == 'b' || c == 'B' || c == 'u' || c == 'U' || c == 'f' || c == 'F' {
			i++
			continue
		}
		break
	}
	if i < len(s) && (s[i] == '\'' || s[i] == '"') {
		return strings.ToLower(s[:i]), s[i:]
	}
	return "", s
}

func normalizeString(s string) (models.Value, error) {
	prefix, rest := splitStringPrefix(s)
	if strings.Contains(prefix, "f") {
		// f-strings interpolate, there is nothing literal to compare.
		return models.Value{}, fmt.Errorf("%w: f-string %q", models.ErrUnresolvable, s)
	}
	rawString := strings.Contains(prefix, "r")

	quote := rest[0]
	triple := strings.HasPrefix(rest, strings.Repeat(string(quote), 3))
	qlen := 1
	if triple {
		qlen = 3
	}
	body := rest[qlen:]

	var out strings.Builder
	i := 0
	for i < len(body) {
		ch := body[i]
		if ch == '\\' && i+1 < len(body) {
			next := body[i+1]
			if rawString {
				// Raw strings keep the backslash, but it still guards the
				// following character from terminating the literal.
				out.WriteByte(ch)
				out.WriteByte(next)
				i += 2
				continue
			}
			// Minimal unescaping: quote and backslash; everything else is
			// kept verbatim.
			switch next {
			case '\\', '\'', '"':
				out.WriteByte(next)
				i += 2
				continue
			}
			out.WriteByte(ch)
			i++
			continue
		}
		if ch == quote {
			if triple {
				if strings.HasPrefix(body[i:], strings.Repeat(string(quote), 3)) {
					if strings.TrimSpace(body[i+3:]) != "" {
						return models.Value{}, fmt.Errorf("%w: trailing text after string literal", models.ErrUnresolvable)
					}
					return models.StringValue(out.String()), nil
				}
				out.WriteByte(ch)
				i++
				continue
			}
			if strings.TrimSpace(body[i+1:]) != "" {
				// 'a' 'b' or 'a' + x, i.e. concatenation.
				return models.Value{}, fmt.Errorf("%w: trailing text after string literal", models.ErrUnresolvable)
			}
			return models.StringValue(out.String()), nil
		}
		out.WriteByte(ch)
		i++
	}

	return models.Value{}, fmt.Errorf("%w: unterminated string literal", models.ErrUnresolvable)
}

func normalizeSequence(inner string) (models.Value, error) {
	if strings.TrimSpace(inner) == "" {
		return models.ListValue(nil), nil
	}

	parts, err := splitTopLevel(inner)
	if err != nil {
		return models.Value{}, err
	}
	// A trailing comma leaves one empty trailing part.
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	elems := make([]models.Value, 0, len(parts))
	for _, p := range parts {
		v, err := Normalize(p)
		if err != nil {
			return models.Value{}, err
		}
		elems = append(elems, v)
	}
	return models.ListValue(elems), nil
}

// splitTopLevel splits on commas that sit outside any quote or bracket pair,
// so a comma inside a quoted value never splits the value in two.
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	var quote byte
	triple := false
	depth := 0
	start := 0

	i := 0
	for i < len(s) {
		ch := s[i]
		if quote != 0 {
			switch {
			case ch == '\\' && i+1 < len(s):
				i += 2
			case ch == quote && triple:
				if strings.HasPrefix(s[i:], strings.Repeat(string(quote), 3)) {
					quote = 0
					triple = false
					i += 3
				} else {
					i++
				}
			case ch == quote:
				quote = 0
				i++
			default:
				i++
			}
			continue
		}

		switch ch {
		case '\'', '"':
			quote = ch
			triple = strings.HasPrefix(s[i:], strings.Repeat(string(ch), 3))
			if triple {
				i += 3
			} else {
				i++
			}
		case '(', '[', '{':
			depth++
			i++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced brackets", models.ErrUnresolvable)
			}
			i++
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
			i++
		default:
			i++
		}
	}

	if quote != 0 || depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced quoting", models.ErrUnresolvable)
	}
	parts = append(parts, s[start:])
	return parts, nil
}
