package compare

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/models"
)

// Scanner extracts setting occurrences from config script text, one logical
// statement at a time. It is deliberately a tolerant line-oriented scanner,
// not a full-language parser: statements it cannot make sense of produce a
// warning or are ignored, never an error.
//
// The usage mirrors bufio.Scanner:
//
//	sc := NewScanner(path, f)
//	for sc.Scan() {
//		occ := sc.Occurrence()
//		...
//	}
//	warnings := sc.Warnings()
type Scanner struct {
	file     string
	lines    *bufio.Scanner
	line     int
	occ      models.Occurrence
	warnings []models.Warning
}

var (
	// c.<name> = <expr>
	attrPattern = regexp.MustCompile(`(?s)^c\.([A-Za-z_][A-Za-z0-9_.]*)\s*=\s*(.+)$`)
	// config.set("<name>", <expr>[, <pattern>])
	callPattern = regexp.MustCompile(`(?s)^config\.set\(\s*(.+)\)\s*$`)
)

func NewScanner(file string, r io.Reader) *Scanner {
	return &Scanner{
		file:  file,
		lines: bufio.NewScanner(r),
	}
}

// Occurrence returns the occurrence found by the last call to Scan.
func (s *Scanner) Occurrence() models.Occurrence {
	return s.occ
}

// Warnings returns the non-fatal problems encountered so far. Call after
// Scan has returned false to get the full list for the file.
func (s *Scanner) Warnings() []models.Warning {
	return s.warnings
}

// Scan advances to the next recognized setting statement. It returns false
// when the input is exhausted.
func (s *Scanner) Scan() bool {
	for {
		stmt, startLine, commented, ok := s.nextStatement()
		if !ok {
			return false
		}

		name, raw, matched := matchStatement(stmt)
		if !matched {
			// Ordinary script code, not a setting.
			continue
		}

		s.occ = models.Occurrence{
			Name:      name,
			RawValue:  raw,
			Commented: commented,
			File:      s.file,
			Line:      startLine,
		}
		return true
	}
}

// nextStatement assembles the next logical statement, joining physical lines
// while a continuation is pending and stripping inline comments.
func (s *Scanner) nextStatement() (stmt string, startLine int, commented bool, ok bool) {
	for s.lines.Scan() {
		s.line++
		text := strings.TrimSpace(s.lines.Text())
		if text == "" {
			continue
		}
		// Lines starting with "##" are generator doc comments, never
		// commented-out settings.
		if strings.HasPrefix(text, "##") {
			continue
		}

		startLine = s.line
		commented = false
		if strings.HasPrefix(text, "#") {
			commented = true
			text = strings.TrimSpace(text[1:])
			if text == "" {
				continue
			}
		}

		var st stmtState
		st.feed(text)
		for st.needsMore() {
			if !s.lines.Scan() {
				s.warn(startLine, "unterminated statement at end of file")
				return "", 0, false, false
			}
			s.line++
			cont := s.lines.Text()
			if commented {
				ct := strings.TrimSpace(cont)
				cont = strings.TrimPrefix(ct, "#")
			}
			st.feed(cont)
		}

		if st.quote != 0 && !st.triple {
			s.warn(startLine, "statement has an unclosed quote, skipped")
			continue
		}

		stmt = strings.TrimSpace(st.text.String())
		if stmt == "" {
			continue
		}
		return stmt, startLine, commented, true
	}
	return "", 0, false, false
}

func (s *Scanner) warn(line int, msg string) {
	s.warnings = append(s.warnings, models.Warning{File: s.file, Line: line, Message: msg})
}

// stmtState tracks quoting, bracket depth and backslash continuation across
// the physical lines of one statement, accumulating the comment-stripped
// statement text.
type stmtState struct {
	quote    byte // 0 when outside any string
	triple   bool
	depth    int
	contLine bool // last physical line ended with a continuation backslash
	started  bool
	text     strings.Builder
}

func (st *stmtState) needsMore() bool {
	return st.contLine || st.depth > 0 || (st.quote != 0 && st.triple)
}

// feed consumes one physical line.
func (st *stmtState) feed(line string) {
	if st.started {
		switch {
		case st.quote != 0 && st.triple:
			// Newlines are part of a triple-quoted string.
			st.text.WriteByte('\n')
		case st.quote != 0:
			// Backslash-continued string, the pieces join directly.
		default:
			st.text.WriteByte(' ')
			line = strings.TrimLeft(line, " \t")
		}
	}
	st.started = true
	st.contLine = false

	i := 0
	for i < len(line) {
		ch := line[i]

		if st.quote != 0 {
			switch {
			case ch == '\\':
				if i == len(line)-1 {
					// Backslash-newline inside a string.
					st.contLine = true
					i++
					continue
				}
				st.text.WriteByte(ch)
				st.text.WriteByte(line[i+1])
				i += 2
			case ch == st.quote && st.triple:
				if strings.HasPrefix(line[i:], strings.Repeat(string(ch), 3)) {
					st.text.WriteString(line[i : i+3])
					st.quote = 0
					st.triple = false
					i += 3
				} else {
					st.text.WriteByte(ch)
					i++
				}
			case ch == st.quote:
				st.quote = 0
				st.text.WriteByte(ch)
				i++
			default:
				st.text.WriteByte(ch)
				i++
			}
			continue
		}

		switch ch {
		case '#':
			// Inline comment, drop the rest of the line.
			i = len(line)
		case '\'', '"':
			if strings.HasPrefix(line[i:], strings.Repeat(string(ch), 3)) {
				st.quote = ch
				st.triple = true
				st.text.WriteString(line[i : i+3])
				i += 3
			} else {
				st.quote = ch
				st.triple = false
				st.text.WriteByte(ch)
				i++
			}
		case '(', '[', '{':
			st.depth++
			st.text.WriteByte(ch)
			i++
		case ')', ']', '}':
			if st.depth > 0 {
				st.depth--
			}
			st.text.WriteByte(ch)
			i++
		case '\\':
			if strings.TrimSpace(line[i+1:]) == "" {
				st.contLine = true
				i = len(line)
			} else {
				st.text.WriteByte(ch)
				i++
			}
		default:
			st.text.WriteByte(ch)
			i++
		}
	}
}

// matchStatement recognizes the two spellings the host documents for setting
// a config value and captures the setting name and the verbatim value text.
func matchStatement(stmt string) (name, raw string, ok bool) {
	if m := attrPattern.FindStringSubmatch(stmt); m != nil {
		raw := strings.TrimSpace(m[2])
		// "c.x == y" is a comparison, not an assignment.
		if strings.HasPrefix(raw, "=") {
			return "", "", false
		}
		return m[1], raw, true
	}
	if m := callPattern.FindStringSubmatch(stmt); m != nil {
		args, err := splitTopLevel(m[1])
		if err != nil || len(args) < 2 {
			return "", "", false
		}
		name, err := unquoteName(strings.TrimSpace(args[0]))
		if err != nil {
			return "", "", false
		}
		// A third argument is a URL pattern, irrelevant for comparison.
		return name, strings.TrimSpace(args[1]), true
	}
	return "", "", false
}

// unquoteName accepts a plain quoted string literal and returns its content.
func unquoteName(s string) (string, error) {
	v, err := Normalize(s)
	if err != nil {
		return "", err
	}
	if v.Kind != models.KindString {
		return "", models.ErrUnresolvable
	}
	return v.Str, nil
}

// ExtractFile scans a whole config file and returns every occurrence in it,
// in source order, together with any non-fatal warnings.
func ExtractFile(path string) ([]models.Occurrence, []models.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sc := NewScanner(path, f)
	var occs []models.Occurrence
	for sc.Scan() {
		occs = append(occs, sc.Occurrence())
	}
	return occs, sc.Warnings(), nil
}
