// File: pattern.go
// Title: Format Pattern Compiler
// Description: Implements FormatPattern, the compiled form of a template
//              pattern string. Compilation translates the token layout into
//              a Go reference layout plus a shape expression enforcing exact
//              token widths, validates every token and literal, and records
//              the properties (offset token, name tokens, fraction width)
//              the parsing and rendering paths need. Compiled patterns are
//              immutable and cached.
// Version: v0.1.1
// Created: 2026-04-03
// Modified: 2026-04-05
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation
// - 2026-04-05 v0.1.1: Enforce token widths via a compiled shape expression

package datex

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	dnerror "datenorm/core/error"
)

// FormatPattern is the compiled, immutable form of a pattern string
type FormatPattern struct {
	source         string
	layout         string
	shape          *regexp.Regexp
	hasOffset      bool
	hasNames       bool
	fractionDigits int
}

// Pattern cache for commonly used patterns
var (
	patternCache   = make(map[string]*FormatPattern)
	patternCacheMu sync.RWMutex
)

// errShapeMismatch reports input whose token widths differ from the pattern,
// which time.Parse alone would accept for the 24-hour layout chunk
var errShapeMismatch = errors.New("input does not match the pattern's token widths")

// CompilePattern compiles a pattern string, returning a cached instance when
// the pattern has been compiled before
func CompilePattern(pattern string) (*FormatPattern, error) {
	patternCacheMu.RLock()
	if fp, exists := patternCache[pattern]; exists {
		patternCacheMu.RUnlock()
		return fp, nil
	}
	patternCacheMu.RUnlock()

	fp, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	patternCacheMu.Lock()
	patternCache[pattern] = fp
	patternCacheMu.Unlock()

	return fp, nil
}

// Source returns the pattern string this instance was compiled from
func (fp *FormatPattern) Source() string {
	return fp.source
}

// Layout returns the Go reference layout the pattern compiles to
func (fp *FormatPattern) Layout() string {
	return fp.layout
}

// HasOffset reports whether the pattern contains an offset token
func (fp *FormatPattern) HasOffset() bool {
	return fp.hasOffset
}

// HasNames reports whether the pattern contains locale-sensitive name tokens
func (fp *FormatPattern) HasNames() bool {
	return fp.hasNames
}

// FractionDigits returns the width of the fractional-second token, 0 if none
func (fp *FormatPattern) FractionDigits() int {
	return fp.fractionDigits
}

// parse performs the strict parse of text against the compiled layout. Name
// tokens are mapped to invariant names first when the locale requires it.
// The shape check runs before time.Parse: the reference layout alone does
// not pin every token width (its 24-hour chunk accepts unpadded hours).
func (fp *FormatPattern) parse(text string, loc Locale) (time.Time, error) {
	input := text
	if fp.hasNames {
		input = loc.toInvariant(input)
	}
	if !fp.shape.MatchString(input) {
		return time.Time{}, errShapeMismatch
	}
	return time.Parse(fp.layout, input)
}

// literalRunes are the separator characters allowed outside tokens
const literalRunes = "-/:., T"

// compilePattern performs the actual token scan and translation
func compilePattern(pattern string) (*FormatPattern, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, dnerror.New("pattern cannot be empty").
			WithCode(dnerror.CodePattern).
			WithOperation("datex.CompilePattern")
	}

	fp := &FormatPattern{source: pattern}
	var layout strings.Builder
	var shape strings.Builder
	shape.WriteString("^")

	for i := 0; i < len(pattern); {
		ch := pattern[i]

		if isTokenLetter(ch) {
			j := i
			for j < len(pattern) && pattern[j] == ch {
				j++
			}
			run := pattern[i:j]

			layoutChunk, shapeChunk, err := fp.mapToken(run, layout.String())
			if err != nil {
				return nil, err
			}
			layout.WriteString(layoutChunk)
			shape.WriteString(shapeChunk)
			i = j
			continue
		}

		if strings.IndexByte(literalRunes, ch) < 0 {
			return nil, dnerror.Newf("unsupported character %q in pattern %q", string(ch), pattern).
				WithCode(dnerror.CodePattern).
				WithOperation("datex.CompilePattern").
				WithDetail("pattern", pattern)
		}
		layout.WriteByte(ch)
		shape.WriteString(regexp.QuoteMeta(string(ch)))
		i++
	}
	shape.WriteString("$")

	compiled, err := regexp.Compile(shape.String())
	if err != nil {
		return nil, dnerror.Wrapf(err, "cannot compile shape for pattern %q", pattern).
			WithCode(dnerror.CodePattern).
			WithOperation("datex.CompilePattern").
			WithDetail("pattern", pattern)
	}

	fp.layout = layout.String()
	fp.shape = compiled
	return fp, nil
}

// isTokenLetter reports whether ch starts a token run. 'T' is the ISO
// date/time separator and is always a literal.
func isTokenLetter(ch byte) bool {
	if ch == 'T' {
		return false
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// mapToken translates one token run into its Go layout chunk and the shape
// expression pinning the run's exact width, and records the pattern
// properties the run implies. layoutSoFar is used to validate that fraction
// tokens directly follow a '.' literal.
func (fp *FormatPattern) mapToken(run, layoutSoFar string) (string, string, error) {
	switch run {
	case "yyyy":
		return "2006", `\d{4}`, nil
	case "yy":
		return "06", `\d{2}`, nil

	case "MMMM":
		fp.hasNames = true
		return "January", `[A-Za-z]+`, nil
	case "MMM":
		fp.hasNames = true
		return "Jan", `[A-Za-z]{3}`, nil
	case "MM":
		return "01", `\d{2}`, nil
	case "M":
		return "1", `\d{1,2}`, nil

	case "dddd":
		fp.hasNames = true
		return "Monday", `[A-Za-z]+`, nil
	case "ddd":
		fp.hasNames = true
		return "Mon", `[A-Za-z]{3}`, nil
	case "dd":
		return "02", `\d{2}`, nil
	case "d":
		return "2", `\d{1,2}`, nil

	// The Go layout has no fixed-width 24-hour chunk; both widths compile
	// to "15" and the shape expression carries the distinction.
	case "HH":
		return "15", `\d{2}`, nil
	case "H":
		return "15", `\d{1,2}`, nil

	case "hh":
		return "03", `\d{2}`, nil
	case "h":
		return "3", `\d{1,2}`, nil

	case "mm":
		return "04", `\d{2}`, nil
	case "m":
		return "4", `\d{1,2}`, nil

	case "ss":
		return "05", `\d{2}`, nil
	case "s":
		return "5", `\d{1,2}`, nil

	case "fff", "ff", "f":
		if !strings.HasSuffix(layoutSoFar, ".") {
			return "", "", dnerror.Newf("fraction token %q must follow a '.' literal in pattern %q", run, fp.source).
				WithCode(dnerror.CodePattern).
				WithOperation("datex.CompilePattern").
				WithDetail("pattern", fp.source)
		}
		fp.fractionDigits = len(run)
		return strings.Repeat("0", len(run)), `\d{` + strconv.Itoa(len(run)) + `}`, nil

	case "tt":
		fp.hasNames = true
		return "PM", `(?:AM|PM)`, nil

	case "zzz":
		fp.hasOffset = true
		return "-07:00", `[+-]\d{2}:\d{2}`, nil
	case "zz":
		fp.hasOffset = true
		return "-07", `[+-]\d{2}`, nil
	case "K":
		fp.hasOffset = true
		return "Z07:00", `(?:Z|[+-]\d{2}:\d{2})`, nil

	default:
		return "", "", dnerror.Newf("unknown token %q in pattern %q", run, fp.source).
			WithCode(dnerror.CodePattern).
			WithOperation("datex.CompilePattern").
			WithDetail("pattern", fp.source).
			WithDetail("token", run)
	}
}
