package guard

import (
	"regexp"
	"strings"

	"corrector/pkg/correrr"
)

// PatternSpec is a caller-supplied regex pattern plus its case-sensitivity,
// multiline, and extended flags, per spec §4.3/§6.3.
type PatternSpec struct {
	Source          string
	CaseInsensitive bool
	Multiline       bool
	Extended        bool
}

// Pattern is a compiled PatternSpec, evaluated against the raw token.
type Pattern struct {
	Source string
	re     *regexp.Regexp
}

func (p *Pattern) MatchString(raw string) bool { return p.re.MatchString(raw) }

// Compile builds a Pattern from spec, re-emitting its flags in Go's RE2
// dialect. Go's regexp engine has no native extended ("ignore whitespace
// and # comments") mode, so Extended is honored by stripping unescaped
// whitespace and line comments before compiling — a documented, limited
// subset per spec's design note on pattern-source-of-truth (§9).
func Compile(spec PatternSpec) (*Pattern, error) {
	pat := spec.Source
	if spec.Extended {
		pat = stripExtended(pat)
	}

	var flags string
	if spec.CaseInsensitive {
		flags += "i"
	}
	if spec.Multiline {
		flags += "m"
	}
	if flags != "" {
		pat = "(?" + flags + ")" + pat
	}

	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, correrr.Wrap(correrr.MalformedPattern, "guard.Compile: "+spec.Source, err)
	}
	return &Pattern{Source: spec.Source, re: re}, nil
}

// mustCompile compiles a built-in skip pattern: single-line, non-extended,
// and case-insensitive only when caseInsensitive is set. It panics if the
// source fails to compile.
func mustCompile(source string, caseInsensitive bool) *Pattern {
	p, err := Compile(PatternSpec{Source: source, CaseInsensitive: caseInsensitive})
	if err != nil {
		panic(err)
	}
	return p
}

func stripExtended(src string) string {
	var b strings.Builder
	inClass := false
	escaped := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			b.WriteByte(c)
			escaped = true
		case '[':
			inClass = true
			b.WriteByte(c)
		case ']':
			inClass = false
			b.WriteByte(c)
		case '#':
			if inClass {
				b.WriteByte(c)
				continue
			}
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case ' ', '\t', '\n', '\r':
			if inClass {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// SkipFlags toggles the built-in skip pattern categories of spec §4.3.
type SkipFlags struct {
	URLs         bool
	Emails       bool
	Hostnames    bool
	CodePatterns bool
	Numbers      bool
}

// builtinPatterns returns the patterns enabled by flags, in table order.
func builtinPatterns(flags SkipFlags) []*Pattern {
	var out []*Pattern
	if flags.URLs {
		out = append(out,
			mustCompile(`^https?://\S+$`, true),
			mustCompile(`^www\.\S+$`, true),
		)
	}
	if flags.Emails {
		out = append(out, mustCompile(`^[\w.+-]+@[\w.-]+\.\w+$`, true))
	}
	if flags.Hostnames {
		out = append(out, mustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`, true))
	}
	if flags.CodePatterns {
		out = append(out,
			mustCompile(`^[a-z]+[A-Z][a-zA-Z0-9]*$`, false),
			mustCompile(`^[A-Z][a-z]+[A-Z][a-zA-Z0-9]*$`, false),
			mustCompile(`^[a-z]+_[a-z0-9_]+$`, true),
			mustCompile(`^[A-Z]+_[A-Z0-9_]+$`, false),
			mustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*\.[a-zA-Z_][a-zA-Z0-9_.]*$`, false),
		)
	}
	if flags.Numbers {
		out = append(out,
			mustCompile(`^\d+\.\d+(\.\d+)?(\.\d+)?$`, false),
			mustCompile(`^#\d+$`, false),
			mustCompile(`^\d+(\.\d+)?(kg|g|mg|lb|oz|km|m|cm|mm|mi|ft|in|gb|mb|kb|tb|pb|px|pt|em|rem)$`, true),
			mustCompile(`^\d`, false),
		)
	}
	return out
}
