package model

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"
)

// Version is a parsed, order-comparable version string
type Version struct {
	text  string
	parts []versionPart
	sem   *semver.Version
}

type versionPart struct {
	numeric bool
	value   string // digits without leading zeros, or lowercased text
}

// embeddedVersion finds a version at the end of strings like "app-v1.2.3" or "release_2.0"
var embeddedVersion = regexp.MustCompile(`(?:^|[-_@])[vV]?(\d[0-9A-Za-z.+,_\-]*)$`)

// ParseVersion parses a tag name or version string. A leading "v" is dropped,
// and a trailing version embedded in a tag such as "app-v1.2.3" is extracted.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Version{}, goerr.Wrap(ErrInvalidVersion, "empty version string", goerr.V("input", s))
	}
	if strings.ContainsFunc(raw, unicode.IsSpace) {
		return Version{}, goerr.Wrap(ErrInvalidVersion, "version contains whitespace", goerr.V("input", s))
	}
	if strings.Contains(raw, "/") {
		return Version{}, goerr.Wrap(ErrInvalidVersion, "version contains a path separator", goerr.V("input", s))
	}

	text := raw
	if m := embeddedVersion.FindStringSubmatch(raw); m != nil {
		text = m[1]
	} else if len(raw) > 1 && (raw[0] == 'v' || raw[0] == 'V') && isDigit(rune(raw[1])) {
		text = raw[1:]
	}

	if !strings.ContainsFunc(text, isDigit) {
		return Version{}, goerr.Wrap(ErrInvalidVersion, "version has no numeric component", goerr.V("input", s))
	}

	v := Version{
		text:  text,
		parts: splitVersion(text),
	}
	if sv, err := semver.NewVersion(text); err == nil && sv.Metadata() == "" {
		v.sem = sv
	}

	return v, nil
}

// String returns the normalized version text, e.g. "1.2.3" for tag "v1.2.3"
func (v Version) String() string {
	return v.text
}

// IsZero reports whether v is the zero Version
func (v Version) IsZero() bool {
	return v.text == ""
}

// Compare returns -1, 0 or 1. Semantic versioning rules apply when both sides are
// valid semantic versions, component-wise comparison otherwise. Missing components
// compare as zero, and text components sort before numeric ones.
func (v Version) Compare(o Version) int {
	if v.sem != nil && o.sem != nil {
		return v.sem.Compare(o.sem)
	}

	n := max(len(v.parts), len(o.parts))
	zero := versionPart{numeric: true, value: "0"}
	for i := range n {
		a, b := zero, zero
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(o.parts) {
			b = o.parts[i]
		}
		if c := a.compare(b); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether both versions order the same
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// EqualString compares v against an unparsed version string, such as the version
// recorded in a manifest. Unparseable strings compare by exact text.
func (v Version) EqualString(s string) bool {
	o, err := ParseVersion(s)
	if err != nil {
		return v.text == strings.TrimSpace(s)
	}
	return v.Equal(o)
}

func (p versionPart) compare(o versionPart) int {
	switch {
	case p.numeric && o.numeric:
		if len(p.value) != len(o.value) {
			return sign(len(p.value) - len(o.value))
		}
		return strings.Compare(p.value, o.value)
	case p.numeric:
		return 1
	case o.numeric:
		return -1
	default:
		return strings.Compare(p.value, o.value)
	}
}

func splitVersion(s string) []versionPart {
	var parts []versionPart
	var cur strings.Builder
	curNumeric := false

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		value := cur.String()
		if curNumeric {
			value = strings.TrimLeft(value, "0")
			if value == "" {
				value = "0"
			}
		} else {
			value = strings.ToLower(value)
		}
		parts = append(parts, versionPart{numeric: curNumeric, value: value})
		cur.Reset()
	}

	for _, r := range s {
		switch {
		case isDigit(r):
			if !curNumeric {
				flush()
			}
			curNumeric = true
			cur.WriteRune(r)
		case unicode.IsLetter(r):
			if curNumeric {
				flush()
			}
			curNumeric = false
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return parts
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
