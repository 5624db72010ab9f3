// Package config holds the options that steer the doc comment checker and
// loads them from doccheck.toml.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/doccheck/diag"
)

// FileName is the project configuration file looked up by Find.
const FileName = "doccheck.toml"

// SourceLevel is a Java language level, normalized to its major version
// (1.4 -> 4, 1.5 and 5 -> 5, 17 -> 17).
type SourceLevel int

const (
	JDK1_3 SourceLevel = 3
	JDK1_4 SourceLevel = 4
	JDK5   SourceLevel = 5
	Latest SourceLevel = 21
)

const defaultVisibility = "private"

func ParseSourceLevel(s string) (SourceLevel, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "1.")
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid source level %q", s)
	}
	return SourceLevel(n), nil
}

func (l SourceLevel) String() string {
	if l < JDK5 {
		return "1." + strconv.Itoa(int(l))
	}
	return strconv.Itoa(int(l))
}

func (l SourceLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *SourceLevel) UnmarshalText(text []byte) error {
	v, err := ParseSourceLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Options configures one checking run. The zero value behaves like Default.
type Options struct {
	// SourceLevel is the language level of the checked sources. Zero means
	// Latest.
	SourceLevel SourceLevel `toml:"source_level"`

	// SkipMissingTags disables MissingParamTag, MissingThrowsTag and
	// MissingReturnTag.
	SkipMissingTags bool `toml:"skip_missing_tags"`

	// ConstructorTags makes constructors subject to missing-tag reporting
	// like ordinary methods. When false, constructors never report missing
	// tags.
	ConstructorTags bool `toml:"constructor_tags"`

	// MissingTagsVisibility is the least visible declaration for which
	// missing tags are reported: public, protected, package or private.
	MissingTagsVisibility string `toml:"missing_tags_visibility"`

	// Severity overrides the severity of individual problems, keyed by
	// problem name (e.g. "MissingParamTag").
	Severity map[string]diag.Severity `toml:"severity"`
}

// Default returns the options used when no configuration file exists.
func Default() Options {
	return Options{
		SourceLevel:           Latest,
		MissingTagsVisibility: defaultVisibility,
	}
}

// Validate checks option values that decoding cannot check.
func (o Options) Validate() error {
	if o.SourceLevel < 0 {
		return fmt.Errorf("invalid source level %d", o.SourceLevel)
	}
	if _, ok := visibilityRank(o.MissingTagsVisibility); !ok && o.MissingTagsVisibility != "" {
		return fmt.Errorf("invalid missing_tags_visibility %q (expected public, protected, package or private)", o.MissingTagsVisibility)
	}
	for name := range o.Severity {
		if _, ok := diag.ParseKind(name); !ok {
			return fmt.Errorf("unknown problem %q in severity table", name)
		}
	}
	return nil
}

// VerifyValues reports whether the source level enables @value checks and
// the other 1.5 reference rules.
func (o Options) VerifyValues() bool {
	return o.Level() >= JDK5
}

// Level returns the effective source level.
func (o Options) Level() SourceLevel {
	if o.SourceLevel == 0 {
		return Latest
	}
	return o.SourceLevel
}

// SeverityOf implements diag.Policy.
func (o Options) SeverityOf(kind diag.Kind, visibility string) diag.Severity {
	if kind.IsMissing() {
		if o.SkipMissingTags || !o.coversVisibility(visibility) {
			return diag.SevIgnore
		}
	}
	if sev, ok := o.Severity[kind.String()]; ok {
		return sev
	}
	return diag.SevWarning
}

func (o Options) coversVisibility(visibility string) bool {
	if visibility == "" {
		return true
	}
	threshold, ok := visibilityRank(o.MissingTagsVisibility)
	if !ok {
		threshold, _ = visibilityRank(defaultVisibility)
	}
	rank, ok := visibilityRank(visibility)
	if !ok {
		return true
	}
	return rank >= threshold
}

func visibilityRank(v string) (int, bool) {
	switch v {
	case "private":
		return 0, true
	case "package":
		return 1, true
	case "protected":
		return 2, true
	case "public":
		return 3, true
	}
	return 0, false
}
