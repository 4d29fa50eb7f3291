// Package filter decides which types and members a dump must not expand.
//
// A Policy holds two ordered pattern lists. Each pattern is a regular
// expression matched against the whole name; a pattern that does not compile
// is matched literally, so names such as "*pkg.Node" need no escaping.
package filter

import (
	"regexp"

	"github.com/arthur-debert/vardump/pkg/logging"
)

// Process-wide defaults used when a caller supplies no list of its own.
var (
	// DefaultTypeNames blocks the internals of the testify mock framework.
	DefaultTypeNames = []string{`github\.com/stretchr/testify/mock\.Mock`}
	// DefaultMemberNames blocks members commonly holding noisy diagnostics.
	DefaultMemberNames = []string{"warning"}
)

// Policy answers membership queries for type names and member names.
// It is read-only once built and may be shared by concurrent dumps.
type Policy struct {
	typeNames   []*regexp.Regexp
	memberNames []*regexp.Regexp
}

// New compiles a policy. A nil list selects the matching default list,
// an empty non-nil list blocks nothing.
func New(typeNames, memberNames []string) *Policy {
	if typeNames == nil {
		typeNames = DefaultTypeNames
	}
	if memberNames == nil {
		memberNames = DefaultMemberNames
	}
	return &Policy{
		typeNames:   compile(typeNames),
		memberNames: compile(memberNames),
	}
}

// Default returns a policy built from the process-wide default lists.
func Default() *Policy {
	return New(nil, nil)
}

// BlocksType reports whether any of the given names of one type is blocked.
// Callers pass every spelling they know (qualified path, short name).
func (p *Policy) BlocksType(names ...string) bool {
	for _, name := range names {
		if name != "" && matchAny(p.typeNames, name) {
			return true
		}
	}
	return false
}

// BlocksMember reports whether a member (or container key) named name is blocked.
func (p *Policy) BlocksMember(name string) bool {
	return matchAny(p.memberNames, name)
}

// TypePatterns returns the source text of the type patterns in order.
func (p *Policy) TypePatterns() []string {
	return sources(p.typeNames)
}

// MemberPatterns returns the source text of the member patterns in order.
func (p *Policy) MemberPatterns() []string {
	return sources(p.memberNames)
}

func compile(patterns []string) []*regexp.Regexp {
	logger := logging.GetLogger("filter")
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(`^(?:` + pattern + `)$`)
		if err != nil {
			logger.Debug().Err(err).Str("pattern", pattern).Msg("Pattern is not a valid regexp, matching literally")
			re = regexp.MustCompile(`^` + regexp.QuoteMeta(pattern) + `$`)
		}
		compiled = append(compiled, re)
	}
	return compiled
}

func matchAny(patterns []*regexp.Regexp, name string) bool {
	for _, re := range patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func sources(patterns []*regexp.Regexp) []string {
	out := make([]string, 0, len(patterns))
	for _, re := range patterns {
		out = append(out, re.String())
	}
	return out
}
