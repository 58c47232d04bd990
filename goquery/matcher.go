package goquery

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Matcher is a predicate over an element's attributes.
type Matcher interface {
	Match(s *goquery.Selection) bool
	String() string
}

type attrEquals struct{ key, value string }

// Attr matches elements whose attribute key equals value exactly.
func Attr(key, value string) Matcher { return attrEquals{key, value} }

func (m attrEquals) Match(s *goquery.Selection) bool {
	v, ok := s.Attr(m.key)
	return ok && v == m.value
}

func (m attrEquals) String() string { return fmt.Sprintf("[%s=%q]", m.key, m.value) }

type attrContains struct{ key, substr string }

// AttrContains matches elements whose attribute key contains substr.
func AttrContains(key, substr string) Matcher { return attrContains{key, substr} }

func (m attrContains) Match(s *goquery.Selection) bool {
	v, ok := s.Attr(m.key)
	return ok && strings.Contains(v, m.substr)
}

func (m attrContains) String() string { return fmt.Sprintf("[%s*=%q]", m.key, m.substr) }

type attrRegexp struct {
	key string
	re  *regexp.Regexp
}

// AttrRegexp matches elements whose attribute key matches re anywhere in
// its value.
func AttrRegexp(key string, re *regexp.Regexp) Matcher { return attrRegexp{key, re} }

func (m attrRegexp) Match(s *goquery.Selection) bool {
	v, ok := s.Attr(m.key)
	return ok && m.re.MatchString(v)
}

func (m attrRegexp) String() string { return fmt.Sprintf("[%s~/%s/]", m.key, m.re) }

type class struct{ name string }

// Class matches elements carrying the class token name. A name containing
// spaces matches the whole class attribute instead.
func Class(name string) Matcher { return class{name} }

func (m class) Match(s *goquery.Selection) bool {
	v, ok := s.Attr("class")
	if !ok {
		return false
	}
	if v == m.name {
		return true
	}
	return slices.Contains(strings.Fields(v), m.name)
}

func (m class) String() string { return fmt.Sprintf("[class~=%q]", m.name) }

type classSet struct{ names []string }

// ClassSet matches elements whose set of class tokens is exactly names,
// regardless of order or repetition.
func ClassSet(names ...string) Matcher {
	set := slices.Clone(names)
	slices.Sort(set)
	return classSet{slices.Compact(set)}
}

func (m classSet) Match(s *goquery.Selection) bool {
	v, ok := s.Attr("class")
	if !ok {
		return false
	}
	tokens := strings.Fields(v)
	slices.Sort(tokens)
	return slices.Equal(slices.Compact(tokens), m.names)
}

func (m classSet) String() string {
	return fmt.Sprintf("[class=%q]", strings.Join(m.names, " "))
}
