package validator

import (
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var websiteRegex = regexp.MustCompile(`^(https?://)?([a-zA-Z0-9]+(-?[a-zA-Z0-9])*\.)+\w{2,}(/\S*)?$`)

// fold returns the caseless form of s. A Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

func textRule(c Constraint, check func(string) bool) Rule[string] {
	return Rule[string]{Constraint: constant[string](c), Check: check}
}

func IsEmpty() Rule[string] {
	return textRule(Empty{}, func(v string) bool { return v == "" })
}

func IsNotEmpty() Rule[string] {
	return textRule(NotEmpty{}, func(v string) bool { return v != "" })
}

// IsBlank requires the string to be empty or whitespace only.
func IsBlank() Rule[string] {
	return textRule(Blank{}, func(v string) bool { return strings.TrimSpace(v) == "" })
}

func IsNotBlank() Rule[string] {
	return textRule(NotBlank{}, func(v string) bool { return strings.TrimSpace(v) != "" })
}

func IsEqualToIgnoringCase(value string) Rule[string] {
	return textRule(Equals{Value: value}, func(v string) bool { return fold(v) == fold(value) })
}

func IsNotEqualToIgnoringCase(value string) Rule[string] {
	return textRule(NotEquals{Value: value}, func(v string) bool { return fold(v) != fold(value) })
}

func IsInIgnoringCase(values ...string) Rule[string] {
	return textRule(In{Values: values}, func(v string) bool { return containsFolded(values, v) })
}

func IsNotInIgnoringCase(values ...string) Rule[string] {
	return textRule(NotIn{Values: values}, func(v string) bool { return !containsFolded(values, v) })
}

func containsFolded(values []string, v string) bool {
	folded := fold(v)
	return slices.ContainsFunc(values, func(e string) bool { return fold(e) == folded })
}

// HasSize bounds the length in runes. Use NoMin or NoMax for an open bound.
func HasSize(minimum, maximum int) Rule[string] {
	return textRule(Size{Min: minimum, Max: maximum}, func(v string) bool {
		return withinBounds(utf8.RuneCountInString(v), minimum, maximum)
	})
}

func HasMinSize(minimum int) Rule[string] { return HasSize(minimum, NoMax) }

func HasMaxSize(maximum int) Rule[string] { return HasSize(NoMin, maximum) }

// Substring rules. The IgnoringCase variants compare caseless forms.

func ContainsText(value string) Rule[string] {
	return textRule(Contains{Value: value}, func(v string) bool { return strings.Contains(v, value) })
}

func ContainsTextIgnoringCase(value string) Rule[string] {
	return textRule(Contains{Value: value}, func(v string) bool { return strings.Contains(fold(v), fold(value)) })
}

func ContainsAllText(values ...string) Rule[string] {
	return textRule(ContainsAll{Values: values}, func(v string) bool { return containsAll(v, values, identity) })
}

func ContainsAllTextIgnoringCase(values ...string) Rule[string] {
	return textRule(ContainsAll{Values: values}, func(v string) bool { return containsAll(v, values, fold) })
}

func ContainsAnyText(values ...string) Rule[string] {
	return textRule(ContainsAny{Values: values}, func(v string) bool { return containsAny(v, values, identity) })
}

func ContainsAnyTextIgnoringCase(values ...string) Rule[string] {
	return textRule(ContainsAny{Values: values}, func(v string) bool { return containsAny(v, values, fold) })
}

func DoesNotContainText(value string) Rule[string] {
	return textRule(NotContain{Value: value}, func(v string) bool { return !strings.Contains(v, value) })
}

func DoesNotContainTextIgnoringCase(value string) Rule[string] {
	return textRule(NotContain{Value: value}, func(v string) bool { return !strings.Contains(fold(v), fold(value)) })
}

// DoesNotContainAllText passes unless every value is contained.
func DoesNotContainAllText(values ...string) Rule[string] {
	return textRule(NotContainAll{Values: values}, func(v string) bool { return !containsAll(v, values, identity) })
}

func DoesNotContainAllTextIgnoringCase(values ...string) Rule[string] {
	return textRule(NotContainAll{Values: values}, func(v string) bool { return !containsAll(v, values, fold) })
}

// DoesNotContainAnyText passes when no value is contained.
func DoesNotContainAnyText(values ...string) Rule[string] {
	return textRule(NotContainAny{Values: values}, func(v string) bool { return !containsAny(v, values, identity) })
}

func DoesNotContainAnyTextIgnoringCase(values ...string) Rule[string] {
	return textRule(NotContainAny{Values: values}, func(v string) bool { return !containsAny(v, values, fold) })
}

func identity(s string) string { return s }

func containsAll(v string, values []string, norm func(string) string) bool {
	v = norm(v)
	for _, e := range values {
		if !strings.Contains(v, norm(e)) {
			return false
		}
	}
	return true
}

func containsAny(v string, values []string, norm func(string) string) bool {
	v = norm(v)
	for _, e := range values {
		if strings.Contains(v, norm(e)) {
			return true
		}
	}
	return false
}

func HasPrefix(prefix string) Rule[string] {
	return textRule(StartsWith{Prefix: prefix}, func(v string) bool { return strings.HasPrefix(v, prefix) })
}

func HasPrefixIgnoringCase(prefix string) Rule[string] {
	return textRule(StartsWith{Prefix: prefix}, func(v string) bool { return strings.HasPrefix(fold(v), fold(prefix)) })
}

func DoesNotHavePrefix(prefix string) Rule[string] {
	return textRule(NotStartWith{Prefix: prefix}, func(v string) bool { return !strings.HasPrefix(v, prefix) })
}

func DoesNotHavePrefixIgnoringCase(prefix string) Rule[string] {
	return textRule(NotStartWith{Prefix: prefix}, func(v string) bool { return !strings.HasPrefix(fold(v), fold(prefix)) })
}

func HasSuffix(suffix string) Rule[string] {
	return textRule(EndsWith{Suffix: suffix}, func(v string) bool { return strings.HasSuffix(v, suffix) })
}

func HasSuffixIgnoringCase(suffix string) Rule[string] {
	return textRule(EndsWith{Suffix: suffix}, func(v string) bool { return strings.HasSuffix(fold(v), fold(suffix)) })
}

func DoesNotHaveSuffix(suffix string) Rule[string] {
	return textRule(NotEndWith{Suffix: suffix}, func(v string) bool { return !strings.HasSuffix(v, suffix) })
}

func DoesNotHaveSuffixIgnoringCase(suffix string) Rule[string] {
	return textRule(NotEndWith{Suffix: suffix}, func(v string) bool { return !strings.HasSuffix(fold(v), fold(suffix)) })
}

// IsMatching requires re to match the whole string.
func IsMatching(re *regexp.Regexp) Rule[string] {
	whole := anchored(re)
	return textRule(Matches{Pattern: re.String()}, whole.MatchString)
}

func IsNotMatching(re *regexp.Regexp) Rule[string] {
	whole := anchored(re)
	return textRule(NotMatch{Pattern: re.String()}, func(v string) bool { return !whole.MatchString(v) })
}

// ContainsMatch requires re to match somewhere in the string.
func ContainsMatch(re *regexp.Regexp) Rule[string] {
	return textRule(ContainsRegex{Pattern: re.String()}, re.MatchString)
}

func DoesNotContainMatch(re *regexp.Regexp) Rule[string] {
	return textRule(NotContainRegex{Pattern: re.String()}, func(v string) bool { return !re.MatchString(v) })
}

func anchored(re *regexp.Regexp) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + re.String() + `)$`)
}

// Character class rules. The positive forms require a non-empty string made only of the class;
// the negative forms pass whenever the positive one fails.

func IsLetter() Rule[string] {
	return textRule(Letter{}, func(v string) bool { return only(v, unicode.IsLetter) })
}

func IsNotLetter() Rule[string] {
	return textRule(NotLetter{}, func(v string) bool { return !only(v, unicode.IsLetter) })
}

func IsDigit() Rule[string] {
	return textRule(Digit{}, func(v string) bool { return only(v, unicode.IsDigit) })
}

func IsNotDigit() Rule[string] {
	return textRule(NotDigit{}, func(v string) bool { return !only(v, unicode.IsDigit) })
}

func IsLetterOrDigit() Rule[string] {
	return textRule(LetterOrDigit{}, func(v string) bool { return only(v, isLetterOrDigit) })
}

func IsNotLetterOrDigit() Rule[string] {
	return textRule(NotLetterOrDigit{}, func(v string) bool { return !only(v, isLetterOrDigit) })
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func only(v string, class func(rune) bool) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if !class(r) {
			return false
		}
	}
	return true
}

// IsUpperCase requires the string to be unchanged by upper-casing.
func IsUpperCase() Rule[string] {
	return textRule(UpperCase{}, func(v string) bool { return cases.Upper(language.Und).String(v) == v })
}

// IsLowerCase requires the string to be unchanged by lower-casing.
func IsLowerCase() Rule[string] {
	return textRule(LowerCase{}, func(v string) bool { return cases.Lower(language.Und).String(v) == v })
}

// IsEmail requires a bare address (no display name) with a dotted domain.
func IsEmail() Rule[string] {
	return textRule(Email{}, isEmail)
}

func isEmail(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}

	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Name != "" || addr.Address != v {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels
	if !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

// IsWebsite requires a host name with an optional http(s) scheme and path.
func IsWebsite() Rule[string] {
	return textRule(Website{}, websiteRegex.MatchString)
}
