package validator

// Text constraints. Patterns are kept as their source string for rendering.

type Empty struct{}

func (Empty) MessageKey() string { return "validation.empty" }
func (Empty) Params() []Param { return nil }

type NotEmpty struct{}

func (NotEmpty) MessageKey() string { return "validation.not_empty" }
func (NotEmpty) Params() []Param { return nil }

type Blank struct{}

func (Blank) MessageKey() string { return "validation.blank" }
func (Blank) Params() []Param { return nil }

type NotBlank struct{}

func (NotBlank) MessageKey() string { return "validation.not_blank" }
func (NotBlank) Params() []Param { return nil }

type Letter struct{}

func (Letter) MessageKey() string { return "validation.letter" }
func (Letter) Params() []Param { return nil }

type NotLetter struct{}

func (NotLetter) MessageKey() string { return "validation.not_letter" }
func (NotLetter) Params() []Param { return nil }

type Digit struct{}

func (Digit) MessageKey() string { return "validation.digit" }
func (Digit) Params() []Param { return nil }

type NotDigit struct{}

func (NotDigit) MessageKey() string { return "validation.not_digit" }
func (NotDigit) Params() []Param { return nil }

type LetterOrDigit struct{}

func (LetterOrDigit) MessageKey() string { return "validation.letter_or_digit" }
func (LetterOrDigit) Params() []Param { return nil }

type NotLetterOrDigit struct{}

func (NotLetterOrDigit) MessageKey() string { return "validation.not_letter_or_digit" }
func (NotLetterOrDigit) Params() []Param { return nil }

type UpperCase struct{}

func (UpperCase) MessageKey() string { return "validation.upper_case" }
func (UpperCase) Params() []Param { return nil }

type LowerCase struct{}

func (LowerCase) MessageKey() string { return "validation.lower_case" }
func (LowerCase) Params() []Param { return nil }

type Matches struct{ Pattern string }

func (Matches) MessageKey() string { return "validation.matches" }
func (c Matches) Params() []Param { return []Param{{Name: "pattern", Value: c.Pattern}} }

type NotMatch struct{ Pattern string }

func (NotMatch) MessageKey() string { return "validation.not_match" }
func (c NotMatch) Params() []Param { return []Param{{Name: "pattern", Value: c.Pattern}} }

type ContainsRegex struct{ Pattern string }

func (ContainsRegex) MessageKey() string { return "validation.contains_regex" }
func (c ContainsRegex) Params() []Param { return []Param{{Name: "pattern", Value: c.Pattern}} }

type NotContainRegex struct{ Pattern string }

func (NotContainRegex) MessageKey() string { return "validation.not_contain_regex" }
func (c NotContainRegex) Params() []Param { return []Param{{Name: "pattern", Value: c.Pattern}} }

type StartsWith struct{ Prefix string }

func (StartsWith) MessageKey() string { return "validation.starts_with" }
func (c StartsWith) Params() []Param { return []Param{{Name: "prefix", Value: c.Prefix}} }

type NotStartWith struct{ Prefix string }

func (NotStartWith) MessageKey() string { return "validation.not_start_with" }
func (c NotStartWith) Params() []Param { return []Param{{Name: "prefix", Value: c.Prefix}} }

type EndsWith struct{ Suffix string }

func (EndsWith) MessageKey() string { return "validation.ends_with" }
func (c EndsWith) Params() []Param { return []Param{{Name: "suffix", Value: c.Suffix}} }

type NotEndWith struct{ Suffix string }

func (NotEndWith) MessageKey() string { return "validation.not_end_with" }
func (c NotEndWith) Params() []Param { return []Param{{Name: "suffix", Value: c.Suffix}} }

type Email struct{}

func (Email) MessageKey() string { return "validation.email" }
func (Email) Params() []Param { return nil }

type Website struct{}

func (Website) MessageKey() string { return "validation.website" }
func (Website) Params() []Param { return nil }

type UUID struct{}

func (UUID) MessageKey() string { return "validation.uuid" }
func (UUID) Params() []Param { return nil }
