package qbgen

import (
	"strings"
	"unicode"

	"github.com/guardql/guardql/guard"
)

// splitName splits a string on hyphens and underscores.
func splitName(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
}

// ToPascalCase transforms a kebab-case or snake_case string into PascalCase.
func ToPascalCase(name string) string {
	parts := splitName(name)
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		for _, r := range runes[1:] {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ToSnakeCase transforms a PascalCase or camelCase string into snake_case.
// Acronym runs stay together: UserID becomes user_id, APIKey becomes api_key.
func ToSnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			startsWord := i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if startsWord {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		case r == '-':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CommonAcronyms defines a set of common abbreviations that should be
// fully uppercased when generating Go names.
var CommonAcronyms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"uuid": "UUID",
	"api":  "API",
	"http": "HTTP",
	"json": "JSON",
	"sql":  "SQL",
}

// ToPascalCaseAcronyms transforms a string into PascalCase while preserving
// the casing of common Go acronyms.
func ToPascalCaseAcronyms(name string) string {
	parts := splitName(name)
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		if acronym, ok := CommonAcronyms[lower]; ok {
			b.WriteString(acronym)
			continue
		}
		runes := []rune(lower)
		b.WriteRune(unicode.ToUpper(runes[0]))
		for _, r := range runes[1:] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// opSuffixes maps catalog operations to generated method name suffixes.
var opSuffixes = map[guard.Op]string{
	guard.OpEq:      "Eq",
	guard.OpNe:      "Ne",
	guard.OpLt:      "Lt",
	guard.OpLte:     "Lte",
	guard.OpGt:      "Gt",
	guard.OpGte:     "Gte",
	guard.OpLike:    "Like",
	guard.OpILike:   "ILike",
	guard.OpIn:      "In",
	guard.OpBetween: "Between",
}

// OpSuffix returns the method name suffix for a catalog operation, e.g.
// "Eq" so that field "id" + op eq generates IDEq.
func OpSuffix(op guard.Op) string {
	return opSuffixes[op]
}
