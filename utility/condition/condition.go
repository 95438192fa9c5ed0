package condition

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	identifierRegex = regexp.MustCompile(`[a-zA-Z0-9_]+`)
	definedRegex    = regexp.MustCompile(`defined\((.*?)\)`)
)

const (
	OperatorAnd = " && "
	OperatorOr  = " || "
)

func Defined(symbol string) string {
	return "defined(" + symbol + ")"
}

// Depends converts a registry dependency expression (`A+B,C`) into a preprocessor condition.
// Comma is OR, plus is AND, parentheses are kept.
func Depends(expression string) string {
	converted := identifierRegex.ReplaceAllStringFunc(expression, Defined)
	converted = strings.ReplaceAll(converted, ",", OperatorOr)
	return strings.ReplaceAll(converted, "+", OperatorAnd)
}

// AndDepends appends a converted dependency expression to a key.
func AndDepends(key string, expression string) string {
	dependency := Depends(expression)
	if strings.Contains(dependency, strings.TrimSpace(OperatorOr)) {
		dependency = "(" + dependency + ")"
	}
	return key + OperatorAnd + dependency
}

// AndDefined appends one defined() term per comma-separated symbol.
func AndDefined(key string, symbols string) string {
	for _, symbol := range strings.Split(symbols, ",") {
		key += OperatorAnd + Defined(symbol)
	}
	return key
}

func AndSpecVersion(key string, extension string, version int) string {
	upper := cases.Upper(language.Und).String(extension)
	return key + OperatorAnd + upper + "_SPEC_VERSION >= " + strconv.Itoa(version)
}

func Or(keys []string) string {
	return strings.Join(keys, OperatorOr)
}

// Strip removes the defined() wrapper from every symbol.
func Strip(key string) string {
	return definedRegex.ReplaceAllString(key, "$1")
}

// Primary returns the leading symbol of a key, the first && term, else the first || term.
func Primary(key string) string {
	primary := key
	if strings.Contains(key, "&&") {
		primary = strings.TrimSpace(strings.Split(key, "&&")[0])
	} else if strings.Contains(key, "||") {
		primary = strings.TrimSpace(strings.Split(key, "||")[0])
	}
	return Strip(primary)
}
