package evaluator

import (
	"strconv"
	"strings"
)

// parseLiteral recognizes the literal forms lessons teach: numbers, quoted
// strings, list literals and dict literals. Anything else is not a literal.
func parseLiteral(s string) (Value, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, false
	}

	if inner, ok := unquote(s); ok {
		return StringValue(inner), true
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumberValue(float64(n), true), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FloatValue(f), true
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return parseListLiteral(s)
	}
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return parseDictLiteral(s)
	}

	return Value{}, false
}

// unquote strips a matching pair of single or double quotes. Embedded
// quotes of the same kind are not supported; lessons never need them.
func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	quote := s[0]
	if quote != '"' && quote != '\'' {
		return "", false
	}
	if s[len(s)-1] != quote {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if strings.ContainsRune(inner, rune(quote)) {
		return "", false
	}
	return inner, true
}

func parseListLiteral(s string) (Value, bool) {
	inner := strings.TrimSpace(s[1 : len(s)-1])
	v := Value{Kind: KindList}
	if inner == "" {
		return v, true
	}
	for _, part := range splitTopLevel(inner) {
		item, ok := parseLiteral(part)
		if !ok {
			return Value{}, false
		}
		v.List = append(v.List, item)
	}
	return v, true
}

func parseDictLiteral(s string) (Value, bool) {
	inner := strings.TrimSpace(s[1 : len(s)-1])
	v := Value{Kind: KindDict, Dict: make(map[string]Value)}
	if inner == "" {
		return v, true
	}
	for _, part := range splitTopLevel(inner) {
		colon := indexTopLevel(part, ':')
		if colon < 0 {
			return Value{}, false
		}
		key, ok := unquote(strings.TrimSpace(part[:colon]))
		if !ok {
			return Value{}, false
		}
		val, ok := parseLiteral(part[colon+1:])
		if !ok {
			return Value{}, false
		}
		if _, dup := v.Dict[key]; !dup {
			v.DictKeys = append(v.DictKeys, key)
		}
		v.Dict[key] = val
	}
	return v, true
}

// splitTopLevel splits on commas that are not nested inside brackets,
// braces, parentheses or quotes
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[' || c == '{' || c == '(':
			depth++
		case c == ']' || c == '}' || c == ')':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}

// indexTopLevel finds the first unnested, unquoted occurrence of sep
func indexTopLevel(s string, sep byte) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[' || c == '{' || c == '(':
			depth++
		case c == ']' || c == '}' || c == ')':
			depth--
		case c == sep && depth == 0:
			return i
		}
	}
	return -1
}

// evalOperand resolves an argument expression: a literal, or a variable
// already tracked in the environment
func evalOperand(env *Env, s string) (Value, bool) {
	s = strings.TrimSpace(s)
	if v, ok := parseLiteral(s); ok {
		return v, true
	}
	if isIdentifier(s) {
		return env.Get(s)
	}
	return Value{}, false
}

// evalNumberOperand resolves an operand and requires it to be numeric
func evalNumberOperand(env *Env, s string) (Value, bool) {
	v, ok := evalOperand(env, s)
	if !ok || v.Kind != KindNumber {
		return Value{}, false
	}
	return v, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		alpha := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if !alpha && !(digit && i > 0) {
			return false
		}
	}
	return true
}
