package evaluator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ShapeID names one recognized statement shape
type ShapeID string

const (
	ShapeImport           ShapeID = "import"
	ShapePrintString      ShapeID = "print-string"
	ShapePrintFString     ShapeID = "print-fstring"
	ShapePrintModuleCall  ShapeID = "print-module-call"
	ShapePrintRound       ShapeID = "print-round"
	ShapePrintAttribute   ShapeID = "print-attribute"
	ShapePrintIndex       ShapeID = "print-index"
	ShapePrintVariable    ShapeID = "print-variable"
	ShapeAssignNow        ShapeID = "assign-now"
	ShapeAssignModuleCall ShapeID = "assign-module-call"
	ShapeAssignRound      ShapeID = "assign-round"
	ShapeAssignLiteral    ShapeID = "assign-literal"
	ShapePrintMalformed   ShapeID = "print-malformed"
)

// shape pairs the regexes recognizing a statement form with the function
// applying it. A shape may carry several regexes (single vs double quotes)
// that produce the same submatch layout.
type shape struct {
	id       ShapeID
	patterns []*regexp.Regexp
	apply    func(env *Env, m []string) (lines []string, events []string, err error)
}

func (s shape) match(line string) ([]string, bool) {
	for _, re := range s.patterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return m, true
		}
	}
	return nil, false
}

const ident = `[A-Za-z_][A-Za-z0-9_]*`

var shapes = map[ShapeID]shape{
	ShapeImport: {
		id:       ShapeImport,
		patterns: compile(`^import\s+(` + ident + `)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			env.Import(m[1])
			return nil, []string{"import:" + m[1]}, nil
		},
	},

	ShapePrintString: {
		id: ShapePrintString,
		patterns: compile(
			`^print\(\s*"([^"]*)"\s*\)$`,
			`^print\(\s*'([^']*)'\s*\)$`,
		),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			return []string{m[1]}, []string{"print", "print-string"}, nil
		},
	},

	ShapePrintFString: {
		id: ShapePrintFString,
		patterns: compile(
			`^print\(\s*f"([^"]*)"\s*\)$`,
			`^print\(\s*f'([^']*)'\s*\)$`,
		),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			line, ok := interpolate(env, m[1])
			if !ok {
				return []string{line}, []string{"print"}, nil
			}
			return []string{line}, []string{"print", "fstring"}, nil
		},
	},

	ShapePrintModuleCall: {
		id:       ShapePrintModuleCall,
		patterns: compile(`^print\(\s*(` + ident + `)\.(` + ident + `)\((.*)\)\s*\)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			v, event, ok, err := evalModuleCall(env, m[1], m[2], m[3])
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				return nil, nil, nil
			}
			return []string{v.Format()}, []string{"print", event}, nil
		},
	},

	ShapePrintRound: {
		id:       ShapePrintRound,
		patterns: compile(`^print\(\s*round\((.*)\)\s*\)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			v, ok := evalRound(env, m[1])
			if !ok {
				return nil, nil, nil
			}
			return []string{v.Format()}, []string{"print", "round"}, nil
		},
	},

	ShapePrintAttribute: {
		id:       ShapePrintAttribute,
		patterns: compile(`^print\(\s*(` + ident + `)\.(` + ident + `)\s*\)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			v, ok := env.Get(m[1])
			if !ok {
				return []string{nameError(m[1])}, []string{"print"}, nil
			}
			attr, ok := v.Attrs[m[2]]
			if !ok {
				return nil, nil, nil
			}
			return []string{attr.Format()}, []string{"print", "attribute"}, nil
		},
	},

	ShapePrintIndex: {
		id:       ShapePrintIndex,
		patterns: compile(`^print\(\s*(` + ident + `)\[(.+)\]\s*\)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			v, ok := env.Get(m[1])
			if !ok {
				return []string{nameError(m[1])}, []string{"print"}, nil
			}
			line, ok := indexInto(v, m[2])
			if !ok {
				return nil, nil, nil
			}
			return []string{line}, []string{"print", "index"}, nil
		},
	},

	ShapePrintVariable: {
		id:       ShapePrintVariable,
		patterns: compile(`^print\(\s*(` + ident + `)\s*\)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			v, ok := env.Get(m[1])
			if !ok {
				return []string{nameError(m[1])}, []string{"print"}, nil
			}
			return []string{v.Format()}, []string{"print", "print-variable"}, nil
		},
	},

	ShapeAssignNow: {
		id:       ShapeAssignNow,
		patterns: compile(`^(` + ident + `)\s*=\s*datetime\.datetime\.now\(\s*\)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			if !env.Imported("datetime") {
				return nil, nil, missingImportError{module: "datetime"}
			}
			env.Set(m[1], nowValue())
			return nil, []string{"assign", "call:datetime.now"}, nil
		},
	},

	ShapeAssignModuleCall: {
		id:       ShapeAssignModuleCall,
		patterns: compile(`^(` + ident + `)\s*=\s*(` + ident + `)\.(` + ident + `)\((.*)\)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			v, event, ok, err := evalModuleCall(env, m[2], m[3], m[4])
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				return nil, nil, nil
			}
			env.Set(m[1], v)
			return nil, []string{"assign", event}, nil
		},
	},

	ShapeAssignRound: {
		id:       ShapeAssignRound,
		patterns: compile(`^(` + ident + `)\s*=\s*round\((.*)\)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			v, ok := evalRound(env, m[2])
			if !ok {
				return nil, nil, nil
			}
			env.Set(m[1], v)
			return nil, []string{"assign", "round"}, nil
		},
	},

	ShapeAssignLiteral: {
		id:       ShapeAssignLiteral,
		patterns: compile(`^(` + ident + `)\s*=\s*(.+)$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			v, ok := parseLiteral(m[2])
			if !ok {
				return nil, nil, nil
			}
			env.Set(m[1], v)
			events := []string{"assign"}
			switch v.Kind {
			case KindList:
				events = append(events, "list")
			case KindDict:
				events = append(events, "dict")
			}
			return nil, events, nil
		},
	},

	// A print line that fell through every recognized print form gets the
	// pedagogical syntax error rather than silence
	ShapePrintMalformed: {
		id:       ShapePrintMalformed,
		patterns: compile(`^print\(.*$`),
		apply: func(env *Env, m []string) ([]string, []string, error) {
			return []string{"SyntaxError: invalid syntax"}, []string{"print"}, nil
		},
	},
}

// defaultOrder is the canonical priority order of shapes. More specific
// forms come before the forms that would otherwise swallow them.
var defaultOrder = []ShapeID{
	ShapeImport,
	ShapePrintString,
	ShapePrintFString,
	ShapePrintModuleCall,
	ShapePrintRound,
	ShapePrintAttribute,
	ShapePrintIndex,
	ShapePrintVariable,
	ShapeAssignNow,
	ShapeAssignModuleCall,
	ShapeAssignRound,
	ShapeAssignLiteral,
	ShapePrintMalformed,
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

func nameError(name string) string {
	return fmt.Sprintf("NameError: name '%s' is not defined", name)
}

// fstringVarPattern matches the {variable} holes in an f-string
var fstringVarPattern = regexp.MustCompile(`\{(` + ident + `)\}`)

// interpolate fills {var} holes from the environment. An undefined
// variable turns the whole line into a NameError, matching Python.
func interpolate(env *Env, template string) (string, bool) {
	var missing string
	result := fstringVarPattern.ReplaceAllStringFunc(template, func(hole string) string {
		name := hole[1 : len(hole)-1]
		v, ok := env.Get(name)
		if !ok {
			if missing == "" {
				missing = name
			}
			return hole
		}
		return v.Format()
	})
	if missing != "" {
		return nameError(missing), false
	}
	return result, true
}

// indexInto applies list[int] or dict["key"] access, mirroring Python's
// IndexError/KeyError text for misses
func indexInto(v Value, indexExpr string) (string, bool) {
	indexExpr = strings.TrimSpace(indexExpr)

	if key, ok := unquote(indexExpr); ok {
		if v.Kind != KindDict {
			return "", false
		}
		item, ok := v.Dict[key]
		if !ok {
			return "KeyError: '" + key + "'", true
		}
		return item.Format(), true
	}

	if idx, err := strconv.Atoi(indexExpr); err == nil {
		if v.Kind != KindList {
			return "", false
		}
		if idx < 0 {
			idx += len(v.List)
		}
		if idx < 0 || idx >= len(v.List) {
			return "IndexError: list index out of range", true
		}
		return v.List[idx].Format(), true
	}

	return "", false
}
