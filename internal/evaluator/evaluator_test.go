package evaluator

import (
	"strconv"
	"strings"
	"testing"
)

func run(t *testing.T, source string) Result {
	t.Helper()
	return Run(source, DefaultManifest())
}

func TestPrintStringLiterals(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "double quotes", source: `print("Hello, world!")`, want: []string{"Hello, world!"}},
		{name: "single quotes", source: `print('hi there')`, want: []string{"hi there"}},
		{name: "empty string", source: `print("")`, want: []string{""}},
		{name: "two prints in order", source: "print(\"one\")\nprint(\"two\")", want: []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.source)
			if len(got.Lines) != len(tt.want) {
				t.Fatalf("got %d lines %v, want %d", len(got.Lines), got.Lines, len(tt.want))
			}
			for i := range tt.want {
				if got.Lines[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got.Lines[i], tt.want[i])
				}
			}
		})
	}
}

func TestBlankAndCommentLinesAreSkipped(t *testing.T) {
	source := "\n# a comment\n\nprint(\"kept\")\n   # indented comment\n"
	got := run(t, source)
	if len(got.Lines) != 1 || got.Lines[0] != "kept" {
		t.Errorf("got %v, want [kept]", got.Lines)
	}
}

func TestUnrecognizedInputYieldsPlaceholder(t *testing.T) {
	got := run(t, "this is not python\nwhile True banana\n12 + )")
	if len(got.Lines) != 0 {
		t.Fatalf("garbage produced output: %v", got.Lines)
	}
	if got.Output() != Placeholder {
		t.Errorf("Output() = %q, want placeholder", got.Output())
	}
}

func TestVariableAssignmentAndPrint(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "string variable", source: "name = \"Ada\"\nprint(name)", want: "Ada"},
		{name: "int variable", source: "age = 9\nprint(age)", want: "9"},
		{name: "float variable", source: "pi = 3.14\nprint(pi)", want: "3.14"},
		{name: "list variable", source: "pets = ['cat', 'dog']\nprint(pets)", want: "['cat', 'dog']"},
		{name: "dict variable", source: "scores = {'ada': 10, 'bob': 7}\nprint(scores)", want: "{'ada': 10, 'bob': 7}"},
		{name: "reassignment wins", source: "x = 1\nx = 2\nprint(x)", want: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.source)
			if got.Output() != tt.want {
				t.Errorf("Output() = %q, want %q", got.Output(), tt.want)
			}
		})
	}
}

func TestUndefinedVariableIsNameError(t *testing.T) {
	got := run(t, "print(mystery)")
	want := "NameError: name 'mystery' is not defined"
	if got.Output() != want {
		t.Errorf("Output() = %q, want %q", got.Output(), want)
	}
}

func TestFStringInterpolation(t *testing.T) {
	source := "name = \"Ada\"\nage = 9\nprint(f\"{name} is {age}!\")"
	got := run(t, source)
	if got.Output() != "Ada is 9!" {
		t.Errorf("Output() = %q, want %q", got.Output(), "Ada is 9!")
	}

	got = run(t, `print(f"hello {nobody}")`)
	want := "NameError: name 'nobody' is not defined"
	if got.Output() != want {
		t.Errorf("Output() = %q, want %q", got.Output(), want)
	}
}

func TestIndexAccess(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "list index", source: "pets = ['cat', 'dog', 'fox']\nprint(pets[1])", want: "dog"},
		{name: "negative index", source: "pets = ['cat', 'dog', 'fox']\nprint(pets[-1])", want: "fox"},
		{name: "index out of range", source: "pets = ['cat']\nprint(pets[5])", want: "IndexError: list index out of range"},
		{name: "dict key", source: "scores = {'ada': 10}\nprint(scores[\"ada\"])", want: "10"},
		{name: "missing key", source: "scores = {'ada': 10}\nprint(scores['bob'])", want: "KeyError: 'bob'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.source)
			if got.Output() != tt.want {
				t.Errorf("Output() = %q, want %q", got.Output(), tt.want)
			}
		})
	}
}

func TestMathSqrtRoundTrip(t *testing.T) {
	got := run(t, "import math\nprint(math.sqrt(16))")
	if got.Output() != "4.0" {
		t.Errorf("Output() = %q, want %q", got.Output(), "4.0")
	}
}

func TestMissingImportFailsFast(t *testing.T) {
	want := "Error: you need to 'import math' first!"

	got := run(t, "print(math.sqrt(16))")
	if got.Output() != want {
		t.Errorf("Output() = %q, want %q", got.Output(), want)
	}

	// The scan stops at the error: later lines contribute nothing, even a
	// later import of the same module
	got = run(t, "print(math.sqrt(16))\nimport math\nprint(\"after\")")
	if len(got.Lines) != 1 || got.Lines[0] != want {
		t.Errorf("got %v, want exactly [%q]", got.Lines, want)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "two decimal places", source: "print(round(3.14159, 2))", want: "3.14"},
		{name: "single argument rounds to int", source: "print(round(3.7))", want: "4"},
		{name: "half rounds to even", source: "print(round(2.5))", want: "2"},
		{name: "round a variable", source: "pi = 3.14159\nprint(round(pi, 3))", want: "3.142"},
		{name: "assigned round", source: "x = round(9.81, 1)\nprint(x)", want: "9.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.source)
			if got.Output() != tt.want {
				t.Errorf("Output() = %q, want %q", got.Output(), tt.want)
			}
		})
	}
}

func TestMathCalls(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "pow", source: "import math\nprint(math.pow(2, 10))", want: "1024.0"},
		{name: "floor", source: "import math\nprint(math.floor(3.9))", want: "3"},
		{name: "ceil", source: "import math\nprint(math.ceil(3.1))", want: "4"},
		{name: "sqrt via variable", source: "import math\nx = 25\nprint(math.sqrt(x))", want: "5.0"},
		{name: "assign then print", source: "import math\nr = math.sqrt(81)\nprint(r)", want: "9.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.source)
			if got.Output() != tt.want {
				t.Errorf("Output() = %q, want %q", got.Output(), tt.want)
			}
		})
	}
}

func TestRandomCallsStayInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		got := run(t, "import random\nprint(random.randint(1, 6))")
		n, err := strconv.Atoi(got.Output())
		if err != nil {
			t.Fatalf("randint output %q is not an integer", got.Output())
		}
		if n < 1 || n > 6 {
			t.Fatalf("randint(1, 6) produced %d", n)
		}
	}

	for i := 0; i < 50; i++ {
		got := run(t, "import random\nprint(random.uniform(0, 1))")
		f, err := strconv.ParseFloat(got.Output(), 64)
		if err != nil {
			t.Fatalf("uniform output %q is not a float", got.Output())
		}
		if f < 0 || f > 1 {
			t.Fatalf("uniform(0, 1) produced %f", f)
		}
	}

	members := map[string]bool{"cat": true, "dog": true, "fox": true}
	for i := 0; i < 50; i++ {
		got := run(t, "import random\npets = ['cat', 'dog', 'fox']\nprint(random.choice(pets))")
		if !members[got.Output()] {
			t.Fatalf("choice produced %q, not a list member", got.Output())
		}
	}
}

func TestDatetimeNowAttributes(t *testing.T) {
	got := run(t, "import datetime\nnow = datetime.datetime.now()\nprint(now.year)")
	year, err := strconv.Atoi(got.Output())
	if err != nil {
		t.Fatalf("now.year output %q is not an integer", got.Output())
	}
	if year < 2020 || year > 2100 {
		t.Errorf("now.year = %d, outside plausible range", year)
	}

	got = run(t, "now = datetime.datetime.now()")
	want := "Error: you need to 'import datetime' first!"
	if got.Output() != want {
		t.Errorf("Output() = %q, want %q", got.Output(), want)
	}
}

func TestMalformedPrintIsSyntaxError(t *testing.T) {
	got := run(t, `print("oops`)
	if got.Output() != "SyntaxError: invalid syntax" {
		t.Errorf("Output() = %q, want SyntaxError", got.Output())
	}
}

func TestManifestRestrictsShapes(t *testing.T) {
	// Lesson 1 recognizes only literal prints; assignments fall through
	m := ForLesson(1)
	got := Run("x = 5\nprint(\"hi\")", m)
	if got.Output() != "hi" {
		t.Errorf("Output() = %q, want %q", got.Output(), "hi")
	}
	if !got.Flags["printed_message"] {
		t.Error("printed_message flag not set")
	}
}

func TestManifestFlags(t *testing.T) {
	m := ForLesson(76)
	got := Run("import math\nprint(math.sqrt(49))", m)

	if got.Output() != "7.0" {
		t.Errorf("Output() = %q, want 7.0", got.Output())
	}
	if !got.Flags["imported_math"] {
		t.Error("imported_math flag not set")
	}
	if !got.Flags["used_sqrt"] {
		t.Error("used_sqrt flag not set")
	}

	got = Run(`print("no math here")`, m)
	if got.Flags["imported_math"] || got.Flags["used_sqrt"] {
		t.Errorf("flags set without matching events: %v", got.Flags)
	}
}

func TestRunNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"print(",
		"print()",
		"x =",
		"= 5",
		"[1, 2, 3",
		"{'a': }",
		strings.Repeat("print(\"a\")\n", 500),
		"import",
		"pets[0]",
		"print(pets[abc])",
	}
	for _, src := range inputs {
		// a panic fails the test run outright
		_ = Run(src, DefaultManifest())
	}
}
