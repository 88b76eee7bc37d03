package evaluator

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// knownModules are the modules whose qualified calls the evaluator
// recognizes. A call into one of these before its import line has been
// matched is the fail-fast missing-import case.
var knownModules = map[string]bool{
	"math":     true,
	"random":   true,
	"datetime": true,
}

// missingImportError is the recognized pedagogical error for using a
// module before importing it. Its text is the output line.
type missingImportError struct {
	module string
}

func (e missingImportError) Error() string {
	return fmt.Sprintf("Error: you need to 'import %s' first!", e.module)
}

// evalModuleCall evaluates a module-qualified call such as math.sqrt(16)
// or random.randint(1, 6). It returns ok=false when the call is not a
// recognized shape (the line is then ignored), and a missingImportError
// when the module is known but not yet imported.
func evalModuleCall(env *Env, module, fn, args string) (Value, string, bool, error) {
	if !knownModules[module] {
		return Value{}, "", false, nil
	}
	if !env.Imported(module) {
		return Value{}, "", false, missingImportError{module: module}
	}

	event := "call:" + module + "." + fn
	argv := splitTopLevel(args)

	switch module + "." + fn {
	case "math.sqrt":
		if v, ok := singleNumber(env, args); ok && v.Num >= 0 {
			return FloatValue(math.Sqrt(v.Num)), event, true, nil
		}
	case "math.pow":
		if a, b, ok := twoNumbers(env, argv); ok {
			return FloatValue(math.Pow(a.Num, b.Num)), event, true, nil
		}
	case "math.floor":
		if v, ok := singleNumber(env, args); ok {
			return IntValue(int(math.Floor(v.Num))), event, true, nil
		}
	case "math.ceil":
		if v, ok := singleNumber(env, args); ok {
			return IntValue(int(math.Ceil(v.Num))), event, true, nil
		}
	case "random.randint":
		if a, b, ok := twoNumbers(env, argv); ok && a.IsInt && b.IsInt && a.Num <= b.Num {
			lo, hi := int(a.Num), int(b.Num)
			return IntValue(lo + rand.Intn(hi-lo+1)), event, true, nil
		}
	case "random.uniform":
		if a, b, ok := twoNumbers(env, argv); ok && a.Num <= b.Num {
			return FloatValue(a.Num + rand.Float64()*(b.Num-a.Num)), event, true, nil
		}
	case "random.choice":
		if v, ok := evalOperand(env, args); ok && v.Kind == KindList && len(v.List) > 0 {
			return v.List[rand.Intn(len(v.List))], event, true, nil
		}
	}

	return Value{}, "", false, nil
}

// nowValue builds the object tracked for datetime.datetime.now()
func nowValue() Value {
	now := time.Now()
	return Value{
		Kind:    KindObject,
		Display: now.Format("2006-01-02 15:04:05.000000"),
		Attrs: map[string]Value{
			"year":   IntValue(now.Year()),
			"month":  IntValue(int(now.Month())),
			"day":    IntValue(now.Day()),
			"hour":   IntValue(now.Hour()),
			"minute": IntValue(now.Minute()),
			"second": IntValue(now.Second()),
		},
	}
}

// evalRound applies Python's round(): one argument rounds half-to-even to
// an integer, two arguments round to the given number of decimal places.
func evalRound(env *Env, args string) (Value, bool) {
	argv := splitTopLevel(args)
	switch len(argv) {
	case 1:
		if v, ok := evalNumberOperand(env, argv[0]); ok {
			return IntValue(int(math.RoundToEven(v.Num))), true
		}
	case 2:
		v, ok := evalNumberOperand(env, argv[0])
		n, ok2 := evalNumberOperand(env, argv[1])
		if ok && ok2 && n.IsInt && n.Num >= 0 && n.Num <= 15 {
			shift := math.Pow(10, n.Num)
			return FloatValue(math.Round(v.Num*shift) / shift), true
		}
	}
	return Value{}, false
}

func singleNumber(env *Env, args string) (Value, bool) {
	return evalNumberOperand(env, args)
}

func twoNumbers(env *Env, argv []string) (Value, Value, bool) {
	if len(argv) != 2 {
		return Value{}, Value{}, false
	}
	a, ok := evalNumberOperand(env, argv[0])
	if !ok {
		return Value{}, Value{}, false
	}
	b, ok := evalNumberOperand(env, argv[1])
	if !ok {
		return Value{}, Value{}, false
	}
	return a, b, true
}
