package evaluator

// FlagRule surfaces an internal match event under a lesson-facing flag
// name. Flags drive the challenge checklists next to the editor
// ("did the learner use math.sqrt?").
type FlagRule struct {
	Name  string
	Event string
}

// Manifest declares which statement shapes one lesson recognizes, in
// priority order, and which flags its checklist wants. Manifests are data:
// every lesson runs through the same engine.
type Manifest struct {
	Shapes []ShapeID
	Flags  []FlagRule
}

// DefaultManifest recognizes every shape in canonical order
func DefaultManifest() Manifest {
	order := make([]ShapeID, len(defaultOrder))
	copy(order, defaultOrder)
	return Manifest{Shapes: order}
}

// lessonManifests narrows or annotates the engine for lessons whose
// checklist needs specific flags. Early lessons see fewer shapes so that
// syntax from later levels stays "unrecognized" rather than accidentally
// working.
var lessonManifests = map[int]Manifest{
	1: {
		Shapes: []ShapeID{ShapePrintString, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "printed_message", Event: "print-string"},
		},
	},
	16: {
		Shapes: []ShapeID{ShapePrintString, ShapePrintVariable, ShapeAssignLiteral, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "made_variable", Event: "assign"},
			{Name: "printed_variable", Event: "print-variable"},
		},
	},
	34: {
		Shapes: []ShapeID{ShapePrintString, ShapePrintFString, ShapePrintVariable, ShapeAssignLiteral, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "used_fstring", Event: "fstring"},
		},
	},
	50: {
		Shapes: []ShapeID{ShapePrintString, ShapePrintIndex, ShapePrintVariable, ShapeAssignLiteral, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "made_list", Event: "list"},
			{Name: "printed_list", Event: "print-variable"},
		},
	},
	51: {
		Shapes: []ShapeID{ShapePrintString, ShapePrintIndex, ShapePrintVariable, ShapeAssignLiteral, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "made_list", Event: "list"},
			{Name: "used_index", Event: "index"},
		},
	},
	63: {
		Shapes: []ShapeID{ShapePrintString, ShapePrintIndex, ShapePrintVariable, ShapeAssignLiteral, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "made_dict", Event: "dict"},
			{Name: "used_key", Event: "index"},
		},
	},
	76: {
		Shapes: []ShapeID{ShapeImport, ShapePrintString, ShapePrintModuleCall, ShapePrintVariable, ShapeAssignModuleCall, ShapeAssignLiteral, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "imported_math", Event: "import:math"},
			{Name: "used_sqrt", Event: "call:math.sqrt"},
		},
	},
	85: {
		Shapes: []ShapeID{ShapeImport, ShapePrintString, ShapePrintModuleCall, ShapePrintVariable, ShapeAssignModuleCall, ShapeAssignLiteral, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "imported_random", Event: "import:random"},
			{Name: "rolled_dice", Event: "call:random.randint"},
		},
	},
	97: {
		Shapes: []ShapeID{ShapeImport, ShapePrintString, ShapePrintAttribute, ShapePrintVariable, ShapeAssignNow, ShapeAssignLiteral, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "imported_datetime", Event: "import:datetime"},
			{Name: "got_now", Event: "call:datetime.now"},
			{Name: "read_attribute", Event: "attribute"},
		},
	},
	109: {
		Shapes: []ShapeID{ShapePrintString, ShapePrintRound, ShapePrintVariable, ShapeAssignRound, ShapeAssignLiteral, ShapePrintMalformed},
		Flags: []FlagRule{
			{Name: "used_round", Event: "round"},
		},
	},
}

// ForLesson returns the manifest for a lesson id, falling back to the
// full default engine for lessons without a dedicated table entry
func ForLesson(lessonID int) Manifest {
	if m, ok := lessonManifests[lessonID]; ok {
		return m
	}
	return DefaultManifest()
}
