package classify

// ShapeType is the classifier's label for a non-connector cell.
type ShapeType string

const (
	ShapeSwimlane      ShapeType = "swimlane"
	ShapeDecision      ShapeType = "decision"
	ShapeStartEnd      ShapeType = "start_end"
	ShapeEllipse       ShapeType = "ellipse"
	ShapeDatabase      ShapeType = "database"
	ShapeCloud         ShapeType = "cloud"
	ShapeProcess       ShapeType = "process"
	ShapeBPMN          ShapeType = "bpmn"
	ShapeIcon          ShapeType = "icon"
	ShapeHexagon       ShapeType = "hexagon"
	ShapeParallelogram ShapeType = "parallelogram"
	ShapeDocument      ShapeType = "document"
	ShapeCallout       ShapeType = "callout"
	ShapeNote          ShapeType = "note"
	ShapeText          ShapeType = "text"
	ShapeGroup         ShapeType = "group"
	ShapeRounded       ShapeType = "rounded_rectangle"
	ShapeGeneric       ShapeType = "shape"
)

// String returns the label as a plain string.
func (t ShapeType) String() string { return string(t) }

// shapeRule pairs a predicate with the type it yields. Rules are evaluated
// in order and the first match wins; several substrings can co-occur in one
// descriptor, so the order here is part of the contract.
type shapeRule struct {
	match func(Style) bool
	shape ShapeType
}

func contains(sub string) func(Style) bool {
	return func(s Style) bool { return s.Contains(sub) }
}

var shapeRules = []shapeRule{
	{contains("swimlane"), ShapeSwimlane},
	{contains("rhombus"), ShapeDecision},
	{contains("doubleellipse"), ShapeStartEnd},
	{contains("ellipse"), ShapeEllipse},
	{contains("cylinder"), ShapeDatabase},
	{contains("cloud"), ShapeCloud},
	{contains("process"), ShapeProcess},
	{contains("bpmn"), ShapeBPMN},
	{contains("image"), ShapeIcon},
	{contains("hexagon"), ShapeHexagon},
	{contains("parallelogram"), ShapeParallelogram},
	{contains("document"), ShapeDocument},
	{contains("callout"), ShapeCallout},
	{contains("note"), ShapeNote},
	{contains("text"), ShapeText},
	{contains("group"), ShapeGroup},
	{func(s Style) bool { return s.Value("rounded") == "1" }, ShapeRounded},
}

// Shape classifies a parsed style descriptor into exactly one shape type.
// An empty descriptor, or one matching no rule, yields ShapeGeneric.
func Shape(s Style) ShapeType {
	if s.Empty() {
		return ShapeGeneric
	}
	for _, rule := range shapeRules {
		if rule.match(s) {
			return rule.shape
		}
	}
	return ShapeGeneric
}

// ShapeOf is a convenience wrapper classifying a raw style string.
func ShapeOf(raw string) ShapeType {
	return Shape(ParseStyle(raw))
}
