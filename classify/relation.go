package classify

import "strings"

// RelationType is the classifier's label for a connector cell.
type RelationType string

const (
	RelationDependency  RelationType = "dependency"
	RelationInheritance RelationType = "inheritance"
	RelationFlow        RelationType = "flow"
	RelationComposition RelationType = "composition"
	RelationAsync       RelationType = "async"
	RelationAggregation RelationType = "aggregation"
	RelationAssociation RelationType = "association"
)

// String returns the label as a plain string.
func (t RelationType) String() string { return string(t) }

// Relation classifies an edge's parsed style descriptor into exactly one
// relationship type, first match wins:
//
//	dashed                  → dependency
//	block arrow, unfilled   → inheritance
//	block arrow             → flow
//	diamond arrow           → composition
//	open arrow + dashed     → async (message)
//	open arrow              → aggregation
//
// An edge with no style at all is a plain connector and yields
// RelationFlow; a styled edge matching no rule yields RelationAssociation.
func Relation(s Style) RelationType {
	if s.Empty() {
		return RelationFlow
	}

	end := s.Value("endarrow")
	dashed := s.Value("dashed") == "1" || s.Flag("dashed")

	switch {
	case dashed:
		return RelationDependency
	case end == "block" && s.Value("endfill") == "0":
		return RelationInheritance
	case end == "block":
		return RelationFlow
	case strings.HasPrefix(end, "diamond"):
		return RelationComposition
	case strings.HasPrefix(end, "open") && dashed:
		return RelationAsync
	case strings.HasPrefix(end, "open"):
		return RelationAggregation
	}
	return RelationAssociation
}

// RelationOf is a convenience wrapper classifying a raw style string.
func RelationOf(raw string) RelationType {
	return Relation(ParseStyle(raw))
}
