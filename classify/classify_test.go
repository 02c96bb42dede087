package classify

import (
	"testing"
)

func TestParseStyle(t *testing.T) {
	s := ParseStyle("rounded=1;whiteSpace=wrap;html=1;fillColor=#DAE8FC")

	if s.Empty() {
		t.Fatal("ParseStyle() returned empty style for non-empty input")
	}
	if got := s.Value("rounded"); got != "1" {
		t.Errorf("Value(rounded) = %q, want %q", got, "1")
	}
	if got := s.Value("fillcolor"); got != "#dae8fc" {
		t.Errorf("Value(fillcolor) = %q, want %q", got, "#dae8fc")
	}
	if got := s.Value("missing"); got != "" {
		t.Errorf("Value(missing) = %q, want empty", got)
	}
}

func TestParseStyle_Flags(t *testing.T) {
	s := ParseStyle("ellipse;dashed;html=1")

	if !s.Flag("ellipse") {
		t.Error("Flag(ellipse) = false, want true")
	}
	if !s.Flag("dashed") {
		t.Error("Flag(dashed) = false, want true")
	}
	if s.Flag("html") {
		t.Error("Flag(html) = true for key=value token, want false")
	}
}

func TestParseStyle_CaseInsensitive(t *testing.T) {
	s := ParseStyle("SwimLane;StartSize=20")

	if !s.Contains("swimlane") {
		t.Error("Contains(swimlane) = false for mixed-case input")
	}
	if got := s.Value("startsize"); got != "20" {
		t.Errorf("Value(startsize) = %q, want %q", got, "20")
	}
}

func TestParseStyle_Empty(t *testing.T) {
	if !ParseStyle("").Empty() {
		t.Error("ParseStyle(\"\").Empty() = false, want true")
	}
	if !ParseStyle("   ").Empty() {
		t.Error("ParseStyle on blank input not empty")
	}
}

func TestShapeOf(t *testing.T) {
	tests := []struct {
		style string
		want  ShapeType
	}{
		{"swimlane;startSize=20", ShapeSwimlane},
		{"rhombus;whiteSpace=wrap", ShapeDecision},
		{"ellipse;shape=doubleEllipse", ShapeStartEnd},
		{"ellipse;whiteSpace=wrap", ShapeEllipse},
		{"shape=cylinder3;whiteSpace=wrap", ShapeDatabase},
		{"shape=cloud;whiteSpace=wrap", ShapeCloud},
		{"shape=process;whiteSpace=wrap", ShapeProcess},
		{"shape=mxgraph.bpmn.task", ShapeBPMN},
		{"shape=image;image=img/lib/aws.svg", ShapeIcon},
		{"shape=hexagon", ShapeHexagon},
		{"shape=parallelogram", ShapeParallelogram},
		{"shape=document", ShapeDocument},
		{"shape=callout", ShapeCallout},
		{"shape=note", ShapeNote},
		{"text;html=1", ShapeText},
		{"group", ShapeGroup},
		{"rounded=1;whiteSpace=wrap", ShapeRounded},
		{"whiteSpace=wrap;html=1", ShapeGeneric},
		{"", ShapeGeneric},
	}

	for _, tt := range tests {
		if got := ShapeOf(tt.style); got != tt.want {
			t.Errorf("ShapeOf(%q) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

// Several family substrings can co-occur in one descriptor; the earlier
// rule must win.
func TestShapeOf_Precedence(t *testing.T) {
	tests := []struct {
		style string
		want  ShapeType
	}{
		{"swimlane;rhombus", ShapeSwimlane},
		{"rhombus;ellipse", ShapeDecision},
		{"shape=doubleEllipse;ellipse", ShapeStartEnd},
		{"ellipse;shape=cloud", ShapeEllipse},
		{"shape=cylinder;text", ShapeDatabase},
		{"rounded=1;text", ShapeText},
	}

	for _, tt := range tests {
		if got := ShapeOf(tt.style); got != tt.want {
			t.Errorf("ShapeOf(%q) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestRelationOf(t *testing.T) {
	tests := []struct {
		style string
		want  RelationType
	}{
		{"", RelationFlow},
		{"edgeStyle=orthogonalEdgeStyle;dashed=1", RelationDependency},
		{"endArrow=block;endFill=0", RelationInheritance},
		{"endArrow=block;endFill=1", RelationFlow},
		{"endArrow=diamond;endFill=1", RelationComposition},
		{"endArrow=diamondThin", RelationComposition},
		{"endArrow=open;endFill=0", RelationAggregation},
		{"edgeStyle=orthogonalEdgeStyle;html=1", RelationAssociation},
	}

	for _, tt := range tests {
		if got := RelationOf(tt.style); got != tt.want {
			t.Errorf("RelationOf(%q) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

// The dashed rule is checked first, so a dashed open-arrow edge classifies
// as dependency even though a dedicated async rule exists further down.
func TestRelationOf_DashedWins(t *testing.T) {
	if got := RelationOf("endArrow=open;dashed=1"); got != RelationDependency {
		t.Errorf("RelationOf(dashed open arrow) = %v, want %v", got, RelationDependency)
	}
}
