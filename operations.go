package graphia

import (
	"fmt"
)

// Operation names the read operations exposed to a dispatching caller.
type Operation string

const (
	OpOverview      Operation = "overview"
	OpComponents    Operation = "components"
	OpTextInventory Operation = "text_inventory"
	OpContainers    Operation = "containers"
	OpRelationships Operation = "relationships"
	OpHierarchy     Operation = "hierarchy"
)

// Request describes one extraction request: a diagram source, an
// operation, and the optional page filter and result cap.
type Request struct {
	Source     string    // Path to the diagram file
	Op         Operation // Operation to perform
	Page       string    // Optional page-name filter
	MaxResults int       // Optional result cap; 0 means unlimited
}

// Do executes a Request and returns the operation's structured result.
// This is the entry point for callers that dispatch by operation name
// rather than through the fluent API. A Request naming an operation Do
// does not implement fails immediately with ErrUnknownOperation.
//
// The result is one of the operation result types: Overview,
// ComponentList, []TextEntry, []Container, RelationshipList, or
// []HierarchyPage.
//
// Example:
//
//	result, warnings, err := graphia.Do(graphia.Request{
//	    Source: "diagram.drawio",
//	    Op:     graphia.OpRelationships,
//	    Page:   "Backend",
//	})
func Do(req Request) (interface{}, []Warning, error) {
	ext := Open(req.Source)
	if req.Page != "" {
		ext = ext.Page(req.Page)
	}
	if req.MaxResults > 0 {
		ext = ext.MaxResults(req.MaxResults)
	}

	switch req.Op {
	case OpOverview:
		return ext.Overview()
	case OpComponents:
		return ext.Components()
	case OpTextInventory:
		return ext.TextInventory()
	case OpContainers:
		return ext.Containers()
	case OpRelationships:
		return ext.Relationships()
	case OpHierarchy:
		return ext.Hierarchy()
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Op)
	}
}
