package core

import "fmt"

type RowKind string

const (
	RowSpecified   RowKind = "specified"
	RowPlaceholder RowKind = "placeholder"
)

// RowKey identifies a display row. A specified row is keyed by its
// (project, sub-project) pair, a placeholder row by its position in the
// placeholder list.
type RowKey struct {
	Kind         RowKind `json:"kind"`
	ProjectID    int     `json:"projectId,omitempty"`
	SubProjectID int     `json:"subProjectId,omitempty"`
	Index        int     `json:"index,omitempty"`
}

func SpecifiedKey(projectID, subProjectID int) RowKey {
	return RowKey{Kind: RowSpecified, ProjectID: projectID, SubProjectID: subProjectID}
}

func PlaceholderKey(index int) RowKey {
	return RowKey{Kind: RowPlaceholder, Index: index}
}

func (k RowKey) IsPlaceholder() bool {
	return k.Kind == RowPlaceholder
}

func (k RowKey) String() string {
	if k.IsPlaceholder() {
		return fmt.Sprintf("placeholder(%d)", k.Index)
	}
	return fmt.Sprintf("specified(%d,%d)", k.ProjectID, k.SubProjectID)
}

type CellKey struct {
	Row  RowKey `json:"row"`
	Date string `json:"date"`
}

// Pair is a (project, sub-project) classification.
type Pair struct {
	ProjectID    int `json:"projectId"`
	SubProjectID int `json:"subProjectId"`
}

func (p Pair) Complete() bool {
	return p.ProjectID > 0 && p.SubProjectID > 0
}

// Placeholder is a user-added row that may still miss its selection.
type Placeholder = Pair
