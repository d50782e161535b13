package models

import "strings"

type Label string

const (
	LabelWorkflowError      Label = "Workflow Error"
	LabelDeprecationWarning Label = "Deprecation Warning"
	LabelUnclassified       Label = "Unclassified"

	// LabelUnrecognized marks model output that is none of the known labels.
	LabelUnrecognized Label = "Unrecognized"
)

// KnownLabels lists the labels the prompt asks the model to choose from,
// categories first and the fallback last.
var KnownLabels = []Label{
	LabelWorkflowError,
	LabelDeprecationWarning,
	LabelUnclassified,
}

// ParseLabel maps raw model output onto a Label. Surrounding whitespace and
// letter case are ignored; any other deviation yields LabelUnrecognized.
func ParseLabel(raw string) Label {
	trimmed := strings.TrimSpace(raw)
	for _, label := range KnownLabels {
		if strings.EqualFold(trimmed, string(label)) {
			return label
		}
	}
	return LabelUnrecognized
}

// Known reports whether l is one of KnownLabels.
func (l Label) Known() bool {
	return l != LabelUnrecognized && ParseLabel(string(l)) == l
}
