package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"timetable-merge/internal/common"
	"timetable-merge/internal/model"
)

// LabelList is a list of labels that can be unmarshaled from a single
// string or an array of strings.
type LabelList []model.Label

// UnmarshalYAML implements custom YAML unmarshaling for LabelList.
func (l *LabelList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*l = LabelList{model.Label(str)}
		} else {
			*l = LabelList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []model.Label

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*l = arr

		return nil

	default:
		return fmt.Errorf("expected label or list of labels, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for LabelList.
// Outputs a single string if length is 1, otherwise an array.
func (l LabelList) MarshalYAML() (any, error) {
	if len(l) == 1 {
		return string(l[0]), nil
	}

	return []model.Label(l), nil
}

// First returns the first label or "" if empty.
func (l LabelList) First() model.Label {
	if v, ok := common.First(l); ok {
		return v
	}

	return ""
}
