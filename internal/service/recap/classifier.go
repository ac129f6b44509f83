package recap

import (
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/model"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/parser"
)

type statusRule struct {
	Category model.Category
	Match    func(status string) bool
}

// Classifier maps a free-text verification status onto a Summary category.
// Rules run top-down and the first match wins.
type Classifier struct {
	rules []statusRule
}

// NewClassifier creates the classifier with the standard rule order
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultStatusRules()}
}

// Classify returns the category of a raw status cell
func (c *Classifier) Classify(status string) model.Category {
	s := parser.NormalizeValue(status)
	for _, rule := range c.rules {
		if rule.Match(s) {
			return rule.Category
		}
	}
	return model.CategoryOther
}

func defaultStatusRules() []statusRule {
	containsAny := func(keywords ...string) func(string) bool {
		return func(s string) bool { return parser.ContainsAny(s, keywords) }
	}
	equalsAny := func(values ...string) func(string) bool {
		return func(s string) bool { return parser.EqualsAny(s, values) }
	}

	return []statusRule{
		{Category: model.CategoryDone, Match: containsAny("done", "resend")},
		{Category: model.CategoryRevision, Match: equalsAny("revision")},
		{Category: model.CategoryNew, Match: equalsAny("new", "draft")},
		{Category: model.CategoryWaitingFirstLayer, Match: equalsAny("waiting first layer verification")},
	}
}
