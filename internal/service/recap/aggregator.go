package recap

import (
	"sort"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/model"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/parser"
)

// Summarize tallies the category counts of every record per hospital. Rows come
// back sorted by hospital name, with the column-wise sum in Total.
func Summarize(records []parser.Record, classifier *Classifier, keyer *HospitalKeyer) model.SummaryTable {
	groups := make(map[string]*model.CategoryCounts)

	for _, r := range records {
		name := r.Value(ColHospital)
		key := keyer.Key(name)
		g, ok := groups[key]
		if !ok {
			g = &model.CategoryCounts{Hospital: keyer.Display(name)}
			groups[key] = g
		}
		g.Add(classifier.Classify(r.Value(ColVerificationStatus)))
	}

	rows := make([]model.CategoryCounts, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, *g)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Hospital < rows[j].Hospital
	})

	total := model.CategoryCounts{Hospital: model.TotalLabel}
	for _, row := range rows {
		total.Merge(row)
	}

	return model.SummaryTable{
		Rows:  rows,
		Total: total,
	}
}
