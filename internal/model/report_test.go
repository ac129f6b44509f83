package model

import "testing"

func TestCategoryCounts_AddAndMerge(t *testing.T) {
	t.Parallel()

	var a CategoryCounts
	a.Add(CategoryDone)
	a.Add(CategoryDone)
	a.Add(CategoryRevision)
	a.Add(Category("unknown"))

	if a.Done != 2 || a.Revision != 1 || a.Other != 1 || a.Total != 4 {
		t.Fatalf("unexpected counts: %+v", a)
	}

	var total CategoryCounts
	total.Merge(a)
	total.Merge(CategoryCounts{New: 1, WaitingFirstLayer: 2, Total: 3})
	if total.Total != 7 || total.New != 1 || total.WaitingFirstLayer != 2 {
		t.Fatalf("unexpected merged counts: %+v", total)
	}

	sum := 0
	for _, c := range Categories {
		sum += total.Count(c)
	}
	if sum != total.Total {
		t.Fatalf("category sum=%d, want %d", sum, total.Total)
	}
}

func TestAgeBinCounts_AddAndMerge(t *testing.T) {
	t.Parallel()

	var a AgeBinCounts
	a.Add(AgeBinLow)
	a.Add(AgeBinHigh)
	a.Add(AgeBinHigh)

	var total AgeBinCounts
	total.Merge(a)
	total.Merge(a)

	if total.Bins != [3]int{2, 0, 4} || total.GrandTotal != 6 {
		t.Fatalf("unexpected totals: %+v", total)
	}
}
