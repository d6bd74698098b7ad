package record

import (
	"cmp"
	"slices"

	"go-talent-dashboard/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortRecords orders records in place by one field. Text compares with an
// English collator, numbers numerically. Ties keep their storage order.
func SortRecords[T domain.Record](records []T, sort domain.SortSpec) {
	if sort.Field == "" || len(records) < 2 {
		return
	}

	// Collators keep internal buffers and are not safe to share.
	col := collate.New(language.English)

	slices.SortStableFunc(records, func(a, b T) int {
		c := compareValues(col, a.SortValue(sort.Field), b.SortValue(sort.Field))
		if sort.Direction == domain.Descending {
			return -c
		}
		return c
	})
}

func compareValues(col *collate.Collator, a, b domain.SortValue) int {
	if a.IsText && b.IsText {
		return col.CompareString(a.Text, b.Text)
	}
	return cmp.Compare(a.Number, b.Number)
}
