package pipeline

import (
	"sort"
	"strings"

	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/util"
)

type sectionKey struct {
	title    string
	datetime string
}

// BuildSections folds records into sections in one linear pass. A blank
// title or datetime cell inherits the previous row's normalized value,
// which is how merged cells in the source sheet come through extraction.
// Rows with nothing in them at all are dropped. Sections come back in
// first-appearance order of their normalized (title, datetime) key, each
// with its items sorted ascending by number.
func BuildSections(it *RecordIterator) ([]internal.Section, int) {
	sections := []internal.Section{}
	index := map[sectionKey]int{}

	discarded := 0
	prevTitle, prevDatetime := "", ""
	for it.Next() {
		rec := it.Record()

		rawTitle := strings.TrimSpace(rec.Get(internal.ColTitle))
		rawDatetime := strings.TrimSpace(rec.Get(internal.ColDatetime))

		title := prevTitle
		if rawTitle != "" {
			title = util.NormalizeKey(rawTitle)
		}
		datetime := prevDatetime
		if rawDatetime != "" {
			datetime = util.NormalizeKey(rawDatetime)
		}
		prevTitle, prevDatetime = title, datetime

		q := util.NormalizeText(rec.Get(internal.ColQuestion))
		a := util.NormalizeText(rec.Get(internal.ColAnswer))
		tip := util.NormalizeText(rec.Get(internal.ColTip))

		if rawTitle == "" && rawDatetime == "" &&
			strings.TrimSpace(q) == "" && strings.TrimSpace(a) == "" && strings.TrimSpace(tip) == "" {
			discarded++
			continue
		}

		key := sectionKey{title: title, datetime: datetime}
		idx, ok := index[key]
		if !ok {
			idx = len(sections)
			index[key] = idx
			sections = append(sections, internal.Section{Title: title, Datetime: datetime, Items: []internal.Item{}})
		}

		sec := &sections[idx]
		sec.Items = append(sec.Items, internal.Item{
			No:     util.ResolveNo(rec.Get(internal.ColNo), len(sec.Items)),
			Q:      q,
			A:      a,
			Tip:    tip,
			IsNew:  util.ParseFlag(rec.Get(internal.ColNew)),
			Askers: util.ResolveAskers(rec.Get(internal.ColAskers)),
		})
	}

	for i := range sections {
		items := sections[i].Items
		sort.SliceStable(items, func(a, b int) bool { return items[a].No < items[b].No })
	}

	return sections, discarded
}
