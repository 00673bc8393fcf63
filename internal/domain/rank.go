package domain

import "sort"

// Rank orders the table descending by the growth composite score.
// Records whose sort key is unavailable go last. The sort is stable, so
// ties and unavailable records keep their original relative order.
func Rank(table ResultTable) {
	sort.SliceStable(table, func(i, j int) bool {
		vi, oki := table[i].Get(KindGrowth, WindowComposite).Float()
		vj, okj := table[j].Get(KindGrowth, WindowComposite).Float()
		switch {
		case oki && okj:
			return vi > vj
		case oki:
			return true
		default:
			return false
		}
	})
}
