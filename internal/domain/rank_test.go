package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordWithGrowth(sec Security, composite MetricValue) SecurityRecord {
	rec := NewSecurityRecord(sec)
	rec.Set(composite)
	return rec
}

func TestRank_DescendingByGrowthComposite(t *testing.T) {
	table := ResultTable{
		recordWithGrowth("LOW", Value(KindGrowth, WindowComposite, 0.05)),
		recordWithGrowth("HIGH", Value(KindGrowth, WindowComposite, 0.40)),
		recordWithGrowth("MID", Value(KindGrowth, WindowComposite, 0.20)),
	}

	Rank(table)

	require.Len(t, table, 3)
	assert.Equal(t, Security("HIGH"), table[0].Security)
	assert.Equal(t, Security("MID"), table[1].Security)
	assert.Equal(t, Security("LOW"), table[2].Security)
}

func TestRank_UnavailableLastAndStable(t *testing.T) {
	table := ResultTable{
		recordWithGrowth("NA1", Unavailable(KindGrowth, WindowComposite)),
		recordWithGrowth("A", Value(KindGrowth, WindowComposite, 0.10)),
		recordWithGrowth("NA2", Unavailable(KindGrowth, WindowComposite)),
		recordWithGrowth("B", Value(KindGrowth, WindowComposite, 0.10)),
		recordWithGrowth("NA3", Unavailable(KindGrowth, WindowComposite)),
	}

	Rank(table)

	got := make([]Security, 0, len(table))
	for _, r := range table {
		got = append(got, r.Security)
	}
	// ties keep input order, all unavailable records sink preserving theirs
	assert.Equal(t, []Security{"A", "B", "NA1", "NA2", "NA3"}, got)
}
