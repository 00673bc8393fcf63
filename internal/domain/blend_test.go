package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlend_WeightedSum(t *testing.T) {
	v1 := Value(KindGrowth, Window1Y, 0.10)
	v3 := Value(KindGrowth, Window3Y, 0.20)
	v5 := Value(KindGrowth, Window5Y, 0.30)

	c := Blend(KindGrowth, v1, v3, v5)
	f, ok := c.Float()
	assert.True(t, ok)
	assert.InDelta(t, 0.5*0.10+0.3*0.20+0.2*0.30, f, 1e-9)
	assert.Equal(t, WindowComposite, c.Window)
}

func TestBlend_AnyUnavailableInputKillsComposite(t *testing.T) {
	avail := Value(KindROCE, Window1Y, 0.10)
	missing := Unavailable(KindROCE, Window3Y)

	cases := map[string][3]MetricValue{
		"missing_1y": {Unavailable(KindROCE, Window1Y), avail, avail},
		"missing_3y": {avail, missing, avail},
		"missing_5y": {avail, avail, Unavailable(KindROCE, Window5Y)},
		"all_missing": {
			Unavailable(KindROCE, Window1Y),
			Unavailable(KindROCE, Window3Y),
			Unavailable(KindROCE, Window5Y),
		},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			c := Blend(KindROCE, in[0], in[1], in[2])
			assert.False(t, c.Available(), "composite must not partially blend")
		})
	}
}
