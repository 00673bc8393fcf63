package metrics

// olsSlope fits y = a + b*x by ordinary least squares and returns b.
// Undefined with fewer than two points or when x carries no variance.
func olsSlope(x, y []float64) (float64, bool) {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var covXY, varX float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		covXY += dx * (y[i] - meanY)
		varX += dx * dx
	}
	if varX == 0 {
		return 0, false
	}
	return covXY / varX, true
}
