package quadpi

// PartialIntegral approximates the integral of f(x) = 4/(1+x*x) over
// [start, end) with the midpoint rule: the interval is cut into steps
// slices of width h = (end-start)/steps, f is sampled at the center of
// each slice, and the samples are summed left to right in float64
// before scaling by h. Integrated over all of [0,1] the result
// converges to pi as steps grows.
//
// The function is pure: it touches no shared state, so any number of
// partials may be computed concurrently without synchronization.
//
// A partition legitimately carries zero steps when the total step count
// is smaller than the worker count. The step width would be a division
// by zero in that case, so the kernel returns 0 before computing it.
func PartialIntegral(start, end float64, steps uint64) float64 {
	if steps == 0 {
		return 0
	}

	stepSize := (end - start) / float64(steps)
	sum := 0.0
	for i := uint64(0); i < steps; i++ {
		x := start + float64(i)*stepSize + stepSize/2
		sum += 4.0 / (1.0 + x*x)
	}
	return sum * stepSize
}
