package fontsize

// Step units grow with the current size so large fonts zoom at a usable
// rate. The thresholds are asymmetric so a size reached by stepping up
// steps back down through the same values.
const (
	increaseMidThreshold   = 24
	increaseLargeThreshold = 36
	decreaseMidThreshold   = 26
	decreaseLargeThreshold = 40
)

// increaseStep returns the step unit for increasing from size.
func increaseStep(size int) int {
	switch {
	case size >= increaseLargeThreshold:
		return 4
	case size >= increaseMidThreshold:
		return 2
	default:
		return 1
	}
}

// decreaseStep returns the step unit for decreasing from size.
func decreaseStep(size int) int {
	switch {
	case size >= decreaseLargeThreshold:
		return 4
	case size >= decreaseMidThreshold:
		return 2
	default:
		return 1
	}
}
