package marketplace

const (
	MinStars = 1
	MaxStars = 5
)

func ValidStars(stars int) bool {
	return stars >= MinStars && stars <= MaxStars
}

// AverageTenths returns the mean of count ratings summing to sum, in tenths
// of a star, rounded half away from zero. Integer arithmetic keeps the result
// identical to numeric ROUND(AVG(stars), 1).
func AverageTenths(sum, count int64) int64 {
	if count <= 0 {
		return 0
	}
	return (20*sum + count) / (2 * count)
}

// Average is AverageTenths expressed in stars (4.0, 3.7, ...). Zero ratings
// give 0.
func Average(sum, count int64) float64 {
	return float64(AverageTenths(sum, count)) / 10
}
