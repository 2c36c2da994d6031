package report

// ratingGrades maps the server's numeric rating codes to letter grades.
var ratingGrades = map[string]string{
	"1.0": "A ⭐",
	"2.0": "B 🟢",
	"3.0": "C 🟡",
	"4.0": "D 🟠",
	"5.0": "E 🔴",
}

// FormatRating converts a numeric rating code to its letter grade. Missing
// ratings render as "N/A"; unrecognized codes pass through unchanged so new
// upstream values stay visible.
func FormatRating(rating string) string {
	if rating == "" || rating == "N/A" {
		return "N/A"
	}
	if grade, ok := ratingGrades[rating]; ok {
		return grade
	}
	return rating
}
