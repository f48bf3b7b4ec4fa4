package seance

// Subjects a seance may be booked for.
var Subjects = []string{
	"Personal coaching",
	"Stress management",
	"Confidence building",
}

func IsValidSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}
