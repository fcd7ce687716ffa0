package youtube

import "regexp"

var durationRE = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts an ISO 8601 duration like "PT15M33S" or
// "PT1H2M" to whole seconds. Hours, minutes and seconds are each
// optional and default to zero; anything unparseable is zero.
func ParseDuration(iso string) int {
	match := durationRE.FindStringSubmatch(iso)
	if match == nil {
		return 0
	}
	return atoi(match[1])*3600 + atoi(match[2])*60 + atoi(match[3])
}

// atoi converts a digits-only capture group, treating "" as 0.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
