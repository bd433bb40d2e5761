package format

import "strings"

// Layout converts an LDML-style date format (yyyy-MM-dd HH:mm:ss.SSS) into a
// Go reference layout. Configured patterns use the LDML vocabulary, so they
// stay valid across implementations. Unrecognized letter runs pass through
// verbatim; conversion never fails.
func Layout(dateFormat string) string {
	var b strings.Builder

	for i := 0; i < len(dateFormat); {
		c := dateFormat[i]
		if !isASCIILetter(c) {
			b.WriteByte(c)
			i++
			continue
		}

		n := 1
		for i+n < len(dateFormat) && dateFormat[i+n] == c {
			n++
		}
		b.WriteString(layoutToken(c, n))
		i += n
	}

	return b.String()
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// layoutToken maps a run of n identical LDML letters to its Go layout element.
func layoutToken(c byte, n int) string {
	switch c {
	case 'y':
		if n == 2 {
			return "06"
		}
		return "2006"
	case 'M':
		switch {
		case n >= 4:
			return "January"
		case n == 3:
			return "Jan"
		case n == 2:
			return "01"
		default:
			return "1"
		}
	case 'd':
		if n >= 2 {
			return "02"
		}
		return "2"
	case 'H':
		return "15"
	case 'h':
		if n >= 2 {
			return "03"
		}
		return "3"
	case 'm':
		if n >= 2 {
			return "04"
		}
		return "4"
	case 's':
		if n >= 2 {
			return "05"
		}
		return "5"
	case 'S':
		// Fractional seconds; the preceding literal dot makes this a valid
		// Go fractional-second element (.000).
		return strings.Repeat("0", n)
	case 'a':
		return "PM"
	case 'E':
		if n >= 4 {
			return "Monday"
		}
		return "Mon"
	case 'z':
		return "MST"
	case 'Z':
		if n >= 5 {
			return "-07:00"
		}
		return "-0700"
	case 'X':
		switch n {
		case 1:
			return "Z07"
		case 2:
			return "Z0700"
		default:
			return "Z07:00"
		}
	default:
		return strings.Repeat(string(c), n)
	}
}
