package tinylog

import "time"

// appendTimestamp appends t rendered with layout. RFC3339 and RFC3339Nano
// take a hand-rolled path that avoids time.Format's layout parsing.
func appendTimestamp(buf []byte, t time.Time, layout string) []byte {
	switch layout {
	case time.RFC3339:
		return appendRFC3339(buf, t, false)
	case time.RFC3339Nano:
		return appendRFC3339(buf, t, true)
	default:
		return t.AppendFormat(buf, layout)
	}
}

func appendRFC3339(buf []byte, t time.Time, nanos bool) []byte {
	year, month, day := t.Date()
	_, offset := t.Zone()
	if year < 0 || year > 9999 || offset < -(18*3600) || offset > 18*3600 {
		if nanos {
			return t.AppendFormat(buf, time.RFC3339Nano)
		}
		return t.AppendFormat(buf, time.RFC3339)
	}
	hour, min, sec := t.Clock()
	buf = appendFourDigits(buf, year)
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, int(month))
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, day)
	buf = append(buf, 'T')
	buf = appendTwoDigits(buf, hour)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, min)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, sec)
	if nanos {
		if nano := t.Nanosecond(); nano != 0 {
			buf = appendFraction(buf, nano)
		}
	}
	if offset == 0 {
		return append(buf, 'Z')
	}
	if offset < 0 {
		buf = append(buf, '-')
		offset = -offset
	} else {
		buf = append(buf, '+')
	}
	buf = appendTwoDigits(buf, offset/3600)
	buf = append(buf, ':')
	return appendTwoDigits(buf, (offset%3600)/60)
}

func appendFraction(buf []byte, nano int) []byte {
	buf = append(buf, '.')
	var digits [9]byte
	for i := 8; i >= 0; i-- {
		digits[i] = byte('0' + nano%10)
		nano /= 10
	}
	n := 9
	for n > 0 && digits[n-1] == '0' {
		n--
	}
	return append(buf, digits[:n]...)
}

func appendFourDigits(buf []byte, v int) []byte {
	buf = appendTwoDigits(buf, v/100)
	return appendTwoDigits(buf, v%100)
}

func appendTwoDigits(buf []byte, value int) []byte {
	return append(buf, byte('0'+value/10), byte('0'+value%10))
}
