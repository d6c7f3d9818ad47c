package console

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// commandParse splits input into the command, its first argument and the
// remaining text.
func commandParse[T ~string](input T) (T, T, T) {
	r := make([]string, 3)
	copy(r, strings.SplitN(strings.TrimSpace(string(input)), " ", 3))
	return T(r[0]), T(r[1]), T(r[2])
}

// wordPattern matches pattern literally, ignoring case.
func wordPattern(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
}

func highlight(re *regexp.Regexp, line string) string {
	return re.ReplaceAllStringFunc(line, func(m string) string {
		return "\033[34m" + m + "\033[0m"
	})
}

func setTitle(w io.Writer, t string) {
	fmt.Fprintf(w, "\033]0;%s\007", t)
}

func printInfo(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "\033[38;2;100;100;100m# %s\033[0m\n", fmt.Sprintf(format, a...))
}

func timeTrack(w io.Writer, start time.Time) {
	printInfo(w, "...%s", round(time.Since(start), 2))
}

var units = []time.Duration{time.Second, time.Millisecond, time.Microsecond}

// round keeps digits decimal places of the largest unit below d.
func round(d time.Duration, digits int) time.Duration {
	if digits < 0 || digits > 3 {
		panic("wrong length provided")
	}
	scale := time.Duration(1)
	for range digits {
		scale *= 10
	}
	for _, u := range units {
		if d > u {
			return d.Round(u / scale)
		}
	}
	return d
}
