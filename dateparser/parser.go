// Package dateparser renders dates through date-fns style format templates.
//
// Runs of the same latin letter form one token ("yyyy", "MM", "EEEE").
// Text between apostrophes is copied verbatim and '' stands for a single
// apostrophe. Unquoted letters that are not tokens are an error.
package dateparser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/laher/periodic/builders"
)

var ErrUnescapedLetter = errors.New("format string contains an unescaped latin alphabet character")

// Options tune locale dependent tokens.
type Options struct {
	// WeekStartsOn is the first day of a local week (w, Y, e, c).
	WeekStartsOn time.Weekday
}

// Parser formats dates. The zero value starts weeks on Sunday.
type Parser struct {
	opts Options
}

func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

var _ builders.DateParser = (*Parser)(nil)

// FromDate renders date through template.
func (p *Parser) FromDate(date time.Time, template string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '\'':
			n := quoted(&sb, template[i:])
			i += n
		case isLetter(c):
			j := i
			for j < len(template) && template[j] == c {
				j++
			}
			ordinal := j < len(template) && template[j] == 'o' && ordinalLetters[c]
			s, err := p.token(date, c, j-i, ordinal)
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
			if ordinal {
				j++
			}
			i = j
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), nil
}

// quoted copies the quoted section at the start of s and returns how many
// bytes it consumed.
func quoted(sb *strings.Builder, s string) int {
	if len(s) > 1 && s[1] == '\'' {
		sb.WriteByte('\'')
		return 2
	}
	i := 1
	for i < len(s) {
		if s[i] == '\'' {
			if i+1 < len(s) && s[i+1] == '\'' {
				sb.WriteByte('\'')
				i += 2
				continue
			}
			return i + 1
		}
		sb.WriteByte(s[i])
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

var ordinalLetters = map[byte]bool{
	'y': true, 'd': true, 'D': true, 'M': true, 'L': true, 'q': true, 'Q': true,
	'w': true, 'I': true, 'e': true, 'c': true, 'i': true,
}

func (p *Parser) token(t time.Time, c byte, n int, ordinal bool) (string, error) {
	num := func(v int) string {
		if ordinal {
			return Ordinal(v)
		}
		return pad(v, n)
	}
	switch c {
	case 'y':
		return year(t.Year(), n, ordinal), nil
	case 'Y':
		return year(p.weekYear(t), n, ordinal), nil
	case 'R':
		y, _ := t.ISOWeek()
		return pad(y, n), nil
	case 'u':
		return pad(t.Year(), n), nil
	case 'M', 'L':
		return month(t.Month(), n, ordinal), nil
	case 'q', 'Q':
		return quarter(int(t.Month()-1)/3+1, n, ordinal), nil
	case 'd':
		return num(t.Day()), nil
	case 'D':
		return num(t.YearDay()), nil
	case 'w':
		return num(p.week(t)), nil
	case 'I':
		_, w := t.ISOWeek()
		return num(w), nil
	case 'E':
		return weekday(t.Weekday(), n), nil
	case 'e', 'c':
		if n <= 2 {
			return num(p.localWeekday(t)), nil
		}
		return weekday(t.Weekday(), n), nil
	case 'i':
		if n <= 2 || ordinal {
			return num(isoWeekday(t)), nil
		}
		return weekday(t.Weekday(), n), nil
	case 'a':
		if t.Hour() < 12 {
			return "AM", nil
		}
		return "PM", nil
	case 'H':
		return pad(t.Hour(), n), nil
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, n), nil
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return pad(h, n), nil
	case 'K':
		return pad(t.Hour()%12, n), nil
	case 'm':
		return pad(t.Minute(), n), nil
	case 's':
		return pad(t.Second(), n), nil
	}
	return "", fmt.Errorf("%w: `%c`", ErrUnescapedLetter, c)
}

func pad(v, n int) string {
	return fmt.Sprintf("%0*d", n, v)
}

func year(y, n int, ordinal bool) string {
	switch {
	case ordinal:
		return Ordinal(y)
	case n == 2:
		return pad(y%100, 2)
	}
	return pad(y, n)
}

func month(m time.Month, n int, ordinal bool) string {
	switch {
	case ordinal:
		return Ordinal(int(m))
	case n <= 2:
		return pad(int(m), n)
	case n == 3:
		return m.String()[:3]
	case n == 4:
		return m.String()
	}
	return m.String()[:1]
}

func quarter(q, n int, ordinal bool) string {
	switch {
	case ordinal:
		return Ordinal(q)
	case n <= 2:
		return pad(q, n)
	case n == 3:
		return fmt.Sprintf("Q%d", q)
	case n == 4:
		return Ordinal(q) + " quarter"
	}
	return pad(q, 1)
}

func weekday(d time.Weekday, n int) string {
	name := d.String()
	switch {
	case n <= 3:
		return name[:3]
	case n == 4:
		return name
	case n == 5:
		return name[:1]
	}
	return name[:2]
}

// Ordinal renders v with its English ordinal suffix: 1st, 2nd, 11th, 23rd.
func Ordinal(v int) string {
	r100 := v % 100
	if r100 > 10 && r100 < 14 {
		return fmt.Sprintf("%dth", v)
	}
	switch v % 10 {
	case 1:
		return fmt.Sprintf("%dst", v)
	case 2:
		return fmt.Sprintf("%dnd", v)
	case 3:
		return fmt.Sprintf("%drd", v)
	}
	return fmt.Sprintf("%dth", v)
}
