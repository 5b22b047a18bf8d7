package dateparser

import "time"

// Week arithmetic works on calendar days in UTC so DST never shifts a day.

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (p *Parser) startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) - int(p.opts.WeekStartsOn) + 7) % 7
	return civil(t.Year(), t.Month(), t.Day()-offset)
}

// weekYear is the local week-numbering year: week 1 is the week that
// contains January 1st.
func (p *Parser) weekYear(t time.Time) int {
	y := t.Year()
	day := civil(y, t.Month(), t.Day())
	if !day.Before(p.startOfWeek(civil(y+1, time.January, 1))) {
		return y + 1
	}
	return y
}

func (p *Parser) week(t time.Time) int {
	first := p.startOfWeek(civil(p.weekYear(t), time.January, 1))
	start := p.startOfWeek(civil(t.Year(), t.Month(), t.Day()))
	return int(start.Sub(first).Hours()/24)/7 + 1
}

// localWeekday counts from 1 on WeekStartsOn.
func (p *Parser) localWeekday(t time.Time) int {
	return (int(t.Weekday())-int(p.opts.WeekStartsOn)+7)%7 + 1
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}
