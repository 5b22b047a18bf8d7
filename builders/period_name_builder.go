package builders

import (
	"regexp"
	"strings"

	"github.com/laher/periodic/extensions"
	"github.com/laher/periodic/period"
)

// dateTokens matches the date-format tokens that mark a folder as a template.
// A folder without any of them outside quoted text is a literal name and
// never reaches the parser, so names like "Steve's Brain" survive untouched.
var dateTokens = regexp.MustCompile(`\b(yyyy|yy|MM|M|dd|d|HH|H|mm|m|ss|s|ww|w|qqq|q|EEEE|EEE|eeee|eee)\b`)

// PeriodNameBuilder builds the path of a periodic note.
// A builder is not safe for concurrent use.
type PeriodNameBuilder struct {
	dateParser DateParser

	period       *period.Period
	pathTemplate *string
	nameTemplate *string
}

var _ NameBuilder[period.Period] = (*PeriodNameBuilder)(nil)

func NewPeriodNameBuilder(factory DateParserFactory) *PeriodNameBuilder {
	return &PeriodNameBuilder{dateParser: factory.GetParser()}
}

func (b *PeriodNameBuilder) WithPath(template string) NameBuilder[period.Period] {
	b.pathTemplate = &template
	return b
}

func (b *PeriodNameBuilder) WithName(template string) NameBuilder[period.Period] {
	b.nameTemplate = &template
	return b
}

func (b *PeriodNameBuilder) WithValue(value period.Period) NameBuilder[period.Period] {
	b.period = &value
	return b
}

// Build returns "<folder>/<name>.md", or just "<name>.md" when the folder
// resolves to nothing. Parser errors are returned as they are.
func (b *PeriodNameBuilder) Build() (string, error) {
	if b.period == nil {
		return "", invalidState("Period is required")
	}
	if b.nameTemplate == nil || *b.nameTemplate == "" {
		return "", invalidState("Name template is required")
	}

	path := ""
	if b.pathTemplate != nil {
		path = *b.pathTemplate
	}
	if containsDateFormatTokens(path) {
		formatted, err := b.dateParser.FromDate(b.period.Date, path)
		if err != nil {
			return "", err
		}
		path = formatted
	}

	name, err := b.dateParser.FromDate(b.period.Date, *b.nameTemplate)
	if err != nil {
		return "", err
	}
	name = extensions.AppendMarkdownExtension(name)

	if path == "" {
		return name, nil
	}
	return strings.Join([]string{path, name}, "/"), nil
}

func containsDateFormatTokens(template string) bool {
	if template == "" {
		return false
	}
	return dateTokens.MatchString(maskQuoted(template))
}

// maskQuoted blanks out quoted literal text so tokens inside it are ignored.
// A quote runs to the next lone apostrophe or to the end of the template,
// and '' is an escaped apostrophe.
func maskQuoted(template string) string {
	var sb strings.Builder
	sb.Grow(len(template))
	inQuote := false
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == '\'' {
			if i+1 < len(template) && template[i+1] == '\'' {
				sb.WriteString("  ")
				i++
				continue
			}
			inQuote = !inQuote
			sb.WriteByte(' ')
			continue
		}
		if inQuote {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
