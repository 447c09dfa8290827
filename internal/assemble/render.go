package assemble

import (
	"strconv"
	"strings"

	"timetable-merge/internal/model"
)

// Render writes one <Day> block per day of m, each holding one <Lesson>
// block per slot with a <csg> reference per bucketed id. Every line ends
// with newline.
func Render(m *Matrix, newline string) string {
	var b strings.Builder

	for d := 0; d < m.Days(); d++ {
		name := ""
		if day, ok := model.DayByIndex(d); ok {
			name = day.Name
		}

		b.WriteString(`<Day id="` + strconv.Itoa(d+1) + `" name="` + escapeAttr(name))
		b.WriteString(`" wd="` + strconv.Itoa(d+2) + `">` + newline)

		for s := 0; s < m.Slots(); s++ {
			b.WriteString("\t<Lesson timeId=\"" + strconv.Itoa(s+1) + "\">" + newline)

			for _, id := range m.At(d, s) {
				b.WriteString("\t\t<csg id=\"" + escapeAttr(id) + "\"/>" + newline)
			}

			b.WriteString("\t</Lesson>" + newline)
		}

		b.WriteString("</Day>" + newline)
	}

	return b.String()
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
	"\t", "&#x9;",
	"\n", "&#xA;",
	"\r", "&#xD;",
)

// escapeAttr escapes s for a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
