package model

// Day is one working day of the week.
type Day struct {
	Index int
	Name  string
}

func (d Day) String() string { return d.Name }

// Days is the fixed week used by both documents, Monday first.
var Days = [...]Day{
	{0, "понедельник"},
	{1, "вторник"},
	{2, "среда"},
	{3, "четверг"},
	{4, "пятница"},
	{5, "суббота"},
}

// DayByIndex returns the day with the given ordinal.
func DayByIndex(i int) (Day, bool) {
	if i < 0 || i >= len(Days) {
		return Day{}, false
	}
	return Days[i], true
}
