package presenter

import "time"

const (
	displayMedium = "Mon 01, 02, 2006 3:04PM"
	displayFull   = "Monday January, 2, 2006 at 3:04PM"
)

// FormatDisplay is the template "datetime" filter. value is a FormatTimestamp string;
// format is "medium" (default) or "full". Unparseable input is returned unchanged.
func FormatDisplay(value string, format ...string) string {
	t, err := ParseTimestamp(value)
	if err != nil {
		return value
	}
	layout := displayMedium
	if len(format) > 0 && format[0] == "full" {
		layout = displayFull
	}
	return t.Format(layout)
}

// ParseTimestamp reverses FormatTimestamp.
func ParseTimestamp(value string) (time.Time, error) {
	return time.ParseInLocation(timestampLayout+"Z", value, time.UTC)
}
