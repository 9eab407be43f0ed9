// export_test.go exports private functions for white-box testing.
package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// EntryMessages returns the messages collected from err.
func EntryMessages(err error) []string {
	entries := collectErrorEntries(err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.message)
	}
	return out
}
