package domain

import "time"

const JournalTimestampLayout = "2006-01-02 15:04:05"

type JournalEntry struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// FormatJournalBlock renders one appended block: a timestamp line, the text, a blank line.
func FormatJournalBlock(at time.Time, text string) string {
	return at.Format(JournalTimestampLayout) + "\n" + text + "\n\n"
}
