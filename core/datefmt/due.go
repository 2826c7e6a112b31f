package datefmt

// IsPastDue reports whether the Formatter's clock is strictly past the due date.
// An unreadable due date is never past due.
func (f *Formatter) IsPastDue(dueDateString string) bool {
	due, err := f.ParseDate(dueDateString)
	if err != nil {
		f.debug("datefmt.IsPastDue: invalid date", dueDateString)
		return false
	}
	return f.now().After(due)
}
