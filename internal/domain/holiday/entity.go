package holiday

// Holiday is one public-holiday calendar entry. Date is stored as dd/MM/yyyy
// text; unparsable entries are skipped by consumers, not surfaced as errors.
type Holiday struct {
	ID   string
	Year int
	Date string // dd/MM/yyyy
	Name string
}
