package lead

import (
	"io"

	"github.com/gocarina/gocsv"
)

// csvRow mirrors the dashboard table columns
type csvRow struct {
	ID        int64  `csv:"id"`
	Name      string `csv:"name"`
	Email     string `csv:"email"`
	Phone     string `csv:"phone"`
	Interest  string `csv:"interest"`
	Message   string `csv:"message"`
	Status    string `csv:"status"`
	Notes     string `csv:"notes"`
	Assignee  string `csv:"assignee"`
	CreatedAt string `csv:"created_at"`
}

// WriteCSV renders the given (already filtered) lead views as RFC-4180
// CSV: one header row plus one row per lead.
func WriteCSV(w io.Writer, leads []LeadView) error {
	rows := make([]csvRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, csvRow{
			ID:        l.ID,
			Name:      l.Name,
			Email:     l.Email,
			Phone:     l.Phone,
			Interest:  l.Interest,
			Message:   l.Message,
			Status:    string(l.Status),
			Notes:     l.Notes,
			Assignee:  l.AssigneeName,
			CreatedAt: l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return gocsv.Marshal(&rows, w)
}
