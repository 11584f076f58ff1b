// Package export renders the filtered waitlist as a CSV document.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/paycort/paycort-admin/internal/entity"
)

const (
	// ContentType of the generated document.
	ContentType = "text/csv"

	dateLayout   = "1/2/2006"
	notAvailable = "N/A"
)

// Header is the fixed column order.
var Header = []string{"First Name", "Last Name", "Email", "Phone", "Date Joined"}

// FileName embeds the UTC calendar date of now.
func FileName(now time.Time) string {
	return fmt.Sprintf("paycort-waitlist-%s.csv", now.UTC().Format("2006-01-02"))
}

// Row returns the cells of one entry. The joined date is rendered in loc.
func Row(e *entity.WaitlistEntry, loc *time.Location) []string {
	joined := notAvailable
	if t, ok := e.Created(); ok {
		joined = t.In(loc).Format(dateLayout)
	}
	return []string{e.FirstName, e.LastName, e.Email, e.Phone, joined}
}

// Write writes the header and one line per entry. Cells are joined with a
// bare comma and are not quoted, a value containing a comma or a quote
// corrupts its row. Lines are separated by "\n" with no trailing newline.
func Write(w io.Writer, entries []entity.WaitlistEntry, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	if _, err := io.WriteString(w, strings.Join(Header, ",")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range entries {
		line := "\n" + strings.Join(Row(&entries[i], loc), ",")
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return nil
}

// CSV renders the whole document in memory.
func CSV(entries []entity.WaitlistEntry, loc *time.Location) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, entries, loc)
	return buf.Bytes()
}
