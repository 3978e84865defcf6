// package formatter renders contacts for the terminal and exports them to other formats (CSV, JSON, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/desertthunder/contacts/internal/models"
	"github.com/desertthunder/contacts/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "txt"
	FormatSQLite   Format = "sqlite"
)

// ParseFormat resolves a user supplied format name, accepting "md" and "text" as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	case "sqlite", "db":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (valid: csv, json, markdown, txt, sqlite)", shared.ErrInvalidFlag, s)
	}
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatSQLite:
		return ".db"
	default:
		return "." + string(f)
	}
}

// ExportToCSV converts contacts to CSV with a header row: ID, Name, Email
func ExportToCSV(contacts []models.Contact) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Name", "Email"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, c := range contacts {
		if err := writer.Write(c.Fields()); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToJSON encodes contacts as a JSON array.
func ExportToJSON(contacts []models.Contact, pretty bool) ([]byte, error) {
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return shared.MarshalJSON(contacts, pretty)
}

// ExportToMarkdown renders contacts as a Markdown table under the given title.
func ExportToMarkdown(contacts []models.Contact, title string) ([]byte, error) {
	var buf bytes.Buffer

	if title == "" {
		title = "Contacts"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Contacts**: %d\n\n", len(contacts)))

	buf.WriteString("| ID | Name | Email |\n")
	buf.WriteString("|---:|------|-------|\n")
	for _, c := range contacts {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s |\n", c.ID, escapeCell(c.Name), escapeCell(c.Email)))
	}

	return buf.Bytes(), nil
}

// ExportToText converts contacts to a numbered plain text list
func ExportToText(contacts []models.Contact) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Contacts: %d\n\n", len(contacts)))
	for i, c := range contacts {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.String()))
	}

	return buf.Bytes(), nil
}

// WriteTable prints contacts as aligned ID / NAME / EMAIL columns.
func WriteTable(w io.Writer, contacts []models.Contact) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL")
	for _, c := range contacts {
		email := c.Email
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", strconv.FormatUint(c.ID, 10), c.Name, email)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// Render produces the bytes for a file based export format.
func Render(contacts []models.Contact, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(contacts)
	case FormatJSON:
		return ExportToJSON(contacts, true)
	case FormatMarkdown:
		return ExportToMarkdown(contacts, "")
	case FormatText:
		return ExportToText(contacts)
	default:
		return nil, fmt.Errorf("%w: %s cannot be rendered to a file", shared.ErrInvalidFlag, format)
	}
}

// WriteExport renders contacts and writes them to path.
//
// Defaults to contacts_export{ext} as the filename.
func WriteExport(contacts []models.Contact, format Format, path string) (string, error) {
	if path == "" {
		path = "contacts_export" + format.Extension()
	}

	data, err := Render(contacts, format)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s export: %w", format, err)
	}

	return path, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
