package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
)

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func writeComplaints(w io.Writer, list []models.Complaint) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No complaints assigned")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REF\tCUSTOMER\tTYPE\tPRIORITY\tSTATUS\tDESCRIPTION")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			dash(c.Reference), dash(c.CustomerName), dash(c.ComplaintType),
			dash(c.Priority), dash(c.Status), dash(c.Description))
	}
	_ = tw.Flush()
}

func writeCustomers(w io.Writer, list []models.Customer) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No customers found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE\tEMAIL\tCITY")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			dash(c.ID), dash(c.Name), dash(c.PhoneNumber), dash(c.Email), dash(c.City))
	}
	_ = tw.Flush()
}

func writeLookups(w io.Writer, title string, list []models.Lookup) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(list) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, l := range list {
		if l.ID == l.Name {
			fmt.Fprintf(w, "  %s\n", l.Name)
		} else {
			fmt.Fprintf(w, "  %s  %s\n", l.ID, l.Name)
		}
	}
}

// pickLookup maps an answer to a lookup ID. The answer may be an ID or a
// name (case-insensitive); anything else is passed through unchanged.
func pickLookup(list []models.Lookup, answer string) string {
	for _, l := range list {
		if l.ID == answer {
			return l.ID
		}
	}
	for _, l := range list {
		if strings.EqualFold(l.Name, answer) {
			return l.ID
		}
	}
	return answer
}
