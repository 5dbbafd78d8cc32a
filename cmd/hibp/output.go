package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/insanitybit/haveibeenpwnd/client"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeBreaches(w io.Writer, breaches []client.Breach) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tDOMAIN\tBREACH DATE\tPWNED\tFLAGS")
	for _, b := range breaches {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", b.Name, b.Domain, b.BreachDate, b.PwnCount, breachFlags(b))
	}
	return tw.Flush()
}

func writeBreachDetail(w io.Writer, b *client.Breach) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Name:\t%s\n", b.Name)
	_, _ = fmt.Fprintf(tw, "Title:\t%s\n", b.Title)
	_, _ = fmt.Fprintf(tw, "Domain:\t%s\n", b.Domain)
	_, _ = fmt.Fprintf(tw, "Breach date:\t%s\n", b.BreachDate)
	_, _ = fmt.Fprintf(tw, "Added:\t%s\n", b.AddedDate)
	_, _ = fmt.Fprintf(tw, "Accounts:\t%d\n", b.PwnCount)
	_, _ = fmt.Fprintf(tw, "Data classes:\t%s\n", strings.Join(b.DataClasses, ", "))
	_, _ = fmt.Fprintf(tw, "Flags:\t%s\n", breachFlags(*b))
	_, _ = fmt.Fprintf(tw, "Description:\t%s\n", b.Description)
	return tw.Flush()
}

func writePastes(w io.Writer, pastes []client.Paste) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SOURCE\tID\tDATE\tEMAILS\tTITLE")
	for _, p := range pastes {
		date := "-"
		if p.Date != nil {
			date = p.Date.UTC().Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.Source, p.ID, date, p.EmailCount, p.Title)
	}
	return tw.Flush()
}

func breachFlags(b client.Breach) string {
	var flags []string
	if b.IsVerified {
		flags = append(flags, "verified")
	}
	if b.IsFabricated {
		flags = append(flags, "fabricated")
	}
	if b.IsSensitive {
		flags = append(flags, "sensitive")
	}
	if b.IsRetired {
		flags = append(flags, "retired")
	}
	if b.IsSpamList {
		flags = append(flags, "spam-list")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}
