package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"pwned/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func printBreaches(w io.Writer, breaches []domain.Breach) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDOMAIN\tBREACH DATE\tPWN COUNT\tVERIFIED")
	for _, b := range breaches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%t\n", b.Name, b.Domain, b.BreachDate, b.PwnCount, b.IsVerified)
	}
	return tw.Flush()
}

func printBreach(w io.Writer, b domain.Breach) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", b.Name)
	fmt.Fprintf(tw, "Title:\t%s\n", b.Title)
	fmt.Fprintf(tw, "Domain:\t%s\n", b.Domain)
	fmt.Fprintf(tw, "Breach date:\t%s\n", b.BreachDate)
	fmt.Fprintf(tw, "Pwn count:\t%d\n", b.PwnCount)
	fmt.Fprintf(tw, "Data classes:\t%s\n", strings.Join(b.DataClasses, ", "))
	fmt.Fprintf(tw, "Verified:\t%t\n", b.IsVerified)
	if b.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", b.Description)
	}
	return tw.Flush()
}

func printPastes(w io.Writer, pastes []domain.PasteAccount) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tID\tTITLE\tDATE\tEMAILS")
	for _, p := range pastes {
		title, date := "-", "-"
		if p.Title != nil {
			title = *p.Title
		}
		if p.Date != nil {
			date = p.Date.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", p.Source, p.ID, title, date, p.EmailCount)
	}
	return tw.Flush()
}
