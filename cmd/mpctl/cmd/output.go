package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/marketping/marketping/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAlertTable(alerts []domain.Alert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ITEM\tLAST PRICE\tCREATED\tUPDATED\n")
	for i := range alerts {
		tw.writef("%s\t%s\t%s\t%s\n",
			alerts[i].ItemID,
			formatPrice(alerts[i].LastPrice),
			alerts[i].CreatedAt.Format("2006-01-02 15:04:05"),
			alerts[i].UpdatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printItemTable(items []domain.MarketItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tWEAPON\tEVENT\tTYPE\tPRICE\n")
	for i := range items {
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			items[i].ID,
			items[i].Name,
			items[i].Weapon,
			items[i].Event,
			items[i].Category,
			formatPrice(items[i].Price),
		)
	}
	return tw.finish()
}

func printItemDetail(item *domain.MarketItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", item.ID)
	tw.writef("Name:\t%s\n", item.Name)
	tw.writef("Weapon:\t%s\n", item.Weapon)
	tw.writef("Event:\t%s\n", item.Event)
	tw.writef("Type:\t%s\n", item.Category)
	tw.writef("Price:\t%s\n", formatPrice(item.Price))
	return tw.finish()
}

func formatPrice(p *int64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
