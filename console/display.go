package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"canteen-order-system/models"
)

func writeMenu(w io.Writer, items []*models.MenuItem) {
	fmt.Fprintln(w, "Menu Items:")
	tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	fmt.Fprintln(tw, "ID\tName\tType\tPrice\tQuantity")
	for _, m := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%d\n", m.ID, m.Name, m.Category, m.Price, m.Stock)
	}
	tw.Flush()
}

func writeConsumers(w io.Writer, consumers []*models.Consumer) {
	if len(consumers) == 0 {
		fmt.Fprintln(w, "No consumers registered.")
		return
	}
	for _, c := range consumers {
		fmt.Fprintf(w, "UID: %s, Name: %s, Type: %s\n", c.UID, c.Name, c.Type)
	}
}

func writeUsers(w io.Writer, users []*models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users registered.")
		return
	}
	fmt.Fprintf(w, "\n%-5s %-20s %-15s %-10s\n", "UID", "Name", "Username", "Role")
	fmt.Fprintln(w, "-----------------------------------------------")
	for _, u := range users {
		fmt.Fprintf(w, "%-5s %-20s %-15s %-10s\n", u.UID, u.Name, u.Username, u.Role)
	}
}
