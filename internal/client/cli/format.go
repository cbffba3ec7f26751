package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/agroassist/internal/client/models"
)

type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer, headers ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	fmt.Fprintln(t.tw, strings.Join(headers, "\t"))
	return t
}

func (t *table) row(cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case float64:
			parts[i] = fmt.Sprintf("%.2f", v)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	fmt.Fprintln(t.tw, strings.Join(parts, "\t"))
}

func (t *table) flush() error {
	return t.tw.Flush()
}

func printUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "Username: %s\n", u.Username)
	fmt.Fprintf(w, "Phone:    %s\n", u.PhoneNumber)
	opt := func(label string, v *string) {
		if v != nil && *v != "" {
			fmt.Fprintf(w, "%-9s %s\n", label+":", *v)
		}
	}
	opt("Email", u.Email)
	opt("Name", u.FullName)
	opt("Language", u.PreferredLanguage)
	opt("State", u.State)
	opt("District", u.District)
	opt("Village", u.Village)
	opt("Farm", u.FarmLocation)
	if u.FarmSize != nil {
		unit := "acres"
		if u.FarmSizeUnit != nil && *u.FarmSizeUnit != "" {
			unit = *u.FarmSizeUnit
		}
		fmt.Fprintf(w, "Size:     %g %s\n", *u.FarmSize, unit)
	}
	if len(u.Crops) > 0 {
		fmt.Fprintf(w, "Crops:    %s\n", strings.Join(u.Crops, ", "))
	}
	if len(u.Livestock) > 0 {
		fmt.Fprintf(w, "Animals:  %s\n", strings.Join(u.Livestock, ", "))
	}
	opt("Soil", u.SoilType)
}
