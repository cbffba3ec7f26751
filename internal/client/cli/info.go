package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/agroassist/internal/client/services"
)

// Weather shows current conditions; the whole argument list is the location.
func (a *App) Weather(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	w, err := a.weather.Current(ctx, services.Place{Location: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	c := w.Current
	fmt.Fprintf(a.out, "%s, %s: %.1f°C, %s\n", w.Location.Name, w.Location.Region, c.TempC, c.Condition.Condition)
	fmt.Fprintf(a.out, "Humidity %.0f%%, wind %.1f km/h %s, rain %.1f mm\n", c.Humidity, c.WindKph, c.WindDir, c.PrecipMM)
	return nil
}

// Forecast accepts an optional trailing day count.
func (a *App) Forecast(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	days := 0
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
			days, args = n, args[:len(args)-1]
		}
	}
	f, err := a.weather.Forecast(ctx, services.Place{Location: strings.Join(args, " ")}, days)
	if err != nil {
		return err
	}
	tw := newTable(a.out, "DATE", "MIN °C", "MAX °C", "RAIN mm", "CONDITION")
	for _, d := range f.Forecast.ForecastDay {
		tw.row(d.Date, d.Day.MinTempC, d.Day.MaxTempC, d.Day.TotalRainMM, d.Day.Condition.Condition)
	}
	return tw.flush()
}

func (a *App) Alerts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	al, err := a.weather.Alerts(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(al.Alerts) == 0 {
		fmt.Fprintf(a.out, "No weather alerts for %s.\n", al.Location)
		return nil
	}
	for _, x := range al.Alerts {
		fmt.Fprintf(a.out, "[%s] %s (%s - %s)\n  %s\n", x.Severity, x.Title, x.Start, x.End, x.Description)
	}
	return nil
}

func (a *App) Prices(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errUsage
	}
	state := ""
	if len(args) == 2 {
		state = args[1]
	}
	prices, err := a.market.CropPrices(ctx, args[0], state, 0)
	if err != nil {
		return err
	}
	if len(prices) == 0 {
		fmt.Fprintf(a.out, "No prices found for %s.\n", args[0])
		return nil
	}
	tw := newTable(a.out, "MARKET", "DISTRICT", "MIN", "MAX", "MODAL", "UNIT", "DATE")
	for _, p := range prices {
		tw.row(p.Market.Name, p.Market.District, p.MinPrice, p.MaxPrice, p.ModalPrice, p.PriceUnit, p.Date)
	}
	return tw.flush()
}

func (a *App) Trends(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errUsage
	}
	period := ""
	if len(args) == 2 {
		period = args[1]
	}
	trends, err := a.market.PriceTrends(ctx, splitList(args[0]), period)
	if err != nil {
		return err
	}
	tw := newTable(a.out, "CROP", "TREND", "CHANGE %", "PRICE", "UNIT")
	for _, t := range trends {
		tw.row(t.Crop, t.Trend, t.PercentChange, t.CurrentPrice, t.PriceUnit)
	}
	return tw.flush()
}

func (a *App) Crops(ctx context.Context, args []string) error {
	list, err := a.crops.Crops(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	tw := newTable(a.out, "ID", "NAME", "CATEGORY", "SEASONS", "WATER")
	for _, c := range list {
		tw.row(c.ID, c.Name, c.Category, strings.Join(c.GrowingSeason, ","), c.WaterRequirement)
	}
	return tw.flush()
}

func (a *App) SoilTypes(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errUsage
	}
	district := ""
	if len(args) == 2 {
		district = args[1]
	}
	r, err := a.soil.RegionalSoilTypes(ctx, args[0], district)
	if err != nil {
		return err
	}
	region := r.Region.State
	if r.Region.District != "" {
		region = r.Region.District + ", " + region
	}
	fmt.Fprintf(a.out, "Soil types in %s:\n", region)
	for _, s := range r.SoilTypes {
		fmt.Fprintf(a.out, "- %s: %s\n", s.Name, s.Description)
		if len(s.Characteristics.SuitableCrops) > 0 {
			fmt.Fprintf(a.out, "  suits %s\n", strings.Join(s.Characteristics.SuitableCrops, ", "))
		}
	}
	return nil
}
