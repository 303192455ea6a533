package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/datarium/datarium/internal/common"
	"github.com/datarium/datarium/internal/models"
	"github.com/datarium/datarium/internal/portfolio"
)

// showPortfolio renders the grouped holdings, the summary, and the
// allocation breakdown.
func (a *App) showPortfolio() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	assets := a.ledger.Assets()
	if len(assets) == 0 {
		fmt.Fprintln(a.out, "Your portfolio is empty. Use 'add' to register an asset.")
		return
	}

	summary := portfolio.Summarize(assets)
	fmt.Fprintf(a.out, "Total value: R$ %s\n", summary.TotalValue.StringFixed(2))
	fmt.Fprintf(a.out, "Daily change: R$ %s (%s%%)\n",
		summary.TotalDailyChange.StringFixed(2),
		summary.TotalDailyChangePercentage.StringFixed(2))

	for _, group := range portfolio.GroupByCategory(assets) {
		fmt.Fprintf(a.out, "\n%s\n", group.Name)
		for _, asset := range group.Assets {
			line := fmt.Sprintf("  %s  R$ %s", asset.Name, asset.Value.StringFixed(2))
			if asset.PricePerUnit != nil {
				line += fmt.Sprintf("  (unit R$ %s)", asset.PricePerUnit.StringFixed(2))
			}
			fmt.Fprintf(a.out, "%s  [id %s]\n", line, asset.ID)
		}
	}

	allocations := portfolio.Allocate(assets)
	if len(allocations) > 0 {
		fmt.Fprintln(a.out, "\nAllocation:")
		for _, alloc := range allocations {
			fmt.Fprintf(a.out, "  %-24s %6s%%  %s\n", alloc.Name, alloc.Percentage.StringFixed(2), alloc.Color)
		}
	}
}

// addAsset walks through the add-asset form: name, category, amount, and for
// stocks the unit price.
func (a *App) addAsset(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	name, err := getSimpleText(a.reader, "Asset name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}

	types := models.AssetTypes()
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = t.DisplayName()
	}
	choice, err := GetChoice(a.reader, "Asset category:", labels, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}

	input := portfolio.AssetInput{Name: name, Type: types[choice]}

	input.Value, err = GetAmount(a.reader, "Invested amount (R$)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if input.Type == models.AssetStocks {
		price, err := GetAmount(a.reader, "Price per unit (R$)", a.out)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		input.PricePerUnit = &price
	}

	asset, err := a.ledger.AddAsset(ctx, input)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Fprintln(a.out, "Invalid input:", err)
		} else {
			fmt.Fprintln(a.out, "Could not add the asset. Try again.")
		}
		return
	}

	fmt.Fprintf(a.out, "Added %s (%s) for R$ %s.\n",
		asset.Name, asset.Type.DisplayName(), asset.Value.StringFixed(2))
}

// removeAsset removes the asset with the id given as an argument, prompting
// for one when missing.
func (a *App) removeAsset(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	var assetID string
	if len(args) > 0 {
		assetID = args[0]
	} else {
		var err error
		assetID, err = getSimpleText(a.reader, "Asset id to remove", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Input error:", err)
			return
		}
	}

	before := len(a.ledger.Assets())
	if err := a.ledger.RemoveAsset(ctx, assetID); err != nil {
		fmt.Fprintln(a.out, "Could not remove the asset. Try again.")
		return
	}

	if len(a.ledger.Assets()) == before {
		fmt.Fprintln(a.out, "No asset with that id.")
		return
	}
	fmt.Fprintln(a.out, "Asset removed.")
}

// showHistory prints the event log, newest first.
func (a *App) showHistory() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	events := a.ledger.History()
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No portfolio activity yet.")
		return
	}

	for _, event := range events {
		verb := "added"
		if event.EventType == models.EventRemoved {
			verb = "removed"
		}
		fmt.Fprintf(a.out, "%s  %s %q  R$ %s\n",
			event.Date.Local().Format("02/01/2006 15:04"),
			verb, event.AssetName, event.ValueAtEvent.StringFixed(2))
	}
}

// resetPortfolio clears both partitions after an explicit confirmation.
func (a *App) resetPortfolio(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	ok, err := Confirm(a.reader, "This erases all assets and history for this account. Continue?", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	if err := a.ledger.ResetPortfolioData(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not reset portfolio data. Try again.")
		return
	}
	fmt.Fprintln(a.out, "Portfolio data cleared.")
}
