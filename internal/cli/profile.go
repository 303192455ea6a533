package cli

import (
	"context"
	"fmt"

	"github.com/datarium/datarium/internal/content"
	"github.com/datarium/datarium/internal/profile"
)

// fillProfile walks through the investor questionnaire and saves the
// answers for the current user.
func (a *App) fillProfile(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	answers := profile.Answers{}
	for _, q := range profile.Questions() {
		labels := make([]string, len(q.Options))
		for i, opt := range q.Options {
			labels[i] = opt.Label
		}
		choice, err := GetChoice(a.reader, q.Text, labels, a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Input error:", err)
			return
		}
		answers[q.ID] = q.Options[choice].Value
	}

	if err := a.profiles.Save(ctx, answers); err != nil {
		fmt.Fprintln(a.out, "Could not save your profile. Try again.")
		return
	}
	fmt.Fprintln(a.out, "Investor profile saved. See 'dashboard' for your recommendations.")
}

// showDashboard prints the profile summary and the personalized
// recommendations derived from it.
func (a *App) showDashboard(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	answers, err := a.profiles.Load(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your profile. Try again.")
		return
	}
	if len(answers) == 0 {
		fmt.Fprintln(a.out, "Fill in your investor profile first ('profile') to receive personalized recommendations.")
		return
	}

	fmt.Fprintln(a.out, "Your investor profile:")
	for _, q := range profile.Questions() {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		label := value
		for _, opt := range q.Options {
			if opt.Value == value {
				label = opt.Label
				break
			}
		}
		fmt.Fprintf(a.out, "  %s: %s\n", q.Text, label)
	}

	keys := profile.Recommend(answers)
	if len(keys) == 0 {
		fmt.Fprintln(a.out, "\nNo recommendations for the answers given.")
		return
	}

	fmt.Fprintln(a.out, "\nYour personalized recommendations:")
	for _, key := range keys {
		detail, ok := content.RecommendationByKey(key)
		if !ok {
			continue
		}
		fmt.Fprintf(a.out, "\n- %s [risk: %s, return: %s]\n  %s\n",
			detail.Title, detail.RiskLevel, detail.ReturnPotential, detail.Description)
	}
}
