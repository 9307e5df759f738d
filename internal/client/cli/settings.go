package cli

import (
	"context"
	"fmt"
	"os"
)

// Profile fetches and prints the account profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		printlnFn("Failed to load profile.")
		a.log.Debug(ctx, "profile fetch failed", "error", err)
		return err
	}
	printlnFn("Username:", p.Username)
	if p.Email != "" {
		printlnFn("Email:", p.Email)
	}
	return nil
}

// UpdateProfile prompts for a new username and saves it.
func (a *App) UpdateProfile(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter new username", os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		printlnFn("Username is required.")
		return nil
	}

	if err := a.profiles.Update(ctx, username); err != nil {
		printlnFn("Failed to update profile.")
		a.log.Debug(ctx, "profile update failed", "error", err)
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

// Stats prints the writing statistics: total words and entries, entries per
// category, and the per-day frequency of the most recent days.
func (a *App) Stats(ctx context.Context) error {
	wc, err := a.profiles.WordCount(ctx)
	if err != nil {
		printlnFn("Failed to load statistics.")
		a.log.Debug(ctx, "word count fetch failed", "error", err)
		return err
	}
	printlnFn(fmt.Sprintf("%d words across %d entries.", wc.TotalWords, wc.TotalEntries))

	categories, err := a.profiles.Categories(ctx)
	if err != nil {
		printlnFn("Failed to load statistics.")
		a.log.Debug(ctx, "category summary fetch failed", "error", err)
		return err
	}
	for _, c := range categories {
		printlnFn(fmt.Sprintf("  %s: %d", c.Category, c.Count))
	}

	frequency, err := a.profiles.Frequency(ctx)
	if err != nil {
		printlnFn("Failed to load statistics.")
		a.log.Debug(ctx, "frequency fetch failed", "error", err)
		return err
	}
	for _, b := range frequency {
		printlnFn(fmt.Sprintf("  %s: %d", b.Date, b.Count))
	}
	return nil
}
