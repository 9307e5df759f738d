package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/dayjournal/internal/client/models"
)

// reportOutcome prints the entry store's message on failure or the given
// confirmation on success, then clears the transient flags.
func (a *App) reportOutcome(success string) {
	st := a.entries.State()
	if st.IsError {
		printlnFn(st.Message)
	} else if success != "" {
		printlnFn(success)
	}
	a.entries.Reset()
}

// List prints the cached entry list, most recent first. Use Refresh to
// re-fetch from the server.
func (a *App) List(ctx context.Context) error {
	st := a.entries.State()
	if len(st.Entries) == 0 {
		printlnFn("No entries yet.")
		return nil
	}
	for _, e := range st.Entries {
		printlnFn(fmt.Sprintf("%d\t%s\t[%s]\t%s", e.ID, e.Date, e.Category, e.Title))
	}
	return nil
}

// Refresh fetches the entry list from the server, replacing the cache.
func (a *App) Refresh(ctx context.Context) error {
	err := a.entries.Fetch(ctx)
	a.reportOutcome(fmt.Sprintf("%d entries.", len(a.entries.State().Entries)))
	return err
}

// Add collects a new entry and creates it on the server. The date defaults
// to today when left blank.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		printlnFn("Title is required.")
		return nil
	}

	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}

	date, err := getSimpleText(a.reader, "Enter date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		return err
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	content, err := getMultiline(a.reader, "Enter text (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	draft := models.EntryDraft{Title: title, Content: content, Category: category, Date: date}
	err = a.entries.Create(ctx, draft)
	a.reportOutcome("Entry added.")
	return err
}

// Edit updates an existing entry. Fields left blank keep their current
// value; only the changed fields are sent.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptID("Enter entry id to edit")
	if err != nil || id == 0 {
		return err
	}

	title, err := getSimpleText(a.reader, "New title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "New category (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "New date (YYYY-MM-DD, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "New text (empty to keep, double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	var patch models.EntryPatch
	if title != "" {
		patch.Title = &title
	}
	if category != "" {
		patch.Category = &category
	}
	if date != "" {
		patch.Date = &date
	}
	if content != "" {
		patch.Content = &content
	}
	if patch == (models.EntryPatch{}) {
		printlnFn("Nothing to change.")
		return nil
	}

	err = a.entries.Update(ctx, id, patch)
	a.reportOutcome("Entry updated.")
	return err
}

// Delete removes an entry by its identifier, prompting the user for the ID.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptID("Enter entry id to delete")
	if err != nil || id == 0 {
		return err
	}
	err = a.entries.Delete(ctx, id)
	a.reportOutcome("Entry deleted.")
	return err
}

// promptID reads and parses a numeric entry id. A zero return with nil
// error means the input was not a valid id and was already reported.
func (a *App) promptID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		printlnFn("Invalid id:", raw)
		return 0, nil
	}
	return id, nil
}
