package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/assets"
	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/navigation"
	catalogrepo "github.com/KirkDiggler/rpg-codex/internal/repositories/catalog"
)

// MenuScreen offers every section of the catalog
func (o *orchestrator) MenuScreen(_ context.Context, _ *MenuScreenInput) (*ScreenOutput, error) {
	rows := make([][]Choice, 0, len(catalog.ListDomains)+1)
	for _, d := range catalog.ListDomains {
		rows = addRow(rows, add(nil, d.Label(), navigation.ListToken(d)))
	}
	rows = addRow(rows, add(nil, catalog.DomainMountSkill.Label(), navigation.MountsToken()))

	return &ScreenOutput{Screen: &Screen{
		Title:   "Catalog",
		Body:    "Choose a section:",
		Choices: rows,
	}}, nil
}

// ListScreen shows one page of a domain sorted by name
func (o *orchestrator) ListScreen(ctx context.Context, input *ListScreenInput) (*ScreenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.catalogRepo.List(ctx, catalogrepo.ListInput{Domain: input.Domain})
	if err != nil {
		return nil, err
	}

	w := navigation.Paginate(out.Records, input.Page, o.pageSize)
	screen := &Screen{Title: input.Domain.Label()}

	switch {
	case w.Total == 0:
		screen.Body = fmt.Sprintf("No %s yet.", strings.ToLower(input.Domain.Label()))
	case len(w.Items) == 0:
		screen.Body = "No more items."
	default:
		screen.Body = fmt.Sprintf("Page %d of %d. Pick one:", w.Page+1, navigation.PageCount(w.Total, o.pageSize))
	}

	d := input.Domain
	screen.Choices = recordRows(d, w.Items)
	screen.Choices = addRow(screen.Choices, pageRow(w, o.pageSize, func(page int) navigation.Token {
		return navigation.PageToken(d, page)
	}))
	screen.Choices = addRow(screen.Choices, menuRow())

	return &ScreenOutput{Screen: screen}, nil
}

// ViewScreen shows the card of one record
func (o *orchestrator) ViewScreen(ctx context.Context, input *ViewScreenInput) (*ScreenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rec, err := o.record(ctx, input.Domain, input.ID)
	if err != nil {
		return nil, err
	}

	screen := &Screen{
		Title: rec.Name,
		Body:  o.formatter.Card(rec),
		Image: o.recordImage(rec),
	}
	if screen.Image != "" {
		screen.Caption = o.formatter.Caption(rec)
	}

	if input.Domain.SupportsRules() && rec.HasRules {
		screen.Choices = addRow(screen.Choices, add(nil, labelRules, navigation.RulesToken(input.Domain, rec.ID)))
	}
	back := add(nil, labelBack, o.pageOf(ctx, rec))
	screen.Choices = addRow(screen.Choices, append(back, menuRow()...))

	return &ScreenOutput{Screen: screen}, nil
}

// RulesScreen shows the rules of a record
func (o *orchestrator) RulesScreen(ctx context.Context, input *RulesScreenInput) (*ScreenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Domain.SupportsRules() {
		return nil, errors.InvalidArgumentf("%s has no rules", input.Domain)
	}

	rec, err := o.record(ctx, input.Domain, input.ID)
	if err != nil {
		return nil, err
	}
	if !rec.HasRules {
		return nil, errors.NotFoundf("%s has no rules", rec.Name)
	}

	return &ScreenOutput{Screen: &Screen{
		Title: rec.Name,
		Body:  o.formatter.Rules(rec),
		Choices: [][]Choice{
			append(add(nil, "Back", navigation.ViewToken(input.Domain, rec.ID)), menuRow()...),
		},
	}}, nil
}

// SearchScreen shows one page of the records matching a query
func (o *orchestrator) SearchScreen(ctx context.Context, input *SearchScreenInput) (*ScreenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	query := navigation.ClipQuery(input.Query)
	if query == "" {
		return nil, errors.InvalidArgument("search query is required")
	}

	out, err := o.catalogRepo.Search(ctx, catalogrepo.SearchInput{Domain: input.Domain, Query: query})
	if err != nil {
		return nil, err
	}

	w := navigation.Paginate(out.Records, input.Page, o.pageSize)
	screen := &Screen{Title: fmt.Sprintf("%s matching %q", input.Domain.Label(), query)}

	switch {
	case w.Total == 0:
		screen.Body = "No matches found."
	case len(w.Items) == 0:
		screen.Body = "No more items."
	default:
		screen.Body = fmt.Sprintf("Found %d match(es). Page %d of %d:",
			w.Total, w.Page+1, navigation.PageCount(w.Total, o.pageSize))
	}

	d := input.Domain
	screen.Choices = recordRows(d, w.Items)
	screen.Choices = addRow(screen.Choices, pageRow(w, o.pageSize, func(page int) navigation.Token {
		return navigation.SearchToken(d, page, query)
	}))
	all := add(nil, "All "+strings.ToLower(d.Label()), navigation.ListToken(d))
	screen.Choices = addRow(screen.Choices, append(all, menuRow()...))

	return &ScreenOutput{Screen: screen}, nil
}

func (o *orchestrator) record(ctx context.Context, d catalog.Domain, id string) (*catalog.Record, error) {
	if id == "" {
		return nil, errors.InvalidArgument("id is required")
	}
	out, err := o.catalogRepo.GetByID(ctx, catalogrepo.GetByIDInput{Domain: d, ID: id})
	if err == nil {
		return out.Record, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	// older choices and typed input may name the record instead
	byName, nameErr := o.catalogRepo.GetByName(ctx, catalogrepo.GetByNameInput{Domain: d, Name: id})
	if nameErr != nil {
		if errors.IsNotFound(nameErr) {
			return nil, err
		}
		return nil, nameErr
	}
	return byName.Record, nil
}

// pageOf returns the list page holding rec, or the first page when the
// position cannot be worked out
func (o *orchestrator) pageOf(ctx context.Context, rec *catalog.Record) navigation.Token {
	out, err := o.catalogRepo.List(ctx, catalogrepo.ListInput{Domain: rec.Domain})
	if err != nil {
		return navigation.ListToken(rec.Domain)
	}
	for i, r := range out.Records {
		if r.ID == rec.ID {
			return navigation.PageToken(rec.Domain, i/o.pageSize)
		}
	}
	return navigation.ListToken(rec.Domain)
}

// recordImage returns the image to show with rec. Heroes without one fall
// back to images/<id>.<ext>.
func (o *orchestrator) recordImage(rec *catalog.Record) string {
	if rec.Image != "" {
		if o.assets.Exists(rec.Image) {
			return rec.Image
		}
		return ""
	}
	if rec.Domain == catalog.DomainHero {
		if guess, ok := assets.GuessImage(o.assets, rec.ID); ok {
			return guess
		}
	}
	return ""
}
