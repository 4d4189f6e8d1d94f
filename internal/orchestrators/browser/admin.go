package browser

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/render"
	catalogrepo "github.com/KirkDiggler/rpg-codex/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/mountskills"
)

const loadedAtLayout = "2006-01-02 15:04:05 MST"

// Reload rebuilds every catalog and mount skill set. Failed rebuilds keep the
// previous content and are listed in the report.
func (o *orchestrator) Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !o.authorizer.IsAdmin(input.UserID) {
		return nil, errors.PermissionDenied("admins only")
	}

	catalogs, err := o.catalogRepo.Reload(ctx, catalogrepo.ReloadInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload catalogs")
	}
	mounts, err := o.mountSkillRepo.Reload(ctx, mountskills.ReloadInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload mount skills")
	}

	var (
		lines    []string
		failures int
	)
	for _, r := range catalogs.Results {
		if r.Err != nil {
			failures++
			lines = append(lines, fmt.Sprintf("%s: kept previous (%v)", r.Domain.Label(), r.Err))
			continue
		}
		line := fmt.Sprintf("%s: %d records", r.Domain.Label(), r.Records)
		if !r.LoadedAt.IsZero() {
			line += ", loaded " + r.LoadedAt.UTC().Format(loadedAtLayout)
		}
		lines = append(lines, line)
	}
	for _, r := range mounts.Results {
		label := render.Label(string(r.MountType))
		if r.Err != nil {
			failures++
			lines = append(lines, fmt.Sprintf("%s: kept previous (%v)", label, r.Err))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %d skills", label, r.Skills))
	}

	slog.InfoContext(ctx, "content reloaded",
		"user_id", input.UserID,
		"sources", len(lines),
		"failures", failures)

	title := "Reloaded:"
	if failures > 0 {
		title = fmt.Sprintf("Reloaded with %d failure(s):", failures)
	}

	return &ReloadOutput{
		Catalogs: catalogs.Results,
		Mounts:   mounts.Results,
		Screen: &Screen{
			Title:   "Reload",
			Body:    render.Report(title, lines, render.ReportLimit),
			Choices: [][]Choice{menuRow()},
		},
	}, nil
}

// Validate checks catalogs and mount skills concurrently. Issues are reported
// catalogs first, each group in discovery order.
func (o *orchestrator) Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !o.authorizer.IsAdmin(input.UserID) {
		return nil, errors.PermissionDenied("admins only")
	}

	var catalogIssues, mountIssues []errors.Issue

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := o.catalogRepo.Validate(gctx, catalogrepo.ValidateInput{})
		if err != nil {
			return errors.Wrap(err, "failed to validate catalogs")
		}
		catalogIssues = out.Issues
		return nil
	})
	g.Go(func() error {
		out, err := o.mountSkillRepo.Validate(gctx, mountskills.ValidateInput{})
		if err != nil {
			return errors.Wrap(err, "failed to validate mount skills")
		}
		mountIssues = out.Issues
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	issues := make([]errors.Issue, 0, len(catalogIssues)+len(mountIssues))
	issues = append(issues, catalogIssues...)
	issues = append(issues, mountIssues...)

	slog.InfoContext(ctx, "sources validated",
		"user_id", input.UserID,
		"issues", len(issues))

	body := "All sources look good."
	if len(issues) > 0 {
		lines := make([]string, len(issues))
		for i, issue := range issues {
			lines[i] = issue.String()
		}
		body = render.Report(fmt.Sprintf("Found %d issue(s):", len(issues)), lines, render.ReportLimit)
	}

	return &ValidateOutput{
		Issues: issues,
		Screen: &Screen{
			Title:   "Validation",
			Body:    body,
			Choices: [][]Choice{menuRow()},
		},
	}, nil
}
