package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/navigation"
)

const (
	// NoticeInvalidToken replaces a screen whose token could not be used
	NoticeInvalidToken = "That choice is no longer valid."
	// NoticeNoSearchDomain is shown for a query without a section to search
	NoticeNoSearchDomain = "Pick a section to search first."
)

// Handle resolves one inbound action into a screen
func (o *orchestrator) Handle(ctx context.Context, input *HandleInput) (*HandleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tok, notice := o.target(input)

	for {
		screen, err := o.render(ctx, tok)
		if err == nil {
			if screen.Notice == "" {
				screen.Notice = notice
			}
			return &HandleOutput{Screen: screen}, nil
		}

		recovered, ok := recoverNotice(tok, err)
		if !ok {
			return nil, err
		}
		slog.WarnContext(ctx, "screen recovered",
			"token", tok.String(),
			"code", errors.GetCode(err),
			"error", err.Error())
		if notice == "" {
			notice = recovered
		}

		parent, ok := parentOf(tok)
		if !ok {
			return nil, err
		}
		tok = parent
	}
}

// target picks the token to render. A query turns the action into a search.
func (o *orchestrator) target(input *HandleInput) (navigation.Token, string) {
	var (
		tok    = navigation.MenuToken()
		notice string
	)
	if input.Token != "" {
		decoded, err := navigation.Decode(input.Token)
		if err != nil {
			notice = NoticeInvalidToken
		} else {
			tok = decoded
		}
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return tok, notice
	}

	d := input.Domain
	if d == "" {
		d = tok.Domain
	}
	if !isListDomain(d) {
		return navigation.MenuToken(), NoticeNoSearchDomain
	}
	return navigation.SearchToken(d, 0, query), notice
}

func (o *orchestrator) render(ctx context.Context, tok navigation.Token) (*Screen, error) {
	var (
		out *ScreenOutput
		err error
	)
	switch tok.Action {
	case navigation.ActionMenu:
		out, err = o.MenuScreen(ctx, &MenuScreenInput{})
	case navigation.ActionMounts:
		out, err = o.MountMenuScreen(ctx, &MountMenuScreenInput{})
	case navigation.ActionList:
		out, err = o.ListScreen(ctx, &ListScreenInput{Domain: tok.Domain})
	case navigation.ActionPage:
		out, err = o.ListScreen(ctx, &ListScreenInput{Domain: tok.Domain, Page: tok.Page})
	case navigation.ActionView:
		out, err = o.ViewScreen(ctx, &ViewScreenInput{Domain: tok.Domain, ID: tok.Selector})
	case navigation.ActionRules:
		out, err = o.RulesScreen(ctx, &RulesScreenInput{Domain: tok.Domain, ID: tok.Selector})
	case navigation.ActionSearch:
		out, err = o.SearchScreen(ctx, &SearchScreenInput{Domain: tok.Domain, Query: tok.Selector, Page: tok.Page})
	case navigation.ActionSlotList:
		out, err = o.SlotScreen(ctx, &SlotScreenInput{MountType: tok.MountType(), Slot: tok.Slot})
	case navigation.ActionSlotItem:
		out, err = o.ItemScreen(ctx, &ItemScreenInput{MountType: tok.MountType(), Slot: tok.Slot, Index: tok.Index})
	case navigation.ActionSlotNav:
		out, err = o.NavScreen(ctx, &NavScreenInput{
			MountType: tok.MountType(),
			Slot:      tok.Slot,
			Index:     tok.Index,
			Direction: tok.Direction,
		})
	default:
		return nil, errors.InvalidTokenf("unknown action %q", tok.Action)
	}
	if err != nil {
		return nil, err
	}
	return out.Screen, nil
}

// recoverNotice reports whether a failed screen can fall back to its parent,
// and the notice to show when it does
func recoverNotice(tok navigation.Token, err error) (string, bool) {
	code := errors.GetCode(err)
	switch {
	case code == errors.CodeInvalidToken, code == errors.CodeInvalidArgument:
		return NoticeInvalidToken, true
	case code == errors.CodeNotFound:
		return errors.GetMessage(err), true
	case code.Fatal(), code == errors.CodeUnavailable:
		label := "This content"
		if tok.Domain != "" {
			label = tok.Domain.Label()
		}
		return fmt.Sprintf("%s unavailable right now.", label), true
	}
	return "", false
}

// parentOf is the screen one level up from tok
func parentOf(tok navigation.Token) (navigation.Token, bool) {
	switch tok.Action {
	case navigation.ActionRules:
		return navigation.ViewToken(tok.Domain, tok.Selector), true
	case navigation.ActionView, navigation.ActionPage, navigation.ActionSearch:
		return navigation.ListToken(tok.Domain), true
	case navigation.ActionSlotItem, navigation.ActionSlotNav:
		return navigation.SlotListToken(tok.MountType(), tok.Slot), true
	case navigation.ActionSlotList:
		return navigation.MountsToken(), true
	case navigation.ActionList, navigation.ActionMounts:
		return navigation.MenuToken(), true
	}
	return navigation.Token{}, false
}

func isListDomain(d catalog.Domain) bool {
	for _, have := range catalog.ListDomains {
		if have == d {
			return true
		}
	}
	return false
}
