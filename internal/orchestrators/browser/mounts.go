package browser

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-codex/internal/assets"
	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/navigation"
	"github.com/KirkDiggler/rpg-codex/internal/render"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/mountskills"
)

// NoticeNoMore is shown when stepping past either end of a slot
const NoticeNoMore = "No more items"

// MountMenuScreen offers every mount type
func (o *orchestrator) MountMenuScreen(_ context.Context, _ *MountMenuScreenInput) (*ScreenOutput, error) {
	rows := make([][]Choice, 0, len(catalog.MountTypes)+1)
	for _, mt := range catalog.MountTypes {
		rows = addRow(rows, add(nil, render.Label(string(mt)), navigation.SlotListToken(mt, 1)))
	}
	rows = addRow(rows, menuRow())

	return &ScreenOutput{Screen: &Screen{
		Title:   catalog.DomainMountSkill.Label(),
		Body:    "Choose mount type:",
		Choices: rows,
	}}, nil
}

// SlotScreen lists the skills of one slot
func (o *orchestrator) SlotScreen(ctx context.Context, input *SlotScreenInput) (*ScreenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	records, err := o.slot(ctx, input.MountType, input.Slot)
	if err != nil {
		return nil, err
	}

	screen := &Screen{Title: slotTitle(input.MountType, input.Slot)}
	if len(records) == 0 {
		screen.Body = "No skills yet."
	} else {
		screen.Body = "Pick a skill:"
	}

	for i, rec := range records {
		screen.Choices = addRow(screen.Choices, add(nil, rec.Name, navigation.SlotItemToken(input.MountType, input.Slot, i)))
	}
	screen.Choices = addRow(screen.Choices, slotFooter(input.MountType, input.Slot))

	return &ScreenOutput{Screen: screen}, nil
}

// ItemScreen shows one mount skill with its position in the slot
func (o *orchestrator) ItemScreen(ctx context.Context, input *ItemScreenInput) (*ScreenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	records, err := o.slot(ctx, input.MountType, input.Slot)
	if err != nil {
		return nil, err
	}

	screen, err := o.item(input.MountType, input.Slot, records, input.Index)
	if err != nil {
		return nil, err
	}
	return &ScreenOutput{Screen: screen}, nil
}

// NavScreen steps from one mount skill to its neighbor. Stepping past either
// end keeps the current skill and adds a notice.
func (o *orchestrator) NavScreen(ctx context.Context, input *NavScreenInput) (*ScreenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	records, err := o.slot(ctx, input.MountType, input.Slot)
	if err != nil {
		return nil, err
	}

	index, moved := navigation.Step(records, input.Index, input.Direction)
	if !moved {
		index = input.Index
	}

	screen, err := o.item(input.MountType, input.Slot, records, index)
	if err != nil {
		return nil, err
	}
	if !moved {
		screen.Notice = NoticeNoMore
	}
	return &ScreenOutput{Screen: screen}, nil
}

func (o *orchestrator) slot(ctx context.Context, mt catalog.MountType, slot int) ([]*catalog.Record, error) {
	out, err := o.mountSkillRepo.Slot(ctx, mountskills.SlotInput{MountType: mt, Slot: slot})
	if err != nil {
		return nil, err
	}
	return out.Records, nil
}

func (o *orchestrator) item(mt catalog.MountType, slot int, records []*catalog.Record, index int) (*Screen, error) {
	rec, ok := navigation.At(records, index)
	if !ok {
		return nil, errors.NotFoundf("%s slot %d has no skill %d", mt, slot, index+1)
	}

	screen := &Screen{
		Title: fmt.Sprintf("%s (%d/%d)", rec.Name, index+1, len(records)),
		Body:  o.formatter.Card(rec),
	}
	if image := assets.MountSkillPath(rec.Image); o.assets.Exists(image) {
		screen.Image = image
		screen.Caption = o.formatter.Caption(rec)
	} else {
		screen.Body += fmt.Sprintf("\n\n(image not found: %s)", rec.Image)
	}

	var nav []Choice
	n := navigation.Adjacent(records, index)
	if n.HasPrev {
		nav = add(nav, labelPrev, navigation.SlotNavToken(mt, slot, index, navigation.DirectionPrev))
	}
	if n.HasNext {
		nav = add(nav, labelNext, navigation.SlotNavToken(mt, slot, index, navigation.DirectionNext))
	}
	screen.Choices = addRow(screen.Choices, nav)
	screen.Choices = addRow(screen.Choices, add(nil, labelBack, navigation.SlotListToken(mt, slot)))
	screen.Choices = addRow(screen.Choices, add(nil, labelTypes, navigation.MountsToken()))

	return screen, nil
}

func slotTitle(mt catalog.MountType, slot int) string {
	return fmt.Sprintf("%s — Slot %d", render.Label(string(mt)), slot)
}

// slotFooter offers the other slot of the same mount type and the type menu
func slotFooter(mt catalog.MountType, slot int) []Choice {
	other := catalog.SlotCount + 1 - slot
	row := add(nil, fmt.Sprintf("Slot %d", other), navigation.SlotListToken(mt, other))
	return add(row, labelTypes, navigation.MountsToken())
}
