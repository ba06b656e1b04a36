package cart

import (
	"fmt"

	"github.com/google/uuid"

	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/types"
)

// ToppingOptionRule is a selectable option with its surcharge as currently
// published in the catalog.
type ToppingOptionRule struct {
	OptionID            uuid.UUID
	Nombre              string
	PrecioExtraCentavos int64
}

// ToppingGroupRule carries a group's selection bounds and its options.
type ToppingGroupRule struct {
	GroupID        uuid.UUID
	Nombre         string
	MinSelecciones int
	MaxSelecciones int
	Options        []ToppingOptionRule
}

// ToppingViolationDetail exposes the data returned when selections break a
// group's bounds.
type ToppingViolationDetail struct {
	GroupID     uuid.UUID `json:"group_id"`
	GroupName   string    `json:"group_name,omitempty"`
	MinRequired int       `json:"min_required"`
	MaxAllowed  int       `json:"max_allowed"`
	SelectedQty int       `json:"selected_qty"`
}

// ValidateToppingSelections checks every group's min/max bounds against the
// provided selections before they are frozen onto a line.
func ValidateToppingSelections(groups []ToppingGroupRule, selections types.ToppingSelections) error {
	known := make(map[uuid.UUID]ToppingGroupRule, len(groups))
	counts := make(map[uuid.UUID]int, len(groups))
	for _, group := range groups {
		known[group.GroupID] = group
	}

	for _, sel := range selections {
		if _, ok := known[sel.GroupID]; !ok {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("selection references unknown topping group %s", sel.GroupID))
		}
		counts[sel.GroupID]++
	}

	var violations []ToppingViolationDetail
	for _, group := range groups {
		selected := counts[group.GroupID]
		if selected < group.MinSelecciones || selected > group.MaxSelecciones {
			violations = append(violations, ToppingViolationDetail{
				GroupID:     group.GroupID,
				GroupName:   group.Nombre,
				MinRequired: group.MinSelecciones,
				MaxAllowed:  group.MaxSelecciones,
				SelectedQty: selected,
			})
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation,
		fmt.Sprintf("topping constraints violated for %d group(s)", len(violations))).
		WithDetails(map[string]any{"violations": violations})
}

// ResolveSelections maps option IDs to frozen ToppingSelections using the
// catalog rules, preserving request order. This is the one place the
// surcharge snapshot is taken.
func ResolveSelections(groups []ToppingGroupRule, optionIDs []uuid.UUID) (types.ToppingSelections, error) {
	type resolved struct {
		groupID uuid.UUID
		option  ToppingOptionRule
	}
	index := make(map[uuid.UUID]resolved)
	for _, group := range groups {
		for _, option := range group.Options {
			index[option.OptionID] = resolved{groupID: group.GroupID, option: option}
		}
	}

	selections := make(types.ToppingSelections, 0, len(optionIDs))
	for _, id := range optionIDs {
		entry, ok := index[id]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("unknown topping option %s", id))
		}
		selections = append(selections, types.ToppingSelection{
			OptionID:            entry.option.OptionID,
			GroupID:             entry.groupID,
			Nombre:              entry.option.Nombre,
			PrecioExtraCentavos: entry.option.PrecioExtraCentavos,
		})
	}
	return selections, nil
}
