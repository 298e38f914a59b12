package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

type SelectionKind string

const (
	SelectionSingle SelectionKind = "single"
	SelectionMulti  SelectionKind = "multi"
)

// Option is one choice inside a customization group, carrying its price delta.
type Option struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Selection is the customer's pick for one customization group. Exactly one
// of Option/Options is populated, keyed by Kind.
type Selection struct {
	Kind    SelectionKind `json:"kind"`
	Option  *Option       `json:"option,omitempty"`
	Options []Option      `json:"options,omitempty"`
}

func (s Selection) Price() float64 {
	switch s.Kind {
	case SelectionSingle:
		if s.Option != nil {
			return s.Option.Price
		}
	case SelectionMulti:
		var sum float64
		for _, opt := range s.Options {
			sum += opt.Price
		}
		return sum
	}
	return 0
}

// Customizations maps a customization-group name to the selection made for it.
type Customizations map[string]Selection

func (c Customizations) Price() float64 {
	var sum float64
	for _, sel := range c {
		sum += sel.Price()
	}
	return sum
}

// Fingerprint returns a canonical string for a set of selections: group names
// sorted, multi-select options sorted by name. Two sets of selections are the
// same choice exactly when their fingerprints match.
func (c Customizations) Fingerprint() string {
	if len(c) == 0 {
		return ""
	}
	groups := make([]string, 0, len(c))
	for name := range c {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	var b strings.Builder
	for _, name := range groups {
		sel := c[name]
		b.WriteString(name)
		b.WriteByte('=')
		switch sel.Kind {
		case SelectionSingle:
			if sel.Option != nil {
				b.WriteString(sel.Option.Name)
			}
		case SelectionMulti:
			names := make([]string, 0, len(sel.Options))
			for _, opt := range sel.Options {
				names = append(names, opt.Name)
			}
			sort.Strings(names)
			b.WriteString(strings.Join(names, ","))
		}
		b.WriteByte(';')
	}
	return b.String()
}

func (c Customizations) Equal(other Customizations) bool {
	return c.Fingerprint() == other.Fingerprint()
}

// CartLine is one priced, quantified selection of a menu item.
type CartLine struct {
	ID                 string         `json:"id"`
	ItemID             int            `json:"item_id"`
	RestaurantID       int            `json:"restaurant_id"`
	RestaurantName     string         `json:"restaurant_name"`
	Name               string         `json:"name"`
	UnitPrice          float64        `json:"unit_price"`
	Customizations     Customizations `json:"customizations"`
	CustomizationPrice float64        `json:"customization_price"`
	TotalPrice         float64        `json:"total_price"`
	Quantity           int            `json:"quantity"`
	AddedAt            time.Time      `json:"added_at"`
}

// RecalcPrices derives CustomizationPrice and TotalPrice from the unit price
// and the current selections.
func (l *CartLine) RecalcPrices() {
	l.CustomizationPrice = l.Customizations.Price()
	l.TotalPrice = l.UnitPrice + l.CustomizationPrice
}

// LineKey identifies a line by what the customer chose rather than by its
// local id. Lines with equal keys are merged, not duplicated.
func (l CartLine) LineKey() string {
	return strconv.Itoa(l.ItemID) + "|" + l.Customizations.Fingerprint()
}

// CustomizationGroup is the menu-side template for a group: its declared type
// and the options on offer. Favorites carry templates, not selections.
type CustomizationGroup struct {
	Name    string        `json:"name"`
	Type    SelectionKind `json:"type"`
	Options []Option      `json:"options"`
}

// FavoriteEntry is a saved menu item. No quantity, no selection.
type FavoriteEntry struct {
	ID             string               `json:"id"`
	ItemID         int                  `json:"item_id"`
	RestaurantID   int                  `json:"restaurant_id"`
	RestaurantName string               `json:"restaurant_name"`
	Name           string               `json:"name"`
	Price          float64              `json:"price"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	DietaryType    string               `json:"dietary_type"`
	Customizations []CustomizationGroup `json:"customizations"`
	AddedAt        time.Time            `json:"added_at"`
}
