package tui

import (
	"fmt"
	"strings"

	"github.com/dhabedank/recipe-gpt/internal/core"
)

// Tab is one of the recipe detail tabs.
type Tab int

const (
	TabInstructions Tab = iota
	TabIngredients
	TabEquipment
)

// Tabs lists the detail tabs in display order.
var Tabs = []Tab{TabInstructions, TabIngredients, TabEquipment}

func (t Tab) String() string {
	switch t {
	case TabInstructions:
		return "Instructions"
	case TabIngredients:
		return "Ingredients"
	case TabEquipment:
		return "Required Equipment"
	default:
		return "Unknown"
	}
}

// RenderTabBar renders the tab headers with active highlighted.
func RenderTabBar(active Tab) string {
	parts := make([]string, 0, len(Tabs))
	for _, tab := range Tabs {
		if tab == active {
			parts = append(parts, ActiveTabStyle.Render(tab.String()))
		} else {
			parts = append(parts, InactiveTabStyle.Render(tab.String()))
		}
	}
	return strings.Join(parts, " ")
}

// RenderRecipeTab renders the body of one tab. Instructions are numbered
// from 1; ingredients and equipment are bulleted.
func RenderRecipeTab(recipe *core.Recipe, tab Tab) string {
	if recipe == nil {
		return ""
	}

	var b strings.Builder
	switch tab {
	case TabInstructions:
		for i, step := range recipe.Instructions {
			b.WriteString(styleLine(fmt.Sprintf("%d. %s", i+1, step), step))
			b.WriteByte('\n')
		}
	case TabIngredients:
		writeBullets(&b, recipe.Ingredients)
	case TabEquipment:
		writeBullets(&b, recipe.Equipment)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderRecipe renders a whole recipe for plain terminal output.
func RenderRecipe(recipe *core.Recipe) string {
	if recipe == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(recipe.Title))
	b.WriteString("\n")
	for _, tab := range []Tab{TabIngredients, TabInstructions, TabEquipment} {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(tab.String()))
		b.WriteString("\n")
		b.WriteString(RenderRecipeTab(recipe, tab))
		b.WriteString("\n")
	}
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString(styleLine("- "+item, item))
		b.WriteByte('\n')
	}
}

// styleLine mutes a rendered line when its source text is optional.
func styleLine(rendered, source string) string {
	if core.IsOptional(source) {
		return OptionalStyle.Render(rendered)
	}
	return rendered
}
