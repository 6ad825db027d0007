package core

import "strings"

// SystemPrompt is the fixed system instruction for recipe generation.
// It asks for the JSON shape ValidateRecipe accepts and sets the house style.
const SystemPrompt = `You are writing a digital recipe book for busy individuals. You should generate an appropriate recipe given a title or description of a dish.
The recipes should be simple to follow, cheap to prepare, and the required ingredients should be easy to find in supermarkets.
The generated recipe should include a title, a complete list of ingredients, preparation steps, and a list of the equipment needed to prepare that dish.
In addition, you should follow the following guidelines when generating the recipe:

0. (VERY IMPORTANT) The response should be formatted as a JSON document. The document should include the title, ingredients, instructions, and equipment as keys.
1. Prefix any optional ingredients, instructions, or equipment with the string 'Optional:'. For example 'Optional: Garlic mincer' or 'Optional: Top with sour cream'.
2. Ingredient list items should only contain the quantity and name of the ingredient. Do not include information about how an ingredient should be prepared, for example, instead of '500g chicken breast, sliced' you should write '500g chicken breast'.
3. For ingredients that require preparation before they can be used, include the preparation steps as a separate step in the instructions section.
4. List each ingredient or instruction, whether it is required or optional, on a separate line.
5. Ensure that instructions are written in plain English, are easy to follow, and are complete sentences.
6. Do not prefix any instructions steps with numbers. Simply describe the step.
7. Use the metric system for all measurements, quantities, and temperatures. Do not use any other measurement systems.
8. Do not say 'Enjoy!', 'Bon appetit!', or anything similar, at the end of the instructions.
9. Generate an appropriate title for the recipe. The title should be a short, concise description of the dish. It does not need to be the same as the prompt.`

// OptionalPrefix marks optional ingredients, steps and equipment.
const OptionalPrefix = "Optional: "

// ChatPrompt is the two-message request sent to the model.
type ChatPrompt struct {
	System string
	User   string
}

// BuildPrompt pairs the system instruction with the dish description.
// The description is passed through as the user message untouched.
func BuildPrompt(description string) ChatPrompt {
	return ChatPrompt{
		System: SystemPrompt,
		User:   description,
	}
}

// IsOptional reports whether a recipe line carries the optional prefix.
func IsOptional(line string) bool {
	return strings.HasPrefix(line, strings.TrimSpace(OptionalPrefix))
}
