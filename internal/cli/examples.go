package cli

// examplePrompts is the built-in prompt set used by batch --examples and interactive mode.
var examplePrompts = []string{
	"Peaceful mountain landscape",
	"Abstract cosmic explosion",
	"Retro neon cityscape",
	"Magical forest glade",
	"Ocean waves at sunset",
	"Geometric rainbow patterns",
	"Mystical purple nebula",
	"Warm autumn colors",
	"Ice crystal formations",
	"Fire and flame patterns",
}

// ExamplePrompts returns a copy of the built-in prompts.
func ExamplePrompts() []string {
	return append([]string(nil), examplePrompts...)
}
