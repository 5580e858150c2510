package story

import (
	"context"
	"fmt"
	"strings"

	"github.com/ironsheep/roku-tools/internal/tools"
)

// DefaultTheme is used when the caller does not name one.
const DefaultTheme = "adventure"

// stories maps a lowercase theme to its canned story.
var stories = map[string]string{
	"adventure":  "Once upon a time, in a magical forest, there lived a brave little rabbit named Hopper. One sunny morning, Hopper discovered an ancient map hidden under a bush! 'This looks like an adventure!' he exclaimed. With his friends - a wise old owl and a playful squirrel - they set off to find the legendary Golden Carrot. Along the way, they crossed a sparkling river, climbed a towering hill, and even made friends with a friendly dragon! After many exciting moments and a few close calls, they finally found the Golden Carrot. But the real treasure wasn't the carrot - it was the wonderful friendship they discovered on their journey! And they all lived happily, adventuring together forever after. The end! 🌟",
	"friendship": "In a cozy little village, there were two best friends named Sunny and Cloud. Sunny was always cheerful and bright, while Cloud sometimes felt a bit gloomy. One day, Sunny noticed Cloud was sad. 'What's wrong, my friend?' asked Sunny. Cloud sighed, 'I feel like I'm always blocking everyone's sunshine.' Sunny smiled warmly and said, 'But without you, we wouldn't have gentle rain for the flowers, or beautiful rainbows after a storm!' From that day on, Cloud learned that everyone has something special to offer. They became even closer friends, helping each other through sunny days and rainy ones alike. And together, they made the world a more beautiful place! The end! 🌈",
	"magic":      "Deep in an enchanted forest, there lived a young wizard named Sparkle. Sparkle had a magical wand that could make anything happen, but he was very shy about using it. One day, the forest animals asked for his help - their favorite pond was drying up! With a deep breath and a wave of his wand, Sparkle created a beautiful waterfall that filled the pond with sparkling water. The animals cheered! 'You did it!' they cried. Sparkle learned that magic isn't just about spells - it's about having the courage to help others. From then on, Sparkle used his magic to make the forest a happier place for everyone. And they all lived magically ever after! ✨",
	"dreams":     "There was once a little star named Twinkle who lived in the night sky. Twinkle dreamed of becoming the brightest star, but felt too small compared to the big, bright stars around him. One night, during a meteor shower, Twinkle met a wise old comet. 'Every star shines in their own special way,' said the comet. 'Your gentle twinkle helps children find their way home and brings smiles to their faces.' Twinkle realized that being true to himself was the brightest thing of all! From that day on, Twinkle shone with confidence, knowing that even small lights can make a big difference. And every child who looked up at the sky smiled, knowing Twinkle was watching over them. The end! ⭐",
	"nature":     "In a lush green valley, there grew a mighty oak tree named Oakley. Oakley was the oldest and tallest tree in the valley, but he often felt lonely because he couldn't move around like the other animals. One spring day, a family of birds built their nest in Oakley's branches. 'Thank you for being our home!' chirped the birds. Soon, butterflies danced around his leaves, and squirrels played in his shade. Oakley realized that by standing strong and providing shelter, he was actually the heart of the entire valley community! He wasn't lonely anymore - he was loved. And the valley flourished because of Oakley's quiet strength. The end! 🌳",
}

const genericStory = "Oh, what a wonderful theme! Let me tell you a special story about {theme}. Once upon a time, there was a curious explorer who loved {theme} more than anything. One day, while exploring, they discovered a magical {theme} garden filled with wonders! With the help of friendly animals and sparkling magic, they learned that {theme} brings joy and adventure to everyone. The explorer made many friends, solved fun puzzles, and discovered that following their passion for {theme} was the greatest adventure of all! And they lived happily, surrounded by {theme} and friends. The end! 🎉"

// Themes returns the themes that have a canned story.
func Themes() []string {
	return []string{"adventure", "friendship", "magic", "dreams", "nature"}
}

// Story returns the story body for theme. Known themes match case-insensitively; any other
// theme is substituted into every slot of the generic story.
func Story(theme string) string {
	if s, ok := stories[strings.ToLower(theme)]; ok {
		return s
	}
	return strings.ReplaceAll(genericStory, "{theme}", theme)
}

// Args are the arguments of tell_short_story.
type Args struct {
	Theme string `json:"theme,omitempty" jsonschema:"The theme or topic for the story, e.g. adventure, friendship, magic"`
}

// Tell is the tell_short_story handler.
func Tell(_ context.Context, a Args) tools.Result {
	theme := a.Theme
	if strings.TrimSpace(theme) == "" {
		theme = DefaultTheme
	}
	return tools.OK(fmt.Sprintf("Oh, I'd love to tell you a story! Here's a fun one about %s: %s", theme, Story(theme)))
}
