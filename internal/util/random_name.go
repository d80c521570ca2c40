package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Lucky", "Bold", "Quiet", "Steady", "Wild", "Patient", "Crafty", "Sly",
	"Brave", "Stoic", "Loose", "Tight", "Cheery", "Grim", "Swift", "Calm",
	"Daring", "Shifty", "Cool", "Fierce", "Humble", "Slick", "Sharp", "Merry",
}

var animals = []string{
	"Shark", "Fish", "Fox", "Owl", "Wolf", "Badger", "Raven", "Otter",
	"Lynx", "Moose", "Heron", "Viper", "Crab", "Mole", "Hawk", "Bison",
	"Stoat", "Tiger", "Panda", "Gecko", "Mongoose", "Walrus", "Ibex", "Crane",
}

// GetRandomName returns a random name by combining an adjective with an animal.
// Used when a player joins a table without providing a display name.
func GetRandomName() string {
	adjectivesIndex := rand.Intn(len(adjectives))
	animalsIndex := rand.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
