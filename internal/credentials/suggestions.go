package credentials

import (
	"crypto/rand"
	"math/big"
)

// Word lists for suggesting kid-friendly usernames at signup
var adjectives = []string{
	"happy", "sunny", "brave", "bright", "cool", "swift", "clever", "jolly",
	"mighty", "super", "star", "wild", "funny", "lucky", "magic", "bouncy",
	"turbo", "zippy", "cosmic", "epic", "groovy", "speedy", "sparky", "pixel",
}

var nouns = []string{
	"python", "snake", "coder", "wizard", "dragon", "rocket", "robot", "ninja",
	"astronaut", "explorer", "hacker", "comet", "byte", "loop", "lambda",
	"turtle", "panda", "fox", "phoenix", "captain",
}

// SuggestUsername generates a random username in the form "adjective-noun"
func SuggestUsername() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}
	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}
	return adjective + "-" + noun, nil
}

// SuggestUsernames returns n distinct-ish suggestions for the signup form
func SuggestUsernames(n int) ([]string, error) {
	seen := make(map[string]bool, n)
	var out []string
	// A few extra draws absorb duplicates from the small word lists
	for attempts := 0; len(out) < n && attempts < n*4; attempts++ {
		name, err := SuggestUsername()
		if err != nil {
			return nil, err
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out, nil
}

// randomElement picks a uniformly random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}
	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}
	return slice[num.Int64()], nil
}
