package constants

const (
	// DefaultTries is the number of unsuccessful guesses a player may make before losing.
	DefaultTries = 10
	// MaskPlaceholder hides letters that have not been guessed yet.
	MaskPlaceholder = '_'
	// MaxGuessLength caps a single guess line in bytes, excluding the line terminator.
	MaxGuessLength = 1024
)
