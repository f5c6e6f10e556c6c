package session

import "fmt"

func statusMessage(remaining int, mask string) string {
	return fmt.Sprintf("%d remaining tries. %s", remaining, mask)
}

func repeatMessage(letter rune, remaining int, mask string) string {
	return fmt.Sprintf("You already guessed '%c' - %d remaining tries. %s", letter, remaining, mask)
}

func winMessage(word string) string {
	return fmt.Sprintf("You win. The word was: %s. Press Enter to end the game.", word)
}

func loseMessage(word string) string {
	return fmt.Sprintf("You lose. The word was: %s", word)
}
