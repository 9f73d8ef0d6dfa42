package core

import "fmt"

// Greet returns the demo greeting shown by the UI.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}
