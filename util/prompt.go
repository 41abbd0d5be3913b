package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func readLine() string {
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(response)
}

// PromptString asks for a line of input, returning def on an empty answer.
func PromptString(prompt string, def string) string {
	fmt.Printf("%s (%s): ", prompt, def)

	response := readLine()
	if response == "" {
		return def
	}
	return response
}

// PromptYN asks a yes/no question, returning def on an empty answer.
func PromptYN(prompt string, def bool) bool {
	if def {
		fmt.Printf("%s (Y/n): ", prompt)
	} else {
		fmt.Printf("%s (y/N): ", prompt)
	}

	response := readLine()
	if response == "" {
		return def
	}
	return strings.EqualFold(response, "y")
}
