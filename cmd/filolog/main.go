package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/filologbot/filolog/internal/app"
	"github.com/filologbot/filolog/internal/config"
)

// splitArgs separates the command and its free-text input from the flag
// tail. Everything after the command up to the first "-" argument is the
// input, the rest is handed to the config parser.
func splitArgs(args []string) (command string, input string, flags []string) {
	if len(args) == 0 {
		return "help", "", nil
	}
	command = args[0]

	var words []string
	rest := args[1:]
	for i, a := range rest {
		if strings.HasPrefix(a, "-") {
			flags = rest[i:]
			break
		}
		words = append(words, a)
	}
	return command, strings.Join(words, " "), flags
}

func main() {

	command, input, flags := splitArgs(os.Args[1:])
	os.Args = append(os.Args[:1], flags...)

	ctx := context.Background()
	cfg := config.LoadConfig()

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	response, err := a.Execute(ctx, command, input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(response)
}
