// Command chat talks to the FAQ classifier from a terminal.
package main

import (
	chatbotPkg "CompetitionHub/pkg/chatbot"
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type options struct {
	contacts string
	style    string
	width    int
	typing   time.Duration
}

func main() {
	_ = godotenv.Load()

	opts := options{}
	flag.StringVar(&opts.contacts, "contacts", os.Getenv("SUPPORT_CONTACTS"), "support contacts quoted in fallback replies")
	flag.StringVar(&opts.style, "style", "dark", "glamour style: dark, light, notty or ascii")
	flag.IntVar(&opts.width, "width", 80, "word wrap width")
	flag.DurationVar(&opts.typing, "typing", 800*time.Millisecond, "pause before each reply")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, opts options) error {
	classifier := chatbotPkg.NewClassifier(chatbotPkg.Config{SupportContacts: opts.contacts})
	render := newRenderer(opts.style, opts.width)

	reply := func(text string) {
		if opts.typing > 0 {
			time.Sleep(opts.typing)
		}
		fmt.Fprintf(out, "%s\n%s\n\n", botLabel, render.Render(text))
	}

	reply(chatbotPkg.WelcomeMessage)
	fmt.Fprintln(out, hintStyle.Render("/quick untuk pertanyaan cepat, /q <id> untuk memilihnya, /exit untuk keluar"))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s > ", userLabel)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "/exit" || line == "/quit":
			return nil
		case line == "/quick":
			for _, qa := range classifier.QuickActions() {
				fmt.Fprintf(out, "  %s %-13s %s\n", qa.Icon, qa.ID, qa.Text)
			}
		case strings.HasPrefix(line, "/q "):
			qa, ok := classifier.QuickAction(strings.TrimSpace(strings.TrimPrefix(line, "/q ")))
			if !ok {
				fmt.Fprintln(out, errorStyle.Render("quick action tidak ditemukan"))
				continue
			}
			fmt.Fprintf(out, "%s > %s\n", userLabel, qa.Text)
			reply(classifier.Classify(qa.Text))
		default:
			reply(classifier.Classify(line))
		}
	}
}
