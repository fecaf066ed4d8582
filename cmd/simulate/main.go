package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"lifemind-be/pkg/dialogue"

	"github.com/fatih/color"
)

// Interactive console for exercising the dialogue engine without a server:
// type utterances, confirm with "yes", and watch which actions get emitted.
func main() {
	engine := dialogue.NewEngine()
	ctx := dialogue.Context{}

	header := color.New(color.FgCyan, color.Bold)
	userCol := color.New(color.FgGreen)
	assistantCol := color.New(color.FgYellow)
	actionCol := color.New(color.FgMagenta, color.Bold)

	header.Println("=== LifeMind Dialogue Simulator ===")
	fmt.Println(`Try: "remind me to call mom tomorrow at 3pm", then "yes". Type "exit" to quit.`)
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		userCol.Print("you> ")
		if !scanner.Scan() {
			break
		}
		utterance := strings.TrimSpace(scanner.Text())
		if utterance == "" {
			continue
		}
		if utterance == "exit" || utterance == "quit" {
			break
		}

		res := engine.Respond(utterance, ctx)
		ctx = res.Next

		assistantCol.Printf("assistant> %s\n", res.Reply)

		if res.Ready != nil {
			s := res.Ready.Slots
			actionCol.Printf("  [emitted %s] text=%q date=%s time=%s", res.Ready.Type, s.Text, s.Date, s.Time)
			if s.Priority != "" {
				actionCol.Printf(" priority=%s", s.Priority)
			}
			fmt.Println()
		}

		if ctx.AwaitingApproval {
			fmt.Println("  (awaiting your confirmation)")
		} else if ctx.PendingAction != nil && len(ctx.PendingAction.MissingFields) > 0 {
			fmt.Printf("  (missing: %s)\n", strings.Join(ctx.PendingAction.MissingFields, ", "))
		}
	}
}
