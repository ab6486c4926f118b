package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"corpsite.backend/internal/config"
	"corpsite.backend/internal/infrastructure/jobs"
	"corpsite.backend/internal/infrastructure/notifier"
	"corpsite.backend/internal/usecases"
)

// notify-check sends one test message to the chat configured for a kind, so
// operators can verify bot tokens and chat ids without submitting a form.

type notifyCheckDeps struct {
	loadEnv   func() error
	loadCfg   func() *config.Config
	newSender func(cfg *config.Config) jobs.Sender
	now       func() time.Time
	out       io.Writer
}

func defaultNotifyCheckDeps() notifyCheckDeps {
	return notifyCheckDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		newSender: func(cfg *config.Config) jobs.Sender {
			return notifier.NewTelegramNotifier(cfg.Notifier.BaseURL, cfg.Notifier.Timeout)
		},
		now: time.Now,
		out: os.Stdout,
	}
}

func resolveDestination(cfg *config.Config, kind string) (notifier.Destination, error) {
	var d config.TelegramDestination
	switch kind {
	case usecases.KindApplication:
		d = cfg.Telegram.Career
	case usecases.KindContact:
		d = cfg.Telegram.Contact
	case usecases.KindInquiry:
		d = cfg.Telegram.CPU
	case usecases.KindHackathon:
		d = cfg.Telegram.Hackathon
	default:
		return notifier.Destination{}, fmt.Errorf("unknown kind %q (allowed: application, contact, inquiry, hackathon)", kind)
	}

	dest := notifier.Destination{Token: d.Token, ChatID: d.ChatID}
	if !dest.Configured() {
		return dest, fmt.Errorf("no bot token or chat id configured for %s", kind)
	}
	return dest, nil
}

func runNotifyCheck(args []string, deps notifyCheckDeps) error {
	def := defaultNotifyCheckDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.newSender == nil {
		deps.newSender = def.newSender
	}
	if deps.now == nil {
		deps.now = def.now
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("notify-check", flag.ContinueOnError)
	kindFlag := fs.String("kind", "", "submission kind whose chat to test (required)")
	textFlag := fs.String("text", "", "message text (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *kindFlag == "" {
		return fmt.Errorf("--kind is required")
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	dest, err := resolveDestination(cfg, *kindFlag)
	if err != nil {
		return err
	}

	text := *textFlag
	if text == "" {
		text = fmt.Sprintf("Notification check for %s at %s", *kindFlag, deps.now().UTC().Format(time.RFC3339))
	}

	if err := deps.newSender(cfg).Send(context.Background(), dest, text); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	_, _ = fmt.Fprintf(deps.out, "Sent test message for %s to chat %s\n", *kindFlag, dest.ChatID)
	return nil
}

func main() {
	if err := runNotifyCheck(os.Args[1:], defaultNotifyCheckDeps()); err != nil {
		log.Fatal(err)
	}
}
