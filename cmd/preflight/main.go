// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/config"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	admin := strings.TrimSpace(os.Getenv("ADMIN_API_KEYS"))
	pub := strings.TrimSpace(os.Getenv("PUBLIC_API_KEYS"))
	apiAddr := strings.TrimSpace(os.Getenv("ADDR"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	allowed := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	schedule := strings.TrimSpace(os.Getenv("CHECK_SCHEDULE"))
	targetsFile := strings.TrimSpace(os.Getenv("TARGETS_FILE"))

	if admin == "" {
		fail("ADMIN_API_KEYS is empty (admin routes will 403).")
	}
	if pub == "" {
		fail("PUBLIC_API_KEYS is empty (read routes will 401).")
	}

	// Normalize and sanity-check lists (no spaces around commas).
	for name, v := range map[string]string{"ADMIN_API_KEYS": admin, "PUBLIC_API_KEYS": pub} {
		if strings.Contains(v, " ") {
			warn(name + " contains spaces; use comma-separated with no spaces, e.g. key1,key2")
		}
	}

	if apiAddr == "" {
		warn("ADDR is empty; default in your app may be used.")
	} else {
		ok("ADDR=" + apiAddr)
	}

	if db == "" {
		warn("DATABASE_URL empty — API will use the in-memory store; targets are lost on restart.")
	} else {
		ok("DATABASE_URL present")
	}

	if allowed == "" {
		warn("ALLOWED_ORIGINS empty — browser will be blocked by CORS for cross-origin requests.")
	} else {
		ok("ALLOWED_ORIGINS=" + allowed)
	}

	if schedule == "" {
		warn("CHECK_SCHEDULE empty; the default cycle cadence will be used.")
	} else if _, err := cron.ParseStandard(schedule); err != nil {
		fail(fmt.Sprintf("CHECK_SCHEDULE %q is not a valid cron spec: %v", schedule, err))
	} else {
		ok("CHECK_SCHEDULE=" + schedule)
	}

	if targetsFile != "" {
		seeds, err := config.LoadTargets(targetsFile)
		if err != nil {
			fail(fmt.Sprintf("TARGETS_FILE %q: %v", targetsFile, err))
		}
		ok(fmt.Sprintf("TARGETS_FILE ok (%d targets)", len(seeds)))
	}

	checkAlertChannels(ok, warn)

	ok("preflight passed")
}

// checkAlertChannels verifies that at least one alert channel is fully
// configured. Email needs all three Brevo settings; a partial set is the
// usual deployment mistake.
func checkAlertChannels(ok, warn func(string)) {
	brevoKey := strings.TrimSpace(os.Getenv("BREVO_API_KEY"))
	emailFrom := strings.TrimSpace(os.Getenv("ALERT_EMAIL_FROM"))
	emailTo := strings.TrimSpace(os.Getenv("ALERT_EMAIL_TO"))
	slack := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK"))

	emailVars := 0
	for _, v := range []string{brevoKey, emailFrom, emailTo} {
		if v != "" {
			emailVars++
		}
	}

	emailReady := emailVars == 3
	switch {
	case emailReady:
		ok("email alerts configured (Brevo)")
	case emailVars > 0:
		warn("email alerts partially configured; set BREVO_API_KEY, ALERT_EMAIL_FROM and ALERT_EMAIL_TO together or not at all.")
	}

	slackReady := slack != ""
	if slackReady {
		if !strings.HasPrefix(slack, "https://") {
			warn("SLACK_WEBHOOK is not an https URL.")
		} else {
			ok("slack alerts configured")
		}
	}

	if !emailReady && !slackReady {
		warn("no alert channel configured; alerts will only appear in the logs.")
	}
}
