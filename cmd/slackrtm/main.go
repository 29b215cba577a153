// Slackrtm is a small Slack RTM listener: it logs in with a bot
// token, prints every event it receives, and optionally greets a
// channel on connect. It doubles as a usage example for the slack
// and webapi packages.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"

	"github.com/tzrikka/xdg"
)

const (
	ConfigDirName  = "slackrtm"
	ConfigFileName = "config.toml"
)

func main() {
	buildInfo, _ := debug.ReadBuildInfo()
	configFilePath := configFile()

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "dev",
			Usage: "simple setup, but unsafe for production",
		},
	}
	flags = append(flags, slackFlags(configFilePath)...)

	cmd := &cli.Command{
		Name:    "slackrtm",
		Usage:   "Stream Slack RTM events to the terminal",
		Version: buildInfo.Main.Version,
		Flags:   flags,
		Action:  run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// slackFlags defines CLI flags to configure the Slack client. These
// flags can also be set using environment variables and the
// application's configuration file.
func slackFlags(configFilePath altsrc.StringSourcer) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "slack-bot-token",
			Usage:    "Slack bot token (xoxb-...)",
			Required: true,
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SLACK_BOT_TOKEN"),
				toml.TOML("slack.bot_token", configFilePath),
			),
		},
		&cli.StringFlag{
			Name:  "greet-channel",
			Usage: `channel to greet on connect (id, or "#name")`,
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SLACK_GREET_CHANNEL"),
				toml.TOML("slack.greet_channel", configFilePath),
			),
		},
	}
}

// configFile returns the path to the app's configuration file.
// It also creates an empty file if it doesn't already exist.
func configFile() altsrc.StringSourcer {
	path, err := xdg.CreateFile(xdg.ConfigHome, ConfigDirName, ConfigFileName)
	if err != nil {
		log.Fatal().Err(err).Caller().Send()
	}
	return altsrc.StringSourcer(path)
}
