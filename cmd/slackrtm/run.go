package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/urfave/cli/v3"

	"github.com/tzrikka/slackrtm/pkg/slack"
)

// run initializes logging, logs in to Slack, and streams RTM events
// until the server closes the connection.
func run(ctx context.Context, cmd *cli.Command) error {
	initLog(cmd.Bool("dev"))

	client := slack.New(cmd.String("slack-bot-token"))
	h := &printHandler{greetChannel: cmd.String("greet-channel")}

	ctx = log.Logger.WithContext(ctx)
	return client.LoginAndRun(ctx, h)
}

// initLog initializes the logger, based on whether the listener is
// running in development mode or not.
func initLog(devMode bool) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	if !devMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Caller().Logger()
		return
	}

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05.000",
	}).With().Caller().Logger()

	log.Warn().Msg("********** DEV MODE - UNSAFE IN PRODUCTION! **********")
}

// printHandler logs every RTM callback, and greets a channel on
// connect when one was configured.
type printHandler struct {
	greetChannel string
}

func (h *printHandler) OnConnect(c *slack.RtmClient) {
	self, err := c.GetSelf()
	if err != nil {
		log.Error().Err(err).Msg("no handshake snapshot")
		return
	}
	log.Info().Str("user_id", self.ID).Str("user_name", self.Name).Msg("connected")

	if h.greetChannel == "" {
		return
	}
	if _, err := c.SendMessage(h.greetChannel, "Hello world!"); err != nil {
		log.Error().Err(err).Str("channel", h.greetChannel).Msg("greeting failed")
	}
}

func (h *printHandler) OnEvent(c *slack.RtmClient, ev slack.Event, err error, raw string) {
	if err != nil {
		log.Warn().Err(err).Msg("undecodable event")
		return
	}

	switch e := ev.(type) {
	case *slack.Hello:
		log.Info().Msg("server says hello")
	case *slack.MessageEvent:
		log.Info().Str("subtype", e.Msg.Subtype()).Str("raw", raw).Msg("message")
	case *slack.MessageSent:
		log.Info().Int("reply_to", e.ReplyTo).Str("ts", e.Ts).Msg("message acked")
	case *slack.MessageError:
		log.Warn().Int("reply_to", e.ReplyTo).Int("code", e.Error.Code).
			Str("msg", e.Error.Msg).Msg("message rejected")
	default:
		log.Debug().Str("type", ev.EventType()).Str("raw", raw).Msg("event")
	}
}

func (h *printHandler) OnPing(c *slack.RtmClient) {
	log.Trace().Msg("server ping")
}

func (h *printHandler) OnClose(c *slack.RtmClient) {
	log.Info().Msg("server closed the stream")
}
