// Package slack is a client for Slack's [Real Time Messaging API]:
// it logs in with rtm.start, snapshots the team roster, and streams
// typed events from a WebSocket to a caller-supplied [EventHandler]
// while accepting outbound messages through a [Sender].
//
// The Web API bindings it builds on live in the webapi package and
// can also be used standalone.
//
// [Real Time Messaging API]: https://api.slack.com/rtm
package slack
