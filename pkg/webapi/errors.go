package webapi

// ErrorKind discriminates the failure classes that can occur while
// talking to Slack, over both the Web API and the RTM WebSocket.
type ErrorKind int

const (
	// ErrTransport covers TCP, TLS, HTTP, and WebSocket failures.
	ErrTransport ErrorKind = iota
	// ErrUTF8 means a WebSocket text frame was not valid UTF-8.
	ErrUTF8
	// ErrURL means a URL failed to parse.
	ErrURL
	// ErrJSONParse means a response body was not valid JSON.
	ErrJSONParse
	// ErrJSONDecode means valid JSON did not match the expected shape.
	ErrJSONDecode
	// ErrJSONEncode means an outbound value failed to serialize.
	ErrJSONEncode
	// ErrAPI means the server answered with "ok": false (or an
	// unusable "ok" field). Raw holds the full response body.
	ErrAPI
	// ErrInternal means a local invariant was violated, e.g. sending
	// a message before logging in.
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTransport:
		return "transport"
	case ErrUTF8:
		return "utf-8"
	case ErrURL:
		return "url"
	case ErrJSONParse:
		return "json parse"
	case ErrJSONDecode:
		return "json decode"
	case ErrJSONEncode:
		return "json encode"
	case ErrAPI:
		return "slack api"
	case ErrInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the single error type that crosses the library's API
// boundary: every Web API binding and every RTM client operation
// returns either a typed result or an *Error.
type Error struct {
	Kind ErrorKind
	Msg  string
	Raw  string // full server response body, set when Kind is ErrAPI
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	s := e.Kind.String() + " error"
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func apiError(msg, raw string) *Error {
	return &Error{Kind: ErrAPI, Msg: msg, Raw: raw}
}
