package slack

import (
	"github.com/tzrikka/slackrtm/pkg/webapi"
)

// Error is the single error type crossing this library's API
// boundary; it is shared with the [webapi] package so that bindings
// and the RTM engine report failures uniformly.
type Error = webapi.Error

// ErrorKind discriminates the failure classes of [Error].
type ErrorKind = webapi.ErrorKind

const (
	ErrTransport  = webapi.ErrTransport
	ErrUTF8       = webapi.ErrUTF8
	ErrURL        = webapi.ErrURL
	ErrJSONParse  = webapi.ErrJSONParse
	ErrJSONDecode = webapi.ErrJSONDecode
	ErrJSONEncode = webapi.ErrJSONEncode
	ErrAPI        = webapi.ErrAPI
	ErrInternal   = webapi.ErrInternal
)
