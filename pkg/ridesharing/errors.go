package ridesharing

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorKindUnreachable       ErrorKind = "ConnectorUnreachable"
	ErrorKindInvalidResponse   ErrorKind = "ConnectorMalformedResponse"
	ErrorKindUnauthorized      ErrorKind = "ConnectorAuthFailure"
	ErrorKindTimeout           ErrorKind = "ConnectorTimeout"
	ErrorKindUnsupportedConfig ErrorKind = "ConnectorUnsupportedConfig"
)

var ErrUnsupportedKind = errors.New("unsupported ridesharing connector kind")

// ErrOfferTranslation is returned by connector translators for a single offer that cannot be
// represented, the rest of the payload is still used
var ErrOfferTranslation = errors.New("failed to translate offer")

type ConnectorError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ConnectorError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ConnectorError) Unwrap() error {
	return e.Err
}

func NewConnectorError(provider string, kind ErrorKind, err error) *ConnectorError {
	return &ConnectorError{
		Provider: provider,
		Kind:     kind,
		Err:      err,
	}
}

// KindOf extracts the ErrorKind from any error returned by a connector
func KindOf(err error) ErrorKind {
	var connectorError *ConnectorError
	if errors.As(err, &connectorError) {
		return connectorError.Kind
	}

	return ErrorKindUnreachable
}
