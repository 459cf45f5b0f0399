package ridesharing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxResponseSize = 8 << 20

// Call performs the provider request and maps transport failures onto connector error kinds
func Call(ctx context.Context, client *http.Client, req *http.Request, provider string) ([]byte, error) {
	req = req.WithContext(ctx)
	req.Header.Set("User-Agent", "travigo-ridesharing")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewConnectorError(provider, ErrorKindTimeout, err)
		}
		return nil, NewConnectorError(provider, ErrorKindUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, NewConnectorError(provider, ErrorKindUnauthorized, fmt.Errorf("HTTP %d", resp.StatusCode))
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, NewConnectorError(provider, ErrorKindUnreachable, fmt.Errorf("HTTP %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, NewConnectorError(provider, ErrorKindInvalidResponse, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewConnectorError(provider, ErrorKindTimeout, err)
		}
		return nil, NewConnectorError(provider, ErrorKindUnreachable, err)
	}

	return body, nil
}
