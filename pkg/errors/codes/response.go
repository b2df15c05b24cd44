// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package codes

import (
	"fmt"
	"io"
	"net/http"
)

// ResponseError is a Code received in an HTTP response, together with the
// response status.
type ResponseError struct {
	status int
	code   Code
}

// NewResponseError pairs code with the HTTP status it was received with.
func NewResponseError(code Code, status int) *ResponseError {
	return &ResponseError{status: status, code: code}
}

func (re *ResponseError) Error() string {
	return fmt.Sprintf("Status: %s: %s", http.StatusText(re.status), re.code.Message())
}

// StatusCode returns the HTTP status of the response.
func (re *ResponseError) StatusCode() int { return re.status }

// Code returns the decoded code.
func (re *ResponseError) Code() Code { return re.code }

func (re *ResponseError) Unwrap() error { return re.code }

// CheckResponse matches the response status against the expected ones.
// Since several statuses can be valid, all of them may be passed. For any
// other status the body is decoded into a Code; decoding never fails, so
// an unreadable or malformed body still yields a ServerInternalError.
func CheckResponse(resp *http.Response, expectedStatusCodes ...int) error {
	if resp == nil {
		return nil
	}

	for _, expectedStatusCode := range expectedStatusCodes {
		if resp.StatusCode == expectedStatusCode {
			return nil
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewResponseError(ServerInternalError(fmt.Sprintf("failed to read response body: %s", err)), resp.StatusCode)
	}

	return NewResponseError(Decode(string(body)), resp.StatusCode)
}
