// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package codes defines the client-facing error codes reported by the
// search and query subsystem.
//
// Each code is a permanently assigned number. 10001 is the generic band and
// 20001 to 20012 are search specific. A number, once assigned, is never
// reused for a different kind.
package codes

import (
	"fmt"
	"net/http"
	"strings"
)

// Kind identifies a registry entry.
type Kind uint8

const (
	KindServerInternalError Kind = iota + 1
	KindSearchSQLNotValid
	KindSearchStreamNotFound
	KindFullTextSearchFieldNotFound
	KindSearchFieldNotFound
	KindSearchFunctionNotDefined
	KindSearchParquetFileNotFound
	KindSearchFieldHasNoCompatibleDataType
	KindSearchSQLExecuteError
	KindSearchCancelQuery
	KindSearchTimeout
	KindInvalidParams
	KindRatelimitExceeded
)

// Nginx convention for a request abandoned by the client.
const StatusClientClosedRequest = 499

// Descriptor is the registry entry for one kind.
type Descriptor struct {
	Kind Kind
	Name string
	Code int

	// Message is the category text. When Interpolate is set it holds one
	// %s verb that receives the payload.
	Message     string
	Interpolate bool

	// Payload reports whether the kind carries a text payload.
	Payload bool

	// Public reports whether the payload may be shown to external callers.
	Public bool

	// Decodable reports whether Decode maps the code back to this kind.
	Decodable bool

	StatusCode int
}

// registry is the single authoritative table. Order follows Kind.
var registry = []Descriptor{
	{Kind: KindServerInternalError, Name: "ServerInternalError", Code: 10001, Message: "Server Internal Error", Payload: true, Public: true, Decodable: true, StatusCode: http.StatusInternalServerError},
	{Kind: KindSearchSQLNotValid, Name: "SearchSQLNotValid", Code: 20001, Message: "Search SQL not valid", Payload: true, Public: true, Decodable: true, StatusCode: http.StatusBadRequest},
	{Kind: KindSearchStreamNotFound, Name: "SearchStreamNotFound", Code: 20002, Message: "Search stream not found: %s", Interpolate: true, Payload: true, Decodable: true, StatusCode: http.StatusNotFound},
	{Kind: KindFullTextSearchFieldNotFound, Name: "FullTextSearchFieldNotFound", Code: 20003, Message: "Full text search field not found", Decodable: true, StatusCode: http.StatusBadRequest},
	{Kind: KindSearchFieldNotFound, Name: "SearchFieldNotFound", Code: 20004, Message: "Search field not found: %s", Interpolate: true, Payload: true, Decodable: true, StatusCode: http.StatusBadRequest},
	{Kind: KindSearchFunctionNotDefined, Name: "SearchFunctionNotDefined", Code: 20005, Message: "Search function not defined: %s", Interpolate: true, Payload: true, Decodable: true, StatusCode: http.StatusBadRequest},
	{Kind: KindSearchParquetFileNotFound, Name: "SearchParquetFileNotFound", Code: 20006, Message: "Search parquet file not found", Decodable: true, StatusCode: http.StatusInternalServerError},
	{Kind: KindSearchFieldHasNoCompatibleDataType, Name: "SearchFieldHasNoCompatibleDataType", Code: 20007, Message: "Search field has no compatible data type: %s", Interpolate: true, Payload: true, Decodable: true, StatusCode: http.StatusBadRequest},
	{Kind: KindSearchSQLExecuteError, Name: "SearchSQLExecuteError", Code: 20008, Message: "Search SQL execute error", Payload: true, Public: true, Decodable: true, StatusCode: http.StatusInternalServerError},
	{Kind: KindSearchCancelQuery, Name: "SearchCancelQuery", Code: 20009, Message: "Search query was cancelled", Payload: true, Public: true, Decodable: true, StatusCode: StatusClientClosedRequest},
	{Kind: KindSearchTimeout, Name: "SearchTimeout", Code: 20010, Message: "Search query timed out", Payload: true, Public: true, Decodable: true, StatusCode: http.StatusRequestTimeout},
	// 20011 and 20012 are encoded but deliberately not decoded.
	{Kind: KindInvalidParams, Name: "InvalidParams", Code: 20011, Message: "Invalid parameters", Payload: true, Public: true, StatusCode: http.StatusBadRequest},
	{Kind: KindRatelimitExceeded, Name: "RatelimitExceeded", Code: 20012, Message: "Ratelimit exceeded", Payload: true, Public: true, StatusCode: http.StatusTooManyRequests},
}

var (
	byKind = make(map[Kind]Descriptor, len(registry))
	byCode = make(map[int]Descriptor, len(registry))
)

func init() {
	for _, d := range registry {
		if _, ok := byCode[d.Code]; ok {
			panic(fmt.Sprintf("codes: duplicate wire code %d", d.Code))
		}
		byKind[d.Kind] = d
		byCode[d.Code] = d
	}
}

// All returns a copy of the registry in code order.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the descriptor assigned to a wire code.
func Lookup(code int) (Descriptor, bool) {
	d, ok := byCode[code]
	return d, ok
}

// LookupName returns the descriptor with the given name, ignoring case.
func LookupName(name string) (Descriptor, bool) {
	for _, d := range registry {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Descriptor{}, false
}

func (k Kind) String() string {
	if d, ok := byKind[k]; ok {
		return d.Name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Code is a client-facing error value: a kind plus an optional opaque
// payload. Code is comparable and safe to share between goroutines.
type Code struct {
	kind    Kind
	payload string
}

func newCode(k Kind, payload string) Code {
	if !byKind[k].Payload {
		payload = ""
	}
	return Code{kind: k, payload: payload}
}

func ServerInternalError(msg string) Code { return newCode(KindServerInternalError, msg) }

func SearchSQLNotValid(msg string) Code { return newCode(KindSearchSQLNotValid, msg) }

func SearchStreamNotFound(stream string) Code { return newCode(KindSearchStreamNotFound, stream) }

func FullTextSearchFieldNotFound() Code { return newCode(KindFullTextSearchFieldNotFound, "") }

func SearchFieldNotFound(field string) Code { return newCode(KindSearchFieldNotFound, field) }

func SearchFunctionNotDefined(fn string) Code { return newCode(KindSearchFunctionNotDefined, fn) }

func SearchParquetFileNotFound() Code { return newCode(KindSearchParquetFileNotFound, "") }

func SearchFieldHasNoCompatibleDataType(field string) Code {
	return newCode(KindSearchFieldHasNoCompatibleDataType, field)
}

func SearchSQLExecuteError(msg string) Code { return newCode(KindSearchSQLExecuteError, msg) }

func SearchCancelQuery(msg string) Code { return newCode(KindSearchCancelQuery, msg) }

func SearchTimeout(msg string) Code { return newCode(KindSearchTimeout, msg) }

func InvalidParams(msg string) Code { return newCode(KindInvalidParams, msg) }

func RatelimitExceeded(msg string) Code { return newCode(KindRatelimitExceeded, msg) }

// New builds the value of kind k. The payload is dropped for kinds that
// carry none. Unknown kinds yield ServerInternalError(payload).
func New(k Kind, payload string) Code {
	if _, ok := byKind[k]; !ok {
		return ServerInternalError(payload)
	}
	return newCode(k, payload)
}

// Kind returns the registry kind.
func (c Code) Kind() Kind { return c.kind }

// IsZero reports whether c is the zero value.
func (c Code) IsZero() bool { return c.kind == 0 }

// Descriptor returns the registry entry of c.
func (c Code) Descriptor() Descriptor { return byKind[c.kind] }

// Code returns the wire code. It depends on the kind only.
func (c Code) Code() int { return byKind[c.kind].Code }

// Message returns the category text, with the payload interpolated for
// kinds naming a stream, field or function.
func (c Code) Message() string {
	d := byKind[c.kind]
	if d.Interpolate {
		return fmt.Sprintf(d.Message, c.payload)
	}
	return d.Message
}

// Inner returns the payload verbatim, or "" for payload-less kinds.
func (c Code) Inner() string { return c.payload }

// PublicDetail returns the payload only for kinds whose detail may be
// shown to external callers.
func (c Code) PublicDetail() string {
	if byKind[c.kind].Public {
		return c.payload
	}
	return ""
}

// StatusCode returns the HTTP status for c.
func (c Code) StatusCode() int {
	if d, ok := byKind[c.kind]; ok {
		return d.StatusCode
	}
	return http.StatusInternalServerError
}

// Error renders the wire form, so a Code can travel as a plain error.
func (c Code) Error() string { return c.Encode() }

// Is matches any Code of the same kind.
func (c Code) Is(target error) bool {
	t, ok := target.(Code)
	return ok && t.kind == c.kind
}
