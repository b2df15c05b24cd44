// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/openlogs/infra/pkg/errors"
	"github.com/openlogs/infra/pkg/errors/codes"
	"github.com/openlogs/infra/pkg/errors/repository"
	"github.com/openlogs/infra/pkg/errors/validation"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/api/v3/v3rpc/rpctypes"
)

var errPath = &fs.PathError{Op: "open", Path: "/data/wal/0001", Err: fs.ErrNotExist}

func TestError(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		kind errors.Kind
		msg  string
	}{
		{
			desc: "message",
			err:  errors.Message("Ni! Try again."),
			kind: errors.KindMessage,
			msg:  "Error# Ni! Try again.",
		},
		{
			desc: "db key not exists",
			err:  errors.FromDB(repository.NewKeyNotExists("/another/shrubbery")),
			kind: errors.KindDB,
			msg:  "DbError# key /another/shrubbery does not exist",
		},
		{
			desc: "db validation chain",
			err:  errors.FromDB(repository.FromValidation(validation.ErrMissingTitle)),
			kind: errors.KindDB,
			msg:  "DbError# error putting dashboard with missing title",
		},
		{
			desc: "io",
			err:  errors.FromIO(errPath),
			kind: errors.KindIO,
			msg:  "IoError# open /data/wal/0001: file does not exist",
		},
		{
			desc: "etcd",
			err:  errors.FromEtcd(rpctypes.ErrEmptyKey),
			kind: errors.KindEtcd,
			msg:  "EtcdError# " + rpctypes.ErrEmptyKey.Error(),
		},
		{
			desc: "cache",
			err:  errors.FromCache(redis.Nil),
			kind: errors.KindCache,
			msg:  "CacheError# redis: nil",
		},
		{
			desc: "parse",
			err:  errors.FromParse(&errors.ParseError{Value: "abc", Type: "int"}),
			kind: errors.KindParse,
			msg:  `ParseError# cannot parse "abc" as int`,
		},
		{
			desc: "narrowing",
			err:  errors.FromNarrowing(&errors.NarrowingError{Value: -3, Type: "uint8"}),
			kind: errors.KindNarrowing,
			msg:  `NarrowingError# cannot convert "-3" to uint8`,
		},
		{
			desc: "json",
			err:  errors.FromJSON(stderrors.New("unexpected end of JSON input")),
			kind: errors.KindJSON,
			msg:  "JSONError# unexpected end of JSON input",
		},
		{
			desc: "arrow",
			err:  errors.FromArrow(arrow.ErrInvalid),
			kind: errors.KindArrow,
			msg:  "ArrowError# " + arrow.ErrInvalid.Error(),
		},
		{
			desc: "watcher exists",
			err:  errors.WatcherExists("/nodes/ingester"),
			kind: errors.KindWatcherExists,
			msg:  "WatchError# watcher is exists /nodes/ingester",
		},
		{
			desc: "sql",
			err:  errors.FromSQL(stderrors.New("driver: bad connection")),
			kind: errors.KindSQL,
			msg:  "SQLError# driver: bad connection",
		},
		{
			desc: "nats kv put",
			err:  errors.FromNATS(errors.NATSKeyValuePut, stderrors.New("nats: timeout")),
			kind: errors.KindNATSKeyValuePut,
			msg:  "Error# nats: timeout",
		},
		{
			desc: "nats consumer stream",
			err:  errors.FromNATS(errors.NATSConsumerStream, stderrors.New("nats: no heartbeat received")),
			kind: errors.KindNATSConsumerStream,
			msg:  "Error# nats: no heartbeat received",
		},
		{
			desc: "error code",
			err:  errors.FromCode(codes.SearchStreamNotFound("logs")),
			kind: errors.KindErrorCode,
			msg:  `ErrorCode# {"code":20002,"message":"Search stream not found: logs","inner":"logs"}`,
		},
		{
			desc: "not implemented",
			err:  errors.ErrNotImplemented,
			kind: errors.KindNotImplemented,
			msg:  "Not implemented",
		},
		{
			desc: "unknown",
			err:  errors.ErrUnknown,
			kind: errors.KindUnknown,
			msg:  "Unknown error",
		},
		{
			desc: "http",
			err:  errors.FromHTTP(&url.Error{Op: "Get", URL: "http://querier:5080", Err: stderrors.New("connection refused")}),
			kind: errors.KindHTTP,
			msg:  `Error# Get "http://querier:5080": connection refused`,
		},
		{
			desc: "resource",
			err:  errors.Resource("memory table full"),
			kind: errors.KindResource,
			msg:  "Error# memory table full",
		},
		{
			desc: "ingestion",
			err:  errors.Ingestion("too many fields"),
			kind: errors.KindIngestion,
			msg:  "Error# too many fields",
		},
		{
			desc: "wal",
			err:  errors.WAL("segment corrupted"),
			kind: errors.KindWAL,
			msg:  "Error# segment corrupted",
		},
		{
			desc: "other",
			err:  errors.Other(stderrors.New("boom")),
			kind: errors.KindOther,
			msg:  "Error# boom",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Error(t, tc.err)
			assert.Equal(t, tc.kind, errors.KindOf(tc.err))
			assert.Equal(t, tc.msg, tc.err.Error())
			assert.True(t, errors.Is(tc.err, errors.Sentinel(tc.kind)))
		})
	}
}

func TestNilCause(t *testing.T) {
	assert.NoError(t, errors.FromIO(nil))
	assert.NoError(t, errors.FromDB(nil))
	assert.NoError(t, errors.FromParse(nil))
	assert.NoError(t, errors.FromNarrowing(nil))
	assert.NoError(t, errors.FromNATS(errors.NATSPublish, nil))
	assert.NoError(t, errors.FromCode(codes.Code{}))
	assert.NoError(t, errors.Other(nil))
	assert.NoError(t, errors.From(nil))

	// A typed-nil validation value carries no failure to lift.
	err := errors.From((*validation.PutDashboardError)(nil))
	require.Error(t, err)
	assert.Equal(t, errors.KindOther, errors.KindOf(err))
}

func TestUnwrap(t *testing.T) {
	err := errors.FromIO(errPath)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "/data/wal/0001", pathErr.Path)

	err = errors.FromDB(repository.FromValidation(validation.NewMissingInnerData(3)))
	assert.ErrorIs(t, err, repository.ErrPutDashboard)
	assert.ErrorIs(t, err, validation.ErrMissingInnerData)
	assert.False(t, errors.Is(err, errors.Sentinel(errors.KindIO)))

	err = errors.Other(io.ErrClosedPipe)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	var apex *errors.Error
	require.True(t, errors.As(err, &apex))
	assert.NotEmpty(t, apex.StackTrace())
}

func TestFrom(t *testing.T) {
	_, atoiErr := strconv.Atoi("abc")
	var v map[string]any
	jsonErr := json.Unmarshal([]byte("{"), &v)
	_, utf8Err := errors.DecodeUTF8([]byte{0xff, 0xfe})

	cases := []struct {
		desc   string
		err    error
		target error
		kind   errors.Kind
		msg    string
	}{
		{
			desc: "validation through persistence",
			err:  validation.ErrMissingTitle,
			kind: errors.KindDB,
			msg:  "DbError# error putting dashboard with missing title",
		},
		{
			desc:   "wrapped validation",
			err:    fmt.Errorf("put dashboard: %w", validation.ErrCreateAlertSetID),
			target: validation.ErrCreateAlertSetID,
			kind:   errors.KindDB,
			msg:    "DbError# cannot provide alert ID when creating an alert",
		},
		{
			desc: "repository",
			err:  repository.NewKeyNotExists("/k"),
			kind: errors.KindDB,
			msg:  "DbError# key /k does not exist",
		},
		{
			desc: "code",
			err:  codes.SearchFieldNotFound("level"),
			kind: errors.KindErrorCode,
			msg:  `ErrorCode# {"code":20004,"message":"Search field not found: level","inner":"level"}`,
		},
		{
			desc: "strconv",
			err:  atoiErr,
			kind: errors.KindParse,
			msg:  `ParseError# cannot parse "abc" as int`,
		},
		{
			desc: "utf8",
			err:  utf8Err,
			kind: errors.KindUTF8,
		},
		{
			desc: "json",
			err:  jsonErr,
			kind: errors.KindJSON,
			msg:  "JSONError# " + jsonErr.Error(),
		},
		{
			desc: "http",
			err:  &url.Error{Op: "Post", URL: "http://x", Err: io.EOF},
			kind: errors.KindHTTP,
			msg:  `Error# Post "http://x": EOF`,
		},
		{
			desc: "pgx",
			err:  &pgconn.PgError{Severity: "ERROR", Code: "42P01", Message: "relation does not exist"},
			kind: errors.KindSQL,
		},
		{
			desc: "etcd",
			err:  rpctypes.ErrEmptyKey,
			kind: errors.KindEtcd,
		},
		{
			desc: "redis",
			err:  fmt.Errorf("get: %w", redis.Nil),
			kind: errors.KindCache,
		},
		{
			desc: "nats key value entry",
			err:  jetstream.ErrKeyNotFound,
			kind: errors.KindNATSKeyValueEntry,
		},
		{
			desc: "nats get stream",
			err:  jetstream.ErrStreamNotFound,
			kind: errors.KindNATSGetStream,
		},
		{
			desc: "arrow",
			err:  fmt.Errorf("%w: column count mismatch", arrow.ErrInvalid),
			kind: errors.KindArrow,
		},
		{
			desc: "kafka",
			err:  sarama.ErrOutOfBrokers,
			kind: errors.KindIngestion,
		},
		{
			desc: "io",
			err:  errPath,
			kind: errors.KindIO,
		},
		{
			desc: "already apex",
			err:  errors.WAL("segment corrupted"),
			kind: errors.KindWAL,
			msg:  "Error# segment corrupted",
		},
		{
			desc: "uncategorised",
			err:  stderrors.New("something odd"),
			kind: errors.KindOther,
			msg:  "Error# something odd",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := errors.From(tc.err)
			require.Error(t, err)
			assert.Equal(t, tc.kind, errors.KindOf(err))
			if tc.msg != "" {
				assert.Equal(t, tc.msg, err.Error())
			}
			target := tc.target
			if target == nil {
				target = tc.err
			}
			assert.ErrorIs(t, err, target)
		})
	}
}

func TestParseHelpers(t *testing.T) {
	n, err := errors.Parse("42", "i64", func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = errors.Parse("4x2", "i64", func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
	assert.Equal(t, `ParseError# cannot parse "4x2" as i64`, err.Error())
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	u, err := errors.Narrow[uint8](200)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), u)

	_, err = errors.Narrow[uint8](300)
	assert.Equal(t, `NarrowingError# cannot convert "300" to uint8`, err.Error())

	_, err = errors.Narrow[uint16](-1)
	assert.Equal(t, `NarrowingError# cannot convert "-1" to uint16`, err.Error())

	i, err := errors.Narrow[int8](-100)
	require.NoError(t, err)
	assert.Equal(t, int8(-100), i)

	s, err := errors.DecodeUTF8([]byte("héllo"))
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	_, err = errors.DecodeUTF8([]byte{'a', 0xff})
	assert.True(t, strings.HasPrefix(err.Error(), "UTF8Error# "))
	assert.Equal(t, errors.KindUTF8, errors.KindOf(err))
}

func TestCodeHelpers(t *testing.T) {
	err := fmt.Errorf("search: %w", errors.FromCode(codes.SearchTimeout("30s")))
	assert.Equal(t, codes.SearchTimeout("30s"), errors.GetCode(err))
	assert.Equal(t, 408, errors.StatusCode(err))
	assert.Equal(t, 500, errors.StatusCode(errors.Message("x")))
	assert.True(t, errors.GetCode(errors.Message("x")).IsZero())

	assert.Equal(t, codes.SearchTimeout("30s"), errors.ToCode(err))
	assert.Equal(t, codes.ServerInternalError("Error# x"), errors.ToCode(errors.Message("x")))
	assert.True(t, errors.ToCode(nil).IsZero())

	wrapped := fmt.Errorf("flush segment 7: %w", errors.FromIO(errPath))
	assert.Equal(t, "flush segment 7: IoError# open /data/wal/0001: file does not exist", errors.ToCode(wrapped).Inner())
}

func TestKinds(t *testing.T) {
	kinds := errors.Kinds()
	assert.Len(t, kinds, 33)
	seen := make(map[string]bool)
	for _, k := range kinds {
		name := k.String()
		assert.NotContains(t, name, "Kind(")
		assert.False(t, seen[name], name)
		seen[name] = true
	}
}

func TestDetach(t *testing.T) {
	_, numErr := errors.Parse("x1", "int", strconv.Atoi)
	_, utf8Err := errors.DecodeUTF8([]byte{0xff, 0xfe})
	syntaxErr := json.Unmarshal([]byte("{"), new(map[string]any))

	cases := []struct {
		desc      string
		err       error
		shareable bool
	}{
		{desc: "message", err: errors.Message("x"), shareable: true},
		{desc: "not implemented", err: errors.ErrNotImplemented, shareable: true},
		{desc: "code", err: errors.FromCode(codes.SearchTimeout("30s")), shareable: true},
		{desc: "validation", err: errors.From(validation.ErrMissingOwner), shareable: true},
		{desc: "parse from strconv", err: numErr, shareable: true},
		{desc: "narrowing", err: errors.FromNarrowing(&errors.NarrowingError{Value: 300, Type: "u8"}), shareable: true},
		{desc: "json syntax", err: errors.FromJSON(syntaxErr), shareable: true},
		{desc: "utf8", err: utf8Err, shareable: true},
		{desc: "driver", err: errors.FromDB(repository.WrapDriver(stderrors.New("conn reset"))), shareable: false},
		{desc: "io", err: errors.FromIO(errPath), shareable: false},
		{desc: "http", err: errors.FromHTTP(&url.Error{Op: "Get", URL: "http://x", Err: io.EOF}), shareable: false},
		{desc: "other", err: errors.Other(stderrors.New("boom")), shareable: false},
		{desc: "json with foreign cause", err: errors.FromJSON(errPath), shareable: false},
		{desc: "parse with foreign cause", err: errors.FromParse(&errors.ParseError{Value: "x", Type: "int", Err: errPath}), shareable: false},
		{desc: "code joined with foreign cause", err: errors.From(fmt.Errorf("%w: %w", codes.SearchTimeout("30s"), errPath)), shareable: false},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			var apex *errors.Error
			require.True(t, errors.As(tc.err, &apex))
			assert.Equal(t, tc.shareable, apex.Shareable())

			d := apex.Detach()
			assert.True(t, d.Shareable())
			assert.Equal(t, apex.Kind(), d.Kind())
			assert.Equal(t, apex.Error(), d.Error())
			assert.Equal(t, errors.GetCode(apex), errors.GetCode(d))

			var pathErr *fs.PathError
			assert.False(t, errors.As(d, &pathErr))
			if tc.shareable {
				assert.Same(t, apex, d)
			}
		})
	}
}

func TestDetachWrapped(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		kind errors.Kind
		msg  string
		code codes.Code
	}{
		{
			desc: "wrapped io",
			err:  fmt.Errorf("flush segment 7: %w", errors.FromIO(errPath)),
			kind: errors.KindIO,
			msg:  "flush segment 7: IoError# open /data/wal/0001: file does not exist",
		},
		{
			desc: "wrapped code",
			err:  fmt.Errorf("search: %w", errors.FromCode(codes.SearchTimeout("30s"))),
			kind: errors.KindErrorCode,
			msg:  `search: ErrorCode# {"code":20010,"message":"Search query timed out","inner":"30s"}`,
			code: codes.SearchTimeout("30s"),
		},
		{
			desc: "wrapped fixed text",
			err:  fmt.Errorf("compact: %w", errors.ErrNotImplemented),
			kind: errors.KindNotImplemented,
			msg:  "compact: Not implemented",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			d := errors.Detach(tc.err)
			assert.Equal(t, tc.msg, d.Error())
			assert.Equal(t, tc.kind, errors.KindOf(d))
			assert.Equal(t, tc.code, errors.GetCode(d))

			var apex *errors.Error
			require.True(t, errors.As(d, &apex))
			assert.True(t, apex.Shareable())

			var pathErr *fs.PathError
			assert.False(t, errors.As(d, &pathErr))
		})
	}

	var nilErr *errors.Error
	assert.NoError(t, errors.Detach(nilErr))
}

func TestDetachAcrossGoroutines(t *testing.T) {
	err := errors.Detach(fmt.Errorf("flush: %w", errors.FromIO(errPath)))
	want := "flush: IoError# open /data/wal/0001: file does not exist"

	var wg sync.WaitGroup
	results := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- err.Error()
		}()
	}
	wg.Wait()
	close(results)

	for got := range results {
		assert.Equal(t, want, got)
	}
	assert.Equal(t, errors.KindIO, errors.KindOf(err))
	assert.NoError(t, errors.Detach(nil))
	assert.Equal(t, errors.KindOther, errors.KindOf(errors.Detach(stderrors.New("plain"))))
}
