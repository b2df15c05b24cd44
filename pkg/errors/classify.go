// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/openlogs/infra/pkg/errors/codes"
	"github.com/openlogs/infra/pkg/errors/repository"
	"github.com/openlogs/infra/pkg/errors/validation"
	"github.com/redis/go-redis/v9"
	"go.etcd.io/etcd/api/v3/v3rpc/rpctypes"
	"golang.org/x/text/encoding"
)

// natsErrors maps well known NATS client errors onto the operation family
// that reports them.
var natsErrors = []struct {
	err error
	op  NATSOp
}{
	{jetstream.ErrKeyNotFound, NATSKeyValueEntry},
	{jetstream.ErrKeyDeleted, NATSKeyValueEntry},
	{jetstream.ErrKeyExists, NATSKeyValueUpdate},
	{jetstream.ErrInvalidKey, NATSKeyValuePut},
	{jetstream.ErrBucketExists, NATSCreateKeyValue},
	{jetstream.ErrKeyValueConfigRequired, NATSCreateKeyValue},
	{jetstream.ErrHistoryTooLarge, NATSCreateKeyValue},
	{jetstream.ErrBucketNotFound, NATSKeyValueStatus},
	{jetstream.ErrNoKeysFound, NATSKeyValueWatcher},
	{jetstream.ErrStreamNameAlreadyInUse, NATSCreateStream},
	{jetstream.ErrStreamNotFound, NATSGetStream},
	{jetstream.ErrNoStreamResponse, NATSPublish},
	{jetstream.ErrInvalidJSAck, NATSPublish},
	{jetstream.ErrConsumerNotFound, NATSStreamConsumer},
	{jetstream.ErrConsumerExists, NATSStreamConsumer},
	{jetstream.ErrNoHeartbeat, NATSConsumerStream},
	{jetstream.ErrMsgIteratorClosed, NATSConsumerStream},
	{jetstream.ErrJetStreamNotEnabled, NATSRequest},
	{nats.ErrTimeout, NATSRequest},
	{nats.ErrNoResponders, NATSRequest},
	{nats.ErrConnectionClosed, NATSRequest},
}

var arrowErrors = []error{
	arrow.ErrInvalid,
	arrow.ErrNotImplemented,
	arrow.ErrType,
	arrow.ErrKey,
	arrow.ErrIndex,
}

var ingestionErrors = []error{
	sarama.ErrOutOfBrokers,
	sarama.ErrClosedClient,
	sarama.ErrNotConnected,
	sarama.ErrShuttingDown,
}

var sqlErrors = []error{
	sql.ErrNoRows,
	sql.ErrConnDone,
	sql.ErrTxDone,
}

var ioErrors = []error{
	io.EOF,
	io.ErrUnexpectedEOF,
	io.ErrShortWrite,
	io.ErrClosedPipe,
	fs.ErrNotExist,
	fs.ErrExist,
	fs.ErrPermission,
	fs.ErrClosed,
}

// From classifies an arbitrary error into the apex type. It never fails:
// errors that match no leaf family become KindOther. Errors already in the
// taxonomy are returned unchanged, and validation failures are carried by
// the persistence layer on the way up. Text wrapped around a validation
// failure is not kept.
func From(err error) error {
	if err == nil {
		return nil
	}

	var apex *Error
	if errors.As(err, &apex) {
		return err
	}

	var repoErr *repository.Error
	if errors.As(err, &repoErr) {
		return FromDB(repoErr)
	}
	var valErr validation.Error
	if errors.As(err, &valErr) {
		if lifted := repository.FromValidation(valErr); lifted != nil {
			return FromDB(lifted)
		}
	}

	var code codes.Code
	if errors.As(err, &code) {
		return &Error{kind: KindErrorCode, cause: err}
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return wrap(KindParse, err)
	}
	var narrowErr *NarrowingError
	if errors.As(err, &narrowErr) {
		return wrap(KindNarrowing, err)
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fromNumError(numErr)
	}
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return FromUTF8(err)
	}

	if isJSON(err) {
		return FromJSON(err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return FromHTTP(err)
	}

	if isSQL(err) {
		return FromSQL(err)
	}

	var etcdErr rpctypes.EtcdError
	if errors.As(err, &etcdErr) {
		return FromEtcd(err)
	}

	if isRedis(err) {
		return FromCache(err)
	}

	if op, ok := natsOp(err); ok {
		return FromNATS(op, err)
	}

	for _, target := range arrowErrors {
		if errors.Is(err, target) {
			return FromArrow(err)
		}
	}

	if isIngestion(err) {
		return FromIngestion(err)
	}

	if isIO(err) {
		return FromIO(err)
	}

	return Other(err)
}

func isJSON(err error) bool {
	var (
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		marshalerErr   *json.MarshalerError
		unsupportedTy  *json.UnsupportedTypeError
		unsupportedVal *json.UnsupportedValueError
		invalidErr     *json.InvalidUnmarshalError
	)
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &marshalerErr) ||
		errors.As(err, &unsupportedTy) ||
		errors.As(err, &unsupportedVal) ||
		errors.As(err, &invalidErr)
}

func isSQL(err error) bool {
	var (
		pgErr *pgconn.PgError
		pqErr *pq.Error
	)
	if errors.As(err, &pgErr) || errors.As(err, &pqErr) {
		return true
	}
	for _, target := range sqlErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isRedis(err error) bool {
	if errors.Is(err, redis.Nil) || errors.Is(err, redis.ErrClosed) {
		return true
	}
	var redisErr redis.Error
	return errors.As(err, &redisErr)
}

func natsOp(err error) (NATSOp, bool) {
	for _, e := range natsErrors {
		if errors.Is(err, e.err) {
			return e.op, true
		}
	}
	var apiErr *jetstream.APIError
	if errors.As(err, &apiErr) {
		return NATSRequest, true
	}
	return 0, false
}

func isIngestion(err error) bool {
	var (
		kErr    sarama.KError
		prodErr *sarama.ProducerError
	)
	if errors.As(err, &kErr) || errors.As(err, &prodErr) {
		return true
	}
	for _, target := range ingestionErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isIO(err error) bool {
	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
	)
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) || errors.As(err, &syscallErr) {
		return true
	}
	for _, target := range ioErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
