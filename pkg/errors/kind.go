// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

// Kind identifies the leaf family an Error wraps. The set is closed.
type Kind uint8

const (
	KindIO Kind = iota + 1
	KindDB
	KindEtcd
	KindCache
	KindParse
	KindNarrowing
	KindJSON
	KindArrow
	KindWatcherExists
	KindUTF8
	KindSQL

	// NATS client operations, one kind per operation family.
	KindNATSRequest
	KindNATSCreateKeyValue
	KindNATSKeyValueEntry
	KindNATSKeyValuePut
	KindNATSKeyValueUpdate
	KindNATSKeyValueWatch
	KindNATSKeyValueWatcher
	KindNATSKeyValueStatus
	KindNATSCreateStream
	KindNATSGetStream
	KindNATSPublish
	KindNATSStreamConsumer
	KindNATSConsumerStream

	KindMessage
	KindErrorCode
	KindNotImplemented
	KindUnknown
	KindHTTP
	KindResource
	KindIngestion
	KindWAL
	KindOther
)

type kindInfo struct {
	name   string
	prefix string
	// fixed is the whole rendering of a payload-less kind.
	fixed string
}

const genericPrefix = "Error# "

var kinds = map[Kind]kindInfo{
	KindIO:                  {name: "io", prefix: "IoError# "},
	KindDB:                  {name: "db", prefix: "DbError# "},
	KindEtcd:                {name: "etcd", prefix: "EtcdError# "},
	KindCache:               {name: "cache", prefix: "CacheError# "},
	KindParse:               {name: "parse", prefix: "ParseError# "},
	KindNarrowing:           {name: "narrowing", prefix: "NarrowingError# "},
	KindJSON:                {name: "json", prefix: "JSONError# "},
	KindArrow:               {name: "arrow", prefix: "ArrowError# "},
	KindWatcherExists:       {name: "watcher_exists", prefix: "WatchError# watcher is exists "},
	KindUTF8:                {name: "utf8", prefix: "UTF8Error# "},
	KindSQL:                 {name: "sql", prefix: "SQLError# "},
	KindNATSRequest:         {name: "nats_request", prefix: genericPrefix},
	KindNATSCreateKeyValue:  {name: "nats_create_key_value", prefix: genericPrefix},
	KindNATSKeyValueEntry:   {name: "nats_key_value_entry", prefix: genericPrefix},
	KindNATSKeyValuePut:     {name: "nats_key_value_put", prefix: genericPrefix},
	KindNATSKeyValueUpdate:  {name: "nats_key_value_update", prefix: genericPrefix},
	KindNATSKeyValueWatch:   {name: "nats_key_value_watch", prefix: genericPrefix},
	KindNATSKeyValueWatcher: {name: "nats_key_value_watcher", prefix: genericPrefix},
	KindNATSKeyValueStatus:  {name: "nats_key_value_status", prefix: genericPrefix},
	KindNATSCreateStream:    {name: "nats_create_stream", prefix: genericPrefix},
	KindNATSGetStream:       {name: "nats_get_stream", prefix: genericPrefix},
	KindNATSPublish:         {name: "nats_publish", prefix: genericPrefix},
	KindNATSStreamConsumer:  {name: "nats_stream_consumer", prefix: genericPrefix},
	KindNATSConsumerStream:  {name: "nats_consumer_stream", prefix: genericPrefix},
	KindMessage:             {name: "message", prefix: genericPrefix},
	KindErrorCode:           {name: "error_code", prefix: "ErrorCode# "},
	KindNotImplemented:      {name: "not_implemented", fixed: "Not implemented"},
	KindUnknown:             {name: "unknown", fixed: "Unknown error"},
	KindHTTP:                {name: "http", prefix: genericPrefix},
	KindResource:            {name: "resource", prefix: genericPrefix},
	KindIngestion:           {name: "ingestion", prefix: genericPrefix},
	KindWAL:                 {name: "wal", prefix: genericPrefix},
	KindOther:               {name: "other", prefix: genericPrefix},
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for k := KindIO; k <= KindOther; k++ {
		out = append(out, k)
	}
	return out
}

// NATSOp names the NATS client operation that failed.
type NATSOp uint8

const (
	NATSRequest NATSOp = iota
	NATSCreateKeyValue
	NATSKeyValueEntry
	NATSKeyValuePut
	NATSKeyValueUpdate
	NATSKeyValueWatch
	NATSKeyValueWatcher
	NATSKeyValueStatus
	NATSCreateStream
	NATSGetStream
	NATSPublish
	NATSStreamConsumer
	NATSConsumerStream
)

func (op NATSOp) kind() Kind {
	if op > NATSConsumerStream {
		return KindNATSRequest
	}
	return KindNATSRequest + Kind(op)
}
