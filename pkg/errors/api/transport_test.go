// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"bytes"
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/openlogs/infra/logger"
	"github.com/openlogs/infra/pkg/errors"
	"github.com/openlogs/infra/pkg/errors/api"
	"github.com/openlogs/infra/pkg/errors/codes"
	"github.com/openlogs/infra/pkg/errors/repository"
	"github.com/openlogs/infra/pkg/errors/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeError(t *testing.T) {
	cases := []struct {
		desc   string
		err    error
		status int
		body   string
	}{
		{
			desc:   "error code",
			err:    errors.FromCode(codes.SearchStreamNotFound("logs")),
			status: http.StatusNotFound,
			body:   `{"code":20002,"message":"Search stream not found: logs","inner":"logs"}`,
		},
		{
			desc:   "bare code",
			err:    codes.RatelimitExceeded("org default"),
			status: http.StatusTooManyRequests,
			body:   `{"code":20012,"message":"Ratelimit exceeded","inner":"org default"}`,
		},
		{
			desc:   "validation failure",
			err:    errors.From(validation.ErrMissingTitle),
			status: http.StatusInternalServerError,
			body:   `{"code":10001,"message":"Server Internal Error","inner":"DbError# error putting dashboard with missing title"}`,
		},
		{
			desc:   "unclassified",
			err:    &fs.PathError{Op: "open", Path: "/wal/0001", Err: fs.ErrNotExist},
			status: http.StatusInternalServerError,
			body:   `{"code":10001,"message":"Server Internal Error","inner":"IoError# open /wal/0001: file does not exist"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			w := httptest.NewRecorder()
			api.EncodeError(context.Background(), tc.err, w)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.body, w.Body.String())
		})
	}
}

func TestServerErrorEncoder(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := logger.New(buf, "error")
	require.NoError(t, err)

	var e endpoint.Endpoint = func(ctx context.Context, request any) (any, error) {
		return nil, errors.FromDB(repository.NewKeyNotExists("/dashboards/7"))
	}
	handler := kithttp.NewServer(
		e,
		func(context.Context, *http.Request) (any, error) { return nil, nil },
		kithttp.EncodeJSONResponse,
		kithttp.ServerErrorEncoder(api.LoggingErrorEncoder(l, api.EncodeError)),
	)
	ts := httptest.NewServer(handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	err = codes.CheckResponse(resp, http.StatusOK)
	var re *codes.ResponseError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusInternalServerError, re.StatusCode())
	assert.Equal(t, codes.ServerInternalError("DbError# key /dashboards/7 does not exist"), re.Code())

	assert.Contains(t, buf.String(), `"kind":"db"`)
	assert.Contains(t, buf.String(), `"message":"request failed"`)
}
