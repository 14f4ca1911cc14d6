// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/farresource/future"
	"github.com/xmidt-org/farresource/xhttp"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// handle is the per-URL state behind a far reference.  The only state shared between
// dispatches is next, which is settled at most once.
type handle struct {
	maker *Maker
	url   string
	next  *future.Deferred
}

// encodeBody installs the serialized payload, if any, as the request body.
func encodeBody(_ context.Context, r *http.Request, request interface{}) error {
	body, _ := request.([]byte)
	xhttp.SetBody(r, body)
	return nil
}

// decoder maps a completed transaction onto either a value or one of this package's errors.
func (h *handle) decoder(op string) kithttp.DecodeResponseFunc {
	return func(ctx context.Context, response *http.Response) (interface{}, error) {
		switch response.StatusCode {
		case http.StatusOK:
			body, err := io.ReadAll(response.Body)
			if err != nil {
				return nil, &DecodeError{Err: err}
			}

			value, err := h.maker.unserialize(body)
			if err != nil {
				return nil, &DecodeError{Err: err}
			}

			return value, nil

		case http.StatusGone:
			return nil, ErrGone

		default:
			sallust.Get(ctx).Debug("unexpected status", zap.Int("status", response.StatusCode))
			return nil, &RequestFailedError{Method: op, Code: response.StatusCode}
		}
	}
}

// dispatch issues one HTTP request.  args[0] is an optional sub-resource name, and args[1]
// is an optional payload.  A nil argument is treated as absent.
func (h *handle) dispatch(ctx context.Context, op string, args []interface{}) *future.Future {
	var (
		result  = future.New()
		target  = h.url
		payload interface{}
	)

	if len(args) > 0 && args[0] != nil {
		target = NameURL(target, ToString(args[0]))
	}

	if len(args) > 1 {
		payload = args[1]
	}

	logger := h.maker.logger.With(
		zap.String("requestID", ksuid.New().String()),
		zap.String("method", op),
		zap.String("url", target),
	)

	body, err := h.maker.serialize(payload)
	if err != nil {
		h.settle(result, logger, op, target, nil, err)
		return result.Future()
	}

	u, err := url.Parse(target)
	if err != nil {
		h.settle(result, logger, op, target, nil, err)
		return result.Future()
	}

	endpoint := kithttp.NewClient(
		op,
		u,
		encodeBody,
		h.decoder(op),
		kithttp.SetClient(h.maker.client),
	).Endpoint()

	logger.Debug("dispatching")
	h.maker.measures.InFlight.Add(1)
	go func() {
		defer h.maker.measures.InFlight.Add(-1)
		value, err := endpoint(sallust.With(ctx, logger), body)
		h.settle(result, logger, op, target, value, err)
	}()

	return result.Future()
}

// settle completes a single dispatch.  A gone resource also settles next, which only
// the first such dispatch can do.
func (h *handle) settle(result *future.Deferred, logger *zap.Logger, op, target string, value interface{}, err error) {
	var (
		outcome           = SuccessOutcome
		status, completed = xhttp.StatusCodeOf(err)
		decodeErr         *DecodeError
	)

	switch {
	case err == nil:
		logger.Debug("dispatch succeeded")
		result.Resolve(value)

	case errors.Is(err, ErrGone):
		outcome = GoneOutcome
		if h.next.Reject(ErrGone) {
			h.maker.measures.Gone.Add(1)
			logger.Info("resource gone")
		}

		result.Reject(ErrGone)

	case completed:
		outcome = FailedOutcome
		logger.Debug("dispatch failed", zap.Int("status", status))
		result.Reject(err)

	case errors.As(err, &decodeErr):
		outcome = DecodeOutcome
		logger.Error("unable to decode response", zap.Error(err))
		result.Reject(err)

	default:
		outcome = TransportOutcome
		err = &TransportError{Method: op, URL: target, Err: err}
		logger.Error("transport failure", zap.Error(err))
		result.Reject(err)
	}

	h.maker.measures.Dispatches.With(MethodLabel, op, OutcomeLabel, outcome).Add(1)
}
