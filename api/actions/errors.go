// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package actions

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/blink-actions/blink/failure"
)

const (
	invalidAccount     = `Invalid "account" provided`
	invalidParameter   = "Invalid input query parameter: %s"
	missingParameter   = "missing required parameter: %s"
	unknownBlink       = "unknown blink: %s"
	unknownAction      = "unknown action: %s"
	ledgerUnavailable  = "ledger is unavailable, please try again"
	staleReference     = "transaction reference expired, please try again"
	serializationError = "could not serialize transaction"
	invalidTransaction = "could not assemble transaction"
	rentExemption      = "account may not be rent exempt: %s"
	internalError      = "could not build transaction"
)

// fail writes the plain-text failure response for the given error. Every
// failure of an action request is reported with the bad request status.
func (s *Server) fail(ctx echo.Context, err error) error {
	return ctx.String(http.StatusBadRequest, s.message(err))
}

func (s *Server) message(err error) string {

	var iaErr failure.InvalidAddress
	if errors.As(err, &iaErr) {
		if iaErr.Parameter == "" {
			return invalidAccount
		}
		return fmt.Sprintf(invalidParameter, iaErr.Parameter)
	}
	var ipErr failure.InvalidParameter
	if errors.As(err, &ipErr) {
		return fmt.Sprintf(invalidParameter, ipErr.Name)
	}
	var mpErr failure.MissingParameter
	if errors.As(err, &mpErr) {
		return fmt.Sprintf(missingParameter, mpErr.Name)
	}
	var uaErr failure.UnknownAction
	if errors.As(err, &uaErr) {
		if uaErr.Selector == "" {
			return fmt.Sprintf(unknownBlink, uaErr.Blink)
		}
		return fmt.Sprintf(unknownAction, uaErr.Selector)
	}
	var ouErr failure.OracleUnavailable
	if errors.As(err, &ouErr) {
		s.log.Warn().Err(err).Str("operation", ouErr.Operation).Msg("ledger unavailable")
		return ledgerUnavailable
	}
	var srErr failure.StaleReference
	if errors.As(err, &srErr) {
		return staleReference
	}
	var sfErr failure.SerializationFailure
	if errors.As(err, &sfErr) {
		s.log.Error().Err(err).Msg("could not serialize transaction")
		return serializationError
	}
	var itErr failure.InvalidTransaction
	if errors.As(err, &itErr) {
		s.log.Error().Err(err).Msg("could not assemble transaction")
		return invalidTransaction
	}
	var brErr failure.BelowRentExemption
	if errors.As(err, &brErr) {
		return fmt.Sprintf(rentExemption, brErr.Receiver)
	}

	s.log.Error().Err(err).Msg("could not build transaction")
	return internalError
}
