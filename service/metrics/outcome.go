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

package metrics

import (
	"errors"

	"github.com/optakt/blink-actions/blink/failure"
)

// outcome returns the label value describing the result of an operation.
func outcome(err error) string {
	if err == nil {
		return "success"
	}

	switch {
	case errors.As(err, &failure.InvalidAddress{}):
		return "invalid_address"
	case errors.As(err, &failure.UnknownAction{}):
		return "unknown_action"
	case errors.As(err, &failure.InvalidParameter{}):
		return "invalid_parameter"
	case errors.As(err, &failure.MissingParameter{}):
		return "missing_parameter"
	case errors.As(err, &failure.OracleUnavailable{}):
		return "oracle_unavailable"
	case errors.As(err, &failure.StaleReference{}):
		return "stale_reference"
	case errors.As(err, &failure.SerializationFailure{}):
		return "serialization_failure"
	case errors.As(err, &failure.InvalidTransaction{}):
		return "invalid_transaction"
	case errors.As(err, &failure.BelowRentExemption{}):
		return "below_rent_exemption"
	default:
		return "error"
	}
}
