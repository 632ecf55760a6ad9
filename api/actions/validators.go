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
	"github.com/go-playground/validator/v10"

	address "github.com/optakt/blink-actions/blink/validator"
)

// Tag used to check account identifiers in requests.
const accountTag = "account"

func newRequestValidator() *validator.Validate {

	v := validator.New()

	// The tag is only used on string fields, so the conversion is safe.
	_ = v.RegisterValidation(accountTag, func(fl validator.FieldLevel) bool {
		return address.Valid(fl.Field().String())
	})

	return v
}
