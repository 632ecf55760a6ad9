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
	"github.com/rs/zerolog"
)

// Server implements the blink actions API. It serves discovery documents for
// the blinks of its catalog and compiles their actions into transactions.
type Server struct {
	log      zerolog.Logger
	cfg      Config
	catalog  Catalog
	transact Transactor
	validate *validator.Validate
}

// NewServer creates a new actions API server on top of the given catalog and
// transactor.
func NewServer(log zerolog.Logger, catalog Catalog, transact Transactor, options ...func(*Config)) *Server {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	s := Server{
		log:      log.With().Str("component", "actions_api").Logger(),
		cfg:      cfg,
		catalog:  catalog,
		transact: transact,
		validate: newRequestValidator(),
	}

	return &s
}
