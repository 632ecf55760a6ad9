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
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/blink-actions/blink/catalog"
	"github.com/optakt/blink-actions/blink/object"
)

// Build compiles the selected action into a transaction for the requesting
// account to sign.
func (s *Server) Build(ctx echo.Context) error {
	return s.handle(ctx, s.transact.BuildForClient)
}

// Execute has the server sign and broadcast the part of the action it can
// authorize on its own.
func (s *Server) Execute(ctx echo.Context) error {
	return s.handle(ctx, s.transact.ExecuteServerSide)
}

type operation func(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error)

func (s *Server) handle(ctx echo.Context, run operation) error {

	var req PostRequest
	err := ctx.Bind(&req)
	if err != nil {
		return ctx.String(http.StatusBadRequest, invalidAccount)
	}

	err = s.validate.Struct(req)
	if err != nil {
		return ctx.String(http.StatusBadRequest, invalidAccount)
	}

	query := ctx.QueryParams()
	selector := query.Get(catalog.SelectorParam)
	params := make(map[string]string, len(query)+len(req.Data))
	for name, value := range req.Data {
		params[name] = value
	}
	for name := range query {
		if name == catalog.SelectorParam {
			continue
		}
		params[name] = query.Get(name)
	}

	result, err := run(ctx.Request().Context(), ctx.Param("blink"), selector, req.Account, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	res := PostResponse{
		Transaction: result.Transaction,
		Message:     result.Message,
	}

	return ctx.JSON(http.StatusOK, res)
}
