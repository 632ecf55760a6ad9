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
	"net/http"

	"github.com/labstack/echo/v4"
)

// Rules serves the mapping of website paths to the actions API.
func (s *Server) Rules(ctx echo.Context) error {

	res := RulesResponse{
		Rules: []Rule{
			{PathPattern: "/api/actions/**", APIPath: "/api/actions/**"},
		},
	}

	return ctx.JSON(http.StatusOK, res)
}
