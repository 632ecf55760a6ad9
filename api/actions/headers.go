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
	"github.com/labstack/echo/v4"
)

// Header names of the blink actions protocol.
const (
	HeaderActionVersion = "X-Action-Version"
	HeaderBlockchainIDs = "X-Blockchain-Ids"
)

const (
	allowMethods  = "GET,POST,PUT,OPTIONS"
	allowHeaders  = "Content-Type, Authorization, Content-Encoding, Accept-Encoding, X-Action-Version, X-Blockchain-Ids"
	exposeHeaders = "X-Action-Version, X-Blockchain-Ids"
)

// Headers sets the headers blink clients expect on every response, whether
// or not the request carries an origin.
func (s *Server) Headers(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Response().Header()
		header.Set(echo.HeaderAccessControlAllowOrigin, "*")
		header.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
		header.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
		header.Set(echo.HeaderAccessControlExposeHeaders, exposeHeaders)
		header.Set(HeaderActionVersion, s.cfg.ActionVersion)
		header.Set(HeaderBlockchainIDs, s.cfg.BlockchainIDs)
		return next(ctx)
	}
}
