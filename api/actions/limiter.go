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
	"net"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Extractor returns the function used to identify the client of a request.
// Without trusted proxies, the peer address of the connection is used and any
// forwarding header is ignored. With trusted proxies, the forwarded address is
// only accepted when every hop it went through belongs to one of their ranges.
func Extractor(proxies ...*net.IPNet) echo.IPExtractor {
	if len(proxies) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, proxy := range proxies {
		options = append(options, echo.TrustIPRange(proxy))
	}

	return echo.ExtractIPFromXFFHeader(options...)
}

// Limiter returns a middleware that limits the number of requests per second
// each client can make, with clients identified by the given extractor.
func Limiter(limit rate.Limit, extract echo.IPExtractor) echo.MiddlewareFunc {
	config := middleware.DefaultRateLimiterConfig
	config.Store = middleware.NewRateLimiterMemoryStore(limit)
	config.IdentifierExtractor = func(ctx echo.Context) (string, error) {
		return extract(ctx.Request()), nil
	}
	return middleware.RateLimiterWithConfig(config)
}
