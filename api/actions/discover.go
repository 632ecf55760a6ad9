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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/labstack/echo/v4"

	"github.com/optakt/blink-actions/blink/catalog"
)

const actionType = "action"

const (
	headerETag        = "ETag"
	headerIfNoneMatch = "If-None-Match"
)

// Discover returns the discovery document of the requested blink. The document
// only depends on the catalog, so it carries an entity tag that lets clients
// skip downloading it again.
func (s *Server) Discover(ctx echo.Context) error {

	name := ctx.Param("blink")
	blink, err := s.catalog.Blink(name)
	if err != nil {
		return ctx.String(http.StatusNotFound, fmt.Sprintf(unknownBlink, name))
	}

	base := s.base(ctx)
	res := GetResponse{
		Type:        actionType,
		Title:       blink.Title,
		Icon:        resolve(base, blink.Icon),
		Description: blink.Description,
		Label:       blink.Label,
		Disabled:    blink.Disabled,
		Links: Links{
			Actions: make([]LinkedAction, 0, len(blink.Actions)),
		},
	}
	for _, action := range blink.Actions {
		href, err := catalog.Href(base, blink.Name, action)
		if err != nil {
			s.log.Error().Err(err).Str("blink", blink.Name).Msg("could not render action link")
			return ctx.String(http.StatusInternalServerError, "could not render action link")
		}
		link := LinkedAction{
			Label:      action.Label,
			Href:       href,
			Parameters: action.Parameters,
		}
		res.Links.Actions = append(res.Links.Actions, link)
	}

	body, err := json.Marshal(res)
	if err != nil {
		return ctx.String(http.StatusInternalServerError, "could not encode discovery document")
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Checksum64(body))
	ctx.Response().Header().Set(headerETag, etag)
	if ctx.Request().Header.Get(headerIfNoneMatch) == etag {
		return ctx.NoContent(http.StatusNotModified)
	}

	return ctx.JSONBlob(http.StatusOK, body)
}

// base returns the URL links are rendered against.
func (s *Server) base(ctx echo.Context) string {
	if s.cfg.BaseURL != "" {
		return strings.TrimSuffix(s.cfg.BaseURL, "/")
	}
	return ctx.Scheme() + "://" + ctx.Request().Host
}

// resolve turns an icon path relative to the server into an absolute URL.
func resolve(base string, icon string) string {
	if !strings.HasPrefix(icon, "/") {
		return icon
	}
	return base + icon
}
