// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package opts

import (
	"context"

	"github.com/walteh/alertmigrate/pkg/config"
	"github.com/walteh/alertmigrate/pkg/log"
	"github.com/walteh/alertmigrate/pkg/operation"
)

// RootOpts is filled in by the root command before any subcommand runs
type RootOpts struct {
	Config     *config.Config
	Root       string
	Async      bool
	UserLogger *log.UserLogger
}

// OperationOptions builds the options shared by every operation. The console
// logger comes from ctx, where the root command stored it.
func (o *RootOpts) OperationOptions(ctx context.Context, paths []string, showDiff bool) operation.Options {
	return operation.Options{
		Config:     o.Config,
		Root:       o.Root,
		Paths:      paths,
		ShowDiff:   showDiff,
		Logger:     log.FromContext(ctx),
		UserLogger: o.UserLogger,
	}
}
