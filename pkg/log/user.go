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
package log

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📢 UserLogger prints diffs and run summaries for people reading the terminal
type UserLogger struct {
	out io.Writer
	log zerolog.Logger // for debug/error logging
}

// 📊 Summary holds the counts shown at the end of a run
type Summary struct {
	Files        int
	Rewritten    int
	Pending      int
	Unchanged    int
	Failed       int
	Rewrites     int
	Unterminated int
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	return &UserLogger{
		out: out,
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogDiff prints a unified diff for one file
func (u *UserLogger) LogDiff(path, diff string) {
	if diff == "" {
		return
	}
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "🔀"})
	fmt.Fprint(u.out, printer.Sprintln(path))
	fmt.Fprint(u.out, diff)
	if !strings.HasSuffix(diff, "\n") {
		fmt.Fprintln(u.out)
	}
	u.log.Debug().Str("path", path).Int("bytes", len(diff)).Msg("printed diff")
}

// 📊 LogSummary renders the run totals as a table
func (u *UserLogger) LogSummary(s Summary) error {
	data := pterm.TableData{
		{"files", "rewritten", "pending", "unchanged", "failed", "invocations", "unterminated"},
		{
			fmt.Sprint(s.Files),
			fmt.Sprint(s.Rewritten),
			fmt.Sprint(s.Pending),
			fmt.Sprint(s.Unchanged),
			fmt.Sprint(s.Failed),
			fmt.Sprint(s.Rewrites),
			fmt.Sprint(s.Unterminated),
		},
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Errorf("rendering summary: %w", err)
	}
	fmt.Fprintln(u.out, table)

	u.log.Info().
		Int("files", s.Files).
		Int("rewritten", s.Rewritten).
		Int("pending", s.Pending).
		Int("failed", s.Failed).
		Int("unterminated", s.Unterminated).
		Msg("run summary")
	return nil
}

// 🔍 LogValidation reports the outcome of a check
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	switch {
	case valid:
		fmt.Fprint(u.out, pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Sprintln(description))
		u.log.Info().Msg(description)
	case err != nil:
		fmt.Fprint(u.out, pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Sprintln(description))
		fmt.Fprint(u.out, pterm.Error.Sprintln(err))
		u.log.Error().Err(err).Msg(description)
	default:
		fmt.Fprint(u.out, pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Sprintln(description))
		u.log.Warn().Msg(description)
	}
}
