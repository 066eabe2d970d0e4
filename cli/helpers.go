/*
 * Copyright (c) 2026 Michael Morris. All Rights Reserved.
 *
 * Licensed under the MIT license (the "License"). You may not use this file except in compliance
 * with the License. A copy of the License is located at
 *
 * https://github.com/mmmorris1975/aws-mfa-ls/blob/master/LICENSE
 *
 * or in the "license" file accompanying this file. This file is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License
 * for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/smithy-go/logging"
	"github.com/dustin/go-humanize"
	"github.com/mmmorris1975/aws-mfa-ls/config"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
	"github.com/mmmorris1975/aws-mfa-ls/identity"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"github.com/mmmorris1975/aws-mfa-ls/storage"
	"github.com/urfave/cli/v2"
	"io"
	"os"
	"time"
)

const timeFormat = "2006-01-02 15:04:05"

type sessionIdentifier interface {
	SessionIdentity(ctx context.Context, creds *credentials.Credentials) (*identity.Identity, error)
}

// resolve the configuration for the profile named on the command line or in the environment, with any command line
// overrides applied.  The AWS profile env vars are unset after reading, so they don't interfere with the AWS SDK
// configuration, which must never load credentials on its own.
func resolveConfig(ctx *cli.Context) (*config.AwsConfig, error) {
	profile := ctx.String(profileFlag.Name)

	_ = os.Unsetenv("AWS_PROFILE")
	_ = os.Unsetenv("AWS_DEFAULT_PROFILE")

	cfg, err := configResolver.Config(profile)
	if err != nil {
		return nil, err
	}

	cfg.MergeIn(cmdlineCfg)
	log.Debugf("resolved configuration for profile '%s'", cfg.ProfileName)
	return cfg, nil
}

// maxPageSize is the largest number of keys S3 returns in a single listing call.
const maxPageSize = 1000

// pageSize bounds the --page-size value to the range S3 accepts, 0 selects the service default.
func pageSize(n int) int32 {
	switch {
	case n < 0:
		log.Warningf("page size %d is negative, using service default", n)
		return 0
	case n > maxPageSize:
		log.Warningf("page size %d too large, setting to %d", n, maxPageSize)
		return maxPageSize
	}
	return int32(n)
}

// ReportError logs the error returned from running the App, with a hint about how to recover for the error kinds
// where one exists.
func ReportError(err error) {
	if err == nil {
		return
	}

	log.Errorf("%v", err)

	switch {
	case errors.Is(err, shared.ErrAuthenticationFailed):
		log.Infof("MFA token codes may only be used once, wait for a new code and try again")
	case errors.Is(err, shared.ErrInputUnavailable):
		log.Infof("provide the MFA token code with the --%s flag, or run interactively", mfaCodeFlag.Name)
	case errors.Is(err, shared.ErrInvalidDuration):
		log.Infof("session token duration must be between %s and %s",
			credentials.SessionTokenDurationMin, credentials.SessionTokenDurationMax)
	}
}

func printCredExpiration(w io.Writer, creds *credentials.Credentials) {
	exp := creds.Expiration()

	tense := "will expire"
	if exp.Before(time.Now()) {
		tense = "expired"
	}

	_, _ = fmt.Fprintf(w, "Credentials %s on %s (%s)\n", tense, exp.Format(timeFormat), humanize.Time(exp))
}

func printCredIdentity(ctx context.Context, c sessionIdentifier, creds *credentials.Credentials) error {
	id, err := c.SessionIdentity(ctx, creds)
	if err != nil {
		return err
	}

	log.Infof("%+v", *id)
	return nil
}

// writeLong is the client.OutputFunc used for the long listing format.
func writeLong(w io.Writer, obj storage.ObjectSummary) error {
	var size uint64
	if obj.Size > 0 {
		size = uint64(obj.Size)
	}

	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", humanize.IBytes(size), obj.LastModified.Local().Format(timeFormat), obj.Key)
	return err
}

// logFunc adapts the program logger for AWS SDK request tracing.
func logFunc(cls logging.Classification, format string, v ...interface{}) {
	switch cls {
	case logging.Debug:
		log.Debugf(format, v...)
	case logging.Warn:
		log.Warningf(format, v...)
	default:
		log.Infof(format, v...)
	}
}
