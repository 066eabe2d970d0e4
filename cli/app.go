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
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go/logging"
	"github.com/mmmorris1975/aws-mfa-ls/client"
	"github.com/mmmorris1975/aws-mfa-ls/config"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
	"github.com/mmmorris1975/simple-logger/logger"
	"github.com/urfave/cli/v2"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

var (
	log        = logger.StdLogger
	opts       = client.DefaultOptions
	cmdlineCfg = new(config.AwsConfig)

	// values used when neither the profile nor the command line set them
	defaultConfig = &config.AwsConfig{SessionTokenDuration: credentials.SessionTokenDurationDefault}

	configResolver config.Resolver = config.DefaultResolver.WithLogger(log).WithDefaultConfig(defaultConfig)
	clientFactory                  = client.NewClientFactory(configResolver, opts)
)

// App is the struct used to manage the configuration and behavior for the cli handling library.
var App = &cli.App{
	Usage:     "List the contents of an S3 bucket using MFA authenticated session credentials",
	UsageText: fmt.Sprintf("%s [global options] [subcommand] bucket", filepath.Base(os.Args[0])),
	Commands:  []*cli.Command{mfaCmd},
	Flags:     append(configFlags, listFlags...),

	UseShortOptionHandling: true,

	Before: func(ctx *cli.Context) error {
		opts.Logger = log

		if v := vFlag.Level(); v > 0 {
			log.SetLevel(logger.DEBUG)

			if v > 1 {
				// request logging would expose the session token header, responses and retries are safe
				opts.AwsLogger = logging.LoggerFunc(logFunc)
				opts.AwsLogMode = aws.LogResponse | aws.LogRetries
			}
		}

		return nil
	},

	Metadata: map[string]interface{}{
		"url": "https://github.com/mmmorris1975/aws-mfa-ls",
	},

	Action: func(ctx *cli.Context) error {
		cfg, err := resolveConfig(ctx)
		if err != nil {
			return err
		}

		if ctx.Args().Present() {
			cfg.Bucket = ctx.Args().First()
		}

		if len(cfg.Bucket) < 1 {
			log.Errorln("no bucket to list!")
			cli.ShowAppHelpAndExit(ctx, 1)
		}

		return listBucket(ctx, cfg, os.Stdout)
	},
}

//nolint:gochecknoinits // kinda need this here
func init() {
	// override built-in version flag to use -V instead of -v (which we want to use for the verbose flag)
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func listBucket(ctx *cli.Context, cfg *config.AwsConfig, w io.Writer) error {
	opts.NoClamp = ctx.Bool(noClampFlag.Name)
	opts.PageSize = pageSize(ctx.Int(pageSizeFlag.Name))

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := clientFactory.Get(runCtx, cfg)
	if err != nil {
		return err
	}
	l.WithPrefix(ctx.String(prefixFlag.Name)).WithCredentialsHook(credentialsHook(runCtx, ctx, l))

	if ctx.Bool(longFlag.Name) {
		l.WithOutput(writeLong)
	}

	return l.Run(runCtx, w)
}

func credentialsHook(runCtx context.Context, ctx *cli.Context, c sessionIdentifier) func(*credentials.Credentials) {
	return func(creds *credentials.Credentials) {
		if ctx.Bool(expFlag.Name) {
			printCredExpiration(os.Stderr, creds)
		}

		if ctx.Bool(whoamiFlag.Name) {
			if err := printCredIdentity(runCtx, c, creds); err != nil {
				log.Warningf("unable to get session identity: %v", err)
			}
		}
	}
}
