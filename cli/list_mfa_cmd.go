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
	"github.com/mmmorris1975/aws-mfa-ls/client"
	"github.com/urfave/cli/v2"
	"io"
	"os"
)

var mfaCmd = &cli.Command{
	Name:      "list-mfa",
	Aliases:   []string{"mfa"},
	Usage:     "list the MFA devices associated with the IAM user of the profile credentials",
	ArgsUsage: " ",

	Action: func(ctx *cli.Context) error {
		cfg, err := resolveConfig(ctx)
		if err != nil {
			return err
		}

		c, err := clientFactory.IdentityClient(ctx.Context, cfg)
		if err != nil {
			return err
		}

		return listMfa(ctx.Context, c, os.Stdout)
	},
}

// only IAM users have MFA devices, anything else is an error.
func listMfa(ctx context.Context, c client.IdentityClient, w io.Writer) error {
	id, err := c.Identity(ctx)
	if err != nil {
		return err
	}

	if id.IdentityType != "user" {
		return fmt.Errorf("MFA devices are only available for IAM users, found %s %s", id.IdentityType, id.Username)
	}

	devs, err := c.MfaDevices(ctx)
	if err != nil {
		return err
	}

	if len(devs) < 1 {
		log.Warningf("no MFA devices found for user %s", id.Username)
	}

	for _, d := range devs {
		_, _ = fmt.Fprintln(w, d)
	}
	return nil
}
