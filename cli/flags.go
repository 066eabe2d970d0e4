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
	"fmt"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
	"github.com/urfave/cli/v2"
)

var configFlags = []cli.Flag{profileFlag, sessionDurationFlag, mfaCodeFlag, mfaSerialFlag, totpSecretFlag, regionFlag}
var listFlags = []cli.Flag{prefixFlag, longFlag, pageSizeFlag, noClampFlag, expFlag, whoamiFlag, vFlag}

/*
 * Config flags - affect/override resolved configuration values.
 */

// Does not have a Destination, the value selects the profile to resolve.
var profileFlag = &cli.StringFlag{
	Name:    "profile",
	Aliases: []string{"p"},
	Usage:   "name of the profile holding the IAM user credentials and MFA settings",
	EnvVars: []string{"AWS_PROFILE", "AWS_DEFAULT_PROFILE"},
}

var sessionDurationFlag = &cli.DurationFlag{
	Name:        "duration",
	Aliases:     []string{"d"},
	Usage:       "duration of the retrieved session token",
	EnvVars:     []string{"SESSION_TOKEN_DURATION"},
	DefaultText: fmt.Sprintf("%d hour", int64(credentials.SessionTokenDurationDefault.Hours())),
	Destination: &cmdlineCfg.SessionTokenDuration,
}

var mfaCodeFlag = &cli.StringFlag{
	Name:        "otp",
	Aliases:     []string{"o"},
	Usage:       "MFA token code",
	EnvVars:     []string{"MFA_CODE"},
	Destination: &cmdlineCfg.MfaCode,
}

var mfaSerialFlag = &cli.StringFlag{
	Name:        "mfa-serial",
	Aliases:     []string{"M"},
	Usage:       "serial number (or AWS ARN) of the MFA device",
	EnvVars:     []string{"MFA_SERIAL"},
	Destination: &cmdlineCfg.MfaSerial,
}

var totpSecretFlag = &cli.StringFlag{
	Name:        "totp-secret",
	Usage:       "base32 seed of a virtual MFA device, used to generate the token code",
	EnvVars:     []string{"MFA_TOTP_SECRET"},
	Destination: &cmdlineCfg.MfaTotpSecret,
}

var regionFlag = &cli.StringFlag{
	Name:        "region",
	Aliases:     []string{"r"},
	Usage:       "AWS region for the STS and S3 API calls",
	Destination: &cmdlineCfg.Region,
}

/*
 * List flags - change what is listed, and what is printed with it.
 */
var prefixFlag = &cli.StringFlag{
	Name:    "prefix",
	Aliases: []string{"P"},
	Usage:   "only list keys starting with this prefix",
}

var longFlag = &cli.BoolFlag{
	Name:    "long",
	Aliases: []string{"l"},
	Usage:   "print the size and last modified time along with each key",
}

var pageSizeFlag = &cli.IntFlag{
	Name:        "page-size",
	Usage:       "number of keys requested in each listing call, at most 1000",
	DefaultText: "service default",
}

var noClampFlag = &cli.BoolFlag{
	Name:  "no-clamp",
	Usage: "send the session token duration as-is, instead of adjusting it to the allowed range",
}

var expFlag = &cli.BoolFlag{
	Name:    "expiration",
	Aliases: []string{"e"},
	Usage:   "show session credential expiration time",
}

var whoamiFlag = &cli.BoolFlag{
	Name:    "whoami",
	Aliases: []string{"w"},
	Usage:   "print the AWS identity information for the session credentials",
}
