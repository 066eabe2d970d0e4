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

package main

import (
	"github.com/mmmorris1975/aws-mfa-ls/cli"
	"os"
)

func main() {
	cli.App.Version = Version

	if err := cli.App.Run(os.Args); err != nil {
		cli.ReportError(err)
		os.Exit(1)
	}
}
